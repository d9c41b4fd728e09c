package resume

import (
	"regexp"
	"strconv"
	"strings"
)

// Period is a parsed employment or education period. Periods are stored as
// free text; this best-effort parse only powers the chronology lint, so an
// unparseable period simply skips that check.
type Period struct {
	StartYear int
	EndYear   int
	Open      bool // "- Present" or equivalent
}

//nolint:gochecknoglobals // Static parse tables
var monthNames = map[string]bool{
	"jan": true, "feb": true, "mar": true, "apr": true, "may": true, "jun": true,
	"jul": true, "aug": true, "sep": true, "oct": true, "nov": true, "dec": true,
	"january": true, "february": true, "march": true, "april": true, "june": true,
	"july": true, "august": true, "september": true, "october": true, "november": true,
	"december": true,
}

//nolint:gochecknoglobals // Static parse tables
var (
	monthYearRe   = regexp.MustCompile(`^([A-Za-z]+)\s+(\d{4})$`)
	numericDateRe = regexp.MustCompile(`^(\d{1,2})\s*/\s*(\d{4})$`)
	bareYearRe    = regexp.MustCompile(`^(\d{4})$`)
)

// ParsePeriod parses a free-text period into start and end years.
//
// Accepted forms: "Jan 2006 - Dec 2009", "01/2021 - 05/2025", "2018-2022",
// and open-ended endings like "Jun 2023 - Present". Anything else reports
// ok=false.
func ParsePeriod(text string) (period Period, ok bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return period, ok
	}

	var start, end string
	start, end, ok = splitPeriod(trimmed)
	if !ok {
		return period, ok
	}

	period.StartYear, ok = parseEndpointYear(start)
	if !ok {
		return Period{}, false
	}

	if isOpenEnded(end) {
		period.Open = true
		ok = true
		return period, ok
	}

	period.EndYear, ok = parseEndpointYear(end)
	if !ok {
		return Period{}, false
	}

	if period.EndYear < period.StartYear {
		return Period{}, false
	}

	return period, ok
}

// splitPeriod splits on the range separator. "2018-2022" has no spaces
// around the dash, so a bare-year split is tried before giving up.
func splitPeriod(text string) (start, end string, ok bool) {
	for _, sep := range []string{" - ", " – ", " — "} {
		if strings.Contains(text, sep) {
			parts := strings.SplitN(text, sep, 2)
			start = strings.TrimSpace(parts[0])
			end = strings.TrimSpace(parts[1])
			ok = start != "" && end != ""
			return start, end, ok
		}
	}

	// Compact year range, e.g. "2018-2022".
	if compact := strings.Split(text, "-"); len(compact) == 2 {
		start = strings.TrimSpace(compact[0])
		end = strings.TrimSpace(compact[1])
		if !bareYearRe.MatchString(start) {
			return "", "", false
		}
		ok = end != ""
		return start, end, ok
	}

	return start, end, ok
}

func parseEndpointYear(endpoint string) (year int, ok bool) {
	if m := bareYearRe.FindStringSubmatch(endpoint); m != nil {
		year, _ = strconv.Atoi(m[1])
		ok = true
		return year, ok
	}

	if m := numericDateRe.FindStringSubmatch(endpoint); m != nil {
		month, _ := strconv.Atoi(m[1])
		if month < 1 || month > 12 {
			return year, ok
		}
		year, _ = strconv.Atoi(m[2])
		ok = true
		return year, ok
	}

	if m := monthYearRe.FindStringSubmatch(endpoint); m != nil {
		if !monthNames[strings.ToLower(m[1])] {
			return year, ok
		}
		year, _ = strconv.Atoi(m[2])
		ok = true
		return year, ok
	}

	return year, ok
}

func isOpenEnded(endpoint string) (open bool) {
	switch strings.ToLower(endpoint) {
	case "present", "current", "now":
		open = true
	}
	return open
}
