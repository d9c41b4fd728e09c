package resume

import (
	"strings"
	"unicode"
)

// verbSynonyms maps a bullet-starting action verb to replacements used when
// the same verb opens more than one bullet. Replacements are tried in order
// until an unused one is found.
//
//nolint:gochecknoglobals // Static patch table
var verbSynonyms = map[string][]string{
	"developed":    {"engineered", "built", "created", "constructed", "produced"},
	"implemented":  {"deployed", "executed", "integrated", "operationalized", "installed"},
	"led":          {"directed", "headed", "spearheaded", "guided", "orchestrated"},
	"managed":      {"coordinated", "administered", "oversaw", "organized", "facilitated"},
	"built":        {"constructed", "engineered", "assembled", "created", "established"},
	"designed":     {"architected", "devised", "formulated", "conceptualized", "crafted"},
	"created":      {"produced", "generated", "established", "launched", "founded"},
	"improved":     {"enhanced", "optimized", "refined", "boosted", "strengthened"},
	"optimized":    {"streamlined", "accelerated", "refined", "maximized", "revamped"},
	"increased":    {"boosted", "amplified", "expanded", "grew", "raised"},
	"reduced":      {"cut", "decreased", "lowered", "minimized", "trimmed"},
	"architected":  {"designed", "engineered", "structured", "devised"},
	"engineered":   {"developed", "constructed", "built", "devised"},
	"launched":     {"introduced", "initiated", "rolled out", "pioneered"},
	"delivered":    {"shipped", "completed", "produced", "achieved"},
	"automated":    {"mechanized", "scripted", "streamlined", "systematized"},
	"analyzed":     {"evaluated", "assessed", "examined", "investigated", "audited"},
	"collaborated": {"partnered", "cooperated", "liaised", "teamed"},
	"established":  {"founded", "instituted", "formed", "initiated"},
	"deployed":     {"released", "rolled out", "launched", "shipped"},
	"mentored":     {"coached", "trained", "guided", "educated"},
	"migrated":     {"transitioned", "converted", "transferred", "ported"},
	"integrated":   {"unified", "consolidated", "merged", "connected"},
	"maintained":   {"sustained", "supported", "upheld", "preserved"},
	"researched":   {"investigated", "studied", "explored", "surveyed"},
	"monitored":    {"tracked", "observed", "supervised", "audited"},
	"tested":       {"validated", "verified", "exercised", "vetted"},
	"wrote":        {"authored", "composed", "drafted", "documented"},
	"resolved":     {"solved", "remedied", "fixed", "settled"},
	"scaled":       {"expanded", "extended", "grew", "enlarged"},
}

// startingVerb returns the lowercased first word of a bullet, stripped of
// trailing punctuation.
func startingVerb(bullet string) (verb string) {
	fields := strings.Fields(bullet)
	if len(fields) == 0 {
		return verb
	}
	verb = strings.ToLower(strings.TrimFunc(fields[0], unicode.IsPunct))
	return verb
}

// replaceStartingVerb swaps a bullet's first word, matching the original
// capitalization.
func replaceStartingVerb(bullet, replacement string) (patched string) {
	trimmed := strings.TrimSpace(bullet)
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		patched = bullet
		return patched
	}

	capitalized := replacement
	if len(capitalized) > 0 {
		capitalized = strings.ToUpper(capitalized[:1]) + capitalized[1:]
	}

	patched = capitalized + strings.TrimPrefix(trimmed, fields[0])
	return patched
}
