// Package jd fetches job description text from a local file or a URL.
package jd

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var (
	scriptRe = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	styleRe  = regexp.MustCompile(`(?is)<style\b.*?</style>`)
	tagRe    = regexp.MustCompile(`<[^>]*>`)
)

// Fetch retrieves a job description from a file path or an http(s) URL.
func Fetch(input string) (content string, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	content, err = FetchWithContext(ctx, input)
	return content, err
}

// FetchWithContext retrieves a job description with a caller-supplied
// context. URL responses have their HTML stripped to plain text.
func FetchWithContext(ctx context.Context, input string) (content string, err error) {
	if isURL(input) {
		content, err = fetchFromURL(ctx, input)
		if err != nil {
			err = errors.Wrapf(err, "failed to fetch job description from URL: %s", input)
			return content, err
		}
		return content, err
	}

	content, err = fetchFromFile(input)
	if err != nil {
		err = errors.Wrapf(err, "failed to read job description file: %s", input)
		return content, err
	}

	return content, err
}

func isURL(input string) (ok bool) {
	parsed, err := url.Parse(input)
	ok = err == nil && (parsed.Scheme == "http" || parsed.Scheme == "https")
	return ok
}

func fetchFromFile(path string) (content string, err error) {
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read file: %s", path)
		return content, err
	}

	content = string(data)
	if content == "" {
		err = errors.New("file is empty")
		return content, err
	}

	return content, err
}

func fetchFromURL(ctx context.Context, urlStr string) (content string, err error) {
	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return content, err
	}

	req.Header.Set("User-Agent", "resumesmith/1.0")

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	var resp *http.Response
	resp, err = client.Do(req)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return content, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = errors.Errorf("HTTP request failed with status: %d", resp.StatusCode)
		return content, err
	}

	var body []byte
	body, err = io.ReadAll(resp.Body)
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return content, err
	}

	content = stripBasicHTML(string(body))
	if content == "" {
		err = errors.New("fetched page contained no text")
		return content, err
	}

	return content, err
}

// stripBasicHTML reduces an HTML page to its visible text. Good enough for
// static job postings; JavaScript-rendered boards need a pasted JD instead.
func stripBasicHTML(html string) (text string) {
	text = scriptRe.ReplaceAllString(html, "")
	text = styleRe.ReplaceAllString(text, "")
	text = tagRe.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)
	return text
}
