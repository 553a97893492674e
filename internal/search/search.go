// Package search turns launcher input into a URL to open.
package search

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	// ErrEmptyQuery is returned for blank input; the caller does nothing.
	ErrEmptyQuery = errors.New("search: empty query")
	// ErrInvalidURL is returned when input cannot be used as a site address.
	ErrInvalidURL = errors.New("search: invalid url")
)

// Engine is a web search provider.
type Engine struct {
	Name  string
	Value string
	URL   string // query is appended, already escaped
}

var engines = []Engine{
	{Name: "Google", Value: "google", URL: "https://www.google.com/search?q="},
	{Name: "DuckDuckGo", Value: "duckduckgo", URL: "https://duckduckgo.com/?q="},
	{Name: "Yandex", Value: "yandex", URL: "https://yandex.com/search/?text="},
	{Name: "Bing", Value: "bing", URL: "https://www.bing.com/search?q="},
}

// Engines returns a copy of the engine table; the first entry is the default.
func Engines() []Engine {
	out := make([]Engine, len(engines))
	copy(out, engines)
	return out
}

// FindEngine returns the engine with the given value, or the default.
func FindEngine(value string) Engine {
	for _, e := range engines {
		if e.Value == value {
			return e
		}
	}
	return engines[0]
}

var urlLike = regexp.MustCompile(`^(https?://)?([\da-z.-]+)\.([a-z.]{2,6})([/\w .-]*)*/?$`)

// LooksLikeURL reports whether input should be opened as an address rather
// than searched for.
func LooksLikeURL(input string) bool {
	return urlLike.MatchString(input)
}

// Resolve returns the address to open for query: the query itself when it
// looks like a URL (https:// added when no scheme is given), otherwise a
// search on engine.
func Resolve(query, engine string) (string, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return "", ErrEmptyQuery
	}
	if LooksLikeURL(q) {
		if !strings.HasPrefix(q, "http") {
			q = "https://" + q
		}
		return q, nil
	}
	return FindEngine(engine).URL + url.QueryEscape(q), nil
}

// NormalizeURL validates a site address entered for a shortcut and returns it
// with an explicit scheme.
func NormalizeURL(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidURL)
	}
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	host := u.Hostname()
	if host == "" || !strings.Contains(host, ".") || strings.HasPrefix(host, ".") || strings.HasSuffix(host, ".") {
		return "", fmt.Errorf("%w: bad host %q", ErrInvalidURL, host)
	}
	if strings.ContainsAny(host, " _") {
		return "", fmt.Errorf("%w: bad host %q", ErrInvalidURL, host)
	}
	return u.String(), nil
}
