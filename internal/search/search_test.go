package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveURLInput(t *testing.T) {
	got, err := Resolve("example.com", "google")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", got)

	got, err = Resolve("  http://go.dev/doc  ", "bing")
	require.NoError(t, err)
	assert.Equal(t, "http://go.dev/doc", got)
}

func TestResolveSearchesWithEngine(t *testing.T) {
	got, err := Resolve("golang waves", "duckduckgo")
	require.NoError(t, err)
	assert.Equal(t, "https://duckduckgo.com/?q=golang+waves", got)

	got, err = Resolve("кот", "yandex")
	require.NoError(t, err)
	assert.Equal(t, "https://yandex.com/search/?text=%D0%BA%D0%BE%D1%82", got)
}

func TestResolveUnknownEngineUsesDefault(t *testing.T) {
	got, err := Resolve("hello", "altavista")
	require.NoError(t, err)
	assert.Equal(t, "https://www.google.com/search?q=hello", got)
}

func TestResolveEmpty(t *testing.T) {
	_, err := Resolve("   ", "google")
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestNormalizeURL(t *testing.T) {
	cases := map[string]string{
		"github.com":              "https://github.com",
		"https://go.dev/play":     "https://go.dev/play",
		"http://news.example.org": "http://news.example.org",
	}
	for in, want := range cases {
		got, err := NormalizeURL(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
}

func TestNormalizeURLRejects(t *testing.T) {
	for _, in := range []string{"", "   ", "localhost", "ftp://files.example.com", "https://.com", "not a url"} {
		_, err := NormalizeURL(in)
		assert.ErrorIs(t, err, ErrInvalidURL, in)
	}
}

func TestEnginesCopy(t *testing.T) {
	e := Engines()
	require.Len(t, e, 4)
	e[0].Name = "changed"
	assert.Equal(t, "Google", FindEngine("google").Name)
}
