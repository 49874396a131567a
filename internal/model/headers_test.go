package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeadersOrderAndDuplicates(t *testing.T) {
	h := &Headers{}
	h.Add("X-One", "1")
	h.Add("x-two", "2")
	h.Add("X-One", "1b")

	assert.Equal(t, []HeaderPair{
		{"X-One", "1"},
		{"x-two", "2"},
		{"X-One", "1b"},
	}, h.Raw())
	assert.Equal(t, "1", h.Get("x-one"))
	assert.Equal(t, []string{"1", "1b"}, h.Values("X-ONE"))
}

func TestHeadersSetReplacesInPlace(t *testing.T) {
	h := &Headers{}
	h.Add("Accept", "*/*")
	h.Add("X-Mid", "m")
	h.Add("accept", "text/html")

	h.Set("ACCEPT", "application/json")

	// first entry keeps its position and casing, duplicates collapse
	assert.Equal(t, []HeaderPair{
		{"Accept", "application/json"},
		{"X-Mid", "m"},
	}, h.Raw())
}

func TestHeadersSetAppendsWhenMissing(t *testing.T) {
	h := &Headers{}
	h.Add("A", "1")
	h.Set("B", "2")
	assert.Equal(t, []HeaderPair{{"A", "1"}, {"B", "2"}}, h.Raw())
}

func TestHeadersSetDefault(t *testing.T) {
	h := &Headers{}
	h.Add("User-Agent", "custom/1.0")
	h.SetDefault("User-Agent", "lib/0.1")
	h.SetDefault("Accept", "*/*")

	assert.Equal(t, "custom/1.0", h.Get("user-agent"))
	assert.Equal(t, "*/*", h.Get("Accept"))
}

func TestHeadersDel(t *testing.T) {
	h := &Headers{}
	h.Add("X", "1")
	h.Add("Y", "2")
	h.Add("x", "3")
	h.Del("X")
	assert.Equal(t, []HeaderPair{{"Y", "2"}}, h.Raw())
}

func TestHeadersCloneIsIndependent(t *testing.T) {
	h := &Headers{}
	h.Add("X", "1")
	c := h.Clone()
	c.Add("Y", "2")
	assert.Equal(t, 1, h.Len())
	assert.Equal(t, 2, c.Len())

	var nilHeaders *Headers
	assert.Equal(t, 0, nilHeaders.Clone().Len())
}
