package internal

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvess/go-httpx/internal/transport"
)

func testURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestParseMountPattern(t *testing.T) {
	p, err := parseMountPattern("all://")
	require.NoError(t, err)
	assert.Empty(t, p.scheme)
	assert.Empty(t, p.host)

	p, err = parseMountPattern("HTTPS://Example.COM")
	require.NoError(t, err)
	assert.Equal(t, "https", p.scheme)
	assert.Equal(t, "example.com", p.host)

	for _, raw := range []string{"", "https", "://host"} {
		_, err := parseMountPattern(raw)
		assert.Error(t, err, "pattern %q", raw)
	}
}

func TestMountResolutionSpecificity(t *testing.T) {
	hostTr := transport.NewMock(nil)
	schemeTr := transport.NewMock(nil)
	allTr := transport.NewMock(nil)

	table, err := newMountTable(map[string]transport.Transport{
		"all://":                  allTr,
		"https://":                schemeTr,
		"https://www.example.com": hostTr,
	})
	require.NoError(t, err)

	assert.Same(t, hostTr, table.resolve(testURL(t, "https://www.example.com/path")))
	assert.Same(t, schemeTr, table.resolve(testURL(t, "https://other.org/")))
	assert.Same(t, allTr, table.resolve(testURL(t, "http://anything/")))
	assert.Same(t, allTr, table.resolve(testURL(t, "custom://anything/")))
}

func TestMountHostMatchIgnoresPort(t *testing.T) {
	hostTr := transport.NewMock(nil)
	table, err := newMountTable(map[string]transport.Transport{
		"http://localhost": hostTr,
	})
	require.NoError(t, err)

	assert.Same(t, hostTr, table.resolve(testURL(t, "http://localhost:8080/x")))
}

func TestMountNoMatchFallsThrough(t *testing.T) {
	table, err := newMountTable(map[string]transport.Transport{
		"custom://": transport.NewMock(nil),
	})
	require.NoError(t, err)

	assert.Nil(t, table.resolve(testURL(t, "https://www.example.com")))
}

func TestMountTableRejectsBadPattern(t *testing.T) {
	_, err := newMountTable(map[string]transport.Transport{
		"not-a-pattern": transport.NewMock(nil),
	})
	require.Error(t, err)
}
