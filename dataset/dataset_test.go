package dataset

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockedHosts(t *testing.T) {
	lines, err := BlockedHosts()
	require.NoError(t, err)
	hosts, err := lines.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"ads.example.com",
		"tracker.example.net",
		"malware.example.org",
	}, hosts)
}

func TestEasyList(t *testing.T) {
	lines, err := EasyList()
	require.NoError(t, err)
	rules, err := lines.ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, rules)
	assert.Equal(t, "[Adblock Plus 2.0]", rules[0])
	assert.Contains(t, rules, "||ads.example.com^")
}

func TestEasyPrivacy(t *testing.T) {
	lines, err := EasyPrivacy()
	require.NoError(t, err)
	rules, err := lines.ReadAll()
	require.NoError(t, err)
	assert.Contains(t, rules, "||tracker.example.net^")
}

func TestAdblockTSV(t *testing.T) {
	lines, err := AdblockTSV()
	require.NoError(t, err)
	defer lines.Close()

	require.True(t, lines.Next())
	header := strings.Split(lines.Text(), "\t")
	assert.Equal(t, []string{"url", "filter", "result"}, header)

	n := 0
	for lines.Next() {
		fields := strings.Split(lines.Text(), "\t")
		assert.Len(t, fields, 3)
		n++
	}
	require.NoError(t, lines.Err())
	assert.Equal(t, 2, n)
}

func TestOpenMissing(t *testing.T) {
	_, err := Open("no-such-file.gz")
	assert.Error(t, err)
}

func TestDirEnvOverride(t *testing.T) {
	t.Setenv(DirEnv, t.TempDir())
	assert.NotEqual(t, DefaultDir, Dir())
	_, err := BlockedHosts()
	assert.Error(t, err)
}

func TestWithDir(t *testing.T) {
	lines, err := Open(BlockedHostsFile, WithDir("testdata/data"))
	require.NoError(t, err)
	hosts, err := lines.ReadAll()
	require.NoError(t, err)
	assert.Len(t, hosts, 3)
}

func TestWriteTo(t *testing.T) {
	lines, err := BlockedHosts()
	require.NoError(t, err)
	buf := bytes.NewBuffer(nil)
	n, err := lines.WriteTo(buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}
