package yamlpatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBatch(t *testing.T) {
	edits, err := ParseBatch([]byte(`{
		"port": 9000,
		"ssl.enabled": true,
		"thumbnails.format": "png",
		"backups.chat.maxTotalBackups": -1,
		"proxy": null,
		"quoted": "\"x\"",
		"gemini.apiVersion": "v1beta"
	}`))
	require.NoError(t, err)

	assert.Equal(t, []Edit{
		{Path: Path{"port"}, Value: "9000"},
		{Path: Path{"ssl", "enabled"}, Value: "true"},
		{Path: Path{"thumbnails", "format"}, Value: "png"},
		{Path: Path{"backups", "chat", "maxTotalBackups"}, Value: "-1"},
		{Path: Path{"proxy"}, Value: "null"},
		{Path: Path{"quoted"}, Value: `"x"`},
		{Path: Path{"gemini", "apiVersion"}, Value: "v1beta"},
	}, edits)
}

func TestParseBatch_KeepsKeyOrder(t *testing.T) {
	edits, err := ParseBatch([]byte(`{"z": 1, "a": 2, "m": 3}`))
	require.NoError(t, err)

	var keys []string
	for _, e := range edits {
		keys = append(keys, e.Path.String())
	}
	assert.Equal(t, []string{"z", "a", "m"}, keys)
}

func TestParseBatch_Empty(t *testing.T) {
	edits, err := ParseBatch([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, edits)
}

func TestParseBatch_Invalid(t *testing.T) {
	for _, payload := range []string{
		``,
		`{`,
		`{"port": }`,
		`not json`,
		`[1, 2]`,
		`"port"`,
		`42`,
		`{"ssl": {"enabled": true}}`,
		`{"whitelist": ["127.0.0.1"]}`,
		`{"": 1}`,
		`{"a..b": 1}`,
		`{"motd": "line\nline"}`,
	} {
		_, err := ParseBatch([]byte(payload))
		assert.ErrorIs(t, err, ErrInvalidPayload, "payload %q", payload)
	}
}
