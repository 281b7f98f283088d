package dal

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func Test_Parse_Reply_History_Legacy(t *testing.T) {
	history, migrated, err := ParseReplyHistory([]byte(`{"did:abc":1700000000000}`))
	require.Nil(t, err)
	assert.True(t, migrated)
	assert.Equal(t, map[string]int64{"did:abc": 1700000000000}, history.Users)
	assert.Equal(t, map[string]int64{}, history.Posts)
}

func Test_Parse_Reply_History_Structured(t *testing.T) {
	history, migrated, err := ParseReplyHistory([]byte(`{"users":{"did:a":1},"posts":{"at://x":2}}`))
	require.Nil(t, err)
	assert.False(t, migrated)
	assert.Equal(t, int64(1), history.Users["did:a"])
	assert.Equal(t, int64(2), history.Posts["at://x"])

	history, _, err = ParseReplyHistory([]byte(`{"users":{"did:a":1}}`))
	require.Nil(t, err)
	assert.NotNil(t, history.Posts)

	history, migrated, err = ParseReplyHistory([]byte(`{}`))
	require.Nil(t, err)
	assert.False(t, migrated)
	assert.Empty(t, history.Users)

	_, _, err = ParseReplyHistory([]byte(`{"did:abc":"yesterday"}`))
	assert.NotNil(t, err)
	_, _, err = ParseReplyHistory([]byte(`[1, 2]`))
	assert.NotNil(t, err)
}

func Test_Parse_Action_History_Shapes(t *testing.T) {
	history, err := ParseActionHistory([]byte(`{"actions":[{"timestamp":5,"targetId":"did:x","targetLabel":"x.bsky.social"}]}`))
	require.Nil(t, err)
	require.Len(t, history.Actions, 1)
	assert.Equal(t, ActionRecord{5, "did:x", "x.bsky.social"}, *history.Actions[0])

	history, err = ParseActionHistory([]byte(`{"did:b":20,"did:a":10}`))
	require.Nil(t, err)
	require.Len(t, history.Actions, 2)
	assert.Equal(t, "did:a", history.Actions[0].TargetId)
	assert.Equal(t, "did:b", history.Actions[1].TargetId)

	history, err = ParseActionHistory([]byte(`{"actions":null}`))
	require.Nil(t, err)
	assert.NotNil(t, history.Actions)
}

func Test_History_Files_Round_Trip(t *testing.T) {
	dir := t.TempDir()

	fn := filepath.Join(dir, "analytics", "like-history.json")
	history, err := LoadActionHistory(fn)
	require.Nil(t, err)
	assert.Empty(t, history.Actions)

	history.Actions = append(history.Actions, &ActionRecord{Timestamp: 42, TargetId: "at://p"})
	require.Nil(t, SaveActionHistory(fn, history))
	loaded, err := LoadActionHistory(fn)
	require.Nil(t, err)
	assert.Equal(t, history.Actions, loaded.Actions)

	// No temp files left behind
	entries, err := os.ReadDir(filepath.Dir(fn))
	require.Nil(t, err)
	assert.Len(t, entries, 1)

	ledgerFn := filepath.Join(dir, "reply-ledger.json")
	require.Nil(t, os.WriteFile(ledgerFn, []byte(`{"did:abc":1700000000000}`), 0644))
	ledger, migrated, err := LoadReplyHistory(ledgerFn)
	require.Nil(t, err)
	assert.True(t, migrated)
	require.Nil(t, SaveReplyHistory(ledgerFn, ledger))
	ledger, migrated, err = LoadReplyHistory(ledgerFn)
	require.Nil(t, err)
	assert.False(t, migrated)
	assert.Equal(t, int64(1700000000000), ledger.Users["did:abc"])
}

func Test_Load_History_Corrupt(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "reply-history.json")
	require.Nil(t, os.WriteFile(fn, []byte(`{not json`), 0644))
	_, err := LoadActionHistory(fn)
	assert.NotNil(t, err)
}
