package shared

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func clearConfigEnv(t *testing.T) {
	for _, name := range []string{"BLUESKY_HANDLE", "BLUESKY_PASSWORD", "BLUESKY_SERVICE", "DEEPSEEK_KEY",
		"GEMINI_API_KEY", "OPENAI_KEY", "HUGGINGFACE_TOKEN", "METRICS_AUTH", "API_KEYS", "BOT_MODE", "NODE_ENV"} {
		t.Setenv(name, "")
	}
}

func Test_Load_Config_Defaults(t *testing.T) {
	clearConfigEnv(t)
	dir := t.TempDir()
	cfg, err := LoadConfigFrom(filepath.Join(dir, "none.jsonc"), filepath.Join(dir, "none-secrets.jsonc"))
	require.Nil(t, err)

	assert.Equal(t, ModeProd, cfg.Mode)
	assert.Equal(t, "https://bsky.social", cfg.BlueskyService)
	assert.Equal(t, QuotaLimits{30, 200, 30}, cfg.Quotas[KindLike])
	assert.Equal(t, QuotaLimits{25, 100, 30}, cfg.Quotas[KindReply])
	assert.Equal(t, 14, cfg.LedgerRetentionDays)
	assert.Equal(t, LangPolicyTags, cfg.Language.Mode)
	assert.Equal(t, []string{"en", "fr"}, cfg.Language.Allowed)
	assert.True(t, cfg.Language.AllowUnknown)
	assert.Len(t, cfg.Jobs, 4)
	assert.Equal(t, 10, cfg.RepliesPerRun())

	// Nothing to log in with
	assert.NotNil(t, cfg.Validate())
}

func Test_Load_Config_File_And_Env(t *testing.T) {
	clearConfigEnv(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.jsonc")
	secretsPath := filepath.Join(dir, "secrets.jsonc")
	cfgJsonc := `{
		// Comments and trailing commas are fine
		"log_level": "Debug",
		"quotas": { "like": { "hourly": 5, "daily": 10, "retention_days": 3 }, },
		"language": { "mode": "detect", "allowed": ["en"], "allow_unknown": false },
		"reply": { "terms": ["golang"], "test_max_per_run": 1 },
	}`
	require.Nil(t, os.WriteFile(cfgPath, []byte(cfgJsonc), 0644))
	require.Nil(t, os.WriteFile(secretsPath, []byte(`{"bluesky_handle": "bot.bsky.social", "bluesky_password": "from-file"}`), 0644))

	t.Setenv("BLUESKY_PASSWORD", "from-env")
	t.Setenv("GEMINI_API_KEY", "gem")
	t.Setenv("API_KEYS", "a, b,,c")
	t.Setenv("NODE_ENV", "test")

	cfg, err := LoadConfigFrom(cfgPath, secretsPath)
	require.Nil(t, err)

	assert.Equal(t, "Debug", cfg.LogLevel)
	assert.Equal(t, QuotaLimits{5, 10, 3}, cfg.Quotas[KindLike])
	assert.Equal(t, QuotaLimits{30, 200, 30}, cfg.Quotas[KindFollow])
	assert.Equal(t, LangPolicyDetect, cfg.Language.Mode)
	assert.False(t, cfg.Language.AllowUnknown)
	assert.Equal(t, []string{"golang"}, cfg.Reply.Terms)
	assert.True(t, cfg.Reply.Shuffle)
	assert.Equal(t, "bot.bsky.social", cfg.Secrets.BlueskyHandle)
	assert.Equal(t, "from-env", cfg.Secrets.BlueskyPassword)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Secrets.ApiKeys)
	assert.True(t, cfg.IsTestMode())
	assert.Equal(t, 1, cfg.RepliesPerRun())
	assert.Nil(t, cfg.Validate())

	t.Setenv("BOT_MODE", "staging")
	cfg, err = LoadConfigFrom(cfgPath, secretsPath)
	require.Nil(t, err)
	assert.NotNil(t, cfg.Validate())
}

func Test_Load_Config_Partial_Overrides(t *testing.T) {
	clearConfigEnv(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.jsonc")
	cfgJsonc := `{
		"quotas": { "like": { "hourly": 10 }, "reply": { "daily": 50, "retention_days": 7 } },
		"language": { "allow_unknown": false },
		"reply": { "terms": ["golang"], "shuffle": false },
	}`
	require.Nil(t, os.WriteFile(cfgPath, []byte(cfgJsonc), 0644))

	cfg, err := LoadConfigFrom(cfgPath, filepath.Join(dir, "none.jsonc"))
	require.Nil(t, err)

	assert.Equal(t, QuotaLimits{Hourly: 10, Daily: 200, RetentionDays: 30}, cfg.Quotas[KindLike])
	assert.Equal(t, QuotaLimits{Hourly: 25, Daily: 50, RetentionDays: 7}, cfg.Quotas[KindReply])
	assert.Equal(t, LangPolicyTags, cfg.Language.Mode)
	assert.False(t, cfg.Language.AllowUnknown)
	assert.Equal(t, []string{"golang"}, cfg.Reply.Terms)
	assert.False(t, cfg.Reply.Shuffle)

	// Custom terms alone keep the shuffle on
	require.Nil(t, os.WriteFile(cfgPath, []byte(`{"reply": {"terms": ["golang"]}}`), 0644))
	cfg, err = LoadConfigFrom(cfgPath, filepath.Join(dir, "none.jsonc"))
	require.Nil(t, err)
	assert.True(t, cfg.Reply.Shuffle)
	assert.True(t, cfg.Language.AllowUnknown)
}

func Test_Load_Config_Malformed(t *testing.T) {
	clearConfigEnv(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.jsonc")
	require.Nil(t, os.WriteFile(cfgPath, []byte(`{"mode": `), 0644))
	_, err := LoadConfigFrom(cfgPath, filepath.Join(dir, "none.jsonc"))
	assert.NotNil(t, err)
}

func Test_Merge_Personas(t *testing.T) {
	cfg := &Config{
		Persona:  "mine",
		Personas: map[string]*Persona{"joe": {SystemPost: "custom"}},
	}
	cfg.MergePersonas(map[string]*Persona{
		"joe":  {SystemPost: "default"},
		"mine": {SystemPost: "other"},
	})
	assert.Equal(t, "custom", cfg.Personas["joe"].SystemPost)
	assert.Equal(t, "joe", cfg.Personas["joe"].ID)
	assert.Equal(t, "mine", cfg.ActivePersona().ID)
}
