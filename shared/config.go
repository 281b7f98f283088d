package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/tailscale/hujson"
	"log"
	"os"
	"strings"
)

const (
	configVarName      = "CONFIG"        // If set, will load config from this path and not from defaultConfigPath
	secretsVarName     = "SECRETS"       // If set, will load secrets from this path and not from defaultSecretsPath
	defaultConfigPath  = "config.jsonc"  // Optional; built-in defaults apply if missing
	defaultSecretsPath = "secrets.jsonc" // Optional; environment variables override it
	envFileName        = ".env"
)

const (
	ModeProd = "prod"
	ModeTest = "test"
)

const (
	LangPolicyNone   = "none"
	LangPolicyTags   = "tags"
	LangPolicyDetect = "detect"
)

type Config struct {
	Secrets             Secrets                `json:"-"`
	Mode                string                 `json:"mode"`
	LogFile             string                 `json:"log_file"`
	LogLevel            string                 `json:"log_level"`
	ServicePort         uint                   `json:"service_port"`
	DataDir             string                 `json:"data_dir"`
	DbFile              string                 `json:"db_file"`
	ProfileDir          string                 `json:"profile_dir"`
	ProfileKeepDays     int                    `json:"profile_keep_days"`
	BlueskyService      string                 `json:"bluesky_service"`
	HttpTimeoutSec      int                    `json:"http_timeout_sec"`
	Quotas              map[string]QuotaLimits `json:"quotas"`
	LedgerRetentionDays int                    `json:"ledger_retention_days"`
	Language            LanguagePolicy         `json:"language"`
	Persona             string                 `json:"persona"`
	Personas            map[string]*Persona    `json:"personas"`
	Reply               ReplySettings          `json:"reply"`
	LikeFollow          LikeFollowSettings     `json:"like_follow"`
	Text                TextSettings           `json:"text"`
	Image               ImageSettings          `json:"image"`
	Topics              TopicSettings          `json:"topics"`
	Jobs                []JobSettings          `json:"jobs"`
}

type QuotaLimits struct {
	Hourly        int `json:"hourly"`
	Daily         int `json:"daily"`
	RetentionDays int `json:"retention_days"`
}

type LanguagePolicy struct {
	Mode         string   `json:"mode"`
	Allowed      []string `json:"allowed"`
	AllowUnknown bool     `json:"allow_unknown"`
}

type ReplySettings struct {
	Terms          []string `json:"terms"`
	PerTerm        int      `json:"per_term"`
	MaxPerRun      int      `json:"max_per_run"`
	TestMaxPerRun  int      `json:"test_max_per_run"`
	DelaySec       int      `json:"delay_sec"`
	SearchDelayMs  int      `json:"search_delay_ms"`
	Shuffle        bool     `json:"shuffle"`
	MaxSourceChars int      `json:"max_source_chars"`
}

type LikeFollowSettings struct {
	Terms          []string `json:"terms"`
	MaxPerTerm     int      `json:"max_per_term"`
	TestMaxPerTerm int      `json:"test_max_per_term"`
	DelayMs        int      `json:"delay_ms"`
}

type TextSettings struct {
	DeepSeekUrl   string `json:"deepseek_url"`
	DeepSeekModel string `json:"deepseek_model"`
	OpenAIUrl     string `json:"openai_url"`
	OpenAIModel   string `json:"openai_model"`
	GeminiModel   string `json:"gemini_model"`
}

type ImageSettings struct {
	Persona      string `json:"persona"`
	InferenceUrl string `json:"inference_url"`
	Model        string `json:"model"`
	MaxBytes     int    `json:"max_bytes"`
}

type TopicSettings struct {
	Feeds     []string `json:"feeds"`
	FeedRatio float64  `json:"feed_ratio"`
}

// JobSettings describes one recurring job; it expands to one scheduled job per hour in Hours.
type JobSettings struct {
	Name            string `json:"name"`
	Workflow        string `json:"workflow"`
	Hours           []int  `json:"hours"`
	IntervalHours   int    `json:"interval_hours"`
	MaxRuns         int    `json:"max_runs"`
	TestDelayMin    int    `json:"test_delay_min"`
	TestIntervalMin int    `json:"test_interval_min"`
}

type Secrets struct {
	BlueskyHandle    string   `json:"bluesky_handle"`
	BlueskyPassword  string   `json:"bluesky_password"`
	DeepSeekKey      string   `json:"deepseek_key"`
	GeminiKey        string   `json:"gemini_api_key"`
	OpenAIKey        string   `json:"openai_key"`
	HuggingFaceToken string   `json:"huggingface_token"`
	MetricsAuth      string   `json:"metrics_auth"`
	ApiKeys          []string `json:"api_keys"`
}

func LoadConfig() *Config {

	// A missing .env is the normal case in production
	_ = godotenv.Load(envFileName)

	// Where are our config and secrets files?
	cfgPath := os.Getenv(configVarName)
	if len(cfgPath) == 0 {
		cfgPath = defaultConfigPath
	}
	secretsPath := os.Getenv(secretsVarName)
	if len(secretsPath) == 0 {
		secretsPath = defaultSecretsPath
	}

	cfg, err := LoadConfigFrom(cfgPath, secretsPath)
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

// LoadConfigFrom reads the optional config and secrets files, fills in defaults,
// then applies environment overrides.
func LoadConfigFrom(cfgPath, secretsPath string) (*Config, error) {
	config := seedConfig()
	if err := deserializeFileIfExists(cfgPath, &config); err != nil {
		return nil, err
	}
	if err := deserializeFileIfExists(secretsPath, &config.Secrets); err != nil {
		return nil, err
	}
	config.applyDefaults()
	config.applyEnv()
	return &config, nil
}

func deserializeFileIfExists[T any](fileName string, obj *T) error {
	var err error
	var cfgJson []byte
	cfgJson, err = os.ReadFile(fileName)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	// JSONC => JSON
	cfgJson, err = StandardizeJSON(cfgJson)
	if err != nil {
		return fmt.Errorf("%s: %w", fileName, err)
	}
	// Parse
	if err := json.Unmarshal(cfgJson, obj); err != nil {
		return fmt.Errorf("%s: %w", fileName, err)
	}
	return nil
}

func StandardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}

func (cfg *Config) applyEnv() {
	setFromEnv := func(name string, dst *string) {
		if val := os.Getenv(name); val != "" {
			*dst = val
		}
	}
	setFromEnv("BLUESKY_HANDLE", &cfg.Secrets.BlueskyHandle)
	setFromEnv("BLUESKY_PASSWORD", &cfg.Secrets.BlueskyPassword)
	setFromEnv("BLUESKY_SERVICE", &cfg.BlueskyService)
	setFromEnv("DEEPSEEK_KEY", &cfg.Secrets.DeepSeekKey)
	setFromEnv("GEMINI_API_KEY", &cfg.Secrets.GeminiKey)
	setFromEnv("OPENAI_KEY", &cfg.Secrets.OpenAIKey)
	setFromEnv("HUGGINGFACE_TOKEN", &cfg.Secrets.HuggingFaceToken)
	setFromEnv("METRICS_AUTH", &cfg.Secrets.MetricsAuth)
	if keys := os.Getenv("API_KEYS"); keys != "" {
		cfg.Secrets.ApiKeys = nil
		for _, key := range strings.Split(keys, ",") {
			if key = strings.TrimSpace(key); key != "" {
				cfg.Secrets.ApiKeys = append(cfg.Secrets.ApiKeys, key)
			}
		}
	}
	// NODE_ENV=test is what the old deployments set
	if os.Getenv("NODE_ENV") == ModeTest {
		cfg.Mode = ModeTest
	}
	setFromEnv("BOT_MODE", &cfg.Mode)
}

// Validate checks that everything needed to act on the network is present.
func (cfg *Config) Validate() error {
	if cfg.Secrets.BlueskyHandle == "" || cfg.Secrets.BlueskyPassword == "" {
		return errors.New("BLUESKY_HANDLE and BLUESKY_PASSWORD must be set")
	}
	if cfg.Secrets.DeepSeekKey == "" && cfg.Secrets.GeminiKey == "" && cfg.Secrets.OpenAIKey == "" {
		return errors.New("one of DEEPSEEK_KEY, GEMINI_API_KEY or OPENAI_KEY must be set")
	}
	if cfg.Mode != ModeProd && cfg.Mode != ModeTest {
		return fmt.Errorf("invalid mode '%s'", cfg.Mode)
	}
	switch cfg.Language.Mode {
	case LangPolicyNone, LangPolicyTags, LangPolicyDetect:
	default:
		return fmt.Errorf("invalid language policy '%s'", cfg.Language.Mode)
	}
	return nil
}

func (cfg *Config) IsTestMode() bool {
	return cfg.Mode == ModeTest
}

func (cfg *Config) RepliesPerRun() int {
	if cfg.IsTestMode() {
		return cfg.Reply.TestMaxPerRun
	}
	return cfg.Reply.MaxPerRun
}

func (cfg *Config) LikesPerTerm() int {
	if cfg.IsTestMode() {
		return cfg.LikeFollow.TestMaxPerTerm
	}
	return cfg.LikeFollow.MaxPerTerm
}

// ActivePersona returns the persona selected by the persona key, or nil if the table has no such entry.
func (cfg *Config) ActivePersona() *Persona {
	if p, ok := cfg.Personas[cfg.Persona]; ok {
		return p
	}
	return nil
}

// ImagePersona supplies scenes and the image prompt; it falls back to the active persona.
func (cfg *Config) ImagePersona() *Persona {
	if p, ok := cfg.Personas[cfg.Image.Persona]; ok {
		return p
	}
	return cfg.ActivePersona()
}
