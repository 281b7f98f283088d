package shared

const (
	KindLike   = "like"
	KindFollow = "follow"
	KindReply  = "reply"
)

const (
	WorkflowReply      = "reply"
	WorkflowLikeFollow = "like_follow"
	WorkflowImagePost  = "image_post"
	WorkflowTextPost   = "text_post"
)

const (
	defaultBlueskyService = "https://bsky.social"
	defaultDeepSeekUrl    = "https://api.deepseek.com/v1/chat/completions"
	defaultDeepSeekModel  = "deepseek-chat"
	defaultOpenAIUrl      = "https://api.openai.com/v1/chat/completions"
	defaultOpenAIModel    = "gpt-3.5-turbo"
	defaultGeminiModel    = "gemini-2.0-flash"
	defaultInferenceUrl   = "https://api-inference.huggingface.co/models/"
	defaultImageModel     = "black-forest-labs/FLUX.1-dev"
	defaultMaxImageBytes  = 900 * 1024
	defaultMaxRuns        = 3650
)

var defaultQuotas = map[string]QuotaLimits{
	KindLike:   {Hourly: 30, Daily: 200, RetentionDays: 30},
	KindFollow: {Hourly: 30, Daily: 200, RetentionDays: 30},
	KindReply:  {Hourly: 25, Daily: 100, RetentionDays: 30},
}

var defaultReplyTerms = []string{"#memecoin", "#crypto", "#ai", "#tech", "#nft"}

var defaultLikeFollowTerms = []string{"#nft", "#nftart", "#nftcollector", "#digitalart", "#cryptoart"}

func defaultJobs() []JobSettings {
	return []JobSettings{
		{
			Name:            "reply",
			Workflow:        WorkflowReply,
			Hours:           []int{0, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 22},
			IntervalHours:   24,
			MaxRuns:         defaultMaxRuns,
			TestDelayMin:    1,
			TestIntervalMin: 5,
		},
		{
			Name:            "like-follow",
			Workflow:        WorkflowLikeFollow,
			Hours:           []int{4, 12, 20},
			IntervalHours:   24,
			MaxRuns:         defaultMaxRuns,
			TestDelayMin:    3,
			TestIntervalMin: 10,
		},
		{
			Name:            "text-post",
			Workflow:        WorkflowTextPost,
			Hours:           []int{9, 13, 17},
			IntervalHours:   24,
			MaxRuns:         defaultMaxRuns,
			TestDelayMin:    15,
			TestIntervalMin: 30,
		},
		{
			Name:            "image-post",
			Workflow:        WorkflowImagePost,
			Hours:           []int{11},
			IntervalHours:   24,
			MaxRuns:         defaultMaxRuns,
			TestDelayMin:    2,
			TestIntervalMin: 30,
		},
	}
}

// seedConfig is what config files are decoded into. It carries the defaults of flags
// where an explicit false must survive.
func seedConfig() Config {
	return Config{
		Language: LanguagePolicy{AllowUnknown: true},
		Reply:    ReplySettings{Shuffle: true},
	}
}

func (cfg *Config) applyDefaults() {
	setStr := func(dst *string, val string) {
		if *dst == "" {
			*dst = val
		}
	}
	setInt := func(dst *int, val int) {
		if *dst == 0 {
			*dst = val
		}
	}

	setStr(&cfg.Mode, ModeProd)
	setStr(&cfg.LogFile, "bluebot.log")
	setStr(&cfg.LogLevel, "Info")
	if cfg.ServicePort == 0 {
		cfg.ServicePort = 8080
	}
	setStr(&cfg.DataDir, "data")
	setStr(&cfg.DbFile, "bluebot.db")
	setInt(&cfg.ProfileKeepDays, 3)
	setStr(&cfg.BlueskyService, defaultBlueskyService)
	setInt(&cfg.HttpTimeoutSec, 30)

	if cfg.Quotas == nil {
		cfg.Quotas = map[string]QuotaLimits{}
	}
	for kind, def := range defaultQuotas {
		limits := cfg.Quotas[kind]
		setInt(&limits.Hourly, def.Hourly)
		setInt(&limits.Daily, def.Daily)
		setInt(&limits.RetentionDays, def.RetentionDays)
		cfg.Quotas[kind] = limits
	}
	setInt(&cfg.LedgerRetentionDays, 14)

	setStr(&cfg.Language.Mode, LangPolicyTags)
	if len(cfg.Language.Allowed) == 0 {
		cfg.Language.Allowed = []string{"en", "fr"}
	}

	setStr(&cfg.Persona, "joe")

	if len(cfg.Reply.Terms) == 0 {
		cfg.Reply.Terms = defaultReplyTerms
	}
	setInt(&cfg.Reply.PerTerm, 25)
	setInt(&cfg.Reply.MaxPerRun, 10)
	setInt(&cfg.Reply.TestMaxPerRun, 2)
	setInt(&cfg.Reply.DelaySec, 2)
	setInt(&cfg.Reply.SearchDelayMs, 1000)
	setInt(&cfg.Reply.MaxSourceChars, 500)

	if len(cfg.LikeFollow.Terms) == 0 {
		cfg.LikeFollow.Terms = defaultLikeFollowTerms
	}
	setInt(&cfg.LikeFollow.MaxPerTerm, 10)
	setInt(&cfg.LikeFollow.TestMaxPerTerm, 2)
	setInt(&cfg.LikeFollow.DelayMs, 3000)

	setStr(&cfg.Text.DeepSeekUrl, defaultDeepSeekUrl)
	setStr(&cfg.Text.DeepSeekModel, defaultDeepSeekModel)
	setStr(&cfg.Text.OpenAIUrl, defaultOpenAIUrl)
	setStr(&cfg.Text.OpenAIModel, defaultOpenAIModel)
	setStr(&cfg.Text.GeminiModel, defaultGeminiModel)

	setStr(&cfg.Image.Persona, "clippy")
	setStr(&cfg.Image.InferenceUrl, defaultInferenceUrl)
	setStr(&cfg.Image.Model, defaultImageModel)
	setInt(&cfg.Image.MaxBytes, defaultMaxImageBytes)

	if len(cfg.Jobs) == 0 {
		cfg.Jobs = defaultJobs()
	}
	for i := range cfg.Jobs {
		setInt(&cfg.Jobs[i].IntervalHours, 24)
		setInt(&cfg.Jobs[i].MaxRuns, defaultMaxRuns)
		setInt(&cfg.Jobs[i].TestDelayMin, 1)
		setInt(&cfg.Jobs[i].TestIntervalMin, 5)
	}
}

// MergePersonas adds every persona from defs whose ID the config does not already define.
func (cfg *Config) MergePersonas(defs map[string]*Persona) {
	if cfg.Personas == nil {
		cfg.Personas = map[string]*Persona{}
	}
	for id, p := range defs {
		if _, ok := cfg.Personas[id]; ok {
			continue
		}
		cfg.Personas[id] = p
	}
	for id, p := range cfg.Personas {
		p.ID = id
	}
}
