package shared

// Persona is one character voice: the prompts and length limits that drive text generation.
// Prompt strings may contain {{topic}}, {{language}} and {{scene}} placeholders.
type Persona struct {
	ID             string   `json:"-"`
	SystemPost     string   `json:"system_post"`
	SystemReply    string   `json:"system_reply"`
	PostShort      string   `json:"post_short"`
	PostLong       string   `json:"post_long"`
	Topics         []string `json:"topics"`
	Scenes         []string `json:"scenes"`
	ImagePrompt    string   `json:"image_prompt"`
	ImageAlt       string   `json:"image_alt"`
	ShortRatio     float64  `json:"short_ratio"`
	MaxPostChars   int      `json:"max_post_chars"`
	MaxReplyChars  int      `json:"max_reply_chars"`
	PostMaxTokens  int      `json:"post_max_tokens"`
	ReplyMaxTokens int      `json:"reply_max_tokens"`
	Temperature    float64  `json:"temperature"`
}
