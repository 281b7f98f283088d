package logic

import (
	"bluebot/shared"
	"github.com/abadojack/whatlanggo"
	"strings"
)

type languageFilter struct {
	policy  shared.LanguagePolicy
	allowed map[string]bool
}

func newLanguageFilter(policy shared.LanguagePolicy) *languageFilter {
	res := languageFilter{
		policy:  policy,
		allowed: map[string]bool{},
	}
	for _, lang := range policy.Allowed {
		res.allowed[primaryLang(lang)] = true
	}
	return &res
}

// accept checks c against the policy. In detect mode it also fills in c.DetectedLang;
// in tags mode it sets it to the first allowed declared language.
func (lf *languageFilter) accept(c *Candidate) bool {
	switch lf.policy.Mode {
	case shared.LangPolicyTags:
		return lf.acceptTags(c)
	case shared.LangPolicyDetect:
		return lf.acceptDetected(c)
	default:
		return true
	}
}

func (lf *languageFilter) acceptTags(c *Candidate) bool {
	if len(c.Langs) == 0 {
		return lf.policy.AllowUnknown
	}
	for _, tag := range c.Langs {
		lang := primaryLang(tag)
		if lf.allowed[lang] {
			c.DetectedLang = lang
			return true
		}
	}
	return false
}

func (lf *languageFilter) acceptDetected(c *Candidate) bool {
	text := strings.TrimSpace(c.Text)
	if text == "" {
		return lf.policy.AllowUnknown
	}
	info := whatlanggo.Detect(text)
	lang := info.Lang.Iso6391()
	if !info.IsReliable() || lang == "" {
		return lf.policy.AllowUnknown
	}
	c.DetectedLang = lang
	return lf.allowed[lang]
}
