package logic

import (
	"bluebot/shared"
	"bluebot/texts"
	"context"
	"fmt"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"math/rand/v2"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_text_generator.go -package mocks bluebot/logic ITextGenerator

// ITextGenerator writes posts and replies in a persona's voice.
type ITextGenerator interface {
	GeneratePostText(ctx context.Context, persona *shared.Persona, topic string) (string, error)
	GenerateReplyText(ctx context.Context, original, lang string) (string, error)
}

type textGenerator struct {
	cfg      *shared.Config
	logger   shared.ILogger
	txt      texts.ITexts
	provider IChatProvider
	rnd      func() float64
}

func NewTextGenerator(
	cfg *shared.Config,
	logger shared.ILogger,
	txt texts.ITexts,
	provider IChatProvider,
) ITextGenerator {
	return &textGenerator{
		cfg:      cfg,
		logger:   logger,
		txt:      txt,
		provider: provider,
		rnd:      rand.Float64,
	}
}

func (tg *textGenerator) GeneratePostText(ctx context.Context, persona *shared.Persona, topic string) (string, error) {
	if persona == nil {
		return "", ErrUnknownPersona
	}
	tmpl := persona.PostLong
	if tg.rnd() < persona.ShortRatio && persona.PostShort != "" {
		tmpl = persona.PostShort
	}
	req := ChatRequest{
		System:      persona.SystemPost,
		User:        texts.Fill(tmpl, map[string]string{"topic": topic}),
		MaxTokens:   persona.PostMaxTokens,
		Temperature: persona.Temperature,
	}
	raw, err := tg.provider.Complete(ctx, &req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", tg.provider.Name(), err)
	}
	text := cleanPostText(raw, persona.MaxPostChars)
	if text == "" {
		return "", ErrEmptyGeneration
	}
	tg.logger.Debugf("Generated post for topic '%s': %s", topic, text)
	return text, nil
}

func (tg *textGenerator) GenerateReplyText(ctx context.Context, original, lang string) (string, error) {
	persona := tg.cfg.ActivePersona()
	if persona == nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownPersona, tg.cfg.Persona)
	}
	langLine := tg.txt.WithVals("reply-language.txt", map[string]string{"language": languageName(lang)})
	req := ChatRequest{
		System:      texts.Fill(persona.SystemReply, map[string]string{"language": langLine}),
		User:        tg.txt.WithVals("reply-user.txt", map[string]string{"original": original}),
		MaxTokens:   persona.ReplyMaxTokens,
		Temperature: persona.Temperature,
	}
	raw, err := tg.provider.Complete(ctx, &req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", tg.provider.Name(), err)
	}
	text := cleanReplyText(raw, persona.MaxReplyChars)
	if text == "" {
		return "", ErrEmptyGeneration
	}
	return text, nil
}

// languageName turns a language tag into its English name; unknown tags mean English.
func languageName(tag string) string {
	parsed, err := language.Parse(tag)
	if err != nil || tag == "" {
		return "English"
	}
	name := display.English.Languages().Name(parsed)
	if name == "" {
		return "English"
	}
	return name
}
