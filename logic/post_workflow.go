package logic

import (
	"bluebot/dal"
	"bluebot/dto"
	"bluebot/shared"
	"bluebot/texts"
	"context"
	"fmt"
	"math/rand/v2"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_post_workflow.go -package mocks bluebot/logic IPostWorkflow

const postLang = "en"

type IPostWorkflow interface {
	RunImagePost(ctx context.Context) (*RunResult, error)
	RunTextPost(ctx context.Context) (*RunResult, error)
}

type postWorkflow struct {
	cfg      *shared.Config
	logger   shared.ILogger
	metrics  IMetrics
	client   ISocialClient
	gen      ITextGenerator
	img      IImageGenerator
	topics   ITopicPicker
	repo     dal.IRepo
	shrinker *imageShrinker
}

func NewPostWorkflow(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics IMetrics,
	client ISocialClient,
	gen ITextGenerator,
	img IImageGenerator,
	topics ITopicPicker,
	repo dal.IRepo,
) IPostWorkflow {
	return &postWorkflow{
		cfg:      cfg,
		logger:   logger,
		metrics:  metrics,
		client:   client,
		gen:      gen,
		img:      img,
		topics:   topics,
		repo:     repo,
		shrinker: newImageShrinker(logger, cfg.Image.MaxBytes),
	}
}

func (pw *postWorkflow) RunTextPost(ctx context.Context) (*RunResult, error) {
	run := newWorkflowRun(shared.WorkflowTextPost, pw.logger, pw.metrics)
	persona := pw.cfg.ActivePersona()
	if persona == nil {
		return run.fail(fmt.Errorf("%w: %s", ErrUnknownPersona, pw.cfg.Persona))
	}

	run.enter(StageAuthenticating)
	if err := pw.client.Login(ctx); err != nil {
		return run.fail(err)
	}

	run.enter(StageGenerating)
	topic := pw.topics.PickTopic(ctx, persona)
	text, err := pw.gen.GeneratePostText(ctx, persona, topic)
	if err != nil {
		return run.fail(err)
	}

	run.enter(StageSubmitting)
	ref, err := pw.client.CreatePost(ctx, &NewPost{Text: text, Langs: []string{postLang}})
	if err != nil {
		return run.fail(err)
	}
	pw.logger.Infof("Text post published: %s %s", shared.PostWebUrl(ref.Uri), text)

	run.enter(StageRecording)
	pw.metrics.PostPublished(shared.WorkflowTextPost)
	recordPublished(pw.repo, pw.logger, ref, shared.WorkflowTextPost, text, "")
	run.result.Actions++
	return run.done()
}

func (pw *postWorkflow) RunImagePost(ctx context.Context) (*RunResult, error) {
	run := newWorkflowRun(shared.WorkflowImagePost, pw.logger, pw.metrics)
	persona := pw.cfg.ImagePersona()
	if persona == nil {
		return run.fail(fmt.Errorf("%w: %s", ErrUnknownPersona, pw.cfg.Image.Persona))
	}
	if persona.ImagePrompt == "" {
		return run.fail(fmt.Errorf("persona %s has no image prompt", persona.ID))
	}

	run.enter(StageAuthenticating)
	if err := pw.client.Login(ctx); err != nil {
		return run.fail(err)
	}

	run.enter(StageGenerating)
	topic := pw.topics.PickTopic(ctx, persona)
	text, err := pw.gen.GeneratePostText(ctx, persona, topic)
	if err != nil {
		return run.fail(err)
	}
	pw.logger.Infof("Generated text: %s", text)

	prompt := buildImagePrompt(persona)
	pw.logger.Infof("Image prompt: %s", prompt)
	data, mimeType, err := pw.img.Generate(ctx, prompt)
	if err != nil {
		return run.fail(err)
	}
	if data, mimeType, err = pw.shrinker.shrink(data, mimeType); err != nil {
		return run.fail(err)
	}

	run.enter(StageSubmitting)
	blob, err := pw.client.UploadBlob(ctx, data, mimeType)
	if err != nil {
		return run.fail(err)
	}
	post := NewPost{
		Text:   text,
		Langs:  []string{postLang},
		Images: []*dto.EmbedImage{{Image: blob, Alt: persona.ImageAlt}},
	}
	ref, err := pw.client.CreatePost(ctx, &post)
	if err != nil {
		return run.fail(err)
	}
	pw.logger.Infof("Image post published: %s", shared.PostWebUrl(ref.Uri))

	run.enter(StageRecording)
	pw.metrics.PostPublished(shared.WorkflowImagePost)
	recordPublished(pw.repo, pw.logger, ref, shared.WorkflowImagePost, text, "")
	run.result.Actions++
	return run.done()
}

func buildImagePrompt(persona *shared.Persona) string {
	scene := "in a professional setting"
	if len(persona.Scenes) != 0 {
		scene = persona.Scenes[rand.IntN(len(persona.Scenes))]
	}
	return texts.Fill(persona.ImagePrompt, map[string]string{"scene": scene})
}
