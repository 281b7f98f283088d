package logic

import (
	"bluebot/dal"
	"bluebot/dto"
	"bluebot/shared"
	"context"
	"errors"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_reply_workflow.go -package mocks bluebot/logic IReplyWorkflow

var errNoCandidates = errors.New("search returned no candidates")

type IReplyWorkflow interface {
	Run(ctx context.Context) (*RunResult, error)
}

type replyWorkflow struct {
	cfg     *shared.Config
	logger  shared.ILogger
	metrics IMetrics
	client  ISocialClient
	finder  ICandidateFinder
	quota   IQuotaManager
	ledger  IReplyLedger
	gen     ITextGenerator
	repo    dal.IRepo
}

func NewReplyWorkflow(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics IMetrics,
	client ISocialClient,
	finder ICandidateFinder,
	quota IQuotaManager,
	ledger IReplyLedger,
	gen ITextGenerator,
	repo dal.IRepo,
) IReplyWorkflow {
	return &replyWorkflow{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		client:  client,
		finder:  finder,
		quota:   quota,
		ledger:  ledger,
		gen:     gen,
		repo:    repo,
	}
}

func (rw *replyWorkflow) Run(ctx context.Context) (*RunResult, error) {
	run := newWorkflowRun(shared.WorkflowReply, rw.logger, rw.metrics)

	run.enter(StageAuthenticating)
	if err := rw.client.Login(ctx); err != nil {
		return run.fail(err)
	}

	run.enter(StageFetchingCandidates)
	candidates, err := rw.finder.Find(ctx, rw.cfg.Reply.Terms, rw.cfg.Reply.PerTerm)
	if err != nil {
		return run.fail(err)
	}
	if len(candidates) == 0 {
		return run.fail(errNoCandidates)
	}

	maxAttempts := rw.cfg.RepliesPerRun()
	delay := time.Duration(rw.cfg.Reply.DelaySec) * time.Second
	attempts := 0
	for _, c := range candidates {
		if attempts >= maxAttempts {
			rw.logger.Infof("Reached %d replies for this run", maxAttempts)
			break
		}

		run.enter(StageFiltering)
		if quota := rw.quota.CheckQuota(ActionReply); !quota.Allowed {
			rw.logger.Infof("Reply quota exhausted (%d/%d hourly, %d/%d daily); ending run",
				quota.HourlyUsage, quota.HourlyLimit, quota.DailyUsage, quota.DailyLimit)
			break
		}
		if c.AuthorDid == rw.client.Did() {
			run.result.Skipped++
			continue
		}
		if ok, reason := rw.finder.Accepts(c); !ok {
			rw.logger.Debugf("Skipping %s: %s", c.Uri, reason)
			run.result.Skipped++
			continue
		}
		source := shared.TruncateText(shared.OneLine(c.Text), rw.cfg.Reply.MaxSourceChars)
		if source == "" {
			run.result.Skipped++
			continue
		}

		attempts++
		if err = rw.replyTo(ctx, run, c, source); err != nil {
			rw.logger.Errorf("Failed to reply to %s: %v", c.Uri, err)
			run.result.Failures++
		} else {
			run.result.Actions++
		}

		if attempts < maxAttempts {
			if err = sleepCtx(ctx, delay); err != nil {
				return run.fail(err)
			}
		}
	}
	return run.done()
}

func (rw *replyWorkflow) replyTo(ctx context.Context, run *workflowRun, c *Candidate, source string) error {
	lang := c.ReplyLang()

	run.enter(StageGenerating)
	rw.logger.Infof("Generating reply to @%s: %s", c.AuthorHandle, shared.TruncateWithEllipsis(source, 80))
	text, err := rw.gen.GenerateReplyText(ctx, source, lang)
	if err != nil {
		return err
	}

	run.enter(StageSubmitting)
	parent := &dto.StrongRef{Uri: c.Uri, Cid: c.Cid}
	ref, err := rw.client.CreatePost(ctx, &NewPost{Text: text, Langs: []string{lang}, ReplyTo: parent})
	if err != nil {
		return err
	}
	rw.logger.Infof("Replied to %s: %s", shared.PostWebUrl(c.Uri), text)

	run.enter(StageRecording)
	rw.ledger.MarkContacted(c.AuthorDid, c.Uri)
	rw.quota.RecordAction(ActionReply, c.Uri, c.AuthorHandle)
	rw.metrics.PostPublished(shared.WorkflowReply)
	recordPublished(rw.repo, rw.logger, ref, shared.WorkflowReply, text, c.Uri)
	return nil
}

// recordPublished appends to the post log; failures are only logged.
func recordPublished(repo dal.IRepo, logger shared.ILogger, ref *dto.StrongRef, kind, text, replyTo string) {
	post := dal.PublishedPost{
		Uri:       ref.Uri,
		Cid:       ref.Cid,
		Kind:      kind,
		Text:      text,
		ReplyTo:   replyTo,
		CreatedAt: time.Now(),
	}
	if err := repo.AddPublishedPost(&post); err != nil {
		logger.Errorf("Failed to store published post %s: %v", ref.Uri, err)
	}
}
