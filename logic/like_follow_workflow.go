package logic

import (
	"bluebot/shared"
	"context"
	"strings"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_like_follow_workflow.go -package mocks bluebot/logic ILikeFollowWorkflow

type ILikeFollowWorkflow interface {
	Run(ctx context.Context) (*RunResult, error)
	RunTerm(ctx context.Context, term string, max int) (*RunResult, error)
}

type likeFollowWorkflow struct {
	cfg     *shared.Config
	logger  shared.ILogger
	metrics IMetrics
	client  ISocialClient
	quota   IQuotaManager
}

func NewLikeFollowWorkflow(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics IMetrics,
	client ISocialClient,
	quota IQuotaManager,
) ILikeFollowWorkflow {
	return &likeFollowWorkflow{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		client:  client,
		quota:   quota,
	}
}

// Run logs in once and works through every configured term.
func (lf *likeFollowWorkflow) Run(ctx context.Context) (*RunResult, error) {
	run := newWorkflowRun(shared.WorkflowLikeFollow, lf.logger, lf.metrics)

	run.enter(StageAuthenticating)
	if err := lf.client.Login(ctx); err != nil {
		return run.fail(err)
	}
	for _, term := range lf.cfg.LikeFollow.Terms {
		exhausted, err := lf.runTerm(ctx, run, term, lf.cfg.LikesPerTerm())
		if err != nil {
			return run.fail(err)
		}
		if exhausted {
			break
		}
	}
	return run.done()
}

func (lf *likeFollowWorkflow) RunTerm(ctx context.Context, term string, max int) (*RunResult, error) {
	run := newWorkflowRun(shared.WorkflowLikeFollow, lf.logger, lf.metrics)

	run.enter(StageAuthenticating)
	if err := lf.client.Login(ctx); err != nil {
		return run.fail(err)
	}
	if _, err := lf.runTerm(ctx, run, term, max); err != nil {
		return run.fail(err)
	}
	return run.done()
}

// searchQuery turns a bare single word into a hashtag query.
func searchQuery(term string) string {
	term = strings.TrimSpace(term)
	if term == "" || strings.HasPrefix(term, "#") || strings.ContainsAny(term, " \t") {
		return term
	}
	return "#" + term
}

// runTerm returns exhausted=true once neither likes nor follows have quota left.
// A search failure only ends this term; a cancelled context ends the run.
func (lf *likeFollowWorkflow) runTerm(ctx context.Context, run *workflowRun, term string, max int) (bool, error) {
	query := searchQuery(term)

	run.enter(StageFetchingCandidates)
	lf.logger.Infof("Searching posts for %s (max %d)", query, max)
	candidates, err := lf.client.Search(ctx, query, max)
	if err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		lf.logger.Errorf("Search for %s failed: %v", query, err)
		run.result.Failures++
		return false, nil
	}
	lf.logger.Infof("%d posts found for %s", len(candidates), query)

	delay := time.Duration(lf.cfg.LikeFollow.DelayMs) * time.Millisecond
	processed := 0
	for i, c := range candidates {
		if processed >= max {
			break
		}

		run.enter(StageFiltering)
		likeOk := lf.quota.CheckQuota(ActionLike).Allowed
		followOk := lf.quota.CheckQuota(ActionFollow).Allowed
		if !likeOk && !followOk {
			lf.logger.Infof("Like and follow quotas exhausted; stopping")
			return true, nil
		}
		if !c.complete() {
			lf.logger.Warnf("Incomplete post skipped: %s", c.Uri)
			run.result.Skipped++
			continue
		}
		if c.AuthorDid == lf.client.Did() {
			run.result.Skipped++
			continue
		}
		doLike := likeOk && !lf.quota.HasActed(ActionLike, c.AuthorDid)
		doFollow := followOk && !lf.quota.HasActed(ActionFollow, c.AuthorDid)
		if !doLike && !doFollow {
			lf.logger.Debugf("Author %s already handled; skipping", c.AuthorHandle)
			run.result.Skipped++
			continue
		}

		processed++
		lf.logger.Infof("Processing post %d/%d: %s", i+1, len(candidates), c.Uri)

		// Like and follow are independent; neither failure undoes the other
		run.enter(StageSubmitting)
		if doLike {
			if err = lf.client.Like(ctx, c.Uri, c.Cid); err != nil {
				lf.logger.Errorf("Like failed: %s: %v", c.Uri, err)
				run.result.Failures++
			} else {
				run.enter(StageRecording)
				lf.quota.RecordAction(ActionLike, c.AuthorDid, c.AuthorHandle)
				run.result.Actions++
			}
		}
		if doFollow {
			run.enter(StageSubmitting)
			if err = lf.client.Follow(ctx, c.AuthorDid); err != nil {
				lf.logger.Errorf("Follow failed: %s: %v", c.AuthorHandle, err)
				run.result.Failures++
			} else {
				run.enter(StageRecording)
				lf.quota.RecordAction(ActionFollow, c.AuthorDid, c.AuthorHandle)
				run.result.Actions++
			}
		}

		if err = sleepCtx(ctx, delay); err != nil {
			return false, err
		}
	}
	lf.logger.Infof("Done with %s", query)
	return false, nil
}
