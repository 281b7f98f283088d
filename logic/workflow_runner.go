package logic

import (
	"bluebot/shared"
	"context"
	"fmt"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_workflow_runner.go -package mocks bluebot/logic IWorkflowRunner

// IWorkflowRunner dispatches a workflow by name and shields the caller from panics inside it.
type IWorkflowRunner interface {
	RunWorkflow(ctx context.Context, workflow string) (*RunResult, error)
}

type workflowRunner struct {
	logger     shared.ILogger
	reply      IReplyWorkflow
	likeFollow ILikeFollowWorkflow
	post       IPostWorkflow
}

func NewWorkflowRunner(
	logger shared.ILogger,
	reply IReplyWorkflow,
	likeFollow ILikeFollowWorkflow,
	post IPostWorkflow,
) IWorkflowRunner {
	return &workflowRunner{
		logger:     logger,
		reply:      reply,
		likeFollow: likeFollow,
		post:       post,
	}
}

func (wr *workflowRunner) RunWorkflow(ctx context.Context, workflow string) (res *RunResult, err error) {

	defer func() {
		if r := recover(); r != nil {
			wr.logger.Errorf("Workflow %s panicked: %v", workflow, r)
			res = &RunResult{Workflow: workflow, Final: StageFailed}
			err = fmt.Errorf("workflow %s panicked: %v", workflow, r)
		}
	}()

	switch workflow {
	case shared.WorkflowReply:
		return wr.reply.Run(ctx)
	case shared.WorkflowLikeFollow:
		return wr.likeFollow.Run(ctx)
	case shared.WorkflowImagePost:
		return wr.post.RunImagePost(ctx)
	case shared.WorkflowTextPost:
		return wr.post.RunTextPost(ctx)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownWorkflow, workflow)
	}
}
