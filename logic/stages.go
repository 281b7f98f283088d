package logic

import (
	"bluebot/shared"
	"fmt"
)

type Stage string

const (
	StageIdle               Stage = "IDLE"
	StageAuthenticating     Stage = "AUTHENTICATING"
	StageFetchingCandidates Stage = "FETCHING_CANDIDATES"
	StageFiltering          Stage = "FILTERING"
	StageGenerating         Stage = "GENERATING"
	StageSubmitting         Stage = "SUBMITTING"
	StageRecording          Stage = "RECORDING"
	StageDone               Stage = "DONE"
	StageFailed             Stage = "FAILED"
)

// RunResult is the outcome of one workflow run.
type RunResult struct {
	Workflow string
	Final    Stage
	Actions  int
	Failures int
	Skipped  int
}

func (rr *RunResult) String() string {
	return fmt.Sprintf("%s finished %s: %d actions, %d failures, %d skipped",
		rr.Workflow, rr.Final, rr.Actions, rr.Failures, rr.Skipped)
}

// workflowRun tracks the stage machine of a single run and reports transitions.
type workflowRun struct {
	logger  shared.ILogger
	metrics IMetrics
	stage   Stage
	result  *RunResult
}

func newWorkflowRun(workflow string, logger shared.ILogger, metrics IMetrics) *workflowRun {
	return &workflowRun{
		logger:  logger,
		metrics: metrics,
		stage:   StageIdle,
		result:  &RunResult{Workflow: workflow, Final: StageIdle},
	}
}

func (wr *workflowRun) enter(stage Stage) {
	if wr.stage == stage {
		return
	}
	wr.logger.Debugf("[%s] %s -> %s", wr.result.Workflow, wr.stage, stage)
	wr.stage = stage
	wr.result.Final = stage
}

func (wr *workflowRun) done() (*RunResult, error) {
	wr.enter(StageDone)
	wr.logger.Info(wr.result.String())
	wr.metrics.WorkflowFinished(wr.result.Workflow, StageDone)
	return wr.result, nil
}

func (wr *workflowRun) fail(err error) (*RunResult, error) {
	failedIn := wr.stage
	wr.enter(StageFailed)
	wr.logger.Errorf("[%s] failed in %s: %v", wr.result.Workflow, failedIn, err)
	wr.metrics.WorkflowFinished(wr.result.Workflow, StageFailed)
	return wr.result, err
}
