package logic

import (
	"bluebot/dal"
	"bluebot/dto"
	"bluebot/shared"
	"context"
	"fmt"
	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"sort"
	"sync"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_scheduler.go -package mocks bluebot/logic IScheduler

// IScheduler binds workflows to recurring wall-clock triggers.
type IScheduler interface {
	Start() error
	Stop() error
	Jobs() []*dto.JobStatus
	RunNow(name string) error
}

// jobSpec is one concrete scheduled job after expanding the per-hour job table.
type jobSpec struct {
	name     string
	workflow string
	trigger  time.Time
	interval time.Duration
	maxRuns  int
}

type jobEntry struct {
	spec *jobSpec
	job  gocron.Job
}

type scheduler struct {
	cfg     *shared.Config
	logger  shared.ILogger
	metrics IMetrics
	repo    dal.IRepo
	runner  IWorkflowRunner
	now     func() time.Time
	ctx     context.Context
	cancel  context.CancelFunc
	mu      sync.Mutex
	sched   gocron.Scheduler
	jobs    map[string]*jobEntry
}

func NewScheduler(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics IMetrics,
	repo dal.IRepo,
	runner IWorkflowRunner,
) IScheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &scheduler{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		repo:    repo,
		runner:  runner,
		now:     time.Now,
		ctx:     ctx,
		cancel:  cancel,
		jobs:    map[string]*jobEntry{},
	}
}

// nextOccurrence is the next time strictly after now when the clock reads hour:00.
func nextOccurrence(now time.Time, hour int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// expandJobs turns the job table into concrete jobs. In test mode each entry becomes a single
// job firing after a short delay; otherwise there is one job per configured hour.
func expandJobs(jobs []shared.JobSettings, testMode bool, now time.Time) []*jobSpec {
	var res []*jobSpec
	for _, js := range jobs {
		if testMode {
			res = append(res, &jobSpec{
				name:     js.Name,
				workflow: js.Workflow,
				trigger:  now.Add(time.Duration(js.TestDelayMin) * time.Minute),
				interval: time.Duration(js.TestIntervalMin) * time.Minute,
				maxRuns:  js.MaxRuns,
			})
			continue
		}
		for _, hour := range js.Hours {
			res = append(res, &jobSpec{
				name:     fmt.Sprintf("%s@%02d", js.Name, hour),
				workflow: js.Workflow,
				trigger:  nextOccurrence(now, hour),
				interval: time.Duration(js.IntervalHours) * time.Hour,
				maxRuns:  js.MaxRuns,
			})
		}
	}
	return res
}

// schedLogger feeds gocron's log lines into ours.
type schedLogger struct {
	logger shared.ILogger
}

func (sl *schedLogger) Debug(msg string, args ...any) { sl.logger.Debug(msg, args...) }
func (sl *schedLogger) Info(msg string, args ...any)  { sl.logger.Info(msg, args...) }
func (sl *schedLogger) Warn(msg string, args ...any)  { sl.logger.Warn(msg, args...) }
func (sl *schedLogger) Error(msg string, args ...any) { sl.logger.Error(msg, args...) }

func (s *scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	s.sched, err = gocron.NewScheduler(
		gocron.WithLocation(time.Local),
		gocron.WithLogger(&schedLogger{s.logger}),
		gocron.WithLimitConcurrentJobs(1, gocron.LimitModeWait),
	)
	if err != nil {
		return err
	}

	now := s.now()
	for _, spec := range expandJobs(s.cfg.Jobs, s.cfg.IsTestMode(), now) {
		if err = s.addJob(spec); err != nil {
			return fmt.Errorf("job %s: %w", spec.name, err)
		}
	}
	s.sched.Start()
	s.logger.Infof("Scheduler started with %d jobs", len(s.jobs))
	return nil
}

func (s *scheduler) addJob(spec *jobSpec) error {
	runs, err := s.repo.GetJobRunCount(spec.name)
	if err != nil {
		return err
	}
	remaining := spec.maxRuns - runs
	if remaining <= 0 {
		s.logger.Infof("Job %s has used all %d runs; not scheduling", spec.name, spec.maxRuns)
		return nil
	}

	job, err := s.sched.NewJob(
		gocron.DurationJob(spec.interval),
		gocron.NewTask(s.execute, spec.name, spec.workflow),
		gocron.WithName(spec.name),
		gocron.WithTags(spec.workflow),
		gocron.WithStartAt(gocron.WithStartDateTime(spec.trigger)),
		gocron.WithLimitedRuns(uint(remaining)),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithEventListeners(
			gocron.AfterJobRunsWithError(func(_ uuid.UUID, jobName string, err error) {
				s.logger.Errorf("Job %s failed: %v", jobName, err)
			}),
		),
	)
	if err != nil {
		return err
	}
	s.jobs[spec.name] = &jobEntry{spec: spec, job: job}
	s.logger.Infof("Scheduled %s (%s): first run %s, every %s, %d runs left",
		spec.name, spec.workflow, spec.trigger.Format(time.DateTime), spec.interval, remaining)
	return nil
}

// execute is the body of every job. Failures are recorded; the repeat timer is not affected.
func (s *scheduler) execute(name, workflow string) error {
	start := s.now()
	s.logger.Infof("[START] Job %s", name)
	res, err := s.runner.RunWorkflow(s.ctx, workflow)

	run := dal.JobRun{JobName: name, RunAt: start, Ok: err == nil}
	if err != nil {
		run.Error = err.Error()
	}
	if dbErr := s.repo.AddJobRun(&run); dbErr != nil {
		s.logger.Errorf("Failed to record run of job %s: %v", name, dbErr)
	}
	s.metrics.JobRun(name, err == nil)

	if res != nil {
		s.logger.Infof("[END] Job %s: %s", name, res)
	} else {
		s.logger.Infof("[END] Job %s", name)
	}
	return err
}

func (s *scheduler) Stop() error {
	s.cancel()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sched == nil {
		return nil
	}
	return s.sched.Shutdown()
}

func (s *scheduler) Jobs() []*dto.JobStatus {
	s.mu.Lock()
	entries := make([]*jobEntry, 0, len(s.jobs))
	for _, entry := range s.jobs {
		entries = append(entries, entry)
	}
	s.mu.Unlock()
	sort.Slice(entries, func(i, j int) bool { return entries[i].spec.name < entries[j].spec.name })

	res := make([]*dto.JobStatus, 0, len(entries))
	for _, entry := range entries {
		status := dto.JobStatus{
			Name:     entry.spec.name,
			Workflow: entry.spec.workflow,
			MaxRuns:  entry.spec.maxRuns,
		}
		if runs, err := s.repo.GetJobRunCount(entry.spec.name); err == nil {
			status.Runs = runs
		}
		if next, err := entry.job.NextRun(); err == nil && !next.IsZero() {
			status.NextRun = &next
		}
		if last, err := s.repo.GetLastJobRun(entry.spec.name); err == nil && last != nil {
			status.LastRun = &last.RunAt
		}
		res = append(res, &status)
	}
	return res
}

func (s *scheduler) RunNow(name string) error {
	s.mu.Lock()
	entry, ok := s.jobs[name]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownJob, name)
	}
	return entry.job.RunNow()
}
