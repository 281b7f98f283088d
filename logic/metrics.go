package logic

import (
	"bluebot/shared"
	"github.com/prometheus/client_golang/prometheus"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_metrics.go -package mocks bluebot/logic IMetrics
//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_request_observer.go -package mocks bluebot/logic IRequestObserver

type IMetrics interface {
	StartWebRequestIn(label string) IRequestObserver
	StartUpstreamRequest(service string) IRequestObserver
	ActionRecorded(kind ActionKind)
	ActionRejected(kind ActionKind)
	QuotaUsage(kind ActionKind, hourly, daily int)
	PostPublished(kind string)
	WorkflowFinished(workflow string, stage Stage)
	JobRun(job string, ok bool)
	ServiceStarted()
}

type IRequestObserver interface {
	Finish()
}

type metrics struct {
	cfg              *shared.Config
	webRequestsIn    *prometheus.HistogramVec
	upstreamRequests *prometheus.HistogramVec
	actionsRecorded  *prometheus.CounterVec
	actionsRejected  *prometheus.CounterVec
	hourlyUsage      *prometheus.GaugeVec
	dailyUsage       *prometheus.GaugeVec
	postsPublished   *prometheus.CounterVec
	workflowRuns     *prometheus.CounterVec
	jobRuns          *prometheus.CounterVec
	serviceStarted   prometheus.Counter
}

func NewMetrics(cfg *shared.Config) IMetrics {

	res := metrics{}
	res.cfg = cfg

	res.webRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "web_requests_in_duration",
		Help: "Duration in seconds of Web requests served.",
	}, []string{"label"})
	prometheus.Register(res.webRequestsIn)

	res.upstreamRequests = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "upstream_requests_duration",
		Help: "Duration in seconds of requests to Bluesky and the generation APIs.",
	}, []string{"service"})
	prometheus.Register(res.upstreamRequests)

	res.actionsRecorded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "actions_recorded",
		Help: "Likes, follows and replies recorded in the history",
	}, []string{"kind"})
	prometheus.Register(res.actionsRecorded)

	res.actionsRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "actions_rejected",
		Help: "Actions not recorded because the quota was exhausted",
	}, []string{"kind"})
	prometheus.Register(res.actionsRejected)

	res.hourlyUsage = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "quota_hourly_usage",
		Help: "Actions in the trailing hour",
	}, []string{"kind"})
	prometheus.Register(res.hourlyUsage)

	res.dailyUsage = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "quota_daily_usage",
		Help: "Actions since the start of the current day",
	}, []string{"kind"})
	prometheus.Register(res.dailyUsage)

	res.postsPublished = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "posts_published",
		Help: "Posts and replies published",
	}, []string{"kind"})
	prometheus.Register(res.postsPublished)

	res.workflowRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "workflow_runs",
		Help: "Workflow runs by final stage",
	}, []string{"workflow", "stage"})
	prometheus.Register(res.workflowRuns)

	res.jobRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "job_runs",
		Help: "Scheduled job executions",
	}, []string{"job", "ok"})
	prometheus.Register(res.jobRuns)

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	})
	prometheus.Register(res.serviceStarted)

	return &res
}

type requestObserver struct {
	label string
	start time.Time
	hgvec *prometheus.HistogramVec
}

func (ro *requestObserver) Finish() {
	elapsed := time.Since(ro.start).Seconds()
	ro.hgvec.WithLabelValues(ro.label).Observe(elapsed)
}

func (m *metrics) StartWebRequestIn(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.webRequestsIn}
}

func (m *metrics) StartUpstreamRequest(service string) IRequestObserver {
	return &requestObserver{service, time.Now(), m.upstreamRequests}
}

func (m *metrics) ActionRecorded(kind ActionKind) {
	m.actionsRecorded.WithLabelValues(string(kind)).Add(1)
}

func (m *metrics) ActionRejected(kind ActionKind) {
	m.actionsRejected.WithLabelValues(string(kind)).Add(1)
}

func (m *metrics) QuotaUsage(kind ActionKind, hourly, daily int) {
	m.hourlyUsage.WithLabelValues(string(kind)).Set(float64(hourly))
	m.dailyUsage.WithLabelValues(string(kind)).Set(float64(daily))
}

func (m *metrics) PostPublished(kind string) {
	m.postsPublished.WithLabelValues(kind).Add(1)
}

func (m *metrics) WorkflowFinished(workflow string, stage Stage) {
	m.workflowRuns.WithLabelValues(workflow, string(stage)).Add(1)
}

func (m *metrics) JobRun(job string, ok bool) {
	okStr := "false"
	if ok {
		okStr = "true"
	}
	m.jobRuns.WithLabelValues(job, okStr).Add(1)
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}
