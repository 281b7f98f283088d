package logic

import (
	"bluebot/dal"
	"bluebot/shared"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_quota_manager.go -package mocks bluebot/logic IQuotaManager

type ActionKind string

const (
	ActionLike   ActionKind = shared.KindLike
	ActionFollow ActionKind = shared.KindFollow
	ActionReply  ActionKind = shared.KindReply
)

const dayFormat = "2006-01-02"

type QuotaState struct {
	Kind            ActionKind
	HourlyUsage     int
	DailyUsage      int
	HourlyLimit     int
	DailyLimit      int
	HourlyRemaining int
	DailyRemaining  int
	Allowed         bool
}

type DayCount struct {
	Date  string
	Count int
}

// IQuotaManager keeps one JSON action history per kind and derives sliding-window quotas from it.
type IQuotaManager interface {
	CheckQuota(kind ActionKind) QuotaState
	RecordAction(kind ActionKind, subjectId, label string) bool
	GenerateDailyReport(kind ActionKind, days int) []DayCount
	HasActed(kind ActionKind, subjectId string) bool
	Summary() map[ActionKind]QuotaState
	PrintReport(w io.Writer)
}

type quotaManager struct {
	cfg     *shared.Config
	logger  shared.ILogger
	metrics IMetrics
	now     func() time.Time
	muLocks sync.Mutex
	locks   map[ActionKind]*sync.Mutex
}

func NewQuotaManager(cfg *shared.Config, logger shared.ILogger, metrics IMetrics) IQuotaManager {
	return &quotaManager{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		now:     time.Now,
		locks:   map[ActionKind]*sync.Mutex{},
	}
}

func (qm *quotaManager) kindLock(kind ActionKind) *sync.Mutex {
	qm.muLocks.Lock()
	defer qm.muLocks.Unlock()
	mu, ok := qm.locks[kind]
	if !ok {
		mu = &sync.Mutex{}
		qm.locks[kind] = mu
	}
	return mu
}

func (qm *quotaManager) historyFile(kind ActionKind) string {
	return filepath.Join(qm.cfg.DataDir, "analytics", fmt.Sprintf("%s-history.json", kind))
}

func (qm *quotaManager) limits(kind ActionKind) (shared.QuotaLimits, bool) {
	limits, ok := qm.cfg.Quotas[string(kind)]
	return limits, ok
}

// Sorted so reports and summaries come out in a stable order.
func (qm *quotaManager) kinds() []ActionKind {
	res := make([]ActionKind, 0, len(qm.cfg.Quotas))
	for kind := range qm.cfg.Quotas {
		res = append(res, ActionKind(kind))
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

// Read failures degrade to an empty history.
func (qm *quotaManager) load(kind ActionKind) *dal.ActionHistory {
	fn := qm.historyFile(kind)
	history, err := dal.LoadActionHistory(fn)
	if err != nil {
		qm.logger.Errorf("Failed to load %s history from %s; treating as empty: %v", kind, fn, err)
		return &dal.ActionHistory{Actions: []*dal.ActionRecord{}}
	}
	return history
}

// Write failures are logged and otherwise ignored.
func (qm *quotaManager) save(kind ActionKind, history *dal.ActionHistory, retentionDays int) {
	qm.prune(history, retentionDays)
	fn := qm.historyFile(kind)
	if err := dal.SaveActionHistory(fn, history); err != nil {
		qm.logger.Errorf("Failed to save %s history to %s: %v", kind, fn, err)
	}
}

func (qm *quotaManager) prune(history *dal.ActionHistory, retentionDays int) {
	if retentionDays <= 0 {
		return
	}
	maxAge := int64(retentionDays) * 24 * int64(time.Hour/time.Millisecond)
	nowMs := qm.now().UnixMilli()
	kept := history.Actions[:0]
	for _, action := range history.Actions {
		if nowMs-action.Timestamp <= maxAge {
			kept = append(kept, action)
		}
	}
	history.Actions = kept
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (qm *quotaManager) computeState(kind ActionKind, limits shared.QuotaLimits, history *dal.ActionHistory) QuotaState {
	now := qm.now()
	hourAgo := now.Add(-time.Hour).UnixMilli()
	dayStart := startOfDay(now).UnixMilli()

	res := QuotaState{Kind: kind, HourlyLimit: limits.Hourly, DailyLimit: limits.Daily}
	for _, action := range history.Actions {
		if action.Timestamp >= hourAgo {
			res.HourlyUsage++
		}
		if action.Timestamp >= dayStart {
			res.DailyUsage++
		}
	}
	res.HourlyRemaining = res.HourlyLimit - res.HourlyUsage
	res.DailyRemaining = res.DailyLimit - res.DailyUsage
	res.Allowed = res.HourlyUsage < res.HourlyLimit && res.DailyUsage < res.DailyLimit
	return res
}

func (qm *quotaManager) CheckQuota(kind ActionKind) QuotaState {
	limits, ok := qm.limits(kind)
	if !ok {
		qm.logger.Errorf("Quota check for unknown action kind '%s'", kind)
		return QuotaState{Kind: kind}
	}

	mu := qm.kindLock(kind)
	mu.Lock()
	history := qm.load(kind)
	mu.Unlock()

	state := qm.computeState(kind, limits, history)
	qm.metrics.QuotaUsage(kind, state.HourlyUsage, state.DailyUsage)
	return state
}

func (qm *quotaManager) RecordAction(kind ActionKind, subjectId, label string) bool {
	limits, ok := qm.limits(kind)
	if !ok {
		qm.logger.Errorf("Cannot record action of unknown kind '%s'", kind)
		return false
	}

	mu := qm.kindLock(kind)
	mu.Lock()
	defer mu.Unlock()

	history := qm.load(kind)
	state := qm.computeState(kind, limits, history)
	if !state.Allowed {
		qm.logger.Warnf("Quota reached for %s: %d/%d per hour, %d/%d per day",
			kind, state.HourlyUsage, state.HourlyLimit, state.DailyUsage, state.DailyLimit)
		qm.metrics.ActionRejected(kind)
		return false
	}

	history.Actions = append(history.Actions, &dal.ActionRecord{
		Timestamp:   qm.now().UnixMilli(),
		TargetId:    subjectId,
		TargetLabel: label,
	})
	qm.save(kind, history, limits.RetentionDays)

	if label == "" {
		label = subjectId
	}
	qm.logger.Infof("Recorded %s: %s; usage %d/%d per hour, %d/%d per day", kind, label,
		state.HourlyUsage+1, state.HourlyLimit, state.DailyUsage+1, state.DailyLimit)
	qm.metrics.ActionRecorded(kind)
	qm.metrics.QuotaUsage(kind, state.HourlyUsage+1, state.DailyUsage+1)
	return true
}

// GenerateDailyReport returns one entry per calendar day, today first.
func (qm *quotaManager) GenerateDailyReport(kind ActionKind, days int) []DayCount {
	if _, ok := qm.limits(kind); !ok {
		qm.logger.Errorf("Report requested for unknown action kind '%s'", kind)
		return []DayCount{}
	}
	if days <= 0 {
		return []DayCount{}
	}

	mu := qm.kindLock(kind)
	mu.Lock()
	history := qm.load(kind)
	mu.Unlock()

	today := startOfDay(qm.now())
	res := make([]DayCount, days)
	bounds := make([]int64, days+1)
	for i := 0; i < days; i++ {
		day := today.AddDate(0, 0, -i)
		res[i].Date = day.Format(dayFormat)
		bounds[i] = day.UnixMilli()
	}
	bounds[days] = today.AddDate(0, 0, 1).UnixMilli()

	for _, action := range history.Actions {
		for i := 0; i < days; i++ {
			end := bounds[days]
			if i > 0 {
				end = bounds[i-1]
			}
			if action.Timestamp >= bounds[i] && action.Timestamp < end {
				res[i].Count++
				break
			}
		}
	}
	return res
}

// HasActed tells whether subjectId appears in the retained history of kind.
func (qm *quotaManager) HasActed(kind ActionKind, subjectId string) bool {
	limits, ok := qm.limits(kind)
	if !ok {
		return false
	}

	mu := qm.kindLock(kind)
	mu.Lock()
	history := qm.load(kind)
	mu.Unlock()

	qm.prune(history, limits.RetentionDays)
	for _, action := range history.Actions {
		if action.TargetId == subjectId {
			return true
		}
	}
	return false
}

func (qm *quotaManager) Summary() map[ActionKind]QuotaState {
	res := map[ActionKind]QuotaState{}
	for _, kind := range qm.kinds() {
		res[kind] = qm.CheckQuota(kind)
	}
	return res
}

func (qm *quotaManager) PrintReport(w io.Writer) {
	fmt.Fprintln(w, "\n===== BLUEBOT USAGE REPORT =====")
	for _, kind := range qm.kinds() {
		quota := qm.CheckQuota(kind)
		fmt.Fprintf(w, "\n== %s ==\n", kind)
		fmt.Fprintf(w, "Today: %d/%d (%d remaining)\n", quota.DailyUsage, quota.DailyLimit, quota.DailyRemaining)
		fmt.Fprintf(w, "Last hour: %d/%d (%d remaining)\n", quota.HourlyUsage, quota.HourlyLimit, quota.HourlyRemaining)
		fmt.Fprintln(w, "\nLast 7 days:")
		for _, day := range qm.GenerateDailyReport(kind, 7) {
			fmt.Fprintf(w, "%s: %d\n", day.Date, day.Count)
		}
	}
	fmt.Fprintln(w, "\n================================")
}
