package logic

import (
	"bluebot/dal"
	"bluebot/shared"
	"bytes"
	"fmt"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var quotaTestNow = time.Date(2025, 6, 10, 15, 30, 0, 0, time.Local)

func setupQuotaTest(t *testing.T) (*shared.Config, *quotaManager) {
	cfg := &shared.Config{
		DataDir: t.TempDir(),
		Quotas: map[string]shared.QuotaLimits{
			shared.KindLike:   {Hourly: 30, Daily: 200, RetentionDays: 30},
			shared.KindFollow: {Hourly: 30, Daily: 200, RetentionDays: 30},
			shared.KindReply:  {Hourly: 3, Daily: 5, RetentionDays: 10},
		},
	}
	qm := NewQuotaManager(cfg, log.New(io.Discard), NewMetrics(cfg)).(*quotaManager)
	qm.now = func() time.Time { return quotaTestNow }
	return cfg, qm
}

func writeHistory(t *testing.T, cfg *shared.Config, kind ActionKind, timestamps ...time.Time) {
	history := &dal.ActionHistory{}
	for i, ts := range timestamps {
		history.Actions = append(history.Actions, &dal.ActionRecord{
			Timestamp: ts.UnixMilli(),
			TargetId:  fmt.Sprintf("did:plc:%d", i),
		})
	}
	fn := filepath.Join(cfg.DataDir, "analytics", string(kind)+"-history.json")
	require.Nil(t, dal.SaveActionHistory(fn, history))
}

func Test_Quota_Fresh_History(t *testing.T) {
	_, qm := setupQuotaTest(t)
	state := qm.CheckQuota(ActionLike)
	assert.Equal(t, 0, state.HourlyUsage)
	assert.Equal(t, 0, state.DailyUsage)
	assert.Equal(t, 30, state.HourlyLimit)
	assert.Equal(t, 200, state.DailyLimit)
	assert.True(t, state.Allowed)
}

func Test_Quota_Check_Is_Idempotent(t *testing.T) {
	cfg, qm := setupQuotaTest(t)
	writeHistory(t, cfg, ActionLike, quotaTestNow.Add(-time.Minute), quotaTestNow.Add(-3*time.Hour))
	first := qm.CheckQuota(ActionLike)
	second := qm.CheckQuota(ActionLike)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, first.HourlyUsage)
	assert.Equal(t, 2, first.DailyUsage)
}

func Test_Quota_Exhausted_Hourly(t *testing.T) {
	cfg, qm := setupQuotaTest(t)
	var stamps []time.Time
	for i := 0; i < 30; i++ {
		stamps = append(stamps, quotaTestNow.Add(-time.Duration(i)*time.Minute))
	}
	writeHistory(t, cfg, ActionLike, stamps...)
	state := qm.CheckQuota(ActionLike)
	assert.False(t, state.Allowed)
	assert.Equal(t, 0, state.HourlyRemaining)
	assert.False(t, qm.RecordAction(ActionLike, "at://x", ""))
}

func Test_Quota_Boundary(t *testing.T) {
	cfg, qm := setupQuotaTest(t)
	writeHistory(t, cfg, ActionReply, quotaTestNow.Add(-10*time.Minute), quotaTestNow.Add(-20*time.Minute))
	assert.True(t, qm.CheckQuota(ActionReply).Allowed)

	assert.True(t, qm.RecordAction(ActionReply, "did:plc:new", "new.bsky.social"))
	state := qm.CheckQuota(ActionReply)
	assert.Equal(t, 3, state.HourlyUsage)
	assert.False(t, state.Allowed)
	assert.False(t, qm.RecordAction(ActionReply, "did:plc:other", ""))
}

func Test_Quota_Daily_Limit(t *testing.T) {
	cfg, qm := setupQuotaTest(t)
	// Outside the trailing hour but today
	writeHistory(t, cfg, ActionReply,
		quotaTestNow.Add(-2*time.Hour), quotaTestNow.Add(-3*time.Hour), quotaTestNow.Add(-4*time.Hour),
		quotaTestNow.Add(-5*time.Hour), quotaTestNow.Add(-6*time.Hour))
	state := qm.CheckQuota(ActionReply)
	assert.Equal(t, 0, state.HourlyUsage)
	assert.Equal(t, 5, state.DailyUsage)
	assert.False(t, state.Allowed)

	// Yesterday's actions do not count for today
	writeHistory(t, cfg, ActionReply, quotaTestNow.Add(-20*time.Hour), quotaTestNow.Add(-21*time.Hour))
	state = qm.CheckQuota(ActionReply)
	assert.Equal(t, 0, state.DailyUsage)
	assert.True(t, state.Allowed)
}

func Test_Quota_Record_Prunes_Old_Entries(t *testing.T) {
	cfg, qm := setupQuotaTest(t)
	writeHistory(t, cfg, ActionReply,
		quotaTestNow.AddDate(0, 0, -30), quotaTestNow.AddDate(0, 0, -11), quotaTestNow.AddDate(0, 0, -9))
	assert.True(t, qm.RecordAction(ActionReply, "did:plc:new", ""))

	history, err := dal.LoadActionHistory(qm.historyFile(ActionReply))
	require.Nil(t, err)
	require.Len(t, history.Actions, 2)
	retention := int64(10 * 24 * time.Hour / time.Millisecond)
	for _, action := range history.Actions {
		assert.LessOrEqual(t, quotaTestNow.UnixMilli()-action.Timestamp, retention)
	}
	assert.Equal(t, "did:plc:new", history.Actions[1].TargetId)
}

func Test_Quota_Daily_Report(t *testing.T) {
	cfg, qm := setupQuotaTest(t)
	d3 := startOfDay(quotaTestNow).AddDate(0, 0, -3).Add(11 * time.Hour)
	writeHistory(t, cfg, ActionLike, quotaTestNow.Add(-time.Minute), quotaTestNow.Add(-2*time.Hour), d3)

	report := qm.GenerateDailyReport(ActionLike, 7)
	require.Len(t, report, 7)
	for i, day := range report {
		assert.Equal(t, startOfDay(quotaTestNow).AddDate(0, 0, -i).Format("2006-01-02"), day.Date)
		switch i {
		case 0:
			assert.Equal(t, 2, day.Count)
		case 3:
			assert.Equal(t, 1, day.Count)
		default:
			assert.Equal(t, 0, day.Count)
		}
	}
	assert.Equal(t, "2025-06-10", report[0].Date)
	assert.Equal(t, "2025-06-04", report[6].Date)
}

func Test_Quota_Unreadable_History_Is_Empty(t *testing.T) {
	_, qm := setupQuotaTest(t)
	fn := qm.historyFile(ActionFollow)
	require.Nil(t, os.MkdirAll(filepath.Dir(fn), 0755))
	require.Nil(t, os.WriteFile(fn, []byte("{garbage"), 0644))

	state := qm.CheckQuota(ActionFollow)
	assert.True(t, state.Allowed)
	assert.Equal(t, 0, state.DailyUsage)

	// Recording overwrites the corrupt file with a valid one
	assert.True(t, qm.RecordAction(ActionFollow, "did:plc:a", "a.bsky.social"))
	history, err := dal.LoadActionHistory(fn)
	require.Nil(t, err)
	assert.Len(t, history.Actions, 1)
}

func Test_Quota_Unknown_Kind(t *testing.T) {
	_, qm := setupQuotaTest(t)
	state := qm.CheckQuota(ActionKind("repost"))
	assert.False(t, state.Allowed)
	assert.False(t, qm.RecordAction(ActionKind("repost"), "x", ""))
	assert.Empty(t, qm.GenerateDailyReport(ActionKind("repost"), 7))
}

func Test_Quota_Has_Acted_And_Report(t *testing.T) {
	cfg, qm := setupQuotaTest(t)
	writeHistory(t, cfg, ActionLike, quotaTestNow.Add(-time.Hour), quotaTestNow.AddDate(0, 0, -40))
	assert.True(t, qm.HasActed(ActionLike, "did:plc:0"))
	// Beyond retention
	assert.False(t, qm.HasActed(ActionLike, "did:plc:1"))
	assert.False(t, qm.HasActed(ActionFollow, "did:plc:0"))

	summary := qm.Summary()
	assert.Len(t, summary, 3)
	assert.Equal(t, 1, summary[ActionLike].DailyUsage)

	var buf bytes.Buffer
	qm.PrintReport(&buf)
	assert.Contains(t, buf.String(), "== like ==")
	assert.Contains(t, buf.String(), "Today: 1/200 (199 remaining)")
	assert.Contains(t, buf.String(), "2025-06-10: 1")
}

func Test_Quota_Unwritable_Data_Dir(t *testing.T) {
	cfg, qm := setupQuotaTest(t)
	var buf bytes.Buffer
	qm.logger = log.New(&buf)

	// A file where the analytics directory should be makes every save fail
	require.Nil(t, os.WriteFile(filepath.Join(cfg.DataDir, "analytics"), []byte("x"), 0644))

	assert.NotPanics(t, func() {
		assert.True(t, qm.RecordAction(ActionLike, "did:plc:1", "alice"))
	})
	assert.Contains(t, buf.String(), "Failed to save like history")
	assert.Equal(t, 0, qm.CheckQuota(ActionLike).DailyUsage)
}

func Test_Quota_Read_Only_Data_Dir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}
	cfg, qm := setupQuotaTest(t)
	require.Nil(t, os.Chmod(cfg.DataDir, 0555))
	t.Cleanup(func() { _ = os.Chmod(cfg.DataDir, 0755) })

	assert.True(t, qm.RecordAction(ActionReply, "at://post/1", ""))
	_, err := os.Stat(filepath.Join(cfg.DataDir, "analytics"))
	assert.True(t, os.IsNotExist(err))
	assert.True(t, qm.CheckQuota(ActionReply).Allowed)
}
