package logic

import (
	"bluebot/dal"
	"bluebot/shared"
	"path/filepath"
	"sync"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_reply_ledger.go -package mocks bluebot/logic IReplyLedger

const ledgerFileName = "reply-ledger.json"

// IReplyLedger remembers which authors and posts the bot already engaged, for a retention window.
type IReplyLedger interface {
	HasBeenContacted(authorId, postUri string) bool
	MarkContacted(authorId, postUri string)
}

type replyLedger struct {
	cfg    *shared.Config
	logger shared.ILogger
	now    func() time.Time
	mu     sync.Mutex
}

func NewReplyLedger(cfg *shared.Config, logger shared.ILogger) IReplyLedger {
	return &replyLedger{
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

func (rl *replyLedger) fileName() string {
	return filepath.Join(rl.cfg.DataDir, ledgerFileName)
}

func (rl *replyLedger) load() *dal.ReplyHistory {
	fn := rl.fileName()
	history, migrated, err := dal.LoadReplyHistory(fn)
	if err != nil {
		rl.logger.Errorf("Failed to load reply ledger from %s; treating as empty: %v", fn, err)
		return dal.NewReplyHistory()
	}
	pruned := rl.prune(history)
	if migrated {
		rl.logger.Infof("Migrating legacy reply ledger with %d authors", len(history.Users))
	}
	if migrated || pruned > 0 {
		rl.save(history)
	}
	return history
}

func (rl *replyLedger) save(history *dal.ReplyHistory) {
	rl.prune(history)
	fn := rl.fileName()
	if err := dal.SaveReplyHistory(fn, history); err != nil {
		rl.logger.Errorf("Failed to save reply ledger to %s: %v", fn, err)
	}
}

func (rl *replyLedger) prune(history *dal.ReplyHistory) int {
	maxAge := int64(rl.cfg.LedgerRetentionDays) * 24 * int64(time.Hour/time.Millisecond)
	if maxAge <= 0 {
		return 0
	}
	nowMs := rl.now().UnixMilli()
	count := 0
	for _, m := range []map[string]int64{history.Users, history.Posts} {
		for key, ts := range m {
			if nowMs-ts > maxAge {
				delete(m, key)
				count++
			}
		}
	}
	return count
}

func (rl *replyLedger) HasBeenContacted(authorId, postUri string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	history := rl.load()
	if _, ok := history.Users[authorId]; ok {
		return true
	}
	_, ok := history.Posts[postUri]
	return ok
}

func (rl *replyLedger) MarkContacted(authorId, postUri string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	history := rl.load()
	nowMs := rl.now().UnixMilli()
	if authorId != "" {
		history.Users[authorId] = nowMs
	}
	if postUri != "" {
		history.Posts[postUri] = nowMs
	}
	rl.save(history)
}
