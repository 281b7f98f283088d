package logic

import (
	"bluebot/shared"
	"context"
	"math/rand/v2"
	"strings"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_candidates.go -package mocks bluebot/logic ICandidateFinder

// Candidate is a fetched post considered for a reply or a like and follow.
type Candidate struct {
	AuthorDid    string
	AuthorHandle string
	Uri          string
	Cid          string
	Text         string
	Langs        []string
	DetectedLang string
}

// ReplyLang is the language a reply to this candidate should be written in.
func (c *Candidate) ReplyLang() string {
	if c.DetectedLang != "" {
		return c.DetectedLang
	}
	for _, lang := range c.Langs {
		if primary := primaryLang(lang); primary != "" {
			return primary
		}
	}
	return "en"
}

func (c *Candidate) complete() bool {
	return c.Uri != "" && c.Cid != "" && c.AuthorDid != ""
}

type ICandidateFinder interface {
	Find(ctx context.Context, terms []string, perTerm int) ([]*Candidate, error)
	Filter(candidates []*Candidate) []*Candidate
	Accepts(c *Candidate) (bool, string)
}

type candidateFinder struct {
	cfg      *shared.Config
	logger   shared.ILogger
	client   ISocialClient
	ledger   IReplyLedger
	langFilt *languageFilter
}

func NewCandidateFinder(
	cfg *shared.Config,
	logger shared.ILogger,
	client ISocialClient,
	ledger IReplyLedger,
) ICandidateFinder {
	return &candidateFinder{
		cfg:      cfg,
		logger:   logger,
		client:   client,
		ledger:   ledger,
		langFilt: newLanguageFilter(cfg.Language),
	}
}

// Find runs one search per term and merges the results, keeping the first post seen for each URI.
// A failing term is logged and skipped; the error is returned only if every term failed.
func (cf *candidateFinder) Find(ctx context.Context, terms []string, perTerm int) ([]*Candidate, error) {
	var res []*Candidate
	seen := map[string]bool{}
	var lastErr error
	failed := 0

	for i, term := range terms {
		if i > 0 {
			if err := sleepCtx(ctx, time.Duration(cf.cfg.Reply.SearchDelayMs)*time.Millisecond); err != nil {
				return nil, err
			}
		}
		found, err := cf.client.Search(ctx, term, perTerm)
		if err != nil {
			cf.logger.Warnf("Search for '%s' failed: %v", term, err)
			lastErr = err
			failed++
			continue
		}
		cf.logger.Infof("Search for '%s': %d posts", term, len(found))
		for _, c := range found {
			if seen[c.Uri] {
				continue
			}
			seen[c.Uri] = true
			res = append(res, c)
		}
	}
	if failed > 0 && failed == len(terms) {
		return nil, lastErr
	}

	if cf.cfg.Reply.Shuffle {
		rand.Shuffle(len(res), func(i, j int) { res[i], res[j] = res[j], res[i] })
	}
	cf.logger.Infof("Found %d unique posts across %d terms", len(res), len(terms))
	return res, nil
}

// Accepts applies the ledger check, then the language policy. The second value names the
// reason for a rejection.
func (cf *candidateFinder) Accepts(c *Candidate) (bool, string) {
	if !c.complete() {
		return false, "incomplete post"
	}
	if cf.ledger.HasBeenContacted(c.AuthorDid, c.Uri) {
		return false, "already contacted"
	}
	if !cf.langFilt.accept(c) {
		return false, "language not allowed"
	}
	return true, ""
}

func (cf *candidateFinder) Filter(candidates []*Candidate) []*Candidate {
	res := make([]*Candidate, 0, len(candidates))
	for _, c := range candidates {
		if ok, reason := cf.Accepts(c); !ok {
			cf.logger.Debugf("Skipping %s: %s", c.Uri, reason)
			continue
		}
		res = append(res, c)
	}
	return res
}

func primaryLang(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if ix := strings.IndexAny(tag, "-_"); ix != -1 {
		tag = tag[:ix]
	}
	return tag
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
