package logic

import (
	"bluebot/dal"
	"bluebot/shared"
	"context"
	"errors"
	"fmt"
	"github.com/mmcdole/gofeed"
	"github.com/spaolacci/murmur3"
	"math/rand/v2"
	"net/http"
	"sort"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_topic_picker.go -package mocks bluebot/logic ITopicPicker

const (
	serviceFeeds       = "feeds"
	usedTopicsKeepDays = 30
	maxFeedItemsTried  = 20
)

var errNoFreshTopic = errors.New("no unused feed item found")

// ITopicPicker chooses what the next post is about.
type ITopicPicker interface {
	PickTopic(ctx context.Context, persona *shared.Persona) string
}

type topicPicker struct {
	cfg       *shared.Config
	logger    shared.ILogger
	repo      dal.IRepo
	userAgent shared.IUserAgent
	metrics   IMetrics
	client    http.Client
	rnd       func() float64
}

func NewTopicPicker(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	userAgent shared.IUserAgent,
	metrics IMetrics,
) ITopicPicker {
	res := topicPicker{
		cfg:       cfg,
		logger:    logger,
		repo:      repo,
		userAgent: userAgent,
		metrics:   metrics,
		rnd:       rand.Float64,
	}
	res.client.Timeout = time.Second * time.Duration(cfg.HttpTimeoutSec)
	return &res
}

// PickTopic returns a fresh feed headline with probability FeedRatio when feeds are configured,
// and a random persona topic otherwise or when no feed yields one.
func (tp *topicPicker) PickTopic(ctx context.Context, persona *shared.Persona) string {
	if len(tp.cfg.Topics.Feeds) != 0 && tp.rnd() < tp.cfg.Topics.FeedRatio {
		topic, err := tp.feedTopic(ctx)
		if err == nil {
			tp.logger.Infof("Topic from feed: %s", topic)
			return topic
		}
		tp.logger.Warnf("No feed topic, using persona topics: %v", err)
	}
	if persona == nil || len(persona.Topics) == 0 {
		return ""
	}
	return persona.Topics[rand.IntN(len(persona.Topics))]
}

func (tp *topicPicker) feedTopic(ctx context.Context) (string, error) {
	now := time.Now()
	if count, err := tp.repo.PurgeUsedTopics(now.AddDate(0, 0, -usedTopicsKeepDays)); err != nil {
		tp.logger.Errorf("Failed to purge used topics: %v", err)
	} else if count > 0 {
		tp.logger.Debugf("Purged %d used topics", count)
	}

	feeds := append([]string{}, tp.cfg.Topics.Feeds...)
	rand.Shuffle(len(feeds), func(i, j int) { feeds[i], feeds[j] = feeds[j], feeds[i] })

	for _, feedUrl := range feeds {
		feed, err := tp.fetchParseFeed(ctx, feedUrl)
		if err != nil {
			tp.logger.Warnf("Failed to retrieve and parse feed: %s, %v", feedUrl, err)
			continue
		}
		items := newestFirst(feed.Items)
		if len(items) > maxFeedItemsTried {
			items = items[:maxFeedItemsTried]
		}
		for _, itm := range items {
			title := shared.OneLine(stripHtml(itm.Title))
			if title == "" {
				continue
			}
			used, err := tp.repo.MarkTopicUsed(int64(getItemHash(itm)), now)
			if err != nil {
				return "", err
			}
			if !used {
				return title, nil
			}
		}
	}
	return "", errNoFreshTopic
}

func getItemHash(itm *gofeed.Item) uint32 {
	str := itm.GUID + "\t" + itm.Link
	hasher := murmur3.New32()
	_, _ = hasher.Write([]byte(str))
	return hasher.Sum32()
}

func itemTime(itm *gofeed.Item) time.Time {
	if itm.PublishedParsed != nil {
		return *itm.PublishedParsed
	}
	if itm.UpdatedParsed != nil {
		return *itm.UpdatedParsed
	}
	return time.Time{}
}

func newestFirst(items []*gofeed.Item) []*gofeed.Item {
	res := append([]*gofeed.Item{}, items...)
	sort.SliceStable(res, func(i, j int) bool {
		return itemTime(res[i]).After(itemTime(res[j]))
	})
	return res
}

func (tp *topicPicker) fetchParseFeed(ctx context.Context, feedUrl string) (feed *gofeed.Feed, err error) {

	obs := tp.metrics.StartUpstreamRequest(serviceFeeds)
	defer obs.Finish()

	var req *http.Request
	if req, err = http.NewRequestWithContext(ctx, http.MethodGet, feedUrl, nil); err != nil {
		return nil, err
	}
	tp.userAgent.AddUserAgent(req)

	var resp *http.Response
	if resp, err = tp.client.Do(req); err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status %v", resp.StatusCode)
	}

	fp := gofeed.NewParser()
	return fp.Parse(resp.Body)
}
