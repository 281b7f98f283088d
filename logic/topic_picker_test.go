package logic_test

import (
	"bluebot/logic"
	"bluebot/mocks"
	"context"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const topicFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Tech</title>
  <item>
    <title>Older &lt;b&gt;headline&lt;/b&gt;</title>
    <link>https://example.com/1</link>
    <guid>1</guid>
    <pubDate>Mon, 02 Jun 2025 10:00:00 GMT</pubDate>
  </item>
  <item>
    <title>Newest headline</title>
    <link>https://example.com/2</link>
    <guid>2</guid>
    <pubDate>Tue, 03 Jun 2025 10:00:00 GMT</pubDate>
  </item>
</channel>
</rss>`

func setupTopicPickerTest(t *testing.T, feeds bool) (*gomock.Controller, *mocks.MockIRepo, logic.ITopicPicker) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockILogger(ctrl)
	mockUserAgent := mocks.NewMockIUserAgent(ctrl)
	mockMetrics := mocks.NewMockIMetrics(ctrl)
	mockRepo := mocks.NewMockIRepo(ctrl)
	stubLogger(mockLogger)
	stubUserAgent(mockUserAgent)
	stubMetrics(ctrl, mockMetrics)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rss" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(topicFeed))
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(t)
	cfg.Topics.FeedRatio = 1
	cfg.Topics.Feeds = nil
	if feeds {
		cfg.Topics.Feeds = []string{srv.URL + "/rss"}
	}
	return ctrl, mockRepo, logic.NewTopicPicker(cfg, mockLogger, mockRepo, mockUserAgent, mockMetrics)
}

func Test_Topic_From_Feed_Newest_First(t *testing.T) {
	ctrl, mockRepo, tp := setupTopicPickerTest(t, true)
	defer ctrl.Finish()

	mockRepo.EXPECT().PurgeUsedTopics(gomock.Any()).Return(0, nil)
	mockRepo.EXPECT().MarkTopicUsed(gomock.Any(), gomock.Any()).Return(false, nil)

	topic := tp.PickTopic(context.Background(), nil)
	assert.Equal(t, "Newest headline", topic)
}

func Test_Topic_Skips_Used_Items(t *testing.T) {
	ctrl, mockRepo, tp := setupTopicPickerTest(t, true)
	defer ctrl.Finish()

	var hashes []int64
	mockRepo.EXPECT().PurgeUsedTopics(gomock.Any()).Return(3, nil)
	gomock.InOrder(
		mockRepo.EXPECT().MarkTopicUsed(gomock.Any(), gomock.Any()).DoAndReturn(func(hash int64, _ time.Time) (bool, error) {
			hashes = append(hashes, hash)
			return true, nil
		}),
		mockRepo.EXPECT().MarkTopicUsed(gomock.Any(), gomock.Any()).DoAndReturn(func(hash int64, _ time.Time) (bool, error) {
			hashes = append(hashes, hash)
			return false, nil
		}),
	)

	topic := tp.PickTopic(context.Background(), nil)
	assert.Equal(t, "Older headline", topic)
	assert.Len(t, hashes, 2)
	assert.NotEqual(t, hashes[0], hashes[1])
}

func Test_Topic_Falls_Back_To_Persona(t *testing.T) {
	ctrl, mockRepo, tp := setupTopicPickerTest(t, true)
	defer ctrl.Finish()

	mockRepo.EXPECT().PurgeUsedTopics(gomock.Any()).Return(0, nil)
	mockRepo.EXPECT().MarkTopicUsed(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)

	cfg := testConfig(t)
	joe := cfg.Personas["joe"]
	assert.Equal(t, "coffee", tp.PickTopic(context.Background(), joe))
}

func Test_Topic_Without_Feeds(t *testing.T) {
	ctrl, _, tp := setupTopicPickerTest(t, false)
	defer ctrl.Finish()

	cfg := testConfig(t)
	assert.Equal(t, "coffee", tp.PickTopic(context.Background(), cfg.Personas["joe"]))
	assert.Equal(t, "", tp.PickTopic(context.Background(), nil))
}
