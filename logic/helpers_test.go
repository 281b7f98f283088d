package logic_test

import (
	"bluebot/mocks"
	"bluebot/shared"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"path/filepath"
	"testing"
)

func stubLogger(mockLogger *mocks.MockILogger) {
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Printf(gomock.Any()).AnyTimes()
}

func stubMetrics(ctrl *gomock.Controller, mockMetrics *mocks.MockIMetrics) {
	obs := mocks.NewMockIRequestObserver(ctrl)
	obs.EXPECT().Finish().AnyTimes()
	mockMetrics.EXPECT().StartWebRequestIn(gomock.Any()).Return(obs).AnyTimes()
	mockMetrics.EXPECT().StartUpstreamRequest(gomock.Any()).Return(obs).AnyTimes()
	mockMetrics.EXPECT().ActionRecorded(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().ActionRejected(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().QuotaUsage(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().PostPublished(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().WorkflowFinished(gomock.Any(), gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().JobRun(gomock.Any(), gomock.Any()).AnyTimes()
}

func stubUserAgent(mockUserAgent *mocks.MockIUserAgent) {
	mockUserAgent.EXPECT().AddUserAgent(gomock.Any()).AnyTimes()
}

// testConfig is the built-in default config with all delays zeroed.
func testConfig(t *testing.T) *shared.Config {
	dir := t.TempDir()
	cfg, err := shared.LoadConfigFrom(filepath.Join(dir, "none.jsonc"), filepath.Join(dir, "none-secrets.jsonc"))
	require.Nil(t, err)
	cfg.Mode = shared.ModeProd
	cfg.DataDir = dir
	cfg.Reply.DelaySec = 0
	cfg.Reply.SearchDelayMs = 0
	cfg.Reply.Shuffle = false
	cfg.LikeFollow.DelayMs = 0
	cfg.Personas = map[string]*shared.Persona{
		"joe": {
			ID:            "joe",
			SystemPost:    "You are Joe.",
			SystemReply:   "You are Joe. {{language}}",
			PostShort:     "{{topic}} short",
			PostLong:      "{{topic}} long",
			Topics:        []string{"coffee"},
			MaxPostChars:  280,
			MaxReplyChars: 280,
			Temperature:   1.5,
		},
		"clippy": {
			ID:           "clippy",
			SystemPost:   "You are a paperclip.",
			PostLong:     "{{topic}}",
			Topics:       []string{"beach"},
			Scenes:       []string{"on a beach"},
			ImagePrompt:  "Clippy {{scene}}",
			ImageAlt:     "Paperclip at the beach",
			MaxPostChars: 300,
		},
	}
	return cfg
}
