package dal

import (
	"bluebot/shared"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"path/filepath"
	"testing"
	"time"
)

func setupRepo(t *testing.T) IRepo {
	cfg := &shared.Config{DbFile: filepath.Join(t.TempDir(), "test.db")}
	repo := NewRepo(cfg, log.New(io.Discard))
	repo.InitUpdateDb()
	return repo
}

func Test_Repo_Job_Runs(t *testing.T) {
	repo := setupRepo(t)

	count, err := repo.GetJobRunCount("reply@08")
	require.Nil(t, err)
	assert.Equal(t, 0, count)
	last, err := repo.GetLastJobRun("reply@08")
	require.Nil(t, err)
	assert.Nil(t, last)

	t0 := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	require.Nil(t, repo.AddJobRun(&JobRun{"reply@08", t0, true, ""}))
	require.Nil(t, repo.AddJobRun(&JobRun{"reply@08", t0.Add(24 * time.Hour), false, "login failed"}))
	require.Nil(t, repo.AddJobRun(&JobRun{"like-follow@04", t0, true, ""}))

	count, err = repo.GetJobRunCount("reply@08")
	require.Nil(t, err)
	assert.Equal(t, 2, count)
	last, err = repo.GetLastJobRun("reply@08")
	require.Nil(t, err)
	require.NotNil(t, last)
	assert.False(t, last.Ok)
	assert.Equal(t, "login failed", last.Error)
	assert.True(t, t0.Add(24*time.Hour).Equal(last.RunAt))
}

func Test_Repo_Published_Posts(t *testing.T) {
	repo := setupRepo(t)
	t0 := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	require.Nil(t, repo.AddPublishedPost(&PublishedPost{"at://me/app.bsky.feed.post/1", "c1", "text_post", "hello", "", t0}))
	require.Nil(t, repo.AddPublishedPost(&PublishedPost{"at://me/app.bsky.feed.post/2", "c2", "reply", "hi", "at://you/app.bsky.feed.post/9", t0.Add(time.Hour)}))
	// Same URI again is ignored
	require.Nil(t, repo.AddPublishedPost(&PublishedPost{"at://me/app.bsky.feed.post/1", "c1", "text_post", "hello", "", t0}))

	posts, err := repo.GetRecentPosts(10)
	require.Nil(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "at://me/app.bsky.feed.post/2", posts[0].Uri)
	assert.Equal(t, "at://you/app.bsky.feed.post/9", posts[0].ReplyTo)
}

func Test_Repo_Used_Topics(t *testing.T) {
	repo := setupRepo(t)
	t0 := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)

	used, err := repo.MarkTopicUsed(-12345, t0)
	require.Nil(t, err)
	assert.False(t, used)
	used, err = repo.MarkTopicUsed(-12345, t0.Add(time.Hour))
	require.Nil(t, err)
	assert.True(t, used)

	purged, err := repo.PurgeUsedTopics(t0.Add(time.Minute))
	require.Nil(t, err)
	assert.Equal(t, 1, purged)
	used, err = repo.MarkTopicUsed(-12345, t0)
	require.Nil(t, err)
	assert.False(t, used)
}
