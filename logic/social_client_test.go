package logic_test

import (
	"bluebot/dto"
	"bluebot/logic"
	"bluebot/mocks"
	"context"
	"encoding/json"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakePds struct {
	t       *testing.T
	records []*dto.CreateRecordRequest
	blobs   [][]byte
}

func (fp *fakePds) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if r.URL.Path != "/xrpc/com.atproto.server.createSession" &&
		r.Header.Get("Authorization") != "Bearer access-token" {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"AuthMissing","message":"Authentication Required"}`))
		return
	}
	switch r.URL.Path {
	case "/xrpc/com.atproto.server.createSession":
		var req dto.CreateSessionRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "app-password" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"AuthenticationRequired","message":"Invalid identifier or password"}`))
			return
		}
		_, _ = w.Write([]byte(`{"did":"did:plc:bot","handle":"bot.bsky.social","accessJwt":"access-token","refreshJwt":"r"}`))
	case "/xrpc/app.bsky.feed.searchPosts":
		assert.Equal(fp.t, "#golang", r.URL.Query().Get("q"))
		assert.Equal(fp.t, "100", r.URL.Query().Get("limit"))
		assert.Equal(fp.t, "latest", r.URL.Query().Get("sort"))
		_, _ = w.Write([]byte(`{"posts":[
			{"uri":"at://did:plc:a/app.bsky.feed.post/1","cid":"c1",
			 "author":{"did":"did:plc:a","handle":"a.bsky.social"},
			 "record":{"$type":"app.bsky.feed.post","text":"Go is fun","langs":["en"],"createdAt":"2025-06-10T10:00:00Z"}},
			{"uri":"at://did:plc:b/app.bsky.feed.post/2","cid":"c2"}
		]}`))
	case "/xrpc/com.atproto.repo.createRecord":
		var req dto.CreateRecordRequest
		body, _ := io.ReadAll(r.Body)
		var raw map[string]json.RawMessage
		require.Nil(fp.t, json.Unmarshal(body, &raw))
		require.Nil(fp.t, json.Unmarshal(body, &req))
		req.Record = raw["record"]
		fp.records = append(fp.records, &req)
		_, _ = w.Write([]byte(`{"uri":"at://did:plc:bot/` + req.Collection + `/3k","cid":"newcid"}`))
	case "/xrpc/com.atproto.repo.uploadBlob":
		assert.Equal(fp.t, "image/jpeg", r.Header.Get("Content-Type"))
		data, _ := io.ReadAll(r.Body)
		fp.blobs = append(fp.blobs, data)
		_, _ = w.Write([]byte(`{"blob":{"$type":"blob","ref":{"$link":"bafkrei"},"mimeType":"image/jpeg","size":3}}`))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func setupSocialClientTest(t *testing.T) (*gomock.Controller, *fakePds, logic.ISocialClient) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockILogger(ctrl)
	mockUserAgent := mocks.NewMockIUserAgent(ctrl)
	mockMetrics := mocks.NewMockIMetrics(ctrl)
	stubLogger(mockLogger)
	stubUserAgent(mockUserAgent)
	stubMetrics(ctrl, mockMetrics)

	pds := &fakePds{t: t}
	srv := httptest.NewServer(pds)
	t.Cleanup(srv.Close)

	cfg := testConfig(t)
	cfg.BlueskyService = srv.URL
	cfg.Secrets.BlueskyHandle = "bot.bsky.social"
	cfg.Secrets.BlueskyPassword = "app-password"

	sc := logic.NewSocialClient(cfg, mockLogger, mockUserAgent, mockMetrics)
	return ctrl, pds, sc
}

func Test_Social_Client_Requires_Login(t *testing.T) {
	ctrl, _, sc := setupSocialClientTest(t)
	defer ctrl.Finish()

	assert.Equal(t, "", sc.Did())
	_, err := sc.Search(context.Background(), "#golang", 0)
	assert.ErrorIs(t, err, logic.ErrNotLoggedIn)
	assert.ErrorIs(t, sc.Follow(context.Background(), "did:plc:a"), logic.ErrNotLoggedIn)
}

func Test_Social_Client_Search(t *testing.T) {
	ctrl, _, sc := setupSocialClientTest(t)
	defer ctrl.Finish()

	require.Nil(t, sc.Login(context.Background()))
	assert.Equal(t, "did:plc:bot", sc.Did())

	res, err := sc.Search(context.Background(), "#golang", 500)
	require.Nil(t, err)
	// The second post has no author and is dropped
	require.Len(t, res, 1)
	assert.Equal(t, "did:plc:a", res[0].AuthorDid)
	assert.Equal(t, "a.bsky.social", res[0].AuthorHandle)
	assert.Equal(t, "c1", res[0].Cid)
	assert.Equal(t, "Go is fun", res[0].Text)
	assert.Equal(t, []string{"en"}, res[0].Langs)
}

func Test_Social_Client_Records(t *testing.T) {
	ctrl, pds, sc := setupSocialClientTest(t)
	defer ctrl.Finish()

	ctx := context.Background()
	require.Nil(t, sc.Login(ctx))

	parent := &dto.StrongRef{Uri: "at://did:plc:a/app.bsky.feed.post/1", Cid: "c1"}
	ref, err := sc.CreatePost(ctx, &logic.NewPost{Text: "Agreed.", Langs: []string{"en"}, ReplyTo: parent})
	require.Nil(t, err)
	assert.Equal(t, "newcid", ref.Cid)
	require.Nil(t, sc.Like(ctx, parent.Uri, parent.Cid))
	require.Nil(t, sc.Follow(ctx, "did:plc:a"))

	require.Len(t, pds.records, 3)
	for _, rec := range pds.records {
		assert.Equal(t, "did:plc:bot", rec.Repo)
	}

	var post dto.PostRecord
	require.Nil(t, json.Unmarshal(pds.records[0].Record.(json.RawMessage), &post))
	assert.Equal(t, "app.bsky.feed.post", pds.records[0].Collection)
	assert.Equal(t, dto.TypePost, post.Type)
	assert.Equal(t, "Agreed.", post.Text)
	require.NotNil(t, post.Reply)
	assert.Equal(t, *parent, post.Reply.Root)
	assert.Equal(t, *parent, post.Reply.Parent)
	assert.Nil(t, post.Embed)

	var like dto.LikeRecord
	require.Nil(t, json.Unmarshal(pds.records[1].Record.(json.RawMessage), &like))
	assert.Equal(t, "app.bsky.feed.like", pds.records[1].Collection)
	assert.Equal(t, *parent, like.Subject)

	var follow dto.FollowRecord
	require.Nil(t, json.Unmarshal(pds.records[2].Record.(json.RawMessage), &follow))
	assert.Equal(t, "app.bsky.graph.follow", pds.records[2].Collection)
	assert.Equal(t, "did:plc:a", follow.Subject)
}

func Test_Social_Client_Upload_And_Embed(t *testing.T) {
	ctrl, pds, sc := setupSocialClientTest(t)
	defer ctrl.Finish()

	ctx := context.Background()
	require.Nil(t, sc.Login(ctx))
	blob, err := sc.UploadBlob(ctx, []byte{1, 2, 3}, "image/jpeg")
	require.Nil(t, err)
	assert.Equal(t, "bafkrei", blob.Ref.Link)
	assert.Equal(t, [][]byte{{1, 2, 3}}, pds.blobs)

	_, err = sc.CreatePost(ctx, &logic.NewPost{Text: "Look", Images: []*dto.EmbedImage{{Image: blob, Alt: "alt"}}})
	require.Nil(t, err)
	var post dto.PostRecord
	require.Nil(t, json.Unmarshal(pds.records[0].Record.(json.RawMessage), &post))
	require.NotNil(t, post.Embed)
	assert.Equal(t, dto.TypeEmbedImages, post.Embed.Type)
	assert.Equal(t, "alt", post.Embed.Images[0].Alt)
	assert.Nil(t, post.Reply)
}

func Test_Social_Client_Login_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLogger := mocks.NewMockILogger(ctrl)
	mockUserAgent := mocks.NewMockIUserAgent(ctrl)
	mockMetrics := mocks.NewMockIMetrics(ctrl)
	stubLogger(mockLogger)
	stubUserAgent(mockUserAgent)
	stubMetrics(ctrl, mockMetrics)

	srv := httptest.NewServer(&fakePds{t: t})
	defer srv.Close()
	cfg := testConfig(t)
	cfg.BlueskyService = srv.URL
	cfg.Secrets.BlueskyHandle = "bot.bsky.social"
	cfg.Secrets.BlueskyPassword = "wrong"
	sc := logic.NewSocialClient(cfg, mockLogger, mockUserAgent, mockMetrics)

	err := sc.Login(context.Background())
	var upstream *logic.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusUnauthorized, upstream.Status)
	assert.Contains(t, upstream.Body, "AuthenticationRequired")
	assert.Equal(t, "", sc.Did())
}
