package logic

import (
	"bluebot/dto"
	"bluebot/shared"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_social_client.go -package mocks bluebot/logic ISocialClient

const (
	nsidCreateSession = "com.atproto.server.createSession"
	nsidSearchPosts   = "app.bsky.feed.searchPosts"
	nsidCreateRecord  = "com.atproto.repo.createRecord"
	nsidUploadBlob    = "com.atproto.repo.uploadBlob"
	maxSearchLimit    = 100
	serviceBluesky    = "bluesky"
)

// NewPost is a post or reply to publish. ReplyTo is the parent, which is also used as the thread root.
type NewPost struct {
	Text    string
	Langs   []string
	ReplyTo *dto.StrongRef
	Images  []*dto.EmbedImage
}

// ISocialClient is the session-holding Bluesky handle shared by all workflows.
type ISocialClient interface {
	Login(ctx context.Context) error
	Did() string
	Search(ctx context.Context, query string, limit int) ([]*Candidate, error)
	CreatePost(ctx context.Context, post *NewPost) (*dto.StrongRef, error)
	Like(ctx context.Context, uri, cid string) error
	Follow(ctx context.Context, did string) error
	UploadBlob(ctx context.Context, data []byte, mimeType string) (*dto.Blob, error)
}

type socialClient struct {
	cfg       *shared.Config
	logger    shared.ILogger
	userAgent shared.IUserAgent
	metrics   IMetrics
	client    http.Client
	muSession sync.RWMutex
	session   *dto.CreateSessionResponse
}

func NewSocialClient(
	cfg *shared.Config,
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	metrics IMetrics,
) ISocialClient {
	res := socialClient{
		cfg:       cfg,
		logger:    logger,
		userAgent: userAgent,
		metrics:   metrics,
	}
	res.client.Timeout = time.Second * time.Duration(cfg.HttpTimeoutSec)
	return &res
}

// Login always creates a fresh session; access tokens are short-lived and runs are hours apart.
func (sc *socialClient) Login(ctx context.Context) error {
	req := dto.CreateSessionRequest{
		Identifier: sc.cfg.Secrets.BlueskyHandle,
		Password:   sc.cfg.Secrets.BlueskyPassword,
	}
	var resp dto.CreateSessionResponse
	if err := sc.call(ctx, http.MethodPost, nsidCreateSession, nil, &req, &resp, false); err != nil {
		return fmt.Errorf("login as %s: %w", req.Identifier, err)
	}
	if resp.AccessJwt == "" || resp.Did == "" {
		return fmt.Errorf("login as %s: %w", req.Identifier, ErrMalformedPayload)
	}
	sc.muSession.Lock()
	sc.session = &resp
	sc.muSession.Unlock()
	sc.logger.Infof("Logged in to %s as %s (%s)", sc.cfg.BlueskyService, resp.Handle, resp.Did)
	return nil
}

func (sc *socialClient) Did() string {
	sc.muSession.RLock()
	defer sc.muSession.RUnlock()
	if sc.session == nil {
		return ""
	}
	return sc.session.Did
}

func (sc *socialClient) Search(ctx context.Context, query string, limit int) ([]*Candidate, error) {
	if limit <= 0 || limit > maxSearchLimit {
		limit = maxSearchLimit
	}
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("sort", "latest")

	var resp dto.SearchPostsResponse
	if err := sc.call(ctx, http.MethodGet, nsidSearchPosts, params, nil, &resp, true); err != nil {
		return nil, err
	}
	if resp.Posts == nil {
		return nil, fmt.Errorf("search '%s': %w", query, ErrMalformedPayload)
	}

	res := make([]*Candidate, 0, len(resp.Posts))
	for _, post := range resp.Posts {
		if post == nil || post.Author == nil {
			continue
		}
		res = append(res, &Candidate{
			AuthorDid:    post.Author.Did,
			AuthorHandle: post.Author.Handle,
			Uri:          post.Uri,
			Cid:          post.Cid,
			Text:         post.Record.Text,
			Langs:        post.Record.Langs,
		})
	}
	return res, nil
}

func nowStamp() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}

func (sc *socialClient) CreatePost(ctx context.Context, post *NewPost) (*dto.StrongRef, error) {
	record := dto.PostRecord{
		Type:      dto.TypePost,
		Text:      post.Text,
		CreatedAt: nowStamp(),
		Langs:     post.Langs,
	}
	if post.ReplyTo != nil {
		record.Reply = &dto.ReplyRef{Root: *post.ReplyTo, Parent: *post.ReplyTo}
	}
	if len(post.Images) != 0 {
		record.Embed = &dto.ImagesEmbed{Type: dto.TypeEmbedImages, Images: post.Images}
	}
	return sc.createRecord(ctx, shared.CollectionPost, &record)
}

func (sc *socialClient) Like(ctx context.Context, uri, cid string) error {
	record := dto.LikeRecord{
		Type:      dto.TypeLike,
		Subject:   dto.StrongRef{Uri: uri, Cid: cid},
		CreatedAt: nowStamp(),
	}
	_, err := sc.createRecord(ctx, shared.CollectionLike, &record)
	return err
}

func (sc *socialClient) Follow(ctx context.Context, did string) error {
	record := dto.FollowRecord{
		Type:      dto.TypeFollow,
		Subject:   did,
		CreatedAt: nowStamp(),
	}
	_, err := sc.createRecord(ctx, shared.CollectionFollow, &record)
	return err
}

func (sc *socialClient) createRecord(ctx context.Context, collection string, record any) (*dto.StrongRef, error) {
	did := sc.Did()
	if did == "" {
		return nil, ErrNotLoggedIn
	}
	req := dto.CreateRecordRequest{
		Repo:       did,
		Collection: collection,
		Record:     record,
	}
	var resp dto.CreateRecordResponse
	if err := sc.call(ctx, http.MethodPost, nsidCreateRecord, nil, &req, &resp, true); err != nil {
		return nil, err
	}
	return &dto.StrongRef{Uri: resp.Uri, Cid: resp.Cid}, nil
}

func (sc *socialClient) UploadBlob(ctx context.Context, data []byte, mimeType string) (*dto.Blob, error) {
	var resp dto.UploadBlobResponse
	if err := sc.send(ctx, http.MethodPost, nsidUploadBlob, nil, data, mimeType, &resp, true); err != nil {
		return nil, err
	}
	if resp.Blob == nil {
		return nil, fmt.Errorf("upload blob: %w", ErrMalformedPayload)
	}
	return resp.Blob, nil
}

func (sc *socialClient) call(ctx context.Context, method, nsid string, params url.Values,
	reqObj, respObj any, auth bool) error {

	var body []byte
	if reqObj != nil {
		var err error
		if body, err = json.Marshal(reqObj); err != nil {
			return err
		}
	}
	return sc.send(ctx, method, nsid, params, body, "application/json", respObj, auth)
}

func (sc *socialClient) send(ctx context.Context, method, nsid string, params url.Values,
	body []byte, contentType string, respObj any, auth bool) error {

	obs := sc.metrics.StartUpstreamRequest(serviceBluesky)
	defer obs.Finish()

	reqUrl := strings.TrimRight(sc.cfg.BlueskyService, "/") + "/xrpc/" + nsid
	if len(params) != 0 {
		reqUrl += "?" + params.Encode()
	}
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqUrl, bodyReader)
	if err != nil {
		return err
	}
	sc.userAgent.AddUserAgent(req)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	if auth {
		sc.muSession.RLock()
		session := sc.session
		sc.muSession.RUnlock()
		if session == nil {
			return ErrNotLoggedIn
		}
		req.Header.Set("Authorization", "Bearer "+session.AccessJwt)
	}

	resp, err := sc.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 300 {
		msg := string(respBody)
		var xerr dto.XrpcError
		if json.Unmarshal(respBody, &xerr) == nil && xerr.Error != "" {
			msg = xerr.Error + ": " + xerr.Message
		}
		return &UpstreamError{Service: serviceBluesky, Status: resp.StatusCode, Body: msg}
	}
	if respObj == nil {
		return nil
	}
	if err = json.Unmarshal(respBody, respObj); err != nil {
		return fmt.Errorf("%s: %w: %v", nsid, ErrMalformedPayload, err)
	}
	return nil
}
