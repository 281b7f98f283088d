package server

import (
	"bluebot/dal"
	"bluebot/dto"
	"bluebot/logic"
	"bluebot/shared"
	"errors"
	"github.com/gorilla/mux"
	"net/http"
	"strconv"
)

const (
	reportDays       = 7
	defaultPostCount = 20
	maxPostCount     = 200
)

type apiHandlerGroup struct {
	cfg       *shared.Config
	logger    shared.ILogger
	metrics   logic.IMetrics
	quota     logic.IQuotaManager
	scheduler logic.IScheduler
	repo      dal.IRepo
}

func NewApiHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	quota logic.IQuotaManager,
	scheduler logic.IScheduler,
	repo dal.IRepo,
) IHandlerGroup {
	res := apiHandlerGroup{
		cfg:       cfg,
		logger:    logger,
		metrics:   metrics,
		quota:     quota,
		scheduler: scheduler,
		repo:      repo,
	}
	return &res
}

func (hg *apiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *apiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/quota", func(w http.ResponseWriter, r *http.Request) { hg.getQuota(w, r) }},
		{"GET", "/jobs", func(w http.ResponseWriter, r *http.Request) { hg.getJobs(w, r) }},
		{"POST", "/jobs/{name}/run", func(w http.ResponseWriter, r *http.Request) { hg.postRunJob(w, r) }},
		{"GET", "/posts", func(w http.ResponseWriter, r *http.Request) { hg.getPosts(w, r) }},
	}
}

func (hg *apiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return hg.authMW(next)
	}
}

func (hg *apiHandlerGroup) authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var apiKey = r.Header.Get(apiKeyHeader)
		found := false
		for _, key := range hg.cfg.Secrets.ApiKeys {
			if apiKey != "" && apiKey == key {
				found = true
			}
		}
		if !found {
			keyPart := apiKey
			if len(apiKey) > 4 {
				keyPart = apiKey[:4] + "..."
			}
			hg.logger.Warnf("API request with missing or invalid key '%s': %s", keyPart, r.URL.Path)
			writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (hg *apiHandlerGroup) getQuota(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartWebRequestIn("api-quota")
	defer obs.Finish()

	summary := hg.quota.Summary()
	kinds := []logic.ActionKind{logic.ActionLike, logic.ActionFollow, logic.ActionReply}
	resp := make([]*dto.QuotaStatus, 0, len(summary))
	for _, kind := range kinds {
		state, ok := summary[kind]
		if !ok {
			continue
		}
		status := dto.QuotaStatus{
			Kind:            string(kind),
			Allowed:         state.Allowed,
			HourlyUsage:     state.HourlyUsage,
			HourlyLimit:     state.HourlyLimit,
			HourlyRemaining: state.HourlyRemaining,
			DailyUsage:      state.DailyUsage,
			DailyLimit:      state.DailyLimit,
			DailyRemaining:  state.DailyRemaining,
		}
		for _, day := range hg.quota.GenerateDailyReport(kind, reportDays) {
			status.LastDays = append(status.LastDays, &dto.DayCount{Date: day.Date, Count: day.Count})
		}
		resp = append(resp, &status)
	}
	writeJsonResponse(hg.logger, w, resp)
}

func (hg *apiHandlerGroup) getJobs(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartWebRequestIn("api-jobs")
	defer obs.Finish()

	writeJsonResponse(hg.logger, w, hg.scheduler.Jobs())
}

func (hg *apiHandlerGroup) postRunJob(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartWebRequestIn("api-run-job")
	defer obs.Finish()

	name := mux.Vars(r)["name"]
	hg.logger.Infof("POST /api/jobs/%s/run: Request received", name)
	if err := hg.scheduler.RunNow(name); err != nil {
		if errors.Is(err, logic.ErrUnknownJob) {
			writeErrorResponse(w, notFoundStr, http.StatusNotFound)
			return
		}
		hg.logger.Errorf("Failed to start job %s: %v", name, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	writeJsonResponse(hg.logger, w, &dto.RunNowResponse{Name: name, Started: true})
}

func (hg *apiHandlerGroup) getPosts(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartWebRequestIn("api-posts")
	defer obs.Finish()

	count := defaultPostCount
	if countStr := r.URL.Query().Get("count"); countStr != "" {
		var err error
		if count, err = strconv.Atoi(countStr); err != nil || count <= 0 {
			writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
			return
		}
	}
	count = min(count, maxPostCount)

	posts, err := hg.repo.GetRecentPosts(count)
	if err != nil {
		hg.logger.Errorf("Failed to load recent posts: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	resp := make([]*dto.PostSummary, 0, len(posts))
	for _, post := range posts {
		resp = append(resp, &dto.PostSummary{
			Uri:       post.Uri,
			WebUrl:    shared.PostWebUrl(post.Uri),
			Kind:      post.Kind,
			Text:      post.Text,
			ReplyTo:   post.ReplyTo,
			CreatedAt: post.CreatedAt,
		})
	}
	writeJsonResponse(hg.logger, w, resp)
}
