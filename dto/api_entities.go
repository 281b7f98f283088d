package dto

import "time"

type QuotaStatus struct {
	Kind            string      `json:"kind"`
	Allowed         bool        `json:"allowed"`
	HourlyUsage     int         `json:"hourly_usage"`
	HourlyLimit     int         `json:"hourly_limit"`
	HourlyRemaining int         `json:"hourly_remaining"`
	DailyUsage      int         `json:"daily_usage"`
	DailyLimit      int         `json:"daily_limit"`
	DailyRemaining  int         `json:"daily_remaining"`
	LastDays        []*DayCount `json:"last_days"`
}

type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type JobStatus struct {
	Name     string     `json:"name"`
	Workflow string     `json:"workflow"`
	Runs     int        `json:"runs"`
	MaxRuns  int        `json:"max_runs"`
	NextRun  *time.Time `json:"next_run,omitempty"`
	LastRun  *time.Time `json:"last_run,omitempty"`
}

type RunNowResponse struct {
	Name    string `json:"name"`
	Started bool   `json:"started"`
}

type PostSummary struct {
	Uri       string    `json:"uri"`
	WebUrl    string    `json:"web_url"`
	Kind      string    `json:"kind"`
	Text      string    `json:"text"`
	ReplyTo   string    `json:"reply_to,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
