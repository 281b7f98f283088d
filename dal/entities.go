package dal

import (
	"time"
)

// ActionRecord is one like, follow or reply the bot performed.
type ActionRecord struct {
	Timestamp   int64  `json:"timestamp"`   // Unix milliseconds
	TargetId    string `json:"targetId"`    // did:plc:vwzwgnygau7ed7b7wt5ux7y2 for users, at:// URI for posts
	TargetLabel string `json:"targetLabel"` // alice.bsky.social
}

type ActionHistory struct {
	Actions []*ActionRecord `json:"actions"`
}

// ReplyHistory maps contacted authors and posts to the Unix millisecond time of contact.
type ReplyHistory struct {
	Users map[string]int64 `json:"users"`
	Posts map[string]int64 `json:"posts"`
}

type JobRun struct {
	JobName string
	RunAt   time.Time
	Ok      bool
	Error   string
}

type PublishedPost struct {
	Uri       string // at://did:plc:xyz/app.bsky.feed.post/3kxyz
	Cid       string
	Kind      string // reply, text_post, image_post
	Text      string
	ReplyTo   string // URI of the parent post for replies; empty otherwise
	CreatedAt time.Time
}
