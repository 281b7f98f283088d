package shared

import (
	"fmt"
	"strings"
)

const atUriScheme = "at://"

const (
	CollectionPost   = "app.bsky.feed.post"
	CollectionLike   = "app.bsky.feed.like"
	CollectionFollow = "app.bsky.graph.follow"
)

// AtUri is a parsed at://<repo>/<collection>/<rkey> record address.
type AtUri struct {
	Repo       string
	Collection string
	RecordKey  string
}

func ParseAtUri(uri string) (*AtUri, error) {
	if !strings.HasPrefix(uri, atUriScheme) {
		return nil, fmt.Errorf("not an AT URI: '%s'", uri)
	}
	parts := strings.Split(strings.TrimPrefix(uri, atUriScheme), "/")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return nil, fmt.Errorf("AT URI must have repo, collection and record key: '%s'", uri)
	}
	return &AtUri{parts[0], parts[1], parts[2]}, nil
}

func (u *AtUri) String() string {
	return atUriScheme + u.Repo + "/" + u.Collection + "/" + u.RecordKey
}

// PostWebUrl returns the bsky.app address of a post record; other URIs come back unchanged.
func PostWebUrl(uri string) string {
	parsed, err := ParseAtUri(uri)
	if err != nil || parsed.Collection != CollectionPost {
		return uri
	}
	return fmt.Sprintf("https://bsky.app/profile/%s/post/%s", parsed.Repo, parsed.RecordKey)
}
