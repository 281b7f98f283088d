package dto

const (
	TypePost        = "app.bsky.feed.post"
	TypeLike        = "app.bsky.feed.like"
	TypeFollow      = "app.bsky.graph.follow"
	TypeEmbedImages = "app.bsky.embed.images"
	TypeBlob        = "blob"
)

type CreateSessionRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type CreateSessionResponse struct {
	AccessJwt  string `json:"accessJwt"`
	RefreshJwt string `json:"refreshJwt"`
	Handle     string `json:"handle"`
	Did        string `json:"did"`
}

type XrpcError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type SearchPostsResponse struct {
	Cursor    string      `json:"cursor,omitempty"`
	HitsTotal int         `json:"hitsTotal,omitempty"`
	Posts     []*PostView `json:"posts"`
}

type PostView struct {
	Uri       string       `json:"uri"`
	Cid       string       `json:"cid"`
	Author    *ProfileView `json:"author"`
	Record    PostRecord   `json:"record"`
	IndexedAt string       `json:"indexedAt"`
}

type ProfileView struct {
	Did         string `json:"did"`
	Handle      string `json:"handle"`
	DisplayName string `json:"displayName,omitempty"`
}

type StrongRef struct {
	Uri string `json:"uri"`
	Cid string `json:"cid"`
}

type ReplyRef struct {
	Root   StrongRef `json:"root"`
	Parent StrongRef `json:"parent"`
}

type PostRecord struct {
	Type      string       `json:"$type"`
	Text      string       `json:"text"`
	CreatedAt string       `json:"createdAt"`
	Langs     []string     `json:"langs,omitempty"`
	Reply     *ReplyRef    `json:"reply,omitempty"`
	Embed     *ImagesEmbed `json:"embed,omitempty"`
}

type LikeRecord struct {
	Type      string    `json:"$type"`
	Subject   StrongRef `json:"subject"`
	CreatedAt string    `json:"createdAt"`
}

type FollowRecord struct {
	Type      string `json:"$type"`
	Subject   string `json:"subject"`
	CreatedAt string `json:"createdAt"`
}

type ImagesEmbed struct {
	Type   string        `json:"$type"`
	Images []*EmbedImage `json:"images"`
}

type EmbedImage struct {
	Image *Blob  `json:"image"`
	Alt   string `json:"alt"`
}

type BlobLink struct {
	Link string `json:"$link"`
}

type Blob struct {
	Type     string   `json:"$type"`
	Ref      BlobLink `json:"ref"`
	MimeType string   `json:"mimeType"`
	Size     int      `json:"size"`
}

type UploadBlobResponse struct {
	Blob *Blob `json:"blob"`
}

type CreateRecordRequest struct {
	Repo       string `json:"repo"`
	Collection string `json:"collection"`
	Record     any    `json:"record"`
}

type CreateRecordResponse struct {
	Uri string `json:"uri"`
	Cid string `json:"cid"`
}
