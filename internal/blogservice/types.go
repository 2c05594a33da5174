package blogservice

import (
	"context"
	"time"

	"github.com/sushihentaime/inkpost/internal/memdb"
)

type notifier interface {
	Dispatch(ctx context.Context, notifications ...memdb.Notification)
}

type BlogService struct {
	db *memdb.DB
	n  notifier
}

type CreatePostRequest struct {
	Title                string           `json:"title"`
	Content              string           `json:"content"`
	AuthorID             string           `json:"author_id"`
	Excerpt              string           `json:"excerpt"`
	MetaDescription      string           `json:"meta_description"`
	Tags                 []string         `json:"tags"`
	Status               memdb.PostStatus `json:"status"`
	PostType             memdb.PostType   `json:"post_type"`
	IsPremium            bool             `json:"is_premium"`
	FeaturedImage        string           `json:"featured_image"`
	ScheduledPublishTime *time.Time       `json:"scheduled_publish_time"`
}

// PostPatch holds the fields of an update. Nil fields are left unchanged.
type PostPatch struct {
	Title                *string           `json:"title"`
	Content              *string           `json:"content"`
	Excerpt              *string           `json:"excerpt"`
	MetaDescription      *string           `json:"meta_description"`
	Tags                 []string          `json:"tags"`
	Status               *memdb.PostStatus `json:"status"`
	PostType             *memdb.PostType   `json:"post_type"`
	IsPremium            *bool             `json:"is_premium"`
	FeaturedImage        *string           `json:"featured_image"`
	ScheduledPublishTime *time.Time        `json:"scheduled_publish_time"`
}

type MatchField string

const (
	MatchTitle   MatchField = "title"
	MatchContent MatchField = "content"
	MatchAuthor  MatchField = "author"
	MatchTag     MatchField = "tag"
)

type SearchResult struct {
	Post         memdb.Post `json:"post"`
	MatchField   MatchField `json:"match_field"`
	MatchSnippet string     `json:"match_snippet"`
}

type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
