package memdb

import (
	"slices"
	"time"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleUser   Role = "user"
)

var Roles = []Role{RoleAdmin, RoleEditor, RoleUser}

type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusPublished PostStatus = "published"
	StatusScheduled PostStatus = "scheduled"
)

var PostStatuses = []PostStatus{StatusDraft, StatusPublished, StatusScheduled}

type PostType string

const (
	PostTypeBlog    PostType = "blog"
	PostTypeArticle PostType = "article"
)

var PostTypes = []PostType{PostTypeBlog, PostTypeArticle}

type ReactionType string

const (
	ReactionLike       ReactionType = "like"
	ReactionLove       ReactionType = "love"
	ReactionCelebrate  ReactionType = "celebrate"
	ReactionInsightful ReactionType = "insightful"
	ReactionFunny      ReactionType = "funny"
)

// ReactionTypes is the closed set of reaction kinds, in display order.
var ReactionTypes = []ReactionType{ReactionLike, ReactionLove, ReactionCelebrate, ReactionInsightful, ReactionFunny}

type NotificationType string

const (
	NotificationReaction NotificationType = "reaction"
	NotificationComment  NotificationType = "comment"
	NotificationReply    NotificationType = "reply"
	NotificationFollow   NotificationType = "follow"
)

const (
	DefaultProfilePicture = "https://picsum.photos/seed/default-avatar/200"
	DefaultFeaturedImage  = "https://picsum.photos/seed/default-featured/800/400"
)

type User struct {
	ID                string   `json:"id"`
	Email             string   `json:"email"`
	Username          string   `json:"username"`
	Role              Role     `json:"role"`
	Bio               string   `json:"bio"`
	ProfilePictureURL string   `json:"profile_picture_url"`
	IsSubscribed      bool     `json:"is_subscribed"`
	Following         []string `json:"following"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) Follows(id string) bool {
	return slices.Contains(u.Following, id)
}

func (u *User) Clone() *User {
	c := *u
	c.Following = append(make([]string, 0, len(u.Following)), u.Following...)
	return &c
}

// Reactions maps a reaction kind to the ids of the users who reacted with it.
// A user id appears under at most one kind.
type Reactions map[ReactionType][]string

// Count returns the total number of reactions across all kinds.
func (r Reactions) Count() int {
	n := 0
	for _, ids := range r {
		n += len(ids)
	}
	return n
}

// Of reports which kind the user reacted with, if any.
func (r Reactions) Of(userID string) (ReactionType, bool) {
	for _, t := range ReactionTypes {
		if slices.Contains(r[t], userID) {
			return t, true
		}
	}
	return "", false
}

// Strip removes every reaction by userID and drops kinds left empty.
func (r Reactions) Strip(userID string) bool {
	removed := false
	for t, ids := range r {
		kept := slices.DeleteFunc(slices.Clone(ids), func(id string) bool { return id == userID })
		if len(kept) == len(ids) {
			continue
		}
		removed = true
		if len(kept) == 0 {
			delete(r, t)
			continue
		}
		r[t] = kept
	}
	return removed
}

// Set replaces any previous reaction by userID with t.
func (r Reactions) Set(t ReactionType, userID string) {
	r.Strip(userID)
	r[t] = append(r[t], userID)
}

func (r Reactions) clone() Reactions {
	c := make(Reactions, len(r))
	for t, ids := range r {
		c[t] = slices.Clone(ids)
	}
	return c
}

type Post struct {
	ID                   string     `json:"id"`
	Title                string     `json:"title"`
	Content              string     `json:"content"`
	Excerpt              string     `json:"excerpt"`
	MetaDescription      string     `json:"meta_description"`
	Tags                 []string   `json:"tags"`
	AuthorID             string     `json:"author_id"`
	AuthorName           string     `json:"author_name"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
	PublishedAt          *time.Time `json:"published_at,omitempty"`
	ScheduledPublishTime *time.Time `json:"scheduled_publish_time,omitempty"`
	Status               PostStatus `json:"status"`
	PostType             PostType   `json:"post_type"`
	IsPremium            bool       `json:"is_premium"`
	FeaturedImage        string     `json:"featured_image"`
	Reactions            Reactions  `json:"reactions"`
}

func (p *Post) IsPublished() bool {
	return p.Status == StatusPublished
}

// HasTag reports whether the post carries tag, ignoring case.
func (p *Post) HasTag(tag string) bool {
	return slices.ContainsFunc(p.Tags, func(t string) bool { return equalFold(t, tag) })
}

func (p *Post) Clone() *Post {
	c := *p
	c.Tags = append(make([]string, 0, len(p.Tags)), p.Tags...)
	c.Reactions = p.Reactions.clone()
	c.PublishedAt = cloneTime(p.PublishedAt)
	c.ScheduledPublishTime = cloneTime(p.ScheduledPublishTime)
	return &c
}

type Comment struct {
	ID                    string    `json:"id"`
	BlogPostID            string    `json:"blog_post_id"`
	UserID                string    `json:"user_id"`
	UserName              string    `json:"user_name"`
	UserProfilePictureURL string    `json:"user_profile_picture_url"`
	Content               string    `json:"content"`
	CreatedAt             time.Time `json:"created_at"`
	ParentID              string    `json:"parent_id,omitempty"`
	Reported              bool      `json:"reported"`
}

func (c *Comment) Clone() *Comment {
	cc := *c
	return &cc
}

type Bookmark struct {
	UserID     string    `json:"user_id"`
	BlogPostID string    `json:"blog_post_id"`
	AddedAt    time.Time `json:"added_at"`
}

func (b *Bookmark) Clone() *Bookmark {
	bb := *b
	return &bb
}

// Actor is the snapshot of the user who triggered a notification.
type Actor struct {
	ID                string `json:"id"`
	Username          string `json:"username"`
	ProfilePictureURL string `json:"profile_picture_url"`
}

type Notification struct {
	ID          string           `json:"id"`
	RecipientID string           `json:"recipient_id"`
	Actor       Actor            `json:"actor"`
	Type        NotificationType `json:"type"`
	Message     string           `json:"message"`
	Link        string           `json:"link"`
	Read        bool             `json:"read"`
	CreatedAt   time.Time        `json:"created_at"`
}

func (n *Notification) Clone() *Notification {
	nn := *n
	return &nn
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	tt := *t
	return &tt
}
