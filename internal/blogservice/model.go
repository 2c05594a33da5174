package blogservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/sushihentaime/inkpost/internal/common"
	"github.com/sushihentaime/inkpost/internal/memdb"
)

var (
	ErrRecordNotFound    = fmt.Errorf("post %w", common.ErrRecordNotFound)
	ErrUserNotFound      = fmt.Errorf("user %w", common.ErrRecordNotFound)
	ErrNotOwner          = fmt.Errorf("%w: only the author or an admin can change this post", common.ErrUnauthorized)
	ErrDuplicateCategory = fmt.Errorf("%w: category already exists", common.ErrConflict)
)

const (
	excerptLength         = 150
	metaDescriptionLength = 160
	snippetFallbackLength = 100
	snippetRadius         = 60
)

func (s *BlogService) notify(ctx context.Context, notifications ...memdb.Notification) {
	if s.n == nil || len(notifications) == 0 {
		return
	}
	s.n.Dispatch(ctx, notifications...)
}

// clonePosts copies the rows that match, keeping table order. The result is never nil.
func clonePosts(rows []*memdb.Post, match func(p *memdb.Post) bool) []memdb.Post {
	posts := make([]memdb.Post, 0, len(rows))
	for _, p := range rows {
		if match == nil || match(p) {
			posts = append(posts, *p.Clone())
		}
	}
	return posts
}

// canModify reports whether actor may update or delete p.
func canModify(actor *memdb.User, p *memdb.Post) bool {
	return actor != nil && (actor.ID == p.AuthorID || actor.IsAdmin())
}

// deriveSummary fills excerpt and meta description from the content where they are blank.
func deriveSummary(p *memdb.Post, excerpt, meta string) {
	text := plainText(p.Content)

	p.Excerpt = strings.TrimSpace(excerpt)
	if p.Excerpt == "" {
		p.Excerpt = truncate(text, excerptLength)
	}

	p.MetaDescription = strings.TrimSpace(meta)
	if p.MetaDescription == "" {
		p.MetaDescription = truncate(text, metaDescriptionLength)
	}
}

// cleanTags trims tags and drops blanks. Order and repeats are kept as given.
func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
