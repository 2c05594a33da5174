package blogservice

import (
	"context"
	"strings"

	"github.com/sushihentaime/inkpost/internal/common"
	"github.com/sushihentaime/inkpost/internal/memdb"
)

// NewBlogService returns a service over db. n receives the notifications reactions create and may be nil.
func NewBlogService(db *memdb.DB, n notifier) *BlogService {
	return &BlogService{db: db, n: n}
}

// CreatePost creates a new post. The author must exist.
func (s *BlogService) CreatePost(ctx context.Context, req *CreatePostRequest) (*memdb.Post, error) {
	if err := s.db.Wait(ctx, memdb.Full); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = memdb.StatusDraft
	}
	postType := req.PostType
	if postType == "" {
		postType = memdb.PostTypeBlog
	}

	v := common.NewValidator()
	validateTitle(v, req.Title)
	validateContent(v, req.Content)
	validateID(v, req.AuthorID, "author_id")
	validateStatus(v, status)
	validatePostType(v, postType)
	validateSchedule(v, status, req.ScheduledPublishTime)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	var post *memdb.Post
	err := s.db.Update(func(tx *memdb.Tx) error {
		author := tx.User(req.AuthorID)
		if author == nil {
			return ErrUserNotFound
		}

		now := tx.Now()
		p := &memdb.Post{
			ID:            memdb.NewID(),
			Title:         strings.TrimSpace(req.Title),
			Content:       req.Content,
			Tags:          cleanTags(req.Tags),
			AuthorID:      author.ID,
			AuthorName:    author.Username,
			CreatedAt:     now,
			UpdatedAt:     now,
			Status:        status,
			PostType:      postType,
			IsPremium:     req.IsPremium,
			FeaturedImage: strings.TrimSpace(req.FeaturedImage),
			Reactions:     memdb.Reactions{},
		}
		deriveSummary(p, req.Excerpt, req.MetaDescription)

		if p.FeaturedImage == "" {
			p.FeaturedImage = memdb.DefaultFeaturedImage
		}
		if status == memdb.StatusPublished {
			p.PublishedAt = &now
		}
		if status == memdb.StatusScheduled {
			at := *req.ScheduledPublishTime
			p.ScheduledPublishTime = &at
		}

		tx.InsertPost(p)
		post = p.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return post, nil
}

// UpdatePost applies patch to a post. Only the author or an admin can update it.
// A rejected update leaves the post unchanged.
func (s *BlogService) UpdatePost(ctx context.Context, id, actingUserID string, patch *PostPatch) (*memdb.Post, error) {
	if err := s.db.Wait(ctx, memdb.Full); err != nil {
		return nil, err
	}

	v := common.NewValidator()
	validateID(v, id, "id")
	validateID(v, actingUserID, "user_id")
	if patch.Title != nil {
		validateTitle(v, *patch.Title)
	}
	if patch.Content != nil {
		validateContent(v, *patch.Content)
	}
	if patch.Status != nil {
		validateStatus(v, *patch.Status)
	}
	if patch.PostType != nil {
		validatePostType(v, *patch.PostType)
	}
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	var post *memdb.Post
	err := s.db.Update(func(tx *memdb.Tx) error {
		p := tx.Post(id)
		if p == nil {
			return ErrRecordNotFound
		}
		if !canModify(tx.User(actingUserID), p) {
			return ErrNotOwner
		}

		status := p.Status
		if patch.Status != nil {
			status = *patch.Status
		}
		scheduled := p.ScheduledPublishTime
		if patch.ScheduledPublishTime != nil {
			at := *patch.ScheduledPublishTime
			scheduled = &at
		}

		v := common.NewValidator()
		validateSchedule(v, status, scheduled)
		if !v.Valid() {
			return v.ValidationError()
		}

		if patch.Title != nil {
			p.Title = strings.TrimSpace(*patch.Title)
		}
		if patch.Tags != nil {
			p.Tags = cleanTags(patch.Tags)
		}
		if patch.PostType != nil {
			p.PostType = *patch.PostType
		}
		if patch.IsPremium != nil {
			p.IsPremium = *patch.IsPremium
		}
		if patch.FeaturedImage != nil {
			p.FeaturedImage = strings.TrimSpace(*patch.FeaturedImage)
			if p.FeaturedImage == "" {
				p.FeaturedImage = memdb.DefaultFeaturedImage
			}
		}

		excerpt, meta := p.Excerpt, p.MetaDescription
		if patch.Content != nil && *patch.Content != p.Content {
			p.Content = *patch.Content
			excerpt, meta = "", ""
		}
		if patch.Excerpt != nil {
			excerpt = *patch.Excerpt
		}
		if patch.MetaDescription != nil {
			meta = *patch.MetaDescription
		}
		deriveSummary(p, excerpt, meta)

		now := tx.Now()
		p.Status = status
		if status == memdb.StatusPublished && p.PublishedAt == nil {
			p.PublishedAt = &now
		}
		if status == memdb.StatusScheduled {
			p.ScheduledPublishTime = scheduled
		} else {
			p.ScheduledPublishTime = nil
		}
		p.UpdatedAt = now

		post = p.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return post, nil
}

// DeletePost deletes a post with its comments, reactions and bookmarks.
// Only the author or an admin can delete it.
func (s *BlogService) DeletePost(ctx context.Context, id, actingUserID string) error {
	if err := s.db.Wait(ctx, memdb.Full); err != nil {
		return err
	}

	v := common.NewValidator()
	validateID(v, id, "id")
	validateID(v, actingUserID, "user_id")
	if !v.Valid() {
		return v.ValidationError()
	}

	return s.db.Update(func(tx *memdb.Tx) error {
		p := tx.Post(id)
		if p == nil {
			return ErrRecordNotFound
		}
		if !canModify(tx.User(actingUserID), p) {
			return ErrNotOwner
		}

		tx.DeletePosts(func(p *memdb.Post) bool { return p.ID == id })
		tx.DeleteComments(func(c *memdb.Comment) bool { return c.BlogPostID == id })
		tx.DeleteBookmarks(func(b *memdb.Bookmark) bool { return b.BlogPostID == id })
		return nil
	})
}

// ListPosts returns every post in any status.
func (s *BlogService) ListPosts(ctx context.Context) ([]memdb.Post, error) {
	if err := s.db.Wait(ctx, memdb.Half); err != nil {
		return nil, err
	}

	var posts []memdb.Post
	err := s.db.View(func(tx *memdb.Tx) error {
		posts = clonePosts(tx.Posts(), nil)
		return nil
	})

	return posts, err
}

// GetPost returns a post by its ID.
func (s *BlogService) GetPost(ctx context.Context, id string) (*memdb.Post, error) {
	if err := s.db.Wait(ctx, memdb.Third); err != nil {
		return nil, err
	}

	var post *memdb.Post
	err := s.db.View(func(tx *memdb.Tx) error {
		p := tx.Post(id)
		if p == nil {
			return ErrRecordNotFound
		}
		post = p.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return post, nil
}

// ListPostsByAuthor returns every post written by authorID.
func (s *BlogService) ListPostsByAuthor(ctx context.Context, authorID string) ([]memdb.Post, error) {
	if err := s.db.Wait(ctx, memdb.Half); err != nil {
		return nil, err
	}

	var posts []memdb.Post
	err := s.db.View(func(tx *memdb.Tx) error {
		posts = clonePosts(tx.Posts(), func(p *memdb.Post) bool { return p.AuthorID == authorID })
		return nil
	})

	return posts, err
}
