package commentservice

import (
	"context"

	"github.com/sushihentaime/inkpost/internal/common"
	"github.com/sushihentaime/inkpost/internal/memdb"
)

func NewCommentService(db *memdb.DB, n notifier) *CommentService {
	return &CommentService{db: db, n: n}
}

// AddComment adds a visible comment to a post. Replies are stored one level deep:
// a reply to a reply is attached to the top-level comment of that thread.
// The post author and, for replies, the author of the comment replied to are notified.
func (s *CommentService) AddComment(ctx context.Context, req *CreateCommentRequest) (*memdb.Comment, error) {
	if err := s.db.Wait(ctx, memdb.Half); err != nil {
		return nil, err
	}

	v := common.NewValidator()
	v.Check(common.NotBlank(req.PostID), "post_id", "must be provided")
	v.Check(common.NotBlank(req.UserID), "user_id", "must be provided")
	v.Check(common.NotBlank(req.Content), "content", "must be provided")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	var (
		comment *memdb.Comment
		notifs  []memdb.Notification
	)
	err := s.db.Update(func(tx *memdb.Tx) error {
		post := tx.Post(req.PostID)
		if post == nil {
			return ErrPostNotFound
		}
		author := tx.User(req.UserID)
		if author == nil {
			return ErrUserNotFound
		}

		var parent *memdb.Comment
		parentID := ""
		if req.ParentID != "" {
			parent = tx.Comment(req.ParentID)
			if parent == nil {
				return ErrRecordNotFound
			}
			if parent.BlogPostID != post.ID {
				v := common.NewValidator()
				v.AddError("parent_id", "must belong to the same post")
				return v.ValidationError()
			}
			parentID = parent.ID
			if parent.ParentID != "" {
				parentID = parent.ParentID
			}
		}

		now := tx.Now()
		c := &memdb.Comment{
			ID:                    memdb.NewID(),
			BlogPostID:            post.ID,
			UserID:                author.ID,
			UserName:              author.Username,
			UserProfilePictureURL: author.ProfilePictureURL,
			Content:               req.Content,
			CreatedAt:             now,
			ParentID:              parentID,
		}
		tx.InsertComment(c)

		var created []*memdb.Notification
		if post.AuthorID != author.ID {
			created = append(created, memdb.CommentNotification(author, post, now))
		}
		if parent != nil && parent.UserID != author.ID {
			created = append(created, memdb.ReplyNotification(author, parent, post, now))
		}
		for _, n := range created {
			tx.InsertNotification(n)
			notifs = append(notifs, *n.Clone())
		}

		comment = c.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.n != nil && len(notifs) > 0 {
		s.n.Dispatch(ctx, notifs...)
	}

	return comment, nil
}

// ReportComment flags a comment for moderation, hiding it from ListComments.
func (s *CommentService) ReportComment(ctx context.Context, id string) (*memdb.Comment, error) {
	return s.setReported(ctx, id, true)
}

// ApproveComment clears the reported flag.
func (s *CommentService) ApproveComment(ctx context.Context, id string) (*memdb.Comment, error) {
	return s.setReported(ctx, id, false)
}

func (s *CommentService) setReported(ctx context.Context, id string, reported bool) (*memdb.Comment, error) {
	if err := s.db.Wait(ctx, memdb.Quarter); err != nil {
		return nil, err
	}

	var comment *memdb.Comment
	err := s.db.Update(func(tx *memdb.Tx) error {
		c := tx.Comment(id)
		if c == nil {
			return ErrRecordNotFound
		}
		c.Reported = reported
		comment = c.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return comment, nil
}

// DeleteComment removes a comment and its replies.
func (s *CommentService) DeleteComment(ctx context.Context, id string) error {
	if err := s.db.Wait(ctx, memdb.Quarter); err != nil {
		return err
	}

	return s.db.Update(func(tx *memdb.Tx) error {
		if tx.Comment(id) == nil {
			return ErrRecordNotFound
		}
		tx.DeleteComments(func(c *memdb.Comment) bool { return c.ID == id || c.ParentID == id })
		return nil
	})
}

// ListComments returns the visible comments of a post in the order they were written.
func (s *CommentService) ListComments(ctx context.Context, postID string) ([]memdb.Comment, error) {
	return s.list(ctx, func(c *memdb.Comment) bool { return c.BlogPostID == postID && !c.Reported })
}

// ListReportedComments returns every reported comment.
func (s *CommentService) ListReportedComments(ctx context.Context) ([]memdb.Comment, error) {
	return s.list(ctx, func(c *memdb.Comment) bool { return c.Reported })
}

func (s *CommentService) list(ctx context.Context, match func(c *memdb.Comment) bool) ([]memdb.Comment, error) {
	if err := s.db.Wait(ctx, memdb.Third); err != nil {
		return nil, err
	}

	comments := make([]memdb.Comment, 0)
	err := s.db.View(func(tx *memdb.Tx) error {
		for _, c := range tx.Comments() {
			if match(c) {
				comments = append(comments, *c.Clone())
			}
		}
		return nil
	})

	return comments, err
}
