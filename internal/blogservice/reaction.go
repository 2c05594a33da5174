package blogservice

import (
	"context"

	"github.com/sushihentaime/inkpost/internal/common"
	"github.com/sushihentaime/inkpost/internal/memdb"
)

// AddReaction sets the user's reaction on a post, replacing any earlier one.
// The post author is notified unless they reacted themselves.
func (s *BlogService) AddReaction(ctx context.Context, postID, userID string, reaction memdb.ReactionType) (*memdb.Post, error) {
	if err := s.db.Wait(ctx, memdb.Quarter); err != nil {
		return nil, err
	}

	v := common.NewValidator()
	validateID(v, postID, "post_id")
	validateID(v, userID, "user_id")
	validateReaction(v, reaction)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	var (
		post  *memdb.Post
		notif []memdb.Notification
	)
	err := s.db.Update(func(tx *memdb.Tx) error {
		p := tx.Post(postID)
		if p == nil {
			return ErrRecordNotFound
		}
		actor := tx.User(userID)
		if actor == nil {
			return ErrUserNotFound
		}

		if p.Reactions == nil {
			p.Reactions = memdb.Reactions{}
		}
		p.Reactions.Set(reaction, userID)

		if p.AuthorID != userID {
			n := memdb.ReactionNotification(actor, p, tx.Now())
			tx.InsertNotification(n)
			notif = append(notif, *n.Clone())
		}

		post = p.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, notif...)
	return post, nil
}

// RemoveReaction removes the user's reaction from a post, if any.
func (s *BlogService) RemoveReaction(ctx context.Context, postID, userID string) (*memdb.Post, error) {
	if err := s.db.Wait(ctx, memdb.Quarter); err != nil {
		return nil, err
	}

	v := common.NewValidator()
	validateID(v, postID, "post_id")
	validateID(v, userID, "user_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	var post *memdb.Post
	err := s.db.Update(func(tx *memdb.Tx) error {
		p := tx.Post(postID)
		if p == nil {
			return ErrRecordNotFound
		}

		p.Reactions.Strip(userID)
		post = p.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return post, nil
}
