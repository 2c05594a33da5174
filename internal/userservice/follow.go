package userservice

import (
	"context"

	"github.com/sushihentaime/inkpost/internal/common"
	"github.com/sushihentaime/inkpost/internal/memdb"
)

// Follow adds targetID to the follower's following set and notifies the target.
// Following someone already followed leaves the set unchanged but still notifies.
func (s *UserService) Follow(ctx context.Context, followerID, targetID string) (*memdb.User, error) {
	if err := s.db.Wait(ctx, memdb.Quarter); err != nil {
		return nil, err
	}

	v := common.NewValidator()
	validateID(v, followerID, "follower_id")
	validateID(v, targetID, "target_id")
	if v.Valid() {
		v.Check(followerID != targetID, "target_id", "cannot follow yourself")
	}
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	var (
		user  *memdb.User
		notif []memdb.Notification
	)
	err := s.db.Update(func(tx *memdb.Tx) error {
		follower := tx.User(followerID)
		if follower == nil {
			return ErrNotFound
		}
		if tx.User(targetID) == nil {
			return ErrNotFound
		}

		if !follower.Follows(targetID) {
			follower.Following = append(follower.Following, targetID)
		}

		n := memdb.FollowNotification(follower, targetID, tx.Now())
		tx.InsertNotification(n)
		notif = append(notif, *n.Clone())

		user = follower.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.n != nil {
		s.n.Dispatch(ctx, notif...)
	}

	return user, nil
}

// Unfollow removes targetID from the follower's following set, if present.
func (s *UserService) Unfollow(ctx context.Context, followerID, targetID string) (*memdb.User, error) {
	if err := s.db.Wait(ctx, memdb.Quarter); err != nil {
		return nil, err
	}

	var user *memdb.User
	err := s.db.Update(func(tx *memdb.Tx) error {
		follower := tx.User(followerID)
		if follower == nil {
			return ErrNotFound
		}

		follower.Following = deleteID(follower.Following, targetID)
		user = follower.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}
