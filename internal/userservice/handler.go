package userservice

import (
	"context"
	"strings"

	"github.com/sushihentaime/inkpost/internal/common"
	"github.com/sushihentaime/inkpost/internal/memdb"
)

// NewUserService returns a service over db. The session is kept in c and
// follow notifications are handed to n, which may be nil.
func NewUserService(db *memdb.DB, c *common.Cache, n notifier) *UserService {
	return &UserService{db: db, c: c, n: n}
}

// GetUser returns a user by ID.
func (s *UserService) GetUser(ctx context.Context, id string) (*memdb.User, error) {
	if err := s.db.Wait(ctx, memdb.Quarter); err != nil {
		return nil, err
	}

	var user *memdb.User
	err := s.db.View(func(tx *memdb.Tx) error {
		u := tx.User(id)
		if u == nil {
			return ErrNotFound
		}
		user = u.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]memdb.User, error) {
	if err := s.db.Wait(ctx, memdb.Half); err != nil {
		return nil, err
	}

	users := make([]memdb.User, 0)
	err := s.db.View(func(tx *memdb.Tx) error {
		for _, u := range tx.Users() {
			users = append(users, *u.Clone())
		}
		return nil
	})

	return users, err
}

// UpdateProfile changes a user's username, bio or avatar. Role, subscription and follows
// are never touched here.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, patch *ProfilePatch) (*memdb.User, error) {
	if err := s.db.Wait(ctx, memdb.Half); err != nil {
		return nil, err
	}

	v := common.NewValidator()
	validateID(v, userID, "id")
	if patch.Username != nil {
		validateUsername(v, strings.TrimSpace(*patch.Username))
	}
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	var user *memdb.User
	err := s.db.Update(func(tx *memdb.Tx) error {
		u := tx.User(userID)
		if u == nil {
			return ErrNotFound
		}

		if patch.Username != nil {
			u.Username = strings.TrimSpace(*patch.Username)
		}
		if patch.Bio != nil {
			u.Bio = *patch.Bio
		}
		if patch.ProfilePictureURL != nil {
			u.ProfilePictureURL = strings.TrimSpace(*patch.ProfilePictureURL)
			if u.ProfilePictureURL == "" {
				u.ProfilePictureURL = memdb.DefaultProfilePicture
			}
		}

		user = u.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateRole changes a user's role. The last admin cannot be demoted.
func (s *UserService) UpdateRole(ctx context.Context, userID string, role memdb.Role) (*memdb.User, error) {
	if err := s.db.Wait(ctx, memdb.Half); err != nil {
		return nil, err
	}

	v := common.NewValidator()
	validateID(v, userID, "id")
	validateRole(v, role)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	var user *memdb.User
	err := s.db.Update(func(tx *memdb.Tx) error {
		u := tx.User(userID)
		if u == nil {
			return ErrNotFound
		}
		if u.IsAdmin() && role != memdb.RoleAdmin && tx.CountAdmins() <= 1 {
			return ErrLastAdmin
		}

		u.Role = role
		user = u.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Subscribe marks the user as a paying subscriber.
func (s *UserService) Subscribe(ctx context.Context, userID string) (*memdb.User, error) {
	if err := s.db.Wait(ctx, memdb.Full); err != nil {
		return nil, err
	}

	var user *memdb.User
	err := s.db.Update(func(tx *memdb.Tx) error {
		u := tx.User(userID)
		if u == nil {
			return ErrNotFound
		}

		u.IsSubscribed = true
		user = u.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser deletes a user and everything they own. Only an admin may do it,
// and the last admin cannot be deleted.
func (s *UserService) DeleteUser(ctx context.Context, actingAdminID, userID string) error {
	if err := s.db.Wait(ctx, memdb.Half); err != nil {
		return err
	}

	v := common.NewValidator()
	validateID(v, actingAdminID, "acting_user_id")
	validateID(v, userID, "id")
	if !v.Valid() {
		return v.ValidationError()
	}

	err := s.db.Update(func(tx *memdb.Tx) error {
		actor := tx.User(actingAdminID)
		if actor == nil || !actor.IsAdmin() {
			return ErrNotAdmin
		}

		u := tx.User(userID)
		if u == nil {
			return ErrNotFound
		}
		if u.IsAdmin() && tx.CountAdmins() <= 1 {
			return ErrLastAdmin
		}

		removeUser(tx, userID)
		return nil
	})
	if err != nil {
		return err
	}

	if id, ok := s.c.GetString(common.CacheKeySession); ok && id == userID {
		return s.clearSession()
	}

	return nil
}
