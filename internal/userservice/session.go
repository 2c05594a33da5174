package userservice

import (
	"context"
	"strings"

	"github.com/sushihentaime/inkpost/internal/common"
	"github.com/sushihentaime/inkpost/internal/memdb"
)

// Login looks the user up by email and remembers them as the session user.
// There is no password check.
func (s *UserService) Login(ctx context.Context, email string) (*memdb.User, error) {
	if err := s.db.Wait(ctx, memdb.Full); err != nil {
		return nil, err
	}

	email = strings.TrimSpace(email)

	v := common.NewValidator()
	v.Check(email != "", "email", "must be provided")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	var user *memdb.User
	err := s.db.View(func(tx *memdb.Tx) error {
		u := tx.UserByEmail(email)
		if u == nil {
			return ErrNotFound
		}
		user = u.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.setSession(user.ID); err != nil {
		return nil, err
	}
	return user, nil
}

// Signup creates a user and logs them in. The role defaults to user.
func (s *UserService) Signup(ctx context.Context, username, email string, role memdb.Role) (*memdb.User, error) {
	if err := s.db.Wait(ctx, memdb.Full); err != nil {
		return nil, err
	}

	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if role == "" {
		role = memdb.RoleUser
	}

	v := common.NewValidator()
	validateUsername(v, username)
	validateEmail(v, email)
	validateRole(v, role)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	var user *memdb.User
	err := s.db.Update(func(tx *memdb.Tx) error {
		if tx.UserByEmail(email) != nil {
			return ErrDuplicateEmail
		}

		u := &memdb.User{
			ID:                memdb.NewID(),
			Email:             email,
			Username:          username,
			Role:              role,
			ProfilePictureURL: memdb.DefaultProfilePicture,
			Following:         []string{},
		}
		tx.InsertUser(u)
		user = u.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.setSession(user.ID); err != nil {
		return nil, err
	}
	return user, nil
}

// Logout forgets the session user.
func (s *UserService) Logout(ctx context.Context) error {
	if err := s.db.Wait(ctx, memdb.Quarter); err != nil {
		return err
	}

	return s.clearSession()
}

// CheckSession returns the session user, or nil when nobody is logged in.
// A session pointing at a deleted user is cleared.
func (s *UserService) CheckSession(ctx context.Context) (*memdb.User, error) {
	if err := s.db.Wait(ctx, memdb.Quarter); err != nil {
		return nil, err
	}

	id, ok := s.c.GetString(common.CacheKeySession)
	if !ok {
		return nil, nil
	}

	var user *memdb.User
	err := s.db.View(func(tx *memdb.Tx) error {
		if u := tx.User(id); u != nil {
			user = u.Clone()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if user == nil {
		if err := s.clearSession(); err != nil {
			return nil, err
		}
	}

	return user, nil
}

// setSession remembers id as the session user and writes it through to the
// cache's backing file so it survives a restart.
func (s *UserService) setSession(id string) error {
	s.c.Set(common.CacheKeySession, id, common.NoExpiration)
	return s.c.Save()
}

func (s *UserService) clearSession() error {
	s.c.Delete(common.CacheKeySession)
	return s.c.Save()
}
