package userservice

import (
	"context"

	"github.com/sushihentaime/inkpost/internal/common"
	"github.com/sushihentaime/inkpost/internal/memdb"
)

type notifier interface {
	Dispatch(ctx context.Context, notifications ...memdb.Notification)
}

type UserService struct {
	db *memdb.DB
	c  *common.Cache
	n  notifier
}

// ProfilePatch holds the profile fields a user may edit. Nil fields are left unchanged.
type ProfilePatch struct {
	Username          *string `json:"username"`
	Bio               *string `json:"bio"`
	ProfilePictureURL *string `json:"profile_picture_url"`
}
