package commentservice

import (
	"context"
	"fmt"

	"github.com/sushihentaime/inkpost/internal/common"
	"github.com/sushihentaime/inkpost/internal/memdb"
)

var (
	ErrRecordNotFound = fmt.Errorf("comment %w", common.ErrRecordNotFound)
	ErrPostNotFound   = fmt.Errorf("post %w", common.ErrRecordNotFound)
	ErrUserNotFound   = fmt.Errorf("user %w", common.ErrRecordNotFound)
)

type notifier interface {
	Dispatch(ctx context.Context, notifications ...memdb.Notification)
}

type CommentService struct {
	db *memdb.DB
	n  notifier
}

type CreateCommentRequest struct {
	PostID   string `json:"post_id"`
	UserID   string `json:"user_id"`
	Content  string `json:"content"`
	ParentID string `json:"parent_id"`
}
