package commentservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/sushihentaime/inkpost/internal/memdb"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Dispatch(ctx context.Context, notifications ...memdb.Notification) {
	m.Called(ctx, notifications)
}

func setupTestEnvironment(t *testing.T) (*CommentService, *memdb.DB, *MockNotifier) {
	t.Helper()

	db := memdb.New()
	n := new(MockNotifier)

	return NewCommentService(db, n), db, n
}
