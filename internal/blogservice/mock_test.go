package blogservice

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

func setupTestEnvironment(t *testing.T) (*BlogService, *memdb.DB, *MockNotifier) {
	t.Helper()

	db := memdb.New()
	n := new(MockNotifier)

	t.Cleanup(db.Reset)

	return NewBlogService(db, n), db, n
}

func strptr(s string) *string {
	return &s
}

func statusptr(s memdb.PostStatus) *memdb.PostStatus {
	return &s
}
