package userservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/sushihentaime/inkpost/internal/common"
	"github.com/sushihentaime/inkpost/internal/memdb"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Dispatch(ctx context.Context, notifications ...memdb.Notification) {
	m.Called(ctx, notifications)
}

func setupTestEnvironment(t *testing.T) (*UserService, *memdb.DB, *common.Cache, *MockNotifier) {
	t.Helper()

	db := memdb.New()
	c := common.NewCache(common.NoExpiration, 0)
	n := new(MockNotifier)

	t.Cleanup(func() {
		db.Reset()
		c.Flush()
	})

	return NewUserService(db, c, n), db, c, n
}

func strptr(s string) *string {
	return &s
}
