package notificationservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/sushihentaime/inkpost/internal/common"
	"github.com/sushihentaime/inkpost/internal/memdb"
)

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, msg []byte, key common.BindingKey, exchange common.Exchange) error {
	args := m.Called(ctx, msg, key, exchange)
	return args.Error(0)
}

type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Error(msg string, args ...any) {
	m.Called(msg, args)
}

func (m *MockLogger) Info(msg string, args ...any) {
	m.Called(msg, args)
}

func setupTestEnvironment(t *testing.T) (*NotificationService, *memdb.DB, *MockProducer, *MockLogger) {
	t.Helper()

	db := memdb.New()
	mb := new(MockProducer)
	logger := new(MockLogger)

	return NewNotificationService(db, mb, logger), db, mb, logger
}
