package notificationservice

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/sushihentaime/inkpost/internal/common"
	"github.com/sushihentaime/inkpost/internal/memdb"
)

func TestListNotifications(t *testing.T) {
	s, db, _, _ := setupTestEnvironment(t)
	ctx := context.Background()

	err := db.Update(func(tx *memdb.Tx) error {
		actor := tx.User("user4")
		tx.InsertNotification(memdb.FollowNotification(actor, "user1", tx.Now()))
		return nil
	})
	require.NoError(t, err)

	testCases := []struct {
		name    string
		userID  string
		wantLen int
	}{
		{name: "newest first", userID: "user1", wantLen: 2},
		{name: "single", userID: "user2", wantLen: 1},
		{name: "none", userID: "user3", wantLen: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ns, err := s.ListNotifications(ctx, tc.userID)
			require.NoError(t, err)
			require.NotNil(t, ns)
			assert.Len(t, ns, tc.wantLen)
			for _, n := range ns {
				assert.Equal(t, tc.userID, n.RecipientID)
			}
		})
	}

	ns, err := s.ListNotifications(ctx, "user1")
	require.NoError(t, err)
	assert.Equal(t, memdb.NotificationFollow, ns[0].Type)
	assert.Equal(t, "notif1", ns[1].ID)
}

func TestMarkAllRead(t *testing.T) {
	s, _, _, _ := setupTestEnvironment(t)
	ctx := context.Background()

	ns, err := s.MarkAllRead(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, ns, 1)
	assert.True(t, ns[0].Read)

	ns, err = s.ListNotifications(ctx, "user1")
	require.NoError(t, err)
	assert.True(t, ns[0].Read)

	ns, err = s.MarkAllRead(ctx, "user4")
	require.NoError(t, err)
	assert.Empty(t, ns)
}

func TestDispatch(t *testing.T) {
	s, _, mb, logger := setupTestEnvironment(t)
	ctx := context.Background()

	n := memdb.Notification{
		ID:          "n1",
		RecipientID: "user2",
		Actor:       memdb.Actor{ID: "user1", Username: "AdminUser"},
		Type:        memdb.NotificationFollow,
		Message:     "AdminUser started following you.",
		Link:        "#/author/user1",
		CreatedAt:   time.Now(),
	}

	mb.On("Publish", ctx, mock.MatchedBy(func(msg []byte) bool {
		var e common.NotificationEvent
		if err := json.Unmarshal(msg, &e); err != nil {
			return false
		}
		return e == common.NotificationEvent{
			NotificationID: "n1",
			Type:           "follow",
			RecipientID:    "user2",
			RecipientEmail: "editor@example.com",
			RecipientName:  "EditorAlice",
			ActorName:      "AdminUser",
			Message:        "AdminUser started following you.",
			Link:           "#/author/user1",
		}
	}), common.NotificationCreatedKey, common.NotificationExchange).Return(nil).Once()

	s.Dispatch(ctx, n)

	mb.AssertExpectations(t)
	logger.AssertNotCalled(t, "Error", mock.Anything, mock.Anything)
}

func TestDispatchFailures(t *testing.T) {
	s, _, mb, logger := setupTestEnvironment(t)
	ctx := context.Background()

	mb.On("Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("channel closed"))
	logger.On("Error", "could not publish notification", mock.Anything).Return().Once()
	logger.On("Info", "skipping notification without recipient", mock.Anything).Return().Once()

	s.Dispatch(ctx,
		memdb.Notification{ID: "n1", RecipientID: "user3"},
		memdb.Notification{ID: "n2", RecipientID: "ghost"},
	)

	mb.AssertNumberOfCalls(t, "Publish", 1)
	logger.AssertExpectations(t)
}

func TestDispatchWithoutBroker(t *testing.T) {
	s := NewNotificationService(memdb.New(), nil, nil)

	assert.NotPanics(t, func() {
		s.Dispatch(context.Background(), memdb.Notification{ID: "n1", RecipientID: "user1"})
	})
}
