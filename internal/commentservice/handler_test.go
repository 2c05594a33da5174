package commentservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/sushihentaime/inkpost/internal/common"
	"github.com/sushihentaime/inkpost/internal/memdb"
)

func TestCommentModerationScenario(t *testing.T) {
	s, _, n := setupTestEnvironment(t)
	n.On("Dispatch", mock.Anything, mock.Anything).Return()

	ctx := context.Background()

	comments, err := s.ListComments(ctx, "post1")
	require.NoError(t, err)
	assert.Empty(t, comments)

	created, err := s.AddComment(ctx, &CreateCommentRequest{PostID: "post1", UserID: "user3", Content: "nice"})
	require.NoError(t, err)

	comments, err = s.ListComments(ctx, "post1")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "user3", comments[0].UserID)
	assert.False(t, comments[0].Reported)

	_, err = s.ReportComment(ctx, created.ID)
	require.NoError(t, err)

	comments, err = s.ListComments(ctx, "post1")
	require.NoError(t, err)
	assert.Empty(t, comments)

	reported, err := s.ListReportedComments(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(reported))
	for _, c := range reported {
		ids = append(ids, c.ID)
	}
	assert.Contains(t, ids, created.ID)

	_, err = s.ApproveComment(ctx, created.ID)
	require.NoError(t, err)

	comments, err = s.ListComments(ctx, "post1")
	require.NoError(t, err)
	assert.Len(t, comments, 1)
}

func TestAddComment(t *testing.T) {
	testCases := []struct {
		name        string
		req         *CreateCommentRequest
		expectedErr error
		wantParent  string
		wantNotify  []memdb.NotificationType
		recipients  []string
	}{
		{
			name:       "comment on another user's post",
			req:        &CreateCommentRequest{PostID: "post1", UserID: "user3", Content: "nice"},
			wantNotify: []memdb.NotificationType{memdb.NotificationComment},
			recipients: []string{"user1"},
		},
		{
			name: "comment on own post",
			req:  &CreateCommentRequest{PostID: "post1", UserID: "user1", Content: "thanks all"},
		},
		{
			name:       "reply notifies post author and parent author",
			req:        &CreateCommentRequest{PostID: "post2", UserID: "user4", Content: "agreed", ParentID: "comment2"},
			wantParent: "comment1",
			wantNotify: []memdb.NotificationType{memdb.NotificationComment, memdb.NotificationReply},
			recipients: []string{"user2", "user3"},
		},
		{
			name:       "post author replying to a reader",
			req:        &CreateCommentRequest{PostID: "post2", UserID: "user2", Content: "glad it helped", ParentID: "comment2"},
			wantParent: "comment1",
			wantNotify: []memdb.NotificationType{memdb.NotificationReply},
			recipients: []string{"user3"},
		},
		{
			name:       "replying to yourself on your own post",
			req:        &CreateCommentRequest{PostID: "post2", UserID: "user2", Content: "edit: typo", ParentID: "comment1"},
			wantParent: "comment1",
		},
		{
			name:        "empty content",
			req:         &CreateCommentRequest{PostID: "post1", UserID: "user3", Content: "  "},
			expectedErr: common.ValidationError{Errors: map[string]string{"content": "must be provided"}},
		},
		{
			name:        "unknown post",
			req:         &CreateCommentRequest{PostID: "missing", UserID: "user3", Content: "hi"},
			expectedErr: ErrPostNotFound,
		},
		{
			name:        "unknown user",
			req:         &CreateCommentRequest{PostID: "post1", UserID: "ghost", Content: "hi"},
			expectedErr: ErrUserNotFound,
		},
		{
			name:        "unknown parent",
			req:         &CreateCommentRequest{PostID: "post2", UserID: "user3", Content: "hi", ParentID: "missing"},
			expectedErr: ErrRecordNotFound,
		},
		{
			name:        "parent on another post",
			req:         &CreateCommentRequest{PostID: "post1", UserID: "user3", Content: "hi", ParentID: "comment1"},
			expectedErr: common.ValidationError{Errors: map[string]string{"parent_id": "must belong to the same post"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, _, n := setupTestEnvironment(t)

			if len(tc.wantNotify) > 0 {
				n.On("Dispatch", mock.Anything, mock.MatchedBy(func(ns []memdb.Notification) bool {
					if len(ns) != len(tc.wantNotify) {
						return false
					}
					for i := range ns {
						if ns[i].Type != tc.wantNotify[i] || ns[i].RecipientID != tc.recipients[i] || ns[i].Actor.ID != tc.req.UserID {
							return false
						}
					}
					return true
				})).Return().Once()
			}

			c, err := s.AddComment(context.Background(), tc.req)
			assert.Equal(t, tc.expectedErr, err)

			if len(tc.wantNotify) > 0 {
				n.AssertExpectations(t)
			} else {
				n.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
			}

			if tc.expectedErr != nil {
				assert.Nil(t, c)
				return
			}

			require.NotNil(t, c)
			assert.Equal(t, tc.wantParent, c.ParentID)
			assert.Equal(t, tc.req.Content, c.Content)
			assert.False(t, c.Reported)
		})
	}
}

func TestDeleteComment(t *testing.T) {
	s, db, _ := setupTestEnvironment(t)
	ctx := context.Background()

	require.NoError(t, s.DeleteComment(ctx, "comment1"))

	err := db.View(func(tx *memdb.Tx) error {
		assert.Nil(t, tx.Comment("comment1"))
		assert.Nil(t, tx.Comment("comment2"))
		assert.NotNil(t, tx.Comment("comment3"))
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, ErrRecordNotFound, s.DeleteComment(ctx, "comment1"))
}

func TestReportUnknownComment(t *testing.T) {
	s, _, _ := setupTestEnvironment(t)

	_, err := s.ReportComment(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrRecordNotFound)

	_, err = s.ApproveComment(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrRecordNotFound)
}

func TestListReportedComments(t *testing.T) {
	s, _, _ := setupTestEnvironment(t)
	ctx := context.Background()

	reported, err := s.ListReportedComments(ctx)
	require.NoError(t, err)
	require.Len(t, reported, 1)
	assert.Equal(t, "comment3", reported[0].ID)

	visible, err := s.ListComments(ctx, "post2")
	require.NoError(t, err)
	assert.Len(t, visible, 2)
}
