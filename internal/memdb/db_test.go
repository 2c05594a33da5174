package memdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoadsSeed(t *testing.T) {
	db := New()

	err := db.View(func(tx *Tx) error {
		assert.Len(t, tx.Users(), 4)
		assert.Len(t, tx.Posts(), 4)
		assert.Len(t, tx.Comments(), 3)
		assert.Len(t, tx.Bookmarks(), 1)
		assert.Len(t, tx.Notifications(), 2)
		assert.Equal(t, []string{"AI", "Technology", "Blogging", "Writing"}, tx.Categories())
		assert.Equal(t, 1, tx.CountAdmins())

		post1 := tx.Post("post1")
		require.NotNil(t, post1)
		assert.Equal(t, "user1", post1.AuthorID)
		assert.Equal(t, 3, post1.Reactions.Count())
		assert.Len(t, post1.Reactions, 2)

		for _, c := range tx.Comments() {
			assert.NotEqual(t, "post1", c.BlogPostID)
		}
		return nil
	})
	require.NoError(t, err)
}

func TestWithoutSeed(t *testing.T) {
	db := New(WithoutSeed())

	err := db.View(func(tx *Tx) error {
		assert.Empty(t, tx.Users())
		assert.Empty(t, tx.Posts())
		assert.Empty(t, tx.Categories())
		return nil
	})
	require.NoError(t, err)
}

func TestReset(t *testing.T) {
	db := New()

	err := db.Update(func(tx *Tx) error {
		tx.DeleteUser("user4")
		tx.DeletePosts(func(p *Post) bool { return true })
		return nil
	})
	require.NoError(t, err)

	db.Reset()

	err = db.View(func(tx *Tx) error {
		assert.NotNil(t, tx.User("user4"))
		assert.Len(t, tx.Posts(), 4)
		return nil
	})
	require.NoError(t, err)
}

func TestTxLookups(t *testing.T) {
	db := New()

	err := db.View(func(tx *Tx) error {
		assert.Equal(t, "user2", tx.UserByEmail("EDITOR@example.com").ID)
		assert.Nil(t, tx.UserByEmail("nobody@example.com"))
		assert.Nil(t, tx.User("missing"))
		assert.NotNil(t, tx.Bookmark("user3", "post1"))
		assert.Nil(t, tx.Bookmark("user1", "post1"))
		assert.True(t, tx.HasCategory("technology"))
		assert.False(t, tx.HasCategory("Travel"))
		return nil
	})
	require.NoError(t, err)
}

func TestInsertOrdering(t *testing.T) {
	db := New()

	err := db.Update(func(tx *Tx) error {
		tx.InsertPost(&Post{ID: "newest"})
		tx.InsertNotification(&Notification{ID: "latest"})
		tx.InsertComment(&Comment{ID: "last"})

		assert.Equal(t, "newest", tx.Posts()[0].ID)
		assert.Equal(t, "latest", tx.Notifications()[0].ID)
		assert.Equal(t, "last", tx.Comments()[len(tx.Comments())-1].ID)
		return nil
	})
	require.NoError(t, err)
}

func TestDeleteHelpers(t *testing.T) {
	db := New()

	err := db.Update(func(tx *Tx) error {
		ids := tx.DeletePosts(func(p *Post) bool { return p.AuthorID == "user2" })
		assert.ElementsMatch(t, []string{"post2", "post4"}, ids)
		assert.Len(t, tx.Posts(), 2)

		assert.Equal(t, 3, tx.DeleteComments(func(c *Comment) bool { return c.BlogPostID == "post2" }))
		assert.Equal(t, 0, tx.DeleteBookmarks(func(b *Bookmark) bool { return b.UserID == "user1" }))

		assert.True(t, tx.DeleteCategory("ai"))
		assert.False(t, tx.DeleteCategory("ai"))
		return nil
	})
	require.NoError(t, err)
}

func TestReactions(t *testing.T) {
	testCases := []struct {
		name     string
		initial  Reactions
		apply    func(r Reactions)
		expected Reactions
	}{
		{
			name:     "set on empty",
			initial:  Reactions{},
			apply:    func(r Reactions) { r.Set(ReactionLike, "u1") },
			expected: Reactions{ReactionLike: {"u1"}},
		},
		{
			name:     "set replaces previous kind",
			initial:  Reactions{ReactionLike: {"u1", "u2"}},
			apply:    func(r Reactions) { r.Set(ReactionLove, "u1") },
			expected: Reactions{ReactionLike: {"u2"}, ReactionLove: {"u1"}},
		},
		{
			name:     "set same kind twice",
			initial:  Reactions{ReactionLike: {"u1"}},
			apply:    func(r Reactions) { r.Set(ReactionLike, "u1") },
			expected: Reactions{ReactionLike: {"u1"}},
		},
		{
			name:     "strip drops empty kinds",
			initial:  Reactions{ReactionLike: {"u1"}, ReactionFunny: {"u2"}},
			apply:    func(r Reactions) { r.Strip("u1") },
			expected: Reactions{ReactionFunny: {"u2"}},
		},
		{
			name:     "strip absent user",
			initial:  Reactions{ReactionLike: {"u1"}},
			apply:    func(r Reactions) { r.Strip("u9") },
			expected: Reactions{ReactionLike: {"u1"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.apply(tc.initial)
			assert.Equal(t, tc.expected, tc.initial)
		})
	}
}

func TestReactionsOf(t *testing.T) {
	r := Reactions{ReactionLove: {"u1"}, ReactionLike: {"u2"}}

	got, ok := r.Of("u1")
	assert.True(t, ok)
	assert.Equal(t, ReactionLove, got)

	_, ok = r.Of("u3")
	assert.False(t, ok)
}

func TestPostClone(t *testing.T) {
	db := New()

	var clone *Post
	err := db.View(func(tx *Tx) error {
		clone = tx.Post("post1").Clone()
		return nil
	})
	require.NoError(t, err)

	clone.Tags[0] = "changed"
	clone.Reactions.Set(ReactionFunny, "user2")
	*clone.PublishedAt = time.Time{}

	err = db.View(func(tx *Tx) error {
		p := tx.Post("post1")
		assert.Equal(t, "AI", p.Tags[0])
		assert.Equal(t, []string{"user2", "user3"}, p.Reactions[ReactionLike])
		assert.False(t, p.PublishedAt.IsZero())
		return nil
	})
	require.NoError(t, err)
}

func TestWait(t *testing.T) {
	testCases := []struct {
		name        string
		delay       time.Duration
		cancel      bool
		expectedErr error
	}{
		{name: "no delay", delay: 0},
		{name: "short delay", delay: 5 * time.Millisecond},
		{name: "cancelled before delay", delay: time.Minute, cancel: true, expectedErr: context.Canceled},
		{name: "cancelled without delay", delay: 0, cancel: true, expectedErr: context.Canceled},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := New(WithLatency(tc.delay))

			ctx, cancel := context.WithCancel(context.Background())
			if tc.cancel {
				cancel()
			} else {
				defer cancel()
			}

			err := db.Wait(ctx, Half)
			assert.Equal(t, tc.expectedErr, err)
		})
	}
}

func TestNotificationBuilders(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	actor := &User{ID: "a", Username: "Ann", ProfilePictureURL: "pic"}
	post := &Post{ID: "p", Title: "Hello", AuthorID: "b"}
	parent := &Comment{ID: "c", UserID: "d"}

	testCases := []struct {
		name      string
		n         *Notification
		recipient string
		typ       NotificationType
		message   string
		link      string
	}{
		{"reaction", ReactionNotification(actor, post, now), "b", NotificationReaction, `Ann reacted to your post "Hello"`, "#/blog/p"},
		{"comment", CommentNotification(actor, post, now), "b", NotificationComment, `Ann commented on your post "Hello"`, "#/blog/p"},
		{"reply", ReplyNotification(actor, parent, post, now), "d", NotificationReply, `Ann replied to your comment on "Hello"`, "#/blog/p"},
		{"follow", FollowNotification(actor, "e", now), "e", NotificationFollow, "Ann started following you.", "#/author/a"},
		{"quoted title", CommentNotification(actor, &Post{ID: "q", Title: "Say \"hi\"\tnow", AuthorID: "b"}, now), "b", NotificationComment, "Ann commented on your post \"Say \"hi\"\tnow\"", "#/blog/q"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotEmpty(t, tc.n.ID)
			assert.Equal(t, tc.recipient, tc.n.RecipientID)
			assert.Equal(t, tc.typ, tc.n.Type)
			assert.Equal(t, tc.message, tc.n.Message)
			assert.Equal(t, tc.link, tc.n.Link)
			assert.Equal(t, Actor{ID: "a", Username: "Ann", ProfilePictureURL: "pic"}, tc.n.Actor)
			assert.False(t, tc.n.Read)
			assert.Equal(t, now, tc.n.CreatedAt)
		})
	}
}
