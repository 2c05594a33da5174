package userservice

import (
	"fmt"

	"github.com/sushihentaime/inkpost/internal/common"
	"github.com/sushihentaime/inkpost/internal/memdb"
)

var (
	ErrNotFound       = fmt.Errorf("user %w", common.ErrRecordNotFound)
	ErrDuplicateEmail = fmt.Errorf("%w: duplicate email", common.ErrConflict)
	ErrLastAdmin      = fmt.Errorf("%w: cannot remove the last admin", common.ErrConflict)
	ErrNotAdmin       = fmt.Errorf("%w: admin role required", common.ErrUnauthorized)
)

// removeUser deletes a user together with their posts, comments, bookmarks,
// follows and reactions. Comments and bookmarks on the removed posts go too,
// as do replies to removed comments.
func removeUser(tx *memdb.Tx, userID string) {
	posts := make(map[string]bool)
	for _, id := range tx.DeletePosts(func(p *memdb.Post) bool { return p.AuthorID == userID }) {
		posts[id] = true
	}

	comments := make(map[string]bool)
	for _, c := range tx.Comments() {
		if c.UserID == userID || posts[c.BlogPostID] {
			comments[c.ID] = true
		}
	}
	tx.DeleteComments(func(c *memdb.Comment) bool { return comments[c.ID] || comments[c.ParentID] })

	tx.DeleteBookmarks(func(b *memdb.Bookmark) bool { return b.UserID == userID || posts[b.BlogPostID] })

	for _, u := range tx.Users() {
		u.Following = deleteID(u.Following, userID)
	}
	for _, p := range tx.Posts() {
		p.Reactions.Strip(userID)
	}

	tx.DeleteUser(userID)
}

func deleteID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
