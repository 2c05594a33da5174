package blogservice

import (
	"context"
	"slices"

	"github.com/sushihentaime/inkpost/internal/common"
	"github.com/sushihentaime/inkpost/internal/memdb"
)

// AddBookmark bookmarks a post for a user. An existing bookmark is returned unchanged.
func (s *BlogService) AddBookmark(ctx context.Context, userID, postID string) (*memdb.Bookmark, error) {
	if err := s.db.Wait(ctx, memdb.Quarter); err != nil {
		return nil, err
	}

	v := common.NewValidator()
	validateID(v, userID, "user_id")
	validateID(v, postID, "post_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	var bookmark *memdb.Bookmark
	err := s.db.Update(func(tx *memdb.Tx) error {
		if tx.User(userID) == nil {
			return ErrUserNotFound
		}
		if tx.Post(postID) == nil {
			return ErrRecordNotFound
		}

		b := tx.Bookmark(userID, postID)
		if b == nil {
			b = &memdb.Bookmark{UserID: userID, BlogPostID: postID, AddedAt: tx.Now()}
			tx.InsertBookmark(b)
		}

		bookmark = b.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return bookmark, nil
}

// RemoveBookmark removes a bookmark. Removing a missing bookmark is not an error.
func (s *BlogService) RemoveBookmark(ctx context.Context, userID, postID string) error {
	if err := s.db.Wait(ctx, memdb.Quarter); err != nil {
		return err
	}

	return s.db.Update(func(tx *memdb.Tx) error {
		tx.DeleteBookmarks(func(b *memdb.Bookmark) bool { return b.UserID == userID && b.BlogPostID == postID })
		return nil
	})
}

func (s *BlogService) IsBookmarked(ctx context.Context, userID, postID string) (bool, error) {
	if err := s.db.Wait(ctx, memdb.Quarter); err != nil {
		return false, err
	}

	var ok bool
	err := s.db.View(func(tx *memdb.Tx) error {
		ok = tx.Bookmark(userID, postID) != nil
		return nil
	})

	return ok, err
}

// ListBookmarks returns the user's bookmarks in the order they were added.
func (s *BlogService) ListBookmarks(ctx context.Context, userID string) ([]memdb.Bookmark, error) {
	if err := s.db.Wait(ctx, memdb.Half); err != nil {
		return nil, err
	}

	bookmarks := make([]memdb.Bookmark, 0)
	err := s.db.View(func(tx *memdb.Tx) error {
		for _, b := range tx.Bookmarks() {
			if b.UserID == userID {
				bookmarks = append(bookmarks, *b.Clone())
			}
		}
		return nil
	})

	return bookmarks, err
}

// Feed returns the published posts of everyone the user follows, newest first.
// An unknown user has an empty feed.
func (s *BlogService) Feed(ctx context.Context, userID string) ([]memdb.Post, error) {
	if err := s.db.Wait(ctx, memdb.Half); err != nil {
		return nil, err
	}

	var posts []memdb.Post
	err := s.db.View(func(tx *memdb.Tx) error {
		u := tx.User(userID)
		if u == nil {
			posts = []memdb.Post{}
			return nil
		}

		posts = clonePosts(tx.Posts(), func(p *memdb.Post) bool {
			return p.IsPublished() && u.Follows(p.AuthorID)
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(posts, func(a, b memdb.Post) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return posts, nil
}
