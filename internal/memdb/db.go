package memdb

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Latency is the divisor applied to the configured delay for an operation.
type Latency int

const (
	Full    Latency = 1
	Half    Latency = 2
	Third   Latency = 3
	Quarter Latency = 4
)

// DB holds every table of the store. All access goes through View and Update.
type DB struct {
	mu sync.RWMutex

	users         []*User
	posts         []*Post
	comments      []*Comment
	bookmarks     []*Bookmark
	notifications []*Notification
	categories    []string

	delay time.Duration
	now   func() time.Time
	empty bool
}

type Option func(*DB)

// WithLatency sets the simulated latency of a full operation.
func WithLatency(d time.Duration) Option {
	return func(db *DB) {
		db.delay = d
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(db *DB) {
		db.now = now
	}
}

// WithoutSeed starts the store with empty tables.
func WithoutSeed() Option {
	return func(db *DB) {
		db.empty = true
	}
}

// New returns a store loaded with the seed data.
func New(opts ...Option) *DB {
	db := &DB{now: time.Now}
	for _, opt := range opts {
		opt(db)
	}

	db.Reset()
	return db
}

// Reset drops every table and reloads the seed.
func (db *DB) Reset() {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.users, db.posts, db.comments, db.bookmarks, db.notifications, db.categories = nil, nil, nil, nil, nil, nil
	if !db.empty {
		db.seed(db.now())
	}
}

func (db *DB) Now() time.Time {
	return db.now()
}

// Wait simulates network latency. It returns ctx.Err() if the context ends first.
func (db *DB) Wait(ctx context.Context, l Latency) error {
	d := db.delay / time.Duration(l)
	if d <= 0 {
		return ctx.Err()
	}

	d += time.Duration(rand.Int63n(int64(d)/10 + 1))

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// View runs fn with shared access to the tables. fn must not mutate rows.
func (db *DB) View(fn func(tx *Tx) error) error {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return fn(&Tx{db: db})
}

// Update runs fn with exclusive access to the tables.
func (db *DB) Update(fn func(tx *Tx) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	return fn(&Tx{db: db})
}

// NewID returns a fresh opaque row id.
func NewID() string {
	return uuid.NewString()
}

// Tx exposes the live rows of the store to a View or Update callback.
// Rows must be cloned before they leave the callback.
type Tx struct {
	db *DB
}

func (tx *Tx) Now() time.Time {
	return tx.db.now()
}

func (tx *Tx) Users() []*User {
	return tx.db.users
}

func (tx *Tx) User(id string) *User {
	return find(tx.db.users, func(u *User) bool { return u.ID == id })
}

func (tx *Tx) UserByEmail(email string) *User {
	return find(tx.db.users, func(u *User) bool { return equalFold(u.Email, email) })
}

func (tx *Tx) InsertUser(u *User) {
	tx.db.users = append(tx.db.users, u)
}

func (tx *Tx) DeleteUser(id string) bool {
	var n int
	tx.db.users, n = remove(tx.db.users, func(u *User) bool { return u.ID == id })
	return n > 0
}

func (tx *Tx) CountAdmins() int {
	n := 0
	for _, u := range tx.db.users {
		if u.IsAdmin() {
			n++
		}
	}
	return n
}

func (tx *Tx) Posts() []*Post {
	return tx.db.posts
}

func (tx *Tx) Post(id string) *Post {
	return find(tx.db.posts, func(p *Post) bool { return p.ID == id })
}

// InsertPost puts p at the front of the posts table.
func (tx *Tx) InsertPost(p *Post) {
	tx.db.posts = slices.Insert(tx.db.posts, 0, p)
}

// DeletePosts removes the matching posts and returns their ids.
func (tx *Tx) DeletePosts(match func(p *Post) bool) []string {
	var ids []string
	for _, p := range tx.db.posts {
		if match(p) {
			ids = append(ids, p.ID)
		}
	}
	tx.db.posts, _ = remove(tx.db.posts, match)
	return ids
}

func (tx *Tx) Comments() []*Comment {
	return tx.db.comments
}

func (tx *Tx) Comment(id string) *Comment {
	return find(tx.db.comments, func(c *Comment) bool { return c.ID == id })
}

func (tx *Tx) InsertComment(c *Comment) {
	tx.db.comments = append(tx.db.comments, c)
}

func (tx *Tx) DeleteComments(match func(c *Comment) bool) int {
	var n int
	tx.db.comments, n = remove(tx.db.comments, match)
	return n
}

func (tx *Tx) Bookmarks() []*Bookmark {
	return tx.db.bookmarks
}

func (tx *Tx) Bookmark(userID, postID string) *Bookmark {
	return find(tx.db.bookmarks, func(b *Bookmark) bool { return b.UserID == userID && b.BlogPostID == postID })
}

func (tx *Tx) InsertBookmark(b *Bookmark) {
	tx.db.bookmarks = append(tx.db.bookmarks, b)
}

func (tx *Tx) DeleteBookmarks(match func(b *Bookmark) bool) int {
	var n int
	tx.db.bookmarks, n = remove(tx.db.bookmarks, match)
	return n
}

func (tx *Tx) Notifications() []*Notification {
	return tx.db.notifications
}

// InsertNotification puts n at the front so the table stays newest first.
func (tx *Tx) InsertNotification(n *Notification) {
	tx.db.notifications = slices.Insert(tx.db.notifications, 0, n)
}

func (tx *Tx) Categories() []string {
	return tx.db.categories
}

// HasCategory reports whether name is a managed category, ignoring case.
func (tx *Tx) HasCategory(name string) bool {
	return slices.ContainsFunc(tx.db.categories, func(c string) bool { return equalFold(c, name) })
}

func (tx *Tx) InsertCategory(name string) {
	tx.db.categories = append(tx.db.categories, name)
}

// DeleteCategory removes name from the managed set, ignoring case.
func (tx *Tx) DeleteCategory(name string) bool {
	n := len(tx.db.categories)
	tx.db.categories = slices.DeleteFunc(tx.db.categories, func(c string) bool { return equalFold(c, name) })
	return len(tx.db.categories) != n
}

func find[T any](rows []*T, match func(*T) bool) *T {
	for _, r := range rows {
		if match(r) {
			return r
		}
	}
	return nil
}

func remove[T any](rows []*T, match func(*T) bool) ([]*T, int) {
	n := len(rows)
	rows = slices.DeleteFunc(rows, match)
	return rows, n - len(rows)
}

func equalFold(a, b string) bool {
	return strings.EqualFold(a, b)
}
