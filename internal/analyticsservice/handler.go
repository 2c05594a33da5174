package analyticsservice

import (
	"context"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/sushihentaime/inkpost/internal/common"
	"github.com/sushihentaime/inkpost/internal/memdb"
	"golang.org/x/exp/rand"
)

const (
	topPostsLimit   = 5
	syntheticShares = 15
	viewDays        = 7
	maxDailyViews   = 500
)

var ErrPostNotFound = fmt.Errorf("post %w", common.ErrRecordNotFound)

var trafficSources = []TrafficSource{
	{Source: "Direct", Percent: 40},
	{Source: "Google", Percent: 30},
	{Source: "Social", Percent: 20},
	{Source: "Referral", Percent: 10},
}

func NewAnalyticsService(db *memdb.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

// Totals counts users, posts and comments that are not reported.
func (s *AnalyticsService) Totals(ctx context.Context) (*Totals, error) {
	if err := s.db.Wait(ctx, memdb.Half); err != nil {
		return nil, err
	}

	var t Totals
	err := s.db.View(func(tx *memdb.Tx) error {
		t.Users = len(tx.Users())
		t.Posts = len(tx.Posts())
		for _, c := range tx.Comments() {
			if !c.Reported {
				t.Comments++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// TopPosts ranks published posts by reaction count. Ties keep store order.
func (s *AnalyticsService) TopPosts(ctx context.Context) ([]TopPost, error) {
	if err := s.db.Wait(ctx, memdb.Half); err != nil {
		return nil, err
	}

	top := make([]TopPost, 0)
	err := s.db.View(func(tx *memdb.Tx) error {
		for _, p := range tx.Posts() {
			if p.IsPublished() {
				top = append(top, TopPost{PostID: p.ID, Title: p.Title, Value: p.Reactions.Count()})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(top, func(a, b TopPost) int {
		return b.Value - a.Value
	})

	if len(top) > topPostsLimit {
		top = top[:topPostsLimit]
	}

	return top, nil
}

// PostAnalytics returns the engagement figures of a post.
func (s *AnalyticsService) PostAnalytics(ctx context.Context, postID string) (*PostAnalytics, error) {
	if err := s.db.Wait(ctx, memdb.Full); err != nil {
		return nil, err
	}

	var a *PostAnalytics
	err := s.db.View(func(tx *memdb.Tx) error {
		p := tx.Post(postID)
		if p == nil {
			return ErrPostNotFound
		}

		comments := 0
		for _, c := range tx.Comments() {
			if c.BlogPostID == postID {
				comments++
			}
		}

		a = &PostAnalytics{
			PostID:    p.ID,
			Title:     p.Title,
			Reactions: p.Reactions.Count(),
			Comments:  comments,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	a.EngagementScore = engagementScore(a.Reactions, a.Comments)
	a.Shares = syntheticShares
	a.ViewsOverTime = viewsOverTime(s.db.Now())
	a.TrafficSources = slices.Clone(trafficSources)

	return a, nil
}

func engagementScore(reactions, comments int) int {
	return int(math.Round((float64(reactions)*1.5 + float64(comments)*3 + syntheticShares) * 1.2))
}

// viewsOverTime returns one random figure per day for the week ending at now, oldest first.
func viewsOverTime(now time.Time) []DailyViews {
	views := make([]DailyViews, viewDays)
	for i := range views {
		day := now.AddDate(0, 0, i-(viewDays-1))
		views[i] = DailyViews{Date: day.Format(time.DateOnly), Views: rand.Intn(maxDailyViews) + 1}
	}
	return views
}
