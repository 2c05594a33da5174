package analyticsservice

import "github.com/sushihentaime/inkpost/internal/memdb"

type AnalyticsService struct {
	db *memdb.DB
}

type Totals struct {
	Users    int `json:"users"`
	Posts    int `json:"posts"`
	Comments int `json:"comments"`
}

type TopPost struct {
	PostID string `json:"post_id"`
	Title  string `json:"title"`
	Value  int    `json:"value"`
}

type DailyViews struct {
	Date  string `json:"date"`
	Views int    `json:"views"`
}

type TrafficSource struct {
	Source  string `json:"source"`
	Percent int    `json:"percent"`
}

// PostAnalytics holds the engagement figures of one post. Shares, ViewsOverTime and
// TrafficSources are synthetic.
type PostAnalytics struct {
	PostID          string          `json:"post_id"`
	Title           string          `json:"title"`
	Reactions       int             `json:"reactions"`
	Comments        int             `json:"comments"`
	EngagementScore int             `json:"engagement_score"`
	Shares          int             `json:"shares"`
	ViewsOverTime   []DailyViews    `json:"views_over_time"`
	TrafficSources  []TrafficSource `json:"traffic_sources"`
}
