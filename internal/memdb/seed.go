package memdb

import "time"

func avatar(seed string) string {
	return "https://picsum.photos/seed/" + seed + "/200"
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func (db *DB) seed(now time.Time) {
	day := 24 * time.Hour

	db.users = []*User{
		{
			ID:                "user1",
			Email:             "admin@example.com",
			Username:          "AdminUser",
			Role:              RoleAdmin,
			Bio:               "Platform administrator and AI enthusiast.",
			ProfilePictureURL: avatar("admin"),
			IsSubscribed:      true,
			Following:         []string{"user2"},
		},
		{
			ID:                "user2",
			Email:             "editor@example.com",
			Username:          "EditorAlice",
			Role:              RoleEditor,
			Bio:               "Editor who loves a well-told story.",
			ProfilePictureURL: avatar("alice"),
			IsSubscribed:      true,
			Following:         []string{},
		},
		{
			ID:                "user3",
			Email:             "user@example.com",
			Username:          "UserBob",
			Role:              RoleUser,
			Bio:               "Web developer writing about what I learn.",
			ProfilePictureURL: avatar("bob"),
			Following:         []string{"user1", "user2"},
		},
		{
			ID:                "user4",
			Email:             "googleuser@example.com",
			Username:          "GoogleUserCharlie",
			Role:              RoleUser,
			ProfilePictureURL: avatar("charlie"),
			Following:         []string{},
		},
	}

	db.posts = []*Post{
		{
			ID:              "post1",
			Title:           "Getting Started with AI",
			Content:         "<p>Artificial intelligence is changing how we build software.</p><h2>Where to begin</h2><p>Start with the fundamentals of machine learning, then experiment with pretrained models.</p>",
			Excerpt:         "Artificial intelligence is changing how we build software. Start with the fundamentals of machine learning, then experiment with pretrained models.",
			MetaDescription: "An introduction to artificial intelligence for developers: where to begin and which fundamentals matter.",
			Tags:            []string{"AI", "Technology", "Future"},
			AuthorID:        "user1",
			AuthorName:      "AdminUser",
			CreatedAt:       now.Add(-3 * day),
			UpdatedAt:       now.Add(-2 * day),
			PublishedAt:     timePtr(now.Add(-2 * day)),
			Status:          StatusPublished,
			PostType:        PostTypeArticle,
			IsPremium:       true,
			FeaturedImage:   "https://picsum.photos/seed/ai/800/400",
			Reactions: Reactions{
				ReactionLike:      {"user2", "user3"},
				ReactionCelebrate: {"user4"},
			},
		},
		{
			ID:              "post2",
			Title:           "The Art of Blogging",
			Content:         "<p>Blogging is about finding your voice and sharing it with a community.</p><p>Write often, edit ruthlessly and listen to your readers.</p>",
			Excerpt:         "Blogging is about finding your voice and sharing it with a community. Write often, edit ruthlessly and listen to your readers.",
			MetaDescription: "Blogging is about finding your voice and sharing it with a community.",
			Tags:            []string{"Blogging", "Writing", "Community"},
			AuthorID:        "user2",
			AuthorName:      "EditorAlice",
			CreatedAt:       now.Add(-2 * day),
			UpdatedAt:       now.Add(-1 * day),
			PublishedAt:     timePtr(now.Add(-1 * day)),
			Status:          StatusPublished,
			PostType:        PostTypeBlog,
			FeaturedImage:   "https://picsum.photos/seed/blogging/800/400",
			Reactions: Reactions{
				ReactionInsightful: {"user1"},
				ReactionLove:       {"user3", "user4"},
			},
		},
		{
			ID:              "post3",
			Title:           "My Thoughts on Web Development",
			Content:         "<p>Frameworks come and go, but the web platform keeps getting better.</p>",
			Excerpt:         "Frameworks come and go, but the web platform keeps getting better.",
			MetaDescription: "Frameworks come and go, but the web platform keeps getting better.",
			Tags:            []string{"Web Development"},
			AuthorID:        "user3",
			AuthorName:      "UserBob",
			CreatedAt:       now.Add(-1 * day),
			UpdatedAt:       now.Add(-1 * day),
			Status:          StatusDraft,
			PostType:        PostTypeBlog,
			FeaturedImage:   DefaultFeaturedImage,
			Reactions: Reactions{
				ReactionLike: {"user1"},
			},
		},
		{
			ID:                   "post4",
			Title:                "Scheduled Adventures",
			Content:              "<p>Our next journey takes us across three continents in thirty days.</p>",
			Excerpt:              "Our next journey takes us across three continents in thirty days.",
			MetaDescription:      "Our next journey takes us across three continents in thirty days.",
			Tags:                 []string{"Travel", "Adventure", "Scheduled", "AI"},
			AuthorID:             "user2",
			AuthorName:           "EditorAlice",
			CreatedAt:            now,
			UpdatedAt:            now,
			ScheduledPublishTime: timePtr(now.Add(day)),
			Status:               StatusScheduled,
			PostType:             PostTypeBlog,
			IsPremium:            true,
			FeaturedImage:        "https://picsum.photos/seed/travel/800/400",
			Reactions:            Reactions{},
		},
	}

	db.comments = []*Comment{
		{
			ID:                    "comment1",
			BlogPostID:            "post2",
			UserID:                "user2",
			UserName:              "EditorAlice",
			UserProfilePictureURL: avatar("alice"),
			Content:               "Thanks for reading! Let me know what you write about.",
			CreatedAt:             now.Add(-20 * time.Hour),
		},
		{
			ID:                    "comment2",
			BlogPostID:            "post2",
			UserID:                "user3",
			UserName:              "UserBob",
			UserProfilePictureURL: avatar("bob"),
			Content:               "Mostly web development, this was really helpful.",
			CreatedAt:             now.Add(-18 * time.Hour),
			ParentID:              "comment1",
		},
		{
			ID:                    "comment3",
			BlogPostID:            "post2",
			UserID:                "user1",
			UserName:              "AdminUser",
			UserProfilePictureURL: avatar("admin"),
			Content:               "Check out my course at totally-legit-link.example!",
			CreatedAt:             now.Add(-12 * time.Hour),
			Reported:              true,
		},
	}

	db.bookmarks = []*Bookmark{
		{UserID: "user3", BlogPostID: "post1", AddedAt: now.Add(-1 * day)},
	}

	db.notifications = []*Notification{
		{
			ID:          "notif1",
			RecipientID: "user1",
			Actor:       Actor{ID: "user3", Username: "UserBob", ProfilePictureURL: avatar("bob")},
			Type:        NotificationReaction,
			Message:     `UserBob reacted to your post "Getting Started with AI"`,
			Link:        postLink("post1"),
			CreatedAt:   now.Add(-1 * time.Hour),
		},
		{
			ID:          "notif2",
			RecipientID: "user2",
			Actor:       Actor{ID: "user1", Username: "AdminUser", ProfilePictureURL: avatar("admin")},
			Type:        NotificationFollow,
			Message:     "AdminUser started following you.",
			Link:        authorLink("user1"),
			Read:        true,
			CreatedAt:   now.Add(-2 * time.Hour),
		},
	}

	db.categories = []string{"AI", "Technology", "Blogging", "Writing"}
}
