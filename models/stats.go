package models

type CategoryDistribution struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type DashboardStats struct {
	TotalArticles        int64                  `json:"total_articles"`
	PublishedArticles    int64                  `json:"published_articles"`
	DraftArticles        int64                  `json:"draft_articles"`
	TotalCategories      int64                  `json:"total_categories"`
	TotalViews           int64                  `json:"total_views"`
	CategoryDistribution []CategoryDistribution `json:"category_distribution"`
	RecentArticles       []Article              `json:"recent_articles"`
}
