package services

import (
	"context"
	"fmt"

	"newsportal/models"
	"newsportal/repositories"
)

// recentArticlesLimit is how many of the newest articles the dashboard lists.
const recentArticlesLimit = 5

type StatsService interface {
	GetDashboardStats(ctx context.Context, actor models.Identity) (*models.DashboardStats, error)
}

type statsService struct {
	statsRepo repositories.StatsRepository
}

func NewStatsService(statsRepo repositories.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

// GetDashboardStats recomputes every rollup on each call.
func (s *statsService) GetDashboardStats(ctx context.Context, actor models.Identity) (*models.DashboardStats, error) {
	if err := authorize(actor); err != nil {
		return nil, err
	}

	published := models.StatusPublished
	draft := models.StatusDraft
	stats := &models.DashboardStats{}

	var err error
	if stats.TotalArticles, err = s.statsRepo.CountArticles(ctx, nil); err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}
	if stats.PublishedArticles, err = s.statsRepo.CountArticles(ctx, &published); err != nil {
		return nil, fmt.Errorf("count published articles: %w", err)
	}
	if stats.DraftArticles, err = s.statsRepo.CountArticles(ctx, &draft); err != nil {
		return nil, fmt.Errorf("count draft articles: %w", err)
	}
	if stats.TotalCategories, err = s.statsRepo.CountCategories(ctx); err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}
	if stats.TotalViews, err = s.statsRepo.SumViews(ctx); err != nil {
		return nil, fmt.Errorf("sum views: %w", err)
	}
	if stats.CategoryDistribution, err = s.statsRepo.CategoryDistribution(ctx); err != nil {
		return nil, fmt.Errorf("category distribution: %w", err)
	}
	if stats.RecentArticles, err = s.statsRepo.RecentArticles(ctx, recentArticlesLimit); err != nil {
		return nil, fmt.Errorf("recent articles: %w", err)
	}

	if stats.CategoryDistribution == nil {
		stats.CategoryDistribution = []models.CategoryDistribution{}
	}
	stats.RecentArticles = nonNil(stats.RecentArticles)
	return stats, nil
}
