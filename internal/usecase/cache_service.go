package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/match-tracker/internal/domain/feed"
	"github.com/riskibarqy/match-tracker/internal/platform/logging"
)

// CacheService drops every cached result across all sports.
type CacheService struct {
	cache  feed.ResultCache
	logger *logging.Logger
}

func NewCacheService(cache feed.ResultCache, logger *logging.Logger) *CacheService {
	if logger == nil {
		logger = logging.Default()
	}
	return &CacheService{cache: cache, logger: logger}
}

func (s *CacheService) Clear(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.CacheService.Clear")
	defer span.End()

	if s.cache == nil {
		return nil
	}
	if err := s.cache.Clear(ctx); err != nil {
		return fmt.Errorf("clear result cache: %w", err)
	}
	s.logger.InfoContext(ctx, "result cache cleared")
	return nil
}
