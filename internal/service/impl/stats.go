package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/sidereusnuntius/neonprofile/internal/domain"
	"github.com/sidereusnuntius/neonprofile/internal/service"
)

func (s *AppService) Stats(ctx context.Context) domain.Stats {
	return s.StatsStore.Current()
}

// Increment resolves the counter name, which is matched case-insensitively, and bumps it by one.
func (s *AppService) Increment(ctx context.Context, counter string) (domain.Stats, error) {
	c, err := domain.ParseCounter(strings.ToLower(strings.TrimSpace(counter)))
	if err != nil {
		return s.StatsStore.Current(), fmt.Errorf("%w: %w", service.ErrInvalidInput, err)
	}
	return s.StatsStore.Increment(ctx, c)
}
