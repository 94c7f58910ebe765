package campaignrepo

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/GlebRadaev/fundraiser/internal/domain"
)

// CachedRepository serves profile lookups from memory. Profiles never change
// after creation, so entries need no invalidation.
type CachedRepository struct {
	*Repository
	cache *lru.Cache
}

func NewCached(repo *Repository, size int) (*CachedRepository, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to init profile cache: %w", err)
	}
	return &CachedRepository{
		Repository: repo,
		cache:      cache,
	}, nil
}

func (c *CachedRepository) FindProfile(ctx context.Context, address string) (*domain.Profile, error) {
	if val, ok := c.cache.Get(address); ok {
		if profile, ok := val.(domain.Profile); ok {
			return &profile, nil
		}
	}

	profile, err := c.Repository.FindProfile(ctx, address)
	if err != nil || profile == nil {
		return profile, err
	}
	c.cache.Add(address, *profile)
	return profile, nil
}
