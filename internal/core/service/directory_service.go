package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/careconnect/appointment-system/internal/api/metrics"
	"github.com/careconnect/appointment-system/internal/core/domain"
	"github.com/careconnect/appointment-system/internal/core/ports"
)

// DirectoryCache abstracts the listing cache (Redis). Get returns
// (nil, nil) on a cache miss.
type DirectoryCache interface {
	Get(ctx context.Context, role string) ([]*domain.User, error)
	Set(ctx context.Context, role string, users []*domain.User) error
	Invalidate(ctx context.Context, role string) error
}

type directoryService struct {
	repo  ports.UserRepository
	cache DirectoryCache
	log   zerolog.Logger
}

// NewDirectoryService returns a DirectoryService backed by the user
// repository with a read-through cache in front. Cache failures degrade
// to a direct repository read and never fail the request.
func NewDirectoryService(repo ports.UserRepository, cache DirectoryCache, log zerolog.Logger) ports.DirectoryService {
	return &directoryService{repo: repo, cache: cache, log: log}
}

func (s *directoryService) ListDoctors(ctx context.Context) ([]*domain.User, error) {
	return s.listRole(ctx, domain.RoleDoctor)
}

func (s *directoryService) ListPatients(ctx context.Context) ([]*domain.User, error) {
	return s.listRole(ctx, domain.RolePatient)
}

func (s *directoryService) listRole(ctx context.Context, role string) ([]*domain.User, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, role)
		if err != nil {
			s.log.Warn().Err(err).Str("role", role).Msg("directory cache read failed, falling back to store")
		} else if cached != nil {
			metrics.DirectoryCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		} else {
			metrics.DirectoryCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	users, err := s.repo.ListByRole(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("list %ss: %w", role, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, role, users); err != nil {
			s.log.Warn().Err(err).Str("role", role).Msg("directory cache write failed")
		}
	}
	return users, nil
}
