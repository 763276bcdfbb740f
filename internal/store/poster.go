package store

import (
	"context"
	"time"

	"catalog-admin/internal/assets"
	"catalog-admin/internal/domain"

	"go.uber.org/zap"
)

// PosterInput carries the caller-supplied fields for creating a poster.
type PosterInput struct {
	Name  string `validate:"required"`
	Image []byte `validate:"-"`
}

// PosterUpdate carries partial-update fields. An empty Image payload keeps
// the prior image.
type PosterUpdate struct {
	Name  *string `validate:"omitempty,min=1"`
	Image []byte  `validate:"-"`
}

func (s *Store) AddPoster(ctx context.Context, in PosterInput) (*domain.Poster, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	image, err := s.storeImage(ctx, in.Image, assets.Placeholder)
	if err != nil {
		return nil, err
	}

	poster := domain.Poster{
		ID:        newID(),
		Name:      in.Name,
		Image:     image,
		CreatedAt: time.Now(),
	}

	s.posters.mu.Lock()
	s.posters.insert(poster)
	s.posters.mu.Unlock()

	s.logger.Info("Poster created", zap.String("poster_id", poster.ID))
	s.invalidate()
	return &poster, nil
}

func (s *Store) UpdatePoster(ctx context.Context, id string, in PosterUpdate) (*domain.Poster, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	var newImage string
	if len(in.Image) > 0 {
		uploaded, err := s.storeImage(ctx, in.Image, "")
		if err != nil {
			return nil, err
		}
		newImage = uploaded
	}

	s.posters.mu.Lock()
	defer s.posters.mu.Unlock()

	poster, ok := s.posters.get(id)
	if !ok {
		return nil, ErrPosterNotFound
	}

	if in.Name != nil {
		poster.Name = *in.Name
	}
	if newImage != "" {
		poster.Image = newImage
	}
	s.posters.replace(poster)

	s.logger.Info("Poster updated", zap.String("poster_id", id))
	s.invalidate()
	return &poster, nil
}

func (s *Store) DeletePoster(ctx context.Context, id string) error {
	s.posters.mu.Lock()
	defer s.posters.mu.Unlock()

	if !s.posters.remove(id) {
		return ErrPosterNotFound
	}

	s.logger.Info("Poster deleted", zap.String("poster_id", id))
	s.invalidate()
	return nil
}

func (s *Store) GetPoster(ctx context.Context, id string) (*domain.Poster, error) {
	s.posters.mu.RLock()
	defer s.posters.mu.RUnlock()

	poster, ok := s.posters.get(id)
	if !ok {
		return nil, ErrPosterNotFound
	}
	return &poster, nil
}

func (s *Store) Posters(ctx context.Context) []domain.Poster {
	s.posters.mu.RLock()
	defer s.posters.mu.RUnlock()
	return s.posters.snapshot()
}
