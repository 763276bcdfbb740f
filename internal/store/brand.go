package store

import (
	"context"
	"time"

	"catalog-admin/internal/domain"

	"go.uber.org/zap"
)

// BrandInput carries the caller-supplied fields for creating a brand.
type BrandInput struct {
	Name          string `validate:"required"`
	SubCategoryID string `validate:"required"`
}

// BrandUpdate carries partial-update fields; nil means "keep".
type BrandUpdate struct {
	Name          *string `validate:"omitempty,min=1"`
	SubCategoryID *string `validate:"omitempty,min=1"`
}

// AddBrand validates the parent sub-category and inserts the record.
func (s *Store) AddBrand(ctx context.Context, in BrandInput) (*domain.Brand, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	s.subCategories.mu.RLock()
	defer s.subCategories.mu.RUnlock()
	s.brands.mu.Lock()
	defer s.brands.mu.Unlock()

	parent, ok := s.subCategories.get(in.SubCategoryID)
	if !ok {
		return nil, ErrSubCategoryNotFound
	}

	brand := domain.Brand{
		ID:              newID(),
		Name:            in.Name,
		SubCategoryID:   parent.ID,
		SubCategoryName: parent.Name,
		CreatedAt:       time.Now(),
	}
	s.brands.insert(brand)

	s.logger.Info("Brand created",
		zap.String("brand_id", brand.ID),
		zap.String("sub_category_id", parent.ID),
	)
	s.invalidate()
	return &brand, nil
}

// UpdateBrand merges the provided fields over the existing record and
// recomputes the denormalized SubCategoryName from the effective parent.
func (s *Store) UpdateBrand(ctx context.Context, id string, in BrandUpdate) (*domain.Brand, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	s.subCategories.mu.RLock()
	defer s.subCategories.mu.RUnlock()
	s.brands.mu.Lock()
	defer s.brands.mu.Unlock()

	brand, ok := s.brands.get(id)
	if !ok {
		return nil, ErrBrandNotFound
	}

	subCategoryID := brand.SubCategoryID
	if in.SubCategoryID != nil {
		subCategoryID = *in.SubCategoryID
	}
	parent, ok := s.subCategories.get(subCategoryID)
	if !ok {
		return nil, ErrSubCategoryNotFound
	}

	if in.Name != nil {
		brand.Name = *in.Name
	}
	brand.SubCategoryID = parent.ID
	brand.SubCategoryName = parent.Name
	s.brands.replace(brand)

	s.logger.Info("Brand updated", zap.String("brand_id", id))
	s.invalidate()
	return &brand, nil
}

// DeleteBrand removes the brand and the products referencing it, clearing
// coupon references to the removed products.
func (s *Store) DeleteBrand(ctx context.Context, id string) error {
	s.brands.mu.Lock()
	defer s.brands.mu.Unlock()
	s.products.mu.Lock()
	defer s.products.mu.Unlock()
	s.coupons.mu.Lock()
	defer s.coupons.mu.Unlock()

	if !s.brands.has(id) {
		return ErrBrandNotFound
	}

	removedProducts := s.products.removeWhere(func(p domain.Product) bool {
		return p.BrandID == id
	})
	s.brands.remove(id)

	productIDs := make(map[string]bool, len(removedProducts))
	for _, p := range removedProducts {
		productIDs[p.ID] = true
	}
	s.detachCouponsLocked(nil, nil, productIDs)

	s.logger.Info("Brand deleted",
		zap.String("brand_id", id),
		zap.Int("products_removed", len(removedProducts)),
	)
	s.invalidate()
	return nil
}

// GetBrand returns a snapshot of the brand record.
func (s *Store) GetBrand(ctx context.Context, id string) (*domain.Brand, error) {
	s.brands.mu.RLock()
	defer s.brands.mu.RUnlock()

	brand, ok := s.brands.get(id)
	if !ok {
		return nil, ErrBrandNotFound
	}
	return &brand, nil
}

// Brands returns an insertion-ordered snapshot of all brands.
func (s *Store) Brands(ctx context.Context) []domain.Brand {
	s.brands.mu.RLock()
	defer s.brands.mu.RUnlock()
	return s.brands.snapshot()
}
