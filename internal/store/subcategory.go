package store

import (
	"context"
	"time"

	"catalog-admin/internal/domain"

	"go.uber.org/zap"
)

// SubCategoryInput carries the caller-supplied fields for creating a
// sub-category. CategoryID must resolve to an existing category.
type SubCategoryInput struct {
	Name       string `validate:"required"`
	CategoryID string `validate:"required"`
}

// SubCategoryUpdate carries partial-update fields; nil means "keep".
type SubCategoryUpdate struct {
	Name       *string `validate:"omitempty,min=1"`
	CategoryID *string `validate:"omitempty,min=1"`
}

// AddSubCategory validates the parent reference and inserts the record.
// Parent resolution and insertion happen under both locks, so a concurrent
// DeleteCategory can never interleave between them.
func (s *Store) AddSubCategory(ctx context.Context, in SubCategoryInput) (*domain.SubCategory, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	s.categories.mu.RLock()
	defer s.categories.mu.RUnlock()
	s.subCategories.mu.Lock()
	defer s.subCategories.mu.Unlock()

	parent, ok := s.categories.get(in.CategoryID)
	if !ok {
		return nil, ErrCategoryNotFound
	}

	subCategory := domain.SubCategory{
		ID:           newID(),
		Name:         in.Name,
		CategoryID:   parent.ID,
		CategoryName: parent.Name,
		CreatedAt:    time.Now(),
	}
	s.subCategories.insert(subCategory)

	s.logger.Info("Sub category created",
		zap.String("sub_category_id", subCategory.ID),
		zap.String("category_id", parent.ID),
	)
	s.invalidate()
	return &subCategory, nil
}

// UpdateSubCategory merges the provided fields over the existing record.
// The denormalized CategoryName is recomputed from the effective parent at
// this moment, whether or not the reference changed.
func (s *Store) UpdateSubCategory(ctx context.Context, id string, in SubCategoryUpdate) (*domain.SubCategory, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	s.categories.mu.RLock()
	defer s.categories.mu.RUnlock()
	s.subCategories.mu.Lock()
	defer s.subCategories.mu.Unlock()

	subCategory, ok := s.subCategories.get(id)
	if !ok {
		return nil, ErrSubCategoryNotFound
	}

	categoryID := subCategory.CategoryID
	if in.CategoryID != nil {
		categoryID = *in.CategoryID
	}
	parent, ok := s.categories.get(categoryID)
	if !ok {
		return nil, ErrCategoryNotFound
	}

	if in.Name != nil {
		subCategory.Name = *in.Name
	}
	subCategory.CategoryID = parent.ID
	subCategory.CategoryName = parent.Name
	s.subCategories.replace(subCategory)

	s.logger.Info("Sub category updated", zap.String("sub_category_id", id))
	s.invalidate()
	return &subCategory, nil
}

// DeleteSubCategory removes the sub-category, the brands beneath it and the
// products referencing it in one atomic step, clearing any coupon
// references to the removed records.
func (s *Store) DeleteSubCategory(ctx context.Context, id string) error {
	s.subCategories.mu.Lock()
	defer s.subCategories.mu.Unlock()
	s.brands.mu.Lock()
	defer s.brands.mu.Unlock()
	s.products.mu.Lock()
	defer s.products.mu.Unlock()
	s.coupons.mu.Lock()
	defer s.coupons.mu.Unlock()

	if !s.subCategories.has(id) {
		return ErrSubCategoryNotFound
	}

	removedBrands := s.brands.removeWhere(func(b domain.Brand) bool {
		return b.SubCategoryID == id
	})
	removedProducts := s.products.removeWhere(func(p domain.Product) bool {
		return p.SubCategoryID == id
	})
	s.subCategories.remove(id)

	productIDs := make(map[string]bool, len(removedProducts))
	for _, p := range removedProducts {
		productIDs[p.ID] = true
	}
	s.detachCouponsLocked(nil, map[string]bool{id: true}, productIDs)

	s.logger.Info("Sub category deleted",
		zap.String("sub_category_id", id),
		zap.Int("brands_removed", len(removedBrands)),
		zap.Int("products_removed", len(removedProducts)),
	)
	s.invalidate()
	return nil
}

// GetSubCategory returns a snapshot of the sub-category record.
func (s *Store) GetSubCategory(ctx context.Context, id string) (*domain.SubCategory, error) {
	s.subCategories.mu.RLock()
	defer s.subCategories.mu.RUnlock()

	subCategory, ok := s.subCategories.get(id)
	if !ok {
		return nil, ErrSubCategoryNotFound
	}
	return &subCategory, nil
}

// SubCategories returns an insertion-ordered snapshot of all sub-categories.
func (s *Store) SubCategories(ctx context.Context) []domain.SubCategory {
	s.subCategories.mu.RLock()
	defer s.subCategories.mu.RUnlock()
	return s.subCategories.snapshot()
}
