package store

import (
	"context"
	"time"

	"catalog-admin/internal/assets"
	"catalog-admin/internal/domain"

	"go.uber.org/zap"
)

// CategoryInput carries the caller-supplied fields for creating a category.
// Image is the raw upload payload; empty means "use the placeholder".
type CategoryInput struct {
	Name  string `validate:"required"`
	Image []byte `validate:"-"`
}

// CategoryUpdate carries partial-update fields. Nil pointers and an empty
// Image payload leave the prior values untouched.
type CategoryUpdate struct {
	Name  *string `validate:"omitempty,min=1"`
	Image []byte  `validate:"-"`
}

// AddCategory validates the input, assigns a fresh id and timestamp, and
// appends the category to the collection.
func (s *Store) AddCategory(ctx context.Context, in CategoryInput) (*domain.Category, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	image, err := s.storeImage(ctx, in.Image, assets.Placeholder)
	if err != nil {
		return nil, err
	}

	category := domain.Category{
		ID:        newID(),
		Name:      in.Name,
		Image:     image,
		CreatedAt: time.Now(),
	}

	s.categories.mu.Lock()
	s.categories.insert(category)
	s.categories.mu.Unlock()

	s.logger.Info("Category created",
		zap.String("category_id", category.ID),
		zap.String("name", category.Name),
	)
	s.invalidate()
	return &category, nil
}

// UpdateCategory merges the provided fields over the existing record.
func (s *Store) UpdateCategory(ctx context.Context, id string, in CategoryUpdate) (*domain.Category, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	// Upload outside the lock; the reference is only recorded on success.
	var newImage string
	if len(in.Image) > 0 {
		uploaded, err := s.storeImage(ctx, in.Image, "")
		if err != nil {
			return nil, err
		}
		newImage = uploaded
	}

	s.categories.mu.Lock()
	defer s.categories.mu.Unlock()

	category, ok := s.categories.get(id)
	if !ok {
		return nil, ErrCategoryNotFound
	}

	if in.Name != nil {
		category.Name = *in.Name
	}
	if newImage != "" {
		category.Image = newImage
	}
	s.categories.replace(category)

	s.logger.Info("Category updated", zap.String("category_id", id))
	s.invalidate()
	return &category, nil
}

// DeleteCategory removes the category together with every sub-category and
// brand beneath it and every product referencing it. The whole cascade is
// one atomic step: all affected collections stay locked until it finishes.
// Coupons targeting a removed record keep their history but have the
// dangling reference cleared.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	s.categories.mu.Lock()
	defer s.categories.mu.Unlock()
	s.subCategories.mu.Lock()
	defer s.subCategories.mu.Unlock()
	s.brands.mu.Lock()
	defer s.brands.mu.Unlock()
	s.products.mu.Lock()
	defer s.products.mu.Unlock()
	s.coupons.mu.Lock()
	defer s.coupons.mu.Unlock()

	if !s.categories.has(id) {
		return ErrCategoryNotFound
	}

	subIDs := make(map[string]bool)
	for _, sc := range s.subCategories.recs {
		if sc.CategoryID == id {
			subIDs[sc.ID] = true
		}
	}

	// Children before parents: brands under the doomed sub-categories,
	// then products, then the sub-categories, then the category itself.
	removedBrands := s.brands.removeWhere(func(b domain.Brand) bool {
		return subIDs[b.SubCategoryID]
	})
	removedProducts := s.products.removeWhere(func(p domain.Product) bool {
		return p.CategoryID == id || subIDs[p.SubCategoryID]
	})
	removedSubs := s.subCategories.removeWhere(func(sc domain.SubCategory) bool {
		return sc.CategoryID == id
	})
	s.categories.remove(id)

	productIDs := make(map[string]bool, len(removedProducts))
	for _, p := range removedProducts {
		productIDs[p.ID] = true
	}
	s.detachCouponsLocked(map[string]bool{id: true}, subIDs, productIDs)

	s.logger.Info("Category deleted",
		zap.String("category_id", id),
		zap.Int("sub_categories_removed", len(removedSubs)),
		zap.Int("brands_removed", len(removedBrands)),
		zap.Int("products_removed", len(removedProducts)),
	)
	s.invalidate()
	return nil
}

// GetCategory returns a snapshot of the category, or ErrCategoryNotFound.
func (s *Store) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	s.categories.mu.RLock()
	defer s.categories.mu.RUnlock()

	category, ok := s.categories.get(id)
	if !ok {
		return nil, ErrCategoryNotFound
	}
	return &category, nil
}

// Categories returns an insertion-ordered snapshot of all categories.
func (s *Store) Categories(ctx context.Context) []domain.Category {
	s.categories.mu.RLock()
	defer s.categories.mu.RUnlock()
	return s.categories.snapshot()
}

// detachCouponsLocked clears coupon references that point at records removed
// by a cascade. Callers hold the coupons lock.
func (s *Store) detachCouponsLocked(categoryIDs, subCategoryIDs, productIDs map[string]bool) {
	for pos, c := range s.coupons.recs {
		changed := false
		if categoryIDs[c.CategoryID] {
			c.CategoryID = ""
			changed = true
		}
		if subCategoryIDs[c.SubCategoryID] {
			c.SubCategoryID = ""
			changed = true
		}
		if productIDs[c.ProductID] {
			c.ProductID = ""
			changed = true
		}
		if changed {
			s.coupons.recs[pos] = c
		}
	}
}
