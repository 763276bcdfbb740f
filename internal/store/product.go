package store

import (
	"context"
	"time"

	"catalog-admin/internal/assets"
	"catalog-admin/internal/domain"

	"go.uber.org/zap"
)

// productImageSlots is the fixed number of image positions on a product.
// Unfilled slots hold the placeholder reference.
const productImageSlots = 5

// ProductInput carries the caller-supplied fields for creating a product.
// Images holds up to five positional upload payloads; empty slots get the
// placeholder.
type ProductInput struct {
	Name          string   `validate:"required"`
	Description   string   `validate:"-"`
	CategoryID    string   `validate:"required"`
	SubCategoryID string   `validate:"required"`
	BrandID       string   `validate:"required"`
	Price         float64  `validate:"gte=0"`
	OfferPrice    float64  `validate:"gte=0"`
	Quantity      int      `validate:"gte=0"`
	VariantType   string   `validate:"-"`
	VariantItems  []string `validate:"-"`
	Images        [][]byte `validate:"max=5"`
}

// ProductUpdate carries partial-update fields. Nil pointers and nil slices
// keep prior values; an image slot with data replaces that position only.
type ProductUpdate struct {
	Name          *string  `validate:"omitempty,min=1"`
	Description   *string  `validate:"-"`
	CategoryID    *string  `validate:"omitempty,min=1"`
	SubCategoryID *string  `validate:"omitempty,min=1"`
	BrandID       *string  `validate:"omitempty,min=1"`
	Price         *float64 `validate:"omitempty,gte=0"`
	OfferPrice    *float64 `validate:"omitempty,gte=0"`
	Quantity      *int     `validate:"omitempty,gte=0"`
	VariantType   *string  `validate:"-"`
	VariantItems  []string `validate:"-"`
	Images        [][]byte `validate:"max=5"`
}

// AddProduct validates all three hierarchy references and inserts the
// product. The references must chain: the sub-category under the category,
// the brand under the sub-category. Reference resolution and insertion
// happen under the parent collections' read locks, so no referenced record
// can be deleted in between.
func (s *Store) AddProduct(ctx context.Context, in ProductInput) (*domain.Product, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	// Uploads happen before any lock is taken; a failed add may leave an
	// orphaned blob but never a repository mutation.
	images := make([]string, productImageSlots)
	for i := 0; i < productImageSlots; i++ {
		var payload []byte
		if i < len(in.Images) {
			payload = in.Images[i]
		}
		uri, err := s.storeImage(ctx, payload, assets.Placeholder)
		if err != nil {
			return nil, err
		}
		images[i] = uri
	}

	s.categories.mu.RLock()
	defer s.categories.mu.RUnlock()
	s.subCategories.mu.RLock()
	defer s.subCategories.mu.RUnlock()
	s.brands.mu.RLock()
	defer s.brands.mu.RUnlock()
	s.products.mu.Lock()
	defer s.products.mu.Unlock()

	if err := s.resolveProductParentsLocked(in.CategoryID, in.SubCategoryID, in.BrandID); err != nil {
		return nil, err
	}

	product := domain.Product{
		ID:            newID(),
		Name:          in.Name,
		Description:   in.Description,
		CategoryID:    in.CategoryID,
		SubCategoryID: in.SubCategoryID,
		BrandID:       in.BrandID,
		Price:         in.Price,
		OfferPrice:    in.OfferPrice,
		Quantity:      in.Quantity,
		VariantType:   in.VariantType,
		VariantItems:  append([]string(nil), in.VariantItems...),
		Images:        images,
		CreatedAt:     time.Now(),
	}
	s.products.insert(product)

	s.logger.Info("Product created",
		zap.String("product_id", product.ID),
		zap.String("name", product.Name),
	)
	s.invalidate()
	return s.copyProduct(product), nil
}

// UpdateProduct merges the provided fields over the existing record,
// re-validating any changed hierarchy reference exactly as AddProduct does.
func (s *Store) UpdateProduct(ctx context.Context, id string, in ProductUpdate) (*domain.Product, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	newImages := make([]string, productImageSlots)
	for i := 0; i < productImageSlots; i++ {
		if i < len(in.Images) && len(in.Images[i]) > 0 {
			uri, err := s.storeImage(ctx, in.Images[i], "")
			if err != nil {
				return nil, err
			}
			newImages[i] = uri
		}
	}

	s.categories.mu.RLock()
	defer s.categories.mu.RUnlock()
	s.subCategories.mu.RLock()
	defer s.subCategories.mu.RUnlock()
	s.brands.mu.RLock()
	defer s.brands.mu.RUnlock()
	s.products.mu.Lock()
	defer s.products.mu.Unlock()

	product, ok := s.products.get(id)
	if !ok {
		return nil, ErrProductNotFound
	}

	categoryID := product.CategoryID
	if in.CategoryID != nil {
		categoryID = *in.CategoryID
	}
	subCategoryID := product.SubCategoryID
	if in.SubCategoryID != nil {
		subCategoryID = *in.SubCategoryID
	}
	brandID := product.BrandID
	if in.BrandID != nil {
		brandID = *in.BrandID
	}
	if err := s.resolveProductParentsLocked(categoryID, subCategoryID, brandID); err != nil {
		return nil, err
	}

	product.CategoryID = categoryID
	product.SubCategoryID = subCategoryID
	product.BrandID = brandID
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.OfferPrice != nil {
		product.OfferPrice = *in.OfferPrice
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
	}
	if in.VariantType != nil {
		product.VariantType = *in.VariantType
	}
	if in.VariantItems != nil {
		product.VariantItems = append([]string(nil), in.VariantItems...)
	}

	images := make([]string, productImageSlots)
	for i := 0; i < productImageSlots; i++ {
		switch {
		case newImages[i] != "":
			images[i] = newImages[i]
		case i < len(product.Images) && product.Images[i] != "":
			images[i] = product.Images[i]
		default:
			images[i] = assets.Placeholder
		}
	}
	product.Images = images

	s.products.replace(product)

	s.logger.Info("Product updated", zap.String("product_id", id))
	s.invalidate()
	return s.copyProduct(product), nil
}

// DeleteProduct removes the product and clears coupon references to it.
func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	s.products.mu.Lock()
	defer s.products.mu.Unlock()
	s.coupons.mu.Lock()
	defer s.coupons.mu.Unlock()

	if !s.products.remove(id) {
		return ErrProductNotFound
	}
	s.detachCouponsLocked(nil, nil, map[string]bool{id: true})

	s.logger.Info("Product deleted", zap.String("product_id", id))
	s.invalidate()
	return nil
}

// GetProduct returns a snapshot of the product record.
func (s *Store) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	s.products.mu.RLock()
	defer s.products.mu.RUnlock()

	product, ok := s.products.get(id)
	if !ok {
		return nil, ErrProductNotFound
	}
	return s.copyProduct(product), nil
}

// Products returns an insertion-ordered snapshot of all products.
func (s *Store) Products(ctx context.Context) []domain.Product {
	s.products.mu.RLock()
	defer s.products.mu.RUnlock()

	out := s.products.snapshot()
	for i := range out {
		out[i].VariantItems = append([]string(nil), out[i].VariantItems...)
		out[i].Images = append([]string(nil), out[i].Images...)
	}
	return out
}

// resolveProductParentsLocked checks that all three hierarchy references
// resolve and chain: the sub-category must belong to the category and the
// brand to the sub-category, mirroring the admin panel's dependent
// dropdowns. Without the chain check a product could outlive a cascade that
// removed its brand. Callers hold the category, sub-category and brand read
// locks.
func (s *Store) resolveProductParentsLocked(categoryID, subCategoryID, brandID string) error {
	if !s.categories.has(categoryID) {
		return ErrCategoryNotFound
	}
	subCategory, ok := s.subCategories.get(subCategoryID)
	if !ok {
		return ErrSubCategoryNotFound
	}
	if subCategory.CategoryID != categoryID {
		return newValidationError("SubCategoryID", "sub category does not belong to the category")
	}
	brand, ok := s.brands.get(brandID)
	if !ok {
		return ErrBrandNotFound
	}
	if brand.SubCategoryID != subCategoryID {
		return newValidationError("BrandID", "brand does not belong to the sub category")
	}
	return nil
}

// copyProduct deep-copies the slice fields so callers can never alias the
// stored record.
func (s *Store) copyProduct(p domain.Product) *domain.Product {
	p.VariantItems = append([]string(nil), p.VariantItems...)
	p.Images = append([]string(nil), p.Images...)
	return &p
}
