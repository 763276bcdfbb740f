package store

import (
	"context"
	"time"

	"catalog-admin/internal/domain"

	"go.uber.org/zap"
)

// couponDateFormats are the accepted expiry-date layouts: the admin panel's
// date picker submits plain dates, API clients may send RFC 3339.
var couponDateFormats = []string{time.RFC3339, "2006-01-02"}

// CouponInput carries the caller-supplied fields for creating a coupon.
// The three reference fields are optional; when non-empty they must resolve
// to an existing record.
type CouponInput struct {
	Code              string  `validate:"required"`
	DiscountType      string  `validate:"required,oneof=fixed percentage"`
	Amount            float64 `validate:"gte=0"`
	MinPurchaseAmount float64 `validate:"gte=0"`
	ExpiryDate        string  `validate:"required"`
	Status            string  `validate:"required,oneof=active inactive"`
	CategoryID        string  `validate:"-"`
	SubCategoryID     string  `validate:"-"`
	ProductID         string  `validate:"-"`
}

// CouponUpdate carries partial-update fields. For the reference fields an
// explicit empty string clears the reference while nil keeps it.
type CouponUpdate struct {
	Code              *string  `validate:"omitempty,min=1"`
	DiscountType      *string  `validate:"omitempty,oneof=fixed percentage"`
	Amount            *float64 `validate:"omitempty,gte=0"`
	MinPurchaseAmount *float64 `validate:"omitempty,gte=0"`
	ExpiryDate        *string  `validate:"omitempty,min=1"`
	Status            *string  `validate:"omitempty,oneof=active inactive"`
	CategoryID        *string  `validate:"-"`
	SubCategoryID     *string  `validate:"-"`
	ProductID         *string  `validate:"-"`
}

func parseExpiryDate(raw string) (time.Time, error) {
	for _, layout := range couponDateFormats {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, newValidationError("ExpiryDate", "value is not a parseable date")
}

// AddCoupon validates the input and any non-empty target references, then
// inserts the coupon. Reference checks hold the target collections' read
// locks together with the coupons write lock.
func (s *Store) AddCoupon(ctx context.Context, in CouponInput) (*domain.Coupon, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}
	expiry, err := parseExpiryDate(in.ExpiryDate)
	if err != nil {
		return nil, err
	}

	s.categories.mu.RLock()
	defer s.categories.mu.RUnlock()
	s.subCategories.mu.RLock()
	defer s.subCategories.mu.RUnlock()
	s.products.mu.RLock()
	defer s.products.mu.RUnlock()
	s.coupons.mu.Lock()
	defer s.coupons.mu.Unlock()

	if err := s.resolveCouponTargetsLocked(in.CategoryID, in.SubCategoryID, in.ProductID); err != nil {
		return nil, err
	}

	coupon := domain.Coupon{
		ID:                newID(),
		Code:              in.Code,
		DiscountType:      domain.DiscountType(in.DiscountType),
		Amount:            in.Amount,
		MinPurchaseAmount: in.MinPurchaseAmount,
		ExpiryDate:        expiry,
		Status:            domain.CouponStatus(in.Status),
		CategoryID:        in.CategoryID,
		SubCategoryID:     in.SubCategoryID,
		ProductID:         in.ProductID,
		CreatedAt:         time.Now(),
	}
	s.coupons.insert(coupon)

	s.logger.Info("Coupon created",
		zap.String("coupon_id", coupon.ID),
		zap.String("code", coupon.Code),
	)
	s.invalidate()
	return &coupon, nil
}

// UpdateCoupon merges the provided fields over the existing record,
// re-validating any changed target reference.
func (s *Store) UpdateCoupon(ctx context.Context, id string, in CouponUpdate) (*domain.Coupon, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}
	var expiry time.Time
	if in.ExpiryDate != nil {
		parsed, err := parseExpiryDate(*in.ExpiryDate)
		if err != nil {
			return nil, err
		}
		expiry = parsed
	}

	s.categories.mu.RLock()
	defer s.categories.mu.RUnlock()
	s.subCategories.mu.RLock()
	defer s.subCategories.mu.RUnlock()
	s.products.mu.RLock()
	defer s.products.mu.RUnlock()
	s.coupons.mu.Lock()
	defer s.coupons.mu.Unlock()

	coupon, ok := s.coupons.get(id)
	if !ok {
		return nil, ErrCouponNotFound
	}

	categoryID := coupon.CategoryID
	if in.CategoryID != nil {
		categoryID = *in.CategoryID
	}
	subCategoryID := coupon.SubCategoryID
	if in.SubCategoryID != nil {
		subCategoryID = *in.SubCategoryID
	}
	productID := coupon.ProductID
	if in.ProductID != nil {
		productID = *in.ProductID
	}
	if err := s.resolveCouponTargetsLocked(categoryID, subCategoryID, productID); err != nil {
		return nil, err
	}

	if in.Code != nil {
		coupon.Code = *in.Code
	}
	if in.DiscountType != nil {
		coupon.DiscountType = domain.DiscountType(*in.DiscountType)
	}
	if in.Amount != nil {
		coupon.Amount = *in.Amount
	}
	if in.MinPurchaseAmount != nil {
		coupon.MinPurchaseAmount = *in.MinPurchaseAmount
	}
	if in.ExpiryDate != nil {
		coupon.ExpiryDate = expiry
	}
	if in.Status != nil {
		coupon.Status = domain.CouponStatus(*in.Status)
	}
	coupon.CategoryID = categoryID
	coupon.SubCategoryID = subCategoryID
	coupon.ProductID = productID
	s.coupons.replace(coupon)

	s.logger.Info("Coupon updated", zap.String("coupon_id", id))
	s.invalidate()
	return &coupon, nil
}

func (s *Store) DeleteCoupon(ctx context.Context, id string) error {
	s.coupons.mu.Lock()
	defer s.coupons.mu.Unlock()

	if !s.coupons.remove(id) {
		return ErrCouponNotFound
	}

	s.logger.Info("Coupon deleted", zap.String("coupon_id", id))
	s.invalidate()
	return nil
}

func (s *Store) GetCoupon(ctx context.Context, id string) (*domain.Coupon, error) {
	s.coupons.mu.RLock()
	defer s.coupons.mu.RUnlock()

	coupon, ok := s.coupons.get(id)
	if !ok {
		return nil, ErrCouponNotFound
	}
	return &coupon, nil
}

func (s *Store) Coupons(ctx context.Context) []domain.Coupon {
	s.coupons.mu.RLock()
	defer s.coupons.mu.RUnlock()
	return s.coupons.snapshot()
}

// resolveCouponTargetsLocked checks the optional references against the
// current snapshots. Callers hold the category, sub-category and product
// read locks.
func (s *Store) resolveCouponTargetsLocked(categoryID, subCategoryID, productID string) error {
	if categoryID != "" && !s.categories.has(categoryID) {
		return ErrCategoryNotFound
	}
	if subCategoryID != "" && !s.subCategories.has(subCategoryID) {
		return ErrSubCategoryNotFound
	}
	if productID != "" && !s.products.has(productID) {
		return ErrProductNotFound
	}
	return nil
}
