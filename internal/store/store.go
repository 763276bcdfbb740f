package store

import (
	"context"

	"catalog-admin/internal/assets"
	"catalog-admin/internal/domain"
	"catalog-admin/internal/notify"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store owns every catalog entity collection and enforces the cross-entity
// invariants on each mutation. Collections are guarded per entity type;
// operations that touch several collections acquire their locks in the
// fixed order Category -> SubCategory -> Brand -> Product -> VariantType ->
// Coupon -> Poster -> Notification.
type Store struct {
	logger   *zap.Logger
	blobs    assets.Store
	notifier notify.Notifier
	validate *validator.Validate

	categories    *table[domain.Category]
	subCategories *table[domain.SubCategory]
	brands        *table[domain.Brand]
	products      *table[domain.Product]
	variantTypes  *table[domain.VariantType]
	coupons       *table[domain.Coupon]
	posters       *table[domain.Poster]
	notifications *table[domain.Notification]
}

// New creates an empty catalog store. A nil blob store falls back to the
// in-memory backend and a nil notifier to a no-op one, so tests can pass
// only what they exercise.
func New(logger *zap.Logger, blobs assets.Store, notifier notify.Notifier) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	if blobs == nil {
		blobs = assets.NewMemoryStore()
	}
	if notifier == nil {
		notifier = notify.Nop()
	}

	return &Store{
		logger:   logger,
		blobs:    blobs,
		notifier: notifier,
		validate: validator.New(),

		categories:    newTable(func(c domain.Category) string { return c.ID }),
		subCategories: newTable(func(sc domain.SubCategory) string { return sc.ID }),
		brands:        newTable(func(b domain.Brand) string { return b.ID }),
		products:      newTable(func(p domain.Product) string { return p.ID }),
		variantTypes:  newTable(func(vt domain.VariantType) string { return vt.ID }),
		coupons:       newTable(func(c domain.Coupon) string { return c.ID }),
		posters:       newTable(func(p domain.Poster) string { return p.ID }),
		notifications: newTable(func(n domain.Notification) string { return n.ID }),
	}
}

func newID() string {
	return uuid.New().String()
}

// validateInput runs validator tags over an input struct and converts tag
// failures into the store's ValidationError type.
func (s *Store) validateInput(in any) error {
	if err := s.validate.Struct(in); err != nil {
		return validationError(err)
	}
	return nil
}

// storeImage resolves an uploaded payload to a retrievable reference. An
// empty payload yields fallback, which is the placeholder on add and the
// prior value on update.
func (s *Store) storeImage(ctx context.Context, data []byte, fallback string) (string, error) {
	if len(data) == 0 {
		return fallback, nil
	}
	id, err := s.blobs.Put(ctx, data)
	if err != nil {
		return "", err
	}
	return assets.URI(id), nil
}

// invalidate broadcasts the full stale-region set after a successful
// mutation. The signal is best effort and fire-and-forget: it runs off the
// mutating goroutine so a slow or panicking notifier can neither block the
// mutation nor fail it.
func (s *Store) invalidate() {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Warn("Change notifier panicked", zap.Any("panic", r))
			}
		}()
		s.notifier.Invalidate(notify.AllRegions...)
	}()
}
