package store

import (
	"context"
	"time"

	"catalog-admin/internal/domain"

	"go.uber.org/zap"
)

// VariantTypeInput carries the caller-supplied fields for a variant type.
type VariantTypeInput struct {
	Name string `validate:"required"`
	Type string `validate:"required"`
}

// VariantTypeUpdate carries partial-update fields; nil means "keep".
type VariantTypeUpdate struct {
	Name *string `validate:"omitempty,min=1"`
	Type *string `validate:"omitempty,min=1"`
}

func (s *Store) AddVariantType(ctx context.Context, in VariantTypeInput) (*domain.VariantType, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	variantType := domain.VariantType{
		ID:        newID(),
		Name:      in.Name,
		Type:      in.Type,
		CreatedAt: time.Now(),
	}

	s.variantTypes.mu.Lock()
	s.variantTypes.insert(variantType)
	s.variantTypes.mu.Unlock()

	s.logger.Info("Variant type created", zap.String("variant_type_id", variantType.ID))
	s.invalidate()
	return &variantType, nil
}

func (s *Store) UpdateVariantType(ctx context.Context, id string, in VariantTypeUpdate) (*domain.VariantType, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	s.variantTypes.mu.Lock()
	defer s.variantTypes.mu.Unlock()

	variantType, ok := s.variantTypes.get(id)
	if !ok {
		return nil, ErrVariantTypeNotFound
	}

	if in.Name != nil {
		variantType.Name = *in.Name
	}
	if in.Type != nil {
		variantType.Type = *in.Type
	}
	s.variantTypes.replace(variantType)

	s.logger.Info("Variant type updated", zap.String("variant_type_id", id))
	s.invalidate()
	return &variantType, nil
}

func (s *Store) DeleteVariantType(ctx context.Context, id string) error {
	s.variantTypes.mu.Lock()
	defer s.variantTypes.mu.Unlock()

	if !s.variantTypes.remove(id) {
		return ErrVariantTypeNotFound
	}

	s.logger.Info("Variant type deleted", zap.String("variant_type_id", id))
	s.invalidate()
	return nil
}

func (s *Store) GetVariantType(ctx context.Context, id string) (*domain.VariantType, error) {
	s.variantTypes.mu.RLock()
	defer s.variantTypes.mu.RUnlock()

	variantType, ok := s.variantTypes.get(id)
	if !ok {
		return nil, ErrVariantTypeNotFound
	}
	return &variantType, nil
}

func (s *Store) VariantTypes(ctx context.Context) []domain.VariantType {
	s.variantTypes.mu.RLock()
	defer s.variantTypes.mu.RUnlock()
	return s.variantTypes.snapshot()
}
