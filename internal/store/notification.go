package store

import (
	"context"
	"time"

	"catalog-admin/internal/domain"

	"go.uber.org/zap"
)

// NotificationInput carries the caller-supplied fields for a notification.
// ImageURL is an optional external reference, not an upload.
type NotificationInput struct {
	Title       string `validate:"required"`
	Description string `validate:"required"`
	ImageURL    string `validate:"-"`
}

// NotificationUpdate carries partial-update fields; nil means "keep" and an
// explicit empty ImageURL clears the reference.
type NotificationUpdate struct {
	Title       *string `validate:"omitempty,min=1"`
	Description *string `validate:"omitempty,min=1"`
	ImageURL    *string `validate:"-"`
}

func (s *Store) AddNotification(ctx context.Context, in NotificationInput) (*domain.Notification, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	notification := domain.Notification{
		ID:          newID(),
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		CreatedAt:   time.Now(),
	}

	s.notifications.mu.Lock()
	s.notifications.insert(notification)
	s.notifications.mu.Unlock()

	s.logger.Info("Notification created", zap.String("notification_id", notification.ID))
	s.invalidate()
	return &notification, nil
}

func (s *Store) UpdateNotification(ctx context.Context, id string, in NotificationUpdate) (*domain.Notification, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	s.notifications.mu.Lock()
	defer s.notifications.mu.Unlock()

	notification, ok := s.notifications.get(id)
	if !ok {
		return nil, ErrNotificationNotFound
	}

	if in.Title != nil {
		notification.Title = *in.Title
	}
	if in.Description != nil {
		notification.Description = *in.Description
	}
	if in.ImageURL != nil {
		notification.ImageURL = *in.ImageURL
	}
	s.notifications.replace(notification)

	s.logger.Info("Notification updated", zap.String("notification_id", id))
	s.invalidate()
	return &notification, nil
}

func (s *Store) DeleteNotification(ctx context.Context, id string) error {
	s.notifications.mu.Lock()
	defer s.notifications.mu.Unlock()

	if !s.notifications.remove(id) {
		return ErrNotificationNotFound
	}

	s.logger.Info("Notification deleted", zap.String("notification_id", id))
	s.invalidate()
	return nil
}

func (s *Store) GetNotification(ctx context.Context, id string) (*domain.Notification, error) {
	s.notifications.mu.RLock()
	defer s.notifications.mu.RUnlock()

	notification, ok := s.notifications.get(id)
	if !ok {
		return nil, ErrNotificationNotFound
	}
	return &notification, nil
}

func (s *Store) Notifications(ctx context.Context) []domain.Notification {
	s.notifications.mu.RLock()
	defer s.notifications.mu.RUnlock()
	return s.notifications.snapshot()
}
