package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNotification_RequiresTitleAndDescription(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	_, err := s.AddNotification(ctx, NotificationInput{Title: "Sale"})
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	_, err = s.AddNotification(ctx, NotificationInput{Description: "Everything 20% off"})
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	assert.Empty(t, s.Notifications(ctx))
}

func TestNotification_CRUD(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	notification, err := s.AddNotification(ctx, NotificationInput{
		Title:       "Sale",
		Description: "Everything 20% off",
		ImageURL:    "https://cdn.example.com/sale.png",
	})
	require.NoError(t, err)

	updated, err := s.UpdateNotification(ctx, notification.ID, NotificationUpdate{
		Title: strPtr("Flash Sale"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Flash Sale", updated.Title)
	assert.Equal(t, notification.Description, updated.Description)
	assert.Equal(t, notification.ImageURL, updated.ImageURL)

	// Explicit empty string clears the optional image reference.
	cleared, err := s.UpdateNotification(ctx, notification.ID, NotificationUpdate{
		ImageURL: strPtr(""),
	})
	require.NoError(t, err)
	assert.Empty(t, cleared.ImageURL)

	require.NoError(t, s.DeleteNotification(ctx, notification.ID))
	assert.ErrorIs(t, s.DeleteNotification(ctx, notification.ID), ErrNotificationNotFound)
}
