package transport

import (
	"context"
	"net/http"
	"testing"

	"catalog-admin/internal/assets"
	"catalog-admin/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCoupon_JSON(t *testing.T) {
	env := newTestEnv(t)

	req := jsonRequest(t, http.MethodPost, "/api/coupons", CouponRequest{
		Code:              "WELCOME",
		DiscountType:      "percentage",
		Amount:            15,
		MinPurchaseAmount: 50,
		ExpiryDate:        "2030-06-30",
		Status:            "active",
	})
	w := env.do(t, req)

	require.Equal(t, http.StatusCreated, w.Code)
	coupon := decodeBody[domain.Coupon](t, w)
	assert.Equal(t, "WELCOME", coupon.Code)
	assert.Equal(t, domain.DiscountPercentage, coupon.DiscountType)
	assert.Equal(t, 2030, coupon.ExpiryDate.Year())
}

func TestCreateCoupon_BadDiscountTypeIsRejected(t *testing.T) {
	env := newTestEnv(t)

	req := jsonRequest(t, http.MethodPost, "/api/coupons", CouponRequest{
		Code:         "WELCOME",
		DiscountType: "bogus",
		ExpiryDate:   "2030-06-30",
		Status:       "active",
	})
	w := env.do(t, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "DiscountType")
	assert.Empty(t, env.store.Coupons(context.Background()))
}

func TestCreateCoupon_UnknownTargetIs404(t *testing.T) {
	env := newTestEnv(t)

	req := jsonRequest(t, http.MethodPost, "/api/coupons", CouponRequest{
		Code:         "TARGETED",
		DiscountType: "fixed",
		Amount:       5,
		ExpiryDate:   "2030-06-30",
		Status:       "active",
		ProductID:    "missing",
	})
	w := env.do(t, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateCoupon_PartialOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	created := env.do(t, jsonRequest(t, http.MethodPost, "/api/coupons", CouponRequest{
		Code:         "SAVE10",
		DiscountType: "fixed",
		Amount:       10,
		ExpiryDate:   "2030-01-01",
		Status:       "active",
	}))
	require.Equal(t, http.StatusCreated, created.Code)
	coupon := decodeBody[domain.Coupon](t, created)

	status := "inactive"
	w := env.do(t, jsonRequest(t, http.MethodPut, "/api/coupons/"+coupon.ID, CouponUpdateRequest{
		Status: &status,
	}))

	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody[domain.Coupon](t, w)
	assert.Equal(t, domain.CouponInactive, updated.Status)
	assert.Equal(t, "SAVE10", updated.Code)
}

func TestCreatePoster_Multipart(t *testing.T) {
	env := newTestEnv(t)

	req := multipartRequest(t, http.MethodPost, "/api/posters",
		map[string]string{"name": "Summer Sale"}, nil)
	w := env.do(t, req)

	require.Equal(t, http.StatusCreated, w.Code)
	poster := decodeBody[domain.Poster](t, w)
	assert.Equal(t, "Summer Sale", poster.Name)
	assert.Equal(t, assets.Placeholder, poster.Image)
}

func TestCreateNotification_MissingDescription(t *testing.T) {
	env := newTestEnv(t)

	req := jsonRequest(t, http.MethodPost, "/api/notifications", NotificationRequest{Title: "Sale"})
	w := env.do(t, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Description")
}

func TestDeleteCoupon_NotFound(t *testing.T) {
	env := newTestEnv(t)

	req := jsonRequest(t, http.MethodDelete, "/api/coupons/missing", nil)
	w := env.do(t, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
