package transport

import (
	"net/http"

	"catalog-admin/internal/middleware"
	"catalog-admin/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// MarketingHandler serves the promotional entities: coupons, posters and
// notifications. Posters take multipart forms for their image; the rest are
// JSON.
type MarketingHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewMarketingHandler(s *store.Store, logger *zap.Logger) *MarketingHandler {
	return &MarketingHandler{store: s, logger: logger}
}

// CouponRequest is the JSON payload for creating a coupon.
type CouponRequest struct {
	Code              string  `json:"code" validate:"required"`
	DiscountType      string  `json:"discount_type" validate:"required,oneof=fixed percentage"`
	Amount            float64 `json:"amount" validate:"gte=0"`
	MinPurchaseAmount float64 `json:"min_purchase_amount" validate:"gte=0"`
	ExpiryDate        string  `json:"expiry_date" validate:"required"`
	Status            string  `json:"status" validate:"required,oneof=active inactive"`
	CategoryID        string  `json:"category_id"`
	SubCategoryID     string  `json:"sub_category_id"`
	ProductID         string  `json:"product_id"`
}

// CouponUpdateRequest is the JSON payload for partial updates.
type CouponUpdateRequest struct {
	Code              *string  `json:"code"`
	DiscountType      *string  `json:"discount_type"`
	Amount            *float64 `json:"amount"`
	MinPurchaseAmount *float64 `json:"min_purchase_amount"`
	ExpiryDate        *string  `json:"expiry_date"`
	Status            *string  `json:"status"`
	CategoryID        *string  `json:"category_id"`
	SubCategoryID     *string  `json:"sub_category_id"`
	ProductID         *string  `json:"product_id"`
}

// NotificationRequest is the JSON payload for creating a notification.
type NotificationRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	ImageURL    string `json:"image_url"`
}

// NotificationUpdateRequest is the JSON payload for partial updates.
type NotificationUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}

// RegisterRoutes registers coupon, poster and notification routes.
func (h *MarketingHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/coupons", func(r chi.Router) {
		r.Get("/", h.ListCoupons)
		r.Post("/", h.CreateCoupon)
		r.Put("/{id}", h.UpdateCoupon)
		r.Delete("/{id}", h.DeleteCoupon)
	})
	r.Route("/api/posters", func(r chi.Router) {
		r.Get("/", h.ListPosters)
		r.Post("/", h.CreatePoster)
		r.Put("/{id}", h.UpdatePoster)
		r.Delete("/{id}", h.DeletePoster)
	})
	r.Route("/api/notifications", func(r chi.Router) {
		r.Get("/", h.ListNotifications)
		r.Post("/", h.CreateNotification)
		r.Put("/{id}", h.UpdateNotification)
		r.Delete("/{id}", h.DeleteNotification)
	})
}

func (h *MarketingHandler) ListCoupons(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.store.Coupons(r.Context()))
}

func (h *MarketingHandler) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	var req CouponRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if fields := middleware.FormatValidationErrors(err); len(fields) > 0 {
			middleware.RespondWithValidationErrors(w, fields)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	coupon, err := h.store.AddCoupon(r.Context(), store.CouponInput{
		Code:              req.Code,
		DiscountType:      req.DiscountType,
		Amount:            req.Amount,
		MinPurchaseAmount: req.MinPurchaseAmount,
		ExpiryDate:        req.ExpiryDate,
		Status:            req.Status,
		CategoryID:        req.CategoryID,
		SubCategoryID:     req.SubCategoryID,
		ProductID:         req.ProductID,
	})
	if err != nil {
		h.logger.Debug("Coupon create failed", zap.Error(err))
		respondStoreError(w, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusCreated, coupon)
}

func (h *MarketingHandler) UpdateCoupon(w http.ResponseWriter, r *http.Request) {
	var req CouponUpdateRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	coupon, err := h.store.UpdateCoupon(r.Context(), chi.URLParam(r, "id"), store.CouponUpdate{
		Code:              req.Code,
		DiscountType:      req.DiscountType,
		Amount:            req.Amount,
		MinPurchaseAmount: req.MinPurchaseAmount,
		ExpiryDate:        req.ExpiryDate,
		Status:            req.Status,
		CategoryID:        req.CategoryID,
		SubCategoryID:     req.SubCategoryID,
		ProductID:         req.ProductID,
	})
	if err != nil {
		h.logger.Debug("Coupon update failed", zap.Error(err))
		respondStoreError(w, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, coupon)
}

func (h *MarketingHandler) DeleteCoupon(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteCoupon(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondStoreError(w, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "coupon deleted"})
}

func (h *MarketingHandler) ListPosters(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.store.Posters(r.Context()))
}

func (h *MarketingHandler) CreatePoster(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	image, err := fileBytes(r, "image")
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid image upload")
		return
	}

	poster, err := h.store.AddPoster(r.Context(), store.PosterInput{
		Name:  r.FormValue("name"),
		Image: image,
	})
	if err != nil {
		h.logger.Debug("Poster create failed", zap.Error(err))
		respondStoreError(w, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusCreated, poster)
}

func (h *MarketingHandler) UpdatePoster(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	image, err := fileBytes(r, "image")
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid image upload")
		return
	}

	poster, err := h.store.UpdatePoster(r.Context(), chi.URLParam(r, "id"), store.PosterUpdate{
		Name:  formValue(r, "name"),
		Image: image,
	})
	if err != nil {
		h.logger.Debug("Poster update failed", zap.Error(err))
		respondStoreError(w, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, poster)
}

func (h *MarketingHandler) DeletePoster(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeletePoster(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondStoreError(w, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "poster deleted"})
}

func (h *MarketingHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.store.Notifications(r.Context()))
}

func (h *MarketingHandler) CreateNotification(w http.ResponseWriter, r *http.Request) {
	var req NotificationRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if fields := middleware.FormatValidationErrors(err); len(fields) > 0 {
			middleware.RespondWithValidationErrors(w, fields)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	notification, err := h.store.AddNotification(r.Context(), store.NotificationInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		respondStoreError(w, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusCreated, notification)
}

func (h *MarketingHandler) UpdateNotification(w http.ResponseWriter, r *http.Request) {
	var req NotificationUpdateRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	notification, err := h.store.UpdateNotification(r.Context(), chi.URLParam(r, "id"), store.NotificationUpdate{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		respondStoreError(w, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, notification)
}

func (h *MarketingHandler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteNotification(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondStoreError(w, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "notification deleted"})
}
