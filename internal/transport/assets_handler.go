package transport

import (
	"errors"
	"net/http"

	"catalog-admin/internal/assets"
	"catalog-admin/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AssetsHandler serves stored image blobs back to the admin panel.
type AssetsHandler struct {
	blobs  assets.Store
	logger *zap.Logger
}

func NewAssetsHandler(blobs assets.Store, logger *zap.Logger) *AssetsHandler {
	return &AssetsHandler{blobs: blobs, logger: logger}
}

func (h *AssetsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/assets/{id}", h.GetAsset)
}

func (h *AssetsHandler) GetAsset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	data, err := h.blobs.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, assets.ErrAssetNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "asset not found")
			return
		}
		h.logger.Error("Failed to load asset", zap.String("asset_id", id), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load asset")
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
