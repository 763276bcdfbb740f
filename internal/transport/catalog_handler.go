package transport

import (
	"net/http"

	"catalog-admin/internal/middleware"
	"catalog-admin/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CatalogHandler serves the merchandising hierarchy: categories,
// sub-categories and brands. Category endpoints take multipart forms so the
// admin panel can upload images; the rest are JSON.
type CatalogHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewCatalogHandler(s *store.Store, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{store: s, logger: logger}
}

// SubCategoryRequest is the JSON payload for creating a sub-category.
type SubCategoryRequest struct {
	Name       string `json:"name" validate:"required"`
	CategoryID string `json:"category_id" validate:"required"`
}

// SubCategoryUpdateRequest is the JSON payload for partial updates.
type SubCategoryUpdateRequest struct {
	Name       *string `json:"name"`
	CategoryID *string `json:"category_id"`
}

// BrandRequest is the JSON payload for creating a brand.
type BrandRequest struct {
	Name          string `json:"name" validate:"required"`
	SubCategoryID string `json:"sub_category_id" validate:"required"`
}

// BrandUpdateRequest is the JSON payload for partial updates.
type BrandUpdateRequest struct {
	Name          *string `json:"name"`
	SubCategoryID *string `json:"sub_category_id"`
}

// RegisterRoutes registers the hierarchy routes.
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/categories", func(r chi.Router) {
		r.Get("/", h.ListCategories)
		r.Post("/", h.CreateCategory)
		r.Put("/{id}", h.UpdateCategory)
		r.Delete("/{id}", h.DeleteCategory)
	})
	r.Route("/api/sub-categories", func(r chi.Router) {
		r.Get("/", h.ListSubCategories)
		r.Post("/", h.CreateSubCategory)
		r.Put("/{id}", h.UpdateSubCategory)
		r.Delete("/{id}", h.DeleteSubCategory)
	})
	r.Route("/api/brands", func(r chi.Router) {
		r.Get("/", h.ListBrands)
		r.Post("/", h.CreateBrand)
		r.Put("/{id}", h.UpdateBrand)
		r.Delete("/{id}", h.DeleteBrand)
	})
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.store.Categories(r.Context()))
}

func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	image, err := fileBytes(r, "image")
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid image upload")
		return
	}

	category, err := h.store.AddCategory(r.Context(), store.CategoryInput{
		Name:  r.FormValue("name"),
		Image: image,
	})
	if err != nil {
		h.logger.Debug("Category create failed", zap.Error(err))
		respondStoreError(w, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusCreated, category)
}

func (h *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	image, err := fileBytes(r, "image")
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid image upload")
		return
	}

	category, err := h.store.UpdateCategory(r.Context(), chi.URLParam(r, "id"), store.CategoryUpdate{
		Name:  formValue(r, "name"),
		Image: image,
	})
	if err != nil {
		h.logger.Debug("Category update failed", zap.Error(err))
		respondStoreError(w, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, category)
}

func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondStoreError(w, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "category deleted"})
}

func (h *CatalogHandler) ListSubCategories(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.store.SubCategories(r.Context()))
}

func (h *CatalogHandler) CreateSubCategory(w http.ResponseWriter, r *http.Request) {
	var req SubCategoryRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if fields := middleware.FormatValidationErrors(err); len(fields) > 0 {
			middleware.RespondWithValidationErrors(w, fields)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	subCategory, err := h.store.AddSubCategory(r.Context(), store.SubCategoryInput{
		Name:       req.Name,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		h.logger.Debug("Sub category create failed", zap.Error(err))
		respondStoreError(w, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusCreated, subCategory)
}

func (h *CatalogHandler) UpdateSubCategory(w http.ResponseWriter, r *http.Request) {
	var req SubCategoryUpdateRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	subCategory, err := h.store.UpdateSubCategory(r.Context(), chi.URLParam(r, "id"), store.SubCategoryUpdate{
		Name:       req.Name,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		h.logger.Debug("Sub category update failed", zap.Error(err))
		respondStoreError(w, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, subCategory)
}

func (h *CatalogHandler) DeleteSubCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteSubCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondStoreError(w, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "sub category deleted"})
}

func (h *CatalogHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.store.Brands(r.Context()))
}

func (h *CatalogHandler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var req BrandRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if fields := middleware.FormatValidationErrors(err); len(fields) > 0 {
			middleware.RespondWithValidationErrors(w, fields)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	brand, err := h.store.AddBrand(r.Context(), store.BrandInput{
		Name:          req.Name,
		SubCategoryID: req.SubCategoryID,
	})
	if err != nil {
		h.logger.Debug("Brand create failed", zap.Error(err))
		respondStoreError(w, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusCreated, brand)
}

func (h *CatalogHandler) UpdateBrand(w http.ResponseWriter, r *http.Request) {
	var req BrandUpdateRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	brand, err := h.store.UpdateBrand(r.Context(), chi.URLParam(r, "id"), store.BrandUpdate{
		Name:          req.Name,
		SubCategoryID: req.SubCategoryID,
	})
	if err != nil {
		h.logger.Debug("Brand update failed", zap.Error(err))
		respondStoreError(w, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, brand)
}

func (h *CatalogHandler) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteBrand(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondStoreError(w, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "brand deleted"})
}
