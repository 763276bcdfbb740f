package transport

import (
	"fmt"
	"net/http"
	"strings"

	"catalog-admin/internal/middleware"
	"catalog-admin/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProductHandler serves products and variant types. Product endpoints take
// multipart forms with up to five positional image uploads (image1..image5),
// mirroring the admin panel's add-product form.
type ProductHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewProductHandler(s *store.Store, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{store: s, logger: logger}
}

// VariantTypeRequest is the JSON payload for creating a variant type.
type VariantTypeRequest struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required"`
}

// VariantTypeUpdateRequest is the JSON payload for partial updates.
type VariantTypeUpdateRequest struct {
	Name *string `json:"name"`
	Type *string `json:"type"`
}

// RegisterRoutes registers product and variant type routes.
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Post("/", h.CreateProduct)
		r.Put("/{id}", h.UpdateProduct)
		r.Delete("/{id}", h.DeleteProduct)
	})
	r.Route("/api/variant-types", func(r chi.Router) {
		r.Get("/", h.ListVariantTypes)
		r.Post("/", h.CreateVariantType)
		r.Put("/{id}", h.UpdateVariantType)
		r.Delete("/{id}", h.DeleteVariantType)
	})
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.store.Products(r.Context()))
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	images, err := productImages(r)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid image upload")
		return
	}

	price, err := parseFloatField(r.FormValue("price"), "price")
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	offerPrice, err := parseFloatField(r.FormValue("offer_price"), "offer_price")
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	quantity, err := parseIntField(r.FormValue("quantity"), "quantity")
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.store.AddProduct(r.Context(), store.ProductInput{
		Name:          r.FormValue("name"),
		Description:   r.FormValue("description"),
		CategoryID:    r.FormValue("category_id"),
		SubCategoryID: r.FormValue("sub_category_id"),
		BrandID:       r.FormValue("brand_id"),
		Price:         price,
		OfferPrice:    offerPrice,
		Quantity:      quantity,
		VariantType:   r.FormValue("variant_type"),
		VariantItems:  splitVariantItems(r.FormValue("variant_items")),
		Images:        images,
	})
	if err != nil {
		h.logger.Debug("Product create failed", zap.Error(err))
		respondStoreError(w, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	images, err := productImages(r)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid image upload")
		return
	}

	update := store.ProductUpdate{
		Name:          formValue(r, "name"),
		Description:   formValue(r, "description"),
		CategoryID:    formValue(r, "category_id"),
		SubCategoryID: formValue(r, "sub_category_id"),
		BrandID:       formValue(r, "brand_id"),
		VariantType:   formValue(r, "variant_type"),
		Images:        images,
	}
	if raw := formValue(r, "price"); raw != nil {
		price, err := parseFloatField(*raw, "price")
		if err != nil {
			middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		update.Price = &price
	}
	if raw := formValue(r, "offer_price"); raw != nil {
		offerPrice, err := parseFloatField(*raw, "offer_price")
		if err != nil {
			middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		update.OfferPrice = &offerPrice
	}
	if raw := formValue(r, "quantity"); raw != nil {
		quantity, err := parseIntField(*raw, "quantity")
		if err != nil {
			middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		update.Quantity = &quantity
	}
	if raw := formValue(r, "variant_items"); raw != nil {
		update.VariantItems = splitVariantItems(*raw)
	}

	product, err := h.store.UpdateProduct(r.Context(), chi.URLParam(r, "id"), update)
	if err != nil {
		h.logger.Debug("Product update failed", zap.Error(err))
		respondStoreError(w, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondStoreError(w, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "product deleted"})
}

func (h *ProductHandler) ListVariantTypes(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.store.VariantTypes(r.Context()))
}

func (h *ProductHandler) CreateVariantType(w http.ResponseWriter, r *http.Request) {
	var req VariantTypeRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if fields := middleware.FormatValidationErrors(err); len(fields) > 0 {
			middleware.RespondWithValidationErrors(w, fields)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	variantType, err := h.store.AddVariantType(r.Context(), store.VariantTypeInput{
		Name: req.Name,
		Type: req.Type,
	})
	if err != nil {
		respondStoreError(w, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusCreated, variantType)
}

func (h *ProductHandler) UpdateVariantType(w http.ResponseWriter, r *http.Request) {
	var req VariantTypeUpdateRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	variantType, err := h.store.UpdateVariantType(r.Context(), chi.URLParam(r, "id"), store.VariantTypeUpdate{
		Name: req.Name,
		Type: req.Type,
	})
	if err != nil {
		respondStoreError(w, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, variantType)
}

func (h *ProductHandler) DeleteVariantType(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteVariantType(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondStoreError(w, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "variant type deleted"})
}

// productImages reads the five positional upload slots. Slots without a
// file come back empty so the store can apply placeholder/keep semantics.
func productImages(r *http.Request) ([][]byte, error) {
	images := make([][]byte, 5)
	for i := 0; i < 5; i++ {
		data, err := fileBytes(r, fmt.Sprintf("image%d", i+1))
		if err != nil {
			return nil, err
		}
		images[i] = data
	}
	return images, nil
}

// splitVariantItems parses the comma-separated variant_items form value. An
// empty value yields an empty non-nil slice, so a submitted-but-blank field
// clears the stored items instead of keeping them.
func splitVariantItems(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
