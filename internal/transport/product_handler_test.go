package transport

import (
	"context"
	"net/http"
	"testing"

	"catalog-admin/internal/assets"
	"catalog-admin/internal/domain"
	"catalog-admin/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedHierarchy creates a category, sub-category and brand directly on the
// store so product endpoints have valid parents to reference.
func seedHierarchy(t *testing.T, env *testEnv) (category *domain.Category, subCategory *domain.SubCategory, brand *domain.Brand) {
	t.Helper()
	ctx := context.Background()

	category, err := env.store.AddCategory(ctx, store.CategoryInput{Name: "Shoes"})
	require.NoError(t, err)
	subCategory, err = env.store.AddSubCategory(ctx, store.SubCategoryInput{Name: "Sneakers", CategoryID: category.ID})
	require.NoError(t, err)
	brand, err = env.store.AddBrand(ctx, store.BrandInput{Name: "Acme", SubCategoryID: subCategory.ID})
	require.NoError(t, err)
	return category, subCategory, brand
}

func TestCreateProduct_Multipart(t *testing.T) {
	env := newTestEnv(t)
	category, subCategory, brand := seedHierarchy(t, env)

	req := multipartRequest(t, http.MethodPost, "/api/products",
		map[string]string{
			"name":            "Runner",
			"description":     "Lightweight trainer",
			"category_id":     category.ID,
			"sub_category_id": subCategory.ID,
			"brand_id":        brand.ID,
			"price":           "99.90",
			"offer_price":     "79.90",
			"quantity":        "12",
			"variant_type":    "Size",
			"variant_items":   "40, 41, 42",
		},
		map[string][]byte{"image1": []byte("front-view")},
	)
	w := env.do(t, req)

	require.Equal(t, http.StatusCreated, w.Code)
	product := decodeBody[domain.Product](t, w)
	assert.Equal(t, "Runner", product.Name)
	assert.Equal(t, 99.90, product.Price)
	assert.Equal(t, 12, product.Quantity)
	assert.Equal(t, []string{"40", "41", "42"}, product.VariantItems)
	require.Len(t, product.Images, 5)
	assert.Contains(t, product.Images[0], "/assets/")
	assert.Equal(t, assets.Placeholder, product.Images[1])
}

func TestCreateProduct_UnparseablePrice(t *testing.T) {
	env := newTestEnv(t)
	category, subCategory, brand := seedHierarchy(t, env)

	req := multipartRequest(t, http.MethodPost, "/api/products",
		map[string]string{
			"name":            "Runner",
			"category_id":     category.ID,
			"sub_category_id": subCategory.ID,
			"brand_id":        brand.ID,
			"price":           "not-a-number",
			"offer_price":     "0",
			"quantity":        "0",
		}, nil)
	w := env.do(t, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, env.store.Products(context.Background()))
}

func TestCreateProduct_UnknownBrandIs404(t *testing.T) {
	env := newTestEnv(t)
	category, subCategory, _ := seedHierarchy(t, env)

	req := multipartRequest(t, http.MethodPost, "/api/products",
		map[string]string{
			"name":            "Runner",
			"category_id":     category.ID,
			"sub_category_id": subCategory.ID,
			"brand_id":        "missing",
			"price":           "10",
			"offer_price":     "0",
			"quantity":        "1",
		}, nil)
	w := env.do(t, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProduct_PartialOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	category, subCategory, brand := seedHierarchy(t, env)

	product, err := env.store.AddProduct(context.Background(), store.ProductInput{
		Name:          "Runner",
		CategoryID:    category.ID,
		SubCategoryID: subCategory.ID,
		BrandID:       brand.ID,
		Price:         50,
		Quantity:      3,
	})
	require.NoError(t, err)

	// Only the price field is submitted; everything else must survive.
	req := multipartRequest(t, http.MethodPut, "/api/products/"+product.ID,
		map[string]string{"price": "44.50"}, nil)
	w := env.do(t, req)

	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody[domain.Product](t, w)
	assert.Equal(t, 44.50, updated.Price)
	assert.Equal(t, "Runner", updated.Name)
	assert.Equal(t, 3, updated.Quantity)
}

func TestUpdateProduct_BlankVariantItemsFieldClears(t *testing.T) {
	env := newTestEnv(t)
	category, subCategory, brand := seedHierarchy(t, env)

	product, err := env.store.AddProduct(context.Background(), store.ProductInput{
		Name:          "Tee",
		CategoryID:    category.ID,
		SubCategoryID: subCategory.ID,
		BrandID:       brand.ID,
		VariantType:   "Size",
		VariantItems:  []string{"S", "M", "L"},
	})
	require.NoError(t, err)

	// Submitting the field blank clears the items; omitting it keeps them.
	w := env.do(t, multipartRequest(t, http.MethodPut, "/api/products/"+product.ID,
		map[string]string{"variant_items": ""}, nil))
	require.Equal(t, http.StatusOK, w.Code)
	cleared := decodeBody[domain.Product](t, w)
	assert.Empty(t, cleared.VariantItems)

	w = env.do(t, multipartRequest(t, http.MethodPut, "/api/products/"+product.ID,
		map[string]string{"name": "Tee v2"}, nil))
	require.Equal(t, http.StatusOK, w.Code)
	kept := decodeBody[domain.Product](t, w)
	assert.Empty(t, kept.VariantItems, "items stay cleared when the field is omitted")
}

func TestCreateVariantType_JSON(t *testing.T) {
	env := newTestEnv(t)

	req := jsonRequest(t, http.MethodPost, "/api/variant-types", VariantTypeRequest{
		Name: "Size",
		Type: "text",
	})
	w := env.do(t, req)

	require.Equal(t, http.StatusCreated, w.Code)
	variantType := decodeBody[domain.VariantType](t, w)
	assert.Equal(t, "Size", variantType.Name)
	assert.NotEmpty(t, variantType.ID)
}

func TestCreateVariantType_MissingTypeIsRejected(t *testing.T) {
	env := newTestEnv(t)

	req := jsonRequest(t, http.MethodPost, "/api/variant-types", VariantTypeRequest{Name: "Size"})
	w := env.do(t, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Type")
}
