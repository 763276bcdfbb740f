package store

import (
	"context"
	"testing"

	"catalog-admin/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildHierarchy creates one category with a sub-category, a brand and a
// product underneath, returning all four records.
func buildHierarchy(t *testing.T, s *Store) (*domain.Category, *domain.SubCategory, *domain.Brand, *domain.Product) {
	t.Helper()
	ctx := context.Background()

	category, err := s.AddCategory(ctx, CategoryInput{Name: "Shoes"})
	require.NoError(t, err)
	subCategory, err := s.AddSubCategory(ctx, SubCategoryInput{Name: "Running", CategoryID: category.ID})
	require.NoError(t, err)
	brand, err := s.AddBrand(ctx, BrandInput{Name: "Acme", SubCategoryID: subCategory.ID})
	require.NoError(t, err)
	product, err := s.AddProduct(ctx, ProductInput{
		Name:          "Acme Racer",
		CategoryID:    category.ID,
		SubCategoryID: subCategory.ID,
		BrandID:       brand.ID,
		Price:         99.90,
		Quantity:      10,
	})
	require.NoError(t, err)

	return category, subCategory, brand, product
}

func TestDeleteCategory_CascadesTwoLevels(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	category, _, _, _ := buildHierarchy(t, s)

	// A second tree that must survive untouched.
	other, err := s.AddCategory(ctx, CategoryInput{Name: "Apparel"})
	require.NoError(t, err)
	otherSub, err := s.AddSubCategory(ctx, SubCategoryInput{Name: "Shirts", CategoryID: other.ID})
	require.NoError(t, err)
	_, err = s.AddBrand(ctx, BrandInput{Name: "Tees Co", SubCategoryID: otherSub.ID})
	require.NoError(t, err)

	require.NoError(t, s.DeleteCategory(ctx, category.ID))

	for _, sc := range s.SubCategories(ctx) {
		assert.NotEqual(t, category.ID, sc.CategoryID)
	}
	assert.Len(t, s.SubCategories(ctx), 1)
	assert.Len(t, s.Brands(ctx), 1)
	assert.Empty(t, s.Products(ctx))

	_, err = s.GetCategory(ctx, category.ID)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

// Scenario: Shoes -> Running -> Acme; deleting Shoes empties both child
// collections.
func TestDeleteCategory_ScenarioShoesRunningAcme(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	category, err := s.AddCategory(ctx, CategoryInput{Name: "Shoes"})
	require.NoError(t, err)
	subCategory, err := s.AddSubCategory(ctx, SubCategoryInput{Name: "Running", CategoryID: category.ID})
	require.NoError(t, err)
	_, err = s.AddBrand(ctx, BrandInput{Name: "Acme", SubCategoryID: subCategory.ID})
	require.NoError(t, err)

	require.NoError(t, s.DeleteCategory(ctx, category.ID))

	assert.Empty(t, s.SubCategories(ctx))
	assert.Empty(t, s.Brands(ctx))
}

func TestDeleteCategory_ManySubCategoriesAndBrands(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	category, err := s.AddCategory(ctx, CategoryInput{Name: "Shoes"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		subCategory, err := s.AddSubCategory(ctx, SubCategoryInput{Name: "Sub", CategoryID: category.ID})
		require.NoError(t, err)
		for j := 0; j < 2; j++ {
			_, err = s.AddBrand(ctx, BrandInput{Name: "Brand", SubCategoryID: subCategory.ID})
			require.NoError(t, err)
		}
	}
	require.Len(t, s.SubCategories(ctx), 3)
	require.Len(t, s.Brands(ctx), 6)

	require.NoError(t, s.DeleteCategory(ctx, category.ID))

	assert.Empty(t, s.SubCategories(ctx))
	assert.Empty(t, s.Brands(ctx))
}

func TestDeleteSubCategory_CascadesBrandsAndProducts(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	category, subCategory, _, _ := buildHierarchy(t, s)

	require.NoError(t, s.DeleteSubCategory(ctx, subCategory.ID))

	assert.Empty(t, s.Brands(ctx))
	assert.Empty(t, s.Products(ctx))

	// Parent category is untouched.
	_, err := s.GetCategory(ctx, category.ID)
	assert.NoError(t, err)
}

func TestDeleteBrand_CascadesProducts(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	_, subCategory, brand, _ := buildHierarchy(t, s)

	require.NoError(t, s.DeleteBrand(ctx, brand.ID))

	assert.Empty(t, s.Products(ctx))
	_, err := s.GetSubCategory(ctx, subCategory.ID)
	assert.NoError(t, err)
}

// Referential integrity: after any cascade, every surviving record's parent
// ids still resolve.
func TestCascade_NoDanglingReferencesSurvive(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	buildHierarchy(t, s)
	category2, _, _, _ := buildHierarchy(t, s)

	require.NoError(t, s.DeleteCategory(ctx, category2.ID))

	categories := make(map[string]bool)
	for _, c := range s.Categories(ctx) {
		categories[c.ID] = true
	}
	subCategories := make(map[string]bool)
	for _, sc := range s.SubCategories(ctx) {
		assert.True(t, categories[sc.CategoryID])
		subCategories[sc.ID] = true
	}
	brands := make(map[string]bool)
	for _, b := range s.Brands(ctx) {
		assert.True(t, subCategories[b.SubCategoryID])
		brands[b.ID] = true
	}
	for _, p := range s.Products(ctx) {
		assert.True(t, categories[p.CategoryID])
		assert.True(t, subCategories[p.SubCategoryID])
		assert.True(t, brands[p.BrandID])
	}
}

func TestDeleteCategory_DetachesCouponReferences(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	category, subCategory, _, product := buildHierarchy(t, s)

	coupon, err := s.AddCoupon(ctx, CouponInput{
		Code:          "SAVE10",
		DiscountType:  "percentage",
		Amount:        10,
		ExpiryDate:    "2030-01-01",
		Status:        "active",
		CategoryID:    category.ID,
		SubCategoryID: subCategory.ID,
		ProductID:     product.ID,
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteCategory(ctx, category.ID))

	detached, err := s.GetCoupon(ctx, coupon.ID)
	require.NoError(t, err, "coupon record itself survives the cascade")
	assert.Empty(t, detached.CategoryID)
	assert.Empty(t, detached.SubCategoryID)
	assert.Empty(t, detached.ProductID)
	assert.Equal(t, "SAVE10", detached.Code)
}

func TestDeleteProduct_DetachesCouponReference(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	_, _, _, product := buildHierarchy(t, s)

	coupon, err := s.AddCoupon(ctx, CouponInput{
		Code:         "LAUNCH",
		DiscountType: "fixed",
		Amount:       5,
		ExpiryDate:   "2030-01-01",
		Status:       "active",
		ProductID:    product.ID,
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteProduct(ctx, product.ID))

	detached, err := s.GetCoupon(ctx, coupon.ID)
	require.NoError(t, err)
	assert.Empty(t, detached.ProductID)
}
