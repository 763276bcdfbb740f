package domain

import "time"

// DiscountType is how a coupon's amount is applied.
type DiscountType string

const (
	DiscountFixed      DiscountType = "fixed"
	DiscountPercentage DiscountType = "percentage"
)

// CouponStatus marks whether a coupon is currently redeemable.
type CouponStatus string

const (
	CouponActive   CouponStatus = "active"
	CouponInactive CouponStatus = "inactive"
)

// Category is the root of the merchandising hierarchy.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}

// SubCategory belongs to exactly one Category. CategoryName is a snapshot
// of the parent's name taken at write time, not a live join.
type SubCategory struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	CategoryID   string    `json:"category_id"`
	CategoryName string    `json:"category_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// Brand belongs to exactly one SubCategory. SubCategoryName is a snapshot,
// same as SubCategory.CategoryName.
type Brand struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	SubCategoryID   string    `json:"sub_category_id"`
	SubCategoryName string    `json:"sub_category_name"`
	CreatedAt       time.Time `json:"created_at"`
}

// Product references all three levels of the hierarchy by id. Images always
// holds exactly five slots, placeholder-padded.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	CategoryID    string    `json:"category_id"`
	SubCategoryID string    `json:"sub_category_id"`
	BrandID       string    `json:"brand_id"`
	Price         float64   `json:"price"`
	OfferPrice    float64   `json:"offer_price"`
	Quantity      int       `json:"quantity"`
	VariantType   string    `json:"variant_type"`
	VariantItems  []string  `json:"variant_items"`
	Images        []string  `json:"images"`
	CreatedAt     time.Time `json:"created_at"`
}

// VariantType groups product variants (e.g. "Size", "Color").
type VariantType struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// Coupon optionally targets a category, sub-category or product. Empty
// reference fields mean the coupon applies storewide.
type Coupon struct {
	ID                string       `json:"id"`
	Code              string       `json:"code"`
	DiscountType      DiscountType `json:"discount_type"`
	Amount            float64      `json:"amount"`
	MinPurchaseAmount float64      `json:"min_purchase_amount"`
	ExpiryDate        time.Time    `json:"expiry_date"`
	Status            CouponStatus `json:"status"`
	CategoryID        string       `json:"category_id,omitempty"`
	SubCategoryID     string       `json:"sub_category_id,omitempty"`
	ProductID         string       `json:"product_id,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
}

// Poster is a standalone promotional banner.
type Poster struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}

// Notification is a standalone message pushed to storefront users.
type Notification struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
