package models

import "github.com/shopspring/decimal"

// SegmentBuckets is the number of value groups a region is divided into
const SegmentBuckets = 4

// SegmentCategory labels a purchase-ranked bucket
type SegmentCategory string

const (
	SegmentHighValue   SegmentCategory = "High Value"
	SegmentMediumValue SegmentCategory = "Medium Value"
	SegmentLowValue    SegmentCategory = "Low Value"
)

// CategoryForBucket maps a 1-based bucket (1 = highest purchases) to its label
func CategoryForBucket(bucket int) SegmentCategory {
	switch {
	case bucket <= 1:
		return SegmentHighValue
	case bucket >= SegmentBuckets:
		return SegmentLowValue
	default:
		return SegmentMediumValue
	}
}

// RankedCustomer is a customer row together with its purchase bucket
type RankedCustomer struct {
	ID             uint            `gorm:"column:customer_id"`
	FirstName      string          `gorm:"column:first_name"`
	LastName       string          `gorm:"column:last_name"`
	State          string          `gorm:"column:state"`
	PurchaseAmount decimal.Decimal `gorm:"column:purchase_amount"`
	Bucket         int             `gorm:"column:bucket"`
}

// SegmentResult is the derived, never stored, classification of one customer
type SegmentResult struct {
	ID             uint            `json:"customer_id"`
	FullName       string          `json:"full_name"`
	State          string          `json:"state"`
	Category       SegmentCategory `json:"segment_category"`
	PurchaseAmount decimal.Decimal `json:"-"`
}

// RegionStats holds the aggregate figures for one region
type RegionStats struct {
	State           string          `json:"state"`
	Count           int64           `json:"total_customers"`
	AveragePurchase decimal.Decimal `json:"average_purchase"`
}
