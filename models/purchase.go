package models

import "github.com/shopspring/decimal"

type Purchase struct {
	SyncRecord
	PurchaseNumber string          `gorm:"size:100" json:"purchaseNumber"`
	PurchaseDate   Timestamp       `json:"purchaseDate"`
	DueDate        Timestamp       `json:"dueDate"`
	SupplierId     string          `gorm:"size:64;index" json:"supplierId"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"subtotal"`
	Discount       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"discount"`
	Tax            decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"tax"`
	Shipping       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"shipping"`
	Adjustment     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"adjustment"`
	Total          decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total"`
	Notes          string          `gorm:"type:text" json:"notes"`
	Attachments    JSONField       `json:"attachments"`
	Status         string          `gorm:"size:30" json:"status"`
}

type PurchaseItem struct {
	SyncRecord
	PurchaseId   string          `gorm:"size:64;index" json:"purchaseId"`
	ProductId    string          `gorm:"size:64;index" json:"productId"`
	Qty          decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"qty"`
	Rate         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"rate"`
	Discount     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"discount"`
	DiscountType string          `gorm:"size:20" json:"discountType"`
	Description  string          `gorm:"type:text" json:"description"`
}

type PurchasePayment struct {
	SyncRecord
	PurchaseId string          `gorm:"size:64;index" json:"purchaseId"`
	Method     string          `gorm:"size:50" json:"method"`
	Amount     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"amount"`
	Note       string          `gorm:"type:text" json:"note"`
	PaidAt     Timestamp       `json:"paidAt"`
}
