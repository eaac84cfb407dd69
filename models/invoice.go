package models

import "github.com/shopspring/decimal"

// Invoice and InvoiceItem sync as two parallel flat batches; the link
// between them is the client-generated invoiceId, not a DB relation.
type Invoice struct {
	SyncRecord
	InvoiceNumber string          `gorm:"size:100" json:"invoiceNumber"`
	InvoiceDate   Timestamp       `json:"invoiceDate"`
	DueDate       Timestamp       `json:"dueDate"`
	ClientId      string          `gorm:"size:64;index" json:"clientId"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"subtotal"`
	Discount      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"discount"`
	Tax           decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"tax"`
	Shipping      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"shipping"`
	Adjustment    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"adjustment"`
	Total         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total"`
	Notes         string          `gorm:"type:text" json:"notes"`
	Signature     string          `gorm:"type:text" json:"signature"`
	Attachments   JSONField       `json:"attachments"`
	Status        string          `gorm:"size:30" json:"status"`
}

type InvoiceItem struct {
	SyncRecord
	InvoiceId    string          `gorm:"size:64;index" json:"invoiceId"`
	ProductId    string          `gorm:"size:64;index" json:"productId"`
	Qty          decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"qty"`
	Rate         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"rate"`
	Discount     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"discount"`
	DiscountType string          `gorm:"size:20" json:"discountType"`
	Description  string          `gorm:"type:text" json:"description"`
}
