package models

import "github.com/shopspring/decimal"

type DeliveryNote struct {
	SyncRecord
	DeliveryNoteNumber string          `gorm:"size:100" json:"deliveryNoteNumber"`
	DeliveryNoteDate   Timestamp       `json:"deliveryNoteDate"`
	DueDate            Timestamp       `json:"dueDate"`
	ClientId           string          `gorm:"size:64;index" json:"clientId"`
	Ref                string          `gorm:"size:100" json:"ref"`
	Subtotal           decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"subtotal"`
	Discount           decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"discount"`
	Tax                decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"tax"`
	Shipping           decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"shipping"`
	Adjustment         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"adjustment"`
	Total              decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total"`
	Notes              string          `gorm:"type:text" json:"notes"`
	HeadNote           string          `gorm:"type:text" json:"headNote"`
	FootNote           string          `gorm:"type:text" json:"footNote"`
	PleaseNote         string          `gorm:"type:text" json:"pleaseNote"`
	Signature          string          `gorm:"type:text" json:"signature"`
	FormState          JSONField       `json:"formState"`
	Attachments        JSONField       `json:"attachments"`
	Status             string          `gorm:"size:30" json:"status"`
}

type DeliveryNoteItem struct {
	SyncRecord
	DeliveryNoteId string          `gorm:"size:64;index" json:"deliveryNoteId"`
	ProductId      string          `gorm:"size:64;index" json:"productId"`
	Qty            decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"qty"`
	Rate           decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"rate"`
	Discount       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"discount"`
	DiscountType   string          `gorm:"size:20" json:"discountType"`
	Description    string          `gorm:"type:text" json:"description"`
}
