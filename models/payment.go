package models

import "github.com/shopspring/decimal"

type Payment struct {
	SyncRecord
	InvoiceId string          `gorm:"size:64;index" json:"invoiceId"`
	Amount    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"amount"`
	Method    string          `gorm:"size:50" json:"method"`
	Date      Timestamp       `json:"date"`
	Note      string          `gorm:"type:text" json:"note"`
	Advance   bool            `gorm:"default:false" json:"advance"`
}
