package models

import "github.com/shopspring/decimal"

type CreditNote struct {
	SyncRecord
	CreditNo     string          `gorm:"size:100" json:"creditNo"`
	Ref          string          `gorm:"size:100" json:"ref"`
	InvoiceNo    string          `gorm:"size:100" json:"invoiceNo"`
	Date         Timestamp       `json:"date"`
	InvoiceId    string          `gorm:"size:64;index" json:"invoiceId"`
	ClientId     string          `gorm:"size:64;index" json:"clientId"`
	CreditAmount decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"creditAmount"`
	HeadNote     string          `gorm:"type:text" json:"headNote"`
	FootNote     string          `gorm:"type:text" json:"footNote"`
	PleaseNote   string          `gorm:"type:text" json:"pleaseNote"`
	Notes        string          `gorm:"type:text" json:"notes"`
	Signature    string          `gorm:"type:text" json:"signature"`
	FormState    JSONField       `json:"formState"`
	Status       string          `gorm:"size:30;index" json:"status"`
}
