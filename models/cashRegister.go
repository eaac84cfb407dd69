package models

import "github.com/shopspring/decimal"

type CashRegister struct {
	SyncRecord
	OpeningAmount decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"openingAmount"`
	OpeningTime   Timestamp       `json:"openingTime"`
	OpenedBy      string          `gorm:"size:191" json:"openedBy"`
	ClosingAmount decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"closingAmount"`
	ClosingTime   Timestamp       `json:"closingTime"`
	ClosedBy      string          `gorm:"size:191" json:"closedBy"`
}
