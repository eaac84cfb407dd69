package models

import "github.com/shopspring/decimal"

type CommissionAgent struct {
	SyncRecord
	Name             string          `gorm:"size:191" json:"name"`
	Email            string          `gorm:"size:191" json:"email"`
	Address          string          `gorm:"type:text" json:"address"`
	ContactNo        string          `gorm:"size:50" json:"contactNo"`
	CommissionAmount decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"commissionAmount"`
}

type CommissionHistory struct {
	SyncRecord
	AgentId       string          `gorm:"size:64;index" json:"agentId"`
	InvoiceId     string          `gorm:"size:64;index" json:"invoiceId"`
	Amount        decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"amount"`
	Status        string          `gorm:"size:30" json:"status"`
	PaymentDate   Timestamp       `json:"paymentDate"`
	PaymentMethod string          `gorm:"size:50" json:"paymentMethod"`
	Notes         string          `gorm:"type:text" json:"notes"`
}
