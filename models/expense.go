package models

import "github.com/shopspring/decimal"

type Expense struct {
	SyncRecord
	ExpenseId       string          `gorm:"size:100" json:"expenseId"`
	Date            Timestamp       `json:"date"`
	ExpenseType     string          `gorm:"size:100" json:"expenseType"`
	ExpenseCategory string          `gorm:"size:100" json:"expenseCategory"`
	Note            string          `gorm:"type:text" json:"note"`
	Amount          decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"amount"`
	Extra           JSONField       `json:"extra"`
}
