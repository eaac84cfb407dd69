package models

import "github.com/shopspring/decimal"

type Warehouse struct {
	SyncRecord
	Name         string          `gorm:"size:191" json:"name"`
	Location     string          `gorm:"size:191" json:"location"`
	Description  string          `gorm:"type:text" json:"description"`
	Quantity     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"quantity"`
	CustomFields JSONField       `json:"customFields"`
	Code         string          `gorm:"size:100" json:"code"`
}

type WarehouseItem struct {
	SyncRecord
	WarehouseId string          `gorm:"size:64;index" json:"warehouseId"`
	ProductId   string          `gorm:"size:64;index" json:"productId"`
	Quantity    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"quantity"`
	Location    string          `gorm:"size:191" json:"location"`
	Barcode     string          `gorm:"size:100" json:"barcode"`
	Notes       string          `gorm:"type:text" json:"notes"`
}
