package models

import "github.com/shopspring/decimal"

type Inventory struct {
	SyncRecord
	ProductId        string          `gorm:"size:64;index" json:"productId"`
	WarehouseId      string          `gorm:"size:64;index" json:"warehouseId"`
	ClosingStock     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"closingStock"`
	ClosingStockRate decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"closingStockRate"`
	InventoryMode    string          `gorm:"size:50" json:"inventoryMode"`
	InventoryComment string          `gorm:"type:text" json:"inventoryComment"`
	IsTransfer       bool            `gorm:"default:false" json:"isTransfer"`
	StockTransferId  string          `gorm:"size:64" json:"stockTransferId"`
}

type PhysicalStockTake struct {
	SyncRecord
	Date          Timestamp       `json:"date"`
	ProductId     string          `gorm:"size:64;index" json:"productId"`
	CountedStock  decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"countedStock"`
	ExpectedStock decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"expectedStock"`
}

type StockTransfer struct {
	SyncRecord
	FromWarehouseId string    `gorm:"size:64;index" json:"fromWarehouseId"`
	ToWarehouseId   string    `gorm:"size:64;index" json:"toWarehouseId"`
	ItemList        JSONField `json:"itemList"`
	TransferAt      Timestamp `json:"transferAt"`
	Note            string    `gorm:"type:text" json:"note"`
}
