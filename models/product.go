package models

import "github.com/shopspring/decimal"

type Product struct {
	SyncRecord
	ProductName       string          `gorm:"size:191" json:"productName"`
	ProductCode       string          `gorm:"size:100" json:"productCode"`
	Unit              string          `gorm:"size:50" json:"unit"`
	Description       string          `gorm:"type:text" json:"description"`
	SaleRate          decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"saleRate"`
	BuyRate           decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"buyRate"`
	OpeningStock      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"openingStock"`
	OpeningStockRate  decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"openingStockRate"`
	MinAlertLevel     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"minAlertLevel"`
	OpeningStockValue decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"openingStockValue"`
	EnableInventory   bool            `gorm:"default:false" json:"enableInventory"`
	Warehouse         string          `gorm:"size:191" json:"warehouse"`
}
