package models

import "github.com/shopspring/decimal"

type PurchaseOrder struct {
	SyncRecord
	PurchaseOrderNumber string          `gorm:"size:100" json:"purchaseOrderNumber"`
	PurchaseOrderRef    string          `gorm:"size:100" json:"purchaseOrderRef"`
	PurchaseOrderDate   Timestamp       `json:"purchaseOrderDate"`
	DueDate             Timestamp       `json:"dueDate"`
	PurchaseOrderNote   string          `gorm:"type:text" json:"purchaseOrderNote"`
	SupplierId          string          `gorm:"size:64;index" json:"supplierId"`
	Subtotal            decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"subtotal"`
	Discount            decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"discount"`
	DiscountType        string          `gorm:"size:20" json:"discountType"`
	DiscountValue       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"discountValue"`
	Tax                 decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"tax"`
	TaxType             string          `gorm:"size:20" json:"taxType"`
	TaxValue            decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"taxValue"`
	TaxEnabled          bool            `gorm:"default:false" json:"taxEnabled"`
	Shipping            decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"shipping"`
	Adjustment          decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"adjustment"`
	AdjustmentType      string          `gorm:"size:20" json:"adjustmentType"`
	AdjustedTotal       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"adjustedTotal"`
	GrandTotal          decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"grandTotal"`
	Notes               string          `gorm:"type:text" json:"notes"`
	Signature           string          `gorm:"type:text" json:"signature"`
	FormState           JSONField       `json:"formState"`
	Status              string          `gorm:"size:30" json:"status"`
}

type PurchaseOrderItem struct {
	SyncRecord
	PurchaseOrderId   string          `gorm:"size:64;index" json:"purchaseOrderId"`
	ProductId         string          `gorm:"size:64;index" json:"productId"`
	ProductName       string          `gorm:"size:191" json:"productName"`
	Category          string          `gorm:"size:100" json:"category"`
	ProductCode       string          `gorm:"size:100" json:"productCode"`
	Unit              string          `gorm:"size:50" json:"unit"`
	Barcode           string          `gorm:"size:100" json:"barcode"`
	WarehouseId       string          `gorm:"size:64" json:"warehouseId"`
	WarehouseName     string          `gorm:"size:191" json:"warehouseName"`
	WarehouseLocation string          `gorm:"size:191" json:"warehouseLocation"`
	Qty               decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"qty"`
	Rate              decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"rate"`
	Discount          decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"discount"`
	DiscountType      string          `gorm:"size:20" json:"discountType"`
	Description       string          `gorm:"type:text" json:"description"`
}

type PurchaseOrderPayment struct {
	SyncRecord
	PurchaseOrderId string          `gorm:"size:64;index" json:"purchaseOrderId"`
	Amount          decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"amount"`
	Method          string          `gorm:"size:50" json:"method"`
	Date            Timestamp       `json:"date"`
	Note            string          `gorm:"type:text" json:"note"`
}
