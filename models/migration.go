package models

import "gorm.io/gorm"

// MigrateTables runs AutoMigrate for every table the server owns.
// AutoMigrate can run DDL that blocks tables; production deployments may
// skip it on startup (SKIP_MIGRATIONS) and run it as a separate job.
func MigrateTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&SubUser{},
		&Session{},

		&Associate{},
		&Product{},
		&Payment{},
		&Invoice{},
		&InvoiceItem{},
		&Purchase{},
		&PurchaseItem{},
		&PurchasePayment{},
		&PurchaseOrder{},
		&PurchaseOrderItem{},
		&PurchaseOrderPayment{},
		&Expense{},
		&CreditNote{},
		&DeliveryNote{},
		&DeliveryNoteItem{},
		&Warehouse{},
		&WarehouseItem{},
		&Inventory{},
		&PhysicalStockTake{},
		&StockTransfer{},
		&CashRegister{},
		&CommissionAgent{},
		&CommissionHistory{},
	)
}
