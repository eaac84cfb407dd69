package models

import "github.com/shopspring/decimal"

// Associate is a client or supplier contact. The associateType field
// distinguishes the two; some records act as both.
type Associate struct {
	SyncRecord
	OrganizationName string          `gorm:"size:191" json:"organizationName"`
	Email            string          `gorm:"size:191" json:"email"`
	Address          string          `gorm:"type:text" json:"address"`
	Contact          string          `gorm:"size:50" json:"contact"`
	OpeningBalance   decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"openingBalance"`
	ClientName       string          `gorm:"size:191" json:"clientName"`
	SupplierName     string          `gorm:"size:191" json:"supplierName"`
	ShippingAddress  string          `gorm:"type:text" json:"shippingAddress"`
	TaxId            string          `gorm:"size:100" json:"taxId"`
	BusinessDetail   string          `gorm:"type:text" json:"businessDetail"`
	AssociateType    string          `gorm:"size:30" json:"associateType"`
	UnpaidCount      int             `gorm:"default:0" json:"unpaidCount"`
	TotalCount       int             `gorm:"default:0" json:"totalCount"`
	Balance          decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"balance"`
}
