package permissions

// The predefined role tables are complete flat enumerations. There is
// no inheritance between roles; every cell is stated.

func fullPermissions() PermissionSet {
	return PermissionSet{
		ResourceInvoices:          {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: true, ActionExport: true},
		ResourceProducts:          {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: true, ActionExport: true, ActionImport: true},
		ResourcePayments:          {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: true, ActionExport: true},
		ResourcePurchases:         {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: true, ActionExport: true},
		ResourcePurchaseOrders:    {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: true, ActionExport: true},
		ResourceExpenses:          {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: true, ActionExport: true},
		ResourceDeliveryNotes:     {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: true, ActionExport: true},
		ResourceCreditNotes:       {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: true, ActionExport: true},
		ResourceAssociates:        {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: true, ActionExport: true},
		ResourceCommissionAgents:  {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: true, ActionExport: true},
		ResourceCommissionHistory: {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: true, ActionExport: true},
		ResourceInventory:         {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: true, ActionExport: true},
		ResourceWarehouses:        {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: true, ActionExport: true},
		ResourceStockTransfers:    {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: true, ActionExport: true},
		ResourcePhysicalStockTake: {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: true, ActionExport: true},
		ResourceCashRegisters:     {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: true, ActionExport: true},
		ResourceSubUsers:          {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: true},
		ResourceReports:           {ActionRead: true, ActionExport: true},
		ResourceSettings:          {ActionRead: true, ActionUpdate: true},
	}
}

func managerPermissions() PermissionSet {
	return PermissionSet{
		ResourceInvoices:          {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: false, ActionExport: true},
		ResourceProducts:          {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: false, ActionExport: true, ActionImport: true},
		ResourcePayments:          {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: false, ActionExport: true},
		ResourcePurchases:         {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: false, ActionExport: true},
		ResourcePurchaseOrders:    {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: false, ActionExport: true},
		ResourceExpenses:          {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: false, ActionExport: true},
		ResourceDeliveryNotes:     {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: false, ActionExport: true},
		ResourceCreditNotes:       {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: false, ActionExport: true},
		ResourceAssociates:        {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: false, ActionExport: true},
		ResourceCommissionAgents:  {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: false, ActionExport: true},
		ResourceCommissionHistory: {ActionCreate: false, ActionRead: true, ActionUpdate: false, ActionDelete: false, ActionExport: true},
		ResourceInventory:         {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: false, ActionExport: true},
		ResourceWarehouses:        {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: false, ActionExport: true},
		ResourceStockTransfers:    {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: false, ActionExport: true},
		ResourcePhysicalStockTake: {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: false, ActionExport: true},
		ResourceCashRegisters:     {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: false, ActionExport: true},
		ResourceSubUsers:          {ActionCreate: false, ActionRead: true, ActionUpdate: false, ActionDelete: false},
		ResourceReports:           {ActionRead: true, ActionExport: true},
		ResourceSettings:          {ActionRead: true, ActionUpdate: false},
	}
}

func accountantPermissions() PermissionSet {
	return PermissionSet{
		ResourceInvoices:          {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: false, ActionExport: true},
		ResourceProducts:          {ActionCreate: false, ActionRead: true, ActionUpdate: false, ActionDelete: false, ActionExport: true, ActionImport: false},
		ResourcePayments:          {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: false, ActionExport: true},
		ResourcePurchases:         {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: false, ActionExport: true},
		ResourcePurchaseOrders:    {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: false, ActionExport: true},
		ResourceExpenses:          {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: false, ActionExport: true},
		ResourceDeliveryNotes:     {ActionCreate: false, ActionRead: true, ActionUpdate: false, ActionDelete: false, ActionExport: true},
		ResourceCreditNotes:       {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: false, ActionExport: true},
		ResourceAssociates:        {ActionCreate: false, ActionRead: true, ActionUpdate: false, ActionDelete: false, ActionExport: true},
		ResourceCommissionAgents:  {ActionCreate: false, ActionRead: true, ActionUpdate: false, ActionDelete: false, ActionExport: true},
		ResourceCommissionHistory: {ActionCreate: false, ActionRead: true, ActionUpdate: false, ActionDelete: false, ActionExport: true},
		ResourceInventory:         {ActionCreate: false, ActionRead: true, ActionUpdate: false, ActionDelete: false, ActionExport: true},
		ResourceWarehouses:        {ActionCreate: false, ActionRead: true, ActionUpdate: false, ActionDelete: false, ActionExport: true},
		ResourceStockTransfers:    {ActionCreate: false, ActionRead: true, ActionUpdate: false, ActionDelete: false, ActionExport: true},
		ResourcePhysicalStockTake: {ActionCreate: false, ActionRead: true, ActionUpdate: false, ActionDelete: false, ActionExport: true},
		ResourceCashRegisters:     {ActionCreate: true, ActionRead: true, ActionUpdate: true, ActionDelete: false, ActionExport: true},
		ResourceSubUsers:          {ActionCreate: false, ActionRead: false, ActionUpdate: false, ActionDelete: false},
		ResourceReports:           {ActionRead: true, ActionExport: true},
		ResourceSettings:          {ActionRead: true, ActionUpdate: false},
	}
}

func viewerPermissions() PermissionSet {
	return PermissionSet{
		ResourceInvoices:          {ActionCreate: false, ActionRead: true, ActionUpdate: false, ActionDelete: false, ActionExport: true},
		ResourceProducts:          {ActionCreate: false, ActionRead: true, ActionUpdate: false, ActionDelete: false, ActionExport: true, ActionImport: false},
		ResourcePayments:          {ActionCreate: false, ActionRead: true, ActionUpdate: false, ActionDelete: false, ActionExport: true},
		ResourcePurchases:         {ActionCreate: false, ActionRead: true, ActionUpdate: false, ActionDelete: false, ActionExport: true},
		ResourcePurchaseOrders:    {ActionCreate: false, ActionRead: true, ActionUpdate: false, ActionDelete: false, ActionExport: true},
		ResourceExpenses:          {ActionCreate: false, ActionRead: true, ActionUpdate: false, ActionDelete: false, ActionExport: true},
		ResourceDeliveryNotes:     {ActionCreate: false, ActionRead: true, ActionUpdate: false, ActionDelete: false, ActionExport: true},
		ResourceCreditNotes:       {ActionCreate: false, ActionRead: true, ActionUpdate: false, ActionDelete: false, ActionExport: true},
		ResourceAssociates:        {ActionCreate: false, ActionRead: true, ActionUpdate: false, ActionDelete: false, ActionExport: false},
		ResourceCommissionAgents:  {ActionCreate: false, ActionRead: true, ActionUpdate: false, ActionDelete: false, ActionExport: false},
		ResourceCommissionHistory: {ActionCreate: false, ActionRead: true, ActionUpdate: false, ActionDelete: false, ActionExport: false},
		ResourceInventory:         {ActionCreate: false, ActionRead: true, ActionUpdate: false, ActionDelete: false, ActionExport: false},
		ResourceWarehouses:        {ActionCreate: false, ActionRead: true, ActionUpdate: false, ActionDelete: false, ActionExport: false},
		ResourceStockTransfers:    {ActionCreate: false, ActionRead: true, ActionUpdate: false, ActionDelete: false, ActionExport: false},
		ResourcePhysicalStockTake: {ActionCreate: false, ActionRead: true, ActionUpdate: false, ActionDelete: false, ActionExport: false},
		ResourceCashRegisters:     {ActionCreate: false, ActionRead: true, ActionUpdate: false, ActionDelete: false, ActionExport: false},
		ResourceSubUsers:          {ActionCreate: false, ActionRead: false, ActionUpdate: false, ActionDelete: false},
		ResourceReports:           {ActionRead: true, ActionExport: false},
		ResourceSettings:          {ActionRead: true, ActionUpdate: false},
	}
}

// RoleTables exposes the predefined tables for the sub-user meta
// endpoint. Each call returns fresh copies.
func RoleTables() map[string]PermissionSet {
	return map[string]PermissionSet{
		RoleAdmin:      fullPermissions(),
		RoleManager:    managerPermissions(),
		RoleAccountant: accountantPermissions(),
		RoleViewer:     viewerPermissions(),
	}
}
