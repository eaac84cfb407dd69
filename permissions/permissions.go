// Package permissions defines the closed resource/action vocabulary and
// the predefined role tables used to authorize delegated accounts.
package permissions

import "fmt"

type Resource string

const (
	ResourceInvoices          Resource = "invoices"
	ResourceProducts          Resource = "products"
	ResourcePayments          Resource = "payments"
	ResourcePurchases         Resource = "purchases"
	ResourcePurchaseOrders    Resource = "purchaseOrders"
	ResourceExpenses          Resource = "expenses"
	ResourceDeliveryNotes     Resource = "deliveryNotes"
	ResourceCreditNotes       Resource = "creditNotes"
	ResourceAssociates        Resource = "associates"
	ResourceCommissionAgents  Resource = "commissionAgents"
	ResourceCommissionHistory Resource = "commissionHistory"
	ResourceInventory         Resource = "inventory"
	ResourceWarehouses        Resource = "warehouses"
	ResourceStockTransfers    Resource = "stockTransfers"
	ResourcePhysicalStockTake Resource = "physicalStockTake"
	ResourceCashRegisters     Resource = "cashRegisters"
	ResourceSubUsers          Resource = "subUsers"
	ResourceReports           Resource = "reports"
	ResourceSettings          Resource = "settings"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionExport Action = "export"
	ActionImport Action = "import"
)

const (
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleAccountant = "accountant"
	RoleViewer     = "viewer"
	RoleCustom     = "custom"
)

// Resources in display order; also the closed set for boundary checks.
func Resources() []Resource {
	return []Resource{
		ResourceInvoices,
		ResourceProducts,
		ResourcePayments,
		ResourcePurchases,
		ResourcePurchaseOrders,
		ResourceExpenses,
		ResourceDeliveryNotes,
		ResourceCreditNotes,
		ResourceAssociates,
		ResourceCommissionAgents,
		ResourceCommissionHistory,
		ResourceInventory,
		ResourceWarehouses,
		ResourceStockTransfers,
		ResourcePhysicalStockTake,
		ResourceCashRegisters,
		ResourceSubUsers,
		ResourceReports,
		ResourceSettings,
	}
}

func Actions() []Action {
	return []Action{ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionExport, ActionImport}
}

func Roles() []string {
	return []string{RoleAdmin, RoleManager, RoleAccountant, RoleViewer, RoleCustom}
}

func IsKnownRole(role string) bool {
	for _, r := range Roles() {
		if r == role {
			return true
		}
	}
	return false
}

type ActionSet map[Action]bool

type PermissionSet map[Resource]ActionSet

// Allows reports whether the cell is explicitly true. Missing resources
// or actions deny.
func (p PermissionSet) Allows(resource Resource, action Action) bool {
	return p[resource][action]
}

func (p PermissionSet) Clone() PermissionSet {
	out := make(PermissionSet, len(p))
	for resource, actions := range p {
		cloned := make(ActionSet, len(actions))
		for action, allowed := range actions {
			cloned[action] = allowed
		}
		out[resource] = cloned
	}
	return out
}

// ForRole returns a private copy of the predefined table for role.
// Unknown roles fall back to viewer, the most restrictive table.
func ForRole(role string) PermissionSet {
	switch role {
	case RoleAdmin:
		return fullPermissions()
	case RoleManager:
		return managerPermissions()
	case RoleAccountant:
		return accountantPermissions()
	default:
		return viewerPermissions()
	}
}

func Full() PermissionSet {
	return fullPermissions()
}

// Merge deep-copies the role table and overwrites only the cells named
// in overrides. Cells not mentioned keep the role default.
func Merge(role string, overrides PermissionSet) PermissionSet {
	merged := ForRole(role)
	for resource, actions := range overrides {
		if merged[resource] == nil {
			merged[resource] = ActionSet{}
		}
		for action, allowed := range actions {
			merged[resource][action] = allowed
		}
	}
	return merged
}

// ValidateOverrides converts a raw client override map into a typed
// PermissionSet, rejecting any resource or action outside the closed
// vocabulary.
func ValidateOverrides(raw map[string]map[string]bool) (PermissionSet, error) {
	known := make(map[Resource]bool, len(Resources()))
	for _, r := range Resources() {
		known[r] = true
	}
	knownActions := make(map[Action]bool, len(Actions()))
	for _, a := range Actions() {
		knownActions[a] = true
	}

	out := make(PermissionSet, len(raw))
	for resource, actions := range raw {
		r := Resource(resource)
		if !known[r] {
			return nil, fmt.Errorf("unknown resource %q", resource)
		}
		set := make(ActionSet, len(actions))
		for action, allowed := range actions {
			a := Action(action)
			if !knownActions[a] {
				return nil, fmt.Errorf("unknown action %q for resource %q", action, resource)
			}
			set[a] = allowed
		}
		out[r] = set
	}
	return out, nil
}
