package permissions

import "testing"

func TestRoleTableSpotChecks(t *testing.T) {
	cases := []struct {
		role     string
		resource Resource
		action   Action
		want     bool
	}{
		{RoleAdmin, ResourceInvoices, ActionDelete, true},
		{RoleAdmin, ResourceSubUsers, ActionDelete, true},

		{RoleManager, ResourceInvoices, ActionCreate, true},
		{RoleManager, ResourceInvoices, ActionDelete, false},
		{RoleManager, ResourceCommissionHistory, ActionCreate, false},
		{RoleManager, ResourceCommissionHistory, ActionRead, true},
		{RoleManager, ResourceSubUsers, ActionRead, true},
		{RoleManager, ResourceSubUsers, ActionCreate, false},
		{RoleManager, ResourceSettings, ActionUpdate, false},
		{RoleManager, ResourceProducts, ActionImport, true},

		{RoleAccountant, ResourceInvoices, ActionUpdate, true},
		{RoleAccountant, ResourceInvoices, ActionDelete, false},
		{RoleAccountant, ResourceProducts, ActionCreate, false},
		{RoleAccountant, ResourceProducts, ActionExport, true},
		{RoleAccountant, ResourceSubUsers, ActionRead, false},
		{RoleAccountant, ResourceCashRegisters, ActionCreate, true},

		{RoleViewer, ResourceInvoices, ActionRead, true},
		{RoleViewer, ResourceInvoices, ActionExport, true},
		{RoleViewer, ResourceInvoices, ActionCreate, false},
		{RoleViewer, ResourceWarehouses, ActionExport, false},
		{RoleViewer, ResourceReports, ActionRead, true},
		{RoleViewer, ResourceReports, ActionExport, false},
	}
	for _, tc := range cases {
		got := ForRole(tc.role).Allows(tc.resource, tc.action)
		if got != tc.want {
			t.Errorf("%s %s.%s = %v, want %v", tc.role, tc.resource, tc.action, got, tc.want)
		}
	}
}

func TestUnknownRoleFallsBackToViewer(t *testing.T) {
	table := ForRole("superhero")
	if table.Allows(ResourceInvoices, ActionCreate) {
		t.Fatal("unknown role must be treated as viewer")
	}
	if !table.Allows(ResourceInvoices, ActionRead) {
		t.Fatal("viewer fallback should still read")
	}
}

func TestMergeOverwritesOnlyNamedCells(t *testing.T) {
	merged := Merge(RoleViewer, PermissionSet{
		ResourceInvoices: {ActionCreate: true},
	})

	if !merged.Allows(ResourceInvoices, ActionCreate) {
		t.Fatal("override cell not applied")
	}
	// The rest of the viewer table survives untouched.
	if !merged.Allows(ResourceInvoices, ActionRead) {
		t.Fatal("unnamed cell lost its role default")
	}
	if merged.Allows(ResourceProducts, ActionCreate) {
		t.Fatal("merge leaked permissions into unnamed resources")
	}
}

func TestMergeDoesNotMutateRoleTable(t *testing.T) {
	Merge(RoleViewer, PermissionSet{
		ResourceInvoices: {ActionDelete: true},
	})
	if ForRole(RoleViewer).Allows(ResourceInvoices, ActionDelete) {
		t.Fatal("Merge mutated the shared role table")
	}
}

func TestAllowsMissingCellDenies(t *testing.T) {
	p := PermissionSet{ResourceInvoices: {ActionRead: true}}
	if p.Allows(ResourceProducts, ActionRead) {
		t.Fatal("missing resource must deny")
	}
	if p.Allows(ResourceInvoices, ActionDelete) {
		t.Fatal("missing action must deny")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	original := PermissionSet{ResourceInvoices: {ActionRead: true}}
	clone := original.Clone()
	clone[ResourceInvoices][ActionRead] = false
	if !original.Allows(ResourceInvoices, ActionRead) {
		t.Fatal("Clone shares ActionSet maps with the original")
	}
}

func TestValidateOverrides(t *testing.T) {
	got, err := ValidateOverrides(map[string]map[string]bool{
		"invoices": {"create": true, "delete": false},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !got.Allows(ResourceInvoices, ActionCreate) {
		t.Fatal("valid override dropped")
	}

	if _, err := ValidateOverrides(map[string]map[string]bool{
		"spaceships": {"create": true},
	}); err == nil {
		t.Fatal("unknown resource must be rejected")
	}

	if _, err := ValidateOverrides(map[string]map[string]bool{
		"invoices": {"teleport": true},
	}); err == nil {
		t.Fatal("unknown action must be rejected")
	}
}

func TestRoleTablesShareOneShape(t *testing.T) {
	// Every role enumerates exactly the cells the admin table has; some
	// resources (subUsers, reports, settings) carry a reduced action set
	// and import exists only where bulk upload does.
	shape := ForRole(RoleAdmin)
	for _, role := range []string{RoleManager, RoleAccountant, RoleViewer} {
		table := ForRole(role)
		for _, resource := range Resources() {
			actions, ok := table[resource]
			if !ok {
				t.Errorf("%s table missing resource %s", role, resource)
				continue
			}
			if len(actions) != len(shape[resource]) {
				t.Errorf("%s %s has %d cells, admin has %d", role, resource, len(actions), len(shape[resource]))
			}
			for action := range shape[resource] {
				if _, ok := actions[action]; !ok {
					t.Errorf("%s table missing cell %s.%s", role, resource, action)
				}
			}
		}
	}
}
