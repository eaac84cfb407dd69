package store

import (
	"testing"
	"time"

	"bitbucket.org/mmdatafocus/invoice_backend/models"
	"github.com/sirupsen/logrus"
)

func testStore() *Store {
	return New(nil, logrus.New(), nil)
}

func TestUpdatableColumnsProtectsIdentityFields(t *testing.T) {
	cols, err := testStore().updatableColumns(&models.Product{})
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"id", "createdAt", "userEmail", "user_email", "created_at"} {
		if _, ok := cols[name]; ok {
			t.Errorf("%q must not be writable through a field map", name)
		}
	}
	if _, ok := cols["productName"]; !ok {
		t.Error("productName should be writable")
	}
	if _, ok := cols["updatedAt"]; !ok {
		t.Error("updatedAt should be writable")
	}
}

func TestUpdatableColumnsKeyedByJsonName(t *testing.T) {
	cols, err := testStore().updatableColumns(&models.Product{})
	if err != nil {
		t.Fatal(err)
	}
	info, ok := cols["saleRate"]
	if !ok {
		t.Fatal("expected saleRate keyed by its JSON name")
	}
	if info.DBName != "sale_rate" {
		t.Fatalf("saleRate maps to %q", info.DBName)
	}
}

func TestAssignmentColumnsExcludeKeysAndCreatedAt(t *testing.T) {
	cols, err := testStore().assignmentColumns(&models.Invoice{})
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[string]bool, len(cols))
	for _, c := range cols {
		seen[c] = true
	}
	for _, banned := range []string{"user_email", "id", "created_at"} {
		if seen[banned] {
			t.Errorf("upsert must never assign %q", banned)
		}
	}
	for _, required := range []string{"updated_at", "synced", "deleted", "total", "status"} {
		if !seen[required] {
			t.Errorf("upsert should assign %q", required)
		}
	}
}

func TestCoerceValueDatetime(t *testing.T) {
	info := columnInfo{DBName: "invoice_date", DataType: "datetime(3)"}

	got, err := coerceValue(info, "2024-03-15T10:30:00Z")
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	if tv, ok := got.(time.Time); !ok || !tv.Equal(want) {
		t.Fatalf("got %v (%T), want %v", got, got, want)
	}

	got, err = coerceValue(info, float64(1710498600000))
	if err != nil {
		t.Fatal(err)
	}
	if tv, ok := got.(time.Time); !ok || !tv.Equal(want) {
		t.Fatalf("epoch millis: got %v (%T), want %v", got, got, want)
	}

	got, err = coerceValue(info, "")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("empty datetime should store NULL, got %v", got)
	}

	if _, err := coerceValue(info, "tomorrow-ish"); err == nil {
		t.Fatal("unparseable datetime must error")
	}
}

func TestCoerceValueJSON(t *testing.T) {
	info := columnInfo{DBName: "attachments", DataType: "json"}

	got, err := coerceValue(info, []any{map[string]any{"name": "a.pdf"}})
	if err != nil {
		t.Fatal(err)
	}
	if got != `[{"name":"a.pdf"}]` {
		t.Fatalf("got %v", got)
	}

	// Pre-serialized strings pass through untouched.
	got, err = coerceValue(info, `{"x":1}`)
	if err != nil {
		t.Fatal(err)
	}
	if got != `{"x":1}` {
		t.Fatalf("got %v", got)
	}
}

func TestCoerceValuePassThrough(t *testing.T) {
	info := columnInfo{DBName: "total", DataType: "decimal(20,4)"}
	got, err := coerceValue(info, 123.45)
	if err != nil {
		t.Fatal(err)
	}
	if got != 123.45 {
		t.Fatalf("got %v", got)
	}
}
