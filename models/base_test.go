package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestampUnmarshalFlexible(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want time.Time
	}{
		{"rfc3339", `"2024-03-15T10:30:00Z"`, time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"rfc3339 millis", `"2024-03-15T10:30:00.250Z"`, time.Date(2024, 3, 15, 10, 30, 0, 250000000, time.UTC)},
		{"date only", `"2024-03-15"`, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"datetime no zone", `"2024-03-15 10:30:00"`, time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"epoch seconds", `1710498600`, time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"epoch millis", `1710498600000`, time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"epoch seconds string", `"1710498600"`, time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"empty string", `""`, time.Time{}},
		{"null", `null`, time.Time{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ts Timestamp
			if err := json.Unmarshal([]byte(tc.in), &ts); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.in, err)
			}
			if !ts.Time.Equal(tc.want) {
				t.Fatalf("got %v, want %v", ts.Time, tc.want)
			}
		})
	}
}

func TestTimestampUnmarshalRejectsGarbage(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`"not a date"`), &ts); err == nil {
		t.Fatal("expected error for unparseable value")
	}
}

func TestTimestampMarshal(t *testing.T) {
	ts := NewTimestamp(time.Date(2024, 3, 15, 10, 30, 0, 250000000, time.UTC))
	out, err := json.Marshal(ts)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `"2024-03-15T10:30:00.250Z"` {
		t.Fatalf("got %s", out)
	}

	var zero Timestamp
	out, err = json.Marshal(zero)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `""` {
		t.Fatalf("zero value should marshal as empty string, got %s", out)
	}
}

func TestTimestampValueNilWhenZero(t *testing.T) {
	var zero Timestamp
	v, err := zero.Value()
	if err != nil {
		t.Fatal(err)
	}
	if v != nil {
		t.Fatalf("zero Timestamp should store NULL, got %v", v)
	}
}

func TestJSONFieldRoundTrip(t *testing.T) {
	var f JSONField
	if err := json.Unmarshal([]byte(`[{"qty":3}]`), &f); err != nil {
		t.Fatal(err)
	}
	out, err := json.Marshal(f)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `[{"qty":3}]` {
		t.Fatalf("got %s", out)
	}
}

func TestJSONFieldEmptyMarshalsAsArray(t *testing.T) {
	var f JSONField
	out, err := json.Marshal(f)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `[]` {
		t.Fatalf("empty JSONField should marshal as [], got %s", out)
	}

	v, err := f.Value()
	if err != nil {
		t.Fatal(err)
	}
	if v != "[]" {
		t.Fatalf("empty JSONField should store [], got %v", v)
	}
}

func TestStampDefaultsOnlyMissingTimestamps(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	created := NewTimestamp(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))

	rec := SyncRecord{Id: "abc", Synced: 1, CreatedAt: created}
	rec.Stamp("owner@example.com", now)

	if rec.UserEmail != "owner@example.com" {
		t.Fatalf("user email not stamped: %q", rec.UserEmail)
	}
	if rec.Synced != 0 {
		t.Fatal("Stamp must reset synced")
	}
	if !rec.CreatedAt.Time.Equal(created.Time) {
		t.Fatalf("Stamp must not touch an existing createdAt, got %v", rec.CreatedAt.Time)
	}
	if !rec.UpdatedAt.Time.Equal(now) {
		t.Fatalf("missing updatedAt should default to now, got %v", rec.UpdatedAt.Time)
	}
}

func TestStampNewOwnsTimestamps(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	stale := NewTimestamp(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))

	rec := SyncRecord{Id: "abc", Deleted: 1, Synced: 1, CreatedAt: stale, UpdatedAt: stale}
	rec.StampNew("owner@example.com", now)

	if rec.Deleted != 0 || rec.Synced != 0 {
		t.Fatalf("StampNew must clear flags, got deleted=%d synced=%d", rec.Deleted, rec.Synced)
	}
	if !rec.CreatedAt.Time.Equal(now) || !rec.UpdatedAt.Time.Equal(now) {
		t.Fatalf("StampNew must overwrite both timestamps, got %v / %v", rec.CreatedAt.Time, rec.UpdatedAt.Time)
	}
}
