package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SyncRecord is the embedded base for every client-synced entity.
// The primary key is (user_email, id): the tenant plus the UUID the
// client generated offline. Timestamps are client-controlled, so GORM
// auto-stamping is disabled; the store decides what to write.
type SyncRecord struct {
	UserEmail string    `gorm:"primaryKey;size:191;autoIncrement:false" json:"-"`
	Id        string    `gorm:"primaryKey;size:64;autoIncrement:false" json:"id" binding:"required"`
	Deleted   int       `gorm:"not null;default:0" json:"deleted"`
	Synced    int       `gorm:"not null;default:0" json:"synced"`
	CreatedAt Timestamp `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt Timestamp `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

func (r SyncRecord) RecordId() string { return r.Id }

// Stamp prepares a client-supplied record for reconciliation: the tenant
// is taken from the request (never trusted from the payload), synced is
// reset so other devices pick the change up, and missing timestamps are
// defaulted. An existing row keeps its created_at regardless (the upsert
// never assigns that column).
func (r *SyncRecord) Stamp(userEmail string, now time.Time) {
	r.UserEmail = userEmail
	r.Synced = 0
	if r.CreatedAt.IsZero() {
		r.CreatedAt = NewTimestamp(now)
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = NewTimestamp(now)
	}
}

// StampNew prepares a record created through the plain REST create
// endpoint, where the server owns both timestamps.
func (r *SyncRecord) StampNew(userEmail string, now time.Time) {
	r.UserEmail = userEmail
	r.Synced = 0
	r.Deleted = 0
	r.CreatedAt = NewTimestamp(now)
	r.UpdatedAt = NewTimestamp(now)
}

// Timestamp is a DATETIME(3) column that tolerates the formats offline
// clients actually send: RFC3339, bare dates, epoch seconds or
// milliseconds, and empty strings. It serializes as RFC3339 UTC with
// millisecond precision; a zero value serializes as "" (never null).
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t.UTC()}
}

const timestampLayout = "2006-01-02T15:04:05.000Z"

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + t.UTC().Format(timestampLayout) + `"`), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" || s == `""` {
		t.Time = time.Time{}
		return nil
	}
	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		parsed, err := ParseFlexibleTime(str)
		if err != nil {
			return err
		}
		t.Time = parsed
		return nil
	}
	var num float64
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	t.Time = epochToTime(num)
	return nil
}

// ParseFlexibleTime accepts the date shapes seen in offline payloads.
func ParseFlexibleTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed.UTC(), nil
		}
	}
	if num, err := strconv.ParseFloat(s, 64); err == nil {
		return epochToTime(num), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized time value %q", s)
}

func epochToTime(num float64) time.Time {
	// Anything above ~Sep 2001 in milliseconds is below it in seconds,
	// so 1e12 cleanly separates the two unit conventions.
	if num >= 1e12 {
		return time.UnixMilli(int64(num)).UTC()
	}
	return time.Unix(int64(num), 0).UTC()
}

func (t Timestamp) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return t.Time, nil
}

func (t *Timestamp) Scan(v interface{}) error {
	switch value := v.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case time.Time:
		t.Time = value.UTC()
		return nil
	case []byte:
		parsed, err := ParseFlexibleTime(string(value))
		if err != nil {
			return err
		}
		t.Time = parsed
		return nil
	case string:
		parsed, err := ParseFlexibleTime(value)
		if err != nil {
			return err
		}
		t.Time = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Timestamp", v)
	}
}

func (Timestamp) GormDataType() string {
	return "datetime(3)"
}

// JSONField stores a structured client blob (attachments, item lists,
// form state) verbatim. Empty values round-trip as [] so clients never
// see null where they sent a collection.
type JSONField []byte

func (f JSONField) MarshalJSON() ([]byte, error) {
	if len(f) == 0 {
		return []byte("[]"), nil
	}
	return f, nil
}

func (f *JSONField) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = nil
		return nil
	}
	*f = append((*f)[0:0], b...)
	return nil
}

func (f JSONField) Value() (driver.Value, error) {
	if len(f) == 0 {
		return "[]", nil
	}
	return string(f), nil
}

func (f *JSONField) Scan(v interface{}) error {
	switch value := v.(type) {
	case nil:
		*f = nil
		return nil
	case []byte:
		*f = append((*f)[0:0], value...)
		return nil
	case string:
		*f = JSONField(value)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into JSONField", v)
	}
}

func (JSONField) GormDataType() string {
	return "json"
}
