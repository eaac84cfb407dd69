// Package store implements tenant-scoped persistence for synced
// records. Every operation filters on user_email; a row belonging to a
// different tenant is indistinguishable from a missing one.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"
	"time"

	"bitbucket.org/mmdatafocus/invoice_backend/config"
	"bitbucket.org/mmdatafocus/invoice_backend/models"
	"bitbucket.org/mmdatafocus/invoice_backend/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// RecordPtr constrains the generic store operations to pointer types
// embedding models.SyncRecord.
type RecordPtr[T any] interface {
	*T
	Stamp(userEmail string, now time.Time)
	StampNew(userEmail string, now time.Time)
	RecordId() string
}

type Store struct {
	db    *gorm.DB
	log   *logrus.Logger
	cache *config.Cache

	now func() time.Time

	schemaCache *sync.Map
	namer       schema.Namer
}

func New(db *gorm.DB, log *logrus.Logger, cache *config.Cache) *Store {
	return &Store{
		db:          db,
		log:         log,
		cache:       cache,
		now:         time.Now,
		schemaCache: &sync.Map{},
		namer:       schema.NamingStrategy{},
	}
}

func (s *Store) DB() *gorm.DB { return s.db }

func (s *Store) parse(model interface{}) (*schema.Schema, error) {
	return schema.Parse(model, s.schemaCache, s.namer)
}

// columnInfo describes one updatable column, keyed by its JSON name.
type columnInfo struct {
	DBName   string
	DataType string
}

// protected columns can never be written through a field map.
var protectedColumns = map[string]bool{
	"user_email": true,
	"id":         true,
	"created_at": true,
}

func (s *Store) updatableColumns(model interface{}) (map[string]columnInfo, error) {
	sch, err := s.parse(model)
	if err != nil {
		return nil, err
	}
	out := make(map[string]columnInfo, len(sch.Fields))
	for _, field := range sch.Fields {
		if field.DBName == "" || protectedColumns[field.DBName] {
			continue
		}
		jsonName := jsonTagName(field)
		if jsonName == "" {
			continue
		}
		out[jsonName] = columnInfo{DBName: field.DBName, DataType: string(field.DataType)}
	}
	return out, nil
}

func jsonTagName(field *schema.Field) string {
	tag := field.StructField.Tag.Get("json")
	if tag == "" {
		return field.Name
	}
	name := strings.Split(tag, ",")[0]
	if name == "-" {
		return ""
	}
	return name
}

func FindAll[T any](ctx context.Context, s *Store, userEmail string, includeDeleted bool) ([]T, error) {
	q := s.db.WithContext(ctx).Where("user_email = ?", userEmail)
	if !includeDeleted {
		q = q.Where("deleted = 0")
	}
	var out []T
	if err := q.Order("created_at, id").Find(&out).Error; err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func FindUnsynced[T any](ctx context.Context, s *Store, userEmail string) ([]T, error) {
	var out []T
	err := s.db.WithContext(ctx).
		Where("user_email = ? AND synced = 0", userEmail).
		Order("created_at, id").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// FindById includes soft-deleted rows: a direct lookup by id sees the
// tombstone, only listings hide it.
func FindById[T any](ctx context.Context, s *Store, userEmail, id string) (*T, error) {
	var rec T
	err := s.db.WithContext(ctx).
		Where("user_email = ? AND id = ?", userEmail, id).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrorRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func Insert[T any, PT RecordPtr[T]](ctx context.Context, s *Store, userEmail string, rec PT) error {
	rec.StampNew(userEmail, s.now())
	err := s.db.WithContext(ctx).Create(rec).Error
	if utils.IsDuplicateKey(err) {
		return utils.ErrorDuplicateRecord
	}
	return err
}

// Update writes exactly the fields the client sent, plus the bookkeeping
// columns (updated_at, synced=0). Unknown and protected fields are
// dropped. Returns ErrorRecordNotFound when no row matched, which also
// covers rows owned by another tenant.
func Update[T any](ctx context.Context, s *Store, userEmail, id string, fields map[string]any) error {
	columns, err := s.updatableColumns(new(T))
	if err != nil {
		return err
	}

	updates := make(map[string]any, len(fields)+2)
	for name, value := range fields {
		info, ok := columns[name]
		if !ok {
			continue
		}
		coerced, err := coerceValue(info, value)
		if err != nil {
			return err
		}
		updates[info.DBName] = coerced
	}
	updates["updated_at"] = s.now()
	updates["synced"] = 0

	res := s.db.WithContext(ctx).
		Model(new(T)).
		Where("user_email = ? AND id = ?", userEmail, id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrorRecordNotFound
	}
	return nil
}

func SoftDelete[T any](ctx context.Context, s *Store, userEmail, id string) error {
	res := s.db.WithContext(ctx).
		Model(new(T)).
		Where("user_email = ? AND id = ?", userEmail, id).
		Updates(map[string]any{
			"deleted":    1,
			"synced":     0,
			"updated_at": s.now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrorRecordNotFound
	}
	return nil
}

// MarkSynced flags records a client has confirmed receiving.
func MarkSynced[T any](ctx context.Context, s *Store, userEmail string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Model(new(T)).
		Where("user_email = ? AND id IN ?", userEmail, ids).
		Update("synced", 1).Error
}

// coerceValue converts raw JSON values into something the column can
// hold: flexible timestamps become time.Time, structured blobs become
// serialized JSON. Everything else passes through for the driver.
func coerceValue(info columnInfo, value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	switch {
	case strings.HasPrefix(info.DataType, "datetime"):
		switch v := value.(type) {
		case string:
			parsed, err := models.ParseFlexibleTime(v)
			if err != nil {
				return nil, err
			}
			if parsed.IsZero() {
				return nil, nil
			}
			return parsed, nil
		case float64:
			ts := models.Timestamp{}
			raw, _ := json.Marshal(v)
			if err := ts.UnmarshalJSON(raw); err != nil {
				return nil, err
			}
			return ts.Time, nil
		default:
			return value, nil
		}
	case info.DataType == "json":
		if reflect.TypeOf(value).Kind() == reflect.String {
			return value, nil
		}
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		return string(raw), nil
	default:
		return value, nil
	}
}
