package store

import (
	"context"
	"time"

	"bitbucket.org/mmdatafocus/invoice_backend/config"
	"gorm.io/gorm/clause"
)

// syncLockTTL bounds how long one device's push can hold the advisory
// per-tenant lock.
const syncLockTTL = 30 * time.Second

// Upsert writes one client record as a single INSERT ... ON DUPLICATE
// KEY UPDATE against the (user_email, id) primary key. created_at is
// excluded from the update assignments, so the original insertion time
// survives every subsequent push.
func Upsert[T any, PT RecordPtr[T]](ctx context.Context, s *Store, rec PT) error {
	cols, err := s.assignmentColumns(rec)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_email"}, {Name: "id"}},
		DoUpdates: clause.AssignmentColumns(cols),
	}).Create(rec).Error
}

func (s *Store) assignmentColumns(model interface{}) ([]string, error) {
	sch, err := s.parse(model)
	if err != nil {
		return nil, err
	}
	cols := make([]string, 0, len(sch.Fields))
	for _, field := range sch.Fields {
		if field.DBName == "" || field.PrimaryKey || field.DBName == "created_at" {
			continue
		}
		cols = append(cols, field.DBName)
	}
	return cols, nil
}

// SyncBatch reconciles one entity batch pushed by an offline client.
//
// Records are applied strictly in batch order, one upsert per record, so
// a failing record never poisons its neighbours; its client id is
// tallied instead. The response is always a fresh read of the whole
// tenant collection, soft-deleted tombstones included, because that read
// is what the device persists as its new local truth.
func SyncBatch[T any, PT RecordPtr[T]](ctx context.Context, s *Store, userEmail string, batch []T) ([]T, []string, error) {
	sch, err := s.parse(new(T))
	if err != nil {
		return nil, nil, err
	}

	// Best effort: serialize concurrent pushes from the same tenant.
	// A missing lock (redis down, lock held) must never block the sync.
	if lock := s.cache.Lock(ctx, "sync:"+sch.Table+":"+userEmail, syncLockTTL); lock != nil {
		defer lock.Release(context.Background())
	}

	now := s.now()
	var failedIds []string
	for i := range batch {
		rec := PT(&batch[i])
		rec.Stamp(userEmail, now)
		if err := Upsert[T, PT](ctx, s, rec); err != nil {
			config.LogError(s.log, "store", "SyncBatch", sch.Table, map[string]any{
				"userEmail": userEmail,
				"recordId":  rec.RecordId(),
			}, err)
			failedIds = append(failedIds, rec.RecordId())
		}
	}

	fresh, err := FindAll[T](ctx, s, userEmail, true)
	if err != nil {
		return nil, failedIds, err
	}
	return fresh, failedIds, nil
}
