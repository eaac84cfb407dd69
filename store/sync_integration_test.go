package store

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"testing"
	"time"

	"bitbucket.org/mmdatafocus/invoice_backend/models"
	"bitbucket.org/mmdatafocus/invoice_backend/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestSyncBatchReconciliation(t *testing.T) {
	if strings.TrimSpace(os.Getenv("INTEGRATION_TESTS")) == "" {
		t.Skip("set INTEGRATION_TESTS=1 to run integration tests (requires docker)")
	}

	container, port := startMySQLContainer(t)
	defer dockerRmForce(container)

	dsn := fmt.Sprintf("root:testpw@tcp(127.0.0.1:%s)/invoice_test?charset=utf8mb4&parseTime=True&loc=UTC", port)
	db, err := gorm.Open(gormmysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open mysql: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	s := New(db, logrus.New(), nil)
	ctx := context.Background()
	tenant := "owner@example.com"

	created := models.NewTimestamp(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	first := []models.Product{
		{
			SyncRecord:  models.SyncRecord{Id: "p-1", CreatedAt: created, UpdatedAt: created},
			ProductName: "Rice 25kg",
			SaleRate:    decimal.NewFromInt(32000),
		},
		{
			SyncRecord:  models.SyncRecord{Id: "p-2", CreatedAt: created, UpdatedAt: created},
			ProductName: "Cooking Oil 1L",
			SaleRate:    decimal.NewFromInt(9500),
		},
	}

	fresh, failed, err := SyncBatch[models.Product, *models.Product](ctx, s, tenant, first)
	if err != nil {
		t.Fatalf("first push: %v", err)
	}
	if len(failed) != 0 {
		t.Fatalf("first push failed ids: %v", failed)
	}
	if len(fresh) != 2 {
		t.Fatalf("first push returned %d records", len(fresh))
	}
	for _, p := range fresh {
		if p.Synced != 0 {
			t.Fatalf("pushed record %s must come back with synced=0", p.Id)
		}
	}

	// Second push edits p-1 and lies about its createdAt; the stored
	// insertion time must survive.
	second := []models.Product{
		{
			SyncRecord: models.SyncRecord{
				Id:        "p-1",
				CreatedAt: models.NewTimestamp(time.Date(2030, 6, 6, 0, 0, 0, 0, time.UTC)),
				UpdatedAt: models.NewTimestamp(time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)),
			},
			ProductName: "Rice 25kg Premium",
			SaleRate:    decimal.NewFromInt(35000),
		},
	}
	fresh, failed, err = SyncBatch[models.Product, *models.Product](ctx, s, tenant, second)
	if err != nil {
		t.Fatalf("second push: %v", err)
	}
	if len(failed) != 0 {
		t.Fatalf("second push failed ids: %v", failed)
	}
	if len(fresh) != 2 {
		t.Fatalf("second push must still return the whole collection, got %d", len(fresh))
	}
	p1 := findProduct(fresh, "p-1")
	if p1 == nil {
		t.Fatal("p-1 missing after re-push")
	}
	if p1.ProductName != "Rice 25kg Premium" {
		t.Fatalf("edit lost: %q", p1.ProductName)
	}
	if !p1.CreatedAt.Time.Equal(created.Time) {
		t.Fatalf("createdAt rewritten on re-push: %v", p1.CreatedAt.Time)
	}

	// Re-pushing identical data is a no-op, not an error.
	if _, failed, err = SyncBatch[models.Product, *models.Product](ctx, s, tenant, second); err != nil || len(failed) != 0 {
		t.Fatalf("idempotent re-push: err=%v failed=%v", err, failed)
	}

	// A second tenant pushing the same client ids gets its own rows.
	other := "other@example.com"
	otherBatch := []models.Product{
		{
			SyncRecord:  models.SyncRecord{Id: "p-1"},
			ProductName: "Different Shop Rice",
		},
	}
	otherFresh, _, err := SyncBatch[models.Product, *models.Product](ctx, s, other, otherBatch)
	if err != nil {
		t.Fatalf("other tenant push: %v", err)
	}
	if len(otherFresh) != 1 || otherFresh[0].ProductName != "Different Shop Rice" {
		t.Fatalf("other tenant sees %v", otherFresh)
	}
	mine, err := FindAll[models.Product](ctx, s, tenant, true)
	if err != nil {
		t.Fatal(err)
	}
	if p := findProduct(mine, "p-1"); p == nil || p.ProductName != "Rice 25kg Premium" {
		t.Fatal("tenant rows leaked across accounts")
	}

	// Tombstones ride along in the sync response but stay out of plain
	// listings.
	if err := SoftDelete[models.Product](ctx, s, tenant, "p-2"); err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	fresh, _, err = SyncBatch[models.Product, *models.Product](ctx, s, tenant, nil)
	if err != nil {
		t.Fatal(err)
	}
	tombstone := findProduct(fresh, "p-2")
	if tombstone == nil || tombstone.Deleted != 1 {
		t.Fatal("sync response must include the tombstone")
	}
	listed, err := FindAll[models.Product](ctx, s, tenant, false)
	if err != nil {
		t.Fatal(err)
	}
	if findProduct(listed, "p-2") != nil {
		t.Fatal("listing must hide soft-deleted records")
	}
}

func TestUpdateFieldMap(t *testing.T) {
	if strings.TrimSpace(os.Getenv("INTEGRATION_TESTS")) == "" {
		t.Skip("set INTEGRATION_TESTS=1 to run integration tests (requires docker)")
	}

	container, port := startMySQLContainer(t)
	defer dockerRmForce(container)

	dsn := fmt.Sprintf("root:testpw@tcp(127.0.0.1:%s)/invoice_test?charset=utf8mb4&parseTime=True&loc=UTC", port)
	db, err := gorm.Open(gormmysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open mysql: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	s := New(db, logrus.New(), nil)
	// datetime(3) keeps milliseconds; a nanosecond clock would never
	// round-trip equal.
	s.now = func() time.Time {
		return time.Now().UTC().Truncate(time.Millisecond)
	}
	ctx := context.Background()
	tenant := "owner@example.com"

	rec := models.Product{
		SyncRecord:  models.SyncRecord{Id: "p-1"},
		ProductName: "Rice 25kg",
	}
	if err := Insert[models.Product, *models.Product](ctx, s, tenant, &rec); err != nil {
		t.Fatalf("insert: %v", err)
	}
	insertedAt := rec.CreatedAt

	err = Update[models.Product](ctx, s, tenant, "p-1", map[string]any{
		"productName": "Rice 25kg Premium",
		"saleRate":    35000,
		"createdAt":   "2030-06-06T00:00:00Z", // protected; silently dropped
		"userEmail":   "attacker@example.com", // protected; silently dropped
		"nonsense":    "ignored",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := FindById[models.Product](ctx, s, tenant, "p-1")
	if err != nil {
		t.Fatal(err)
	}
	if got.ProductName != "Rice 25kg Premium" {
		t.Fatalf("productName = %q", got.ProductName)
	}
	if !got.SaleRate.Equal(decimal.NewFromInt(35000)) {
		t.Fatalf("saleRate = %s", got.SaleRate)
	}
	if !got.CreatedAt.Time.Equal(insertedAt.Time) {
		t.Fatalf("createdAt changed to %v", got.CreatedAt.Time)
	}
	if got.Synced != 0 {
		t.Fatal("update must reset synced")
	}

	// Unknown id and foreign tenant both report not found.
	if err := Update[models.Product](ctx, s, tenant, "missing", map[string]any{"unit": "pcs"}); err != utils.ErrorRecordNotFound {
		t.Fatalf("missing id: %v", err)
	}
	if err := Update[models.Product](ctx, s, "other@example.com", "p-1", map[string]any{"unit": "pcs"}); err != utils.ErrorRecordNotFound {
		t.Fatalf("foreign tenant: %v", err)
	}
}

func findProduct(records []models.Product, id string) *models.Product {
	for i := range records {
		if records[i].Id == id {
			return &records[i]
		}
	}
	return nil
}

func startMySQLContainer(t *testing.T) (containerName, hostPort string) {
	t.Helper()
	name := fmt.Sprintf("invoice-test-mysql-%d", time.Now().UnixNano())
	out, err := dockerRun(
		"run", "-d", "--name", name,
		"-e", "MYSQL_ROOT_PASSWORD=testpw",
		"-e", "MYSQL_DATABASE=invoice_test",
		"-p", "127.0.0.1:0:3306",
		"mysql:8.0",
		"--default-authentication-plugin=mysql_native_password",
	)
	if err != nil {
		t.Fatalf("start mysql container: %v\n%s", err, out)
	}
	port, err := dockerHostPort(name, "3306/tcp")
	if err != nil {
		t.Fatalf("mysql docker port: %v", err)
	}
	// wait until ready
	deadline := time.Now().Add(120 * time.Second)
	for time.Now().Before(deadline) {
		_, err := dockerRun("exec", name, "mysqladmin", "ping", "-h", "127.0.0.1", "-ptestpw", "--silent")
		if err == nil {
			return name, port
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("mysql did not become ready")
	return "", ""
}

func dockerHostPort(container, portProto string) (string, error) {
	out, err := dockerRun("port", container, portProto)
	if err != nil {
		return "", fmt.Errorf("docker port: %w: %s", err, out)
	}
	// Example: "127.0.0.1:49154\n"
	re := regexp.MustCompile(`:(\d+)`)
	m := re.FindStringSubmatch(out)
	if len(m) != 2 {
		return "", fmt.Errorf("unexpected docker port output: %q", out)
	}
	return m[1], nil
}

func dockerRmForce(container string) error {
	if strings.TrimSpace(container) == "" {
		return nil
	}
	_, err := dockerRun("rm", "-f", container)
	return err
}

func dockerRun(args ...string) (string, error) {
	cmd := exec.Command("docker", args...)
	b, err := cmd.CombinedOutput()
	return string(b), err
}
