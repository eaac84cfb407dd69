package utils

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

var (
	ErrorRecordNotFound  = errors.New("record not found")
	ErrorDuplicateRecord = errors.New("duplicate record")
)

// IsDuplicateKey reports whether err is a MySQL duplicate-entry error (1062).
func IsDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return false
}
