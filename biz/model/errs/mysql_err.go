package errs

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const mysqlDupEntry = 1062

// IsDuplicatedErr reports whether err is a unique-key violation from the store.
func IsDuplicatedErr(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDupEntry
	}

	// sqlite, when the dialector does not translate errors
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
