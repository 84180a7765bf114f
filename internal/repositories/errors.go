package repositories

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/libraryservice/backend/internal/models"
)

// mysqlDuplicateEntry is the server error number for unique key violations
const mysqlDuplicateEntry = 1062

// isDuplicateEntry reports whether err is a MySQL unique key violation
func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}

// checkAffected turns a zero-row update into a classified error
func checkAffected(rowsAffected int64, kind error, message string) error {
	if rowsAffected == 0 {
		return models.NewError(kind, "%s", message)
	}
	return nil
}
