package tests

import (
	"os"

	"gorm.io/gorm"
)

// RunSQLFile applies a SQL file to the test database.
func RunSQLFile(db *gorm.DB, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return db.Exec(string(content)).Error
}
