package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/huyquangvevo/vcs-hrms/internal/models"
	"github.com/huyquangvevo/vcs-hrms/internal/storage"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { storage.Close(db) })
	return db
}

func seedEmployee(t *testing.T, db *gorm.DB, employeeID, fullName string) {
	t.Helper()
	err := NewEmployeeStore(db).Create(&models.Employee{
		EmployeeID: employeeID,
		FullName:   fullName,
		Email:      employeeID + "@example.com",
		Department: "Engineering",
	})
	require.NoError(t, err)
}
