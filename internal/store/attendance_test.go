package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huyquangvevo/vcs-hrms/internal/models"
)

func countRecords(t *testing.T, s *AttendanceStore, employeeID, date string) int64 {
	t.Helper()
	var n int64
	err := s.db.Model(&models.Attendance{}).
		Where("employee_id = ? AND date = ?", employeeID, date).
		Count(&n).Error
	require.NoError(t, err)
	return n
}

func TestMarkCreatesThenUpdates(t *testing.T) {
	db := newTestDB(t)
	seedEmployee(t, db, "EMP-1", "Alice Nguyen")
	s := NewAttendanceStore(db)

	rec, created, err := s.Mark("EMP-1", "2024-01-10", models.StatusPresent)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.StatusPresent, rec.Status)
	assert.Equal(t, "Alice Nguyen", rec.FullName)
	assert.Equal(t, "Engineering", rec.Department)

	rec, created, err = s.Mark("EMP-1", "2024-01-10", models.StatusAbsent)
	require.NoError(t, err)
	assert.False(t, created, "second mark for the same day must update, not create")
	assert.Equal(t, models.StatusAbsent, rec.Status)

	assert.EqualValues(t, 1, countRecords(t, s, "EMP-1", "2024-01-10"))
}

func TestMarkSameStatusTwiceReportsUpdated(t *testing.T) {
	db := newTestDB(t)
	seedEmployee(t, db, "EMP-1", "Alice Nguyen")
	s := NewAttendanceStore(db)

	_, created, err := s.Mark("EMP-1", "2024-01-10", models.StatusPresent)
	require.NoError(t, err)
	require.True(t, created)

	rec, created, err := s.Mark("EMP-1", "2024-01-10", models.StatusPresent)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, models.StatusPresent, rec.Status)
	assert.EqualValues(t, 1, countRecords(t, s, "EMP-1", "2024-01-10"))
}

func TestMarkUnknownEmployee(t *testing.T) {
	db := newTestDB(t)
	s := NewAttendanceStore(db)

	_, _, err := s.Mark("EMP-999", "2024-01-10", models.StatusPresent)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
	assert.EqualValues(t, 0, countRecords(t, s, "EMP-999", "2024-01-10"))
}

func TestMarkDifferentDaysKeepsBoth(t *testing.T) {
	db := newTestDB(t)
	seedEmployee(t, db, "EMP-1", "Alice Nguyen")
	s := NewAttendanceStore(db)

	_, created, err := s.Mark("EMP-1", "2024-01-10", models.StatusPresent)
	require.NoError(t, err)
	require.True(t, created)
	_, created, err = s.Mark("EMP-1", "2024-01-11", models.StatusPresent)
	require.NoError(t, err)
	assert.True(t, created)

	rows, err := s.List(Filter{EmployeeID: "EMP-1"})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestListFilters(t *testing.T) {
	db := newTestDB(t)
	seedEmployee(t, db, "EMP-1", "Alice Nguyen")
	seedEmployee(t, db, "EMP-2", "Bob Tran")
	s := NewAttendanceStore(db)

	marks := []struct {
		emp, date, status string
	}{
		{"EMP-1", "2024-01-05", models.StatusPresent},
		{"EMP-1", "2024-01-15", models.StatusAbsent},
		{"EMP-1", "2024-02-01", models.StatusPresent},
		{"EMP-2", "2024-01-15", models.StatusPresent},
	}
	for _, m := range marks {
		_, _, err := s.Mark(m.emp, m.date, m.status)
		require.NoError(t, err)
	}

	t.Run("exact date", func(t *testing.T) {
		rows, err := s.List(Filter{Date: "2024-01-15"})
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("range and employee", func(t *testing.T) {
		rows, err := s.List(Filter{From: "2024-01-01", To: "2024-01-31", EmployeeID: "EMP-1"})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		// date DESC
		assert.Equal(t, "2024-01-15", rows[0].Date)
		assert.Equal(t, "2024-01-05", rows[1].Date)
	})

	t.Run("no filters returns everything newest first", func(t *testing.T) {
		rows, err := s.List(Filter{})
		require.NoError(t, err)
		require.Len(t, rows, 4)
		assert.Equal(t, "2024-02-01", rows[0].Date)
	})
}

func TestListForEmployee(t *testing.T) {
	db := newTestDB(t)
	seedEmployee(t, db, "EMP-1", "Alice Nguyen")
	s := NewAttendanceStore(db)

	for _, m := range []struct{ date, status string }{
		{"2024-01-05", models.StatusPresent},
		{"2024-01-06", models.StatusAbsent},
		{"2024-02-01", models.StatusPresent},
	} {
		_, _, err := s.Mark("EMP-1", m.date, m.status)
		require.NoError(t, err)
	}

	emp, records, summary, err := s.ListForEmployee("EMP-1", "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, "Alice Nguyen", emp.FullName)
	require.Len(t, records, 2)
	assert.Equal(t, "2024-01-06", records[0].Date)

	// summary covers the filtered set only
	assert.EqualValues(t, 2, summary.TotalRecords)
	assert.EqualValues(t, 1, summary.PresentDays)
	assert.EqualValues(t, 1, summary.AbsentDays)
}

func TestListForEmployeeUnknown(t *testing.T) {
	db := newTestDB(t)
	s := NewAttendanceStore(db)

	_, _, _, err := s.ListForEmployee("EMP-404", "", "")
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	seedEmployee(t, db, "EMP-1", "Alice Nguyen")
	emps := NewEmployeeStore(db)
	s := NewAttendanceStore(db)

	_, _, err := s.Mark("EMP-1", "2024-01-10", models.StatusPresent)
	require.NoError(t, err)

	_, err = emps.Delete("EMP-1")
	require.NoError(t, err)

	assert.EqualValues(t, 0, countRecords(t, s, "EMP-1", "2024-01-10"))
	_, _, _, err = s.ListForEmployee("EMP-1", "", "")
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}
