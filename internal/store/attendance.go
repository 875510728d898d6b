package store

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/huyquangvevo/vcs-hrms/internal/models"
)

const joinedColumns = "a.id, a.employee_id, a.date, a.status, a.marked_at, e.full_name, e.department"

// AttendanceStore is the single source of truth for attendance facts.
type AttendanceStore struct {
	db        *gorm.DB
	employees *EmployeeStore
}

func NewAttendanceStore(db *gorm.DB) *AttendanceStore {
	return &AttendanceStore{db: db, employees: NewEmployeeStore(db)}
}

// Filter narrows List results. All fields are optional and combine
// with AND; From/To bound a closed date range.
type Filter struct {
	Date       string
	From       string
	To         string
	EmployeeID string
}

// Mark upserts the attendance fact for (employeeID, date). The insert
// is conditional on the unique index, so two racing marks for a new
// pair can never both insert: the loser's insert affects zero rows and
// falls through to the update path.
//
// The returned flag is true when this call created the record.
func (s *AttendanceStore) Mark(employeeID, date, status string) (*models.AttendanceWithEmployee, bool, error) {
	if _, err := s.employees.GetByEmployeeID(employeeID); err != nil {
		return nil, false, err
	}

	row := models.Attendance{
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
		MarkedAt:   time.Now(),
	}
	res := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}, {Name: "date"}},
		DoNothing: true,
	}).Create(&row)
	if res.Error != nil {
		return nil, false, res.Error
	}
	created := res.RowsAffected > 0

	if !created {
		err := s.db.Model(&models.Attendance{}).
			Where("employee_id = ? AND date = ?", employeeID, date).
			Updates(map[string]interface{}{
				"status":    status,
				"marked_at": time.Now(),
			}).Error
		if err != nil {
			return nil, false, err
		}
	}

	var out models.AttendanceWithEmployee
	err := s.db.Raw(`
		SELECT `+joinedColumns+`
		FROM attendance a JOIN employees e ON a.employee_id = e.employee_id
		WHERE a.employee_id = ? AND a.date = ?`, employeeID, date).
		Scan(&out).Error
	if err != nil {
		return nil, false, err
	}
	return &out, created, nil
}

// List returns joined records matching the filter, most recent
// activity first.
func (s *AttendanceStore) List(f Filter) ([]models.AttendanceWithEmployee, error) {
	q := s.db.Table("attendance AS a").
		Select(joinedColumns).
		Joins("JOIN employees e ON a.employee_id = e.employee_id")

	if f.Date != "" {
		q = q.Where("a.date = ?", f.Date)
	}
	if f.From != "" {
		q = q.Where("a.date >= ?", f.From)
	}
	if f.To != "" {
		q = q.Where("a.date <= ?", f.To)
	}
	if f.EmployeeID != "" {
		q = q.Where("a.employee_id = ?", f.EmployeeID)
	}

	var rows []models.AttendanceWithEmployee
	err := q.Order("a.date DESC, a.marked_at DESC").Scan(&rows).Error
	return rows, err
}

// ListForEmployee returns one employee's records in the optional
// closed range, newest first, plus counts over that filtered set.
func (s *AttendanceStore) ListForEmployee(employeeID, from, to string) (*models.Employee, []models.Attendance, models.RangeSummary, error) {
	var summary models.RangeSummary

	emp, err := s.employees.GetByEmployeeID(employeeID)
	if err != nil {
		return nil, nil, summary, err
	}

	q := s.db.Where("employee_id = ?", employeeID)
	if from != "" {
		q = q.Where("date >= ?", from)
	}
	if to != "" {
		q = q.Where("date <= ?", to)
	}

	var records []models.Attendance
	if err := q.Order("date DESC").Find(&records).Error; err != nil {
		return nil, nil, summary, err
	}

	for _, r := range records {
		switch r.Status {
		case models.StatusPresent:
			summary.PresentDays++
		case models.StatusAbsent:
			summary.AbsentDays++
		}
	}
	summary.TotalRecords = int64(len(records))

	return emp, records, summary, nil
}
