package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/huyquangvevo/vcs-hrms/internal/models"
)

// EmployeeStore owns the employee directory. The attendance core only
// reads from it; writes come from the directory endpoints.
type EmployeeStore struct {
	db *gorm.DB
}

func NewEmployeeStore(db *gorm.DB) *EmployeeStore {
	return &EmployeeStore{db: db}
}

// Create inserts a new employee after probing both unique keys so the
// caller gets a field-tagged conflict instead of a bare driver error.
func (s *EmployeeStore) Create(emp *models.Employee) error {
	var count int64
	if err := s.db.Model(&models.Employee{}).Where("employee_id = ?", emp.EmployeeID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateEmployeeID
	}

	if err := s.db.Model(&models.Employee{}).Where("email = ?", emp.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateEmail
	}

	return s.db.Create(emp).Error
}

func (s *EmployeeStore) GetByEmployeeID(employeeID string) (*models.Employee, error) {
	var emp models.Employee
	err := s.db.Where("employee_id = ?", employeeID).First(&emp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *EmployeeStore) List() ([]models.Employee, error) {
	var emps []models.Employee
	err := s.db.Order("created_at DESC").Find(&emps).Error
	return emps, err
}

// Delete removes the employee and every attendance record referencing
// it, in one transaction. Attendance rows go first: a record must
// never outlive its employee.
func (s *EmployeeStore) Delete(employeeID string) (*models.Employee, error) {
	emp, err := s.GetByEmployeeID(employeeID)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", employeeID).Delete(&models.Attendance{}).Error; err != nil {
			return err
		}
		return tx.Where("employee_id = ?", employeeID).Delete(&models.Employee{}).Error
	})
	if err != nil {
		return nil, err
	}
	return emp, nil
}
