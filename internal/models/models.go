package models

import "time"

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// DateLayout is the calendar-date form used everywhere: attendance
// dates carry no time component.
const DateLayout = "2006-01-02"

type Employee struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID string    `gorm:"column:employee_id;size:20;uniqueIndex;not null" json:"employee_id"`
	FullName   string    `gorm:"size:100;not null" json:"full_name"`
	Email      string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Department string    `gorm:"size:50;not null" json:"department"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Employee) TableName() string {
	return "employees"
}

// Attendance is one fact: employee E was Present or Absent on date D.
// The composite unique index is the natural key; at most one row may
// exist per (employee_id, date) pair.
type Attendance struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID string    `gorm:"column:employee_id;size:20;not null;uniqueIndex:idx_attendance_employee_date" json:"employee_id"`
	Date       string    `gorm:"size:10;not null;uniqueIndex:idx_attendance_employee_date" json:"date"`
	Status     string    `gorm:"size:10;not null" json:"status"`
	MarkedAt   time.Time `json:"marked_at"`
}

func (Attendance) TableName() string {
	return "attendance"
}

// AttendanceWithEmployee is a read-through join row: the attendance
// fact plus the employee display attributes.
type AttendanceWithEmployee struct {
	ID         uint      `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Date       string    `json:"date"`
	Status     string    `json:"status"`
	MarkedAt   time.Time `json:"marked_at"`
	FullName   string    `json:"full_name"`
	Department string    `json:"department"`
}

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,min=2,max=20"`
	FullName   string `json:"full_name" binding:"required,min=2,max=100"`
	Email      string `json:"email" binding:"required,email"`
	Department string `json:"department" binding:"required,min=2,max=50"`
}

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Date       string `json:"date" binding:"required,datetime=2006-01-02"`
	Status     string `json:"status" binding:"required,oneof=Present Absent"`
}

// DailySummary is derived, never stored. NotMarkedToday is a plain
// subtraction; a negative value signals broken referential integrity
// and is returned as-is rather than clamped.
type DailySummary struct {
	TotalEmployees int64 `json:"totalEmployees"`
	PresentToday   int64 `json:"presentToday"`
	AbsentToday    int64 `json:"absentToday"`
	NotMarkedToday int64 `json:"notMarkedToday"`
}

// EmployeeStat is one employee's all-time counts. AttendanceRate is an
// integer percentage, 0 when the employee has no marked days.
type EmployeeStat struct {
	EmployeeID     string `json:"employee_id"`
	FullName       string `json:"full_name"`
	Department     string `json:"department"`
	PresentDays    int64  `json:"present_days"`
	AbsentDays     int64  `json:"absent_days"`
	TotalMarked    int64  `json:"total_marked"`
	AttendanceRate int    `json:"attendance_rate"`
}

// DayCount is one day's totals inside the recent-days window. Days
// with no records are omitted, not zero-filled.
type DayCount struct {
	Date    string `json:"date"`
	Present int64  `json:"present"`
	Absent  int64  `json:"absent"`
}

// RangeSummary covers the filtered record set of one employee.
type RangeSummary struct {
	TotalRecords int64 `json:"totalRecords"`
	PresentDays  int64 `json:"presentDays"`
	AbsentDays   int64 `json:"absentDays"`
}
