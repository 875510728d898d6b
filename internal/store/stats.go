package store

import (
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/huyquangvevo/vcs-hrms/internal/models"
)

// StatsEngine derives summaries on demand. Nothing here is cached or
// persisted; every call reads the store as it stands.
type StatsEngine struct {
	db *gorm.DB
}

func NewStatsEngine(db *gorm.DB) *StatsEngine {
	return &StatsEngine{db: db}
}

// Today returns the querying process's local calendar date.
func Today() string {
	return time.Now().Format(models.DateLayout)
}

// DailySummary counts attendance for asOf against the full directory.
// NotMarkedToday is subtraction without clamping; negative means the
// cascade invariant was broken somewhere.
func (e *StatsEngine) DailySummary(asOf string) (models.DailySummary, error) {
	var s models.DailySummary

	if err := e.db.Model(&models.Employee{}).Count(&s.TotalEmployees).Error; err != nil {
		return s, err
	}
	if err := e.db.Model(&models.Attendance{}).
		Where("date = ? AND status = ?", asOf, models.StatusPresent).
		Count(&s.PresentToday).Error; err != nil {
		return s, err
	}
	if err := e.db.Model(&models.Attendance{}).
		Where("date = ? AND status = ?", asOf, models.StatusAbsent).
		Count(&s.AbsentToday).Error; err != nil {
		return s, err
	}

	s.NotMarkedToday = s.TotalEmployees - s.PresentToday - s.AbsentToday
	return s, nil
}

// EmployeeStats returns all-time counts for every employee, including
// those with no records at all, ordered by name.
func (e *StatsEngine) EmployeeStats() ([]models.EmployeeStat, error) {
	var stats []models.EmployeeStat
	err := e.db.Raw(`
		SELECT e.employee_id, e.full_name, e.department,
		       SUM(CASE WHEN a.status = 'Present' THEN 1 ELSE 0 END) AS present_days,
		       SUM(CASE WHEN a.status = 'Absent' THEN 1 ELSE 0 END) AS absent_days,
		       COUNT(a.id) AS total_marked
		FROM employees e
		LEFT JOIN attendance a ON e.employee_id = a.employee_id
		GROUP BY e.employee_id
		ORDER BY e.full_name`).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}

	for i := range stats {
		stats[i].AttendanceRate = attendanceRate(stats[i].PresentDays, stats[i].AbsentDays)
	}
	return stats, nil
}

// attendanceRate is present/(present+absent) as a rounded percentage,
// 0 when nothing has been marked.
func attendanceRate(present, absent int64) int {
	marked := present + absent
	if marked == 0 {
		return 0
	}
	return int(math.Round(float64(present) / float64(marked) * 100))
}

// RecentDays returns per-day counts for dates with at least one record
// since asOf minus windowDays, newest first. Empty days are omitted.
func (e *StatsEngine) RecentDays(asOf string, windowDays int) ([]models.DayCount, error) {
	day, err := time.Parse(models.DateLayout, asOf)
	if err != nil {
		return nil, err
	}
	cutoff := day.AddDate(0, 0, -windowDays).Format(models.DateLayout)

	var days []models.DayCount
	err = e.db.Raw(`
		SELECT date,
		       SUM(CASE WHEN status = 'Present' THEN 1 ELSE 0 END) AS present,
		       SUM(CASE WHEN status = 'Absent' THEN 1 ELSE 0 END) AS absent
		FROM attendance
		WHERE date >= ?
		GROUP BY date
		ORDER BY date DESC`, cutoff).
		Scan(&days).Error
	return days, err
}
