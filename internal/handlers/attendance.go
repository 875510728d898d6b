package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/huyquangvevo/vcs-hrms/internal/models"
	"github.com/huyquangvevo/vcs-hrms/internal/store"
)

type AttendanceHandler struct {
	store *store.AttendanceStore
	stats *store.StatsEngine
}

func NewAttendanceHandler(db *gorm.DB) *AttendanceHandler {
	return &AttendanceHandler{
		store: store.NewAttendanceStore(db),
		stats: store.NewStatsEngine(db),
	}
}

// dateQueryErrors validates the optional date-shaped query params.
func dateQueryErrors(c *gin.Context, names ...string) []store.FieldError {
	var errs []store.FieldError
	for _, name := range names {
		v := c.Query(name)
		if v == "" {
			continue
		}
		if _, err := time.Parse(models.DateLayout, v); err != nil {
			errs = append(errs, store.FieldError{
				Field:   name,
				Message: "Invalid date format (use YYYY-MM-DD)",
			})
		}
	}
	return errs
}

func (h *AttendanceHandler) List(c *gin.Context) {
	if errs := dateQueryErrors(c, "date", "from", "to"); len(errs) > 0 {
		failFields(c, http.StatusBadRequest, "Validation failed", errs)
		return
	}

	records, err := h.store.List(store.Filter{
		Date:       c.Query("date"),
		From:       c.Query("from"),
		To:         c.Query("to"),
		EmployeeID: c.Query("employee_id"),
	})
	if err != nil {
		log.Printf("Error when fetch attendance: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to fetch attendance records")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": records, "count": len(records)})
}

func (h *AttendanceHandler) Stats(c *gin.Context) {
	today := store.Today()

	summary, err := h.stats.DailySummary(today)
	if err != nil {
		log.Printf("Error when fetch stats: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to fetch statistics")
		return
	}
	employeeStats, err := h.stats.EmployeeStats()
	if err != nil {
		log.Printf("Error when fetch stats: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to fetch statistics")
		return
	}
	recentDays, err := h.stats.RecentDays(today, 7)
	if err != nil {
		log.Printf("Error when fetch stats: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to fetch statistics")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"summary":       summary,
			"employeeStats": employeeStats,
			"recentDays":    recentDays,
		},
	})
}

func (h *AttendanceHandler) ByEmployee(c *gin.Context) {
	if errs := dateQueryErrors(c, "from", "to"); len(errs) > 0 {
		failFields(c, http.StatusBadRequest, "Validation failed", errs)
		return
	}

	emp, records, summary, err := h.store.ListForEmployee(c.Param("id"), c.Query("from"), c.Query("to"))
	if errors.Is(err, store.ErrEmployeeNotFound) {
		fail(c, http.StatusNotFound, "Employee not found")
		return
	}
	if err != nil {
		log.Printf("Error when fetch employee attendance: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to fetch attendance records")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"employee": emp,
			"records":  records,
			"summary":  summary,
		},
	})
}

func (h *AttendanceHandler) Mark(c *gin.Context) {
	var req models.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, err)
		return
	}

	record, created, err := h.store.Mark(strings.TrimSpace(req.EmployeeID), req.Date, req.Status)
	if errors.Is(err, store.ErrEmployeeNotFound) {
		failFields(c, http.StatusNotFound, "Employee not found", []store.FieldError{
			{Field: "employee_id", Message: "No employee found with this ID"},
		})
		return
	}
	if err != nil {
		log.Printf("Error when mark attendance: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to mark attendance")
		return
	}

	if created {
		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Attendance marked", "data": record})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Attendance updated", "data": record})
}
