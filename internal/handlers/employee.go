package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/huyquangvevo/vcs-hrms/internal/models"
	"github.com/huyquangvevo/vcs-hrms/internal/store"
)

type EmployeeHandler struct {
	store *store.EmployeeStore
}

func NewEmployeeHandler(db *gorm.DB) *EmployeeHandler {
	return &EmployeeHandler{store: store.NewEmployeeStore(db)}
}

func (h *EmployeeHandler) List(c *gin.Context) {
	emps, err := h.store.List()
	if err != nil {
		log.Printf("Error when fetch employees: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to fetch employees")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": emps, "count": len(emps)})
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	emp, err := h.store.GetByEmployeeID(c.Param("id"))
	if errors.Is(err, store.ErrEmployeeNotFound) {
		fail(c, http.StatusNotFound, "Employee not found")
		return
	}
	if err != nil {
		log.Printf("Error when fetch employee: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to fetch employee")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": emp})
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req models.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, err)
		return
	}

	emp := models.Employee{
		EmployeeID: strings.TrimSpace(req.EmployeeID),
		FullName:   strings.TrimSpace(req.FullName),
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Department: strings.TrimSpace(req.Department),
	}

	err := h.store.Create(&emp)
	switch {
	case errors.Is(err, store.ErrDuplicateEmployeeID):
		failFields(c, http.StatusConflict, "Employee ID already exists", []store.FieldError{
			{Field: "employee_id", Message: "This Employee ID is already taken"},
		})
	case errors.Is(err, store.ErrDuplicateEmail):
		failFields(c, http.StatusConflict, "Email already exists", []store.FieldError{
			{Field: "email", Message: "This email is already registered"},
		})
	case err != nil:
		log.Printf("Error when create employee: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to create employee")
	default:
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Employee created successfully",
			"data":    emp,
		})
	}
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	emp, err := h.store.Delete(c.Param("id"))
	if errors.Is(err, store.ErrEmployeeNotFound) {
		fail(c, http.StatusNotFound, "Employee not found")
		return
	}
	if err != nil {
		log.Printf("Error when delete employee: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to delete employee")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Employee deleted successfully",
		"data":    emp,
	})
}
