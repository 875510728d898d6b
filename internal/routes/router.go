package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/huyquangvevo/vcs-hrms/internal/handlers"
	"github.com/huyquangvevo/vcs-hrms/internal/middleware"
)

func New(db *gorm.DB, corsOrigin string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.CORS(corsOrigin))

	emp := handlers.NewEmployeeHandler(db)
	atd := handlers.NewAttendanceHandler(db)

	r.GET("/", handlers.Root)
	r.GET("/api/health", handlers.Health)

	api := r.Group("/api")
	{
		api.GET("/employees", emp.List)
		api.GET("/employees/:id", emp.Get)
		api.POST("/employees", emp.Create)
		api.DELETE("/employees/:id", emp.Delete)

		api.GET("/attendance", atd.List)
		api.GET("/attendance/stats", atd.Stats)
		api.GET("/attendance/employee/:id", atd.ByEmployee)
		api.POST("/attendance", atd.Mark)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Endpoint not found"})
	})

	return r
}
