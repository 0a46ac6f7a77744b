package salaryconfig

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	configs := r.Group("/employees/:employeeId/salary-config")
	{
		configs.GET("", handler.Get)
		configs.PUT("", handler.Put)
		configs.DELETE("/items/:itemId", handler.DeleteItem)
	}
}
