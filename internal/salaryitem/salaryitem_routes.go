package salaryitem

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	items := r.Group("/salary-items")
	{
		items.GET("", handler.GetAll)
		items.GET("/:id", handler.GetByID)
		items.POST("", handler.Create)
		items.PUT("/:id", handler.Update)
		items.DELETE("/:id", handler.Delete)
	}
}
