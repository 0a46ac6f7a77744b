package position

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	positions := r.Group("/positions")
	{
		positions.GET("", handler.GetAll)
		positions.GET("/:id", handler.GetByID)
		positions.POST("", handler.Create)
		positions.PUT("/:id", handler.Update)
		positions.DELETE("/:id", handler.Delete)
	}
}
