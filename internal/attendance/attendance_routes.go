package attendance

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	statuses := r.Group("/attendance-statuses")
	{
		statuses.GET("", handler.GetAllStatuses)
		statuses.POST("", handler.CreateStatus)
		statuses.PUT("/:id", handler.UpdateStatus)
		statuses.DELETE("/:id", handler.DeleteStatus)
	}

	records := r.Group("/attendances")
	{
		records.GET("", handler.GetRecords)
		records.POST("", handler.CreateRecord)
		records.PUT("/:id", handler.UpdateRecord)
		records.DELETE("/:id", handler.DeleteRecord)
	}
}
