package socialsecurity

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	configs := r.Group("/social-security/configs")
	{
		configs.GET("", handler.GetAllConfigs)
		configs.POST("", handler.CreateConfig)
		configs.PUT("/:id", handler.UpdateConfig)
		configs.PUT("/:id/set-default", handler.SetDefaultConfig)
	}

	enrollments := r.Group("/social-security/employees")
	{
		enrollments.GET("", handler.GetEnrollments)
		enrollments.POST("", handler.CreateEnrollment)
		enrollments.POST("/batch", handler.BatchCreateEnrollments)
		enrollments.PUT("/:id", handler.UpdateEnrollment)
	}
}
