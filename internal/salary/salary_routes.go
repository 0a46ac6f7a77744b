package salary

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	salaries := r.Group("/salaries")
	{
		salaries.GET("", handler.GetAll)
		salaries.GET("/:id", handler.GetByID)
		if redisClient != nil {
			salaries.POST("/generate", middleware.Idempotency(redisClient), handler.Generate)
		} else {
			salaries.POST("/generate", handler.Generate)
		}
		salaries.POST("/:id/mark-paid", handler.MarkAsPaid)
	}
}
