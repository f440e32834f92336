package backup

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, postMiddleware ...gin.HandlerFunc) {
	data := r.Group("/data")
	{
		data.GET("/export", handler.Export)
		data.POST("/import", append(postMiddleware, handler.Import)...)
		data.DELETE("", handler.ClearAll)
	}
}
