package template

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, postMiddleware ...gin.HandlerFunc) {
	templates := r.Group("/templates")
	{
		templates.GET("", handler.GetAll)
		templates.GET("/fields", handler.GetFields)
		templates.GET("/:id", handler.GetByID)
		templates.GET("/:id/apply", handler.Apply)
		templates.POST("", append(postMiddleware, handler.Create)...)
		templates.POST("/from-payslip", handler.FromPayslip)
		templates.POST("/:id/duplicate", handler.Duplicate)
		templates.PUT("/:id", handler.Update)
		templates.DELETE("/:id", handler.Delete)
	}
}
