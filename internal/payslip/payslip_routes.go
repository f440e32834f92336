package payslip

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the payslip endpoints on an authenticated group.
// postMiddleware runs in front of create requests only (idempotency keys).
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, postMiddleware ...gin.HandlerFunc) {
	payslips := r.Group("/payslips")
	{
		payslips.GET("", handler.GetAll)
		payslips.GET("/latest", handler.GetLatest)
		payslips.GET("/draft", handler.NewDraft)
		payslips.GET("/period", handler.GetByPeriod)
		payslips.GET("/period/:year/:month", handler.GetByPeriodEndingAt)
		payslips.POST("/calculate", handler.Calculate)
		payslips.GET("/:id", handler.GetByID)
		payslips.GET("/:id/copy-forward", handler.CopyForward)
		payslips.POST("", append(postMiddleware, handler.Create)...)
		payslips.PUT("/:id", handler.Update)
		payslips.DELETE("/:id", handler.Delete)
	}
}
