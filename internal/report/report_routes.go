package report

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, postMiddleware ...gin.HandlerFunc) {
	r.GET("/payslips/:id/pdf", handler.PayslipPDF)

	reports := r.Group("/reports")
	{
		reports.POST("/semi-annual", append(postMiddleware, handler.RequestSemiAnnual)...)
		reports.GET("/semi-annual/:id", handler.DownloadSemiAnnual)
	}
}
