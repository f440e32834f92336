package editor

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	sessions := r.Group("/editor/sessions")
	{
		sessions.POST("", handler.Open)
		sessions.GET("/:id", handler.Get)
		sessions.POST("/:id/new", handler.StartNew)
		sessions.POST("/:id/from-template/:templateId", handler.StartFromTemplate)
		sessions.POST("/:id/copy-forward", handler.StartCopyForward)
		sessions.POST("/:id/edit/:payslipId", handler.Edit)
		sessions.PUT("/:id/draft", handler.UpdateDraft)
		sessions.POST("/:id/save", handler.Save)
		sessions.PUT("/:id/view", handler.SwitchView)
		sessions.DELETE("/:id", handler.Close)
	}
}
