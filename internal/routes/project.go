package routes

import (
	"github.com/gin-gonic/gin"

	"backoffice/internal/handlers"
)

type ProjectRoutes struct {
	handler *handlers.ProjectHandler
}

func NewProjectRoutes(handler *handlers.ProjectHandler) *ProjectRoutes {
	return &ProjectRoutes{handler: handler}
}

func (r *ProjectRoutes) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects")
	{
		projects.POST("", r.handler.CreateProject)
		projects.GET("/:id", r.handler.GetProject)
		projects.PATCH("/:id/status", r.handler.UpdateProjectStatus)
		projects.DELETE("/:id", r.handler.DeleteProject)
		projects.POST("/:id/assignments", r.handler.AssignEmployee)
		projects.GET("/:id/assignments", r.handler.ListAssignments)
	}
}
