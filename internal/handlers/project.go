package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"devstudio/internal/models"
	"devstudio/internal/repository"
	"devstudio/pkg/constants"
)

type ProjectHandler struct {
	projects *repository.ProjectRepository
}

func NewProjectHandler(projects *repository.ProjectRepository) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

type CreateProjectRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  *string `json:"description"`
	ImageURL     *string `json:"image_url"`
	ProjectURL   *string `json:"project_url"`
	MediaType    string  `json:"media_type" binding:"omitempty,oneof=image video"`
	DisplayOrder int     `json:"display_order"`
}

type UpdateProjectRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	ImageURL     *string `json:"image_url"`
	ProjectURL   *string `json:"project_url"`
	MediaType    *string `json:"media_type" binding:"omitempty,oneof=image video"`
	IsActive     *bool   `json:"is_active"`
	DisplayOrder *int    `json:"display_order"`
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projects.Create(c.Request.Context(), repository.NewProject{
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		ProjectURL:   req.ProjectURL,
		MediaType:    models.MediaType(req.MediaType),
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		log.Printf("CreateProject error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
		return
	}

	project, err := h.projects.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		log.Printf("GetProject error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get project"})
		return
	}
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": constants.ErrProjectNotFound})
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) GetAllProjects(c *gin.Context) {
	projects, err := h.projects.GetAll(c.Request.Context())
	if err != nil {
		log.Printf("GetAllProjects error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list projects"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// GetActiveProjects serves the public portfolio page.
func (h *ProjectHandler) GetActiveProjects(c *gin.Context) {
	projects, err := h.projects.GetActive(c.Request.Context())
	if err != nil {
		log.Printf("GetActiveProjects error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list projects"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := repository.UpdateProject{
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		ProjectURL:   req.ProjectURL,
		IsActive:     req.IsActive,
		DisplayOrder: req.DisplayOrder,
	}
	if req.MediaType != nil {
		mediaType := models.MediaType(*req.MediaType)
		update.MediaType = &mediaType
	}

	project, err := h.projects.Update(c.Request.Context(), uint(id), update)
	if err != nil {
		log.Printf("UpdateProject error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": constants.ErrProjectNotFound})
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
		return
	}

	deleted, err := h.projects.Delete(c.Request.Context(), uint(id))
	if err != nil {
		log.Printf("DeleteProject error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": constants.ErrProjectNotFound})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
