package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"video_studio/internal/service"

	"github.com/gin-gonic/gin"
)

type createProjectRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	FolderID    *string `json:"folderId"`
}

// updateProjectRequest keeps description/folderId as raw JSON so an explicit
// null (clear the field) can be told apart from an omitted field.
type updateProjectRequest struct {
	Name        *string         `json:"name"`
	Description json.RawMessage `json:"description"`
	FolderID    json.RawMessage `json:"folderId"`
}

var jsonNull = []byte("null")

// optionalString decodes a raw JSON field into (value, present). A missing
// field is (nil, false); an explicit null is (nil, true).
func optionalString(raw json.RawMessage) (*string, bool, error) {
	if raw == nil {
		return nil, false, nil
	}
	if bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return nil, true, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false, err
	}
	return &s, true, nil
}

// @Summary      List projects
// @Description  All projects owned by the caller, most recently updated first.
// @Tags         projects
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "projects"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/projects [get]
// @Security     BearerAuth
func (h *Handler) listProjects(c *gin.Context) {
	projects, err := h.services.Projects.List(c.Request.Context(), callerID(c))
	if err != nil {
		h.serviceError(c, "projects_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// @Summary      Get project
// @Tags         projects
// @Produce      json
// @Param        id   path  string  true  "Project id"
// @Success      200  {object}  map[string]interface{}  "project"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/projects/{id} [get]
// @Security     BearerAuth
func (h *Handler) getProject(c *gin.Context) {
	project, err := h.services.Projects.Get(c.Request.Context(), c.Param("id"), callerID(c))
	if err != nil {
		h.serviceError(c, "projects_get_failed", err, "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": project})
}

// @Summary      Create project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        body  body  createProjectRequest  true  "Project payload"
// @Success      201  {object}  map[string]interface{}  "project"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/projects [post]
// @Security     BearerAuth
func (h *Handler) createProject(c *gin.Context) {
	var input createProjectRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	project, err := h.services.Projects.Create(c.Request.Context(), callerID(c), service.CreateProjectParams{
		Name:        input.Name,
		Description: input.Description,
		FolderID:    input.FolderID,
	})
	if err != nil {
		h.serviceError(c, "projects_create_failed", err, "name", input.Name)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"project": project})
}

// @Summary      Update project
// @Description  Partial update; description/folderId set to null clear the field, omitted fields are unchanged.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "Project id"
// @Param        body  body  updateProjectRequest  true  "Fields to change"
// @Success      200  {object}  map[string]interface{}  "project"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/projects/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateProject(c *gin.Context) {
	var input updateProjectRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	params := service.UpdateProjectParams{Name: input.Name}

	var err error
	if params.Description, params.SetDescription, err = optionalString(input.Description); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "description must be a string or null"})
		return
	}
	if params.FolderID, params.SetFolderID, err = optionalString(input.FolderID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "folderId must be a string or null"})
		return
	}

	project, err := h.services.Projects.Update(c.Request.Context(), c.Param("id"), callerID(c), params)
	if err != nil {
		h.serviceError(c, "projects_update_failed", err, "id", c.Param("id"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

// @Summary      Delete project
// @Tags         projects
// @Produce      json
// @Param        id   path  string  true  "Project id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/projects/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteProject(c *gin.Context) {
	if err := h.services.Projects.Delete(c.Request.Context(), c.Param("id"), callerID(c)); err != nil {
		h.serviceError(c, "projects_delete_failed", err, "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "project deleted successfully"})
}
