package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qiniu/pulseboard/internal/dashboard/model"
	"github.com/qiniu/pulseboard/internal/dashboard/service"
)

type createProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type createMonitorRequest struct {
	service.MonitorInput
	Group model.Category `json:"group"`
}

func (api *Api) ListProjects(c *gin.Context) {
	projects, err := api.svc.Projects(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": projects})
}

func (api *Api) CreateProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badParameter(c, "body", "", err.Error())
		return
	}
	p, err := api.svc.AddProject(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (api *Api) GetProject(c *gin.Context) {
	p, err := api.svc.ProjectByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// project resolves the :code path parameter without facade latency.
func (api *Api) project(c *gin.Context) (model.Project, bool) {
	p, err := api.svc.State().ProjectByCode(c.Param("code"))
	if err != nil {
		writeError(c, err)
		return model.Project{}, false
	}
	return p, true
}

func (api *Api) ListMonitors(c *gin.Context) {
	p, ok := api.project(c)
	if !ok {
		return
	}
	var (
		monitors []model.Monitor
		err      error
	)
	switch group := c.Query("group"); group {
	case "":
		monitors, err = api.svc.Monitors(c.Request.Context(), p.ID)
	case string(model.CategoryInfrastructure):
		monitors, err = api.svc.Infrastructure(c.Request.Context(), p.ID)
	case string(model.CategoryBusiness):
		monitors, err = api.svc.Business(c.Request.Context(), p.ID)
	default:
		badParameter(c, "group", group, "group must be infrastructure or business")
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": monitors})
}

func (api *Api) CreateMonitor(c *gin.Context) {
	p, ok := api.project(c)
	if !ok {
		return
	}
	var req createMonitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badParameter(c, "body", "", err.Error())
		return
	}
	group := req.Group
	if group == "" {
		group = model.CategoryInfrastructure
	}
	m, err := api.svc.AddMonitor(c.Request.Context(), req.MonitorInput, group, p.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (api *Api) ListMonitorRefs(c *gin.Context) {
	p, ok := api.project(c)
	if !ok {
		return
	}
	refs, err := api.svc.MonitorRefs(c.Request.Context(), p.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": refs})
}
