package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qiniu/pulseboard/internal/dashboard/layout"
	"github.com/qiniu/pulseboard/internal/dashboard/model"
)

type simulationStatus struct {
	Running  bool   `json:"running"`
	Ticks    int64  `json:"ticks"`
	Interval string `json:"interval"`
}

func (api *Api) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (api *Api) ResolveRoute(c *gin.Context) {
	route, err := api.svc.ResolveRoute(c.Request.Context(), c.Query("path"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}

func (api *Api) GetLayout(c *gin.Context) {
	c.JSON(http.StatusOK, layout.Resolve(model.MonitorType(c.Param("type"))))
}

func (api *Api) simulationStatus() simulationStatus {
	return simulationStatus{
		Running:  api.engine.Running(),
		Ticks:    api.engine.Ticks(),
		Interval: api.engine.Interval().String(),
	}
}

func (api *Api) GetSimulation(c *gin.Context) {
	c.JSON(http.StatusOK, api.simulationStatus())
}

func (api *Api) StartSimulation(c *gin.Context) {
	api.engine.Start(api.base)
	c.JSON(http.StatusOK, api.simulationStatus())
}

func (api *Api) StopSimulation(c *gin.Context) {
	api.engine.Stop()
	c.JSON(http.StatusOK, api.simulationStatus())
}
