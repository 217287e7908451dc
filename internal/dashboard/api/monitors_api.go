package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qiniu/pulseboard/internal/dashboard/model"
)

func (api *Api) GetMonitor(c *gin.Context) {
	m, err := api.svc.MonitorByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (api *Api) ListLogs(c *gin.Context) {
	filter := model.LogFilter{Keyword: c.Query("keyword")}
	if lv := c.Query("level"); lv != "" && lv != "all" {
		level, ok := model.ParseLogLevel(lv)
		if !ok {
			badParameter(c, "level", lv, "level must be one of info, warn, error, debug")
			return
		}
		filter.Level = level
	}
	logs, err := api.svc.Logs(c.Request.Context(), c.Param("id"), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": logs})
}

func (api *Api) ListMetricSeries(c *gin.Context) {
	series, err := api.svc.MonitorMetricSeries(c.Request.Context(), c.Param("id"), c.Query("range"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": series})
}

func (api *Api) GetMetricSeries(c *gin.Context) {
	series, err := api.svc.MetricHistory(c.Request.Context(), c.Param("id"), c.Param("metricKey"), c.Query("range"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, series)
}
