// Package api exposes the dashboard backend over gin.
package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/qiniu/pulseboard/internal/dashboard/agent"
	"github.com/qiniu/pulseboard/internal/dashboard/publisher"
	"github.com/qiniu/pulseboard/internal/dashboard/service"
	"github.com/qiniu/pulseboard/internal/dashboard/simulation"
	"github.com/qiniu/pulseboard/internal/middleware"
	"golang.org/x/time/rate"
)

// Deps are the collaborators the handlers read and drive. BaseCtx bounds simulation runs
// started over HTTP. Limiter, when set, throttles the /v1 routes.
type Deps struct {
	BaseCtx context.Context
	Service *service.Service
	Engine  *simulation.Engine
	Hub     *publisher.Hub
	Agent   *agent.Session
	Limiter *rate.Limiter
}

type Api struct {
	base   context.Context
	svc    *service.Service
	engine *simulation.Engine
	hub    *publisher.Hub
	agent  *agent.Session
	limit  *rate.Limiter
}

func NewApi(router *gin.Engine, d Deps) *Api {
	base := d.BaseCtx
	if base == nil {
		base = context.Background()
	}
	api := &Api{
		base:   base,
		svc:    d.Service,
		engine: d.Engine,
		hub:    d.Hub,
		agent:  d.Agent,
		limit:  d.Limiter,
	}
	api.setupRouters(router)
	return api
}

func (api *Api) setupRouters(router *gin.Engine) {
	router.GET("/healthz", api.Healthz)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1", middleware.RateLimit(api.limit))

	// 项目
	v1.GET("/projects", api.ListProjects)
	v1.POST("/projects", api.CreateProject)
	v1.GET("/projects/:code", api.GetProject)
	v1.GET("/projects/:code/monitors", api.ListMonitors)
	v1.POST("/projects/:code/monitors", api.CreateMonitor)
	v1.GET("/projects/:code/monitor-refs", api.ListMonitorRefs)
	v1.GET("/projects/:code/stream", api.Stream)

	// 监控详情
	v1.GET("/monitors/:id", api.GetMonitor)
	v1.GET("/monitors/:id/logs", api.ListLogs)
	v1.GET("/monitors/:id/metrics", api.ListMetricSeries)
	v1.GET("/monitors/:id/metrics/:metricKey", api.GetMetricSeries)

	// 告警
	v1.GET("/alert-rules", api.ListAlertRules)
	v1.POST("/alert-rules", api.CreateAlertRule)
	v1.PUT("/alert-rules/:id", api.UpdateAlertRule)
	v1.DELETE("/alert-rules/:id", api.DeleteAlertRule)
	v1.GET("/alert-channels", api.ListAlertChannels)
	v1.POST("/alert-channels", api.CreateAlertChannel)
	v1.PUT("/alert-channels/:id", api.UpdateAlertChannel)
	v1.DELETE("/alert-channels/:id", api.DeleteAlertChannel)
	v1.GET("/alert-events", api.ListAlertEvents)

	// 诊断助手
	v1.GET("/agent/context", api.GetAgentContext)
	v1.PUT("/agent/context", api.SetAgentContext)
	v1.DELETE("/agent/context", api.ClearAgentContext)
	v1.GET("/agent/messages", api.ListAgentMessages)
	v1.POST("/agent/messages", api.SendAgentMessage)

	v1.GET("/routes/resolve", api.ResolveRoute)
	v1.GET("/layouts/:type", api.GetLayout)

	v1.GET("/simulation", api.GetSimulation)
	v1.POST("/simulation/start", api.StartSimulation)
	v1.POST("/simulation/stop", api.StopSimulation)
}
