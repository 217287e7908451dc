package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qiniu/pulseboard/internal/dashboard/model"
)

func (api *Api) ListAlertRules(c *gin.Context) {
	rules, err := api.svc.AlertRules(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": rules})
}

func (api *Api) CreateAlertRule(c *gin.Context) {
	var in model.AlertRuleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badParameter(c, "body", "", err.Error())
		return
	}
	r, err := api.svc.CreateAlertRule(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (api *Api) UpdateAlertRule(c *gin.Context) {
	var patch model.AlertRulePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badParameter(c, "body", "", err.Error())
		return
	}
	r, err := api.svc.UpdateAlertRule(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (api *Api) DeleteAlertRule(c *gin.Context) {
	if err := api.svc.DeleteAlertRule(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (api *Api) ListAlertChannels(c *gin.Context) {
	channels, err := api.svc.AlertChannels(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": channels})
}

func (api *Api) CreateAlertChannel(c *gin.Context) {
	var in model.AlertChannelInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badParameter(c, "body", "", err.Error())
		return
	}
	ch, err := api.svc.CreateAlertChannel(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ch)
}

func (api *Api) UpdateAlertChannel(c *gin.Context) {
	var patch model.AlertChannelPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badParameter(c, "body", "", err.Error())
		return
	}
	ch, err := api.svc.UpdateAlertChannel(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ch)
}

func (api *Api) DeleteAlertChannel(c *gin.Context) {
	if err := api.svc.DeleteAlertChannel(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (api *Api) ListAlertEvents(c *gin.Context) {
	events, err := api.svc.AlertEvents(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": events})
}
