package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qiniu/pulseboard/internal/dashboard/agent"
)

type sendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

func (api *Api) GetAgentContext(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"context": api.agent.Context()})
}

func (api *Api) SetAgentContext(c *gin.Context) {
	var ctx agent.Context
	if err := c.ShouldBindJSON(&ctx); err != nil {
		badParameter(c, "body", "", err.Error())
		return
	}
	api.agent.SetContext(&ctx)
	c.JSON(http.StatusOK, gin.H{"context": api.agent.Context()})
}

func (api *Api) ClearAgentContext(c *gin.Context) {
	api.agent.SetContext(nil)
	c.Status(http.StatusNoContent)
}

func (api *Api) ListAgentMessages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": api.agent.Messages()})
}

// SendAgentMessage returns the stored user message; the reply shows up in the transcript later.
func (api *Api) SendAgentMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badParameter(c, "content", "", err.Error())
		return
	}
	msg, err := api.agent.SendMessage(req.Content)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, msg)
}
