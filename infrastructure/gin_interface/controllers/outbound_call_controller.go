package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/gulam-moin/interactive-voice-response/application/ports/outbound"
	"github.com/gulam-moin/interactive-voice-response/infrastructure/gin_interface/dto"
	"net/http"
)

type OutboundCallController interface {
	PlaceCall(c *gin.Context)
	RegisterRoutes(g gin.IRoutes)
}

type outboundCallController struct {
	logger     outbound.LoggerPort
	callPlacer outbound.CallPlacerPort
	baseURL    BaseURLPolicy
}

func NewOutboundCallController(logger outbound.LoggerPort, callPlacer outbound.CallPlacerPort,
	baseURL BaseURLPolicy) OutboundCallController {
	return &outboundCallController{
		logger:     logger,
		callPlacer: callPlacer,
		baseURL:    baseURL,
	}
}

func (o *outboundCallController) PlaceCall(c *gin.Context) {
	var req dto.PlaceCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	webhookURL := req.WebhookURL
	if webhookURL == "" {
		webhookURL = o.baseURL.Resolve(c) + "/ivr"
	}

	res, err := o.callPlacer.PlaceCall(c.Request.Context(), outbound.PlaceCallRequest{
		To:         req.To,
		From:       req.From,
		WebhookURL: webhookURL,
	})
	if err != nil {
		o.logger.Error(err, "Failed to place outbound call")
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "failed to place call"})
		return
	}

	c.JSON(http.StatusAccepted, dto.PlaceCallResponse{
		CallID: res.CallID,
		Status: res.Status,
	})
}

func (o *outboundCallController) RegisterRoutes(g gin.IRoutes) {
	g.POST("/calls", o.PlaceCall)
}
