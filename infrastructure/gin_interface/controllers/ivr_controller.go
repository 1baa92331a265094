package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/gulam-moin/interactive-voice-response/application/ports/inbound"
	"github.com/gulam-moin/interactive-voice-response/application/ports/outbound"
	"github.com/gulam-moin/interactive-voice-response/domain"
	"github.com/gulam-moin/interactive-voice-response/infrastructure/gin_interface/dto"
	"net/http"
)

const hangupOnlyTwiML = `<?xml version="1.0" encoding="UTF-8"?><Response><Hangup/></Response>`

type ResponseRenderer interface {
	Render(response domain.Response) (string, error)
	ContentType() string
}

type IVRController interface {
	Entry(c *gin.Context)
	SelectLanguage(c *gin.Context)
	CollectDigit(c *gin.Context)
	Reprompt(c *gin.Context)
	RegisterRoutes(g gin.IRoutes)
}

type ivrController struct {
	logger   outbound.LoggerPort
	callFlow inbound.CallFlowPort
	renderer ResponseRenderer
	baseURL  BaseURLPolicy
}

func NewIVRController(logger outbound.LoggerPort, callFlow inbound.CallFlowPort, renderer ResponseRenderer,
	baseURL BaseURLPolicy) IVRController {
	return &ivrController{
		logger:   logger,
		callFlow: callFlow,
		renderer: renderer,
		baseURL:  baseURL,
	}
}

func (i *ivrController) Entry(c *gin.Context) {
	i.respond(c, i.callFlow.Entry(c.Request.Context()))
}

func (i *ivrController) SelectLanguage(c *gin.Context) {
	form, ok := i.bindForm(c)
	if !ok {
		return
	}
	i.respond(c, i.callFlow.SelectLanguage(c.Request.Context(), form.CallSid, form.Digits))
}

func (i *ivrController) CollectDigit(c *gin.Context) {
	form, ok := i.bindForm(c)
	if !ok {
		return
	}
	i.respond(c, i.callFlow.CollectDigit(c.Request.Context(), inbound.CollectDigitRequest{
		CallID:  form.CallSid,
		Digit:   form.Digits,
		BaseURL: i.baseURL.Resolve(c),
	}))
}

func (i *ivrController) Reprompt(c *gin.Context) {
	form, ok := i.bindForm(c)
	if !ok {
		return
	}
	i.respond(c, i.callFlow.Reprompt(c.Request.Context(), form.CallSid))
}

func (i *ivrController) RegisterRoutes(g gin.IRoutes) {
	g.POST("/ivr", i.Entry)
	g.GET("/ivr", i.Entry)
	g.POST("/language", i.SelectLanguage)
	g.POST("/collect_digit", i.CollectDigit)
	g.POST("/reprompt", i.Reprompt)
}

func (i *ivrController) bindForm(c *gin.Context) (dto.WebhookForm, bool) {
	var form dto.WebhookForm
	if err := c.ShouldBind(&form); err != nil {
		i.logger.WarnWithFields("Rejected malformed webhook", map[string]interface{}{
			"path":  c.FullPath(),
			"error": err.Error(),
		})
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "CallSid is required"})
		return dto.WebhookForm{}, false
	}
	return form, true
}

func (i *ivrController) respond(c *gin.Context, response domain.Response) {
	body, err := i.renderer.Render(response)
	if err != nil {
		i.logger.ErrorWithFields(err, "Failed to render call response", map[string]interface{}{
			"path": c.FullPath(),
		})
		c.Data(http.StatusOK, i.renderer.ContentType(), []byte(hangupOnlyTwiML))
		return
	}
	c.Data(http.StatusOK, i.renderer.ContentType(), []byte(body))
}
