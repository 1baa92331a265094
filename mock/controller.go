package mock_call

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gulam-moin/interactive-voice-response/application/ports/outbound"
	"github.com/gulam-moin/interactive-voice-response/infrastructure/gin_interface/controllers"
	"net/http"
)

type MockCallController interface {
	SimulateCall(c *gin.Context)
	RegisterRoutes(g gin.IRoutes)
}

type mockCallController struct {
	logger  outbound.LoggerPort
	runner  *Runner
	baseURL controllers.BaseURLPolicy
}

func NewMockCallController(logger outbound.LoggerPort, runner *Runner, baseURL controllers.BaseURLPolicy) MockCallController {
	return &mockCallController{
		logger:  logger,
		runner:  runner,
		baseURL: baseURL,
	}
}

func (m *mockCallController) SimulateCall(c *gin.Context) {
	var req MockCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	callID := "MOCK" + uuid.NewString()
	m.logger.InfoWithFields("Simulating call", map[string]interface{}{
		"call_id": callID,
	})

	transcript := m.runner.Run(c.Request.Context(), callID, req, m.baseURL.Resolve(c))
	c.JSON(http.StatusOK, transcript)
}

func (m *mockCallController) RegisterRoutes(g gin.IRoutes) {
	g.POST("/mock/call", m.SimulateCall)
}
