package mock_call

import (
	"github.com/gin-gonic/gin"
	"github.com/gulam-moin/interactive-voice-response/application/ports/inbound"
	"github.com/gulam-moin/interactive-voice-response/application/ports/outbound"
	"github.com/gulam-moin/interactive-voice-response/infrastructure/gin_interface/controllers"
)

func Init(g gin.IRoutes, callFlow inbound.CallFlowPort, baseURL controllers.BaseURLPolicy, logger outbound.LoggerPort) {
	runner := NewRunner(callFlow, logger)
	mockController := NewMockCallController(logger, runner, baseURL)

	mockController.RegisterRoutes(g)
}
