package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/gulam-moin/interactive-voice-response/application/ports/outbound"
	"github.com/twilio/twilio-go/client"
	"net/http"
)

const TwilioSignatureHeader = "X-Twilio-Signature"

// TwilioSignature rejects webhook requests that were not signed with the
// account's auth token. baseURL resolves the scheme://host Twilio used to
// reach the service.
func TwilioSignature(authToken string, baseURL func(c *gin.Context) string, logger outbound.LoggerPort) gin.HandlerFunc {
	validator := client.NewRequestValidator(authToken)

	return func(c *gin.Context) {
		signature := c.GetHeader(TwilioSignatureHeader)
		if signature == "" {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		if err := c.Request.ParseForm(); err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}

		params := make(map[string]string, len(c.Request.PostForm))
		for key, values := range c.Request.PostForm {
			if len(values) > 0 {
				params[key] = values[0]
			}
		}

		url := baseURL(c) + c.Request.URL.RequestURI()
		if !validator.Validate(url, params, signature) {
			logger.WarnWithFields("Rejected webhook with invalid signature", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Next()
	}
}
