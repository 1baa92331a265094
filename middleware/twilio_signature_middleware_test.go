package middleware

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"github.com/gin-gonic/gin"
	"github.com/gulam-moin/interactive-voice-response/infrastructure/adapters"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"testing"
)

const testAuthToken = "12345"

func twilioSignature(fullURL string, form url.Values) string {
	keys := make([]string, 0, len(form))
	for k := range form {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(fullURL)
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(form.Get(k))
	}

	mac := hmac.New(sha1.New, []byte(testAuthToken))
	mac.Write([]byte(b.String()))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func newSignatureRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	baseURL := func(c *gin.Context) string {
		return "https://ivr.example.com"
	}
	router.Use(TwilioSignature(testAuthToken, baseURL, adapters.NewZerologWrapperFrom(zerolog.Nop())))
	router.POST("/collect_digit", func(c *gin.Context) {
		c.String(http.StatusOK, c.PostForm("Digits"))
	})
	return router
}

func TestTwilioSignature(t *testing.T) {
	form := url.Values{"CallSid": {"CA1"}, "Digits": {"4"}}
	valid := twilioSignature("https://ivr.example.com/collect_digit", form)

	tests := []struct {
		name       string
		signature  string
		wantStatus int
	}{
		{name: "valid signature", signature: valid, wantStatus: http.StatusOK},
		{name: "missing signature", signature: "", wantStatus: http.StatusForbidden},
		{name: "wrong signature", signature: twilioSignature("https://evil.example.com/collect_digit", form), wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newSignatureRouter()
			req := httptest.NewRequest(http.MethodPost, "/collect_digit", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			if tt.signature != "" {
				req.Header.Set(TwilioSignatureHeader, tt.signature)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "4", w.Body.String())
			}
		})
	}
}
