package controllers

import (
	"context"
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/gulam-moin/interactive-voice-response/application/ports/inbound"
	"github.com/gulam-moin/interactive-voice-response/domain"
	"github.com/gulam-moin/interactive-voice-response/infrastructure/adapters"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

type recordingCallFlow struct {
	languageCalls []string
	digitRequests []inbound.CollectDigitRequest
	reprompts     []string
}

func (r *recordingCallFlow) Entry(_ context.Context) domain.Response {
	return domain.NewResponse(domain.Redirect("/ivr"))
}

func (r *recordingCallFlow) SelectLanguage(_ context.Context, callID string, digit string) domain.Response {
	r.languageCalls = append(r.languageCalls, callID+":"+digit)
	return domain.NewResponse(domain.Say("language", "en-IN"))
}

func (r *recordingCallFlow) CollectDigit(_ context.Context, req inbound.CollectDigitRequest) domain.Response {
	r.digitRequests = append(r.digitRequests, req)
	return domain.NewResponse(domain.Play(req.BaseURL+"/audio/x.mp3"), domain.Hangup())
}

func (r *recordingCallFlow) Reprompt(_ context.Context, callID string) domain.Response {
	r.reprompts = append(r.reprompts, callID)
	return domain.NewResponse(domain.Hangup())
}

type failingRenderer struct{}

func (failingRenderer) Render(_ domain.Response) (string, error) {
	return "", errors.New("render failed")
}

func (failingRenderer) ContentType() string {
	return adapters.TwiMLContentType
}

func newTestRouter(callFlow inbound.CallFlowPort, renderer ResponseRenderer, baseURL BaseURLPolicy) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewIVRController(adapters.NewZerologWrapperFrom(zerolog.Nop()), callFlow, renderer, baseURL)
	controller.RegisterRoutes(router)
	return router
}

func postForm(router http.Handler, path string, form url.Values, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIVRController_Entry(t *testing.T) {
	router := newTestRouter(&recordingCallFlow{}, adapters.NewTwiMLRenderer(), BaseURLPolicy{})

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(method, "/ivr", nil))

		assert.Equal(t, http.StatusOK, w.Code, method)
		assert.Equal(t, adapters.TwiMLContentType, w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), "<Redirect")
	}
}

func TestIVRController_SelectLanguage(t *testing.T) {
	callFlow := &recordingCallFlow{}
	router := newTestRouter(callFlow, adapters.NewTwiMLRenderer(), BaseURLPolicy{})

	w := postForm(router, "/language", url.Values{"CallSid": {"CA1"}, "Digits": {"2"}}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"CA1:2"}, callFlow.languageCalls)
	assert.Contains(t, w.Body.String(), "language</Say>")
}

func TestIVRController_CollectDigitBaseURL(t *testing.T) {
	forwarded := map[string]string{"X-Forwarded-Proto": "https", "X-Forwarded-Host": "abc.ngrok.io"}
	tests := []struct {
		name    string
		policy  BaseURLPolicy
		headers map[string]string
		want    string
	}{
		{name: "request host", want: "http://example.com"},
		{
			name:    "forwarded headers ignored by default",
			headers: map[string]string{"X-Forwarded-Proto": "https", "X-Forwarded-Host": "evil.example.net"},
			want:    "http://example.com",
		},
		{
			name:    "forwarded by a trusted tunnel",
			policy:  BaseURLPolicy{TrustForwardedHeaders: true},
			headers: forwarded,
			want:    "https://abc.ngrok.io",
		},
		{
			name:    "configured public url wins",
			policy:  BaseURLPolicy{PublicBaseURL: "https://ivr.example.com/", TrustForwardedHeaders: true},
			headers: forwarded,
			want:    "https://ivr.example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			callFlow := &recordingCallFlow{}
			router := newTestRouter(callFlow, adapters.NewTwiMLRenderer(), tt.policy)

			w := postForm(router, "/collect_digit", url.Values{"CallSid": {"CA1"}, "Digits": {"4"}}, tt.headers)

			assert.Equal(t, http.StatusOK, w.Code)
			require.Len(t, callFlow.digitRequests, 1)
			assert.Equal(t, inbound.CollectDigitRequest{CallID: "CA1", Digit: "4", BaseURL: tt.want}, callFlow.digitRequests[0])
			assert.Contains(t, w.Body.String(), "<Play>"+tt.want+"/audio/x.mp3</Play>")
		})
	}
}

func TestIVRController_MissingDigitsIsForwarded(t *testing.T) {
	callFlow := &recordingCallFlow{}
	router := newTestRouter(callFlow, adapters.NewTwiMLRenderer(), BaseURLPolicy{})

	w := postForm(router, "/collect_digit", url.Values{"CallSid": {"CA1"}}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, callFlow.digitRequests, 1)
	assert.Empty(t, callFlow.digitRequests[0].Digit)
}

func TestIVRController_Reprompt(t *testing.T) {
	callFlow := &recordingCallFlow{}
	router := newTestRouter(callFlow, adapters.NewTwiMLRenderer(), BaseURLPolicy{})

	w := postForm(router, "/reprompt", url.Values{"CallSid": {"CA9"}}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"CA9"}, callFlow.reprompts)
}

func TestIVRController_RejectsMissingCallSid(t *testing.T) {
	callFlow := &recordingCallFlow{}
	router := newTestRouter(callFlow, adapters.NewTwiMLRenderer(), BaseURLPolicy{})

	w := postForm(router, "/collect_digit", url.Values{"Digits": {"4"}}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, callFlow.digitRequests)
}

func TestIVRController_RenderFailureHangsUp(t *testing.T) {
	router := newTestRouter(&recordingCallFlow{}, failingRenderer{}, BaseURLPolicy{})

	w := postForm(router, "/reprompt", url.Values{"CallSid": {"CA1"}}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<Hangup/>")
}
