package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/gulam-moin/interactive-voice-response/application/ports/outbound"
	"github.com/gulam-moin/interactive-voice-response/infrastructure/adapters"
	"github.com/gulam-moin/interactive-voice-response/infrastructure/gin_interface/dto"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type fakeCallPlacer struct {
	requests []outbound.PlaceCallRequest
	err      error
}

func (f *fakeCallPlacer) PlaceCall(_ context.Context, req outbound.PlaceCallRequest) (*outbound.PlaceCallResponse, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &outbound.PlaceCallResponse{CallID: "CA42", Status: "queued"}, nil
}

func newOutboundRouter(placer outbound.CallPlacerPort) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewOutboundCallController(adapters.NewZerologWrapperFrom(zerolog.Nop()), placer, BaseURLPolicy{PublicBaseURL: "https://ivr.example.com"}).RegisterRoutes(router)
	return router
}

func postJSON(router http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestOutboundCallController_PlaceCall(t *testing.T) {
	placer := &fakeCallPlacer{}
	router := newOutboundRouter(placer)

	w := postJSON(router, "/calls", `{"to":"+919800000000"}`)

	require.Equal(t, http.StatusAccepted, w.Code)
	var res dto.PlaceCallResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, dto.PlaceCallResponse{CallID: "CA42", Status: "queued"}, res)
	require.Len(t, placer.requests, 1)
	assert.Equal(t, outbound.PlaceCallRequest{To: "+919800000000", WebhookURL: "https://ivr.example.com/ivr"}, placer.requests[0])
}

func TestOutboundCallController_Validation(t *testing.T) {
	placer := &fakeCallPlacer{}
	router := newOutboundRouter(placer)

	for _, body := range []string{`{}`, `{"to":"9800000000"}`, `{"to":"+919800000000","url":"not a url"}`} {
		w := postJSON(router, "/calls", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
	assert.Empty(t, placer.requests)
}

func TestOutboundCallController_ProviderFailure(t *testing.T) {
	router := newOutboundRouter(&fakeCallPlacer{err: errors.New("boom")})

	w := postJSON(router, "/calls", `{"to":"+919800000000"}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
