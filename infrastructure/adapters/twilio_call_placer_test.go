package adapters

import (
	"context"
	"errors"
	"github.com/gulam-moin/interactive-voice-response/application/ports/outbound"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"testing"
)

type fakeCallCreator struct {
	params *twilioApi.CreateCallParams
	err    error
}

func (f *fakeCallCreator) CreateCall(params *twilioApi.CreateCallParams) (*twilioApi.ApiV2010Call, error) {
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	sid := "CA0123456789"
	return &twilioApi.ApiV2010Call{Sid: &sid}, nil
}

func TestTwilioCallPlacer_PlaceCall(t *testing.T) {
	creator := &fakeCallCreator{}
	placer := NewTwilioCallPlacer(creator, "+15005550006", newTestLogger())

	res, err := placer.PlaceCall(context.Background(), outbound.PlaceCallRequest{
		To:         "+919800000000",
		WebhookURL: "https://ivr.example.com/ivr",
	})

	require.NoError(t, err)
	assert.Equal(t, "CA0123456789", res.CallID)
	require.NotNil(t, creator.params)
	assert.Equal(t, "+919800000000", *creator.params.To)
	assert.Equal(t, "+15005550006", *creator.params.From)
	assert.Equal(t, "https://ivr.example.com/ivr", *creator.params.Url)
	assert.Equal(t, "POST", *creator.params.Method)
}

func TestTwilioCallPlacer_Errors(t *testing.T) {
	placer := NewTwilioCallPlacer(&fakeCallCreator{}, "", newTestLogger())
	_, err := placer.PlaceCall(context.Background(), outbound.PlaceCallRequest{To: "+919800000000"})
	assert.Error(t, err)

	upstream := errors.New("21211 invalid to number")
	placer = NewTwilioCallPlacer(&fakeCallCreator{err: upstream}, "+15005550006", newTestLogger())
	_, err = placer.PlaceCall(context.Background(), outbound.PlaceCallRequest{To: "+919800000000"})
	assert.ErrorIs(t, err, upstream)
}
