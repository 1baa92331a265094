package services

import (
	"github.com/gulam-moin/interactive-voice-response/application/ports/inbound"
	"github.com/gulam-moin/interactive-voice-response/domain"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestMessageComposer_Compose(t *testing.T) {
	composer := NewMessageComposer()

	tests := []struct {
		name   string
		params inbound.ComposeMessageParams
		want   string
	}{
		{
			name: "english",
			params: inbound.ComposeMessageParams{
				Language:   domain.English,
				PlaceLabel: "Mumbai, Maharashtra",
				Weather:    domain.WeatherReading{Description: "haze", TemperatureCelsius: ptr(29.5)},
				Price:      45,
			},
			want: "Current weather in Mumbai, Maharashtra: haze, temperature 29.5 degrees Celsius. Today's tomato price is 45 rupees per kilogram.",
		},
		{
			name: "hindi",
			params: inbound.ComposeMessageParams{
				Language:   domain.Hindi,
				PlaceLabel: "New Delhi, Delhi",
				Weather:    domain.WeatherReading{Description: "smoke", TemperatureCelsius: ptr(31)},
				Price:      30,
			},
			want: "New Delhi, Delhi में मौजूदा मौसम smoke है, तापमान 31 डिग्री सेल्सियस। आज टमाटर का भाव 30 रुपये प्रति किलो है।",
		},
		{
			name: "gujarati",
			params: inbound.ComposeMessageParams{
				Language:   domain.Gujarati,
				PlaceLabel: "Ahmedabad, Gujarat",
				Weather:    domain.WeatherReading{Description: "clear sky", TemperatureCelsius: ptr(35.25)},
				Price:      28,
			},
			want: "Ahmedabad, Gujarat માં હાલનું હવામાન clear sky છે, તાપમાન 35.25 ડિગ્રિ સેલ્સિયસ. આજે ટામેટાની કિંમત 28 રૂપિયા પ્રતિ કિલોગ્રામ છે.",
		},
		{
			name: "unsupported language uses the default template",
			params: inbound.ComposeMessageParams{
				Language:   domain.Language("ta"),
				PlaceLabel: "Chennai, Tamil Nadu",
				Weather:    domain.WeatherReading{Description: "rain", TemperatureCelsius: ptr(27)},
				Price:      38,
			},
			want: "Current weather in Chennai, Tamil Nadu: rain, temperature 27 degrees Celsius. Tomato price: 38 rupees per kilogram.",
		},
		{
			name: "missing weather fields",
			params: inbound.ComposeMessageParams{
				Language:   domain.English,
				PlaceLabel: "Unknown City, Unknown State",
				Price:      32,
			},
			want: "Current weather in Unknown City, Unknown State: clear, temperature unknown degrees Celsius. Today's tomato price is 32 rupees per kilogram.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(composer.Compose(tt.params)))
		})
	}
}
