package services

import (
	"fmt"
	"github.com/gulam-moin/interactive-voice-response/application/ports/inbound"
	"github.com/gulam-moin/interactive-voice-response/domain"
	"strconv"
)

const unknownTemperature = "unknown"

// Templates take, in order: place label, weather description, temperature, price.
var messageTemplates = map[domain.Language]string{
	domain.English:  "Current weather in %s: %s, temperature %s degrees Celsius. Today's tomato price is %d rupees per kilogram.",
	domain.Hindi:    "%s में मौजूदा मौसम %s है, तापमान %s डिग्री सेल्सियस। आज टमाटर का भाव %d रुपये प्रति किलो है।",
	domain.Gujarati: "%s માં હાલનું હવામાન %s છે, તાપમાન %s ડિગ્રિ સેલ્સિયસ. આજે ટામેટાની કિંમત %d રૂપિયા પ્રતિ કિલોગ્રામ છે.",
}

const defaultMessageTemplate = "Current weather in %s: %s, temperature %s degrees Celsius. Tomato price: %d rupees per kilogram."

type messageComposer struct{}

func NewMessageComposer() inbound.MessageComposerPort {
	return &messageComposer{}
}

func (m *messageComposer) Compose(params inbound.ComposeMessageParams) domain.ComposedMessage {
	template, ok := messageTemplates[params.Language]
	if !ok {
		template = defaultMessageTemplate
	}

	description := params.Weather.Description
	if description == "" {
		description = "clear"
	}

	return domain.ComposedMessage(fmt.Sprintf(template,
		params.PlaceLabel,
		description,
		formatTemperature(params.Weather.TemperatureCelsius),
		int(params.Price),
	))
}

func formatTemperature(celsius *float64) string {
	if celsius == nil {
		return unknownTemperature
	}
	return strconv.FormatFloat(*celsius, 'f', -1, 64)
}
