package adapters

import (
	"fmt"
	"github.com/gulam-moin/interactive-voice-response/domain"
	"github.com/twilio/twilio-go/twiml"
	"strconv"
)

const TwiMLContentType = "application/xml"

type TwiMLRenderer struct{}

func NewTwiMLRenderer() *TwiMLRenderer {
	return &TwiMLRenderer{}
}

func (r *TwiMLRenderer) ContentType() string {
	return TwiMLContentType
}

func (r *TwiMLRenderer) Render(response domain.Response) (string, error) {
	elements := make([]twiml.Element, 0, len(response.Verbs))
	for _, verb := range response.Verbs {
		element, err := toTwiML(verb)
		if err != nil {
			return "", err
		}
		elements = append(elements, element)
	}
	return twiml.Voice(elements)
}

func toTwiML(verb domain.Verb) (twiml.Element, error) {
	switch verb.Kind {
	case domain.VerbSay:
		return &twiml.VoiceSay{Message: verb.Text, Language: verb.Language}, nil
	case domain.VerbPlay:
		return &twiml.VoicePlay{Url: verb.URL}, nil
	case domain.VerbRedirect:
		return &twiml.VoiceRedirect{Url: verb.URL, Method: verb.Method}, nil
	case domain.VerbHangup:
		return &twiml.VoiceHangup{}, nil
	case domain.VerbGather:
		gather := &twiml.VoiceGather{
			Action:    verb.URL,
			Method:    verb.Method,
			NumDigits: positiveOrEmpty(verb.NumDigits),
			Timeout:   positiveOrEmpty(verb.Timeout),
		}
		if verb.Prompt != nil {
			prompt, err := toTwiML(*verb.Prompt)
			if err != nil {
				return nil, err
			}
			gather.InnerElements = []twiml.Element{prompt}
		}
		return gather, nil
	default:
		return nil, fmt.Errorf("unsupported verb %q", verb.Kind)
	}
}

func positiveOrEmpty(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}
