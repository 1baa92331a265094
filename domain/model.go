package domain

import (
	"strings"
	"time"
)

const PincodeLength = 6

type Language string

const (
	English  Language = "en"
	Hindi    Language = "hi"
	Gujarati Language = "gu"
)

// LanguageFromDigit maps the menu keypress to a language. Unrecognised keys
// fall back to English instead of rejecting the call.
func LanguageFromDigit(digit string) Language {
	switch digit {
	case "2":
		return Hindi
	case "3":
		return Gujarati
	default:
		return English
	}
}

func (l Language) Code() string {
	return string(l)
}

type CallSession struct {
	CallID          string    `json:"call_id"`
	Language        Language  `json:"language"`
	CollectedDigits []string  `json:"collected_digits"`
	Step            int       `json:"step"`
	Reprompts       int       `json:"reprompts"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewCallSession(callID string, language Language, now time.Time) CallSession {
	return CallSession{
		CallID:          callID,
		Language:        language,
		CollectedDigits: []string{},
		Step:            1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

type CallState string

const (
	AwaitingLanguage CallState = "awaiting_language"
	CollectingDigits CallState = "collecting_digits"
	Completed        CallState = "completed"
)

// State reports the dialogue state. A session only exists once a language
// has been chosen, so AwaitingLanguage applies to calls without one.
func (s CallSession) State() CallState {
	if s.IsComplete() {
		return Completed
	}
	return CollectingDigits
}

func (s CallSession) IsComplete() bool {
	return len(s.CollectedDigits) >= PincodeLength
}

func (s CallSession) Pincode() string {
	return strings.Join(s.CollectedDigits, "")
}

// AppendDigit records one keypress and keeps Step == len(CollectedDigits)+1.
func (s *CallSession) AppendDigit(digit string, now time.Time) error {
	if s.IsComplete() {
		return ErrSessionComplete
	}
	s.CollectedDigits = append(s.CollectedDigits, digit)
	s.Step = len(s.CollectedDigits) + 1
	s.Reprompts = 0
	s.UpdatedAt = now
	return nil
}

const (
	UnknownCity   = "Unknown City"
	UnknownRegion = "Unknown State"

	placeholderCityPrefix = "Pincode "
)

type ResolvedLocation struct {
	CityName     string
	RegionName   string
	IsExactMatch bool
}

func UnknownLocation() ResolvedLocation {
	return ResolvedLocation{CityName: UnknownCity, RegionName: UnknownRegion}
}

func PlaceholderCity(code string) string {
	return placeholderCityPrefix + code
}

// PlaceName is the name fed to the weather and price lookups.
func (l ResolvedLocation) PlaceName() string {
	if l.CityName == UnknownCity || strings.HasPrefix(l.CityName, placeholderCityPrefix) {
		return l.RegionName
	}
	return l.CityName
}

func (l ResolvedLocation) Label() string {
	return l.CityName + ", " + l.RegionName
}

type WeatherReading struct {
	Description        string
	TemperatureCelsius *float64
}

const DefaultWeatherDescription = "clear sky"

func DefaultWeatherReading() WeatherReading {
	return WeatherReading{Description: DefaultWeatherDescription}
}

type PriceQuote int

const DefaultPriceQuote PriceQuote = 32

type ComposedMessage string
