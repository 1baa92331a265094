package services

import (
	"context"
	"errors"
	"fmt"
	"github.com/gulam-moin/interactive-voice-response/application/ports/inbound"
	"github.com/gulam-moin/interactive-voice-response/application/ports/outbound"
	"github.com/gulam-moin/interactive-voice-response/domain"
	"time"
)

const (
	// SayLanguage is the locale used for every spoken prompt and for the
	// spoken fallback of the final message.
	SayLanguage = "en-IN"

	digitGatherTimeoutSeconds = 5
	defaultMaxReprompts       = 3

	languageMenuPrompt  = "Press 1 for English. Press 2 for Hindi. Press 3 for Gujarati."
	firstDigitPrompt    = "Please enter the first digit of your six digit pincode."
	nextDigitPrompt     = "Please enter digit number %d of your pincode."
	noInputGoodbye      = "We did not receive any input. Goodbye."
	serviceErrorMessage = "Sorry, we are unable to process your request right now. Please try again later."
)

var localizedServiceErrors = map[domain.Language]string{
	domain.Hindi:    "क्षमा करें, हम अभी आपके अनुरोध को संसाधित नहीं कर पा रहे हैं। कृपया बाद में पुनः प्रयास करें।",
	domain.Gujarati: "માફ કરશો, અમે હાલમાં તમારી વિનંતી પર પ્રક્રિયા કરી શકતા નથી. કૃપા કરીને પછીથી ફરી પ્રયાસ કરો.",
}

// ServiceErrorMessage is the apology spoken when the outcome cannot be
// produced, in the caller's language where one is known.
func ServiceErrorMessage(language domain.Language) string {
	if msg, ok := localizedServiceErrors[language]; ok {
		return msg
	}
	return serviceErrorMessage
}

type CallFlowRoutes struct {
	Entry        string
	Language     string
	CollectDigit string
	Reprompt     string
}

func DefaultCallFlowRoutes() CallFlowRoutes {
	return CallFlowRoutes{
		Entry:        "/ivr",
		Language:     "/language",
		CollectDigit: "/collect_digit",
		Reprompt:     "/reprompt",
	}
}

type CallFlowDeps struct {
	Logger   outbound.LoggerPort
	Store    outbound.CallSessionStorePort
	Pipeline inbound.OutcomePipelinePort
	Routes   CallFlowRoutes
	// MaxReprompts bounds how often a silent caller is prompted again for the
	// same digit before the call is ended.
	MaxReprompts int
	Now          func() time.Time
}

type callFlow struct {
	logger       outbound.LoggerPort
	store        outbound.CallSessionStorePort
	pipeline     inbound.OutcomePipelinePort
	routes       CallFlowRoutes
	maxReprompts int
	now          func() time.Time
}

func NewCallFlow(deps CallFlowDeps) inbound.CallFlowPort {
	routes := deps.Routes
	if routes == (CallFlowRoutes{}) {
		routes = DefaultCallFlowRoutes()
	}
	maxReprompts := deps.MaxReprompts
	if maxReprompts <= 0 {
		maxReprompts = defaultMaxReprompts
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &callFlow{
		logger:       deps.Logger,
		store:        deps.Store,
		pipeline:     deps.Pipeline,
		routes:       routes,
		maxReprompts: maxReprompts,
		now:          now,
	}
}

// RecoverMissingSession is the transition taken when a digit arrives for a
// call with no session: the call continues as English from the first digit.
func RecoverMissingSession(callID string, now time.Time) domain.CallSession {
	return domain.NewCallSession(callID, domain.English, now)
}

func (f *callFlow) Entry(_ context.Context) domain.Response {
	return domain.NewResponse(
		domain.GatherDigit(f.routes.Language, 0, domain.Say(languageMenuPrompt, SayLanguage)),
		domain.Redirect(f.routes.Entry),
	)
}

func (f *callFlow) SelectLanguage(ctx context.Context, callID string, digit string) domain.Response {
	session := domain.NewCallSession(callID, domain.LanguageFromDigit(digit), f.now())

	if err := f.store.Save(ctx, session); err != nil {
		// The next digit will go through RecoverMissingSession.
		f.logger.ErrorWithFields(err, "Failed to save call session", map[string]interface{}{
			"call_id": callID,
		})
	} else {
		f.logger.InfoWithFields("Language selected", map[string]interface{}{
			"call_id":  callID,
			"language": session.Language,
		})
	}

	return f.digitPrompt(session.Step)
}

func (f *callFlow) CollectDigit(ctx context.Context, req inbound.CollectDigitRequest) domain.Response {
	logger := f.logger.With(map[string]interface{}{"call_id": req.CallID})

	if req.Digit == "" {
		return f.Reprompt(ctx, req.CallID)
	}

	recovered := false
	session, err := f.store.Update(ctx, req.CallID, func(s *domain.CallSession, found bool) error {
		recovered = !found
		if !found {
			*s = RecoverMissingSession(req.CallID, f.now())
		}
		return s.AppendDigit(req.Digit, f.now())
	})
	if errors.Is(err, domain.ErrSessionComplete) {
		logger.Warn("Digit received after the pincode was complete, ending call")
		return domain.NewResponse(domain.Hangup())
	}
	if err != nil {
		logger.Error(err, "Failed to update call session")
		return domain.NewResponse(domain.Say(serviceErrorMessage, SayLanguage), domain.Hangup())
	}
	if recovered {
		logger.Warn("Recovered missing call session")
	}

	if !session.IsComplete() {
		return f.digitPrompt(session.Step)
	}

	return f.complete(ctx, logger, session, req.BaseURL)
}

func (f *callFlow) Reprompt(ctx context.Context, callID string) domain.Response {
	exhausted := false
	session, err := f.store.Update(ctx, callID, func(s *domain.CallSession, found bool) error {
		if !found {
			return domain.ErrSessionNotFound
		}
		if s.IsComplete() {
			return domain.ErrSessionComplete
		}
		s.Reprompts++
		exhausted = s.Reprompts > f.maxReprompts
		s.UpdatedAt = f.now()
		return nil
	})

	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return f.Entry(ctx)
	case errors.Is(err, domain.ErrSessionComplete):
		return domain.NewResponse(domain.Hangup())
	case err != nil:
		f.logger.ErrorWithFields(err, "Failed to update call session on reprompt", map[string]interface{}{
			"call_id": callID,
		})
		return domain.NewResponse(domain.Say(serviceErrorMessage, SayLanguage), domain.Hangup())
	}

	if exhausted {
		f.logger.InfoWithFields("No input after repeated prompts, ending call", map[string]interface{}{
			"call_id": callID,
			"step":    session.Step,
		})
		f.forget(ctx, callID)
		return domain.NewResponse(domain.Say(noInputGoodbye, SayLanguage), domain.Hangup())
	}

	return f.digitPrompt(session.Step)
}

func (f *callFlow) complete(ctx context.Context, logger outbound.LoggerPort, session domain.CallSession, baseURL string) domain.Response {
	// The pipeline finishes even if the caller hangs up mid-request.
	outcome, err := f.runPipeline(context.WithoutCancel(ctx), inbound.RunOutcomeParams{
		CallID:   session.CallID,
		Pincode:  session.Pincode(),
		Language: session.Language,
		BaseURL:  baseURL,
	})
	defer f.forget(ctx, session.CallID)

	if err != nil {
		logger.Error(err, "Outcome pipeline failed")
		return domain.NewResponse(domain.Say(ServiceErrorMessage(session.Language), SayLanguage), domain.Hangup())
	}

	if outcome.Delivery == domain.DeliveryAudio && outcome.AudioURL != "" {
		return domain.NewResponse(domain.Play(outcome.AudioURL), domain.Hangup())
	}
	return domain.NewResponse(domain.Say(string(outcome.Message), SayLanguage), domain.Hangup())
}

func (f *callFlow) runPipeline(ctx context.Context, params inbound.RunOutcomeParams) (outcome domain.CallOutcome, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("outcome pipeline panicked: %v", p)
		}
	}()
	return f.pipeline.Run(ctx, params), nil
}

func (f *callFlow) forget(ctx context.Context, callID string) {
	if err := f.store.Delete(context.WithoutCancel(ctx), callID); err != nil {
		f.logger.ErrorWithFields(err, "Failed to delete call session", map[string]interface{}{
			"call_id": callID,
		})
	}
}

func (f *callFlow) digitPrompt(step int) domain.Response {
	text := firstDigitPrompt
	if step > 1 {
		text = fmt.Sprintf(nextDigitPrompt, step)
	}
	return domain.NewResponse(
		domain.GatherDigit(f.routes.CollectDigit, digitGatherTimeoutSeconds, domain.Say(text, "")),
		domain.Redirect(f.routes.Reprompt),
	)
}
