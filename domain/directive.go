package domain

type VerbKind string

const (
	VerbGather   VerbKind = "gather"
	VerbSay      VerbKind = "say"
	VerbPlay     VerbKind = "play"
	VerbRedirect VerbKind = "redirect"
	VerbHangup   VerbKind = "hangup"
)

// Verb is one call-control instruction. Only the fields relevant to Kind are set.
type Verb struct {
	Kind      VerbKind `json:"kind"`
	Text      string   `json:"text,omitempty"`
	Language  string   `json:"language,omitempty"`
	URL       string   `json:"url,omitempty"`
	Method    string   `json:"method,omitempty"`
	NumDigits int      `json:"num_digits,omitempty"`
	Timeout   int      `json:"timeout,omitempty"`
	Prompt    *Verb    `json:"prompt,omitempty"`
}

type Response struct {
	Verbs []Verb `json:"verbs"`
}

func NewResponse(verbs ...Verb) Response {
	return Response{Verbs: verbs}
}

func Say(text, language string) Verb {
	return Verb{Kind: VerbSay, Text: text, Language: language}
}

func Play(url string) Verb {
	return Verb{Kind: VerbPlay, URL: url}
}

func Redirect(url string) Verb {
	return Verb{Kind: VerbRedirect, URL: url, Method: "POST"}
}

func Hangup() Verb {
	return Verb{Kind: VerbHangup}
}

func GatherDigit(action string, timeout int, prompt Verb) Verb {
	return Verb{Kind: VerbGather, URL: action, Method: "POST", NumDigits: 1, Timeout: timeout, Prompt: &prompt}
}

func (r Response) Last() (Verb, bool) {
	if len(r.Verbs) == 0 {
		return Verb{}, false
	}
	return r.Verbs[len(r.Verbs)-1], true
}

func (r Response) Count(kind VerbKind) int {
	n := 0
	for _, v := range r.Verbs {
		if v.Kind == kind {
			n++
		}
	}
	return n
}
