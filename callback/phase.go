package callback

// Phase is how far the callback page got before navigating away
type Phase int

const (
	// PhaseLoading is shown until the query string is readable
	PhaseLoading Phase = iota
	// PhaseAuthenticating is shown once parameters are read and the decision is being applied
	PhaseAuthenticating
)

func (p Phase) Placeholder() string {
	switch p {
	case PhaseAuthenticating:
		return "Authenticating..."
	default:
		return "Loading..."
	}
}

func (p Phase) String() string {
	switch p {
	case PhaseAuthenticating:
		return "authenticating"
	default:
		return "loading"
	}
}
