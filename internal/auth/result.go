package auth

// Outcome classifies a verification attempt.
type Outcome int

const (
	// OutcomeInvalid covers every structural, algorithm, signature or
	// issuer failure, and a missing credential.
	OutcomeInvalid Outcome = iota
	// OutcomeExpired means the token is authentic but past its expiry.
	// Clients should re-issue from their domain secret.
	OutcomeExpired
	OutcomeValid
)

func (o Outcome) String() string {
	switch o {
	case OutcomeValid:
		return "valid"
	case OutcomeExpired:
		return "expired"
	default:
		return "invalid"
	}
}

// Result is the tagged outcome of Manager.Verify.
// Claims is populated only for OutcomeValid. Err carries the reason for
// logging and must not be echoed to callers.
type Result struct {
	Outcome Outcome
	Claims  Claims
	Err     error
}

func (r Result) Valid() bool { return r.Outcome == OutcomeValid }

func valid(c Claims) Result { return Result{Outcome: OutcomeValid, Claims: c} }
func expired(err error) Result { return Result{Outcome: OutcomeExpired, Err: err} }
func invalid(err error) Result { return Result{Outcome: OutcomeInvalid, Err: err} }
