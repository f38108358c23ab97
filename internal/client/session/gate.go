// Package session derives which screen group the signon client may show.
//
// The gate is a pure function of three persisted signals (onboarding done,
// user present, profile complete) plus one in-memory flag: whether the boot
// splash has elapsed. Machine re-reads the signals from the store on every
// event; the gate itself is never persisted.
package session

import "github.com/dmitrijs2005/signon/internal/client/models"

type Gate int

const (
	GateSplash Gate = iota
	GateOnboarding
	GateAuth
	GateProfileSetup
	GateHome
)

func (g Gate) String() string {
	switch g {
	case GateSplash:
		return "SPLASH"
	case GateOnboarding:
		return "ONBOARDING"
	case GateAuth:
		return "AUTH"
	case GateProfileSetup:
		return "PROFILE_SETUP"
	case GateHome:
		return "HOME"
	default:
		return "UNKNOWN"
	}
}

// Signals are the persisted inputs of the gate.
type Signals struct {
	Onboarded bool
	User      *models.User
}

// Evaluate maps signals to a gate. It never returns GateSplash; the splash is
// the machine's concern.
func Evaluate(s Signals) Gate {
	switch {
	case !s.Onboarded:
		return GateOnboarding
	case s.User == nil:
		return GateAuth
	case !s.User.ProfileComplete:
		return GateProfileSetup
	default:
		return GateHome
	}
}
