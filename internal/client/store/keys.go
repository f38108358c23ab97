package store

// Key names a persisted record.
type Key string

const (
	KeyUser       Key = "signOnUser"
	KeyOnboarding Key = "signOnOnboarding"
	KeyHistory    Key = "signOnHistory"
	KeyFavorites  Key = "signOnFavorites"
)

// OnboardingCompleted is the only value stored under KeyOnboarding.
const OnboardingCompleted = "completed"

// SessionKeys are removed on logout. The onboarding marker survives.
var SessionKeys = []Key{KeyUser, KeyHistory, KeyFavorites}

// AllKeys are removed by an explicit data reset.
var AllKeys = []Key{KeyUser, KeyOnboarding, KeyHistory, KeyFavorites}
