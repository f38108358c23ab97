package cli

import (
	"sort"
	"strings"

	"github.com/dmitrijs2005/signon/internal/client/session"
)

// Screen is one view of the shell.
type Screen int

const (
	ScreenSplash Screen = iota
	ScreenOnboarding
	ScreenAuth
	ScreenProfileSetup
	ScreenDashboard
	ScreenAudio
	ScreenVideo
	ScreenText
	ScreenLearn
	ScreenHistory
	ScreenFavorites
	ScreenProfile
	ScreenNotifications
	ScreenHelp
	ScreenAdmin
	ScreenNotFound
)

// Route paths reachable in HOME.
const (
	PathHome          = "/"
	PathAudio         = "/audio-to-isl"
	PathVideo         = "/video-to-isl"
	PathText          = "/text-to-isl"
	PathLearn         = "/learn"
	PathHistory       = "/history"
	PathFavorites     = "/favorites"
	PathProfile       = "/profile"
	PathNotifications = "/notifications"
	PathHelp          = "/help"
	PathAdmin         = "/admin"
)

var homeRoutes = map[string]Screen{
	PathHome:          ScreenDashboard,
	PathAudio:         ScreenAudio,
	PathVideo:         ScreenVideo,
	PathText:          ScreenText,
	PathLearn:         ScreenLearn,
	PathHistory:       ScreenHistory,
	PathFavorites:     ScreenFavorites,
	PathProfile:       ScreenProfile,
	PathNotifications: ScreenNotifications,
	PathHelp:          ScreenHelp,
	PathAdmin:         ScreenAdmin,
}

// Resolve picks the screen for a gate and, in HOME, a path. Gates other than
// HOME ignore the path.
func Resolve(g session.Gate, path string) Screen {
	switch g {
	case session.GateSplash:
		return ScreenSplash
	case session.GateOnboarding:
		return ScreenOnboarding
	case session.GateAuth:
		return ScreenAuth
	case session.GateProfileSetup:
		return ScreenProfileSetup
	case session.GateHome:
		if s, ok := homeRoutes[NormalizePath(path)]; ok {
			return s
		}
		return ScreenNotFound
	default:
		return ScreenNotFound
	}
}

// NormalizePath adds a leading slash and drops a trailing one.
func NormalizePath(p string) string {
	p = strings.TrimSpace(p)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = "/"
		}
	}
	return p
}

// Routes lists the HOME paths in order.
func Routes() []string {
	out := make([]string, 0, len(homeRoutes))
	for p := range homeRoutes {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func (s Screen) Title() string {
	switch s {
	case ScreenSplash:
		return "Sign On"
	case ScreenOnboarding:
		return "Welcome"
	case ScreenAuth:
		return "Sign in"
	case ScreenProfileSetup:
		return "Set up your profile"
	case ScreenDashboard:
		return "Home"
	case ScreenAudio:
		return "Audio to ISL"
	case ScreenVideo:
		return "Video to ISL"
	case ScreenText:
		return "Text to ISL"
	case ScreenLearn:
		return "Learn ISL"
	case ScreenHistory:
		return "History"
	case ScreenFavorites:
		return "Favorites"
	case ScreenProfile:
		return "Profile"
	case ScreenNotifications:
		return "Notifications"
	case ScreenHelp:
		return "Help & Support"
	case ScreenAdmin:
		return "Admin Panel"
	default:
		return "Page not found"
	}
}

// translating reports whether the screen owns a translation slot.
func (s Screen) translating() bool {
	return s == ScreenAudio || s == ScreenVideo || s == ScreenText
}
