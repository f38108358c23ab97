package cli

import (
	"testing"

	"github.com/dmitrijs2005/signon/internal/client/session"
	"github.com/stretchr/testify/assert"
)

func TestResolve_NonHomeGatesIgnorePath(t *testing.T) {
	for _, p := range []string{"/", "/history", "/nope"} {
		assert.Equal(t, ScreenSplash, Resolve(session.GateSplash, p))
		assert.Equal(t, ScreenOnboarding, Resolve(session.GateOnboarding, p))
		assert.Equal(t, ScreenAuth, Resolve(session.GateAuth, p))
		assert.Equal(t, ScreenProfileSetup, Resolve(session.GateProfileSetup, p))
	}
}

func TestResolve_HomeRoutes(t *testing.T) {
	tests := map[string]Screen{
		"/":              ScreenDashboard,
		"":               ScreenDashboard,
		"/audio-to-isl":  ScreenAudio,
		"video-to-isl":   ScreenVideo,
		"/text-to-isl/":  ScreenText,
		"/learn":         ScreenLearn,
		"/history":       ScreenHistory,
		"/favorites":     ScreenFavorites,
		"/profile":       ScreenProfile,
		"/notifications": ScreenNotifications,
		"/help":          ScreenHelp,
		"/admin":         ScreenAdmin,
		"/settings":      ScreenNotFound,
		"/history/extra": ScreenNotFound,
	}
	for path, want := range tests {
		assert.Equal(t, want, Resolve(session.GateHome, path), path)
	}
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "/", NormalizePath(""))
	assert.Equal(t, "/", NormalizePath("//"))
	assert.Equal(t, "/help", NormalizePath(" help/ "))
}

func TestRoutes(t *testing.T) {
	r := Routes()
	assert.Len(t, r, 11)
	assert.Equal(t, "/", r[0])
}

func TestScreen_Title(t *testing.T) {
	assert.Equal(t, "Audio to ISL", ScreenAudio.Title())
	assert.Equal(t, "Page not found", ScreenNotFound.Title())
	assert.True(t, ScreenText.translating())
	assert.False(t, ScreenHistory.translating())
}
