// Package cli provides the interactive signon command-line client.
//
// It wires configuration, the local SQLite-backed store, the session gate
// machine, the account and translation services and an interactive REPL.
// The commands on offer depend on the current gate:
//
//   - ONBOARDING: next, prev, start (skip)
//   - AUTH: login, signup
//   - PROFILE_SETUP: setup
//   - HOME: go <path>, back, home, routes and the shortcuts audio, video,
//     text, learn, history, favorites, profile, notifications, faq, plus
//     the commands of the current screen
//
// The REPL is started via App.Run(ctx), which shows the splash, waits for it
// and then blocks until the user exits or input ends.
package cli
