package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/signon/internal/client/models"
	"github.com/dmitrijs2005/signon/internal/client/session"
	"github.com/dmitrijs2005/signon/internal/client/store"
)

func (a *App) profileCommands() []command {
	return []command{
		{name: "show", usage: "show", run: func(ctx context.Context, _ []string) error { return a.showProfile(ctx) }},
		{name: "edit", usage: "edit", run: a.editProfile},
		{name: "stats", usage: "stats", run: a.showStats},
		{name: "admin", usage: "admin", run: a.unlockAdmin},
		{name: "logout", aliases: []string{"signout"}, usage: "logout", run: a.Logout},
		{name: "reset", usage: "reset", run: a.Reset},
	}
}

func (a *App) adminCommands() []command {
	return []command{
		{name: "stats", usage: "stats", run: a.showStats},
		{name: "lock", usage: "lock", run: func(ctx context.Context, _ []string) error {
			a.mu.Lock()
			a.admin = false
			a.mu.Unlock()
			printlnFn("Admin panel locked.")
			a.navigate(ctx, PathProfile, false)
			return nil
		}},
	}
}

func (a *App) showProfile(ctx context.Context) error {
	u, err := a.account.CurrentUser(ctx)
	if err != nil {
		return err
	}
	rows := [][2]string{
		{"Name", u.Name},
		{"ISL name", u.ISLName},
		{"Email", u.Email},
		{"Phone", u.Phone},
		{"Location", u.Location},
		{"Occupation", u.Occupation},
		{"ISL level", u.ISLLevel},
		{"Language", u.PreferredLanguage},
	}
	if u.Age > 0 {
		rows = append(rows, [2]string{"Age", fmt.Sprint(u.Age)})
	}
	printlnFn(u.DisplayName())
	for _, r := range rows {
		if r[1] != "" {
			printlnFn(fmt.Sprintf("  %-11s %s", r[0]+":", r[1]))
		}
	}
	if u.Bio != "" {
		printlnFn("  About:")
		for _, line := range strings.Split(u.Bio, "\n") {
			printlnFn("    " + line)
		}
	}
	return a.showStats(ctx, nil)
}

func (a *App) editProfile(ctx context.Context, _ []string) error {
	u, err := a.account.CurrentUser(ctx)
	if err != nil {
		return err
	}
	p, err := a.promptProfile(u.Profile)
	if err != nil {
		return err
	}
	if _, err := a.account.UpdateProfile(ctx, p); err != nil {
		return err
	}
	printlnFn("Profile updated.")
	return nil
}

func (a *App) showStats(ctx context.Context, _ []string) error {
	st, err := a.account.Stats(ctx)
	if err != nil {
		return err
	}
	parts := make([]string, 0, len(models.Kinds))
	for _, k := range models.Kinds {
		parts = append(parts, fmt.Sprintf("%s %d", strings.ToLower(k.Label()), st.ByKind[k]))
	}
	printlnFn(fmt.Sprintf("Translations: %d (%s)  Favorites: %d", st.Translations, strings.Join(parts, ", "), st.Favorites))
	return nil
}

func (a *App) unlockAdmin(ctx context.Context, _ []string) error {
	pw, err := getPassword(a.reader, "Admin password", a.out)
	if err != nil {
		return err
	}
	if err := a.account.UnlockAdmin(pw); err != nil {
		return err
	}
	a.mu.Lock()
	a.admin = true
	a.mu.Unlock()
	a.navigate(ctx, PathAdmin, true)
	return nil
}

func (a *App) showAdmin(ctx context.Context) {
	for _, s := range adminSections {
		printlnFn(fmt.Sprintf("  %-17s %s", s[0], s[1]))
	}
	a.reportIf(a.showStats(ctx, nil))
	a.reportIf(a.showUsage(ctx))
}

func (a *App) showUsage(ctx context.Context) error {
	usage, err := a.store.Usage(ctx)
	if err != nil {
		return err
	}
	for _, k := range store.AllKeys {
		printlnFn(fmt.Sprintf("  %-17s %d bytes", k, usage[k]))
	}
	var total int64
	for _, n := range usage {
		total += n
	}
	printlnFn(fmt.Sprintf("Local storage: %d bytes", total))
	return nil
}

// Logout clears the account, history and favorites. The gate is
// re-evaluated even after a partial failure since some keys may be gone.
func (a *App) Logout(ctx context.Context, _ []string) error {
	// The slot goes first: a result delivered after the clear would
	// recreate the history record.
	a.closeSlot()
	err := a.account.Logout(ctx)
	if cbErr := a.callbacks.OnLogout(ctx); cbErr != nil {
		err = errors.Join(err, cbErr)
	}
	if err == nil {
		printlnFn("Signed out.")
	}
	return err
}

// Reset wipes all local data, onboarding included, after confirmation.
func (a *App) Reset(ctx context.Context, _ []string) error {
	if !a.confirm("Erase all local data, including onboarding?") {
		return nil
	}
	a.closeSlot()
	err := a.account.Reset(ctx)
	if _, dErr := a.machine.Dispatch(ctx, session.EventSignalsChanged); dErr != nil {
		err = errors.Join(err, dErr)
	}
	return err
}
