package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/signon/internal/client/collections"
	"github.com/dmitrijs2005/signon/internal/client/services"
	"github.com/dmitrijs2005/signon/internal/client/session"
	"github.com/dmitrijs2005/signon/internal/client/translation"
)

// navCommands are available on every HOME screen.
func (a *App) navCommands() []command {
	return []command{
		{name: "go", aliases: []string{"cd"}, usage: "go <path>", run: a.goTo},
		{name: "back", usage: "back", run: a.goBack},
		{name: "home", usage: "home", run: func(ctx context.Context, _ []string) error {
			a.navigate(ctx, PathHome, true)
			return nil
		}},
		{name: "routes", usage: "routes", run: func(context.Context, []string) error {
			printlnFn(strings.Join(Routes(), "  "))
			return nil
		}},
		// shortcuts for the bottom navigation
		{name: "audio", usage: "audio", run: a.goPath(PathAudio)},
		{name: "video", usage: "video", run: a.goPath(PathVideo)},
		{name: "text", usage: "text", run: a.goPath(PathText)},
		{name: "learn", usage: "learn", run: a.goPath(PathLearn)},
		{name: "history", usage: "history", run: a.goPath(PathHistory)},
		{name: "favorites", aliases: []string{"favs"}, usage: "favorites", run: a.goPath(PathFavorites)},
		{name: "profile", usage: "profile", run: a.goPath(PathProfile)},
		{name: "notifications", usage: "notifications", run: a.goPath(PathNotifications)},
		{name: "faq", usage: "faq", run: a.goPath(PathHelp)},
	}
}

func (a *App) goPath(path string) func(context.Context, []string) error {
	return func(ctx context.Context, _ []string) error {
		a.navigate(ctx, path, true)
		return nil
	}
}

func (a *App) goTo(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("go <path>, e.g. go /history (see 'routes')")
	}
	a.navigate(ctx, args[0], true)
	return nil
}

func (a *App) goBack(ctx context.Context, _ []string) error {
	a.mu.Lock()
	prev := PathHome
	if n := len(a.trail); n > 0 {
		prev = a.trail[n-1]
		a.trail = a.trail[:n-1]
	}
	a.mu.Unlock()
	a.navigate(ctx, prev, false)
	return nil
}

// navigate switches the HOME destination. Leaving a screen tears down its
// translation slot so a late result is dropped rather than stored.
func (a *App) navigate(ctx context.Context, path string, push bool) {
	if a.machine.Gate() != session.GateHome {
		return
	}
	path = NormalizePath(path)
	a.closeSlot()

	a.mu.Lock()
	if push && a.path != path {
		a.trail = append(a.trail, a.path)
	}
	a.path = path
	a.last = nil
	screen := Resolve(session.GateHome, path)
	if screen == ScreenAdmin && !a.admin {
		screen = ScreenProfile
		a.path = PathProfile
		a.mu.Unlock()
		printlnFn("Admin access required. Use 'admin' on the profile screen.")
	} else {
		if screen.translating() {
			a.slot = translation.NewSlot()
		}
		a.mu.Unlock()
	}

	a.render(ctx, screen)
}

func (a *App) dashboardCommands() []command {
	return []command{
		{name: "recent", usage: "recent", run: func(ctx context.Context, _ []string) error {
			return a.showRecent(ctx)
		}},
	}
}

func (a *App) showDashboard(ctx context.Context) {
	name := "there"
	if u, err := a.account.CurrentUser(ctx); err == nil {
		name = u.DisplayName()
	}
	printlnFn(fmt.Sprintf("%s, %s!", services.Greeting(a.now()), name))
	printlnFn("Translate with 'audio', 'video' or 'text'. Browse 'history', 'favorites', 'learn', 'profile'.")
	a.reportIf(a.showRecent(ctx))
}

func (a *App) showRecent(ctx context.Context) error {
	items, err := a.lists.History.List(ctx, collections.Filter{})
	if err != nil {
		return err
	}
	if len(items) == 0 {
		printlnFn("No translations yet.")
		return nil
	}
	printlnFn("Recent translations:")
	for i, e := range items {
		if i == 3 {
			break
		}
		printlnFn(formatHistory(i+1, e))
	}
	return nil
}

func (a *App) learnCommands() []command {
	return []command{
		{name: "words", usage: "words [category] [query]", run: a.listWords},
		{name: "lessons", usage: "lessons", run: func(context.Context, []string) error {
			a.showLessons()
			return nil
		}},
		{name: "lesson", usage: "lesson <n>", run: a.startLesson},
	}
}

func (a *App) showLessons() {
	printlnFn("Lessons:")
	for i, l := range lessons {
		state := l.duration
		if l.locked {
			state = "locked"
		}
		printlnFn(fmt.Sprintf("  %d. %-16s %-12s %s  %s", i+1, l.title, l.level, state, l.about))
	}
	printlnFn("Dictionary categories: " + strings.Join(categories, ", ") + " (type 'words')")
}

func (a *App) listWords(_ context.Context, args []string) error {
	category := ""
	if len(args) > 0 {
		for _, c := range categories {
			if strings.EqualFold(args[0], c) {
				category = c
				args = args[1:]
				break
			}
		}
		if category == "" && strings.EqualFold(args[0], "all") {
			args = args[1:]
		}
	}
	query := strings.ToLower(strings.Join(args, " "))

	found := 0
	for _, w := range dictionary {
		if category != "" && w.category != category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(w.word), query) {
			continue
		}
		found++
		printlnFn(fmt.Sprintf("  %-10s %-10s %s", w.word, w.category, w.difficulty))
	}
	if found == 0 {
		printlnFn("No words match.")
	}
	return nil
}

func (a *App) startLesson(_ context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("lesson <n>")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(lessons) {
		return usageError(fmt.Sprintf("lesson <n>, n between 1 and %d", len(lessons)))
	}
	l := lessons[n-1]
	if l.locked {
		printlnFn("Lesson locked. Complete previous lessons to unlock.")
		return nil
	}
	printlnFn(fmt.Sprintf("Lesson starting: %s (%s)", l.title, l.duration))
	return nil
}

func (a *App) helpCommands() []command {
	return []command{
		{name: "contact", usage: "contact", run: func(context.Context, []string) error {
			printlnFn("Email: support@signon.app")
			return nil
		}},
	}
}

func (a *App) showFAQ() {
	printlnFn("Frequently Asked Questions")
	for _, qa := range faq {
		printlnFn("  Q: " + qa[0])
		printlnFn("     " + qa[1])
	}
}
