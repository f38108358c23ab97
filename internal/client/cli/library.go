package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/signon/internal/client/collections"
	"github.com/dmitrijs2005/signon/internal/client/models"
)

func (a *App) historyCommands() []command {
	return []command{
		{name: "list", aliases: []string{"ls", "l", "search"}, usage: "list [kind] [query]", run: a.listHistory},
		{name: "rm", aliases: []string{"delete"}, usage: "rm <n|id>", run: a.removeHistory},
		{name: "fav", aliases: []string{"star"}, usage: "fav <n|id>", run: a.promoteHistory},
		{name: "clear", usage: "clear", run: a.clearHistory},
	}
}

func (a *App) favoritesCommands() []command {
	return []command{
		{name: "list", aliases: []string{"ls", "l", "search"}, usage: "list [kind] [query] [#tag]", run: a.listFavorites},
		{name: "rm", aliases: []string{"delete", "unfav"}, usage: "rm <n|id>", run: a.removeFavorite},
		{name: "tag", usage: "tag <n|id> <tags...>", run: a.tagFavorite},
		{name: "tags", usage: "tags", run: func(context.Context, []string) error {
			printlnFn("Suggested tags: " + strings.Join(a.lists.Favorites.SuggestedTags(), ", "))
			return nil
		}},
		{name: "clear", usage: "clear", run: a.clearFavorites},
	}
}

// parseFilter reads "[kind] [#tag...] [query words]" from args.
func parseFilter(args []string) collections.Filter {
	var f collections.Filter
	if len(args) > 0 {
		if k, err := models.ParseKindFilter(args[0]); err == nil {
			f.Kind = k
			args = args[1:]
		}
	}
	var words []string
	for _, a := range args {
		if strings.HasPrefix(a, "#") && len(a) > 1 {
			f.Tag = strings.ToLower(a[1:])
			continue
		}
		words = append(words, a)
	}
	f.Query = strings.Join(words, " ")
	return f
}

// pick finds an entry by its 1-based position in items or by a unique id
// suffix (the short id shown in listings) or full id.
func pick[T models.Record](items []T, ref string) (T, bool) {
	var zero T
	// Long references are id suffixes first, even when they are all digits.
	if len(ref) >= minSuffix {
		if it, ok := pickByID(items, ref); ok {
			return it, true
		}
	}
	if n, err := strconv.Atoi(ref); err == nil {
		if n >= 1 && n <= len(items) {
			return items[n-1], true
		}
		return zero, false
	}
	return pickByID(items, ref)
}

const minSuffix = 8

func pickByID[T models.Record](items []T, ref string) (T, bool) {
	var zero, match T
	ref = strings.ToUpper(ref)
	count := 0
	for _, it := range items {
		id := it.RecordID().String()
		if id == ref || strings.HasSuffix(id, ref) {
			match = it
			count++
		}
	}
	if count != 1 {
		return zero, false
	}
	return match, true
}

func (a *App) listHistory(ctx context.Context, args []string) error {
	f := parseFilter(args)
	items, err := a.lists.History.List(ctx, f)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		if f == (collections.Filter{}) {
			printlnFn("No translations yet.")
		} else {
			printlnFn("No translations match.")
		}
		return nil
	}
	all, err := a.lists.History.List(ctx, collections.Filter{})
	if err != nil {
		return err
	}
	for _, e := range items {
		printlnFn(formatHistory(position(all, e.ID.String()), e))
	}
	return nil
}

func (a *App) listFavorites(ctx context.Context, args []string) error {
	f := parseFilter(args)
	items, err := a.lists.Favorites.List(ctx, f)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		if f == (collections.Filter{}) {
			printlnFn("No favorites yet. Use 'fav <n>' on the history screen.")
		} else {
			printlnFn("No favorites match.")
		}
		return nil
	}
	all, err := a.lists.Favorites.List(ctx, collections.Filter{})
	if err != nil {
		return err
	}
	for _, e := range items {
		printlnFn(formatFavorite(position(all, e.ID.String()), e))
	}
	return nil
}

// position is the 1-based index of id in the unfiltered list, so numbers
// stay stable under filtering.
func position[T models.Record](all []T, id string) int {
	for i, it := range all {
		if it.RecordID().String() == id {
			return i + 1
		}
	}
	return 0
}

func (a *App) removeHistory(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("rm <n|id>")
	}
	items, err := a.lists.History.List(ctx, collections.Filter{})
	if err != nil {
		return err
	}
	e, ok := pick(items, args[0])
	if !ok {
		printlnFn("No such entry.")
		return nil
	}
	if err := a.lists.History.Remove(ctx, e.ID); err != nil {
		return err
	}
	printlnFn("Removed.")
	return nil
}

func (a *App) promoteHistory(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("fav <n|id>")
	}
	items, err := a.lists.History.List(ctx, collections.Filter{})
	if err != nil {
		return err
	}
	e, ok := pick(items, args[0])
	if !ok {
		printlnFn("No such entry.")
		return nil
	}
	if _, err := a.lists.Favorites.Promote(ctx, e); err != nil {
		return err
	}
	printlnFn("Added to favorites.")
	return nil
}

func (a *App) clearHistory(ctx context.Context, _ []string) error {
	if !a.confirm("Clear all history?") {
		return nil
	}
	if err := a.lists.History.ClearAll(ctx); err != nil {
		return err
	}
	printlnFn("History cleared.")
	return nil
}

func (a *App) removeFavorite(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("rm <n|id>")
	}
	items, err := a.lists.Favorites.List(ctx, collections.Filter{})
	if err != nil {
		return err
	}
	f, ok := pick(items, args[0])
	if !ok {
		printlnFn("No such favorite.")
		return nil
	}
	if err := a.lists.Favorites.Remove(ctx, f.ID); err != nil {
		return err
	}
	printlnFn("Removed from favorites.")
	return nil
}

func (a *App) tagFavorite(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return usageError("tag <n|id> <tags...>")
	}
	items, err := a.lists.Favorites.List(ctx, collections.Filter{})
	if err != nil {
		return err
	}
	f, ok := pick(items, args[0])
	if !ok {
		printlnFn("No such favorite.")
		return nil
	}
	updated, _, err := a.lists.Favorites.SetTags(ctx, f.ID, SplitTags(strings.Join(args[1:], " ")))
	if err != nil {
		return err
	}
	if len(updated.Tags) == 0 {
		printlnFn("Tags cleared.")
	} else {
		printlnFn(fmt.Sprintf("Tagged: #%s", strings.Join(updated.Tags, " #")))
	}
	return nil
}

func (a *App) clearFavorites(ctx context.Context, _ []string) error {
	if !a.confirm("Remove all favorites?") {
		return nil
	}
	if err := a.lists.Favorites.ClearAll(ctx); err != nil {
		return err
	}
	printlnFn("Favorites cleared.")
	return nil
}

// confirm asks a yes/no question; anything but y/yes is no.
func (a *App) confirm(question string) bool {
	ans, err := getSimpleText(a.reader, question+" (yes/no)", a.out)
	if err != nil {
		return false
	}
	ans = strings.ToLower(ans)
	return ans == "y" || ans == "yes"
}
