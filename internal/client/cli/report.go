package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/signon/internal/client/models"
	"github.com/dmitrijs2005/signon/internal/client/services"
	"github.com/dmitrijs2005/signon/internal/client/translation"
	"github.com/dmitrijs2005/signon/internal/common"
)

// report turns an error into a user notice. Unexpected errors are also logged.
func (a *App) report(err error) {
	if err == nil {
		return
	}
	printlnFn(userMessage(err))

	if !services.IsUserFacing(err) && !errors.Is(err, errUsage) {
		a.logger.Error(context.Background(), "command failed", "error", err)
	}
}

func (a *App) reportIf(err error) {
	if err != nil {
		a.report(err)
	}
}

// errUsage marks a malformed command line; the message is the usage text.
var errUsage = errors.New("usage")

func usageError(usage string) error {
	return fmt.Errorf("%w: %s", errUsage, usage)
}

func userMessage(err error) string {
	if ve, ok := common.IsValidation(err); ok {
		names := make([]string, 0, len(ve.Fields))
		for n := range ve.Fields {
			names = append(names, n)
		}
		sort.Strings(names)
		lines := []string{"Please check your input:"}
		for _, n := range names {
			lines = append(lines, fmt.Sprintf("  - %s %s", n, ve.Fields[n]))
		}
		return strings.Join(lines, "\n")
	}

	switch {
	case errors.Is(err, errUsage):
		return "Usage:" + strings.TrimPrefix(err.Error(), errUsage.Error()+":")
	case errors.Is(err, common.ErrQuotaExceeded):
		return "Local storage is full. Remove some history or favorites and try again."
	case errors.Is(err, common.ErrInvalidRecord):
		return "That entry is not in a valid format and was not saved."
	case errors.Is(err, common.ErrCorruptRecord):
		return "Some saved data could not be read and was ignored."
	case common.IsStorage(err):
		return "Could not save your changes: " + err.Error()
	case errors.Is(err, common.ErrNotAuthenticated):
		return "Please sign in first."
	case errors.Is(err, common.ErrAdminDenied):
		return "Invalid admin password."
	case errors.Is(err, common.ErrNoTranslation):
		return "Nothing to save yet. Translate something first."
	case errors.Is(err, translation.ErrSlotClosed):
		return "This screen is closed."
	default:
		return "Error: " + err.Error()
	}
}

const timeLayout = "2006-01-02 15:04"

func formatHistory(n int, e models.HistoryEntry) string {
	return fmt.Sprintf("%2d. %s %s  %s\n      %s -> %s", n, e.Kind.Glyph(), shortID(e.ID.String()), e.Timestamp.Local().Format(timeLayout), e.Input, e.Output)
}

func formatFavorite(n int, f models.FavoriteEntry) string {
	s := fmt.Sprintf("%2d. %s %s  %s\n      %s -> %s", n, f.Kind.Glyph(), shortID(f.ID.String()), f.Timestamp.Local().Format(timeLayout), f.Content, f.Translation)
	if len(f.Tags) > 0 {
		s += "\n      #" + strings.Join(f.Tags, " #")
	}
	return s
}

// shortID keeps the random tail of an id, which is what differs between
// entries created close together.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[len(id)-8:]
}
