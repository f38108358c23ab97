package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/signon/internal/client/models"
	"github.com/dmitrijs2005/signon/internal/client/translation"
	"github.com/dmitrijs2005/signon/internal/common"
)

const defaultRecording = 3 * time.Second

func (a *App) translateCommands(s Screen) []command {
	cmds := []command{
		{name: "cancel", usage: "cancel", run: a.cancelTranslation},
		{name: "save", aliases: []string{"fav"}, usage: "save [tags...]", run: a.saveLast},
	}
	switch s {
	case ScreenAudio:
		cmds = append(cmds, command{name: "record", usage: "record [seconds]", run: a.record})
	case ScreenVideo:
		cmds = append(cmds, command{name: "upload", usage: "upload <file>", run: a.upload})
	case ScreenText:
		cmds = append(cmds, command{name: "translate", aliases: []string{"t"}, usage: "translate <text>", run: a.translateText})
	}
	return cmds
}

func (a *App) record(ctx context.Context, args []string) error {
	d := defaultRecording
	if len(args) > 0 {
		secs, err := strconv.Atoi(args[0])
		if err != nil || secs <= 0 {
			return usageError("record [seconds]")
		}
		d = time.Duration(secs) * time.Second
	}
	return a.startTranslation(ctx, translation.Request{Kind: models.KindAudio, Duration: d})
}

func (a *App) upload(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return common.NewValidationError("file", "is required")
	}
	name := filepath.Base(strings.Join(args, " "))
	return a.startTranslation(ctx, translation.Request{Kind: models.KindVideo, FileName: name})
}

func (a *App) translateText(ctx context.Context, args []string) error {
	return a.startTranslation(ctx, translation.Request{Kind: models.KindText, Text: strings.Join(args, " ")})
}

// startTranslation submits req in the current screen's slot. The result is
// printed and recorded in history when it arrives, unless the screen has
// been left or another submission replaced it.
func (a *App) startTranslation(ctx context.Context, req translation.Request) error {
	a.mu.Lock()
	slot := a.slot
	a.mu.Unlock()
	if slot == nil {
		return translation.ErrSlotClosed
	}

	err := a.translate.Start(ctx, slot, req, func(e models.HistoryEntry, err error) {
		if err != nil {
			a.report(err)
			return
		}
		a.mu.Lock()
		a.last = &e
		a.mu.Unlock()
		printlnFn("")
		printlnFn(fmt.Sprintf("%s %s", e.Kind.Glyph(), e.Input))
		printlnFn("ISL: " + e.Output)
		printlnFn("Saved to history. Type 'save' to add it to favorites.")
	})
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Translating %s...", strings.ToLower(req.Kind.Label())))
	return nil
}

func (a *App) cancelTranslation(context.Context, []string) error {
	a.mu.Lock()
	slot := a.slot
	a.mu.Unlock()
	if slot == nil || !slot.Busy() {
		printlnFn("Nothing to cancel.")
		return nil
	}
	slot.Cancel()
	printlnFn("Cancelled.")
	return nil
}

// saveLast promotes the latest translation on this screen to favorites.
func (a *App) saveLast(ctx context.Context, args []string) error {
	a.mu.Lock()
	last := a.last
	a.mu.Unlock()
	if last == nil {
		return common.ErrNoTranslation
	}

	f, err := a.lists.Favorites.Promote(ctx, *last)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		if _, _, err := a.lists.Favorites.SetTags(ctx, f.ID, SplitTags(strings.Join(args, " "))); err != nil {
			return err
		}
	}
	printlnFn("Added to favorites.")
	return nil
}
