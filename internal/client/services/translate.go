package services

import (
	"context"

	"github.com/dmitrijs2005/signon/internal/client/collections"
	"github.com/dmitrijs2005/signon/internal/client/models"
	"github.com/dmitrijs2005/signon/internal/client/translation"
	"github.com/dmitrijs2005/signon/internal/logging"
)

// TranslateService runs provider submissions and records each delivered
// result as a history entry.
type TranslateService interface {
	// Start submits req in slot. done is called at most once, with the new
	// history entry or the error that kept it from being stored. It is never
	// called for a submission the slot superseded or tore down.
	Start(ctx context.Context, slot *translation.Slot, req translation.Request, done func(models.HistoryEntry, error)) error
}

type translateService struct {
	provider translation.Provider
	history  *collections.History
	logger   logging.Logger
}

func NewTranslateService(p translation.Provider, history *collections.History, logger logging.Logger) TranslateService {
	return &translateService{provider: p, history: history, logger: logger}
}

func (s *translateService) Start(ctx context.Context, slot *translation.Slot, req translation.Request, done func(models.HistoryEntry, error)) error {
	// The history write must outlive the request context of the caller.
	writeCtx := context.WithoutCancel(ctx)

	_, err := slot.Start(ctx, s.provider, req, func(res translation.Result) {
		entry, err := s.history.Add(writeCtx, collections.HistoryDraft{Kind: res.Kind, Input: res.Input, Output: res.Output})
		if err != nil {
			s.logger.Warn(writeCtx, "history write failed", "kind", res.Kind, "error", err)
		} else {
			s.logger.Debug(writeCtx, "translation stored", "id", entry.ID, "kind", res.Kind)
		}
		if done != nil {
			done(entry, err)
		}
	})
	if err != nil {
		return err
	}
	s.logger.Debug(ctx, "translation submitted", "kind", req.Kind)
	return nil
}
