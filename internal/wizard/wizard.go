package wizard

import (
	"application-service/internal/messaging/notifier"
	"application-service/internal/permission"
	"application-service/internal/presence"
	"application-service/internal/repository"
	"application-service/internal/repository/model"
	"application-service/internal/utils/locking"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const submittedMessage = "Your application has been submitted for review."

type wizard struct {
	logger *zap.SugaredLogger

	catalog RoleCatalog
	repo    repository.Repository
	perms   permission.Client
	sink    presence.Sink
	notif   notifier.Notifier

	locks    *locking.KeyedMutex
	sessions *sessionStore
}

func New(logger *zap.SugaredLogger, catalog RoleCatalog, repo repository.Repository,
	perms permission.Client, sink presence.Sink, notif notifier.Notifier, locks *locking.KeyedMutex) Wizard {

	return &wizard{
		logger:   logger,
		catalog:  catalog,
		repo:     repo,
		perms:    perms,
		sink:     sink,
		notif:    notif,
		locks:    locks,
		sessions: newSessionStore(),
	}
}

// applyNode is the permission node a player needs before the wizard starts
// for a role.
func applyNode(roleId string) string {
	return "applications.apply." + roleId
}

func (w *wizard) Start(ctx context.Context, playerId uuid.UUID, playerName string, roleId string) (*StepResult, error) {
	if !w.catalog.IsValid(roleId) {
		return nil, InvalidRoleError
	}

	// The permission check is a remote call, keep it outside the player lock.
	allowed, err := w.perms.HasPermission(ctx, playerId, applyNode(roleId))
	if err != nil {
		return nil, fmt.Errorf("failed to check apply permission: %w", err)
	}
	if !allowed {
		return nil, PermissionDeniedError
	}

	questions, _ := w.catalog.Questions(roleId)

	unlock := w.locks.Lock(playerId)
	defer unlock()

	draft := &model.Draft{
		PlayerId:   playerId,
		PlayerName: playerName,
		RoleId:     roleId,
		Questions:  questions,
		Answers:    []string{},
		Status:     model.StatusInProgress,
		StartedAt:  time.Now().UTC(),
	}

	if err := w.repo.CreateDraft(ctx, draft); err != nil {
		return nil, err
	}

	w.recordOutcome(ctx, playerId, model.LedgerEntry{
		RoleId:    roleId,
		Status:    model.StatusInProgress,
		Timestamp: draft.StartedAt,
	})
	w.publishUpdate(ctx, draft, notifier.ChangeTypeStarted)

	// Zero-question roles complete immediately.
	if draft.Complete() {
		return w.complete(ctx, draft)
	}

	w.sessions.setCursor(playerId, 0)
	question, _ := draft.NextQuestion()
	return &StepResult{Draft: draft, Question: question}, nil
}

func (w *wizard) SubmitAnswer(ctx context.Context, playerId uuid.UUID, answer string) (*StepResult, error) {
	unlock := w.locks.Lock(playerId)
	defer unlock()

	if _, ok := w.sessions.cursor(playerId); !ok {
		return nil, NotAnsweringError
	}

	draft, err := w.repo.AppendDraftAnswer(ctx, playerId, answer)
	if err != nil {
		if err == repository.NoActiveDraftError || err == repository.AlreadyCompleteError {
			// The draft is gone or already submitted; the cursor is stale.
			w.sessions.deleteCursor(playerId)
		}
		return nil, err
	}

	if draft.Complete() {
		return w.complete(ctx, draft)
	}

	w.sessions.setCursor(playerId, len(draft.Answers))
	question, _ := draft.NextQuestion()
	return &StepResult{Draft: draft, Question: question}, nil
}

func (w *wizard) Resume(ctx context.Context, playerId uuid.UUID) (*StepResult, error) {
	unlock := w.locks.Lock(playerId)
	defer unlock()

	draft, err := w.repo.GetDraft(ctx, playerId)
	if err != nil {
		return nil, err
	}
	if draft.Status != model.StatusInProgress {
		return nil, AlreadySubmittedError
	}

	question, ok := draft.NextQuestion()
	if !ok {
		return w.complete(ctx, draft)
	}

	w.sessions.setCursor(playerId, len(draft.Answers))
	return &StepResult{Draft: draft, Question: question}, nil
}

func (w *wizard) Cancel(ctx context.Context, playerId uuid.UUID) error {
	unlock := w.locks.Lock(playerId)
	defer unlock()

	draft, err := w.repo.GetDraft(ctx, playerId)
	if err != nil {
		return err
	}
	if draft.Status != model.StatusInProgress {
		return AlreadySubmittedError
	}

	if err := w.repo.DeleteDraft(ctx, playerId); err != nil {
		return err
	}
	w.sessions.deleteCursor(playerId)

	// Cancelling is not a recorded outcome, the open entry is simply removed.
	if err := w.repo.RemoveOpenEntries(ctx, playerId, draft.RoleId); err != nil {
		w.logger.Errorw("failed to remove open ledger entries", "playerId", playerId, "error", err)
	}

	return nil
}

func (w *wizard) Status(ctx context.Context, playerId uuid.UUID) (*model.Draft, error) {
	return w.repo.GetDraft(ctx, playerId)
}

func (w *wizard) Forget(playerId uuid.UUID) {
	w.sessions.deleteCursor(playerId)
}

// complete flips a fully answered draft to pending and hands it off for
// review. Caller must hold the player lock.
func (w *wizard) complete(ctx context.Context, draft *model.Draft) (*StepResult, error) {
	pending, err := w.repo.MarkDraftPending(ctx, draft.PlayerId)
	if err != nil {
		return nil, err
	}
	w.sessions.deleteCursor(draft.PlayerId)

	w.recordOutcome(ctx, draft.PlayerId, model.LedgerEntry{
		RoleId:    pending.RoleId,
		Status:    model.StatusPending,
		Timestamp: time.Now().UTC(),
	})
	w.publishUpdate(ctx, pending, notifier.ChangeTypeSubmitted)

	if err := w.sink.Notify(ctx, draft.PlayerId, submittedMessage); err != nil {
		w.logger.Warnw("failed to notify player", "playerId", draft.PlayerId, "error", err)
	}

	return &StepResult{Draft: pending, Pending: true}, nil
}

func (w *wizard) recordOutcome(ctx context.Context, playerId uuid.UUID, entry model.LedgerEntry) {
	if err := w.repo.AppendOutcome(ctx, playerId, entry); err != nil {
		w.logger.Errorw("failed to record ledger outcome",
			"playerId", playerId, "roleId", entry.RoleId, "status", entry.Status, "error", err)
	}
}

func (w *wizard) publishUpdate(ctx context.Context, draft *model.Draft, changeType notifier.ChangeType) {
	err := w.notif.ApplicationUpdate(ctx, &notifier.ApplicationUpdateMessage{
		PlayerId:   draft.PlayerId.String(),
		PlayerName: draft.PlayerName,
		RoleId:     draft.RoleId,
		Status:     draft.Status,
		ChangeType: changeType,
	})
	if err != nil {
		w.logger.Errorw("failed to publish application update", "playerId", draft.PlayerId, "error", err)
	}
}
