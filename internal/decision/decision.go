package decision

import (
	"application-service/internal/messaging/notifier"
	"application-service/internal/permission"
	"application-service/internal/presence"
	"application-service/internal/repository"
	"application-service/internal/repository/model"
	"application-service/internal/utils/locking"
	"application-service/internal/wizard"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type processor struct {
	logger *zap.SugaredLogger

	catalog wizard.RoleCatalog
	repo    repository.Repository
	perms   permission.Client
	sink    presence.Sink
	notif   notifier.Notifier

	locks *locking.KeyedMutex
}

func New(logger *zap.SugaredLogger, catalog wizard.RoleCatalog, repo repository.Repository,
	perms permission.Client, sink presence.Sink, notif notifier.Notifier, locks *locking.KeyedMutex) Processor {

	return &processor{
		logger:  logger,
		catalog: catalog,
		repo:    repo,
		perms:   perms,
		sink:    sink,
		notif:   notif,
		locks:   locks,
	}
}

func (p *processor) Accept(ctx context.Context, playerId uuid.UUID, reviewerId uuid.UUID) (*model.Draft, error) {
	draft, err := p.decide(ctx, playerId, reviewerId, model.StatusAccepted, "")
	if err != nil {
		return nil, err
	}

	// Grant failure never rolls back the recorded decision.
	if node, ok := p.catalog.Permission(draft.RoleId); ok {
		if err := p.perms.Grant(ctx, playerId, node); err != nil {
			p.logger.Errorw("failed to grant permission",
				"playerId", playerId, "roleId", draft.RoleId, "node", node, "error", err)
		}
	} else {
		p.logger.Warnw("accepted application for role no longer in catalog, no permission granted",
			"playerId", playerId, "roleId", draft.RoleId)
	}

	p.notifyPlayer(ctx, playerId, fmt.Sprintf("Your application for %s has been accepted!", draft.RoleId))
	p.publishUpdate(ctx, draft, model.StatusAccepted, notifier.ChangeTypeAccepted, reviewerId.String(), "")

	return draft, nil
}

func (p *processor) Deny(ctx context.Context, playerId uuid.UUID, reviewerId uuid.UUID, reason string) (*model.Draft, error) {
	draft, err := p.decide(ctx, playerId, reviewerId, model.StatusDenied, reason)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Your application for %s has been denied.", draft.RoleId)
	if reason != "" {
		message = fmt.Sprintf("%s Reason: %s", message, reason)
	}
	p.notifyPlayer(ctx, playerId, message)
	p.publishUpdate(ctx, draft, model.StatusDenied, notifier.ChangeTypeDenied, reviewerId.String(), reason)

	return draft, nil
}

func (p *processor) Pending(ctx context.Context) ([]*model.Draft, error) {
	return p.repo.GetPendingDrafts(ctx)
}

// decide claims the pending draft and records the ledger outcome. The claim
// is a guarded delete, so concurrent decisions for the same player resolve
// to exactly one winner; the losers see NotFound. The player lock keeps the
// ledger read-modify-write from interleaving with the wizard or sweeper.
func (p *processor) decide(ctx context.Context, playerId uuid.UUID, reviewerId uuid.UUID,
	status model.Status, reason string) (*model.Draft, error) {

	unlock := p.locks.Lock(playerId)
	defer unlock()

	draft, err := p.repo.TakePendingDraft(ctx, playerId)
	if err != nil {
		if err == repository.NoActiveDraftError {
			return nil, NotFoundError
		}
		return nil, err
	}

	entry := model.LedgerEntry{
		RoleId:    draft.RoleId,
		Status:    status,
		Timestamp: time.Now().UTC(),
		Reviewer:  pointerOf(reviewerId.String()),
	}
	if reason != "" {
		entry.Reason = &reason
	}

	if err := p.repo.AppendOutcome(ctx, playerId, entry); err != nil {
		return nil, fmt.Errorf("failed to record decision: %w", err)
	}

	return draft, nil
}

func (p *processor) notifyPlayer(ctx context.Context, playerId uuid.UUID, message string) {
	online, err := p.sink.IsOnline(ctx, playerId)
	if err != nil {
		p.logger.Warnw("failed to check player presence", "playerId", playerId, "error", err)
		return
	}
	if !online {
		return
	}
	if err := p.sink.Notify(ctx, playerId, message); err != nil {
		p.logger.Warnw("failed to notify player", "playerId", playerId, "error", err)
	}
}

func (p *processor) publishUpdate(ctx context.Context, draft *model.Draft, status model.Status,
	changeType notifier.ChangeType, reviewer string, reason string) {

	err := p.notif.ApplicationUpdate(ctx, &notifier.ApplicationUpdateMessage{
		PlayerId:   draft.PlayerId.String(),
		PlayerName: draft.PlayerName,
		RoleId:     draft.RoleId,
		Status:     status,
		ChangeType: changeType,
		Reviewer:   reviewer,
		Reason:     reason,
	})
	if err != nil {
		p.logger.Errorw("failed to publish application update", "playerId", draft.PlayerId, "error", err)
	}
}

func pointerOf(s string) *string {
	return &s
}
