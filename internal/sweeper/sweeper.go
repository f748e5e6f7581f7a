package sweeper

import (
	"application-service/internal/config"
	"application-service/internal/messaging/notifier"
	"application-service/internal/permission"
	"application-service/internal/repository"
	"application-service/internal/repository/model"
	"application-service/internal/utils/locking"
	"application-service/internal/wizard"
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sweeper periodically expires stale drafts and flags long-accepted roles
// whose holders have gone inactive. Each player's sweep is independent: one
// failure is logged and the rest of the sweep continues.
type Sweeper struct {
	logger *zap.SugaredLogger

	catalog wizard.RoleCatalog
	repo    repository.Repository
	perms   permission.Client
	notif   notifier.Notifier
	locks   *locking.KeyedMutex

	cfg config.SweepConfig
}

func New(logger *zap.SugaredLogger, catalog wizard.RoleCatalog, repo repository.Repository,
	perms permission.Client, notif notifier.Notifier, locks *locking.KeyedMutex, cfg config.SweepConfig) *Sweeper {

	return &Sweeper{
		logger:  logger,
		catalog: catalog,
		repo:    repo,
		perms:   perms,
		notif:   notif,
		locks:   locks,
		cfg:     cfg,
	}
}

// Run sweeps on the configured interval until the context is cancelled.
func (s *Sweeper) Run(ctx context.Context, wg *sync.WaitGroup) {
	wg.Add(1)
	go func() {
		defer wg.Done()

		ticker := time.NewTicker(s.cfg.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep(ctx)
			}
		}
	}()
}

// Sweep runs one round of both passes.
func (s *Sweeper) Sweep(ctx context.Context) {
	s.expiryPass(ctx)
	s.inactivityPass(ctx)
}

func (s *Sweeper) expiryPass(ctx context.Context) {
	cutoff := time.Now().Add(-s.cfg.DraftTTL)

	drafts, err := s.repo.GetDraftsStartedBefore(ctx, cutoff)
	if err != nil {
		s.logger.Errorw("expiry pass: failed to list stale drafts", "error", err)
		return
	}

	expired := 0
	for _, draft := range drafts {
		swept, err := s.expire(ctx, draft)
		if err != nil {
			s.logger.Errorw("expiry pass: failed to expire draft",
				"playerId", draft.PlayerId, "roleId", draft.RoleId, "error", err)
			continue
		}
		if swept {
			expired++
		}
	}

	if expired > 0 {
		s.logger.Infow("expired stale drafts", "count", expired)
	}
}

func (s *Sweeper) expire(ctx context.Context, draft *model.Draft) (bool, error) {
	unlock := s.locks.Lock(draft.PlayerId)
	defer unlock()

	// The draft may have been answered, decided or cancelled since it was
	// listed. Re-check under the lock and only expire what is still stale.
	current, err := s.repo.GetDraft(ctx, draft.PlayerId)
	if err != nil {
		if err == repository.NoActiveDraftError {
			return false, nil
		}
		return false, err
	}
	if !current.StartedAt.Equal(draft.StartedAt) || current.RoleId != draft.RoleId {
		return false, nil
	}

	err = s.repo.AppendOutcome(ctx, draft.PlayerId, model.LedgerEntry{
		RoleId:    draft.RoleId,
		Status:    model.StatusExpired,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return false, err
	}

	if err := s.repo.DeleteDraft(ctx, draft.PlayerId); err != nil {
		return false, err
	}

	s.publishUpdate(ctx, draft.PlayerId.String(), draft.RoleId, model.StatusExpired, notifier.ChangeTypeExpired)
	return true, nil
}

func (s *Sweeper) inactivityPass(ctx context.Context) {
	cutoff := time.Now().Add(-s.cfg.InactivityWindow)

	ledgers, err := s.repo.GetAllLedgers(ctx)
	if err != nil {
		s.logger.Errorw("inactivity pass: failed to list ledgers", "error", err)
		return
	}

	for _, listed := range ledgers {
		if err := s.flagInactive(ctx, listed.PlayerId, cutoff); err != nil {
			s.logger.Errorw("inactivity pass: failed to flag ledger",
				"playerId", listed.PlayerId, "error", err)
		}
	}
}

// flagInactive marks roles whose most recent entry is an accepted outcome
// older than the cutoff. An entry already flagged inactive is left alone, so
// re-running the pass never revokes twice.
func (s *Sweeper) flagInactive(ctx context.Context, playerId uuid.UUID, cutoff time.Time) error {
	unlock := s.locks.Lock(playerId)
	defer unlock()

	// Re-read under the lock; the listing snapshot may be stale.
	ledger, err := s.repo.GetLedger(ctx, playerId)
	if err != nil {
		return err
	}

	var flagged []string
	for i := range ledger.Entries {
		entry := &ledger.Entries[i]
		if entry.Status != model.StatusAccepted || !entry.Timestamp.Before(cutoff) {
			continue
		}
		if latest := ledger.LatestForRole(entry.RoleId); latest != entry {
			continue
		}
		entry.Status = model.StatusInactive
		flagged = append(flagged, entry.RoleId)
	}

	if len(flagged) == 0 {
		return nil
	}

	if err := s.repo.ReplaceLedger(ctx, ledger); err != nil {
		return err
	}

	for _, roleId := range flagged {
		if node, ok := s.catalog.Permission(roleId); ok {
			if err := s.perms.Revoke(ctx, ledger.PlayerId, node); err != nil {
				s.logger.Errorw("failed to revoke permission for inactive role",
					"playerId", ledger.PlayerId, "roleId", roleId, "node", node, "error", err)
			}
		}
		s.publishUpdate(ctx, ledger.PlayerId.String(), roleId, model.StatusInactive, notifier.ChangeTypeInactive)
	}

	s.logger.Infow("flagged inactive roles", "playerId", ledger.PlayerId, "roles", flagged)
	return nil
}

func (s *Sweeper) publishUpdate(ctx context.Context, playerId string, roleId string,
	status model.Status, changeType notifier.ChangeType) {

	err := s.notif.ApplicationUpdate(ctx, &notifier.ApplicationUpdateMessage{
		PlayerId:   playerId,
		RoleId:     roleId,
		Status:     status,
		ChangeType: changeType,
	})
	if err != nil {
		s.logger.Errorw("failed to publish application update", "playerId", playerId, "error", err)
	}
}
