package sweeper

import (
	"application-service/internal/config"
	"application-service/internal/messaging/notifier"
	"application-service/internal/permission"
	"application-service/internal/repository"
	"application-service/internal/repository/model"
	"application-service/internal/utils/locking"
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubCatalog struct{}

func (stubCatalog) IsValid(roleId string) bool { return roleId == "mod" }

func (stubCatalog) Questions(roleId string) ([]string, bool) {
	if roleId != "mod" {
		return nil, false
	}
	return []string{"Why?"}, true
}

func (stubCatalog) Permission(roleId string) (string, bool) {
	if roleId != "mod" {
		return "", false
	}
	return "group.mod", true
}

var sweepCfg = config.SweepConfig{
	DraftTTL:         14 * 24 * time.Hour,
	InactivityWindow: 18 * 24 * time.Hour,
	Interval:         time.Hour,
}

type sweeperMocks struct {
	repo  *repository.MockRepository
	perms *permission.MockClient
	notif *notifier.MockNotifier
}

func newTestSweeper(t *testing.T) (*Sweeper, sweeperMocks) {
	ctrl := gomock.NewController(t)
	mocks := sweeperMocks{
		repo:  repository.NewMockRepository(ctrl),
		perms: permission.NewMockClient(ctrl),
		notif: notifier.NewMockNotifier(ctrl),
	}
	s := New(zap.NewNop().Sugar(), stubCatalog{}, mocks.repo, mocks.perms, mocks.notif,
		locking.NewKeyedMutex(), sweepCfg)
	return s, mocks
}

func staleDraft(playerId uuid.UUID) *model.Draft {
	return &model.Draft{
		PlayerId:  playerId,
		RoleId:    "mod",
		Questions: []string{"Why?"},
		Answers:   []string{},
		Status:    model.StatusInProgress,
		StartedAt: time.Now().Add(-15 * 24 * time.Hour),
	}
}

func TestSweeper_ExpiryPass(t *testing.T) {
	s, mocks := newTestSweeper(t)
	playerId := uuid.New()
	draft := staleDraft(playerId)

	mocks.repo.EXPECT().GetDraftsStartedBefore(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cutoff time.Time) ([]*model.Draft, error) {
			// the cutoff honours the configured TTL
			expected := time.Now().Add(-sweepCfg.DraftTTL)
			assert.WithinDuration(t, expected, cutoff, time.Minute)
			return []*model.Draft{draft}, nil
		})
	mocks.repo.EXPECT().GetDraft(gomock.Any(), playerId).Return(draft, nil)
	mocks.repo.EXPECT().AppendOutcome(gomock.Any(), playerId, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, entry model.LedgerEntry) error {
			assert.Equal(t, model.StatusExpired, entry.Status)
			assert.Equal(t, "mod", entry.RoleId)
			return nil
		})
	mocks.repo.EXPECT().DeleteDraft(gomock.Any(), playerId).Return(nil)
	mocks.notif.EXPECT().ApplicationUpdate(gomock.Any(), gomock.Any()).Return(nil)

	mocks.repo.EXPECT().GetAllLedgers(gomock.Any()).Return(nil, nil)

	s.Sweep(context.Background())
}

func TestSweeper_ExpiryPass_SkipsDraftDecidedMeanwhile(t *testing.T) {
	s, mocks := newTestSweeper(t)
	playerId := uuid.New()

	mocks.repo.EXPECT().GetDraftsStartedBefore(gomock.Any(), gomock.Any()).
		Return([]*model.Draft{staleDraft(playerId)}, nil)

	// The draft was accepted between the listing and the per-player lock:
	// nothing to expire, no ledger write.
	mocks.repo.EXPECT().GetDraft(gomock.Any(), playerId).Return(nil, repository.NoActiveDraftError)

	mocks.repo.EXPECT().GetAllLedgers(gomock.Any()).Return(nil, nil)

	s.Sweep(context.Background())
}

func TestSweeper_ExpiryPass_SkipsReplacedDraft(t *testing.T) {
	s, mocks := newTestSweeper(t)
	playerId := uuid.New()

	mocks.repo.EXPECT().GetDraftsStartedBefore(gomock.Any(), gomock.Any()).
		Return([]*model.Draft{staleDraft(playerId)}, nil)

	// A newer draft replaced the listed one, leave it alone.
	fresh := staleDraft(playerId)
	fresh.StartedAt = time.Now()
	mocks.repo.EXPECT().GetDraft(gomock.Any(), playerId).Return(fresh, nil)

	mocks.repo.EXPECT().GetAllLedgers(gomock.Any()).Return(nil, nil)

	s.Sweep(context.Background())
}

func TestSweeper_ExpiryPass_ContinuesAfterFailure(t *testing.T) {
	s, mocks := newTestSweeper(t)
	failing := uuid.New()
	healthy := uuid.New()
	failingDraft := staleDraft(failing)
	healthyDraft := staleDraft(healthy)

	mocks.repo.EXPECT().GetDraftsStartedBefore(gomock.Any(), gomock.Any()).
		Return([]*model.Draft{failingDraft, healthyDraft}, nil)

	// the first player's ledger write fails, the second is still swept
	mocks.repo.EXPECT().GetDraft(gomock.Any(), failing).Return(failingDraft, nil)
	mocks.repo.EXPECT().AppendOutcome(gomock.Any(), failing, gomock.Any()).Return(assert.AnError)
	mocks.repo.EXPECT().GetDraft(gomock.Any(), healthy).Return(healthyDraft, nil)
	mocks.repo.EXPECT().AppendOutcome(gomock.Any(), healthy, gomock.Any()).Return(nil)
	mocks.repo.EXPECT().DeleteDraft(gomock.Any(), healthy).Return(nil)
	mocks.notif.EXPECT().ApplicationUpdate(gomock.Any(), gomock.Any()).Return(nil)

	mocks.repo.EXPECT().GetAllLedgers(gomock.Any()).Return(nil, nil)

	s.Sweep(context.Background())
}

func acceptedLedger(playerId uuid.UUID, age time.Duration) *model.Ledger {
	return &model.Ledger{
		PlayerId: playerId,
		Entries: []model.LedgerEntry{
			{RoleId: "mod", Status: model.StatusAccepted, Timestamp: time.Now().Add(-age)},
		},
	}
}

func TestSweeper_InactivityPass(t *testing.T) {
	s, mocks := newTestSweeper(t)
	stale := uuid.New()
	fresh := uuid.New()
	staleLedger := acceptedLedger(stale, 19*24*time.Hour)
	freshLedger := acceptedLedger(fresh, 2*24*time.Hour)

	mocks.repo.EXPECT().GetDraftsStartedBefore(gomock.Any(), gomock.Any()).Return(nil, nil)
	mocks.repo.EXPECT().GetAllLedgers(gomock.Any()).Return([]*model.Ledger{staleLedger, freshLedger}, nil)

	// each ledger is re-read under the player lock before mutation
	mocks.repo.EXPECT().GetLedger(gomock.Any(), stale).Return(staleLedger, nil)
	mocks.repo.EXPECT().GetLedger(gomock.Any(), fresh).Return(freshLedger, nil)

	// only the stale ledger is rewritten and revoked
	mocks.repo.EXPECT().ReplaceLedger(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ledger *model.Ledger) error {
			assert.Equal(t, stale, ledger.PlayerId)
			assert.Equal(t, model.StatusInactive, ledger.Entries[0].Status)
			return nil
		})
	mocks.perms.EXPECT().Revoke(gomock.Any(), stale, "group.mod").Return(nil)
	mocks.notif.EXPECT().ApplicationUpdate(gomock.Any(), gomock.Any()).Return(nil)

	s.Sweep(context.Background())
}

func TestSweeper_InactivityPass_Idempotent(t *testing.T) {
	s, mocks := newTestSweeper(t)
	playerId := uuid.New()

	ledger := acceptedLedger(playerId, 19*24*time.Hour)

	// first round flags the role and revokes once
	mocks.repo.EXPECT().GetDraftsStartedBefore(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	mocks.repo.EXPECT().GetAllLedgers(gomock.Any()).Return([]*model.Ledger{ledger}, nil).Times(2)
	mocks.repo.EXPECT().GetLedger(gomock.Any(), playerId).Return(ledger, nil).Times(2)
	mocks.repo.EXPECT().ReplaceLedger(gomock.Any(), ledger).Return(nil).Times(1)
	mocks.perms.EXPECT().Revoke(gomock.Any(), playerId, "group.mod").Return(nil).Times(1)
	mocks.notif.EXPECT().ApplicationUpdate(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	s.Sweep(context.Background())
	// second round sees the already-inactive entry and does nothing
	s.Sweep(context.Background())
}

func TestSweeper_InactivityPass_NewerEntryWins(t *testing.T) {
	s, mocks := newTestSweeper(t)
	playerId := uuid.New()

	// an old accepted entry followed by a newer denied reapplication: the
	// accepted entry is no longer the latest for the role, leave it alone
	ledger := &model.Ledger{
		PlayerId: playerId,
		Entries: []model.LedgerEntry{
			{RoleId: "mod", Status: model.StatusAccepted, Timestamp: time.Now().Add(-30 * 24 * time.Hour)},
			{RoleId: "mod", Status: model.StatusDenied, Timestamp: time.Now().Add(-1 * 24 * time.Hour)},
		},
	}

	mocks.repo.EXPECT().GetDraftsStartedBefore(gomock.Any(), gomock.Any()).Return(nil, nil)
	mocks.repo.EXPECT().GetAllLedgers(gomock.Any()).Return([]*model.Ledger{ledger}, nil)
	mocks.repo.EXPECT().GetLedger(gomock.Any(), playerId).Return(ledger, nil)

	s.Sweep(context.Background())
}
