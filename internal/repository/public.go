package repository

import (
	"application-service/internal/repository/model"
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	// CreateDraft stores a new draft. AlreadyActiveError is returned when the
	// player already has one.
	CreateDraft(ctx context.Context, draft *model.Draft) error
	// GetDraft returns the player's draft, or NoActiveDraftError.
	GetDraft(ctx context.Context, playerId uuid.UUID) (*model.Draft, error)
	// AppendDraftAnswer appends one answer to an in-progress draft and returns
	// the updated draft. NoActiveDraftError or AlreadyCompleteError otherwise.
	AppendDraftAnswer(ctx context.Context, playerId uuid.UUID, answer string) (*model.Draft, error)
	// MarkDraftPending flips a fully answered in-progress draft to pending.
	MarkDraftPending(ctx context.Context, playerId uuid.UUID) (*model.Draft, error)
	// DeleteDraft removes the player's draft. Deleting a missing draft is a no-op.
	DeleteDraft(ctx context.Context, playerId uuid.UUID) error
	// TakePendingDraft atomically removes and returns the player's pending
	// draft. Only one caller can win a given draft; everyone else gets
	// NoActiveDraftError, as does a draft that is not pending.
	TakePendingDraft(ctx context.Context, playerId uuid.UUID) (*model.Draft, error)
	// GetPendingDrafts returns every draft awaiting a decision.
	GetPendingDrafts(ctx context.Context) ([]*model.Draft, error)
	// GetDraftsStartedBefore returns every open draft started before the cutoff.
	GetDraftsStartedBefore(ctx context.Context, cutoff time.Time) ([]*model.Draft, error)

	// AppendOutcome records an outcome on the player's ledger, replacing any
	// still-open entry for the same role.
	AppendOutcome(ctx context.Context, playerId uuid.UUID, entry model.LedgerEntry) error
	// RemoveOpenEntries drops open entries for a role without recording an
	// outcome (used when a draft is cancelled).
	RemoveOpenEntries(ctx context.Context, playerId uuid.UUID, roleId string) error
	// GetLedger returns the player's ledger; a player with no history gets an
	// empty ledger, not an error.
	GetLedger(ctx context.Context, playerId uuid.UUID) (*model.Ledger, error)
	// ReplaceLedger overwrites the player's whole ledger document.
	ReplaceLedger(ctx context.Context, ledger *model.Ledger) error
	// GetAllLedgers returns every ledger. Used by the maintenance sweep.
	GetAllLedgers(ctx context.Context) ([]*model.Ledger, error)
}
