package wizard

import (
	"application-service/internal/repository/model"
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	InvalidRoleError      = errors.New("unknown or disabled role")
	PermissionDeniedError = errors.New("player may not apply for this role")
	NotAnsweringError     = errors.New("player is not mid-application")
	AlreadySubmittedError = errors.New("application already submitted for review")
)

// RoleCatalog is the read-only role configuration the wizard consults.
type RoleCatalog interface {
	IsValid(roleId string) bool
	Questions(roleId string) ([]string, bool)
	Permission(roleId string) (string, bool)
}

// StepResult is the outcome of one wizard step. Question holds the next
// question to ask; Pending is set once every question is answered and the
// application has been handed over for review.
type StepResult struct {
	Draft    *model.Draft
	Question string
	Pending  bool
}

// Wizard drives a player through question-asking, answer intake and
// completion. Answers are recorded strictly in submission order; a step
// submitted out of turn is rejected, never queued.
type Wizard interface {
	Start(ctx context.Context, playerId uuid.UUID, playerName string, roleId string) (*StepResult, error)
	SubmitAnswer(ctx context.Context, playerId uuid.UUID, answer string) (*StepResult, error)
	// Resume re-enters the wizard from a stored in-progress draft, continuing
	// at the first unanswered question.
	Resume(ctx context.Context, playerId uuid.UUID) (*StepResult, error)
	// Cancel aborts an in-progress application. A pending application can no
	// longer be cancelled.
	Cancel(ctx context.Context, playerId uuid.UUID) error
	// Status returns the player's current draft.
	Status(ctx context.Context, playerId uuid.UUID) (*model.Draft, error)
	// Forget drops the player's transient cursor, e.g. on disconnect. The
	// draft itself stays; Resume picks it back up.
	Forget(playerId uuid.UUID)
}
