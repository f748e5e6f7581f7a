package decision

import (
	"application-service/internal/repository/model"
	"context"
	"errors"

	"github.com/google/uuid"
)

// NotFoundError means no application is awaiting review for the player.
// Callers treat it as "already decided or never existed", not as an alarm:
// retrying a decision after the first one deleted the draft lands here.
var NotFoundError = errors.New("no application awaiting review")

// Processor applies staff decisions to pending applications. Only a pending
// draft can be decided; an in-progress draft is still the player's to finish.
type Processor interface {
	Accept(ctx context.Context, playerId uuid.UUID, reviewerId uuid.UUID) (*model.Draft, error)
	Deny(ctx context.Context, playerId uuid.UUID, reviewerId uuid.UUID, reason string) (*model.Draft, error)
	// Pending lists every application awaiting review.
	Pending(ctx context.Context) ([]*model.Draft, error)
}
