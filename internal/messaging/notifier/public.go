package notifier

import (
	"application-service/internal/repository/model"
	"context"
)

type ChangeType string

const (
	ChangeTypeStarted   ChangeType = "STARTED"
	ChangeTypeSubmitted ChangeType = "SUBMITTED"
	ChangeTypeAccepted  ChangeType = "ACCEPTED"
	ChangeTypeDenied    ChangeType = "DENIED"
	ChangeTypeExpired   ChangeType = "EXPIRED"
	ChangeTypeInactive  ChangeType = "INACTIVE"
)

// ApplicationUpdateMessage is published for every application lifecycle
// transition so other services (proxy, Discord bridge) can react.
type ApplicationUpdateMessage struct {
	PlayerId   string       `json:"playerId"`
	PlayerName string       `json:"playerName,omitempty"`
	RoleId     string       `json:"roleId"`
	Status     model.Status `json:"status"`
	ChangeType ChangeType   `json:"changeType"`
	Reviewer   string       `json:"reviewer,omitempty"`
	Reason     string       `json:"reason,omitempty"`
}

type Notifier interface {
	ApplicationUpdate(ctx context.Context, msg *ApplicationUpdateMessage) error
}
