package model

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of an application, both on the live draft
// and on ledger entries.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusPending    Status = "pending"
	StatusAccepted   Status = "accepted"
	StatusDenied     Status = "denied"
	StatusExpired    Status = "expired"
	StatusInactive   Status = "inactive"
)

// Open reports whether the status still awaits a decision.
func (s Status) Open() bool {
	return s == StatusInProgress || s == StatusPending
}

// Draft is the single active application of a player. The question list is
// snapshotted when the draft is created so a catalog reload never changes a
// draft mid-flight.
type Draft struct {
	PlayerId   uuid.UUID `bson:"_id" json:"playerId"`
	PlayerName string    `bson:"playerName" json:"playerName"`
	RoleId     string    `bson:"roleId" json:"roleId"`
	Questions  []string  `bson:"questions" json:"questions"`
	Answers    []string  `bson:"answers" json:"answers"`
	Status     Status    `bson:"status" json:"status"`
	StartedAt  time.Time `bson:"startedAt" json:"startedAt"`
}

// Complete reports whether every question has an answer.
func (d *Draft) Complete() bool {
	return len(d.Answers) == len(d.Questions)
}

// NextQuestion returns the first unanswered question.
func (d *Draft) NextQuestion() (string, bool) {
	if d.Complete() {
		return "", false
	}
	return d.Questions[len(d.Answers)], true
}

// LedgerEntry is one recorded application outcome.
type LedgerEntry struct {
	RoleId    string    `bson:"roleId" json:"roleId"`
	Status    Status    `bson:"status" json:"status"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	Reason    *string   `bson:"reason,omitempty" json:"reason,omitempty"`
	Reviewer  *string   `bson:"reviewer,omitempty" json:"reviewer,omitempty"`
}

// Ledger is the full application history of one player, oldest entry first.
type Ledger struct {
	PlayerId uuid.UUID     `bson:"_id" json:"playerId"`
	Entries  []LedgerEntry `bson:"entries" json:"entries"`
}

// AppendOutcome removes any still-open entry for the same role and appends
// the new entry, so a role never has two open entries at once.
func (l *Ledger) AppendOutcome(entry LedgerEntry) {
	l.RemoveOpenEntries(entry.RoleId)
	l.Entries = append(l.Entries, entry)
}

// RemoveOpenEntries drops InProgress/Pending entries for the given role.
func (l *Ledger) RemoveOpenEntries(roleId string) {
	kept := l.Entries[:0]
	for _, e := range l.Entries {
		if e.RoleId == roleId && e.Status.Open() {
			continue
		}
		kept = append(kept, e)
	}
	l.Entries = kept
}

// LatestForRole returns the most recent entry for the role, or nil.
func (l *Ledger) LatestForRole(roleId string) *LedgerEntry {
	for i := len(l.Entries) - 1; i >= 0; i-- {
		if l.Entries[i].RoleId == roleId {
			return &l.Entries[i]
		}
	}
	return nil
}

// RoleIds returns the distinct roles present in the ledger, in first-seen order.
func (l *Ledger) RoleIds() []string {
	seen := make(map[string]struct{}, len(l.Entries))
	var ids []string
	for _, e := range l.Entries {
		if _, ok := seen[e.RoleId]; ok {
			continue
		}
		seen[e.RoleId] = struct{}{}
		ids = append(ids, e.RoleId)
	}
	return ids
}
