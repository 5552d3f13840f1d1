package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntry is one append-only row of the mutation log. Entries are written
// exactly once per successful mutation and never altered afterwards.
//
// Action is a tagged variant: CREATE carries no field list, CHANGE may carry
// the set of fields the mutation touched.
type AuditEntry struct {
	ID            uuid.UUID
	ActorID       uuid.UUID
	EntityType    EntityType
	EntityID      uuid.UUID
	Label         string // human-readable snapshot (title/name) at mutation time
	Action        AuditAction
	ChangedFields []string
	CreatedAt     time.Time
}

// NewCreateEntry builds an audit entry for a create mutation.
func NewCreateEntry(actorID uuid.UUID, entityType EntityType, entityID uuid.UUID, label string) AuditEntry {
	return AuditEntry{
		ID:         uuid.New(),
		ActorID:    actorID,
		EntityType: entityType,
		EntityID:   entityID,
		Label:      label,
		Action:     AuditActionCreate,
		CreatedAt:  time.Now().UTC(),
	}
}

// NewChangeEntry builds an audit entry for a change mutation. fields may be
// empty when the mutation touched the whole record.
func NewChangeEntry(actorID uuid.UUID, entityType EntityType, entityID uuid.UUID, label string, fields ...string) AuditEntry {
	return AuditEntry{
		ID:            uuid.New(),
		ActorID:       actorID,
		EntityType:    entityType,
		EntityID:      entityID,
		Label:         label,
		Action:        AuditActionChange,
		ChangedFields: fields,
		CreatedAt:     time.Now().UTC(),
	}
}
