package domain

// Role represents the authorization level stored on a user's profile.
type Role string

const (
	RoleSponsor       Role = "SPONSOR"
	RoleMember        Role = "MEMBER"
	RolePoster        Role = "POSTER"
	RoleModerator     Role = "MODERATOR"
	RoleAdministrator Role = "ADMINISTRATOR"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleSponsor, RoleMember, RolePoster, RoleModerator, RoleAdministrator:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeVideo    EntityType = "VIDEO"
	EntityTypeSource   EntityType = "SOURCE"
	EntityTypeSpeaker  EntityType = "SPEAKER"
	EntityTypeCategory EntityType = "CATEGORY"
	EntityTypePlaylist EntityType = "PLAYLIST"
	EntityTypeUser     EntityType = "USER"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeVideo, EntityTypeSource, EntityTypeSpeaker,
		EntityTypeCategory, EntityTypePlaylist, EntityTypeUser:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
// A CHANGE entry may carry the list of changed fields; a CREATE entry never does.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionChange AuditAction = "CHANGE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionChange:
		return true
	}
	return false
}
