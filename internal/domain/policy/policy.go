// Package policy decides whether an actor may perform a catalog action.
// The rule table is a closed set: an action that is not listed is denied,
// as is any request without an active actor. The function is pure and never
// errors, so every allow/deny combination is enumerable in tests.
package policy

import (
	"github.com/saveschool/catalog-backend/internal/domain"
)

// Action enumerates every permission-gated operation.
type Action string

const (
	ActionCreateVideo       Action = "create-video"
	ActionUpdateVideo       Action = "update-video"
	ActionCreateSource      Action = "create-source"
	ActionUpdateSource      Action = "update-source"
	ActionCreateSpeaker     Action = "create-speaker"
	ActionUpdateSpeaker     Action = "update-speaker"
	ActionCreateCategory    Action = "create-category"
	ActionCreateSubCategory Action = "create-subcategory"
	ActionPublishVideo      Action = "publish-video"
	ActionUploadFile        Action = "upload-file"
	ActionImport            Action = "import"
)

// Context carries the entity state a rule may need. Ownership checks use the
// pre-mutation row, so callers must load the existing video before asking.
type Context struct {
	Video *domain.Video
}

// Authorize reports whether actor may perform action. A nil or inactive
// actor is denied for every action.
func Authorize(action Action, actor *domain.Actor, pctx Context) bool {
	if actor == nil || !actor.IsActive {
		return false
	}

	switch action {
	case ActionCreateVideo, ActionCreateSource, ActionCreateSpeaker, ActionUploadFile:
		return hasRole(actor, domain.RolePoster, domain.RoleModerator, domain.RoleAdministrator)

	case ActionUpdateVideo:
		if hasRole(actor, domain.RoleModerator, domain.RoleAdministrator) {
			return true
		}
		// Posters may edit their own videos only.
		return actor.Role == domain.RolePoster &&
			pctx.Video != nil &&
			pctx.Video.CreatedBy == actor.ID

	case ActionUpdateSource, ActionUpdateSpeaker,
		ActionCreateCategory, ActionCreateSubCategory,
		ActionPublishVideo:
		return hasRole(actor, domain.RoleModerator, domain.RoleAdministrator)

	case ActionImport:
		return actor.IsStaff
	}

	return false
}

func hasRole(actor *domain.Actor, roles ...domain.Role) bool {
	for _, r := range roles {
		if actor.Role == r {
			return true
		}
	}
	return false
}
