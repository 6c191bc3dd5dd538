// Package policy holds the role-based visibility and mutation rules in one
// place so the permission matrix is auditable instead of being scattered
// across route handlers.
package policy

import "github.com/luct-ict/reporting-api/internal/models"

// Scope narrows which rows of a table a role may see.
type Scope int

const (
	// ScopeAll imposes no row filter.
	ScopeAll Scope = iota
	// ScopeOwn restricts rows to those owned by the caller (lecturer_id = self).
	ScopeOwn
	// ScopeFaculty restricts rows to the caller's faculty.
	ScopeFaculty
)

// Action names a mutation gated by role.
type Action string

const (
	ActionReportCreate   Action = "report.create"
	ActionCourseCreate   Action = "course.create"
	ActionCourseUpdate   Action = "course.update"
	ActionCourseAssign   Action = "course.assign"
	ActionFeedbackCreate Action = "feedback.create"
	ActionFeedbackUpdate Action = "feedback.update"
)

// ReportScope returns the row filter a role gets when reading reports.
func ReportScope(role models.Role) Scope {
	switch role {
	case models.RoleLecturer:
		return ScopeOwn
	case models.RolePrincipalLecturer:
		return ScopeFaculty
	default:
		return ScopeAll
	}
}

// ClassScope returns the row filter a role gets when reading classes.
func ClassScope(role models.Role) Scope {
	if role == models.RoleLecturer {
		return ScopeOwn
	}
	return ScopeAll
}

// SearchOwnerScoped reports whether search results for reports and classes
// must be limited to rows the caller owns.
func SearchOwnerScoped(role models.Role) bool {
	return role == models.RoleLecturer
}

// CanMutate reports whether the role may perform the action.
func CanMutate(role models.Role, action Action) bool {
	switch action {
	case ActionReportCreate:
		return role == models.RoleLecturer
	case ActionCourseCreate, ActionCourseUpdate, ActionCourseAssign:
		return role == models.RoleProgramLeader
	case ActionFeedbackCreate, ActionFeedbackUpdate:
		return role == models.RolePrincipalLecturer
	}
	return false
}
