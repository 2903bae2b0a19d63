package users_enums

// ProjectRole is the permission level a member holds inside a single project.
type ProjectRole string

const (
	ProjectRoleAdmin  ProjectRole = "admin"
	ProjectRoleEditor ProjectRole = "editor"
	ProjectRoleViewer ProjectRole = "viewer"
)

func (r ProjectRole) IsValid() bool {
	switch r {
	case ProjectRoleAdmin, ProjectRoleEditor, ProjectRoleViewer:
		return true
	default:
		return false
	}
}

// Policy predicates. Unknown role values deny everything (fail closed).

func (r ProjectRole) IsProjectEditable() bool {
	return r == ProjectRoleAdmin || r == ProjectRoleEditor
}

func (r ProjectRole) IsProjectDeletable() bool {
	return r == ProjectRoleAdmin
}

func (r ProjectRole) AreMembersManageable() bool {
	return r == ProjectRoleAdmin
}
