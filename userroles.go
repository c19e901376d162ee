package redcap

import (
	"context"

	"github.com/redcap-tools/redcap-go/internal/types"
)

// ExportUserRoles exports the project's user roles.
func (p *Project) ExportUserRoles(ctx context.Context) ([]UserRole, error) {
	var roles []UserRole
	if err := p.exportJSON(ctx, p.payload("userRole"), "userRole", &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// ImportUserRoles adds or updates user roles and returns how many were
// affected.
func (p *Project) ImportUserRoles(ctx context.Context, roles []UserRole) (int, error) {
	if len(roles) == 0 {
		return 0, types.Validationf("no user roles to import")
	}
	pl := p.payload("userRole")
	if err := importJSONData(pl, roles); err != nil {
		return 0, err
	}
	return p.importCount(ctx, pl, "userRole", "import")
}

// DeleteUserRoles deletes roles by their unique role names and returns
// how many were deleted.
func (p *Project) DeleteUserRoles(ctx context.Context, roles []string) (int, error) {
	if len(roles) == 0 {
		return 0, types.Validationf("no user roles to delete")
	}
	pl := p.payload("userRole").Action("delete")
	pl.SetList("roles", roles)
	return p.importCount(ctx, pl, "userRole", "delete")
}

// ExportUserRoleAssignments exports the user-to-role mapping.
func (p *Project) ExportUserRoleAssignments(ctx context.Context) ([]UserRoleAssignment, error) {
	var assignments []UserRoleAssignment
	if err := p.exportJSON(ctx, p.payload("userRoleMapping"), "userRoleMapping", &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

// ImportUserRoleAssignments assigns users to roles and returns how many
// assignments were stored.
func (p *Project) ImportUserRoleAssignments(ctx context.Context, assignments []UserRoleAssignment) (int, error) {
	if len(assignments) == 0 {
		return 0, types.Validationf("no role assignments to import")
	}
	pl := p.payload("userRoleMapping")
	if err := importJSONData(pl, assignments); err != nil {
		return 0, err
	}
	return p.importCount(ctx, pl, "userRoleMapping", "import")
}
