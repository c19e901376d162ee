package redcap

import (
	"context"

	"github.com/redcap-tools/redcap-go/internal/rcrequest"
	"github.com/redcap-tools/redcap-go/internal/types"
)

// ExportDAGs exports the project's data access groups.
func (p *Project) ExportDAGs(ctx context.Context) ([]DAG, error) {
	var dags []DAG
	if err := p.exportJSON(ctx, p.payload("dag"), "dag", &dags); err != nil {
		return nil, err
	}
	return dags, nil
}

// ImportDAGs adds or renames data access groups and returns how many were
// affected. Only the group name is considered for new groups; the unique
// group name is server-assigned.
func (p *Project) ImportDAGs(ctx context.Context, dags []DAG) (int, error) {
	if len(dags) == 0 {
		return 0, types.Validationf("no data access groups to import")
	}
	pl := p.payload("dag").Action("import")
	if err := importJSONData(pl, dags); err != nil {
		return 0, err
	}
	return p.importCount(ctx, pl, "dag", "import")
}

// DeleteDAGs deletes data access groups by their unique group names and
// returns how many were deleted.
func (p *Project) DeleteDAGs(ctx context.Context, groups []string) (int, error) {
	if len(groups) == 0 {
		return 0, types.Validationf("no data access groups to delete")
	}
	pl := p.payload("dag").Action("delete")
	pl.SetList("dags", groups)
	return p.importCount(ctx, pl, "dag", "delete")
}

// SwitchDAG switches the API user into the given data access group. The
// user must already be assigned to that group.
func (p *Project) SwitchDAG(ctx context.Context, uniqueGroupName string) error {
	if err := types.RequireArg("dag", uniqueGroupName); err != nil {
		return err
	}
	pl := p.payload("dag").Action("switch")
	pl.Set("dag", uniqueGroupName)
	pl.ReturnFormat("json")
	_, err := p.call(ctx, pl, rcrequest.Config{Content: "dag", Action: "switch", Format: "json", ExpectEmptyBody: true})
	return err
}

// ExportUserDAGAssignments exports the user-to-group mapping.
func (p *Project) ExportUserDAGAssignments(ctx context.Context) ([]UserDAGAssignment, error) {
	var assignments []UserDAGAssignment
	if err := p.exportJSON(ctx, p.payload("userDagMapping"), "userDagMapping", &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

// ImportUserDAGAssignments assigns users to data access groups and
// returns how many assignments were stored. An empty group name clears
// the user's assignment.
func (p *Project) ImportUserDAGAssignments(ctx context.Context, assignments []UserDAGAssignment) (int, error) {
	if len(assignments) == 0 {
		return 0, types.Validationf("no group assignments to import")
	}
	pl := p.payload("userDagMapping").Action("import")
	if err := importJSONData(pl, assignments); err != nil {
		return 0, err
	}
	return p.importCount(ctx, pl, "userDagMapping", "import")
}
