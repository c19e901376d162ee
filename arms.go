package redcap

import (
	"context"

	"github.com/redcap-tools/redcap-go/internal/types"
)

// ExportArms exports the arms of a longitudinal project, optionally
// limited to the given arm numbers.
func (p *Project) ExportArms(ctx context.Context, arms []string) ([]Arm, error) {
	pl := p.payload("arm")
	pl.SetList("arms", arms)
	var out []Arm
	if err := p.exportJSON(ctx, pl, "arm", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ExportArmsRaw exports the arm list as csv or xml text.
func (p *Project) ExportArmsRaw(ctx context.Context, format Format, arms []string) (string, error) {
	pl := p.payload("arm")
	pl.SetList("arms", arms)
	return p.exportRaw(ctx, pl, "arm", string(format))
}

// ImportArms adds or renames arms and returns how many were affected.
// With override set, the server first erases all existing arms.
func (p *Project) ImportArms(ctx context.Context, arms []Arm, override bool) (int, error) {
	if len(arms) == 0 {
		return 0, types.Validationf("no arms to import")
	}
	pl := p.payload("arm").Action("import")
	if err := importJSONData(pl, arms); err != nil {
		return 0, err
	}
	pl.Set("override", overrideFlag(override))
	return p.importCount(ctx, pl, "arm", "import")
}

// DeleteArms deletes arms by number and returns how many were deleted.
// Deleting an arm also deletes its events and all data collected under
// them.
func (p *Project) DeleteArms(ctx context.Context, arms []string) (int, error) {
	if len(arms) == 0 {
		return 0, types.Validationf("no arms to delete")
	}
	pl := p.payload("arm").Action("delete")
	pl.SetList("arms", arms)
	return p.importCount(ctx, pl, "arm", "delete")
}
