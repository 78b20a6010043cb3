package models

import (
	"encoding/json"
	"strings"

	"github.com/koinochrista/backend/internal/types"
	"gorm.io/gorm"
)

// MatchRule maps expense descriptions to a cost category code, so that
// recurring bills get classified the same way every month.
//
// Match is a glob pattern, e.g. "*ΔΕΗ*" or "Elevator service*". Rules with a
// lower Priority value win.
type MatchRule struct {
	Model
	Priority     uint               `json:"priority" example:"1"`                    // Rules with lower priority are evaluated first
	Match        string             `json:"match" example:"*elevator*"`              // Glob pattern matched against the expense description
	CostCategory types.CostCategory `json:"costCategory" example:"12"`               // Cost category code to suggest on a match
}

func (r *MatchRule) BeforeSave(_ *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)

	if r.Match == "" {
		return ErrMatchRulePatternMissing
	}

	if _, err := r.CostCategory.Coefficient(); err != nil {
		return err
	}

	return nil
}

// Export returns all match rules on this instance for export.
func (MatchRule) Export() (json.RawMessage, error) {
	var rules []MatchRule
	err := DB.Unscoped().Where(&MatchRule{}).Find(&rules).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&rules)
	if err != nil {
		return json.RawMessage{}, err
	}

	return json.RawMessage(j), nil
}
