package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/koinochrista/backend/internal/httputil"
	"github.com/koinochrista/backend/internal/models"
	"github.com/koinochrista/backend/internal/types"
)

// MatchRuleEditable represents all values of a match rule
// that can be set by API consumers.
type MatchRuleEditable struct {
	Priority     uint               `json:"priority" example:"1"`
	Match        string             `json:"match" example:"*elevator*"`
	CostCategory types.CostCategory `json:"costCategory" example:"12"`
}

// model returns the database resource for the API representation
func (editable MatchRuleEditable) model() models.MatchRule {
	return models.MatchRule{
		Priority:     editable.Priority,
		Match:        editable.Match,
		CostCategory: editable.CostCategory,
	}
}

type MatchRuleLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/match-rules/4"`
}

// MatchRule is the API representation of a match rule
type MatchRule struct {
	models.Model
	MatchRuleEditable
	Links MatchRuleLinks `json:"links"`
}

func newMatchRule(c *gin.Context, model models.MatchRule) MatchRule {
	url := httputil.RequestHost(c)

	return MatchRule{
		Model: model.Model,
		MatchRuleEditable: MatchRuleEditable{
			Priority:     model.Priority,
			Match:        model.Match,
			CostCategory: model.CostCategory,
		},
		Links: MatchRuleLinks{
			Self: fmt.Sprintf("%s/v1/match-rules/%d", url, model.ID),
		},
	}
}

type MatchRuleListResponse struct {
	Data  []MatchRule `json:"data"`
	Error *string     `json:"error" example:"the specified resource ID is not a valid ID"`
}

type MatchRuleCreateResponse struct {
	Data  []MatchRuleResponse `json:"data"`
	Error *string             `json:"error" example:"the specified resource ID is not a valid ID"`
}

func (r *MatchRuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, MatchRuleResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type MatchRuleResponse struct {
	Data  *MatchRule `json:"data"`
	Error *string    `json:"error" example:"the specified resource ID is not a valid ID"`
}
