package valueobjects

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Plan is a regular membership plan. Values are stored lowercase.
type Plan string

const (
	PlanBasic    Plan = "basic"
	PlanStandard Plan = "standard"
	PlanDeluxe   Plan = "deluxe"
)

var planPrices = map[Plan]Money{
	PlanBasic:    MoneyFromUnits(6500),
	PlanStandard: MoneyFromUnits(12500),
	PlanDeluxe:   MoneyFromUnits(18500),
}

// AllPlans lists plans in ascending price order.
var AllPlans = []Plan{PlanBasic, PlanStandard, PlanDeluxe}

var planCaser = cases.Title(language.English)

// ParsePlan matches a plan name case-insensitively.
func ParsePlan(s string) (Plan, error) {
	p := Plan(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("invalid plan: %q", s)
	}
	return p, nil
}

func (p Plan) IsValid() bool {
	_, ok := planPrices[p]
	return ok
}

// Price returns the table price for the plan, or zero for an unknown plan.
func (p Plan) Price() Money {
	return planPrices[p]
}

func (p Plan) String() string {
	return string(p)
}

// DisplayName returns the title-cased plan name, e.g. "Deluxe".
func (p Plan) DisplayName() string {
	return planCaser.String(string(p))
}

// PlanNames returns the display names of all plans joined with ", ".
func PlanNames() string {
	names := make([]string, 0, len(AllPlans))
	for _, p := range AllPlans {
		names = append(names, p.DisplayName())
	}
	return strings.Join(names, ", ")
}
