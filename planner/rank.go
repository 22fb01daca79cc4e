package planner

import (
	"sort"

	"github.com/muhammadheryan/restock/model"
)

// Rank orders suggestions soonest-to-empty first, keeping input order on ties.
// Threshold-only suggestions carry zero days and surface first.
func Rank(suggestions []model.ReorderSuggestion) {
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].DaysUntilEmpty < suggestions[j].DaysUntilEmpty
	})
}
