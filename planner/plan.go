package planner

import (
	"fmt"
	"slices"
	"strings"

	"github.com/poiesic/zakaut/core"
)

// Canonicalize resolves a routed category label to its canonical category.
// Exact matches (canonical names and known aliases) are tried first, then a
// cautious substring pass so that minor label variations still resolve.
// Canonical names take precedence over aliases in the substring pass.
func Canonicalize(label string) (core.Category, error) {
	key := strings.TrimSpace(label)
	if c := core.Category(key); c.Valid() {
		return c, nil
	}
	for _, e := range categoryAliases {
		if e.label == key {
			return e.category, nil
		}
	}
	for _, c := range core.Categories() {
		if strings.Contains(key, string(c)) {
			return c, nil
		}
	}
	for _, e := range categoryAliases {
		if strings.Contains(key, e.label) {
			return e.category, nil
		}
	}
	return "", fmt.Errorf("%w: %q", core.ErrUnknownCategory, label)
}

// TemplatesFor returns a copy of the base criteria queries for a category,
// or nil when the category has no templates.
func TemplatesFor(cat core.Category) []string {
	return slices.Clone(criteriaTemplates[cat])
}

// Question phrases the final eligibility question for a category.
func Question(cat core.Category) string {
	return fmt.Sprintf("האם המטופל זכאי ל%s בהתאם לקריטריונים הרלוונטיים במסמכי המקור?", cat)
}

// BuildPlan builds the retrieval plan for one routed category: the label is
// canonicalized, the category's query templates are fetched and tailored by
// hints found in the intake text, and the final question is phrased.
func BuildPlan(label, intake string) (*core.Plan, error) {
	if core.IsBlank(intake) {
		return nil, core.ErrEmptyIntake
	}
	category, err := Canonicalize(label)
	if err != nil {
		return nil, err
	}
	base, ok := criteriaTemplates[category]
	if !ok {
		return nil, fmt.Errorf("%w: no criteria templates for %q", core.ErrUnknownCategory, category)
	}
	return &core.Plan{
		Category: category,
		Queries:  tailorQueries(category, base, intake),
		Question: Question(category),
	}, nil
}
