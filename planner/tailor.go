package planner

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"time"

	"github.com/poiesic/zakaut/core"
)

// retirementAge is the pension-age threshold used by the age tailoring rules.
const retirementAge = 67

var (
	agePattern       = regexp.MustCompile(`(?:גיל|בן|בת)\s*[:\-]?\s*(\d{2})`)
	birthYearPattern = regexp.MustCompile(`(?:תאריך(?:\s*לידה)?|לידה)[^\d]{0,10}(\d{4})`)

	// regexp's \b is ASCII-only, so Hebrew word boundaries are spelled out.
	workTerms = regexp.MustCompile(`(?:^|[^\p{L}\p{N}_])(?:משמרת|מעסיק|מקום\s*עבודה|תפקיד|שכר)(?:[^\p{L}\p{N}_]|$)`)

	mobilityTerms = regexp.MustCompile(`קושי\s*בהליכה|קביים|כיסא\s*גלגלים|ניידות\s*מוגבלת`)
)

// nowYear returns the current calendar year; tests pin it.
var nowYear = func() int { return time.Now().Year() }

// extractAge makes a rough attempt to read the patient's age out of free
// intake text, either from an explicit age phrase ("בן 72", "גיל 68") or from
// a birth year near a date-of-birth marker.
func extractAge(intake string) (int, bool) {
	if m := agePattern.FindStringSubmatch(intake); m != nil {
		if age, err := strconv.Atoi(m[1]); err == nil {
			return age, true
		}
	}
	if m := birthYearPattern.FindStringSubmatch(intake); m != nil {
		if year, err := strconv.Atoi(m[1]); err == nil {
			if age := nowYear() - year; age > 0 && age < 120 {
				return age, true
			}
		}
	}
	return 0, false
}

// tailorQueries adjusts the base query list by hints found in the intake text.
// The base list is never mutated; tailoring only prepends or inserts emphasis
// queries, it never removes any.
func tailorQueries(category core.Category, base []string, intake string) []string {
	queries := slices.Clone(base)
	age, hasAge := extractAge(intake)

	switch category {
	case core.CategoryGeneralDisability:
		if hasAge && age >= retirementAge {
			queries = slices.Insert(queries, 1, "נכות כללית – זכאות לאחר גיל פרישה/חריגים")
		}
	case core.CategoryLongTermCare:
		if hasAge && age < retirementAge {
			queries = slices.Insert(queries, 0, "גמלת סיעוד – בדיקת עמידה בתנאי גיל מינימלי")
		}
	case core.CategoryWorkAccident, core.CategoryOccupationalDisease:
		if workTerms.MatchString(intake) {
			queries = slices.Insert(queries, 0, fmt.Sprintf("%s – תיעוד מעסיק/מקום עבודה", category))
		}
	case core.CategoryParkingBadge, core.CategoryMobility:
		if mobilityTerms.MatchString(intake) {
			queries = slices.Insert(queries, 0, fmt.Sprintf("%s – תיעוד מגבלת ניידות חמורה", category))
		}
	}
	return queries
}
