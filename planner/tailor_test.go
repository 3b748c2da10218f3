package planner

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/zakaut/core"
)

func pinYear(t *testing.T, year int) {
	t.Helper()
	old := nowYear
	nowYear = func() int { return year }
	t.Cleanup(func() { nowYear = old })
}

func TestExtractAge(t *testing.T) {
	pinYear(t, 2025)

	tests := []struct {
		name   string
		intake string
		want   int
		ok     bool
	}{
		{"explicit ben", "פרטי מבוטח: בן 68, מתקשה בעבודה מלאה.", 68, true},
		{"explicit bat", "המבוטחת בת 62, תלויה חלקית בעזרת הזולת.", 62, true},
		{"age with colon", "גיל: 72", 72, true},
		{"age with dash", "גיל - 45 שנים", 45, true},
		{"birth year", "תאריך לידה: 1985", 40, true},
		{"birth year loose marker", "שנת לידה 1990 לערך", 35, true},
		{"birth year out of range", "לידה 1800", 0, false},
		{"explicit age wins over birth year", "בן 68, תאריך לידה 1957", 68, true},
		{"single digit ignored", "בן 9", 0, false},
		{"no hints", "מסמך רפואי ללא פרטים.", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractAge(tt.intake)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildPlan_RetirementAgeEmphasis(t *testing.T) {
	intake := "פרטי מבוטח: בן 68, מתקשה בעבודה מלאה בעקבות מחלה כרונית. מבקש בירור זכאות."
	plan, err := BuildPlan("קצבת נכות", intake)
	require.NoError(t, err)

	base := TemplatesFor(core.CategoryGeneralDisability)
	require.Len(t, plan.Queries, len(base)+1)
	assert.Equal(t, base[0], plan.Queries[0])
	assert.Equal(t, "נכות כללית – זכאות לאחר גיל פרישה/חריגים", plan.Queries[1])
}

func TestBuildPlan_MinimumAgeEmphasis(t *testing.T) {
	plan, err := BuildPlan("סיעוד ביטוח לאומי", "המבוטחת בת 62, תלויה חלקית בעזרת הזולת בפעולות יומיומיות.")
	require.NoError(t, err)

	require.Len(t, plan.Queries, 6)
	assert.Equal(t, "גמלת סיעוד – בדיקת עמידה בתנאי גיל מינימלי", plan.Queries[0])
	assert.Equal(t, "גמלת סיעוד – מבחן תלות (ADL)", plan.Queries[1])
}

func TestBuildPlan_NoEmphasisAboveRetirementAge(t *testing.T) {
	plan, err := BuildPlan("גמלת סיעוד", "המבוטח בן 80, זקוק לעזרה.")
	require.NoError(t, err)
	assert.Equal(t, TemplatesFor(core.CategoryLongTermCare), plan.Queries)
}

func TestTailorQueries_WorkTerms(t *testing.T) {
	base := TemplatesFor(core.CategoryWorkAccident)

	t.Run("work term present", func(t *testing.T) {
		got := tailorQueries(core.CategoryWorkAccident, base, "נפגע במהלך משמרת לילה במפעל.")
		require.Len(t, got, len(base)+1)
		assert.Equal(t, "תאונת עבודה – תיעוד מעסיק/מקום עבודה", got[0])
	})

	t.Run("term inside a longer word does not count", func(t *testing.T) {
		got := tailorQueries(core.CategoryWorkAccident, base, "שכרו נפגע בתאונה.")
		assert.Equal(t, base, got)
	})

	t.Run("occupational disease shares the rule", func(t *testing.T) {
		occ := TemplatesFor(core.CategoryOccupationalDisease)
		got := tailorQueries(core.CategoryOccupationalDisease, occ, "פרטי מעסיק: מפעל פלדה בצפון.")
		require.Len(t, got, len(occ)+1)
		assert.Equal(t, "מחלת מקצוע – תיעוד מעסיק/מקום עבודה", got[0])
	})
}

func TestTailorQueries_MobilityTerms(t *testing.T) {
	t.Run("parking badge", func(t *testing.T) {
		base := TemplatesFor(core.CategoryParkingBadge)
		got := tailorQueries(core.CategoryParkingBadge, base, "מתנייד בכיסא גלגלים בעקבות ניתוח.")
		require.Len(t, got, len(base)+1)
		assert.Equal(t, "תג נכה – תיעוד מגבלת ניידות חמורה", got[0])
	})

	t.Run("mobility", func(t *testing.T) {
		base := TemplatesFor(core.CategoryMobility)
		got := tailorQueries(core.CategoryMobility, base, "סובל מקושי בהליכה ממושכת.")
		require.Len(t, got, len(base)+1)
		assert.Equal(t, "ניידות – תיעוד מגבלת ניידות חמורה", got[0])
	})

	t.Run("no mobility hint", func(t *testing.T) {
		base := TemplatesFor(core.CategoryMobility)
		got := tailorQueries(core.CategoryMobility, base, "מבקש בדיקת זכאות.")
		assert.Equal(t, base, got)
	})
}

func TestTailorQueries_DoesNotMutateBase(t *testing.T) {
	before := slices.Clone(criteriaTemplates[core.CategoryWorkAccident])

	tailorQueries(core.CategoryWorkAccident, criteriaTemplates[core.CategoryWorkAccident], "פרטי מעסיק: מפעל.")
	assert.Equal(t, before, criteriaTemplates[core.CategoryWorkAccident])
}
