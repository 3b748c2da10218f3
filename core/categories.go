package core

// Category identifies one of the eligibility tracks the engine can plan
// criteria queries for. The values are the canonical Hebrew labels used across
// routing, planning and audit records.
type Category string

const (
	CategoryGeneralDisability    Category = "נכות כללית"
	CategoryLongTermCare         Category = "גמלת סיעוד"
	CategoryMobility             Category = "ניידות"
	CategoryParkingBadge         Category = "תג נכה"
	CategoryWorkAccident         Category = "תאונת עבודה"
	CategoryRoadAccident         Category = "תאונת דרכים"
	CategorySpecialServices      Category = "שירותים מיוחדים"
	CategoryIncomeTaxExemption   Category = "פטור ממס הכנסה"
	CategoryHostileActionVictims Category = "נפגעי פעולות איבה"
	CategoryDefenseMinistry      Category = "משרד הביטחון"
	CategoryOccupationalDisease  Category = "מחלת מקצוע"
)

// Categories returns all canonical categories in a stable order.
func Categories() []Category {
	return []Category{
		CategoryGeneralDisability,
		CategoryLongTermCare,
		CategoryMobility,
		CategoryParkingBadge,
		CategoryWorkAccident,
		CategoryRoadAccident,
		CategorySpecialServices,
		CategoryIncomeTaxExemption,
		CategoryHostileActionVictims,
		CategoryDefenseMinistry,
		CategoryOccupationalDisease,
	}
}

// Valid reports whether c is one of the canonical categories.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
