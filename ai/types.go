package ai

// AllowedLabels defines the routing labels a classifier may score. The list
// is broader than the planner's canonical category set: it includes labels
// (insurance-company tracks, the catch-all) that route a document without
// having criteria templates of their own.
var AllowedLabels = []string{
	"ניידות",
	"נכות כללית",
	"תג נכה",
	"תאונת עבודה",
	"תאונת דרכים",
	"שירותים מיוחדים",
	"פטור מס הכנסה",
	"סיעוד חברת ביטוח",
	"סיעוד ביטוח לאומי",
	"נפגעי פעולות איבה",
	"משרד הביטחון",
	"מחלת מקצוע",
	"חברות ביטוח",
}
