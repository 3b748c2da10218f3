// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package planner

import "github.com/poiesic/zakaut/core"

type aliasEntry struct {
	label    string
	category core.Category
}

// categoryAliases maps label variants seen in routed output to canonical
// categories. Order matters: the substring pass in Canonicalize scans top to
// bottom, so earlier entries win when a label contains several aliases.
var categoryAliases = []aliasEntry{
	{"סיעוד", core.CategoryLongTermCare},
	{"סיעוד ביטוח לאומי", core.CategoryLongTermCare},
	{"גמלת סיעוד", core.CategoryLongTermCare},

	{"נכות כללית", core.CategoryGeneralDisability},
	{"קצבת נכות", core.CategoryGeneralDisability},

	{"ניידות", core.CategoryMobility},
	{"תג נכה", core.CategoryParkingBadge},

	{"תאונת עבודה", core.CategoryWorkAccident},
	{"תאונת דרכים", core.CategoryRoadAccident},
	{"נפגעי פעולות איבה", core.CategoryHostileActionVictims},
	{"משרד הביטחון", core.CategoryDefenseMinistry},

	{"שירותים מיוחדים", core.CategorySpecialServices},
	{"שירותים מיוחדים (סיעוד לפני סיעוד)", core.CategorySpecialServices},
	{"פטור מס הכנסה", core.CategoryIncomeTaxExemption},
	{"מחלת מקצוע", core.CategoryOccupationalDisease},
}

// criteriaTemplates holds the base criteria queries per category. The queries
// are short, precise Hebrew search phrases aimed at the section granularity of
// the criteria documents.
var criteriaTemplates = map[core.Category][]string{
	core.CategoryGeneralDisability: {
		"נכות כללית – תנאי זכאות בסיסיים",
		"נכות כללית – אחוז נכות רפואית מינימלי",
		"נכות כללית – כושר השתכרות ועבודה",
		"נכות כללית – תקופת אכשרה/דמי ביטוח",
		"נכות כללית – גיל וזכאות (לפני/אחרי גיל פרישה)",
		"נכות כללית – חריגים והוראות מעבר",
		"נכות כללית – מסמכים רפואיים נדרשים",
	},
	core.CategoryLongTermCare: {
		"גמלת סיעוד – מבחן תלות (ADL)",
		"גמלת סיעוד – מבחן הכנסה",
		"גמלת סיעוד – גיל זכאות",
		"גמלת סיעוד – דרגות זכאות והגדרות",
		"גמלת סיעוד – מסמכים ואישורים נדרשים",
	},
	core.CategoryMobility: {
		"ניידות – קריטריוני זכאות בסיסיים",
		"ניידות – אחוז מוגבלות בניידות/בדיקת ועדה",
		"ניידות – רכב ורישום בעלות",
		"ניידות – הטבות ותנאים נלווים",
	},
	core.CategoryParkingBadge: {
		"תג נכה – תנאי זכאות רפואיים",
		"תג נכה – הגבלת ניידות ומשמעויות רפואיות",
		"תג נכה – מסוכנות בריאותית בהליכה/ניידות",
		"תג נכה – מסמכים רפואיים ואישורים",
	},
	core.CategoryWorkAccident: {
		"תאונת עבודה – אירוע תוך כדי ועקב העבודה",
		"תאונת עבודה – קשר סיבתי רפואי",
		"תאונת עבודה – דיווח ותביעה במועד",
		"תאונת עבודה – אחוז נכות ונזק תפקודי",
	},
	core.CategoryRoadAccident: {
		"תאונת דרכים – הגדרת תאונת דרכים",
		"תאונת דרכים – קשר סיבתי בין התאונה לנזק",
		"תאונת דרכים – פוליסת ביטוח חובה ותנאים",
		"תאונת דרכים – מסמכים רפואיים ודיווחים",
	},
	core.CategorySpecialServices: {
		"שירותים מיוחדים – קריטריוני תלות וסיעודיות",
		"שירותים מיוחדים – בדיקת תפקוד יומיומי (ADL/IADL)",
		"שירותים מיוחדים – גיל/סטטוס תעסוקתי",
		"שירותים מיוחדים – מסמכים נדרשים",
	},
	core.CategoryIncomeTaxExemption: {
		"פטור ממס הכנסה – אחוזי נכות/עיוורון",
		"פטור ממס הכנסה – ועדות רפואיות",
		"פטור ממס הכנסה – תקופת זכאות והחלה",
		"פטור ממס הכנסה – מסמכים ואישורים",
	},
	core.CategoryHostileActionVictims: {
		"נפגעי פעולות איבה – הגדרת פגיעה מזכה",
		"נפגעי פעולות איבה – הכרה וגוף מטפל",
		"נפגעי פעולות איבה – קשר סיבתי ונזק",
		"נפגעי פעולות איבה – מסמכים נדרשים",
	},
	core.CategoryDefenseMinistry: {
		"משרד הביטחון – הכרה בנכות/פגיעה בשירות",
		"משרד הביטחון – קשר לשירות ותיעוד",
		"משרד הביטחון – ועדות רפואיות ודרגות",
		"משרד הביטחון – זכויות נלוות",
	},
	core.CategoryOccupationalDisease: {
		"מחלת מקצוע – הגדרה ורשימת מחלות",
		"מחלת מקצוע – קשר סיבתי לתנאי עבודה",
		"מחלת מקצוע – תקופת אכשרה/דיווח",
		"מחלת מקצוע – מסמכים ובדיקות",
	},
}
