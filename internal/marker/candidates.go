package marker

// Candidate is a static, typeable value offered to the user once a
// marker prefix is detected under the cursor. Tables are immutable at
// runtime.
type Candidate struct {
	Value    string // inserted text (marker value, without prefix)
	Label    string // display text
	Detail   string // optional description
	Category string // grouping key for display order
}

// Category ranks: lower sorts first. Categories not in the table sort
// after all ranked ones.
const (
	CategoryQuick    = "Quick"
	CategoryWeekdays = "Weekdays"
	CategoryRelative = "Relative"
	CategoryPalette  = "Palette"
	CategoryStatus   = "Status"
	CategoryTriage   = "Triage"
	CategoryPeople   = "People"
	CategoryCommon   = "Common"
)

var categoryRank = map[string]int{
	CategoryQuick:    0,
	CategoryWeekdays: 1,
	CategoryRelative: 2,
}

const unrankedCategory = 3

// CategoryRank returns the fixed display rank for a category.
func CategoryRank(category string) int {
	if r, ok := categoryRank[category]; ok {
		return r
	}
	return unrankedCategory
}

var dateCandidates = []Candidate{
	{Value: "today", Label: "today", Detail: "due today", Category: CategoryQuick},
	{Value: "tomorrow", Label: "tomorrow", Detail: "due tomorrow", Category: CategoryQuick},
	{Value: "yesterday", Label: "yesterday", Detail: "backdate to yesterday", Category: CategoryQuick},
	{Value: "monday", Label: "monday", Category: CategoryWeekdays},
	{Value: "tuesday", Label: "tuesday", Category: CategoryWeekdays},
	{Value: "wednesday", Label: "wednesday", Category: CategoryWeekdays},
	{Value: "thursday", Label: "thursday", Category: CategoryWeekdays},
	{Value: "friday", Label: "friday", Category: CategoryWeekdays},
	{Value: "saturday", Label: "saturday", Category: CategoryWeekdays},
	{Value: "sunday", Label: "sunday", Category: CategoryWeekdays},
	{Value: "next", Label: "next", Detail: "next occurrence", Category: CategoryRelative},
	{Value: "last", Label: "last", Detail: "previous occurrence", Category: CategoryRelative},
	{Value: "week", Label: "week", Detail: "within a week", Category: CategoryRelative},
	{Value: "month", Label: "month", Detail: "within a month", Category: CategoryRelative},
}

var priorityCandidates = []Candidate{
	{Value: "critical", Label: "critical", Detail: "drop everything", Category: CategoryTriage},
	{Value: "urgent", Label: "urgent", Category: CategoryTriage},
	{Value: "asap", Label: "asap", Category: CategoryTriage},
	{Value: "high", Label: "high", Category: CategoryTriage},
	{Value: "medium", Label: "medium", Category: CategoryTriage},
	{Value: "low", Label: "low", Category: CategoryTriage},
	{Value: "todo", Label: "todo", Category: CategoryStatus},
	{Value: "next", Label: "next", Category: CategoryStatus},
	{Value: "later", Label: "later", Category: CategoryStatus},
	{Value: "blocked", Label: "blocked", Category: CategoryStatus},
	{Value: "waiting", Label: "waiting", Category: CategoryStatus},
	{Value: "review", Label: "review", Category: CategoryStatus},
	{Value: "done", Label: "done", Category: CategoryStatus},
}

var colorCandidates = []Candidate{
	{Value: "#ff0000", Label: "red", Category: CategoryPalette},
	{Value: "#00ff00", Label: "green", Category: CategoryPalette},
	{Value: "#0000ff", Label: "blue", Category: CategoryPalette},
	{Value: "#ffff00", Label: "yellow", Category: CategoryPalette},
	{Value: "#ff8800", Label: "orange", Category: CategoryPalette},
	{Value: "#8800ff", Label: "purple", Category: CategoryPalette},
	{Value: "#000000", Label: "black", Category: CategoryPalette},
	{Value: "#ffffff", Label: "white", Category: CategoryPalette},
	{Value: "#888888", Label: "gray", Category: CategoryPalette},
}

var tagCandidates = []Candidate{
	{Value: "urgent", Label: "urgent", Category: CategoryCommon},
	{Value: "important", Label: "important", Category: CategoryCommon},
	{Value: "idea", Label: "idea", Category: CategoryCommon},
	{Value: "question", Label: "question", Category: CategoryCommon},
	{Value: "followup", Label: "followup", Category: CategoryCommon},
	{Value: "x", Label: "x", Detail: "mark task done", Category: CategoryQuick},
	{Value: " ", Label: "[ ]", Detail: "open checkbox", Category: CategoryQuick},
}

var assigneeCandidates = []Candidate{
	{Value: "me", Label: "me", Detail: "assign to yourself", Category: CategoryQuick},
	{Value: "team", Label: "team", Category: CategoryPeople},
}

// Candidates returns the static completion table for a marker kind.
// The returned slice must be treated as read-only.
func Candidates(kind Kind) []Candidate {
	switch kind {
	case KindDate:
		return dateCandidates
	case KindPriority:
		return priorityCandidates
	case KindColor:
		return colorCandidates
	case KindTag:
		return tagCandidates
	case KindAssignee:
		return assigneeCandidates
	}
	return nil
}
