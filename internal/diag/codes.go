package diag

import (
	"fmt"
)

// Code is a stable machine-readable identifier for a diagnostic.
// Codes are grouped per marker family by thousand-range.
type Code uint16

const (
	UnknownCode Code = 0

	// Date markers (@value)
	DateUnrecognized  Code = 1001
	DateSlashFormat   Code = 1002
	DateUSSlashFormat Code = 1003
	DateUSDashFormat  Code = 1004
	DateYearRange     Code = 1005
	DateMonthRange    Code = 1006
	DateDayRange      Code = 1007
	DateNotInCalendar Code = 1008

	// Color markers (color:#hex)
	ColorBadHex Code = 2001

	// Priority markers (#word)
	PriorityUnknown Code = 3001

	// Tag markers ([content])
	TagEmpty    Code = 4001
	TagBadChars Code = 4002
	TagTooLong  Code = 4003

	// Assignee markers (+name)
	AssigneeBadName Code = 5001
	AssigneeTooLong Code = 5002

	// Incomplete trailing markers
	IncompleteTag      Code = 6001
	IncompleteColor    Code = 6002
	IncompleteDate     Code = 6003
	IncompleteAssignee Code = 6004
	IncompletePriority Code = 6005

	// Advisory marker-adoption suggestions
	SuggestTagWrap    Code = 7001
	SuggestDatePrefix Code = 7002

	// I/O failures surfaced as diagnostics by the directory checker
	IOLoadFile Code = 9001
)

var codeDescription = map[Code]string{
	UnknownCode:        "Unknown issue",
	DateUnrecognized:   "Unrecognized date format",
	DateSlashFormat:    "Slash-separated date",
	DateUSSlashFormat:  "US month/day slash date",
	DateUSDashFormat:   "US month/day dash date",
	DateYearRange:      "Year out of range",
	DateMonthRange:     "Month out of range",
	DateDayRange:       "Day out of range",
	DateNotInCalendar:  "Day does not exist in month",
	ColorBadHex:        "Invalid hex color",
	PriorityUnknown:    "Unknown priority",
	TagEmpty:           "Empty tag",
	TagBadChars:        "Special characters in tag",
	TagTooLong:         "Tag too long",
	AssigneeBadName:    "Invalid assignee name",
	AssigneeTooLong:    "Assignee name too long",
	IncompleteTag:      "Unterminated tag bracket",
	IncompleteColor:    "Unfinished color marker",
	IncompleteDate:     "Unfinished date marker",
	IncompleteAssignee: "Unfinished assignee marker",
	IncompletePriority: "Unfinished priority marker",
	SuggestTagWrap:     "Word could be a tag",
	SuggestDatePrefix:  "Word could be a date marker",
	IOLoadFile:         "Failed to load file",
}

// ID formats the code with its family prefix, e.g. DAT1001.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("DAT%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("COL%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("PRI%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("TAG%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("ASN%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("INC%04d", ic)
	case ic >= 7000 && ic < 8000:
		return fmt.Sprintf("SUG%04d", ic)
	case ic >= 9000 && ic < 10000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
