package wardrobe

import (
	"github.com/erazemk/garderoba/internal/model"
)

// Phase is the lifecycle state of a form or listing.
type Phase int

// Phases.
const (
	PhaseIdle Phase = iota
	PhasePending
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePending:
		return "pending"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// NoticeKind classifies a notice.
type NoticeKind int

// Notice kinds.
const (
	NoticeNone NoticeKind = iota
	NoticeSuccess
	NoticeEmpty
	NoticeFailure
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeSuccess:
		return "success"
	case NoticeEmpty:
		return "empty"
	case NoticeFailure:
		return "failure"
	default:
		return ""
	}
}

// Notice is an acknowledgment shown to the user after an operation.
// Writes and reads report through the same type.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// IsZero reports whether there is nothing to show.
func (n Notice) IsZero() bool {
	return n.Kind == NoticeNone
}

// Status is a snapshot of a form's or listing's state.
type Status struct {
	Phase  Phase
	Notice Notice
}

type messages struct {
	added       string
	addFailed   string
	empty       string
	fetchFailed string
}

var categoryMessages = map[model.Category]messages{
	model.CategoryClothes: {
		added:       "Clothes added successfully",
		addFailed:   "Error adding clothes",
		empty:       "No clothes found in the database.",
		fetchFailed: "Error fetching clothes",
	},
	model.CategoryFootwear: {
		added:       "Footwear added successfully",
		addFailed:   "Error adding footwear",
		empty:       "No footwear found in the database.",
		fetchFailed: "Error fetching footwear",
	},
	model.CategoryAccessories: {
		added:       "Accessory added successfully",
		addFailed:   "Error adding accessory",
		empty:       "No accessories found in the database.",
		fetchFailed: "Error fetching accessories",
	},
}
