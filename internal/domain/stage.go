package domain

// Stage is a position in the hiring pipeline. Stages are totally ordered:
// a candidate has progressed past stage s when its stage is greater than s.
type Stage int

const (
	StageApplied     Stage = 1
	StagePhoneScreen Stage = 2
	StageInterview   Stage = 3
	StageOffer       Stage = 4
	StageHired       Stage = 5
)

// StageUnknownLabel is returned by Label for ids outside the pipeline.
const StageUnknownLabel = "Unknown"

// AllStages lists the pipeline in order. Callers must not modify it.
var AllStages = []Stage{
	StageApplied,
	StagePhoneScreen,
	StageInterview,
	StageOffer,
	StageHired,
}

// Label returns the human-readable stage name, or "Unknown".
func (s Stage) Label() string {
	switch s {
	case StageApplied:
		return "Applied"
	case StagePhoneScreen:
		return "Phone Screen"
	case StageInterview:
		return "Interview"
	case StageOffer:
		return "Offer"
	case StageHired:
		return "Hired"
	}
	return StageUnknownLabel
}

// Color returns the display colour token of the stage badge.
// Unknown stages are gray.
func (s Stage) Color() string {
	switch s {
	case StageApplied:
		return "yellow"
	case StagePhoneScreen:
		return "blue"
	case StageInterview:
		return "green"
	case StageOffer:
		return "purple"
	case StageHired:
		return "indigo"
	}
	return "gray"
}

// BadgeClass returns the CSS utility classes the web client renders for the badge.
func (s Stage) BadgeClass() string {
	c := s.Color()
	return "bg-" + c + "-100 text-" + c + "-800"
}

func (s Stage) String() string { return s.Label() }

func (s Stage) IsValid() bool {
	return s >= StageApplied && s <= StageHired
}
