package domain

// Currency is the ISO code of a posting's salary currency.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

func (c Currency) String() string { return string(c) }

func (c Currency) IsValid() bool {
	switch c {
	case CurrencyUSD, CurrencyEUR, CurrencyGBP:
		return true
	}
	return false
}

// SalaryInterval is the pay period a salary range refers to.
type SalaryInterval string

const (
	SalaryIntervalHour  SalaryInterval = "HOUR"
	SalaryIntervalDay   SalaryInterval = "DAY"
	SalaryIntervalWeek  SalaryInterval = "WEEK"
	SalaryIntervalMonth SalaryInterval = "MONTH"
	SalaryIntervalYear  SalaryInterval = "YEAR"
)

func (i SalaryInterval) String() string { return string(i) }

func (i SalaryInterval) IsValid() bool {
	switch i {
	case SalaryIntervalHour, SalaryIntervalDay, SalaryIntervalWeek, SalaryIntervalMonth, SalaryIntervalYear:
		return true
	}
	return false
}

// EventType identifies a recorded change in a candidate's history.
type EventType string

const (
	EventCandidateCreated EventType = "CANDIDATE_CREATED"
	EventStageChanged     EventType = "STAGE_CHANGED"
	EventNoteAdded        EventType = "NOTE_ADDED"
	EventPostingCreated   EventType = "POSTING_CREATED"
	EventPostingUpdated   EventType = "POSTING_UPDATED"
)

func (e EventType) String() string { return string(e) }

func (e EventType) IsValid() bool {
	switch e {
	case EventCandidateCreated, EventStageChanged, EventNoteAdded, EventPostingCreated, EventPostingUpdated:
		return true
	}
	return false
}

// SortOrder is the direction of a candidate listing sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (o SortOrder) IsValid() bool {
	return o == SortAsc || o == SortDesc
}

// SortField names the candidate attribute a listing is sorted by.
// The empty field keeps the stored order.
type SortField string

const (
	SortByNone  SortField = ""
	SortByName  SortField = "name"
	SortByRole  SortField = "role"
	SortByScore SortField = "score"
	SortByStage SortField = "stage"
)

func (f SortField) IsValid() bool {
	switch f {
	case SortByNone, SortByName, SortByRole, SortByScore, SortByStage:
		return true
	}
	return false
}
