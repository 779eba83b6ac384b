package pipeline

import "github.com/heartmarshall/hiretrack-backend/internal/domain"

// Marker is the per-column indicator on the hiring board.
type Marker string

const (
	MarkerNone      Marker = ""
	MarkerCurrent   Marker = "current"
	MarkerCompleted Marker = "completed"
)

// MoveToStage returns a copy of c placed at stage. Any jump is allowed,
// forwards or backwards; range checks belong to the caller.
func MoveToStage(c domain.Candidate, stage domain.Stage) domain.Candidate {
	moved := c.Clone()
	moved.Stage = stage
	return moved
}

// ColumnMarker computes the board marker of a candidate at stage for column.
func ColumnMarker(stage, column domain.Stage) Marker {
	switch {
	case stage > column:
		return MarkerCompleted
	case stage == column:
		return MarkerCurrent
	default:
		return MarkerNone
	}
}

// StageColumn is a board column header.
type StageColumn struct {
	Stage domain.Stage
	Label string
	Color string
	Count int
}

// BoardRow is one candidate's line on the board, with one marker per column.
type BoardRow struct {
	CandidateID int64
	Name        string
	Role        string
	Score       int
	Stage       domain.Stage
	StageLabel  string
	StageColor  string
	Markers     []Marker
}

// Board is the hiring stages view over a set of candidates.
type Board struct {
	Columns []StageColumn
	Rows    []BoardRow
}

// BuildBoard lays candidates out against the fixed stage columns, keeping
// their order. Column counts include only candidates currently in the column.
func BuildBoard(candidates []domain.Candidate) Board {
	columns := make([]StageColumn, len(domain.AllStages))
	for i, s := range domain.AllStages {
		columns[i] = StageColumn{Stage: s, Label: s.Label(), Color: s.Color()}
	}

	rows := make([]BoardRow, 0, len(candidates))
	for _, c := range candidates {
		markers := make([]Marker, len(domain.AllStages))
		for i, s := range domain.AllStages {
			markers[i] = ColumnMarker(c.Stage, s)
			if c.Stage == s {
				columns[i].Count++
			}
		}
		rows = append(rows, BoardRow{
			CandidateID: c.ID,
			Name:        c.Name,
			Role:        c.Role,
			Score:       c.Score,
			Stage:       c.Stage,
			StageLabel:  c.Stage.Label(),
			StageColor:  c.Stage.Color(),
			Markers:     markers,
		})
	}

	return Board{Columns: columns, Rows: rows}
}
