package meeting

import "time"

// Section labels the analysis prompt asks the model to emit. The extractor
// and the prompt must agree on these exact strings or extraction silently
// yields empty sections.
const (
	LabelThreeLine = "3-Line Summary"
	LabelTodo      = "To-do List"
	LabelDetailed  = "Detailed Summary"
)

// Recording holds one captured meeting recording and its derived loudness.
// Immutable after capture.
type Recording struct {
	Data       []byte
	RMS        float64
	SavedPath  string
	CapturedAt time.Time
}

// AnalysisResult is the three-section output of one analysis run. The fields
// are always populated together from the same raw response; a section the
// model did not emit is the empty string, never absent.
type AnalysisResult struct {
	ThreeLine string `json:"three_line"`
	Todo      string `json:"todo"`
	Detailed  string `json:"detailed"`
}

// Empty reports whether no section was extracted at all.
func (r AnalysisResult) Empty() bool {
	return r.ThreeLine == "" && r.Todo == "" && r.Detailed == ""
}
