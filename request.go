package websummary

import "time"

// RequestState tracks where a summarization request is in its linear
// lifecycle. Transitions only ever move forward; a failed request ends
// in StateError and the user must resubmit.
type RequestState string

// Request lifecycle states.
const (
	StateIdle        RequestState = "idle"
	StateValidating  RequestState = "validating"
	StateLoading     RequestState = "loading"
	StateSummarizing RequestState = "summarizing"
	StateDisplaying  RequestState = "displaying"
	StateError       RequestState = "error"
)

// Request is the serializable record of a single summarization request.
// It carries the user input, the current lifecycle state, and, once the
// request finishes, either the result or the error that ended it. The
// presentation layer owns one Request per session; nothing outlives it.
type Request struct {
	ID     string    `json:"id"`
	URL    string    `json:"url"`
	Length Length    `json:"length"`
	Chain  ChainType `json:"chain"`

	State RequestState `json:"state"`

	Result  *SummaryResult `json:"result,omitempty"`
	Preview string         `json:"preview,omitempty"`

	// ErrCode and ErrMessage are set when State is StateError.
	ErrCode    string `json:"errCode,omitempty"`
	ErrMessage string `json:"errMessage,omitempty"`

	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

// Failed reports whether the request ended in an error.
func (r *Request) Failed() bool {
	return r.State == StateError
}

// Summary returns the generated summary text, or "" if none exists.
func (r *Request) Summary() string {
	if r.Result == nil {
		return ""
	}
	return r.Result.Summary
}
