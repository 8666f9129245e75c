package models

// PageStatus is the terminal state of an assembled page. The three states are
// mutually exclusive: a page carries either cards, a no-results block, or an
// error block, never a mix.
type PageStatus int

const (
	// StatusOK means at least one card was rendered.
	StatusOK PageStatus = iota
	// StatusNoResults means the search (or filter) matched nothing.
	StatusNoResults
	// StatusFetchError means the upstream API call failed.
	StatusFetchError
)

// String returns a human-readable status name for logging.
func (s PageStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoResults:
		return "no_results"
	case StatusFetchError:
		return "fetch_error"
	default:
		return "unknown"
	}
}
