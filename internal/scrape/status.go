package scrape

// Status is the last-run snapshot served by /scrape/status. Stored in an
// atomic.Value; never mutated in place.
type Status struct {
	LastRunAt  string `json:"last_run_at"`
	LastOkAt   string `json:"last_ok_at"`
	LastError  string `json:"last_error"`
	LastCount  int    `json:"last_count"`
	LastSource string `json:"last_source"`
}
