package turtle

import "time"

// Stats accumulates over one whole parse for post-hoc reporting.
type Stats struct {
	StatementsParsed int
	TriplesParsed    int
	ErrorsRecovered  int
	MaxDepth         int
	TokensConsumed   int
	ParseTime        time.Duration
}

// ParseTimeMillis returns the elapsed parse time in milliseconds.
func (s Stats) ParseTimeMillis() int64 {
	return s.ParseTime.Milliseconds()
}
