package sqlbuilder

import "github.com/rs/zerolog"

// DefaultMaxQueryLength caps the query text emitted in tracking events.
// Longer statements are truncated with an ellipsis marker before logging.
const DefaultMaxQueryLength = 1000

// QueryTracker renders queries through a QueryBuilder while emitting a
// structured debug event for each render. The builder itself stays free of
// side effects; tracking is an opt-in wrapper around it.
type QueryTracker struct {
	log      zerolog.Logger
	maxQuery int
}

// NewQueryTracker creates a tracker that logs renders to the given logger,
// truncating query text at DefaultMaxQueryLength.
func NewQueryTracker(log zerolog.Logger) *QueryTracker {
	return &QueryTracker{log: log, maxQuery: DefaultMaxQueryLength}
}

// WithMaxQueryLength overrides the truncation threshold for logged query
// text. Values less than or equal to zero disable truncation.
func (t *QueryTracker) WithMaxQueryLength(n int) *QueryTracker {
	t.maxQuery = n
	return t
}

// Render renders the builder's current state, logs the produced statement at
// debug level, and returns it unchanged.
func (t *QueryTracker) Render(qb *QueryBuilder) string {
	query := qb.Render()

	t.log.Debug().
		Str("vendor", qb.Vendor()).
		Int("length", len(query)).
		Str("query", truncateQuery(query, t.maxQuery)).
		Msg("rendered query")

	return query
}

func truncateQuery(query string, maxLen int) string {
	if maxLen <= 0 || len(query) <= maxLen {
		return query
	}
	return query[:maxLen] + "..."
}
