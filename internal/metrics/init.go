package metrics

// Commands lists every controller command label. It is shared with the
// controller so the two never drift apart.
var Commands = []string{
	"play", "play_random", "play_from_matches", "stop", "pause", "continue",
	"flag", "allow", "create_playlist", "add_to_playlist",
	"remove_from_playlist", "clear_playlist", "delete_playlist",
}

// Results lists every command outcome label.
var Results = []string{"success", "not_found", "conflict", "invalid_state", "flagged"}

// InitializeMetrics pre-populates all expected label combinations so that
// every metric is exported from the first Prometheus scrape.
// Call this once at startup after metric registration.
func InitializeMetrics() {
	for _, cmd := range Commands {
		for _, result := range Results {
			CommandsTotal.WithLabelValues(cmd, result)
		}
		CommandDuration.WithLabelValues(cmd)
	}

	for _, cause := range []string{"play", "flag"} {
		ImplicitStopsTotal.WithLabelValues(cause)
	}

	for _, format := range []string{"text", "sqlite"} {
		CatalogLoadErrors.WithLabelValues(format)
	}
}
