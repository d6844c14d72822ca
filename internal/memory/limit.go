// Package memory sizes the Go soft memory limit from the container limit
// handed to the server.
package memory

import (
	"fmt"
	"math"
	"os"
	"runtime/debug"
	"strconv"

	"video-player/internal/logging"
)

// DefaultRatio is the share of the container limit given to the Go heap.
const DefaultRatio = 0.9

// Source records where the applied limit came from.
type Source string

const (
	SourceNone        Source = "none"
	SourceGOMEMLIMIT  Source = "GOMEMLIMIT"
	SourceMemoryLimit Source = "MEMORY_LIMIT"
)

// Limit describes the outcome of [Configure].
type Limit struct {
	Source         Source
	ContainerBytes int64
	Ratio          float64
	GoBytes        int64
}

// Configured reports whether a soft limit is in force.
func (l Limit) Configured() bool {
	return l.GoBytes > 0
}

func (l Limit) String() string {
	switch l.Source {
	case SourceGOMEMLIMIT:
		return fmt.Sprintf("%s (GOMEMLIMIT)", FormatBytes(l.GoBytes))
	case SourceMemoryLimit:
		return fmt.Sprintf("%s (%.0f%% of %s)", FormatBytes(l.GoBytes), l.Ratio*100, FormatBytes(l.ContainerBytes))
	default:
		return "not set"
	}
}

// Configure applies a soft memory limit. An explicit GOMEMLIMIT is left to
// the runtime and only reported. Otherwise MEMORY_LIMIT (bytes, usually from
// the Kubernetes downward API) is scaled by MEMORY_RATIO.
func Configure() Limit {
	if os.Getenv("GOMEMLIMIT") != "" {
		current := debug.SetMemoryLimit(-1)
		if current <= 0 || current == math.MaxInt64 {
			return Limit{Source: SourceNone}
		}
		return Limit{Source: SourceGOMEMLIMIT, GoBytes: current}
	}

	raw := os.Getenv("MEMORY_LIMIT")
	if raw == "" {
		logging.Debug("MEMORY_LIMIT not set, leaving the Go memory limit alone")
		return Limit{Source: SourceNone}
	}

	container, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || container <= 0 {
		logging.Warn("Ignoring invalid MEMORY_LIMIT %q", raw)
		return Limit{Source: SourceNone}
	}

	ratio := parseRatio(os.Getenv("MEMORY_RATIO"))
	limit := int64(float64(container) * ratio)
	debug.SetMemoryLimit(limit)

	return Limit{
		Source:         SourceMemoryLimit,
		ContainerBytes: container,
		Ratio:          ratio,
		GoBytes:        limit,
	}
}

func parseRatio(raw string) float64 {
	if raw == "" {
		return DefaultRatio
	}
	ratio, err := strconv.ParseFloat(raw, 64)
	if err != nil || ratio <= 0 || ratio > 1 {
		logging.Warn("MEMORY_RATIO %q must be in (0, 1], using %.2f", raw, DefaultRatio)
		return DefaultRatio
	}
	return ratio
}

// FormatBytes renders b using binary units.
func FormatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return strconv.FormatInt(b, 10) + " B"
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
