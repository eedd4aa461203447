// Package trace provides level-gated, fmt-based tracing for plan
// construction and constraint derivation, off by default — grounded on the
// teacher's common.ShPrintf/LogLevel bitmask, reworked as an exported mask
// a caller sets directly instead of a package-private setting variable.
package trace

import "fmt"

// Level is a bitmask trace level: each bit is independent, so a caller can
// enable any combination by OR-ing the constants below into Enabled.
type Level int32

const (
	Construction Level = 1 << iota // node constructors (NewJoin, NewProjection, ...)
	Constraint                     // constraint derivation (Join.Constraints, ...)
	Validation                     // ValidateColumnReferences
)

// Enabled is the process-wide mask of levels currently traced. Zero, the
// default, means tracing is off.
var Enabled Level

// Printf writes a trace line for level, gated by Enabled. Below the
// threshold it costs one branch and no formatting work.
func Printf(level Level, format string, a ...any) {
	if level&Enabled == 0 {
		return
	}
	fmt.Printf(format, a...)
}
