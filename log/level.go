package log

// Level is the severity of a log record. Levels are totally ordered,
// LevelDebug lowest, matching the eight syslog severities the host logging
// facility understands.
type Level int

const (
	// LevelDebug marks records for debugging purposes.
	LevelDebug Level = iota

	// LevelInfo marks records for informational purposes.
	LevelInfo

	// LevelNotice marks records of noteworthy events.
	LevelNotice

	// LevelWarning marks records of warnings.
	LevelWarning

	// LevelError marks records of errors.
	LevelError

	// LevelCritical marks records of critical failures.
	LevelCritical

	// LevelAlert marks records that should alert an operator.
	LevelAlert

	// LevelEmergency marks records that require immediate attention.
	LevelEmergency
)

// hostIDs is the fixed mapping from Level to the host runtime's severity
// identifiers. One entry per Level, never rewritten, so host-side filtering
// sees a stable identifier for every severity.
var hostIDs = [...]string{
	LevelDebug:     "debug",
	LevelInfo:      "info",
	LevelNotice:    "notice",
	LevelWarning:   "warning",
	LevelError:     "error",
	LevelCritical:  "critical",
	LevelAlert:     "alert",
	LevelEmergency: "emergency",
}

// HostID returns the host runtime severity identifier for the level.
// Out-of-range values report as debug rather than panicking; nothing on the
// emission path may fail.
func (l Level) HostID() string {
	if l < LevelDebug || l > LevelEmergency {
		return hostIDs[LevelDebug]
	}
	return hostIDs[l]
}

// String returns the level's name for local diagnostics. Identical to the
// host identifier.
func (l Level) String() string { return l.HostID() }

// ParseLevel finds the level for a name. A few convenience synonyms are
// accepted: trace maps to debug, warn to warning, fatal to emergency.
// Unknown names map to debug.
func ParseLevel(name string) Level {
	switch name {
	case "trace", "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "notice":
		return LevelNotice
	case "warn", "warning":
		return LevelWarning
	case "error":
		return LevelError
	case "critical":
		return LevelCritical
	case "alert":
		return LevelAlert
	case "emergency", "fatal":
		return LevelEmergency
	default:
		return LevelDebug
	}
}
