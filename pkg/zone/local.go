package zone

import (
	"strings"
	"time"
)

// zoneProperty is the Android system property holding the device timezone.
const zoneProperty = "persist.sys.timezone"

// commandRunner runs a command and returns its standard output.
type commandRunner func(name string, args ...string) ([]byte, error)

// deviceZone reads the device timezone name through getprop, or "" when it
// cannot be read.
func deviceZone(run commandRunner) string {
	output, err := run("getprop", zoneProperty)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(output))
}

// setLocal installs the named zone as time.Local and reports whether it did.
// Empty or unknown names leave time.Local alone.
func setLocal(name string) bool {
	if name == "" {
		return false
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return false
	}

	time.Local = loc
	return true
}
