//go:build android

package zone

import "os/exec"

// InitLocal points time.Local at the device timezone.
// Android leaves time.Local as UTC, so the zone is read from the
// persist.sys.timezone property. On failure time.Local is left alone.
func InitLocal() {
	setLocal(deviceZone(func(name string, args ...string) ([]byte, error) {
		return exec.Command(name, args...).Output() // #nosec G204 -- fixed command
	}))
}
