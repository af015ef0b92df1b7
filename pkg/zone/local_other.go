//go:build !android

package zone

// InitLocal is a no-op: the runtime already derives time.Local from TZ and
// /etc/localtime on these platforms.
func InitLocal() {}
