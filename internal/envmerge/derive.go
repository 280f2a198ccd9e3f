package envmerge

import "strings"

// ConnectionURI composes scheme://[user[:pass]@]host[:port][/name], omitting
// any absent optional component in that fixed order. Pure; performs no I/O.
func ConnectionURI(scheme, user, pass, host, port, name string) string {
	var b strings.Builder
	b.WriteString(scheme)
	b.WriteString("://")
	if user != "" {
		b.WriteString(user)
		if pass != "" {
			b.WriteByte(':')
			b.WriteString(pass)
		}
		b.WriteByte('@')
	}
	b.WriteString(host)
	if port != "" {
		b.WriteByte(':')
		b.WriteString(port)
	}
	if name != "" {
		b.WriteByte('/')
		b.WriteString(name)
	}
	return b.String()
}
