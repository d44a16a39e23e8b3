package app

import "strings"

// keyByte converts a host key name ("A", "Digit4", "Space") into the byte a
// desktop keyboard callback would report for it. Non-printable keys report
// false.
func keyByte(name string) (byte, bool) {
	switch {
	case len(name) == 1:
		return strings.ToLower(name)[0], true
	case len(name) == len("Digit0") && strings.HasPrefix(name, "Digit"):
		return name[len(name)-1], true
	case name == "Space":
		return ' ', true
	}
	return 0, false
}

// keyBytes appends the printable key bytes among names to dst.
func keyBytes(dst []byte, names []string) []byte {
	for _, n := range names {
		if b, ok := keyByte(n); ok {
			dst = append(dst, b)
		}
	}
	return dst
}
