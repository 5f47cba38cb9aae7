package domain

// Credentials are supplied by the caller on every gateway call; the core
// never stores them.
type Credentials struct {
	APIKey string
	Token  string
}

func (c Credentials) Empty() bool {
	return c.APIKey == "" || c.Token == ""
}

const idLength = 24

// IsID reports whether ref has the exact lexical shape of a remote
// identifier: 24 hexadecimal characters. Anything else, including shorter
// hex strings and names that merely look id-ish, is treated as a name to
// be matched.
func IsID(ref string) bool {
	if len(ref) != idLength {
		return false
	}
	for i := 0; i < len(ref); i++ {
		c := ref[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
