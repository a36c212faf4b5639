package validate

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Format names a well-known string format.
type Format string

const (
	FormatEmail    Format = "email"
	FormatUUID     Format = "uuid"
	FormatHostname Format = "hostname"
	FormatURI      Format = "uri"
)

var hostnameLabelRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?$`)

// HasFormat validates value against a named format. An unknown format is a
// configuration error.
func HasFormat(value string, format Format) (*Violation, error) {
	var ok bool
	switch format {
	case FormatEmail:
		ok = isEmail(value)
	case FormatUUID:
		ok = isUUID(value)
	case FormatHostname:
		ok = isHostname(value)
	case FormatURI:
		ok = isURI(value)
	default:
		return nil, newConfigError("format",
			fmt.Sprintf("unknown format %q", string(format)), nil)
	}
	if ok {
		return nil, nil
	}
	return newViolation(KindFormat,
		Param{Name: "format", Value: string(format)},
		Param{Name: "value", Value: value},
	), nil
}

// MustHasFormat is HasFormat for statically known formats; it panics on an
// unknown format name.
func MustHasFormat(value string, format Format) *Violation {
	v, err := HasFormat(value, format)
	if err != nil {
		panic(err)
	}
	return v
}

func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}
	local, domain, found := strings.Cut(addr.Address, "@")
	if !found || local == "" {
		return false
	}
	// Require a dotted domain for typical web use.
	return strings.Contains(domain, ".") &&
		!strings.HasPrefix(domain, ".") &&
		!strings.HasSuffix(domain, ".")
}

func isUUID(value string) bool {
	// Fast rejection on length and hyphen positions before parsing.
	if len(value) != 36 {
		return false
	}
	if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}

func isHostname(value string) bool {
	if value == "" || len(value) > 253 {
		return false
	}
	for _, label := range strings.Split(value, ".") {
		if !hostnameLabelRegex.MatchString(label) {
			return false
		}
	}
	return true
}

func isURI(value string) bool {
	u, err := url.Parse(value)
	return err == nil && u.IsAbs()
}
