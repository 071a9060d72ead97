package xmlb

import (
	"strings"
	"unicode"

	"github.com/lestrrat-go/strcursor"
)

const MaxNameLength = 50000

func isNameStartChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isNameChar(r rune) bool {
	return r == '.' || r == '-' || r == '_' ||
		unicode.IsLetter(r) || unicode.IsDigit(r) ||
		unicode.In(r, unicode.Extender)
}

// validateName checks the XML Name production, allowing at most one
// colon separating a prefix from the local part. The engine performs
// no validation of its own, so every tag or attribute name entering
// the builder goes through here.
func validateName(name string) error {
	if name == "" {
		return ErrNameRequired
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}

	if i := strings.IndexByte(name, ':'); i > -1 {
		if strings.IndexByte(name[i+1:], ':') > -1 {
			return ErrInvalidName
		}
		if err := validateNCName(name[:i]); err != nil {
			return err
		}
		return validateNCName(name[i+1:])
	}
	return validateNCName(name)
}

func validateNCName(name string) error {
	if name == "" {
		return ErrInvalidName
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}

	cur := strcursor.NewRuneCursor(strings.NewReader(name))
	if !isNameStartChar(cur.Peek()) {
		return ErrInvalidName
	}
	cur.Advance(1)
	for !cur.Done() {
		if !isNameChar(cur.Peek()) {
			return ErrInvalidName
		}
		cur.Advance(1)
	}
	return nil
}
