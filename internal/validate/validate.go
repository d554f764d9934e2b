package validate

import (
	"regexp"
	"strings"
)

var (
	reEmail    = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reKeyword  = regexp.MustCompile(`^[\p{L}\p{N} ,.'-]{1,60}$`)
	reUsername = regexp.MustCompile(`^[A-Za-z0-9._-]{3,30}$`)
	reID       = regexp.MustCompile(`^[0-9]{1,12}$`) // backend listing ids are numeric
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 60 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Keyword validates a browse/search keyword: trims, enforces allowed
// characters and max length. Letters in any script are fine; place
// names like "São Paulo" must filter, not error. Empty is valid
// (matches everything).
func Keyword(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	if r := []rune(s); len(r) > 60 {
		s = string(r[:60])
	}
	return s, reKeyword.MatchString(s)
}

func Username(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reUsername.MatchString(s)
}

// ListingID validates the numeric listing identifiers the backend issues.
func ListingID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Name validates a displayable name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 60 {
		return "", false
	}
	return s, true
}

// Password enforces the backend's minimum length without duplicating its
// complexity rules; the server remains the authority on rejection.
func Password(s string) bool {
	return len(s) >= 6 && len(s) <= 72
}
