package user

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// usernamePatterns build a local part from folded first and last names.
var usernamePatterns = []func(first, last string, src Source) string{
	func(first, last string, _ Source) string { return first + "." + last },
	func(first, last string, _ Source) string { return last + "." + first },
	func(first, last string, _ Source) string { return first + "_" + last },
	func(first, last string, _ Source) string { return first[:1] + last },
	func(first, _ string, src Source) string { return fmt.Sprintf("%s%02d", first, src.IntN(100)) },
	func(first, last string, src Source) string { return fmt.Sprintf("%s.%s%02d", first, last, src.IntN(100)) },
	func(first, last string, src Source) string { return fmt.Sprintf("%s%s%d", first[:1], last, 1950+src.IntN(56)) },
}

// username draws one candidate username. It may repeat across calls.
func username(src Source) string {
	first := fold(pick(src, firstNames))
	last := fold(pick(src, lastNames))
	p := usernamePatterns[src.IntN(len(usernamePatterns))]
	return p(first, last, src)
}

// uniqueUsername draws until it finds a username not in seen, then records it.
func uniqueUsername(src Source, seen map[string]struct{}) (string, error) {
	for range maxUsernameAttempts {
		u := username(src)
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		return u, nil
	}
	return "", fmt.Errorf("%w after %d attempts (%d issued)", ErrUsernamesExhausted, maxUsernameAttempts, len(seen))
}

// fold lowercases s, strips diacritics and drops anything that is not an
// ASCII letter, so "Núñez" becomes "nunez".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	for _, r := range strings.ToLower(folded) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func pick(src Source, s []string) string {
	return s[src.IntN(len(s))]
}
