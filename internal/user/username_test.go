package user

import (
	"errors"
	"regexp"
	"testing"
)

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Núñez", "nunez"},
		{"José", "jose"},
		{"Begoña", "begona"},
		{"Álvaro", "alvaro"},
		{"Ibáñez", "ibanez"},
		{"plain", "plain"},
		{"O'Higgins", "ohiggins"},
		{"De la Fuente", "delafuente"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := fold(tt.in); got != tt.want {
				t.Errorf("fold(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNameListsFoldToLetters(t *testing.T) {
	re := regexp.MustCompile(`^[a-z]+$`)
	for _, list := range [][]string{firstNames, lastNames} {
		for _, n := range list {
			if f := fold(n); !re.MatchString(f) {
				t.Errorf("fold(%q) = %q, want ascii letters only", n, f)
			}
		}
	}
}

func TestUsernamePatterns(t *testing.T) {
	src := NewSource(4)
	re := regexp.MustCompile(`^[a-z]+([._]?[a-z]+)?\d*$`)

	for range 500 {
		u := username(src)
		if !re.MatchString(u) {
			t.Errorf("username %q does not match expected shape", u)
		}
	}
}

func TestUniqueUsernameRecordsSeen(t *testing.T) {
	src := NewSource(6)
	seen := make(map[string]struct{})

	for range 200 {
		u, err := uniqueUsername(src, seen)
		if err != nil {
			t.Fatalf("uniqueUsername: %v", err)
		}
		if _, ok := seen[u]; !ok {
			t.Fatalf("username %q not recorded", u)
		}
	}

	if len(seen) != 200 {
		t.Errorf("seen has %d entries, want 200", len(seen))
	}
}

func TestUniqueUsernameExhausted(t *testing.T) {
	seen := map[string]struct{}{}
	first, err := uniqueUsername(zeroSource{}, seen)
	if err != nil {
		t.Fatalf("first draw: %v", err)
	}
	if first != "agustin.gonzalez" {
		t.Errorf("first draw = %q, want agustin.gonzalez", first)
	}

	_, err = uniqueUsername(zeroSource{}, seen)
	if !errors.Is(err, ErrUsernamesExhausted) {
		t.Errorf("err = %v, want ErrUsernamesExhausted", err)
	}
}
