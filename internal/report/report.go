// Package report renders the human-readable run summary.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zseed/internal/export"
	"github.com/zarlcorp/zseed/internal/user"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// currency shown next to balances
const currency = "CLP"

var labels = map[user.Role]string{
	user.RoleVIP:    "VIP",
	user.RoleTrial:  "Trial",
	user.RoleNormal: "Normal",
}

// RoleCount is how many users of a batch hold a role.
type RoleCount struct {
	Role    user.Role
	Count   int
	Percent float64
}

// Summary is everything the final report shows.
type Summary struct {
	File  string
	Users []user.User
}

// Distribution counts roles in display order, skipping roles that did not
// occur. Percent is relative to the whole batch.
func Distribution(users []user.User) []RoleCount {
	if len(users) == 0 {
		return nil
	}

	counts := make(map[user.Role]int, len(user.Roles))
	for _, u := range users {
		counts[u.Role]++
	}

	var out []RoleCount
	for _, r := range user.Roles {
		n := counts[r]
		if n == 0 {
			continue
		}
		out = append(out, RoleCount{
			Role:    r,
			Count:   n,
			Percent: float64(n) / float64(len(users)) * 100,
		})
	}
	return out
}

// BalanceLine describes the balance rule for a role, e.g.
// "VIP: 100,000 - 1,000,000 CLP".
func BalanceLine(r user.Role) string {
	p := message.NewPrinter(language.English)
	rng := user.BalanceRangeFor(r)
	if rng.Fixed() {
		return p.Sprintf("%s: fixed %d %s", labels[r], rng.Min, currency)
	}
	return p.Sprintf("%s: %d - %d %s", labels[r], rng.Min, rng.Max, currency)
}

// Banner writes the line shown before generation starts.
func Banner(w io.Writer, count int) error {
	line := fmt.Sprintf("generating %d casino users (VIP/Normal/Trial)...", count)
	_, err := fmt.Fprintf(w, "\n  %s\n", zstyle.MutedText.Render(line))
	return err
}

// Render writes the run summary: count confirmation, role distribution,
// balance rules and the first user as extended JSON.
func Render(w io.Writer, s Summary) error {
	var b strings.Builder

	done := fmt.Sprintf("generated %d users in %s", len(s.Users), s.File)
	b.WriteString("\n  " + zstyle.StatusOK.Render(done) + "\n\n")

	accent := lipgloss.NewStyle().Foreground(zstyle.ZburnAccent).Bold(true)
	b.WriteString("  " + zstyle.Subtitle.Render("distribution") + "\n")
	for _, rc := range Distribution(s.Users) {
		role := accent.Render(strings.ToUpper(string(rc.Role)))
		fmt.Fprintf(&b, "  - %s: %d users (%.1f%%)\n", role, rc.Count, rc.Percent)
	}
	b.WriteString("\n")

	b.WriteString("  " + zstyle.Subtitle.Render("balance ranges") + "\n")
	for _, r := range user.Roles {
		b.WriteString("  - " + BalanceLine(r) + "\n")
	}

	if len(s.Users) > 0 {
		sample, err := export.MarshalOne(s.Users[0])
		if err != nil {
			return fmt.Errorf("render sample: %w", err)
		}
		b.WriteString("\n  " + zstyle.Subtitle.Render("sample user") + "\n")
		b.WriteString("  " + strings.ReplaceAll(string(sample), "\n", "\n  ") + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
