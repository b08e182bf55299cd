package formatter

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(0, 1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// TruncID shortens a generated id such as "bed-6f1c2a..." to its prefix and
// first eight hex digits.
func TruncID(id string) string {
	prefix := ""
	if i := strings.IndexByte(id, '-'); i >= 0 && i < 5 {
		prefix, id = id[:i+1], id[i+1:]
	}
	if len(id) > 8 {
		id = id[:8]
	}
	return prefix + id
}

var monthNames = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// FormatMonths renders 1-based month numbers as short names: "Mar Apr May".
func FormatMonths(months []int) string {
	if len(months) == 0 {
		return "--"
	}
	parts := make([]string, 0, len(months))
	for _, m := range months {
		if m >= 1 && m <= 12 {
			parts = append(parts, monthNames[m-1])
		} else {
			parts = append(parts, strconv.Itoa(m))
		}
	}
	return strings.Join(parts, " ")
}

// FormatList joins names with commas, or "--" when empty.
func FormatList(names []string) string {
	if len(names) == 0 {
		return "--"
	}
	return strings.Join(names, ", ")
}

// Plural picks the singular or plural noun for n.
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return strconv.Itoa(n) + " " + singular
	}
	return strconv.Itoa(n) + " " + plural
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripANSI removes terminal escape sequences.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
