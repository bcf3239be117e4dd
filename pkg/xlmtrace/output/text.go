// Package output renders traces for display and serialization.
package output

import (
	"strings"

	"github.com/ukaji3/xlmtrace-go/pkg/xlmtrace/models"
)

var (
	heavyRule = strings.Repeat("=", 79)
	lightRule = strings.Repeat("-", 79)
)

// Banner returns the fixed header printed before every trace.
func Banner(name, version string) []string {
	return []string{
		heavyRule,
		" " + name + " " + version,
		lightRule,
	}
}

// ToLines returns the banner, the status line, one line per step and the
// terminal message, if any.
func ToLines(t *models.Trace, name, version string) []string {
	lines := Banner(name, version)
	lines = append(lines, t.Status)
	lines = append(lines, t.Lines()...)
	if t.Message != "" {
		lines = append(lines, t.Message)
	}
	return lines
}

// ToText joins ToLines with newlines.
func ToText(t *models.Trace, name, version string) string {
	return strings.Join(ToLines(t, name, version), "\n")
}
