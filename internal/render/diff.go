package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Change describes one key that differs between two config versions.
// Old is empty for added keys and New is empty for removed ones; both
// hold compact JSON otherwise.
type Change struct {
	Path string
	Old  string
	New  string
}

// ChangeReport renders a structural diff as one line per changed key.
// Added keys print green, removed keys red, changed keys as an inline
// value diff.
func ChangeReport(title string, changes []Change) string {
	if len(changes) == 0 {
		return "No differences found"
	}

	var sb strings.Builder
	sb.WriteString(title + "\n")
	sb.WriteString(strings.Repeat("─", 60) + "\n")
	for _, c := range changes {
		switch {
		case c.Old == "":
			sb.WriteString(color.GreenString("+ %s: %s", c.Path, c.New) + "\n")
		case c.New == "":
			sb.WriteString(color.RedString("- %s: %s", c.Path, c.Old) + "\n")
		default:
			fmt.Fprintf(&sb, "~ %s: %s\n", c.Path, DiffValues(c.Old, c.New))
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// DiffValues renders an inline character diff between two values,
// insertions green and deletions red. With color disabled the
// bracket markers still make the direction readable.
func DiffValues(oldText, newText string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldText, newText, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			sb.WriteString(color.GreenString("[+%s]", d.Text))
		case diffmatchpatch.DiffDelete:
			sb.WriteString(color.RedString("[-%s]", d.Text))
		default:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}
