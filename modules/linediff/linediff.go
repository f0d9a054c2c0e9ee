// Package linediff computes a whole-file line diff: every line of both
// inputs, tagged as shared, removed, or added, in order. Rather than
// hand-rolling an LCS walk, it drives the line-mode helpers of
// github.com/sergi/go-diff's diffmatchpatch, substituting one rune per
// line so the underlying Myers diff operates on whole lines and then
// expanding the result back into per-line tags.
package linediff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Tag classifies one line of a diff's output.
type Tag int

const (
	Both Tag = iota
	Left
	Right
)

func (t Tag) Sign() byte {
	switch t {
	case Left:
		return '-'
	case Right:
		return '+'
	default:
		return ' '
	}
}

// Line is one tagged line of diff output.
type Line struct {
	Tag  Tag
	Text string
}

// Lines computes a whole-file line diff between left and right. There
// are no hunk headers: every line of both inputs is represented,
// tagged Both/Left/Right, in order.
func Lines(left, right string) []Line {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(left, right)
	diffs := dmp.DiffMainRunes([]rune(a), []rune(b), false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var out []Line
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		tag := Both
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			tag = Right
		case diffmatchpatch.DiffDelete:
			tag = Left
		}
		text := strings.TrimSuffix(d.Text, "\n")
		for _, line := range strings.Split(text, "\n") {
			out = append(out, Line{Tag: tag, Text: line})
		}
	}
	return out
}

// Render formats diff lines as " line", "-line", "+line", one per
// line, with no hunk headers.
func Render(lines []Line) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteByte(l.Tag.Sign())
		b.WriteString(l.Text)
		b.WriteByte('\n')
	}
	return b.String()
}
