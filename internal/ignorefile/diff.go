package ignorefile

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// NoDifferences is returned by Diff when both texts are equal.
const NoDifferences = "No differences found."

// contextLines is the number of unchanged lines kept around each change.
const contextLines = 3

const noNewline = `\ No newline at end of file`

type lineOp struct {
	kind byte // ' ', '-' or '+'
	text string
	eol  bool
}

// Diff returns a unified diff turning current into rendered.
func Diff(current, rendered, currentLabel, renderedLabel string) string {
	if current == rendered {
		return NoDifferences
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(current, rendered)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var ops []lineOp
	for _, d := range diffs {
		kind := byte(' ')
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			kind = '-'
		case diffmatchpatch.DiffInsert:
			kind = '+'
		}
		for _, line := range splitLines(d.Text) {
			ops = append(ops, lineOp{kind: kind, text: strings.TrimSuffix(line, "\n"), eol: strings.HasSuffix(line, "\n")})
		}
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf("--- %s\n", currentLabel))
	result.WriteString(fmt.Sprintf("+++ %s\n", renderedLabel))
	for _, h := range hunks(ops) {
		writeHunk(&result, ops, h[0], h[1])
	}

	return result.String()
}

// splitLines splits text after each newline, keeping the newline.
func splitLines(text string) []string {
	var lines []string
	for text != "" {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			lines = append(lines, text)
			break
		}
		lines = append(lines, text[:i+1])
		text = text[i+1:]
	}
	return lines
}

// hunks returns [start, end) ranges of ops. Changes closer than twice the
// context share a hunk.
func hunks(ops []lineOp) [][2]int {
	var out [][2]int
	for i := 0; i < len(ops); {
		if ops[i].kind == ' ' {
			i++
			continue
		}

		last := i
		for j := i; j < len(ops); j++ {
			if ops[j].kind != ' ' {
				last = j
			} else if j-last > 2*contextLines {
				break
			}
		}

		start := max(i-contextLines, 0)
		end := min(last+contextLines+1, len(ops))
		out = append(out, [2]int{start, end})
		i = end
	}
	return out
}

func writeHunk(w *strings.Builder, ops []lineOp, start, end int) {
	oldLine, newLine := 0, 0
	for _, op := range ops[:start] {
		if op.kind != '+' {
			oldLine++
		}
		if op.kind != '-' {
			newLine++
		}
	}

	oldCount, newCount := 0, 0
	for _, op := range ops[start:end] {
		if op.kind != '+' {
			oldCount++
		}
		if op.kind != '-' {
			newCount++
		}
	}

	fmt.Fprintf(w, "@@ -%s +%s @@\n", hunkRange(oldLine, oldCount), hunkRange(newLine, newCount))
	for _, op := range ops[start:end] {
		w.WriteByte(op.kind)
		w.WriteString(op.text)
		w.WriteByte('\n')
		if !op.eol {
			w.WriteString(noNewline)
			w.WriteByte('\n')
		}
	}
}

// hunkRange formats a range header. before is the number of lines preceding
// the hunk on that side.
func hunkRange(before, count int) string {
	switch count {
	case 0:
		return fmt.Sprintf("%d,0", before)
	case 1:
		return fmt.Sprintf("%d", before+1)
	default:
		return fmt.Sprintf("%d,%d", before+1, count)
	}
}

var (
	headerColor  = color.New(color.Bold)
	removedColor = color.New(color.FgRed)
	addedColor   = color.New(color.FgGreen)
	hunkColor    = color.New(color.FgCyan)
)

// Colorize colors a Diff result line by line. It is a no-op when color output
// is disabled.
func Colorize(diff string) string {
	lines := strings.Split(strings.TrimSuffix(diff, "\n"), "\n")
	var result strings.Builder

	for i, line := range lines {
		switch {
		case i < 2 && (strings.HasPrefix(line, "---") || strings.HasPrefix(line, "+++")):
			result.WriteString(headerColor.Sprint(line))
		case strings.HasPrefix(line, "-"):
			result.WriteString(removedColor.Sprint(line))
		case strings.HasPrefix(line, "+"):
			result.WriteString(addedColor.Sprint(line))
		case strings.HasPrefix(line, "@@"):
			result.WriteString(hunkColor.Sprint(line))
		default:
			result.WriteString(line)
		}
		result.WriteString("\n")
	}

	return result.String()
}
