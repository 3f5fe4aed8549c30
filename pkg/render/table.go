// Package render draws the task list as a fixed-width text table.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/harrisonrobin/tasklist/pkg/colors"
	"github.com/harrisonrobin/tasklist/pkg/model"
)

// TaskWidth is the width of the task text column.
const TaskWidth = 44

const (
	border      = "+----+------------+-------+---+---+--------------------------------------------+"
	header      = "| N  |    Date    | Time  | P | D |                   Task                     |"
	placeholder = "|    |            |       |   |   "
	emptyList   = "No tasks have been input"
)

// Table renders task lists. With Color off the indicator cells show the
// priority and due codes instead of colored swatches.
type Table struct {
	Color bool
}

func NewTable(mode colors.Mode, w io.Writer) *Table {
	return &Table{Color: mode.Enabled(w)}
}

// Render writes the whole list to w, numbered from 1.
func (t *Table) Render(w io.Writer, tasks []model.Task) error {
	bw := bufio.NewWriter(w)
	if len(tasks) == 0 {
		fmt.Fprintln(bw, emptyList)
		return bw.Flush()
	}

	fmt.Fprintln(bw, border)
	fmt.Fprintln(bw, header)
	fmt.Fprintln(bw, border)
	for i, task := range tasks {
		segments := Wrap(task.Lines, TaskWidth)
		for n, seg := range segments {
			if n == 0 {
				bw.WriteString(cell(fmt.Sprintf("%-2d", i+1)))
				bw.WriteString(cell(task.Date))
				bw.WriteString(cell(task.Time))
				bw.WriteString(cell(t.priority(task.Priority)))
				bw.WriteString(cell(t.due(task.DueTag)))
			} else {
				bw.WriteString(placeholder)
			}
			fmt.Fprintf(bw, "|%s|\n", seg)
		}
		fmt.Fprintln(bw, border)
	}
	return bw.Flush()
}

func (t *Table) priority(p model.Priority) string {
	if !t.Color {
		return indicator(string(p))
	}
	return colors.Swatch(colors.PriorityBackground(p))
}

func (t *Table) due(d model.DueTag) string {
	if !t.Color {
		return indicator(string(d))
	}
	return colors.Swatch(colors.DueBackground(d))
}

// indicator keeps a plain-text indicator one character wide.
func indicator(code string) string {
	r := []rune(code)
	if len(r) != 1 {
		return " "
	}
	return code
}

func cell(text string) string {
	return "| " + text + " "
}

// Wrap splits every line independently into segments of at most width
// runes and pads each segment to exactly width.
func Wrap(lines []string, width int) []string {
	var out []string
	for _, line := range lines {
		r := []rune(line)
		for start := 0; start < len(r); start += width {
			end := start + width
			if end > len(r) {
				end = len(r)
			}
			seg := string(r[start:end])
			out = append(out, seg+strings.Repeat(" ", width-(end-start)))
		}
	}
	return out
}
