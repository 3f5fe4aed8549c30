// Package prompt implements the line-oriented questions the task loop asks.
// Every question repeats until it gets a valid answer; the only way out
// without one is the end of input, reported as io.EOF.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/harrisonrobin/tasklist/pkg/model"
)

const (
	msgAction    = "Input an action (add, print, edit, delete, end):"
	msgPriority  = "Input the task priority (C, H, N, L):"
	msgDate      = "Input the date (yyyy-mm-dd):"
	msgBadDate   = "The input date is invalid"
	msgTime      = "Input the time (hh:mm):"
	msgBadTime   = "The input time is invalid"
	msgTask      = "Input a new task (enter a blank line to end):"
	msgBlankTask = "The task is blank"
	msgIndex     = "Input the task number (1-%d):"
	msgBadIndex  = "Invalid task number"
	msgField     = "Input a field to edit (priority, date, time, task):"
	msgBadField  = "Invalid field"
)

// Prompter asks questions on out and reads the answers from in.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// MaxLineSize bounds one input line, newline included.
const MaxLineSize = 1 << 20

// ErrInput wraps failures to read from the input, such as a line longer
// than MaxLineSize. Reading cannot continue after it.
var ErrInput = errors.New("cannot read input")

func New(in io.Reader, out io.Writer) *Prompter {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return &Prompter{in: scanner, out: out}
}

// Println writes a message line to the prompter's output.
func (p *Prompter) Println(msg string) {
	fmt.Fprintln(p.out, msg)
}

func (p *Prompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("%w: %v", ErrInput, err)
		}
		return "", io.EOF
	}
	return p.in.Text(), nil
}

// ask prints question and reads one answer.
func (p *Prompter) ask(question string) (string, error) {
	p.Println(question)
	return p.readLine()
}

// Command reads one action name, trimmed and lower-cased.
func (p *Prompter) Command() (string, error) {
	line, err := p.ask(msgAction)
	if err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(line)), nil
}

func (p *Prompter) Priority() (model.Priority, error) {
	for {
		line, err := p.ask(msgPriority)
		if err != nil {
			return "", err
		}
		if pr, err := model.ParsePriority(line); err == nil {
			return pr, nil
		}
	}
}

func (p *Prompter) Date() (string, error) {
	for {
		line, err := p.ask(msgDate)
		if err != nil {
			return "", err
		}
		if date, err := model.NormalizeDate(line); err == nil {
			return date, nil
		}
		p.Println(msgBadDate)
	}
}

func (p *Prompter) Time() (string, error) {
	for {
		line, err := p.ask(msgTime)
		if err != nil {
			return "", err
		}
		if clock, err := model.NormalizeTime(line); err == nil {
			return clock, nil
		}
		p.Println(msgBadTime)
	}
}

// TaskLines reads trimmed lines until a blank one. A blank first line
// abandons the task and returns no lines.
func (p *Prompter) TaskLines() ([]string, error) {
	line, err := p.ask(msgTask)
	if err != nil {
		return nil, err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		p.Println(msgBlankTask)
		return nil, nil
	}

	var lines []string
	for line != "" {
		lines = append(lines, line)
		next, err := p.readLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line = strings.TrimSpace(next)
	}
	return lines, nil
}

// Index asks for a task number in 1..n and returns it zero-based.
func (p *Prompter) Index(n int) (int, error) {
	for {
		line, err := p.ask(fmt.Sprintf(msgIndex, n))
		if err != nil {
			return 0, err
		}
		num, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && num >= 1 && num <= n {
			return num - 1, nil
		}
		p.Println(msgBadIndex)
	}
}

func (p *Prompter) Field() (model.Field, error) {
	for {
		line, err := p.ask(msgField)
		if err != nil {
			return 0, err
		}
		if f, err := model.ParseField(line); err == nil {
			return f, nil
		}
		p.Println(msgBadField)
	}
}
