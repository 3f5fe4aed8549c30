// Package colors maps priorities and due tags to terminal and calendar
// colors.
package colors

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/harrisonrobin/tasklist/pkg/model"
)

// Mode controls whether indicator cells are colored.
type Mode string

const (
	Auto   Mode = "auto"
	Always Mode = "always"
	Never  Mode = "never"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case "":
		return Auto, nil
	case Auto, Always, Never:
		return m, nil
	default:
		return "", fmt.Errorf("unknown color mode %q (want auto, always or never)", s)
	}
}

// Enabled reports whether output written to w should carry ANSI colors.
// In Auto mode only terminals get color.
func (m Mode) Enabled(w io.Writer) bool {
	switch m {
	case Always:
		return true
	case Never:
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ANSI background codes.
const (
	bgRed    = "101"
	bgGreen  = "102"
	bgYellow = "103"
	bgBlue   = "104"
)

// PriorityBackground returns the ANSI background code for p, or "" when p
// is unknown.
func PriorityBackground(p model.Priority) string {
	switch p {
	case model.Critical:
		return bgRed
	case model.High:
		return bgYellow
	case model.Normal:
		return bgGreen
	case model.Low:
		return bgBlue
	default:
		return ""
	}
}

// DueBackground returns the ANSI background code for d, or "" when d is
// unknown.
func DueBackground(d model.DueTag) string {
	switch d {
	case model.InTime:
		return bgGreen
	case model.Today:
		return bgYellow
	case model.Overdue:
		return bgRed
	default:
		return ""
	}
}

// Swatch renders a single space on the given background. An empty code
// yields a plain space.
func Swatch(code string) string {
	if code == "" {
		return " "
	}
	return "\x1b[" + code + "m \x1b[0m"
}

// Google Calendar event color IDs.
const (
	CalendarTomato    = "11"
	CalendarBanana    = "5"
	CalendarBasil     = "10"
	CalendarBlueberry = "9"
	CalendarGraphite  = "8"
)

// CalendarColorID returns the event color used when mirroring a task of
// priority p.
func CalendarColorID(p model.Priority) string {
	switch p {
	case model.Critical:
		return CalendarTomato
	case model.High:
		return CalendarBanana
	case model.Normal:
		return CalendarBasil
	case model.Low:
		return CalendarBlueberry
	default:
		return CalendarGraphite
	}
}
