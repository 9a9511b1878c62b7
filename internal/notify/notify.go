// Package notify is the user-facing message surface. At most one alert
// and one pending confirmation exist at a time; a newer message of the
// same kind replaces the older one.
package notify

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Notifier delivers messages and confirmation prompts to the user.
type Notifier interface {
	Alert(message string)
	Confirm(message string) bool
}

// Surface is a terminal-backed Notifier. It remembers the most recent
// alert and confirmation so callers can inspect what the user last saw.
type Surface struct {
	mu  sync.Mutex
	out io.Writer
	in  *bufio.Reader

	lastAlert   string
	lastConfirm string

	alertColor  *color.Color
	promptColor *color.Color
}

// NewSurface creates a Surface writing to out and reading confirmations
// from in.
func NewSurface(out io.Writer, in io.Reader) *Surface {
	return &Surface{
		out:         out,
		in:          bufio.NewReader(in),
		alertColor:  color.New(color.FgYellow, color.Bold),
		promptColor: color.New(color.FgCyan),
	}
}

// Alert shows a message, replacing any previous alert.
func (s *Surface) Alert(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastAlert = message
	s.alertColor.Fprintf(s.out, "! %s\n", message)
}

// Confirm asks a yes/no question, replacing any previous prompt.
// Anything other than an explicit yes declines.
func (s *Surface) Confirm(message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastConfirm = message
	s.promptColor.Fprintf(s.out, "%s [y/N]: ", message)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(s.out)
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// LastAlert returns the most recent alert message, or "" when none has
// been shown.
func (s *Surface) LastAlert() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAlert
}

// LastConfirm returns the most recent confirmation prompt.
func (s *Surface) LastConfirm() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastConfirm
}
