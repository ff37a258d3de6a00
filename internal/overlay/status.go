// Package overlay draws short status messages, such as the mouse grab
// and screenshot notices, over the game frame.
package overlay

import (
	"image"
	"strings"
	"time"
)

// Duration is how long a status message stays on screen.
const Duration = 2 * time.Second

// Status holds the current message and its rendered image.
type Status struct {
	now func() time.Time

	text  string
	until time.Time
	img   *image.RGBA
}

// NewStatus creates an empty status line.
func NewStatus() *Status {
	return &Status{now: time.Now}
}

// Show replaces the current message. Trailing newlines are dropped.
func (s *Status) Show(msg string) {
	s.text = strings.TrimRight(msg, "\r\n")
	s.until = s.now().Add(Duration)
	s.img = nil
}

// Text returns the message while it is still showing.
func (s *Status) Text() (string, bool) {
	if s.text == "" || !s.now().Before(s.until) {
		return "", false
	}
	return s.text, true
}

// Image returns the rendered message, or nil once it has expired. The
// image is rendered once per message.
func (s *Status) Image() *image.RGBA {
	text, ok := s.Text()
	if !ok {
		s.img = nil
		return nil
	}
	if s.img == nil {
		s.img = Render(text)
	}
	return s.img
}
