package render

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

// Spinner shows fetch progress on stderr and degrades to plain lines when
// stderr is not a TTY.
type Spinner struct {
	mu      sync.Mutex
	sp      *spinner.Spinner
	writer  *os.File
	message string
	enabled bool
	active  bool
	stopped bool
}

// NewSpinner creates a spinner with the given message. Call Start to show it.
func NewSpinner(message string) *Spinner {
	writer := os.Stderr
	enabled := term.IsTerminal(int(writer.Fd()))

	s := &Spinner{
		enabled: enabled,
		message: message,
		writer:  writer,
	}

	if enabled {
		sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(writer))
		sp.Suffix = " " + message
		sp.HideCursor = true
		sp.Color("cyan")
		s.sp = sp
	}

	return s
}

// Start begins rendering the spinner.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped || s.active {
		return
	}

	if s.enabled && s.sp != nil {
		s.sp.Start()
	} else {
		fmt.Fprintf(s.writer, "%s...\n", s.message)
	}

	s.active = true
}

// Update replaces the spinner message.
func (s *Spinner) Update(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.message = message
	if !s.active || s.stopped {
		return
	}

	if s.enabled && s.sp != nil {
		s.sp.Suffix = " " + message
	} else {
		fmt.Fprintf(s.writer, "%s...\n", message)
	}
}

// Stop ends the spinner without a closing message.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	s.stopped = true

	if s.enabled && s.sp != nil {
		s.sp.Stop()
		fmt.Fprint(s.writer, "\r")
	}
}

// Fail ends the spinner with a failure message.
func (s *Spinner) Fail(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		if message != "" {
			fmt.Fprintf(s.writer, "✗ %s\n", message)
		}

		return
	}

	s.stopped = true

	if s.enabled && s.sp != nil {
		s.sp.Stop()
		fmt.Fprintf(s.writer, "\r✗ %s\n", message)

		return
	}

	if message != "" {
		fmt.Fprintf(s.writer, "✗ %s\n", message)
	}
}
