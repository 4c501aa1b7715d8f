// Package speech pronounces words through a system text-to-speech
// command when one is installed.
package speech

import (
	"errors"
	"fmt"
	"log"
	"os/exec"
	"sync"
)

// ErrUnavailable is returned when no text-to-speech command was found.
var ErrUnavailable = errors.New("speech: no text-to-speech command available")

// Engine pronounces text. Implementations must be safe for concurrent
// use.
type Engine interface {
	// Available reports whether pronunciation can work at all.
	Available() bool
	// Pronounce speaks text in the background. Only availability is
	// reported as an error; playback failures are logged.
	Pronounce(text string) error
}

// candidates are the commands probed in order. Each takes the text to
// speak as its only argument.
var candidates = []string{"espeak", "say"}

// ExecEngine runs an external text-to-speech binary. Utterances are
// serialized with a lock so overlapping calls do not talk over each
// other.
type ExecEngine struct {
	binary string
	mu     sync.Mutex
}

// NewEngine probes for a known text-to-speech command. The returned
// engine reports unavailable when none is installed.
func NewEngine() *ExecEngine {
	for _, name := range candidates {
		if path, err := exec.LookPath(name); err == nil {
			return &ExecEngine{binary: path}
		}
	}
	return &ExecEngine{}
}

// Available reports whether a text-to-speech command was found.
func (e *ExecEngine) Available() bool {
	return e.binary != ""
}

// Pronounce speaks text on a background goroutine and returns
// immediately. Returns ErrUnavailable when no command was found.
func (e *ExecEngine) Pronounce(text string) error {
	if !e.Available() {
		return ErrUnavailable
	}
	if text == "" {
		return fmt.Errorf("nothing to pronounce")
	}

	go func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if err := exec.Command(e.binary, text).Run(); err != nil {
			log.Printf("speech: pronunciation failed: %v", err)
		}
	}()
	return nil
}
