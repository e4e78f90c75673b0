package console

import (
	"io"
	"time"
)

// DefaultTypingDelay is the per-character pause used for the core insight.
const DefaultTypingDelay = 8 * time.Millisecond

// Typewriter writes text one character at a time with a fixed pause between
// characters. It runs synchronously and always completes.
type Typewriter struct {
	Delay time.Duration
	sleep func(time.Duration)
}

// NewTypewriter returns a Typewriter pausing delay between characters.
// A zero or negative delay writes the text in one call.
func NewTypewriter(delay time.Duration) *Typewriter {
	return &Typewriter{Delay: delay, sleep: time.Sleep}
}

type flusher interface {
	Flush() error
}

// Type writes text followed by a newline.
func (tw *Typewriter) Type(w io.Writer, text string) error {
	if tw.Delay <= 0 {
		_, err := io.WriteString(w, text+"\n")
		return err
	}
	f, _ := w.(flusher)
	for _, r := range text {
		if _, err := io.WriteString(w, string(r)); err != nil {
			return err
		}
		if f != nil {
			if err := f.Flush(); err != nil {
				return err
			}
		}
		tw.sleep(tw.Delay)
	}
	_, err := io.WriteString(w, "\n")
	return err
}
