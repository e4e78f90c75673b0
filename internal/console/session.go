package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
)

// #region state
// State is the session lifecycle state.
type State int

const (
	StateRunning State = iota
	StateTerminated
)

func (s State) String() string {
	if s == StateTerminated {
		return "terminated"
	}
	return "running"
}

// #endregion state

// #region options
type options struct {
	delay  time.Duration
	color  bool
	logger *zap.Logger
}

// Option configures a Session.
type Option func(*options)

// WithTypingDelay sets the per-character pause for the core insight.
func WithTypingDelay(d time.Duration) Option {
	return func(o *options) { o.delay = d }
}

// WithColor enables or disables terminal styling.
func WithColor(on bool) Option {
	return func(o *options) { o.color = on }
}

// WithLogger sets the logger used for dispatch events.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// #endregion options

// #region session
// Session runs the interactive menu loop over an injected catalog.
// It is single-threaded; every call blocks until its output is written.
type Session struct {
	cat    Catalog
	render *Renderer
	log    *zap.Logger
	state  State
}

// NewSession builds a session writing all output to out.
func NewSession(cat Catalog, out io.Writer, opts ...Option) *Session {
	o := options{delay: DefaultTypingDelay, color: true, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Session{
		cat:    cat,
		render: NewRenderer(out, NewTypewriter(o.delay), o.color),
		log:    o.logger,
		state:  StateRunning,
	}
}

// State reports whether the session is still running.
func (s *Session) State() State {
	return s.state
}

// Run prints the banner and loops menu → prompt → dispatch until the quit
// command or end of input. End of input is handled exactly like quit.
func (s *Session) Run(in io.Reader) error {
	if err := s.render.Header(); err != nil {
		return fmt.Errorf("render header: %w", err)
	}

	reader := bufio.NewReader(in)

	for s.state == StateRunning {
		if err := s.render.Menu(s.cat.ListAll()); err != nil {
			return fmt.Errorf("render menu: %w", err)
		}
		if err := s.render.Prompt(); err != nil {
			return fmt.Errorf("render prompt: %w", err)
		}

		line, err := readLine(reader)
		if errors.Is(err, io.EOF) {
			s.log.Debug("input closed")
			line = QuitToken
		} else if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		if _, err := s.Step(line); err != nil {
			return err
		}
	}
	return nil
}

// Step resolves and renders a single input line. Once the session has
// terminated, Step does nothing and reports a quit.
func (s *Session) Step(line string) (Command, error) {
	if s.state == StateTerminated {
		return Command{Kind: KindQuit, Input: Normalize(line)}, nil
	}

	cmd := Resolve(s.cat, line)
	if cmd.Kind != KindUnknown {
		s.log.Debug("command dispatched",
			zap.String("kind", cmd.Kind.String()),
			zap.String("input", cmd.Input),
		)
	}

	var err error
	switch cmd.Kind {
	case KindQuit:
		s.state = StateTerminated
		err = s.render.Farewell()
	case KindSchema:
		err = s.render.Schema()
	case KindLicensing:
		err = s.render.Licensing()
	case KindDetail:
		err = s.render.Detail(*cmd.Record)
	default:
		err = s.render.Unknown(cmd.Input)
	}
	if err != nil {
		return cmd, fmt.Errorf("render %s: %w", cmd.Kind, err)
	}
	return cmd, nil
}

// readLine returns the next line without its terminator. Lines have no
// length limit. A final line without a newline is returned before io.EOF.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// #endregion session
