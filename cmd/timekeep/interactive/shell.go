// Package interactive provides the interactive command-line interface
// for timekeep.
package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/timekeep/timekeep-go/pkg/service"
	"github.com/timekeep/timekeep-go/pkg/store"
	"github.com/timekeep/timekeep-go/pkg/timer"
)

// requestTimeout bounds each command's remote request.
const requestTimeout = 30 * time.Second

// Shell handles interactive mode for timekeep.
type Shell struct {
	svc *service.Timers
	rl  *readline.Instance
	out io.Writer

	now func() time.Time
}

// New creates a shell reading commands with readline.
func New(svc *service.Timers) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "timekeep> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	s := newShell(svc, rl.Stdout())
	s.rl = rl
	return s, nil
}

func newShell(svc *service.Timers, out io.Writer) *Shell {
	return &Shell{
		svc: svc,
		out: out,
		now: time.Now,
	}
}

func completer() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("timers"),
		readline.PcItem("current"),
		readline.PcItem("refresh"),
		readline.PcItem("add"),
		readline.PcItem("start"),
		readline.PcItem("update"),
		readline.PcItem("stop"),
		readline.PcItem("save"),
		readline.PcItem("timeout"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

// Stdout returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (s *Shell) Stdout() io.Writer {
	return s.out
}

// WatchChanges echoes store changes until the returned function is called.
func (s *Shell) WatchChanges() (cancel func()) {
	return s.svc.Store().OnChange(func(c store.Change) {
		fmt.Fprintln(s.out, FormatChange(c))
	})
}

// Run starts the interactive command loop.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}

		if quit := s.Execute(ctx, line); quit {
			cancel()
			return
		}
	}
}

// Execute runs one command line. It reports whether the shell should exit.
func (s *Shell) Execute(ctx context.Context, line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	cmd, rest, _ := strings.Cut(input, " ")
	cmd = strings.ToLower(cmd)
	rest = strings.TrimSpace(rest)

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	switch cmd {
	case "help", "?":
		s.printHelp()

	case "timers", "t":
		fmt.Fprint(s.out, FormatTimers(s.svc.Store().Timers()))

	case "current", "c":
		fmt.Fprint(s.out, FormatTimers(s.svc.Store().CurrentTimers()))

	case "refresh", "r":
		s.cmdRefresh(ctx)

	case "add":
		s.cmdAdd(ctx, rest)

	case "start":
		s.cmdStart(ctx, rest)

	case "update", "u":
		s.cmdUpdate(rest)

	case "stop":
		s.cmdStop(ctx, rest)

	case "save":
		s.cmdSave(ctx, rest)

	case "timeout":
		s.cmdTimeout(rest)

	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "Exiting...")
		return true

	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
Timekeep Commands:
  Timers:
    timers             - List the timer history
    current            - List running timers
    refresh            - Fetch both collections from the API

  Editing:
    add <json>         - Add a timer to the history, e.g. add {"start":1,"end":2}
    start [json]       - Start a running timer (default: start now)
    update <json>      - Replace a running timer locally (matched by id)
    stop <id>          - Delete a running timer
    save [id]          - Save one running timer, or all of them

  Settings:
    timeout [minutes]  - Show or set the timeout

  General:
    help               - Show this help
    quit               - Exit timekeep`)
}

func (s *Shell) cmdRefresh(ctx context.Context) {
	if err := s.svc.Refresh(ctx); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	st := s.svc.Store().Snapshot()
	fmt.Fprintf(s.out, "Loaded %d timers, %d running\n", len(st.Timers), len(st.CurrentTimers))
}

func (s *Shell) cmdAdd(ctx context.Context, arg string) {
	t, err := parseTimer(arg)
	if err != nil {
		fmt.Fprintf(s.out, "Usage: add <json>: %v\n", err)
		return
	}
	if err := s.svc.AddTimer(ctx, t); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}

func (s *Shell) cmdStart(ctx context.Context, arg string) {
	t := timer.Timer{timer.FieldStart: s.now().UnixMilli()}
	if arg != "" {
		var err error
		if t, err = parseTimer(arg); err != nil {
			fmt.Fprintf(s.out, "Usage: start [json]: %v\n", err)
			return
		}
	}
	if err := s.svc.AddCurrentTimer(ctx, t); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}

func (s *Shell) cmdUpdate(arg string) {
	t, err := parseTimer(arg)
	if err != nil {
		fmt.Fprintf(s.out, "Usage: update <json>: %v\n", err)
		return
	}
	if t.ID() == nil {
		fmt.Fprintln(s.out, "Usage: update <json>: timer needs an id")
		return
	}
	if _, ok := s.svc.Store().CurrentTimer(t.ID()); !ok {
		fmt.Fprintf(s.out, "No running timer with id %s\n", timer.PathID(t.ID()))
		return
	}
	s.svc.UpdateCurrentTimer(t)
}

func (s *Shell) cmdStop(ctx context.Context, arg string) {
	if arg == "" {
		fmt.Fprintln(s.out, "Usage: stop <id>")
		return
	}
	if err := s.svc.RemoveCurrentTimer(ctx, s.resolveID(arg)); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}

func (s *Shell) cmdSave(ctx context.Context, arg string) {
	if arg == "" {
		s.svc.PersistAll(ctx)
		fmt.Fprintf(s.out, "Save requested for %d running timers\n", len(s.svc.Store().CurrentTimers()))
		return
	}

	id := s.resolveID(arg)
	if _, ok := s.svc.Store().CurrentTimer(id); !ok {
		fmt.Fprintf(s.out, "No running timer with id %s\n", arg)
		return
	}
	s.svc.PersistCurrentTimer(ctx, id)
	fmt.Fprintf(s.out, "Save requested for %s\n", arg)
}

func (s *Shell) cmdTimeout(arg string) {
	st := s.svc.Store()
	if arg == "" {
		fmt.Fprintf(s.out, "Timeout: %s\n", FormatDuration(st.Timeout()))
		fmt.Fprintf(s.out, "Default: %s\n", FormatDuration(st.DefaultTimeout()))
		return
	}

	minutes, err := strconv.Atoi(arg)
	if err != nil || minutes <= 0 {
		fmt.Fprintln(s.out, "Usage: timeout [minutes] (positive integer)")
		return
	}
	st.SetTimeout(time.Duration(minutes) * time.Minute)
}

// resolveID maps a typed id to the id value of a running timer, so that
// "1" finds a timer whose id is the number 1 as well as the string "1".
// Unknown ids are returned as typed.
func (s *Shell) resolveID(arg string) any {
	for _, t := range s.svc.Store().CurrentTimers() {
		if timer.PathID(t.ID()) == arg {
			return t.ID()
		}
	}
	return arg
}

func parseTimer(arg string) (timer.Timer, error) {
	if arg == "" {
		return nil, errors.New("missing timer")
	}
	return timer.Decode([]byte(arg))
}
