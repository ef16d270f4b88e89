package game

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	errQuit = errors.New("quit")

	// ErrUnknownCommand is returned by Exec for unrecognised input
	ErrUnknownCommand = errors.New("unknown command")
)

// Exec runs a single text command against the runner:
//
//	set X Y | kill X Y | pause | start | step | reset | restart | resize W H | quit
func (r *Runner) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch cmd, args := strings.ToLower(fields[0]), fields[1:]; cmd {
	case "set", "kill":
		x, y, err := parsePair(cmd, args)
		if err != nil {
			return err
		}
		return r.SetAlive(x, y, cmd == "set")
	case "pause":
		r.Pause()
	case "start":
		r.Resume()
	case "step":
		r.StepOnce()
	case "reset":
		r.Reset()
	case "restart":
		r.Restart()
	case "resize":
		w, h, err := parsePair(cmd, args)
		if err != nil {
			return err
		}
		return r.Resize(w, h)
	case "quit", "exit":
		return errQuit
	default:
		return errors.Wrapf(ErrUnknownCommand, "%q", cmd)
	}
	return nil
}

func parsePair(cmd string, args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, errors.Errorf("[%s] expected 2 arguments, got %d", cmd, len(args))
	}
	a, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, errors.Wrapf(err, "[%s] bad argument", cmd)
	}
	b, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, errors.Wrapf(err, "[%s] bad argument", cmd)
	}
	return a, b, nil
}

// readCommands executes commands line by line until ctx is done or the
// reader is exhausted. Bad commands are logged and skipped.
func (r *Runner) readCommands(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return errors.Wrap(err, "[Runner.readCommands] failed to read commands")
				default:
					return nil
				}
			}
			if err := r.Exec(line); err != nil {
				if errors.Is(err, errQuit) {
					return err
				}
				r.logger.Warn(fmt.Sprintf("command %q: %v", line, err))
			}
		}
	}
}
