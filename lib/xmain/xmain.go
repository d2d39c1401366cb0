// Package xmain is the shared main of the shapes commands. It wires up the
// loggers, flags and signal handling, and turns returned errors into exit
// codes.
package xmain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"cdr.dev/slog"
	"oss.terrastruct.com/cmdlog"
	"oss.terrastruct.com/xos"

	ctxlog "oss.terrastruct.com/shapes/lib/log"
)

type RunFunc func(context.Context, *State) error

// shutdownGrace bounds how long run may take to return after a signal.
const shutdownGrace = 10 * time.Second

func Main(run RunFunc) {
	name := ""
	args := []string(nil)
	if len(os.Args) > 0 {
		name = os.Args[0]
		args = os.Args[1:]
	}

	ms := NewState(name, args, os.Stdin, os.Stdout, os.Stderr, xos.NewEnv(os.Environ()))

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	err := ms.Main(context.Background(), sigs, run)
	os.Exit(ms.ExitCode(err))
}

type State struct {
	Name string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Log  *cmdlog.Logger
	Env  *xos.Env
	Opts *Opts

	stdin *bufio.Reader
}

func NewState(name string, args []string, stdin io.Reader, stdout, stderr io.Writer, env *xos.Env) *State {
	ms := &State{
		Name: name,

		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,

		Env: env,
	}
	ms.Log = cmdlog.Log(ms.Env, stderr)
	ms.Opts = NewOpts(ms.Env, args)
	return ms
}

// Main runs run with a context that is canceled when a signal arrives.
func (ms *State) Main(ctx context.Context, sigs <-chan os.Signal, run RunFunc) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	ctx = ctxlog.Human(ctx, ms.Stderr)
	if ms.Env.Getenv("DEBUG") != "" {
		ctx = ctxlog.Leveled(ctx, slog.LevelDebug)
	}

	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- run(ctx, ms)
	}()

	select {
	case err := <-done:
		return err
	case sig := <-sigs:
		ms.Log.Warn.Printf("received signal %v: shutting down...", sig)
		cancel()
		select {
		case err := <-done:
			if err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("failed to shutdown: %w", err)
			}
			if sig == syscall.SIGTERM {
				return nil
			}
			return ExitError{Code: 1}
		case <-time.After(shutdownGrace):
			return ExitErrorf(1, "took longer than %v to shutdown: exiting forcefully", shutdownGrace)
		}
	}
}

// ExitCode logs err, if any, and returns the process exit code for it.
func (ms *State) ExitCode(err error) int {
	if err == nil {
		return 0
	}

	code := 1
	msg := err.Error()
	var eerr ExitError
	var uerr UsageError
	if errors.As(err, &eerr) {
		code = eerr.Code
		msg = eerr.Message
	} else if errors.As(err, &uerr) {
		msg = fmt.Sprintf("%s\n%s", msg, "Run with --help to see usage.")
	}
	if msg != "" {
		ms.Log.Error.Print(msg)
	}
	return code
}

type ExitError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func ExitErrorf(code int, msg string, v ...interface{}) ExitError {
	return ExitError{
		Code:    code,
		Message: fmt.Sprintf(msg, v...),
	}
}

func (ee ExitError) Error() string {
	s := fmt.Sprintf("exiting with code %d", ee.Code)
	if ee.Message != "" {
		s += ": " + ee.Message
	}
	return s
}

type UsageError struct {
	Message string `json:"message"`
}

func UsageErrorf(msg string, v ...interface{}) UsageError {
	return UsageError{
		Message: fmt.Sprintf(msg, v...),
	}
}

func (ue UsageError) Error() string {
	return fmt.Sprintf("bad usage: %s", ue.Message)
}

// Prompt writes prompt to stdout and reads one line of input, without the
// trailing newline.
func (ms *State) Prompt(prompt string) (string, error) {
	if ms.stdin == nil {
		ms.stdin = bufio.NewReader(ms.Stdin)
	}
	if _, err := io.WriteString(ms.Stdout, prompt); err != nil {
		return "", err
	}
	line, err := ms.stdin.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// WritePath writes p to fp, or to stdout when fp is "-".
func (ms *State) WritePath(fp string, p []byte) error {
	if fp == "-" {
		_, err := ms.Stdout.Write(p)
		return err
	}
	return os.WriteFile(fp, p, 0644)
}
