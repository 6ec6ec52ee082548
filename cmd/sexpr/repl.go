package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/pkg/errors"

	"github.com/xiam/sexpr"
)

const exitCommand = "(exit)"

// lineReader is the part of a line editor the loop needs
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(line string)
}

type repl struct {
	eval   *sexpr.Evaluator
	in     lineReader
	out    io.Writer
	prompt string
	errs   *color.Color
}

func newREPL(eval *sexpr.Evaluator, in lineReader, out io.Writer, cfg Config) *repl {
	errs := color.New(color.FgRed)
	if !cfg.Color {
		errs.DisableColor()
	}
	return &repl{
		eval:   eval,
		in:     in,
		out:    out,
		prompt: cfg.Prompt,
		errs:   errs,
	}
}

// Run reads and evaluates lines until the input ends or (exit) is entered.
// Evaluation failures are printed and don't stop the loop.
func (r *repl) Run(ctx context.Context) error {
	for {
		line, err := r.in.Prompt(r.prompt)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				fmt.Fprintln(r.out)
				return nil
			}
			return errors.Wrap(err, "reading input")
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r.in.AppendHistory(line)

		if line == exitCommand {
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		out, err := r.eval.EvalString(ctx, line)
		if err != nil {
			r.errs.Fprintf(r.out, "error: %v\n", err)
			continue
		}
		if out != "" {
			fmt.Fprintln(r.out, out)
		}
	}
}

// terminal is a lineReader backed by liner, history is loaded from and saved
// to historyFile when one is set.
type terminal struct {
	*liner.State
	historyFile string
}

func newTerminal(historyFile string) *terminal {
	t := &terminal{
		State:       liner.NewLiner(),
		historyFile: historyFile,
	}
	t.SetCtrlCAborts(true)

	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			_, _ = t.ReadHistory(f)
			f.Close()
		}
	}
	return t
}

func (t *terminal) Close() error {
	defer t.State.Close()

	if t.historyFile == "" {
		return nil
	}
	f, err := os.Create(t.historyFile)
	if err != nil {
		return errors.Wrapf(err, "saving history to %q", t.historyFile)
	}
	defer f.Close()

	if _, err := t.WriteHistory(f); err != nil {
		return errors.Wrapf(err, "saving history to %q", t.historyFile)
	}
	return nil
}
