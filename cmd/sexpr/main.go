// Command sexpr evaluates programs from files, from the command line or from
// an interactive prompt.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/xiam/sexpr"
	"github.com/xiam/sexpr/ast"
	"github.com/xiam/sexpr/parser"
)

// rootEnv holds the flags of the root command
type rootEnv struct {
	flagConfig   string
	flagPrompt   string
	flagMaxDepth int
	flagMaxSteps int
	flagLogLevel string
	flagNoColor  bool
	flagEval     string
	flagTree     bool
}

func getRootCmd() *cobra.Command {
	env := &rootEnv{}

	ret := &cobra.Command{
		Use:   "sexpr [flags] [file...]",
		Short: "Evaluate s-expression programs",
		Long: `
Evaluate s-expression programs.

Files are evaluated in order and their results printed. With --eval the given
program is evaluated after them and the command exits, otherwise an
interactive prompt is started. Enter (exit) to leave the prompt.`,
		SilenceUsage: true,
		RunE:         env.runRootCmd,
	}

	flags := ret.Flags()
	flags.StringVar(&env.flagConfig, "config", "", "YAML configuration file")
	flags.StringVar(&env.flagPrompt, "prompt", "", "Prompt of the interactive loop")
	flags.IntVar(&env.flagMaxDepth, "max-depth", 0, "Maximum nesting depth of an evaluation, 0 disables the limit")
	flags.IntVar(&env.flagMaxSteps, "max-steps", 0, "Maximum number of steps of an evaluation, 0 means no limit")
	flags.StringVar(&env.flagLogLevel, "log-level", "", "Log level (trace, debug, info, warning, error)")
	flags.BoolVar(&env.flagNoColor, "no-color", false, "Print errors without colors")
	flags.StringVarP(&env.flagEval, "eval", "e", "", "Evaluate the given program and exit")
	flags.BoolVar(&env.flagTree, "tree", false, "Print the parsed tree of each program instead of evaluating it")

	return ret
}

// config loads the configuration file and applies the flags that were set
func (r *rootEnv) config(cmd *cobra.Command) (Config, error) {
	cfg, err := loadConfig(r.flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("prompt") {
		cfg.Prompt = r.flagPrompt
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = r.flagMaxDepth
	}
	if flags.Changed("max-steps") {
		cfg.MaxSteps = r.flagMaxSteps
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = r.flagLogLevel
	}
	if r.flagNoColor {
		cfg.Color = false
	}

	return cfg, cfg.Validate()
}

func (r *rootEnv) runRootCmd(cmd *cobra.Command, args []string) error {
	cfg, err := r.config(cmd)
	if err != nil {
		return err
	}

	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(cfg.Level())

	eval := sexpr.New(
		sexpr.WithMaxDepth(cfg.MaxDepth),
		sexpr.WithMaxSteps(cfg.MaxSteps),
		sexpr.WithLogger(log),
	)

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	for _, file := range args {
		src, err := os.ReadFile(file)
		if err != nil {
			return errors.Wrapf(err, "reading %q", file)
		}
		log.WithField("file", file).Debug("evaluating")
		if err := r.run(cmd, eval, out, string(src)); err != nil {
			return errors.Wrapf(err, "evaluating %q", file)
		}
	}

	if cmd.Flags().Changed("eval") {
		return r.run(cmd, eval, out, r.flagEval)
	}
	if len(args) > 0 {
		return nil
	}

	term := newTerminal(cfg.HistoryFile)
	defer func() {
		if err := term.Close(); err != nil {
			log.WithError(err).Warn("closing terminal")
		}
	}()

	return newREPL(eval, term, out, cfg).Run(ctx)
}

// run evaluates src, or prints its tree when --tree is set
func (r *rootEnv) run(cmd *cobra.Command, eval *sexpr.Evaluator, out io.Writer, src string) error {
	if r.flagTree {
		program, err := parser.Parse([]byte(src))
		if err != nil {
			return err
		}
		ast.Print(out, program...)
		return nil
	}

	result, err := eval.EvalString(cmd.Context(), src)
	if err != nil {
		return err
	}
	if result != "" {
		fmt.Fprintln(out, result)
	}
	return nil
}

func main() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
