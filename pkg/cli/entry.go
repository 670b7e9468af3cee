// Package cli implements the shellexpr command line.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/funvibe/shellexpr/internal/config"
	"github.com/funvibe/shellexpr/internal/evaluator"
	"github.com/funvibe/shellexpr/internal/logger"
	"github.com/funvibe/shellexpr/internal/operator"
	"github.com/funvibe/shellexpr/internal/source"
	"github.com/funvibe/shellexpr/internal/value"
)

const usage = `Usage:
  %[1]s [flags] <left> <op> <right>
  %[1]s [flags] --right-sqlite <db> --right-query <sql> <left> <op>
  %[1]s [flags] -f <cases.yaml>

Operands are YAML literals, e.g. 3, 1.5, hello, "[1, 2, 3]", "!line text".
Operators: == != < > <= >= =~ !~ + - * / in && ||

Flags:
`

var errUsage = errors.New("usage")

type options struct {
	caseFile    string
	configFile  string
	color       string
	logLevel    string
	logFormat   string
	rightSQLite string
	rightQuery  string
	args        []string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet(config.ProgramName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.caseFile, "f", "", "read cases from a YAML `file`")
	fs.StringVar(&opts.configFile, "config", "", "load settings from a YAML `file`")
	fs.StringVar(&opts.color, "color", "", "color output: auto, always or never")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	fs.StringVar(&opts.logFormat, "log-format", "", "log format: text or json")
	fs.StringVar(&opts.rightSQLite, "right-sqlite", "", "take the right operand from the SQLite `database`")
	fs.StringVar(&opts.rightQuery, "right-query", "", "`sql` query producing the right operand table")
	fs.Usage = func() {
		fmt.Fprintf(stderr, usage, config.ProgramName)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opts, errUsage
	}
	opts.args = fs.Args()
	return opts, nil
}

// Run executes the command with args (excluding the program name) and
// returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return config.ExitUsage
	}

	cfg := config.FromEnv()
	if opts.configFile != "" {
		cfg, err = config.LoadFile(cfg, opts.configFile)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return config.ExitUsage
		}
	}
	cfg = cfg.Override(config.Config{LogLevel: opts.logLevel, LogFormat: opts.logFormat, Color: opts.color})

	log, err := logger.New(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return config.ExitUsage
	}

	cases, err := collectCases(ctx, opts, log)
	if err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, usage, config.ProgramName)
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return config.ExitUsage
	}

	p := newPainter(cfg.Color, stdout)
	return runCases(cases, opts.caseFile != "", stdout, p, log)
}

func collectCases(ctx context.Context, opts options, log *slog.Logger) ([]Case, error) {
	if opts.caseFile != "" {
		if len(opts.args) != 0 || opts.rightSQLite != "" {
			return nil, errUsage
		}
		return LoadCases(opts.caseFile)
	}

	if opts.rightSQLite != "" {
		if len(opts.args) != 2 || opts.rightQuery == "" {
			return nil, errUsage
		}
		right, err := loadSQLiteOperand(ctx, opts.rightSQLite, opts.rightQuery, log)
		if err != nil {
			return nil, err
		}
		return singleCase(opts.args[0], opts.args[1], right)
	}

	if len(opts.args) != 3 {
		return nil, errUsage
	}
	right, err := parseOperand(opts.args[2])
	if err != nil {
		return nil, err
	}
	return singleCase(opts.args[0], opts.args[1], right)
}

func singleCase(leftArg, opArg string, right value.Value) ([]Case, error) {
	op, err := operator.Parse(opArg)
	if err != nil {
		return nil, err
	}
	left, err := parseOperand(leftArg)
	if err != nil {
		return nil, err
	}
	return []Case{{Name: leftArg + " " + opArg, Op: op, Left: left, Right: right}}, nil
}

func loadSQLiteOperand(ctx context.Context, path, query string, log *slog.Logger) (value.Value, error) {
	src, err := source.OpenSQLite(ctx, path, log)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return src.Table(ctx, query)
}

// runCases applies every case and prints the outcome. Batch output is
// prefixed with the case name.
func runCases(cases []Case, batch bool, out io.Writer, p painter, log *slog.Logger) int {
	code := config.ExitOK
	for _, c := range cases {
		prefix := ""
		if batch {
			prefix = p.label(c.Name+":") + " "
		}

		result, err := evaluator.Apply(c.Op, c.Left, c.Right)
		if err != nil {
			log.Debug("case failed", "case", c.Name, "op", c.Op.String(), "error", err)
			fmt.Fprintln(out, prefix+p.failure(evaluator.Diagnostic(c.Op, err)))
			code = config.ExitFailure
			continue
		}
		log.Debug("case applied", "case", c.Name, "op", c.Op.String(), "kind", value.TypeName(result))
		fmt.Fprintln(out, prefix+p.result(value.Format(result)))
	}
	return code
}
