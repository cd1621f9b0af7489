// Command htmltok tokenizes HTML input and prints the resulting token and
// parse-error stream.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/MeKo-Christian/htmltok/tokenizer"
)

var version = "dev"

// config holds the CLI configuration gathered from flags.
type config struct {
	initialState string
	discardBOM   bool
	allowCDATA   bool
	lastStartTag string
	format       string
	showErrors   bool
	errorsOnly   bool
	logLevel     string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := &config{}

	cmd := &cobra.Command{
		Use:     "htmltok [file]",
		Short:   "Tokenize an HTML document and print its token stream",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return run(cfg, path, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&cfg.initialState, "initial-state", "data",
		"initial tokenizer state: data, rcdata, rawtext, scriptdata, plaintext, cdata")
	cmd.Flags().BoolVar(&cfg.discardBOM, "discard-bom", true, "discard a leading UTF-8 BOM")
	cmd.Flags().BoolVar(&cfg.allowCDATA, "allow-cdata", false, "treat CDATA sections as foreign content")
	cmd.Flags().StringVar(&cfg.lastStartTag, "last-start-tag", "",
		"seed the appropriate-end-tag name (for fragment-style invocations)")
	cmd.Flags().StringVarP(&cfg.format, "format", "f", "text", "output format: text, json")
	cmd.Flags().BoolVar(&cfg.showErrors, "show-errors", true, "interleave parse errors with tokens")
	cmd.Flags().BoolVar(&cfg.errorsOnly, "errors-only", false, "print only parse errors, no tokens")
	cmd.Flags().StringVar(&cfg.logLevel, "log-level", "warn",
		"logging verbosity: trace, debug, info, warn, error, fatal, panic")

	return cmd
}

func run(cfg *config, path string, stdin io.Reader, stdout, stderr io.Writer) error {
	log := logrus.New()
	log.SetOutput(stderr)
	level, err := logrus.ParseLevel(cfg.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.logLevel, err)
	}
	log.SetLevel(level)

	state, err := parseInitialState(cfg.initialState)
	if err != nil {
		return err
	}

	input, err := readInput(path, stdin)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	tok := tokenizer.New(string(input))
	tok.SetDiscardBOM(cfg.discardBOM)
	tok.SetAllowCDATA(cfg.allowCDATA)
	tok.SetState(state)
	if cfg.lastStartTag != "" {
		tok.SetLastStartTag(cfg.lastStartTag)
	}

	emit, err := newEmitter(cfg.format, stdout)
	if err != nil {
		return err
	}

	seenErrors := 0
	for {
		token := tok.Next()
		for _, perr := range tok.Errors()[seenErrors:] {
			log.WithFields(logrus.Fields{
				"code":   perr.Code,
				"line":   perr.Line,
				"column": perr.Column,
			}).Warn("parse error")
			if cfg.showErrors || cfg.errorsOnly {
				if err := emit.error(perr); err != nil {
					return err
				}
			}
		}
		seenErrors = len(tok.Errors())

		if !cfg.errorsOnly {
			if err := emit.token(token); err != nil {
				return err
			}
		}

		if token.Type == tokenizer.EOF {
			break
		}
	}

	return emit.close()
}

func parseInitialState(name string) (tokenizer.State, error) {
	switch strings.ToLower(name) {
	case "data", "":
		return tokenizer.DataState, nil
	case "rcdata":
		return tokenizer.RCDATAState, nil
	case "rawtext":
		return tokenizer.RawtextState, nil
	case "scriptdata", "script-data":
		return tokenizer.ScriptDataState, nil
	case "plaintext":
		return tokenizer.PlaintextState, nil
	case "cdata":
		return tokenizer.CDATASectionState, nil
	default:
		return tokenizer.InvalidState, fmt.Errorf("unknown initial state %q", name)
	}
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
