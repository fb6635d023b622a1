// Command freeband generates, reduces and checks elements of the free
// idempotent monoid.
//
//	freeband generate [-n N] [-o file] [-hist]
//	freeband reduce   [-n N] [-v] word...
//	freeband table    [-n N]
//	freeband verify   -i file
//	freeband explore  [-max-len L] [-max-states S] word
//
// Every command accepts -config (YAML; a missing file means defaults).
// Exit status: 2 for an invalid symbol, 3 for an alphabet above the safety
// limit, 1 for any other failure.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/freeband/canon"
	"github.com/katalvlaran/freeband/explore"
	"github.com/katalvlaran/freeband/monoid"
	"github.com/katalvlaran/freeband/word"
	"github.com/katalvlaran/freeband/wordlist"
	"go.uber.org/zap"
)

const (
	exitOK = iota
	exitFailure
	exitInvalidSymbol
	exitTooLarge
)

var (
	errUsage        = errors.New("usage")
	errVerifyFailed = errors.New("verify: list is not the monoid")
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// app carries what every command needs.
type app struct {
	cfg    config
	log    *zap.Logger
	stdout io.Writer
	stderr io.Writer
	color  bool
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return exitFailure
	}

	cmds := map[string]func(*app, []string) error{
		"generate": cmdGenerate,
		"reduce":   cmdReduce,
		"table":    cmdTable,
		"verify":   cmdVerify,
		"explore":  cmdExplore,
	}
	cmd, ok := cmds[args[0]]
	if !ok {
		usage(stderr)
		return exitFailure
	}

	err := cmd(&app{stdout: stdout, stderr: stderr}, args[1:])
	if err == nil {
		return exitOK
	}
	if !errors.Is(err, errUsage) {
		fmt.Fprintf(stderr, "freeband %s: %v\n", args[0], err)
	}
	return exitCode(err)
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, word.ErrInvalidSymbol):
		return exitInvalidSymbol
	case errors.Is(err, monoid.ErrAlphabetTooLarge), errors.Is(err, word.ErrAlphabetSize):
		return exitTooLarge
	default:
		return exitFailure
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, `Usage: freeband <command> [flags]

Commands:
  generate   List every element on n letters, one per line
  reduce     Print the canonical form of each word
  table      Print the multiplication table (n ≤ %d)
  verify     Check an element list for canonicity, duplicates and completeness
  explore    Search the rewrite graph around a word
`, monoid.MaxTableLetters)
}

// flags returns a flag set with the shared -config flag. After Parse, setup
// must be called to load the configuration.
func (a *app) flags(name string) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	cfgPath := fs.String("config", "freeband.yaml", "path to config file")
	return fs, cfgPath
}

// setup parses args, loads the config and builds the logger.
func (a *app) setup(fs *flag.FlagSet, cfgPath *string, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.LogLevel, a.stderr)
	if err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	a.cfg, a.log = cfg, log
	a.color = useColor(cfg.Color, a.stdout)
	monoid.SetLogger(log)
	return nil
}

// newContext returns a context cancelled on SIGINT/SIGTERM or after the
// configured timeout.
func (a *app) newContext() (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	if a.cfg.Timeout <= 0 {
		return ctx, stop
	}
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	return ctx, func() { cancel(); stop() }
}

func (a *app) monoidOptions() []monoid.Option {
	return []monoid.Option{
		monoid.WithMaxLetters(a.cfg.MaxLetters),
		monoid.WithWorkers(max(a.cfg.Workers, 1)),
		monoid.WithLogger(a.log),
	}
}

func cmdGenerate(a *app, args []string) error {
	fs, cfgPath := a.flags("generate")
	n := fs.Int("n", 3, "number of letters")
	outPath := fs.String("o", "", "output file (default stdout)")
	workers := fs.Int("workers", 0, "worker pool size (overrides config)")
	hist := fs.Bool("hist", false, "print the cumulative length histogram instead of the words")
	if err := a.setup(fs, cfgPath, args); err != nil {
		return err
	}
	if *workers > 0 {
		a.cfg.Workers = *workers
	}

	ctx, cancel := a.newContext()
	defer cancel()
	words, err := monoid.Generate(ctx, *n, a.monoidOptions()...)
	if err != nil {
		return err
	}

	if *hist {
		for l, c := range monoid.Histogram(words) {
			fmt.Fprintf(a.stdout, "%d\t%d\n", l, c)
		}
		return nil
	}

	if *outPath == "" {
		if err := wordlist.Write(a.stdout, words); err != nil {
			return err
		}
	} else {
		f, err := os.Create(*outPath)
		if err != nil {
			return err
		}
		if err := writeAndClose(f, words); err != nil {
			return fmt.Errorf("write %s: %w", *outPath, err)
		}
	}
	a.log.Info("elements written", zap.Int("letters", *n), zap.Int("words", len(words)))
	return nil
}

// writeAndClose writes words to wc and closes it. A failed close is
// reported, since buffered data may not have reached the file.
func writeAndClose(wc io.WriteCloser, words []word.Word) error {
	err := wordlist.Write(wc, words)
	if cerr := wc.Close(); err == nil {
		err = cerr
	}
	return err
}

func cmdReduce(a *app, args []string) error {
	fs, cfgPath := a.flags("reduce")
	n := fs.Int("n", word.MaxLetters, "number of letters words may use")
	verbose := fs.Bool("v", false, "print every rewrite step")
	if err := a.setup(fs, cfgPath, args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	var opts []canon.Option
	if *verbose {
		opts = append(opts, canon.WithTrace())
	}
	for _, arg := range fs.Args() {
		w, err := word.ParseOver(arg, *n)
		if err != nil {
			return err
		}
		res, err := canon.Canonicalize(w, opts...)
		if err != nil {
			return err
		}
		if *verbose {
			cur := w
			for _, s := range res.Trace {
				fmt.Fprintln(a.stdout, renderStep(cur, s, a.color))
				if cur, err = s.Apply(cur); err != nil {
					return err
				}
			}
		}
		fmt.Fprintln(a.stdout, res.Word)
		a.log.Debug("reduced", zap.Stringer("word", w), zap.Stringer("canonical", res.Word),
			zap.Int("steps", len(res.Trace)))
	}
	return nil
}

func cmdTable(a *app, args []string) error {
	fs, cfgPath := a.flags("table")
	n := fs.Int("n", 2, "number of letters")
	if err := a.setup(fs, cfgPath, args); err != nil {
		return err
	}

	ctx, cancel := a.newContext()
	defer cancel()
	t, err := monoid.Table(ctx, *n, a.monoidOptions()...)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, renderTable(t.Elements, t.Product, a.color))
	return nil
}

func cmdVerify(a *app, args []string) error {
	fs, cfgPath := a.flags("verify")
	inPath := fs.String("i", "", "element list to check")
	if err := a.setup(fs, cfgPath, args); err != nil {
		return err
	}
	if *inPath == "" {
		fs.Usage()
		return errUsage
	}

	f, err := os.Open(*inPath)
	if err != nil {
		return err
	}
	defer f.Close()
	words, err := wordlist.Read(f)
	if err != nil {
		return err
	}

	rep := wordlist.Check(words)
	fmt.Fprintf(a.stdout, "words: %d\nletters: %d\nexpected: %s\n", rep.Words, rep.Letters, rep.Expected)
	for _, w := range rep.NonCanonical {
		fmt.Fprintf(a.stdout, "not canonical: %s (canonical %s)\n", w, canon.Canonical(w))
	}
	for _, w := range rep.Duplicates {
		fmt.Fprintf(a.stdout, "duplicate: %s\n", w)
	}
	if !rep.OK() {
		return errVerifyFailed
	}
	fmt.Fprintln(a.stdout, "ok")
	return nil
}

func cmdExplore(a *app, args []string) error {
	fs, cfgPath := a.flags("explore")
	maxLen := fs.Int("max-len", 0, "longest word insertions may produce (default: the start length)")
	maxStates := fs.Int("max-states", explore.DefaultMaxStates, "cap on words held by the search")
	if err := a.setup(fs, cfgPath, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}
	start, err := word.Parse(fs.Arg(0))
	if err != nil {
		return err
	}

	ctx, cancel := a.newContext()
	defer cancel()
	res, err := explore.Explore(start,
		explore.WithContext(ctx),
		explore.WithMaxLength(*maxLen),
		explore.WithMaxStates(*maxStates))
	if err != nil {
		return err
	}

	c := canon.Canonical(start)
	fmt.Fprintf(a.stdout, "reached: %d\nshortest: %s\ncanonical: %s\n", len(res.Order), res.Shortest(), c)
	tr, err := res.PathTo(c)
	if err != nil {
		fmt.Fprintln(a.stdout, "canonical form not reached; raise -max-len")
		return nil
	}
	cur := start
	for _, s := range tr {
		fmt.Fprintln(a.stdout, renderStep(cur, s, a.color))
		if cur, err = s.Apply(cur); err != nil {
			return err
		}
	}
	return nil
}
