// Command linsolve solves a square linear system A·x = b.
//
// Usage:
//
//	linsolve [-in file|-] [-format json|yaml|toml] [-out json|yaml|toml] [-tol t]
//	linsolve -serve [-addr host:port]
//
// Settings not given as flags come from LINSOLVE_* environment variables.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/katalvlaran/linsolve/gaussjordan"
	"github.com/katalvlaran/linsolve/internal/codec"
	"github.com/katalvlaran/linsolve/internal/config"
	"github.com/katalvlaran/linsolve/internal/logging"
	"github.com/katalvlaran/linsolve/internal/metrics"
	"github.com/katalvlaran/linsolve/internal/server"
	"github.com/katalvlaran/linsolve/matrix"
)

// Exit codes.
const (
	exitOK       = 0
	exitSolve    = 1 // dimension mismatch, singular system or non-finite values
	exitUsage    = 2 // bad flags, config or document
	exitInternal = 3
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	in     string
	format string
	out    string
	tol    float64
	serve  bool
	addr   string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("linsolve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.in, "in", "-", "input document path, - for stdin")
	fs.StringVar(&o.format, "format", "", "input format ("+formatList()+"); default from -in extension, else json")
	fs.StringVar(&o.out, "out", "json", "output format ("+formatList()+")")
	fs.Float64Var(&o.tol, "tol", 0, "pivot tolerance; 0 uses LINSOLVE_TOLERANCE")
	fs.BoolVar(&o.serve, "serve", false, "run the HTTP server")
	fs.StringVar(&o.addr, "addr", "", "listen address; empty uses LINSOLVE_HTTP_ADDR")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return o, nil
}

func formatList() string {
	names := make([]string, len(codec.Formats))
	for i, f := range codec.Formats {
		names[i] = string(f)
	}

	return strings.Join(names, ", ")
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, "linsolve:", err)
		return exitUsage
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, "linsolve:", err)
		return exitUsage
	}
	if o.tol != 0 {
		cfg.Solver.Tolerance = o.tol
	}
	if o.addr != "" {
		cfg.Server.Addr = o.addr
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Development = cfg.Logging.Development
	log, err := logging.New(logCfg)
	if err != nil {
		fmt.Fprintln(stderr, "linsolve:", err)
		return exitUsage
	}
	defer func() { _ = log.Sync() }()

	solver, err := gaussjordan.New(gaussjordan.Options{
		Tolerance:   cfg.Solver.Tolerance,
		CheckFinite: cfg.Solver.CheckFinite,
		Logger:      log,
	})
	if err != nil {
		fmt.Fprintln(stderr, "linsolve:", err)
		return exitUsage
	}

	if o.serve {
		return serve(ctx, cfg, solver, log)
	}

	return solveOnce(o, solver, stdin, stdout, stderr, log)
}

func serve(ctx context.Context, cfg *config.Config, solver *gaussjordan.Solver, log *zap.Logger) int {
	srv := server.New(server.Config{
		Addr:         cfg.Server.Addr,
		MaxDimension: cfg.Server.MaxDimension,
		CORSOrigins:  cfg.Server.CORSOrigins,
	}, solver, metrics.New(), log)

	if err := srv.Run(ctx); err != nil {
		log.Error("server stopped", zap.Error(err))
		return exitInternal
	}

	return exitOK
}

func solveOnce(o options, solver *gaussjordan.Solver, stdin io.Reader, stdout, stderr io.Writer, log *zap.Logger) int {
	inFmt, err := inputFormat(o)
	if err != nil {
		fmt.Fprintln(stderr, "linsolve:", err)
		return exitUsage
	}
	outFmt, err := codec.ParseFormat(o.out)
	if err != nil {
		fmt.Fprintln(stderr, "linsolve:", err)
		return exitUsage
	}

	r := stdin
	if o.in != "-" {
		f, err := os.Open(o.in)
		if err != nil {
			fmt.Fprintln(stderr, "linsolve:", err)
			return exitUsage
		}
		defer f.Close()
		r = f
	}

	sys, err := codec.DecodeSystem(r, inFmt)
	if err != nil {
		fmt.Fprintln(stderr, "linsolve:", err)
		return solveExitCode(err)
	}

	x, err := solver.Solve(sys.A, sys.B)
	var sol codec.Solution
	if err == nil {
		sol, err = codec.NewSolution(sys, x)
	}
	if err != nil {
		log.Debug("solve failed", zap.Stringer("kind", gaussjordan.KindOf(err)), zap.Error(err))
		fmt.Fprintln(stderr, "linsolve:", err)
		return solveExitCode(err)
	}
	if err = codec.EncodeSolution(stdout, outFmt, sol); err != nil {
		fmt.Fprintln(stderr, "linsolve:", err)
		return exitInternal
	}

	return exitOK
}

// solveExitCode maps dimension, singular and non-finite failures to
// exitSolve; anything else is a usage problem.
func solveExitCode(err error) int {
	if gaussjordan.KindOf(err) != 0 || errors.Is(err, matrix.ErrNaNInf) {
		return exitSolve
	}

	return exitUsage
}

func inputFormat(o options) (codec.Format, error) {
	if o.format != "" {
		return codec.ParseFormat(o.format)
	}
	if o.in == "-" {
		return codec.JSON, nil
	}

	return codec.FormatFromPath(o.in)
}
