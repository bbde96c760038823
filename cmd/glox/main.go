package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"git.sr.ht/~sircmpwn/getopt"

	"glox/internal/lox"
)

const usage = `Usage: glox [options] [script]

options:
  -c FILE   read configuration from FILE (default $GLOX_CONFIG or ~/.gloxrc.yml)
  -d NAME   dump debug output to stderr: tokens, ast or env (repeatable)
  -e SRC    run SRC instead of a script or the prompt
  -h        show this help
`

func main() {
	os.Exit(realMain(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func realMain(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "glox: ", 0)

	opts, optind, err := getopt.Getopts(args, "c:d:e:h")
	if err != nil {
		logger.Println(err)
		fmt.Fprint(stderr, usage)
		return exitUsage
	}

	var (
		configFlag string
		dumpFlags  []string
		source     string
		haveSource bool
	)
	for _, opt := range opts {
		switch opt.Option {
		case 'c':
			configFlag = opt.Value
		case 'd':
			dumpFlags = append(dumpFlags, opt.Value)
		case 'e':
			source, haveSource = opt.Value, true
		case 'h':
			fmt.Fprint(stdout, usage)
			return exitOK
		}
	}

	rest := args[optind:]
	if len(rest) > 1 || (haveSource && len(rest) > 0) {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}

	cfg, err := loadConfig(configPath(configFlag))
	if err != nil {
		logger.Println(err)
		return exitUsage
	}
	if err := cfg.addDumps(dumpFlags...); err != nil {
		logger.Println(err)
		return exitUsage
	}

	rep := newReporter(stderr, cfg.Color)

	switch {
	case haveSource:
		return runSource(source, stdout, stderr, rep, cfg)
	case len(rest) == 1:
		return runFile(rest[0], stdout, stderr, rep, cfg, logger)
	default:
		if err := newREPL(stdin, stdout, stderr, rep, cfg).run(); err != nil {
			logger.Println(err)
			return exitIOErr
		}
		return exitOK
	}
}

func runFile(path string, stdout, stderr io.Writer, rep *reporter, cfg Config, logger *log.Logger) int {
	buff, err := os.ReadFile(path)
	if err != nil {
		logger.Println(err)
		return exitIOErr
	}

	return runSource(string(buff), stdout, stderr, rep, cfg)
}

func runSource(source string, stdout, stderr io.Writer, rep *reporter, cfg Config) int {
	err := lox.RunFresh(source, stdout, cfg.options(stderr))
	if err != nil {
		rep.report(err)
	}
	return exitCode(err)
}
