package main

import (
	"blockrun/config"
	"blockrun/conformance"
	"blockrun/eval"
	"blockrun/report"
	"blockrun/trace"
	"flag"
	"fmt"
	"io"
	"os"

	"fortio.org/log"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process exit, so it can be driven from tests
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("blockrun", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "YAML config file")
	logLevel := fs.String("loglevel", "", "Log level (debug, verbose, info, warning, error)")

	// Trace flags
	traceEnabled := fs.Bool("trace", false, "Enable execution tracing")
	traceFilter := fs.String("trace-filter", "", "Trace filter pattern (glob over DISPLAY, DECLARE, EXPR)")

	persist := fs.Bool("persist", false, "Keep variables across the given files instead of resetting per file")
	showVars := fs.Bool("vars", false, "Print the variable store after each run")
	check := fs.String("check", "", "Run a YAML conformance suite file or directory instead of programs")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: blockrun [flags] [file ...]")
		fmt.Fprintln(stderr, "Reads the program from stdin when no file is given.")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		cfg = loaded
	}

	// Flags given explicitly win over the config file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "loglevel":
			cfg.LogLevel = *logLevel
		case "trace":
			cfg.Trace = *traceEnabled
		case "trace-filter":
			cfg.TraceFilter = *traceFilter
		case "persist":
			cfg.PersistStore = *persist
		case "vars":
			cfg.ShowStore = *showVars
		}
	})

	lvl, err := cfg.Level()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	log.SetLogLevel(lvl)

	// Initialize tracer
	filters := trace.ParseFilters(cfg.TraceFilter)
	trace.Init(cfg.Trace, filters, stderr)
	if cfg.Trace {
		log.Infof("Tracing enabled (filters: %v)", filters)
	}

	if *check != "" {
		return runSuites(*check, stdout)
	}

	var sources []report.Source
	for _, path := range fs.Args() {
		sources = append(sources, report.FileSource{Path: path})
	}
	if len(sources) == 0 {
		sources = append(sources, report.ReaderSource{Label: "stdin", Reader: stdin})
	}

	var opts []eval.Option
	if cfg.PersistStore {
		opts = append(opts, eval.WithPersistentStore())
	}
	interp := eval.NewInterpreter(opts...)
	sink := report.NewConsoleSink(stdout, stderr)

	for _, src := range sources {
		text, err := src.Read()
		if err != nil {
			log.Errf("%v", err)
			return 1
		}

		log.LogVf("Running %s", src.Name())
		outcome := interp.Run(text)
		if err := sink.Deliver(src.Name(), outcome); err != nil {
			log.Errf("%s: %v", src.Name(), err)
			return 1
		}

		if cfg.ShowStore {
			fmt.Fprintf(stdout, "--- %s: %d variables ---\n", src.Name(), interp.Store().Len())
			if err := report.DumpStore(stdout, interp.Store()); err != nil {
				log.Errf("%v", err)
				return 1
			}
		}
	}

	return 0
}

// runSuites runs YAML conformance suites and prints one line per failure
func runSuites(path string, stdout io.Writer) int {
	info, err := os.Stat(path)
	if err != nil {
		log.Errf("%v", err)
		return 1
	}

	var tests []conformance.LoadedTest
	if info.IsDir() {
		tests, err = conformance.LoadAllTests(path)
	} else {
		tests, err = conformance.LoadFile(path)
	}
	if err != nil {
		log.Errf("Failed to load tests: %v", err)
		return 1
	}

	results := conformance.NewRunner().RunAll(tests)
	for _, r := range results {
		if !r.Passed && !r.Skipped {
			fmt.Fprintf(stdout, "FAIL %s/%s: %v\n", r.Test.File, r.Test.Test.Name, r.Error)
		}
	}

	stats := conformance.ComputeStats(results)
	fmt.Fprintln(stdout, conformance.FormatStats(stats))
	log.Infof("Checked %s: %s", path, conformance.FormatStats(stats))
	if stats.Failed > 0 {
		return 1
	}
	return 0
}
