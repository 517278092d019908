package main

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/stovetop/internal/config"
	"github.com/hammamikhairi/stovetop/internal/logger"
)

var (
	configFile string
	verbose    bool
	quiet      bool
	logFile    string
	sampleKey  string
)

// Set up by the root pre-run for every subcommand.
var (
	cfg     *config.Config
	log     *logger.Logger
	logSink io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "stovetop",
	Short: "stovetop walks you through a recipe one step at a time",
	Long: "stovetop turns a pasted recipe into timed, spoken steps. It counts down each step,\n" +
		"suggests when a higher flame saves time and keeps track of how each cook went.",
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "path to a stovetop.yaml config file")
	pf.BoolVar(&verbose, "verbose", false, "enable verbose logging")
	pf.BoolVar(&quiet, "quiet", false, "disable all logging")
	pf.StringVar(&logFile, "log-file", "", "file to write logs to (use \"stderr\" to log to console)")
	pf.StringVar(&sampleKey, "sample", "", "use a built-in recipe instead of a file")
}

func setup(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(configFile)
	if err != nil {
		return err
	}
	cfg = c

	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = logFile
	}
	level := logger.ParseLevel(cfg.Log.Level)
	if verbose {
		level = logger.LevelVerbose
	}
	if quiet {
		level = logger.LevelOff
	}

	out := openLogOutput(cfg.Log.File, cmd.ErrOrStderr())

	// Third-party packages (the whisper transcriber among them) write to
	// the standard logger; keep them off the terminal.
	stdlog.SetOutput(out)
	stdlog.SetFlags(stdlog.Ltime)

	log = logger.New(level, out)
	return nil
}

func teardown(*cobra.Command, []string) error {
	if log != nil {
		_ = log.Sync()
	}
	if logSink != nil {
		err := logSink.Close()
		logSink = nil
		return err
	}
	return nil
}

// openLogOutput directs logs to a file by default so the display stays
// clean. Falls back to stderr when the file cannot be opened.
func openLogOutput(path string, stderr io.Writer) io.Writer {
	if path == "" || path == "stderr" {
		return stderr
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", path, err)
		return stderr
	}
	logSink = f
	return f
}
