package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hmomeni/trimview"
)

// options holds the flags shared by every command.
type options struct {
	configPath string
	logLevel   string
	logFile    string

	max       int
	trimStart int
	trim      int
	minTrim   int
	maxTrim   int
	advance   time.Duration
	watch     bool

	log *logrus.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{log: logrus.New()}

	root := &cobra.Command{
		Use:           "trimview",
		Short:         "Select a trim window over a media range",
		Long:          fmt.Sprintf(HelpBanner, Version),
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setupLogger(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd, opts)
		},
	}

	f := root.PersistentFlags()
	f.StringVarP(&opts.configPath, "config", "c", trimview.DefaultConfigPath(), "Configuration file")
	f.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	f.StringVar(&opts.logFile, "log-file", "", "Write the logs to this file instead of stderr")
	f.IntVar(&opts.max, "max", 0, "Length of the whole range")
	f.IntVar(&opts.trimStart, "trim-start", 0, "Start of the trim window")
	f.IntVar(&opts.trim, "trim", 0, "Length of the trim window")
	f.IntVar(&opts.minTrim, "min-trim", 0, "Minimum length of the trim window")
	f.IntVar(&opts.maxTrim, "max-trim", 0, "Maximum length of the trim window")
	f.DurationVar(&opts.advance, "advance", 0, "Progress auto-advance period, 0 disables it")
	f.BoolVarP(&opts.watch, "watch", "w", false, "Reload the configuration file when it changes")

	root.AddCommand(
		newGUICmd(opts),
		newTUICmd(opts),
		newSnapshotCmd(opts),
		newConfigCmd(opts),
	)
	return root
}

func (o *options) setupLogger(stderr io.Writer) error {
	level, err := logrus.ParseLevel(o.logLevel)
	if err != nil {
		return err
	}
	o.log.SetLevel(level)
	o.log.SetOutput(stderr)
	o.log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if o.logFile != "" {
		f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("couldn't open the log file: %w", err)
		}
		o.log.SetOutput(f)
	}
	return nil
}

// loadConfig reads the configuration file and applies the flags set on the command line.
// A missing file falls back to the defaults unless its path was given explicitly.
func (o *options) loadConfig(cmd *cobra.Command) (*trimview.Config, error) {
	conf, err := trimview.LoadConfig(o.configPath)
	switch {
	case err == nil:
		o.log.WithField("path", o.configPath).Debug("configuration loaded")
	case errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config"):
		o.log.WithField("path", o.configPath).Debug("no configuration file, using defaults")
		conf = trimview.DefaultConfig()
	default:
		return nil, err
	}

	flags := cmd.Flags()
	override := func(name string, dst *int, v int) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	override("max", &conf.Range.Max, o.max)
	override("trim-start", &conf.Range.TrimStart, o.trimStart)
	override("trim", &conf.Range.Trim, o.trim)
	override("min-trim", &conf.Range.MinTrim, o.minTrim)
	override("max-trim", &conf.Range.MaxTrim, o.maxTrim)
	if flags.Changed("advance") {
		conf.Playback.Advance.Duration = o.advance
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// newController returns a controller configured by conf. Like the sample host of the
// widget, every change of the window rewinds the progress when ResetOnChange is set.
func (o *options) newController(conf *trimview.Config) (*trimview.Controller, error) {
	c := trimview.NewController()
	if err := conf.Apply(c); err != nil {
		return nil, err
	}
	c.SetListener(sampleListener(c, o.log, conf.Playback.ResetOnChange))
	return c, nil
}

func sampleListener(c *trimview.Controller, log logrus.FieldLogger, reset bool) trimview.Listener {
	changed := func(edge string) func(trimStart, trim int) {
		return func(trimStart, trim int) {
			log.WithFields(logrus.Fields{"trimStart": trimStart, "trim": trim}).Debugf("%s changed", edge)
			if reset {
				_ = c.SetProgress(0)
			}
		}
	}
	return trimview.ListenerFuncs{
		DragStarted: func(trimStart, trim int) {
			log.WithFields(logrus.Fields{"trimStart": trimStart, "trim": trim}).Debug("drag started")
		},
		LeftEdgeChanged:  changed("left edge"),
		RightEdgeChanged: changed("right edge"),
		RangeChanged:     changed("range"),
		DragStopped: func(trimStart, trim int) {
			log.WithFields(logrus.Fields{"trimStart": trimStart, "trim": trim}).Debug("drag stopped")
		},
	}
}

// watchConfig starts the configuration watcher when --watch is set. Load errors are logged.
func (o *options) watchConfig(cmd *cobra.Command) (<-chan *trimview.Config, error) {
	if !o.watch {
		return nil, nil
	}
	configs, errs, err := trimview.WatchConfig(cmd.Context(), o.configPath)
	if err != nil {
		return nil, fmt.Errorf("couldn't watch %s: %w", o.configPath, err)
	}
	go func() {
		for err := range errs {
			o.log.WithError(err).Warn("configuration reload failed")
		}
	}()
	o.log.WithField("path", o.configPath).Info("watching the configuration file")
	return configs, nil
}
