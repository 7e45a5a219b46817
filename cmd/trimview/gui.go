package main

import (
	"os"

	"gioui.org/app"
	"github.com/spf13/cobra"

	"github.com/hmomeni/trimview/gui"
)

func newGUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the trim view in a window (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd, opts)
		},
	}
}

// runGUI never returns on success: app.Main takes over the main goroutine and the
// process exits once the window is closed.
func runGUI(cmd *cobra.Command, opts *options) error {
	conf, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}
	c, err := opts.newController(conf)
	if err != nil {
		return err
	}
	w, err := gui.NewWindow(c, conf, opts.log)
	if err != nil {
		return err
	}
	configs, err := opts.watchConfig(cmd)
	if err != nil {
		return err
	}
	w.Watch(configs)

	go func() {
		if err := w.Run(cmd.Context()); err != nil {
			opts.log.WithError(err).Error("window closed with an error")
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
	return nil
}
