package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/hmomeni/trimview/tui"
)

func newTUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the trim view in the terminal",
		Long: `Runs the trim view in the terminal. Drag the brackets or the window with the mouse.
The logs are discarded unless --log-file is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.logFile == "" {
				opts.log.SetOutput(io.Discard)
			}
			conf, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			c, err := opts.newController(conf)
			if err != nil {
				return err
			}
			style, err := conf.Style.Parse()
			if err != nil {
				return err
			}
			configs, err := opts.watchConfig(cmd)
			if err != nil {
				return err
			}

			m := tui.New(c, conf.Playback.Advance.Duration, opts.log)
			m.SetStyle(style)
			return tui.Run(m, configs)
		},
	}
}
