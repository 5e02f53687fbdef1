package main

import (
	"fmt"
	"image"
	"log"

	"github.com/rjkroege/picroscope/canvas"
	"github.com/rjkroege/picroscope/lcd"
	"github.com/rjkroege/picroscope/sink"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	debug bool
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "osd <command> [options]",
		Short: "Compose OSD overlays from boxes of text and images",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			canvas.Debug = flags.debug
			if flags.debug {
				log.SetFlags(log.LstdFlags | log.Lshortfile)
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Log every canvas operation")

	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newViewCommand())
	rootCmd.AddCommand(newDemoCommand())
	rootCmd.AddCommand(newDumpCommand())

	return rootCmd
}

// openSink returns the named sink and a function releasing it.
func openSink(kind, out string, size image.Point, zoom int) (canvas.Sink, func() error, error) {
	nop := func() error { return nil }
	switch kind {
	case "png":
		if out == "" {
			return nil, nil, fmt.Errorf("the png sink needs --output")
		}
		return &sink.PNG{Path: out}, nop, nil
	case "screen":
		s, err := sink.OpenScreen(nil, "osd", size, zoom)
		if err != nil {
			return nil, nil, err
		}
		return s, nop, nil
	case "lcd":
		dev, err := lcd.Open(lcd.DefaultConfig())
		if err != nil {
			return nil, nil, err
		}
		return sink.NewLCD(dev), dev.Close, nil
	case "none":
		return &sink.Discard{}, nop, nil
	}
	return nil, nil, fmt.Errorf("unknown sink %q (want png, screen, lcd or none)", kind)
}
