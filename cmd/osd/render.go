package main

import (
	"fmt"

	"github.com/rjkroege/picroscope/scene"
	"github.com/spf13/cobra"
)

type renderFlags struct {
	output string
	sink   string
}

func newRenderCommand() *cobra.Command {
	flags := &renderFlags{}

	renderCmd := &cobra.Command{
		Use:   "render <scene.yaml>",
		Short: "Flatten a scene and send it to a sink once",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.sink == "screen" {
				return fmt.Errorf("render shows one frame and exits; use view for the screen")
			}
			s, err := scene.LoadFile(args[0])
			if err != nil {
				return err
			}
			c, err := s.Build(nil)
			if err != nil {
				return err
			}
			out, done, err := openSink(flags.sink, flags.output, c.Size(), 1)
			if err != nil {
				return err
			}
			defer done()

			if err := c.Present(out); err != nil {
				return fmt.Errorf("present: %w", err)
			}
			if flags.sink == "png" {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", flags.output)
			}
			return nil
		},
	}

	renderCmd.Flags().StringVarP(&flags.output, "output", "o", "osd.png", "PNG file to write")
	renderCmd.Flags().StringVarP(&flags.sink, "sink", "s", "png", "Where to send the frame: png, lcd or none")

	return renderCmd
}
