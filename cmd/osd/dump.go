package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/rjkroege/picroscope/scene"
	"github.com/spf13/cobra"
)

func newDumpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <scene.yaml>",
		Short: "Print the boxes a scene builds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scene.LoadFile(args[0])
			if err != nil {
				return err
			}
			c, err := s.Build(nil)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			header := color.New(color.FgCyan, color.Bold)
			fmt.Fprintf(w, "Canvas: %s %s\n",
				color.CyanString("%dx%d", c.Size().X, c.Size().Y),
				color.HiBlackString("(%d boxes)", c.Len()))
			for _, id := range c.IDs() {
				b, err := c.Box(id)
				if err != nil {
					return err
				}
				d, err := c.Dump(id)
				if err != nil {
					return err
				}
				header.Fprintf(w, "##### %s: %s #####\n", b.Kind(), id)
				fmt.Fprintln(w, d)
			}
			return nil
		},
	}
}
