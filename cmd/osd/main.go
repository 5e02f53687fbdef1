// osd composes on-screen display overlays from scene files and shows them
// in a window, on a Nokia 5110 LCD, or writes them to PNG files.
package main

import (
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		color.Red("osd: %v", err)
		os.Exit(1)
	}
}
