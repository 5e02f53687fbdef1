package main

import (
	"fmt"
	"image"
	"log"
	"runtime"

	"github.com/rjkroege/picroscope/canvas"
	"github.com/rjkroege/picroscope/draw"
	"github.com/rjkroege/picroscope/panel"
	"github.com/rjkroege/picroscope/scene"
	"github.com/rjkroege/picroscope/settings"
	"github.com/rjkroege/picroscope/sink"
	"github.com/rjkroege/picroscope/typeface"
	"github.com/spf13/cobra"
)

// Mouse buttons as reported in draw.Mouse.Buttons.
const (
	button1 = 1 << iota
	button2
	button3
	scrollUp
	scrollDown
)

type viewFlags struct {
	zoom     int
	noPanel  bool
	font     string
	fontSize float64
}

func newViewCommand() *cobra.Command {
	flags := &viewFlags{}

	viewCmd := &cobra.Command{
		Use:   "view [scene.yaml]",
		Short: "Show a scene in a window with the camera settings panel",
		Long: `Show a scene in a window with the camera settings panel on top.

Button 1 and 3 raise and lower the contrast, button 2 resets the ISO and
the scroll wheel steps it. F1 toggles the panel; Esc, q or Del quit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := canvas.New(image.Pt(320, 240), nil)
			if len(args) == 1 {
				s, err := scene.LoadFile(args[0])
				if err != nil {
					return err
				}
				if c, err = s.Build(nil); err != nil {
					return err
				}
			}
			face, err := new(typeface.Loader).Face(flags.font, flags.fontSize)
			if err != nil {
				return err
			}

			errch := make(chan error, 1)
			screen, err := sink.OpenScreen(errch, "osd", c.Size(), flags.zoom)
			if err != nil {
				return err
			}
			v := newViewer(c, screen, settings.New(), face)
			if flags.noPanel {
				v.panelShown = false
			}
			return v.loop(screen, errch)
		},
	}

	viewCmd.Flags().IntVarP(&flags.zoom, "zoom", "z", 2, "Pixel size")
	viewCmd.Flags().BoolVar(&flags.noPanel, "no-panel", false, "Start with the settings panel hidden")
	viewCmd.Flags().StringVar(&flags.font, "font", "goregular", "Panel font: default, goregular or a .ttf path")
	viewCmd.Flags().Float64Var(&flags.fontSize, "font-size", 10, "Panel font size in points")

	return viewCmd
}

// viewer applies input to the settings and keeps the canvas and sink in
// step. All of its methods run on the event loop goroutine.
type viewer struct {
	c        *canvas.Canvas
	out      canvas.Sink
	settings *settings.Settings
	panel    *panel.Panel

	panelShown bool
	buttons    int // buttons down at the last mouse event
}

func newViewer(c *canvas.Canvas, out canvas.Sink, s *settings.Settings, face typeface.Face) *viewer {
	return &viewer{
		c:          c,
		out:        out,
		settings:   s,
		panel:      panel.New(c, face),
		panelShown: true,
	}
}

// redraw rebuilds the panel if shown and presents the canvas.
func (v *viewer) redraw() error {
	if v.panelShown {
		if err := v.panel.Update(v.settings.Params()); err != nil {
			return err
		}
	} else if err := v.panel.Remove(); err != nil {
		return err
	}
	return v.c.Present(v.out)
}

// mouse handles a mouse event. Only buttons that went down since the
// previous event act. It reports whether anything changed.
func (v *viewer) mouse(buttons int) bool {
	pressed := buttons &^ v.buttons
	v.buttons = buttons
	if pressed == 0 {
		return false
	}

	s := v.settings
	for _, a := range []struct {
		button int
		item   *settings.Item
		dir    settings.Direction
	}{
		{button1, s.Contrast, settings.Up},
		{button2, s.ISO, settings.Reset},
		{button3, s.Contrast, settings.Down},
		{scrollUp, s.ISO, settings.Up},
		{scrollDown, s.ISO, settings.Down},
	} {
		if pressed&a.button != 0 {
			a.item.Step(a.dir)
		}
	}
	return true
}

// key handles a keypress and reports whether the viewer should quit and
// whether anything changed.
func (v *viewer) key(r rune) (quit, changed bool) {
	switch r {
	case 'q', draw.KeyEscape, draw.KeyDelete:
		return true, false
	case draw.KeyF1:
		v.panelShown = !v.panelShown
		log.Printf("panel shown: %v", v.panelShown)
		return false, true
	}
	return false, false
}

// loop is the event loop. Like the draw library it needs its own OS
// thread.
func (v *viewer) loop(screen *sink.Screen, errch <-chan error) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	d := screen.Display()
	mousectl := d.InitMouse()
	keyboardctl := d.InitKeyboard()

	if err := v.redraw(); err != nil {
		return err
	}
	for {
		var (
			changed bool
			err     error
		)
		select {
		case <-mousectl.Resize:
			err = screen.Resize()
		case m := <-mousectl.C:
			changed = v.mouse(m.Buttons)
		case r := <-keyboardctl.C:
			var quit bool
			quit, changed = v.key(r)
			if quit {
				return nil
			}
		case err := <-errch:
			return fmt.Errorf("display: %w", err)
		}
		if err != nil {
			return err
		}
		if changed {
			if err := v.redraw(); err != nil {
				return err
			}
		}
	}
}
