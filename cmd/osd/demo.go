package main

import (
	"image"
	"log"
	"time"

	"github.com/rjkroege/picroscope/canvas"
	"github.com/rjkroege/picroscope/scene"
	"github.com/rjkroege/picroscope/typeface"
	"github.com/spf13/cobra"
	"golang.org/x/image/colornames"
	xdraw "golang.org/x/image/draw"
)

type demoFlags struct {
	sink     string
	output   string
	zoom     int
	pause    time.Duration
	font     string
	fontSize float64
	logo     string
}

func newDemoCommand() *cobra.Command {
	flags := &demoFlags{}

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted sequence exercising every canvas operation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			face, err := new(typeface.Loader).Face(flags.font, flags.fontSize)
			if err != nil {
				return err
			}
			logo, err := demoLogo(flags.logo)
			if err != nil {
				return err
			}
			size := image.Pt(200, 100)
			out, done, err := openSink(flags.sink, flags.output, size, flags.zoom)
			if err != nil {
				return err
			}
			defer done()

			d := &demo{
				c:     canvas.New(size, colornames.Grey),
				sink:  out,
				pause: flags.pause,
			}
			return d.run(face, logo)
		},
	}

	demoCmd.Flags().StringVarP(&flags.sink, "sink", "s", "png", "Where to show frames: png, screen, lcd or none")
	demoCmd.Flags().StringVarP(&flags.output, "output", "o", "demo-%02d.png", "PNG file pattern for the png sink")
	demoCmd.Flags().IntVarP(&flags.zoom, "zoom", "z", 4, "Pixel size on the screen sink")
	demoCmd.Flags().DurationVar(&flags.pause, "pause", 500*time.Millisecond, "Time each frame is shown")
	demoCmd.Flags().StringVar(&flags.font, "font", "goregular", "Font: default, goregular or a .ttf path")
	demoCmd.Flags().Float64Var(&flags.fontSize, "font-size", 18, "Font size in points")
	demoCmd.Flags().StringVar(&flags.logo, "logo", "", "Image for the logo box (a green square if empty)")

	return demoCmd
}

func demoLogo(path string) (image.Image, error) {
	if path != "" {
		return scene.LoadImage(path)
	}
	sq := image.NewRGBA(image.Rect(0, 0, 10, 10))
	xdraw.Draw(sq, sq.Bounds(), image.NewUniform(colornames.Green), image.Point{}, xdraw.Src)
	return sq, nil
}

// demo walks a canvas through adding, aligning, inverting, moving,
// editing, reprioritising and deleting boxes, presenting after each step.
type demo struct {
	c     *canvas.Canvas
	sink  canvas.Sink
	pause time.Duration
}

func (d *demo) run(face typeface.Face, logo image.Image) error {
	c := d.c
	steps := []struct {
		name string
		do   func() error
	}{
		{"add", func() error {
			if err := c.AddImageBox("logo", logo, 8); err != nil {
				return err
			}
			if err := c.Align("logo", canvas.Right, canvas.Bottom); err != nil {
				return err
			}
			if err := c.AddTextBox("raoulduke", "This is\nBat country!",
				canvas.WithTextAlign(typeface.AlignCenter),
				canvas.WithFrameWidth(1),
				canvas.WithPriority(1),
				canvas.WithBoxColor(colornames.Yellowgreen),
				canvas.WithFace(face)); err != nil {
				return err
			}
			if err := c.AddTextBox("drgonzo", "Get your\nhead straight.",
				canvas.WithTextAlign(typeface.AlignLeft),
				canvas.WithFrameWidth(3),
				canvas.WithPriority(10),
				canvas.WithTextColor(colornames.Purple),
				canvas.WithFace(face)); err != nil {
				return err
			}
			if err := c.AddTextBox("test", "Minimal test"); err != nil {
				return err
			}
			c.LogBoxes()
			return nil
		}},
		{"align", func() error {
			if err := c.Align("drgonzo", canvas.Center, canvas.Middle); err != nil {
				return err
			}
			return c.Align("raoulduke", canvas.Right, canvas.Bottom)
		}},
		{"invert", func() error {
			return c.Invert("drgonzo")
		}},
		{"move", func() error {
			if err := c.SetPosition("raoulduke", image.Pt(10, 10)); err != nil {
				return err
			}
			return c.Shift("drgonzo", image.Pt(-5, 20))
		}},
		{"edit", func() error {
			if err := c.EditTextBox("raoulduke",
				canvas.WithText("Wait,\nyou poor fool..."),
				canvas.WithTextAlign(typeface.AlignRight),
				canvas.WithFrameWidth(0),
				canvas.WithBoxColor(colornames.Orange)); err != nil {
				return err
			}
			return c.SetPriority("drgonzo", 0)
		}},
		{"delete", func() error {
			return c.DeleteBox("drgonzo")
		}},
	}

	if err := d.sink.Clear(); err != nil {
		return err
	}
	for i, st := range steps {
		if err := st.do(); err != nil {
			return err
		}
		log.Printf("demo: %s (%d boxes)", st.name, c.Len())
		if err := c.Present(d.sink); err != nil {
			return err
		}
		if i < len(steps)-1 {
			time.Sleep(d.pause)
		}
	}
	return nil
}
