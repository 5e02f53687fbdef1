package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rjkroege/picroscope/canvas"
	"github.com/rjkroege/picroscope/draw"
	"github.com/rjkroege/picroscope/osdtest"
	"github.com/rjkroege/picroscope/settings"
	"github.com/rjkroege/picroscope/sink"
)

func newTestViewer() (*viewer, *osdtest.Sink) {
	out := &osdtest.Sink{}
	c := canvas.New(image.Pt(320, 240), nil)
	return newViewer(c, out, settings.New(), osdtest.NewFace(6, 10)), out
}

func TestViewerMouse(t *testing.T) {
	v, _ := newTestViewer()
	s := v.settings

	tt := []struct {
		name     string
		buttons  int
		changed  bool
		contrast int
		iso      int
	}{
		{"press 1", button1, true, 1, 0},
		{"hold 1", button1, false, 1, 0},
		{"release", 0, false, 1, 0},
		{"press 1 again", button1, true, 2, 0},
		{"add 3 while 1 held", button1 | button3, true, 1, 0},
		{"release", 0, false, 1, 0},
		{"scroll up", scrollUp, true, 1, 100},
		{"scroll up", 0, false, 1, 100},
		{"scroll up", scrollUp, true, 1, 200},
		{"scroll down", scrollDown, true, 1, 100},
		{"button 2", button2, true, 1, 0},
	}
	for _, tc := range tt {
		if got := v.mouse(tc.buttons); got != tc.changed {
			t.Errorf("%s: changed = %v, want %v", tc.name, got, tc.changed)
		}
		if got := s.Contrast.Value(); got != tc.contrast {
			t.Errorf("%s: contrast = %d, want %d", tc.name, got, tc.contrast)
		}
		if got := s.ISO.Value(); got != tc.iso {
			t.Errorf("%s: iso = %d, want %d", tc.name, got, tc.iso)
		}
	}
}

func TestViewerKeys(t *testing.T) {
	v, out := newTestViewer()
	if err := v.redraw(); err != nil {
		t.Fatal(err)
	}
	if got, want := v.c.Len(), 1+4*3; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}

	quit, changed := v.key(draw.KeyF1)
	if quit || !changed {
		t.Errorf("F1: quit %v changed %v", quit, changed)
	}
	if err := v.redraw(); err != nil {
		t.Fatal(err)
	}
	if v.c.Len() != 0 {
		t.Errorf("panel still on the canvas after F1: %v", v.c.IDs())
	}
	if len(out.Frames) != 2 {
		t.Errorf("presented %d frames, want 2", len(out.Frames))
	}

	if quit, _ := v.key('x'); quit {
		t.Error("x quit")
	}
	for _, r := range []rune{'q', draw.KeyEscape, draw.KeyDelete} {
		if quit, _ := v.key(r); !quit {
			t.Errorf("%q did not quit", r)
		}
	}
}

func TestDemo(t *testing.T) {
	out := &osdtest.Sink{}
	d := &demo{
		c:    canvas.New(image.Pt(200, 100), nil),
		sink: out,
	}
	logo, err := demoLogo("")
	if err != nil {
		t.Fatal(err)
	}
	if err := d.run(osdtest.NewFace(6, 10), logo); err != nil {
		t.Fatalf("run: %v", err)
	}

	if out.Clears != 1 || len(out.Frames) != 6 {
		t.Errorf("clears %d frames %d, want 1 and 6", out.Clears, len(out.Frames))
	}
	if diff := cmp.Diff([]string{"logo", "raoulduke", "test"}, d.c.IDs()); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}

	b, err := d.c.Box("logo")
	if err != nil {
		t.Fatal(err)
	}
	if got := b.Position(); got != image.Pt(190, 90) {
		t.Errorf("logo at %v, want (190,90)", got)
	}
	b, err = d.c.Box("raoulduke")
	if err != nil {
		t.Fatal(err)
	}
	if got := b.Position(); got != image.Pt(10, 10) {
		t.Errorf("raoulduke at %v, want (10,10)", got)
	}
	if got := b.(*canvas.TextBox).Text(); got != "Wait,\nyou poor fool..." {
		t.Errorf("raoulduke text %q", got)
	}
}

func writeScene(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	doc := `
size: [40, 20]
background: navy
boxes:
  - id: hello
    text: hi
    padding: 1
    align: [center, middle]
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRenderCommand(t *testing.T) {
	scene := writeScene(t)
	out := filepath.Join(filepath.Dir(scene), "out.png")

	stdout, err := execute(t, "render", scene, "-o", out)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(stdout, "wrote "+out) {
		t.Errorf("stdout %q", stdout)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 40, 20) {
		t.Errorf("bounds %v", got)
	}
	// navy
	if r, g, b, _ := img.At(0, 0).RGBA(); r != 0 || g != 0 || b>>8 != 0x80 {
		t.Errorf("background %x %x %x", r, g, b)
	}
}

func TestRenderNoSink(t *testing.T) {
	if _, err := execute(t, "render", writeScene(t), "--sink", "none"); err != nil {
		t.Errorf("render --sink none: %v", err)
	}
	if _, err := execute(t, "render", writeScene(t), "--sink", "teletype"); err == nil {
		t.Error("unknown sink accepted")
	}
	if _, err := execute(t, "render", writeScene(t), "--sink", "screen"); err == nil {
		t.Error("render accepted the screen sink")
	}
	if _, err := execute(t, "render"); err == nil {
		t.Error("render without a scene accepted")
	}
}

func TestDumpCommand(t *testing.T) {
	stdout, err := execute(t, "dump", writeScene(t))
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	for _, want := range []string{
		"40x20",
		"##### TextBox: hello #####",
		`Text: "hi"`,
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("dump output lacks %q:\n%s", want, stdout)
		}
	}
}

func TestOpenSink(t *testing.T) {
	s, done, err := openSink("none", "", image.Pt(1, 1), 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*sink.Discard); !ok {
		t.Errorf("none gave %T", s)
	}
	if err := done(); err != nil {
		t.Error(err)
	}

	if _, _, err := openSink("png", "", image.Pt(1, 1), 1); err == nil {
		t.Error("png sink without output accepted")
	}
}
