package lcd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"golang.org/x/sys/unix"
)

// From linux/spi/spidev.h.
const (
	spiIocWrMode        = 0x40016b01
	spiIocWrBitsPerWord = 0x40016b03
	spiIocWrMaxSpeedHz  = 0x40046b04
)

const gpioRoot = "/sys/class/gpio"

// Open initialises the panel described by cfg.
func Open(cfg Config) (*PCD8544, error) {
	b, err := openSPI(cfg)
	if err != nil {
		return nil, err
	}
	return newPCD8544(b, cfg)
}

type spiBus struct {
	fd    int
	dc    *gpio
	rst   *gpio
	pulse time.Duration
}

func openSPI(cfg Config) (*spiBus, error) {
	fd, err := unix.Open(cfg.Device, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("lcd: open %s: %w", cfg.Device, err)
	}
	b := &spiBus{fd: fd, pulse: cfg.ResetPulse}

	for _, s := range []struct {
		name string
		req  uint
		v    int
	}{
		{"mode", spiIocWrMode, 0},
		{"bits per word", spiIocWrBitsPerWord, 8},
		{"speed", spiIocWrMaxSpeedHz, int(cfg.SpeedHz)},
	} {
		if err := unix.IoctlSetPointerInt(fd, s.req, s.v); err != nil {
			b.Close()
			return nil, fmt.Errorf("lcd: set spi %s: %w", s.name, err)
		}
	}

	if b.dc, err = exportGPIO(cfg.DC); err != nil {
		b.Close()
		return nil, err
	}
	if b.rst, err = exportGPIO(cfg.RST); err != nil {
		b.Close()
		return nil, err
	}
	return b, nil
}

func (b *spiBus) write(p []byte) error {
	for len(p) > 0 {
		n, err := unix.Write(b.fd, p)
		if err != nil {
			return err
		}
		p = p[n:]
	}
	return nil
}

func (b *spiBus) command(p ...byte) error {
	if err := b.dc.set(false); err != nil {
		return err
	}
	return b.write(p)
}

func (b *spiBus) data(p []byte) error {
	if err := b.dc.set(true); err != nil {
		return err
	}
	return b.write(p)
}

func (b *spiBus) reset() error {
	if err := b.rst.set(false); err != nil {
		return err
	}
	time.Sleep(b.pulse)
	return b.rst.set(true)
}

func (b *spiBus) Close() error {
	var first error
	for _, g := range []*gpio{b.dc, b.rst} {
		if g == nil {
			continue
		}
		if err := g.Close(); err != nil && first == nil {
			first = err
		}
	}
	if b.fd >= 0 {
		if err := unix.Close(b.fd); err != nil && first == nil {
			first = err
		}
		b.fd = -1
	}
	return first
}

// gpio is an output line driven through sysfs.
type gpio struct {
	n     int
	value *os.File
}

func exportGPIO(n int) (*gpio, error) {
	dir := filepath.Join(gpioRoot, "gpio"+strconv.Itoa(n))
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.WriteFile(filepath.Join(gpioRoot, "export"), []byte(strconv.Itoa(n)), 0); err != nil {
			return nil, fmt.Errorf("lcd: export gpio %d: %w", n, err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "direction"), []byte("out"), 0); err != nil {
		return nil, fmt.Errorf("lcd: gpio %d direction: %w", n, err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "value"), os.O_WRONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("lcd: gpio %d: %w", n, err)
	}
	return &gpio{n: n, value: f}, nil
}

func (g *gpio) set(high bool) error {
	v := []byte("0")
	if high {
		v[0] = '1'
	}
	if _, err := g.value.WriteAt(v, 0); err != nil {
		return fmt.Errorf("lcd: gpio %d: %w", g.n, err)
	}
	return nil
}

func (g *gpio) Close() error {
	return g.value.Close()
}
