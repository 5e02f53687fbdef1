package canvas

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// ImageBox shows a picture supplied by the caller.
type ImageBox struct {
	boxBase
}

var _ = Box((*ImageBox)(nil))

func newImageBox(img image.Image, priority int) *ImageBox {
	b := &ImageBox{
		boxBase: boxBase{
			priority: priority,
			visible:  true,
		},
	}
	b.changeImage(img)
	return b
}

func (b *ImageBox) Kind() Kind { return KindImage }

// changeImage replaces the picture. The size follows the new picture; the
// position and priority are kept.
func (b *ImageBox) changeImage(img image.Image) {
	b.raster = toRGBA(img)
	b.size = b.raster.Bounds().Size()
}

// toRGBA copies img into a new RGBA buffer whose bounds start at (0, 0).
func toRGBA(img image.Image) *image.RGBA {
	sr := img.Bounds()
	dst := image.NewRGBA(image.Rectangle{Max: sr.Size()})
	xdraw.Copy(dst, image.Point{}, img, sr, xdraw.Src, nil)
	return dst
}
