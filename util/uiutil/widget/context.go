package widget

import (
	"image/draw"
)

type ImageContext interface {
	Image() draw.Image
}

//----------

// Image context over a fixed image.
type ImgContext struct {
	Img draw.Image
}

func (ctx *ImgContext) Image() draw.Image {
	return ctx.Img
}
