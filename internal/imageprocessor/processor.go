package imageprocessor

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ErrUnreadable - содержимое не декодируется как картинка
var ErrUnreadable = errors.New("image cannot be decoded")

// Size - ограничение по ширине и высоте
type Size struct {
	Width  int
	Height int
}

var (
	// Ограничения для каталогов медиа
	SizeIcon    = Size{Width: 256, Height: 256}
	SizeLogo    = Size{Width: 512, Height: 512}
	SizeService = Size{Width: 1200, Height: 1200}
	SizeProject = Size{Width: 1600, Height: 1600}
)

// Processor уменьшает загруженные картинки
type Processor struct {
	quality int // JPEG quality (1-100)
}

func NewProcessor(quality int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	return &Processor{
		quality: quality,
	}
}

// Fit уменьшает JPEG/PNG больше max с сохранением пропорций и формата.
// Картинки в пределах max, а также GIF и WebP возвращаются без изменений (resized=false).
func (p *Processor) Fit(data []byte, max Size) (out []byte, resized bool, err error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if format != "jpeg" && format != "png" {
		return data, false, nil
	}
	if cfg.Width <= max.Width && cfg.Height <= max.Height {
		return data, false, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	scaled := p.resize(img, max.Width, max.Height)

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: p.quality})
	case "png":
		err = png.Encode(&buf, scaled)
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return buf.Bytes(), true, nil
}

// resize вписывает картинку в maxWidth x maxHeight
func (p *Processor) resize(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	ratio := float64(width) / float64(height)
	newWidth := maxWidth
	newHeight := maxHeight

	if float64(maxWidth)/float64(maxHeight) > ratio {
		newWidth = int(float64(maxHeight) * ratio)
	} else {
		newHeight = int(float64(maxWidth) / ratio)
	}
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// Dimensions - ширина и высота без полного декодирования
func Dimensions(data []byte) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	return cfg.Width, cfg.Height, nil
}
