package logic

import (
	"bluebot/shared"
	"bytes"
	"fmt"
	"golang.org/x/image/draw"
	"image"
	"image/jpeg"
	_ "image/png"
)

const mimeJpeg = "image/jpeg"

type shrinkPass struct {
	width   int
	quality int
}

var shrinkPasses = []shrinkPass{
	{900, 80},
	{800, 70},
	{700, 60},
}

// imageShrinker brings generated images under the upload ceiling by downscaling and recompressing as JPEG.
type imageShrinker struct {
	logger   shared.ILogger
	maxBytes int
}

func newImageShrinker(logger shared.ILogger, maxBytes int) *imageShrinker {
	return &imageShrinker{logger: logger, maxBytes: maxBytes}
}

// shrink returns data unchanged if it already fits. Otherwise it runs the passes in order and
// returns the first result under the ceiling, or the last pass if none fits.
func (is *imageShrinker) shrink(data []byte, mimeType string) ([]byte, string, error) {
	if len(data) <= is.maxBytes {
		return data, mimeType, nil
	}
	is.logger.Infof("Image too large (%.2f KB), resizing", float64(len(data))/1024)

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}

	var out []byte
	for _, pass := range shrinkPasses {
		out, err = encodeScaled(src, pass.width, pass.quality)
		if err != nil {
			return nil, "", err
		}
		if len(out) <= is.maxBytes {
			is.logger.Infof("Resized to %dpx q%d: %.2f KB", pass.width, pass.quality, float64(len(out))/1024)
			return out, mimeJpeg, nil
		}
		is.logger.Infof("Still too large at %dpx q%d: %.2f KB", pass.width, pass.quality, float64(len(out))/1024)
	}
	is.logger.Warnf("Image exceeds %d bytes after all passes; uploading %d bytes", is.maxBytes, len(out))
	return out, mimeJpeg, nil
}

// Never enlarges.
func encodeScaled(src image.Image, width, quality int) ([]byte, error) {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > width {
		h = h * width / w
		w = width
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
