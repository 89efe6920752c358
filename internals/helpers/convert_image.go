// file: internals/helpers/convert_image.go
package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"net/http"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	// light guard before decode; OSS has its own hard limit
	maxImageUploadSize = 5 * 1024 * 1024

	webpMaxW    = 1600
	webpMaxH    = 1600
	webpQuality = 80
)

// ConvertMultipartToWebP decodes an uploaded jpeg/png/webp image, downscales it
// keep-aspect to at most 1600x1600 and re-encodes as lossy webp.
func ConvertMultipartToWebP(fh *multipart.FileHeader) ([]byte, error) {
	if fh.Size > maxImageUploadSize {
		return nil, fmt.Errorf("image exceeds %dKB limit", maxImageUploadSize/1024)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(src); err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	img, err := decodeImage(buf.Bytes())
	if err != nil {
		return nil, err
	}

	img = imaging.Fit(img, webpMaxW, webpMaxH, imaging.CatmullRom)

	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("webp encode: %w", err)
	}
	return out.Bytes(), nil
}

func decodeImage(all []byte) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	if ct == "image/webp" {
		return webp.Decode(bytes.NewReader(all))
	}
	img, _, err := image.Decode(bytes.NewReader(all))
	if err != nil {
		return nil, fmt.Errorf("unsupported image format (%s)", ct)
	}
	return img, nil
}
