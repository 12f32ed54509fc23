// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package imaging provides thumbnail generation for uploaded images.
// Thumbnails narrower than the source are generated; upscaling is never
// performed. Output is always JPEG regardless of the source format.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	// DefaultThumbWidth is the target width for media library thumbnails.
	DefaultThumbWidth = 320

	// thumbQuality is the JPEG quality for encoded thumbnails.
	thumbQuality = 80
)

// Thumbnail holds a generated thumbnail ready for upload.
type Thumbnail struct {
	Width       int
	Height      int
	Data        []byte // JPEG-encoded image bytes
	ContentType string // Always "image/jpeg"
}

// CanThumbnail reports whether thumbnails are generated for the given
// content type. GIF is excluded to preserve animation; SVG is vector.
func CanThumbnail(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/png", "image/webp":
		return true
	}
	return false
}

// Generate decodes the source image and produces a thumbnail no wider
// than maxWidth. Sources already narrower than maxWidth are re-encoded
// at their original size.
func Generate(original []byte, maxWidth int) (*Thumbnail, error) {
	if maxWidth <= 0 {
		maxWidth = DefaultThumbWidth
	}

	src, _, err := image.Decode(bytes.NewReader(original))
	if err != nil {
		return nil, fmt.Errorf("imaging: decode: %w", err)
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("imaging: empty image %dx%d", width, height)
	}

	targetWidth := width
	targetHeight := height
	if width > maxWidth {
		targetWidth = maxWidth
		targetHeight = height * maxWidth / width
		if targetHeight < 1 {
			targetHeight = 1
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: thumbQuality}); err != nil {
		return nil, fmt.Errorf("imaging: encode: %w", err)
	}

	return &Thumbnail{
		Width:       targetWidth,
		Height:      targetHeight,
		Data:        buf.Bytes(),
		ContentType: "image/jpeg",
	}, nil
}
