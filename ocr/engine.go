// Package ocr adapts the external OCR engine the form pipeline reads from.
// The extractor only ever sees the per-page text this package returns.
package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// Engine produces one plain-text transcript per page image.
type Engine interface {
	RecognizePages(ctx context.Context, pages [][]byte) ([]string, error)
}

// TesseractEngine is the default Engine, backed by gosseract. A fresh client
// is created per page; gosseract clients are not safe for reuse across
// images with different settings.
type TesseractEngine struct {
	Languages []string
}

func NewTesseractEngine(langs ...string) *TesseractEngine {
	if len(langs) == 0 {
		langs = []string{"eng"}
	}
	return &TesseractEngine{Languages: langs}
}

func (e *TesseractEngine) RecognizePages(ctx context.Context, pages [][]byte) ([]string, error) {
	out := make([]string, 0, len(pages))
	for i, img := range pages {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		text, err := e.recognize(img)
		if err != nil {
			return nil, fmt.Errorf("ocr page %d: %w", i+1, err)
		}
		out = append(out, text)
	}
	return out, nil
}

func (e *TesseractEngine) recognize(img []byte) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(e.Languages...); err != nil {
		return "", err
	}
	if err := client.SetImageFromBytes(img); err != nil {
		return "", err
	}
	return client.Text()
}
