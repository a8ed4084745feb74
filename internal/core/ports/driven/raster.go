package driven

import "context"

// Rasteriser converts PDF pages into raster images for OCR input.
type Rasteriser interface {
	// Available reports whether the rasteriser can run on this host.
	// Returns domain.ErrRasteriserNotFound when the binary is absent.
	Available() error

	// Rasterise renders up to maxPages pages of the PDF at the given DPI
	// and returns PNG-encoded page images in page order.
	Rasterise(ctx context.Context, pdf []byte, dpi, maxPages int) ([][]byte, error)
}
