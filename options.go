package tint

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	r := tint.NewRenderer(
//	    tint.WithSupersample(3),
//	    tint.WithMaxSurfacePixels(2048*2048),
//	)
type RendererOption func(*rendererOptions)

type rendererOptions struct {
	supersample      int
	maxSurfacePixels int
}

func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		supersample:      2,
		maxSurfacePixels: 4096 * 4096,
	}
}

// WithSupersample sets the supersample factor for boundary pixels,
// clamped to [1, 3]. Factor n evaluates n*n sub-pixel samples per
// boundary pixel. The default is 2.
func WithSupersample(n int) RendererOption {
	return func(o *rendererOptions) {
		o.supersample = n
	}
}

// WithMaxSurfacePixels sets the largest scratch surface, in pixels, a
// single draw may rent. Draws that would exceed it are skipped silently.
// The default is 4096*4096.
func WithMaxSurfacePixels(n int) RendererOption {
	return func(o *rendererOptions) {
		if n > 0 {
			o.maxSurfacePixels = n
		}
	}
}
