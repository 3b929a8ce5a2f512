package output

import "context"

type RendererPort interface {
	// RenderPage loads the URL in a fresh browser context, waits for script
	// execution and returns the question text: the #result element when
	// present, otherwise the full rendered document reduced to text.
	RenderPage(ctx context.Context, url string) (string, error)

	// Screenshot renders the URL and captures a JPEG of the viewport.
	Screenshot(ctx context.Context, url string) ([]byte, error)
}
