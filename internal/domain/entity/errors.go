package entity

import "errors"

// Failure classes. Render and model-query failures end the current chain run;
// download and parse failures degrade to fallback behavior at the call site.
var (
	ErrRender     = errors.New("page render failed")
	ErrDownload   = errors.New("data download failed")
	ErrModelQuery = errors.New("model query failed")
	ErrSubmission = errors.New("answer submission failed")
)
