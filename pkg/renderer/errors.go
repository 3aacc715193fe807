package renderer

import "errors"

var (
	ErrInvalidSamples    = errors.New("renderer: samples per pixel must be positive")
	ErrInvalidDimensions = errors.New("renderer: image dimensions must be positive")
	ErrInterrupted       = errors.New("renderer: interrupted while rendering")
)
