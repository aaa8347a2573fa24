package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Server errors
	ErrServerStart       = fmt.Errorf("failed to start server")
	ErrTemplateRender    = fmt.Errorf("failed to render template")
	ErrCardNotFound      = fmt.Errorf("recommendation card not found")
	ErrUnsupportedFormat = fmt.Errorf("unsupported output format")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
