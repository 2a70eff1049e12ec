package ports

import "io"

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(err error)

	// SetVerbose enables debug messages.
	SetVerbose(enable bool)
	// SetJSON switches between JSON and pretty logging.
	SetJSON(enable bool)
	// SetOutput redirects log output. A nil writer means stderr.
	SetOutput(w io.Writer)
}
