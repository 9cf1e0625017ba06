package logger

import "go.uber.org/zap"

// New builds the process logger. Production environments get JSON output on
// stdout; anything else gets the human-readable development encoder.
func New(env string) (*zap.Logger, error) {
	if env == "production" {
		config := zap.NewProductionConfig()
		config.OutputPaths = []string{"stdout"}
		return config.Build()
	}

	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{"stdout"}
	return config.Build()
}
