package optics

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger installs the logger used for diagnostics emitted by this package.
// Passing nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
