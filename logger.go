package binwrite

import (
	"go.uber.org/zap"

	"github.com/arloliu/binwrite/internal/logging"
)

// SetLogger routes binwrite's diagnostic logging to l. Logging is disabled by
// default; passing nil disables it again. Encoding paths never log, only
// stream setup, teardown and rejected seeks do.
func SetLogger(l *zap.Logger) {
	logging.SetLogger(l)
}
