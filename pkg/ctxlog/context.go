package ctxlog

import (
	"github.com/labi-le/wrclip/pkg/id"
	"github.com/rs/zerolog"
)

func Op(logger zerolog.Logger, op string) zerolog.Logger {
	return logger.With().Str("op", op).Logger()
}

// Transfer tags logger with a transfer id and the negotiated content type.
func Transfer(logger zerolog.Logger, transferID id.Unique, mimeType string) zerolog.Logger {
	return logger.With().
		Int64("transfer_id", transferID).
		Str("mime", mimeType).
		Logger()
}
