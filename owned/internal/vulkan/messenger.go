package vulkan

import (
	"context"
	"log/slog"

	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
)

// DebugMessengerCreateInfo builds messenger options that forward validation output to logger.
// Only warnings and errors are requested; informational chatter is left off.
func DebugMessengerCreateInfo(logger *slog.Logger) ext_debug_utils.DebugUtilsMessengerCreateInfo {
	return ext_debug_utils.DebugUtilsMessengerCreateInfo{
		MessageSeverity: ext_debug_utils.SeverityError | ext_debug_utils.SeverityWarning,
		MessageType:     ext_debug_utils.TypeGeneral | ext_debug_utils.TypeValidation | ext_debug_utils.TypePerformance,
		UserCallback: func(msgType ext_debug_utils.DebugUtilsMessageTypeFlags, severity ext_debug_utils.DebugUtilsMessageSeverityFlags, data *ext_debug_utils.DebugUtilsMessengerCallbackData) bool {
			LogMessage(logger, msgType, severity, data)
			return false
		},
	}
}

// LogMessage writes a single messenger callback to logger at the level matching its severity
func LogMessage(logger *slog.Logger, msgType ext_debug_utils.DebugUtilsMessageTypeFlags, severity ext_debug_utils.DebugUtilsMessageSeverityFlags, data *ext_debug_utils.DebugUtilsMessengerCallbackData) {
	if logger == nil || data == nil {
		return
	}

	level := slog.LevelDebug
	if severity&ext_debug_utils.SeverityError != 0 {
		level = slog.LevelError
	} else if severity&ext_debug_utils.SeverityWarning != 0 {
		level = slog.LevelWarn
	}

	logger.Log(context.Background(), level, data.Message,
		slog.String("type", msgType.String()),
		slog.String("severity", severity.String()),
	)
}
