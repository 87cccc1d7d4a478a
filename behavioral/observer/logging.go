package observer

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggingObserver forwards every reading to a structured zap logger. It is
// the kind of observer a real system would attach for telemetry: it has no
// display logic, just fields.
type LoggingObserver struct {
	logger *zap.Logger
}

// NewLoggingObserver creates an observer logging through the given logger.
// A nil logger is replaced by a no-op logger so the observer is always safe
// to attach.
func NewLoggingObserver(logger *zap.Logger) *LoggingObserver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingObserver{logger: logger}
}

// Update logs the reading as a structured record.
func (o *LoggingObserver) Update(r Reading) {
	o.logger.Info("weather reading",
		zap.Float64("temperature_c", r.TemperatureC),
		zap.Float64("humidity_pct", r.Humidity),
	)
}

// NewTranscriptLogger builds a zap logger that writes compact console lines
// to w, with timestamps and callers suppressed so demo transcripts stay
// deterministic.
func NewTranscriptLogger(w io.Writer) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.CallerKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zapcore.InfoLevel,
	)
	return zap.New(core)
}
