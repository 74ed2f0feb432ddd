package logging

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Separate files so the assistant request log and error log can be tailed
// independently of general application noise.
var (
	AppLogger     *zap.Logger
	RequestLogger *zap.Logger
	TimerLogger   *zap.Logger
	ErrorLogger   *zap.Logger
)

func newFileLogger(encoder zapcore.Encoder, filename string, maxSize, maxAge int, level zapcore.Level) *zap.Logger {
	core := zapcore.NewCore(encoder,
		zapcore.AddSync(&lumberjack.Logger{
			Filename: filename, MaxSize: maxSize, MaxAge: maxAge, Compress: true,
		}),
		level,
	)
	return zap.New(core)
}

func InitLogger() {
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		panic("failed to create logs directory: " + err.Error())
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	AppLogger = newFileLogger(encoder, "./logs/app.log", 100, 28, zap.InfoLevel)
	RequestLogger = newFileLogger(encoder, "./logs/request.log", 50, 7, zap.InfoLevel)
	TimerLogger = newFileLogger(encoder, "./logs/timer.log", 50, 7, zap.InfoLevel)
	ErrorLogger = newFileLogger(encoder, "./logs/error.log", 100, 30, zap.ErrorLevel)
}

// LogDuration lets you do: defer logging.LogDuration(ctx, "FuncName")()
func LogDuration(ctx context.Context, name string) func() {
	start := time.Now()
	traceID, _ := ctx.Value("trace_id").(string)

	return func() {
		fields := []zap.Field{
			zap.String("func", name),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		}
		if traceID != "" {
			fields = append(fields, zap.String("trace_id", traceID))
		}
		TimerLogger.Info("Function timed", fields...)
	}
}
