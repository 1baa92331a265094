package adapters

import (
	"github.com/gulam-moin/interactive-voice-response/application/ports/outbound"
	"github.com/gulam-moin/interactive-voice-response/config"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
	"io"
	"os"
)

type zerologWrapper struct {
	logger zerolog.Logger
}

func NewZerologWrapper() outbound.LoggerPort {
	return &zerologWrapper{
		logger: zerolog.New(os.Stderr).With().Timestamp().Logger(),
	}
}

// NewConfiguredZerologWrapper honours the level, console formatting and the
// optional rotated log file from the logging config.
func NewConfiguredZerologWrapper(conf *config.LoggingConfig) outbound.LoggerPort {
	var console io.Writer = os.Stderr
	if conf.Format == config.LogFormatConsole {
		console = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	writer := console
	if conf.FilePath != "" {
		writer = zerolog.MultiLevelWriter(console, &lumberjack.Logger{
			Filename:   conf.FilePath,
			MaxSize:    conf.FileMaxSizeMB,
			MaxBackups: conf.FileMaxBackups,
			MaxAge:     conf.FileMaxAgeDays,
			Compress:   true,
		})
	}

	level, err := zerolog.ParseLevel(conf.Level)
	if err != nil || conf.Level == "" {
		level = zerolog.InfoLevel
	}

	return &zerologWrapper{
		logger: zerolog.New(writer).Level(level).With().Timestamp().Logger(),
	}
}

func NewZerologWrapperFrom(logger zerolog.Logger) outbound.LoggerPort {
	return &zerologWrapper{logger: logger}
}

func (z *zerologWrapper) Info(msg string) {
	z.logger.Info().Msg(msg)
}

func (z *zerologWrapper) Error(err error, msg string) {
	z.logger.Error().Err(err).Msg(msg)
}

func (z *zerologWrapper) Debug(msg string) {
	z.logger.Debug().Msg(msg)
}

func (z *zerologWrapper) Warn(msg string) {
	z.logger.Warn().Msg(msg)
}

func (z *zerologWrapper) InfoWithFields(msg string, fields map[string]interface{}) {
	z.logger.Info().Fields(fields).Msg(msg)
}

func (z *zerologWrapper) ErrorWithFields(err error, msg string, fields map[string]interface{}) {
	z.logger.Error().Err(err).Fields(fields).Msg(msg)
}

func (z *zerologWrapper) DebugWithFields(msg string, fields map[string]interface{}) {
	z.logger.Debug().Fields(fields).Msg(msg)
}

func (z *zerologWrapper) WarnWithFields(msg string, fields map[string]interface{}) {
	z.logger.Warn().Fields(fields).Msg(msg)
}

func (z *zerologWrapper) With(fields map[string]interface{}) outbound.LoggerPort {
	return &zerologWrapper{
		logger: z.logger.With().Fields(fields).Logger(),
	}
}
