package providers

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"pad/internal/structures"
)

type TypeEnum int

const (
	TypeApp TypeEnum = iota
	TypeGet
	TypePost
)

type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

func GetLogTypeByRequestType(method string) TypeEnum {
	if method == "POST" {
		return TypePost
	}
	return TypeGet
}

// LogProvider routes application events to app.log and request events to
// access.log inside the configured directory.
type LogProvider struct {
	app    zerolog.Logger
	access zerolog.Logger
	files  []*os.File
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, err
	}
	mode := os.FileMode(conf.Logger.Mode)

	appFile, err := openLogFile(conf.Logger.Dir, "app.log", mode)
	if err != nil {
		return nil, err
	}
	accessFile, err := openLogFile(conf.Logger.Dir, "access.log", mode)
	if err != nil {
		appFile.Close()
		return nil, err
	}

	var appOut io.Writer = appFile
	if conf.Debug {
		appOut = zerolog.MultiLevelWriter(appFile, zerolog.ConsoleWriter{Out: os.Stderr})
	}

	return &LogProvider{
		app:    zerolog.New(appOut).Level(level).With().Timestamp().Logger(),
		access: zerolog.New(accessFile).Level(level).With().Timestamp().Logger(),
		files:  []*os.File{appFile, accessFile},
	}, nil
}

func openLogFile(dir, name string, mode os.FileMode) (*os.File, error) {
	return os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, mode)
}

func (l *LogProvider) target(t TypeEnum) *zerolog.Logger {
	if t == TypeApp {
		return &l.app
	}
	return &l.access
}

func (l *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	l.target(t).Error().Msgf(format, args...)
}

func (l *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	l.target(t).Warn().Msgf(format, args...)
}

func (l *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	l.target(t).Debug().Msgf(format, args...)
}

func (l *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	l.target(t).Info().Msgf(format, args...)
}

func (l *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	l.target(t).Fatal().Msgf(format, args...)
}

func (l *LogProvider) Close() {
	for _, f := range l.files {
		_ = f.Close()
	}
}
