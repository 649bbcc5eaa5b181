package log

import "sync"

// Sink is an append-only consumer of rendered log lines. The GUI log pane
// implements Sink so core operations never touch presentation state directly.
type Sink interface {
	Append(line string)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(line string)

// Append implements Sink.
func (f SinkFunc) Append(line string) {
	f(line)
}

// sinkLogger renders each record and forwards it to a Sink.
type sinkLogger struct {
	mu    sync.Mutex
	sink  Sink
	level Level
}

// NewSinkLogger creates a logger that forwards rendered lines to sink.
func NewSinkLogger(sink Sink, level Level) Logger {
	return &sinkLogger{sink: sink, level: level}
}

func (s *sinkLogger) log(level Level, msg string, fields ...Field) {
	if level < s.level || s.sink == nil {
		return
	}
	line := Format(level, msg, fields...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sink.Append(line)
}

func (s *sinkLogger) Debug(msg string, fields ...Field) { s.log(LevelDebug, msg, fields...) }
func (s *sinkLogger) Info(msg string, fields ...Field)  { s.log(LevelInfo, msg, fields...) }
func (s *sinkLogger) Warn(msg string, fields ...Field)  { s.log(LevelWarn, msg, fields...) }
func (s *sinkLogger) Error(msg string, fields ...Field) { s.log(LevelError, msg, fields...) }

// teeLogger duplicates every record to multiple loggers.
type teeLogger struct {
	loggers []Logger
}

// NewTeeLogger creates a logger that forwards each record to every given
// logger. Used to feed the append-only log file and the on-screen pane from
// the same records.
func NewTeeLogger(loggers ...Logger) Logger {
	return &teeLogger{loggers: loggers}
}

func (t *teeLogger) Debug(msg string, fields ...Field) {
	for _, l := range t.loggers {
		l.Debug(msg, fields...)
	}
}

func (t *teeLogger) Info(msg string, fields ...Field) {
	for _, l := range t.loggers {
		l.Info(msg, fields...)
	}
}

func (t *teeLogger) Warn(msg string, fields ...Field) {
	for _, l := range t.loggers {
		l.Warn(msg, fields...)
	}
}

func (t *teeLogger) Error(msg string, fields ...Field) {
	for _, l := range t.loggers {
		l.Error(msg, fields...)
	}
}

// NewFileLogger creates a logger appending to path without installing it as
// the package-level logger. The caller combines it with NewTeeLogger.
func NewFileLogger(path string, level Level) (Logger, error) {
	f, err := openAppend(path)
	if err != nil {
		return nil, err
	}
	return NewWriterLogger(f, level), nil
}
