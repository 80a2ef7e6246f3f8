package logging

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type impl struct {
	name  string
	level AtomicLevel
	inUTC bool

	appenders []Appender
}

func (imp *impl) AddAppender(appender Appender) {
	imp.appenders = append(imp.appenders, appender)
}

func (imp *impl) SetLevel(level Level) {
	imp.level.Set(level)
}

func (imp *impl) GetLevel() Level {
	return imp.level.Get()
}

func (imp *impl) Sublogger(subname string) Logger {
	newName := subname
	if imp.name != "" {
		newName = fmt.Sprintf("%s.%s", imp.name, subname)
	}

	return &impl{
		name:      newName,
		level:     NewAtomicLevelAt(imp.level.Get()),
		inUTC:     imp.inUTC,
		appenders: imp.appenders,
	}
}

func (imp *impl) Sync() error {
	var errs []error
	for _, appender := range imp.appenders {
		if err := appender.Sync(); err != nil {
			errs = append(errs, err)
		}
	}

	return multierr.Combine(errs...)
}

func (imp *impl) shouldLog(logLevel Level) bool {
	return logLevel >= imp.level.Get()
}

func (imp *impl) newEntry(logLevel Level, msg string) zapcore.Entry {
	entry := zapcore.Entry{
		Level:      logLevel.AsZap(),
		Time:       time.Now(),
		LoggerName: imp.name,
		Message:    msg,
		Caller:     getCaller(),
	}
	if imp.inUTC {
		entry.Time = entry.Time.UTC()
	}
	return entry
}

func (imp *impl) log(entry zapcore.Entry, fields []zapcore.Field) {
	for _, appender := range imp.appenders {
		if err := appender.Write(entry, fields); err != nil {
			fmt.Fprint(os.Stderr, err)
		}
	}
}

// Turns `keysAndValues` into zap fields where the odd elements are the keys and their following
// even counterpart is the value.
func toFields(keysAndValues []interface{}) []zapcore.Field {
	fields := make([]zapcore.Field, 0, len(keysAndValues)/2)
	for keyIdx := 0; keyIdx < len(keysAndValues); keyIdx += 2 {
		keyObj := keysAndValues[keyIdx]
		var keyStr string
		if stringer, ok := keyObj.(fmt.Stringer); ok {
			keyStr = stringer.String()
		} else {
			keyStr = fmt.Sprintf("%v", keyObj)
		}

		if keyIdx+1 < len(keysAndValues) {
			fields = append(fields, zap.Any(keyStr, keysAndValues[keyIdx+1]))
		} else {
			// API mis-use. Slip in an error message rather than silently discarding the key.
			fields = append(fields, zap.Any(keyStr, errors.New("unpaired log key")))
		}
	}
	return fields
}

func (imp *impl) logArgs(level Level, args ...interface{}) {
	if imp.shouldLog(level) {
		imp.log(imp.newEntry(level, fmt.Sprint(args...)), nil)
	}
}

func (imp *impl) logf(level Level, template string, args ...interface{}) {
	if imp.shouldLog(level) {
		imp.log(imp.newEntry(level, fmt.Sprintf(template, args...)), nil)
	}
}

func (imp *impl) logw(level Level, msg string, keysAndValues ...interface{}) {
	if imp.shouldLog(level) {
		imp.log(imp.newEntry(level, msg), toFields(keysAndValues))
	}
}

func (imp *impl) Debug(args ...interface{}) { imp.logArgs(DEBUG, args...) }

func (imp *impl) Debugf(template string, args ...interface{}) { imp.logf(DEBUG, template, args...) }

func (imp *impl) Debugw(msg string, keysAndValues ...interface{}) {
	imp.logw(DEBUG, msg, keysAndValues...)
}

func (imp *impl) Info(args ...interface{}) { imp.logArgs(INFO, args...) }

func (imp *impl) Infof(template string, args ...interface{}) { imp.logf(INFO, template, args...) }

func (imp *impl) Infow(msg string, keysAndValues ...interface{}) {
	imp.logw(INFO, msg, keysAndValues...)
}

func (imp *impl) Warn(args ...interface{}) { imp.logArgs(WARN, args...) }

func (imp *impl) Warnf(template string, args ...interface{}) { imp.logf(WARN, template, args...) }

func (imp *impl) Warnw(msg string, keysAndValues ...interface{}) {
	imp.logw(WARN, msg, keysAndValues...)
}

func (imp *impl) Error(args ...interface{}) { imp.logArgs(ERROR, args...) }

func (imp *impl) Errorf(template string, args ...interface{}) { imp.logf(ERROR, template, args...) }

func (imp *impl) Errorw(msg string, keysAndValues ...interface{}) {
	imp.logw(ERROR, msg, keysAndValues...)
}

// Return example: "logging/impl_test.go:36".
func getCaller() zapcore.EntryCaller {
	var ok bool
	var entryCaller zapcore.EntryCaller
	// getCaller <- newEntry <- logArgs/logf/logw <- Debug/Info/... <- caller
	const skipToLogCaller = 4
	entryCaller.PC, entryCaller.File, entryCaller.Line, ok = runtime.Caller(skipToLogCaller)
	if !ok {
		return entryCaller
	}
	entryCaller.Defined = true

	runtimeFunc := runtime.FuncForPC(entryCaller.PC)
	if runtimeFunc != nil {
		entryCaller.Function = runtimeFunc.Name()
	}

	return entryCaller
}
