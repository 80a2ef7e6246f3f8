package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"go.viam.com/test"
)

func TestConsoleAppender(t *testing.T) {
	var buf bytes.Buffer
	logger := NewBlankLogger("camera")
	logger.AddAppender(NewWriterAppender(&buf))

	logger.Infow("configured", "width", 640)
	line := strings.TrimSuffix(buf.String(), "\n")
	parts := strings.Split(line, "\t")
	test.That(t, len(parts), test.ShouldEqual, 6)
	test.That(t, parts[1], test.ShouldEqual, "INFO")
	test.That(t, parts[2], test.ShouldEqual, "camera")
	test.That(t, parts[3], test.ShouldStartWith, "logging/impl_test.go:")
	test.That(t, parts[4], test.ShouldEqual, "configured")
	test.That(t, parts[5], test.ShouldContainSubstring, `"width"`)
}

func TestLevels(t *testing.T) {
	logger, logs := NewObservedTestLogger(t)

	logger.Debug("debug")
	logger.SetLevel(WARN)
	logger.Info("dropped")
	logger.Warnf("warn %d", 1)
	logger.Errorw("error", "k", "v")

	entries := logs.All()
	test.That(t, len(entries), test.ShouldEqual, 3)
	test.That(t, entries[0].Message, test.ShouldEqual, "debug")
	test.That(t, entries[1].Message, test.ShouldEqual, "warn 1")
	test.That(t, entries[1].Level, test.ShouldEqual, zapcore.WarnLevel)
	test.That(t, entries[2].ContextMap()["k"], test.ShouldEqual, "v")
}

func TestSublogger(t *testing.T) {
	logger, logs := NewObservedTestLogger(t)
	sub := logger.Sublogger("pinhole").Sublogger("frustum")
	sub.Info("hello")

	entries := logs.Filter(func(e observer.LoggedEntry) bool {
		return e.LoggerName == "pinhole.frustum"
	}).All()
	test.That(t, len(entries), test.ShouldEqual, 1)
	test.That(t, entries[0].Message, test.ShouldEqual, "hello")
}

func TestUnpairedKey(t *testing.T) {
	logger, logs := NewObservedTestLogger(t)
	logger.Infow("oops", "lonely")

	entries := logs.All()
	test.That(t, len(entries), test.ShouldEqual, 1)
	test.That(t, entries[0].ContextMap()["lonely"], test.ShouldNotBeNil)
}

func TestLevelFromString(t *testing.T) {
	for input, expected := range map[string]Level{
		"debug": DEBUG,
		"INFO":  INFO,
		"Warn":  WARN,
		"error": ERROR,
	} {
		level, err := LevelFromString(input)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, level, test.ShouldEqual, expected)
	}

	_, err := LevelFromString("loud")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestGlobal(t *testing.T) {
	prev := Global()
	defer ReplaceGlobal(prev)

	logger, logs := NewObservedTestLogger(t)
	ReplaceGlobal(logger)
	Global().Info("from global")
	test.That(t, logs.FilterMessage("from global").Len(), test.ShouldEqual, 1)
	test.That(t, Global().Sync(), test.ShouldBeNil)

	test.That(t, NewLogger("info").GetLevel(), test.ShouldEqual, INFO)
	test.That(t, NewDebugLogger("debug").GetLevel(), test.ShouldEqual, DEBUG)
}
