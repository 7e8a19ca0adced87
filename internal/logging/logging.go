// Package logging builds the zap logger shared by the CLI.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvLevel overrides the configured level when set.
const EnvLevel = "PLATINFO_LOG"

// ParseLevel accepts zap level names plus "off".
func ParseLevel(s string) (zapcore.Level, error) {
	str := strings.ToLower(strings.TrimSpace(s))
	if str == "off" {
		return zapcore.FatalLevel + 1, nil
	}
	for _, lvl := range []zapcore.Level{
		zapcore.DebugLevel,
		zapcore.InfoLevel,
		zapcore.WarnLevel,
		zapcore.ErrorLevel,
	} {
		if str == lvl.String() {
			return lvl, nil
		}
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

// New returns a console logger writing to w. PLATINFO_LOG wins over level.
func New(w io.Writer, level string) (*zap.SugaredLogger, error) {
	if v := os.Getenv(EnvLevel); v != "" {
		level = v
	}
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(lvl),
	)
	return zap.New(core).Sugar(), nil
}

// Nop is used until the real logger is configured.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
