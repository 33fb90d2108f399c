/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package flogging

import (
	"os"
	"strings"
	"sync"

	zaplogfmt "github.com/sykesm/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultFormat = "%{time:2006-01-02 15:04:05.000 MST} [%{module}] %{level:.4s} %{message}"

var (
	mutex  sync.RWMutex
	level  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	format = "console"

	loggers   = map[string]*FabricLogger{}
	loggersMu sync.Mutex
)

func init() {
	if spec := os.Getenv("EC_LOGGING_SPEC"); spec != "" {
		_ = ActivateSpec(spec)
	}
	if f := os.Getenv("EC_LOGGING_FORMAT"); f != "" {
		SetFormat(f)
	}
}

// SetFormat switches every logger obtained through MustGetLogger between
// "console" (the default, human-oriented) and "logfmt" encoding. Existing
// loggers already handed out are not retroactively reformatted; call this
// before the first MustGetLogger of a process, the way a CLI's PersistentPreRun
// does for the teacher's own binaries.
func SetFormat(f string) {
	mutex.Lock()
	defer mutex.Unlock()
	switch strings.ToLower(f) {
	case "logfmt":
		format = "logfmt"
	default:
		format = "console"
	}
}

// ActivateSpec sets the minimum level every logger obtained through
// MustGetLogger will emit at. Unlike the full fabric logging system this
// module does not support per-module overrides — there is exactly one
// logger family (the "ec" tree) and no operator-facing config surface asks
// for finer granularity.
func ActivateSpec(spec string) error {
	l, err := zapcore.ParseLevel(strings.ToLower(spec))
	if err != nil {
		return err
	}
	mutex.Lock()
	level.SetLevel(l)
	mutex.Unlock()
	return nil
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.NameKey = "logger"
	return cfg
}

// MustGetLogger returns the FabricLogger for the given module name,
// constructing it on first use. It never fails: an invalid name would be a
// programming error caught immediately by every call site logging with it.
func MustGetLogger(name string) *FabricLogger {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if l, ok := loggers[name]; ok {
		return l
	}

	mutex.RLock()
	f := format
	mutex.RUnlock()

	var encoder zapcore.Encoder
	if f == "logfmt" {
		encoder = zaplogfmt.NewEncoder(encoderConfig())
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig())
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level)
	fl := NewFabricLogger(NewZapLogger(core)).Named(name)
	loggers[name] = fl
	return fl
}
