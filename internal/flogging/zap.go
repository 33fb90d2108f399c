/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package flogging is the module's own structured-logging backend, adapted
// from github.com/hyperledger/fabric's common/flogging: a FabricLogger that
// wraps zap.SugaredLogger, and a small global registry so any package in
// this module can call flogging.MustGetLogger(name) the way bccsp's
// providers do. The dynamic per-module level spec and log-observer plumbing
// of the original package are trimmed — this module has no operator-facing
// log configuration surface to drive them — but the wrapper itself keeps
// the teacher's method set and naming intact.
package flogging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewZapLogger creates a zap logger around the provided core.
func NewZapLogger(core zapcore.Core, options ...zap.Option) *zap.Logger {
	return zap.New(
		core,
		append([]zap.Option{
			zap.AddCaller(),
			zap.AddStacktrace(zapcore.ErrorLevel),
		}, options...)...,
	)
}

// NewFabricLogger creates a logger that delegates to a zap.SugaredLogger.
func NewFabricLogger(l *zap.Logger, options ...zap.Option) *FabricLogger {
	return &FabricLogger{
		s: l.WithOptions(append(options, zap.AddCallerSkip(1))...).Sugar(),
	}
}

// A FabricLogger is an adapter around a zap.SugaredLogger that provides
// structured logging while keeping the terser unstructured helpers callers
// reach for most of the time.
type FabricLogger struct{ s *zap.SugaredLogger }

func (f *FabricLogger) Debug(args ...interface{})                   { f.s.Debugf(formatArgs(args)) }
func (f *FabricLogger) Debugf(template string, args ...interface{}) { f.s.Debugf(template, args...) }
func (f *FabricLogger) Debugw(msg string, kvPairs ...interface{})   { f.s.Debugw(msg, kvPairs...) }
func (f *FabricLogger) Info(args ...interface{})                    { f.s.Infof(formatArgs(args)) }
func (f *FabricLogger) Infof(template string, args ...interface{})  { f.s.Infof(template, args...) }
func (f *FabricLogger) Infow(msg string, kvPairs ...interface{})    { f.s.Infow(msg, kvPairs...) }
func (f *FabricLogger) Warn(args ...interface{})                    { f.s.Warnf(formatArgs(args)) }
func (f *FabricLogger) Warnf(template string, args ...interface{})  { f.s.Warnf(template, args...) }
func (f *FabricLogger) Warnw(msg string, kvPairs ...interface{})    { f.s.Warnw(msg, kvPairs...) }
func (f *FabricLogger) Error(args ...interface{})                   { f.s.Errorf(formatArgs(args)) }
func (f *FabricLogger) Errorf(template string, args ...interface{}) { f.s.Errorf(template, args...) }
func (f *FabricLogger) Errorw(msg string, kvPairs ...interface{})   { f.s.Errorw(msg, kvPairs...) }

func (f *FabricLogger) Named(name string) *FabricLogger { return &FabricLogger{s: f.s.Named(name)} }
func (f *FabricLogger) Sync() error                     { return f.s.Sync() }
func (f *FabricLogger) Zap() *zap.Logger                { return f.s.Desugar() }

func (f *FabricLogger) IsEnabledFor(level zapcore.Level) bool {
	return f.s.Desugar().Core().Enabled(level)
}

func (f *FabricLogger) With(args ...interface{}) *FabricLogger {
	return &FabricLogger{s: f.s.With(args...)}
}

func formatArgs(args []interface{}) string { return strings.TrimSuffix(fmt.Sprintln(args...), "\n") }
