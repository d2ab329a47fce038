/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logging

import (
	"fmt"
	"runtime"
	"sort"
	"strings"
	"testing"

	"github.com/hyperledger/fabric-lib-go/common/flogging"
	"github.com/hyperledger/fabric-lib-go/common/flogging/floggingtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger provides logging API
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Panic(args ...interface{})
	Panicf(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	IsEnabledFor(level zapcore.Level) bool
	Named(name string) Logger
	Warnw(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorw(format string, args ...interface{})
	With(args ...interface{}) Logger
	Zap() *zap.Logger
}

type Recorder = floggingtest.Recorder

type Option = floggingtest.Option

func Named(loggerName string) Option {
	return func(r *floggingtest.RecordingCore, l *zap.Logger) *zap.Logger {
		return l.Named(loggerName)
	}
}

// MustGetLogger returns a logger named after the calling package.
// The optional params are appended to the name, separated by dots.
func MustGetLogger(params ...string) Logger {
	return &logger{FabricLogger: flogging.MustGetLogger(loggerName(packageName(2), params...))}
}

func NewTestLogger(tb testing.TB, options ...Option) (Logger, *Recorder) {
	l, r := floggingtest.NewTestLogger(tb, options...)
	return &logger{FabricLogger: l}, r
}

// GetPackageName returns the package of the function calling GetPackageName
func GetPackageName() (string, error) {
	pc, _, _, ok := runtime.Caller(1)
	if !ok {
		return "", fmt.Errorf("unable to retrieve caller information")
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "", fmt.Errorf("unable to retrieve function for PC: %v", pc)
	}
	return trimFuncName(fn.Name()), nil
}

func packageName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		panic("unable to retrieve caller information using runtime.Caller")
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		panic(fmt.Sprintf("unable to retrieve function for PC: %v", pc))
	}
	return trimFuncName(fn.Name())
}

// trimFuncName turns github.com/a/b/pkg.(*T).Method into github.com/a/b/pkg
func trimFuncName(fullFuncName string) string {
	lastSlash := strings.LastIndex(fullFuncName, "/")
	if lastSlash < 0 {
		lastSlash = 0
	}
	dotAfterSlash := strings.Index(fullFuncName[lastSlash:], ".")
	if dotAfterSlash < 0 {
		return fullFuncName
	}
	return fullFuncName[:lastSlash+dotAfterSlash]
}

func loggerName(pkg string, params ...string) string {
	parts := strings.Split(pkg, "/")
	namespace := strings.Join(parts[:len(parts)-1], "_")
	rs := Replacers()
	// longest match first
	keys := make([]string, 0, len(rs))
	for s := range rs {
		keys = append(keys, s)
	}
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })
	for _, s := range keys {
		namespace = strings.ReplaceAll(namespace, s, rs[s])
	}
	name := strings.Join(append([]string{strings.ReplaceAll(namespace, "_", "."), parts[len(parts)-1]}, params...), ".")
	return strings.TrimPrefix(name, ".")
}

type logger struct {
	*flogging.FabricLogger
}

func (l *logger) Named(name string) Logger {
	return &logger{FabricLogger: l.FabricLogger.Named(name)}
}

func (l *logger) With(args ...interface{}) Logger {
	return &logger{FabricLogger: l.FabricLogger.With(args...)}
}
