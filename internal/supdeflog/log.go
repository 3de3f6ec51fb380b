// Package supdeflog is SupDef's leveled diagnostic logger. It mirrors the
// pdebug/pinfo/pwarning/perror free functions of the original Python tool's
// errprint module, built on top of glog's leveled-verbosity model the way
// google-kati wires glog for its own build-tool diagnostics.
package supdeflog

import (
	"flag"
	"sync"

	"github.com/golang/glog"
)

// debugVerbosity is the glog.V() level gated behind -d/--debug, the same
// V(1) threshold google-kati gates its own tracing behind.
const debugVerbosity = glog.Level(1)

var (
	mu      sync.Mutex
	enabled bool
)

// SetDebug toggles debug-level tracing. It corresponds to the original
// tool's set_debug_mode(bool). Since glog.V gates on glog's own -v flag
// rather than a package-level switch, SetDebug also sets that flag so
// glog.V(debugVerbosity) actually fires when -d/--debug is given.
func SetDebug(on bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = on
	level := "0"
	if on {
		level = "1"
	}
	_ = flag.Set("v", level)
}

// Debug reports whether debug-level tracing is currently enabled.
func Debug() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// Debugf logs a trace-level message, visible only when debug mode is on.
func Debugf(format string, args ...any) {
	if !Debug() {
		return
	}
	glog.V(debugVerbosity).Infof(format, args...)
}

// Infof logs an informational message. Always visible, matching pinfo.
func Infof(format string, args ...any) {
	glog.Infof(format, args...)
}

// Warningf logs a warning. Always visible, matching pwarning.
func Warningf(format string, args ...any) {
	glog.Warningf(format, args...)
}

// Errorf logs an error. Always visible, matching perror.
func Errorf(format string, args ...any) {
	glog.Errorf(format, args...)
}

// Flush flushes any buffered log output. Call before process exit.
func Flush() {
	glog.Flush()
}
