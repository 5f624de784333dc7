package common

import (
	"sync"

	"github.com/gopherjs/gopherjs/js"
)

// EnableDebug gates Debug output. Warnings and errors are always logged.
var EnableDebug = false

var (
	onceMu   sync.Mutex
	onceSeen = map[string]bool{}
)

// console returns the browser console, or nil outside a JS runtime.
func console() *js.Object {
	if js.Global == nil || js.Global == js.Undefined {
		return nil
	}
	c := js.Global.Get("console")
	if c == nil || c == js.Undefined {
		return nil
	}
	return c
}

// Debug logs a message to the browser console if debug mode is enabled.
func Debug(args ...interface{}) {
	if !EnableDebug {
		return
	}
	if c := console(); c != nil {
		c.Call("log", args...)
	}
}

// DebugWarn logs a warning to the browser console.
func DebugWarn(args ...interface{}) {
	if c := console(); c != nil {
		c.Call("warn", args...)
	}
}

// DebugError logs an error to the browser console.
func DebugError(args ...interface{}) {
	if c := console(); c != nil {
		c.Call("error", args...)
	}
}

// WarnOnce logs a warning the first time key is seen and reports whether it logged.
func WarnOnce(key string, args ...interface{}) bool {
	onceMu.Lock()
	seen := onceSeen[key]
	onceSeen[key] = true
	onceMu.Unlock()

	if seen {
		return false
	}
	DebugWarn(args...)
	return true
}
