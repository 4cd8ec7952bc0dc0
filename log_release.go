//go:build !debug

package voronoi2d

// logDebugf is a no-op unless the debug build tag is set.
func logDebugf(format string, v ...interface{}) {}
