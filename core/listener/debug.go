//go:build observerdebug

package listener

const debugChecks = true
