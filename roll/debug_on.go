//go:build rolldebug

package roll

const debugChecks = true
