//go:build msdebug

package buffer

const debugChecks = true
