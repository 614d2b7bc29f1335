//go:build fmathdebug

package fmath

const debugChecks = true
