//go:build !fmathdebug

package fmath

const debugChecks = false
