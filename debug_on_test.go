//go:build fmathdebug

package fmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreconditionViolations_LogWarning(t *testing.T) {
	for _, tt := range preconditionCases() {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureWarnings(t)
			got := tt.call()

			assert.Equal(t, tt.want, got, "return value matches release builds")
			assert.Contains(t, buf.String(), "level=WARN")
			assert.Contains(t, buf.String(), tt.message)
		})
	}
}

func TestBitIndexBeyondBuffer_LogsBeforePanic(t *testing.T) {
	buf := captureWarnings(t)

	assert.Panics(t, func() { ExtractBoolFromBitfield([]byte{0}, 9) })
	assert.Contains(t, buf.String(), "bit index beyond buffer")
	assert.Contains(t, buf.String(), "index=9")
	assert.Contains(t, buf.String(), "bits=8")
}
