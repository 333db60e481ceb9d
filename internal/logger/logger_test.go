package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestZerologAdapterFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Debug("pupil", "frame processed", map[string]interface{}{"contours": 3})

	out := buf.String()
	assert.Contains(t, out, `"component":"pupil"`)
	assert.Contains(t, out, `"contours":3`)
	assert.Contains(t, out, "frame processed")
}

func TestZerologAdapterLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.WarnLevel)

	log.Info("pupil", "suppressed", nil)
	assert.Empty(t, buf.String())

	log.Error("pupil", errors.New("boom"), nil)
	assert.Contains(t, buf.String(), "boom")
}

func TestNopLogger(t *testing.T) {
	log := Nop()
	log.Debug("x", "y", nil)
	log.Error("x", errors.New("ignored"), nil)
}
