package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSpawnForService(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf)}
	l.SpawnForService("dpqac").Info().Msg("ready")
	assert.Contains(buf.String(), `"service":"dpqac"`)
}

func TestSpawnForSolve(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf)}
	l.SpawnForSolve("7f2c").Info().Msg("solve starting")
	assert.Contains(buf.String(), `"solveID":"7f2c"`)
}

func TestNewLoggerLevel(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(zerolog.InfoLevel, NewLogger(LoggerOptions{}).GetLevel())
	assert.Equal(zerolog.DebugLevel, NewLogger(LoggerOptions{Debug: true}).GetLevel())
}
