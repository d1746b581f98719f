package logger_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbglogistica/logistica-api/pkg/logger"
)

func TestParseLevel_NivelesConocidos(t *testing.T) {
	casos := map[string]zerolog.Level{
		"trace": zerolog.TraceLevel,
		"debug": zerolog.DebugLevel,
		"info":  zerolog.InfoLevel,
		"warn":  zerolog.WarnLevel,
		"error": zerolog.ErrorLevel,
	}
	for in, want := range casos {
		assert.Equal(t, want, logger.ParseLevel(in), "nivel %q", in)
	}
}

func TestParseLevel_IgnoraMayusculasYEspacios(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, logger.ParseLevel(" DEBUG "))
	assert.Equal(t, zerolog.WarnLevel, logger.ParseLevel("Warn"))
}

// Una env var mal escrita no debe silenciar el servicio: cae a info.
func TestParseLevel_DesconocidoCaeAInfo(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel("verboso"))
}

func TestNew_AplicaElNivelConfigurado(t *testing.T) {
	l := logger.New(logger.Config{
		Env:     "production",
		Service: "jbg-logistica-api",
		Level:   "warn",
	})
	require.NotNil(t, l)
	assert.Equal(t, zerolog.WarnLevel, l.Zerolog().GetLevel())
}
