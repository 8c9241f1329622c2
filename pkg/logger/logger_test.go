package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitWriterEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := InitWriter("debug", "json", &buf)
	require.NoError(t, err)

	l.Info("tenant resolved", zap.String("subdomain", "acme"))
	Sync()

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "tenant resolved", line["message"])
	require.Equal(t, "info", line["level"])
	require.Equal(t, "acme", line["subdomain"])
	require.Same(t, l, L())
}

func TestInitRejectsBadInput(t *testing.T) {
	_, err := InitWriter("loud", "json", &bytes.Buffer{})
	require.Error(t, err)

	_, err = InitWriter("info", "xml", &bytes.Buffer{})
	require.Error(t, err)
}
