// SPDX-License-Identifier: MIT

package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/af0liveira/qtp/internal/logging"
)

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, logging.DefaultConfig().Validate())

	cases := map[string]logging.Config{
		"bad-level":    {Level: "loud", Format: logging.FormatJSON, Output: logging.OutputStderr},
		"bad-format":   {Level: "info", Format: "xml", Output: logging.OutputStderr},
		"empty-output": {Level: "info", Format: logging.FormatJSON},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, cfg.Validate(), logging.ErrInvalidConfig)
		})
	}
}

func TestNewWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewWriter(logging.Config{Level: "info", Format: logging.FormatJSON, Output: logging.OutputStderr}, &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("probe skipped")
	require.NoError(t, logger.Sync())

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "probe skipped", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "timestamp")
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qtp.log")
	cfg := logging.Config{Level: "warn", Format: logging.FormatJSON, Output: path}

	logger, closeFn, err := logging.New(cfg)
	require.NoError(t, err)
	logger.Warn("activation skipped")
	closeFn()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "activation skipped")
}
