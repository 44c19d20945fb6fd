package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogFormatDecode(t *testing.T) {
	var f LogFormat
	require.NoError(t, f.Decode("JSON"))
	assert.Equal(t, LogFormatJSON, f)

	require.NoError(t, f.Decode("text"))
	assert.Equal(t, LogFormatText, f)

	assert.Error(t, f.Decode("xml"))
}

func TestNewLogger(t *testing.T) {
	_, ok := NewLogger(LogFormatJSON).Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok)

	_, ok = NewLogger(LogFormatText).Formatter.(*logrus.TextFormatter)
	assert.True(t, ok)
}
