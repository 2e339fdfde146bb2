package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestUseProd(t *testing.T) {
	defer UseProd(false)

	UseProd(true)
	assert.False(t, L.Core().Enabled(zap.DebugLevel))
	assert.True(t, L.Core().Enabled(zap.InfoLevel))

	UseProd(false)
	assert.True(t, L.Core().Enabled(zap.DebugLevel))
}

func TestOutputsToStderr(t *testing.T) {
	assert.Equal(t, []string{"stderr"}, DefaultDebugCfg().OutputPaths)
	assert.Equal(t, []string{"stderr"}, DefaultProdCfg().OutputPaths)
}
