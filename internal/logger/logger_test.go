package logger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iryswiki/iryswiki/internal/logger"
)

func TestInitialize(t *testing.T) {
	require.NoError(t, logger.Initialize(logger.Config{Debug: true}))
	assert.True(t, logger.Default().Core().Enabled(zap.DebugLevel))

	require.NoError(t, logger.Initialize(logger.Config{Debug: false}))
	assert.False(t, logger.Default().Core().Enabled(zap.DebugLevel))
	assert.True(t, logger.Default().Core().Enabled(zap.InfoLevel))
}

func TestHelpers(t *testing.T) {
	require.NoError(t, logger.Initialize(logger.Config{Debug: false}))

	ctx := context.Background()
	assert.NotPanics(t, func() {
		logger.InfoCtx(ctx, "payment sent", logger.Action("THREAD"), logger.TxHash("0xabc"))
		logger.WarnCtx(ctx, "ledger write failed", logger.Address("0x1"), logger.Amount("0.0003"))
		logger.ErrorCtx(ctx, errors.New("boom"))
		logger.ErrorCtx(ctx, nil)
		logger.DebugCtx(ctx, "debug")
		logger.Flush(time.Millisecond)
	})
}
