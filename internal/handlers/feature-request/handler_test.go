package featurerequest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	stderrors "support-agent/internal/common/errors"
	"support-agent/internal/common/logger"
	"support-agent/internal/featurelog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct{}

func (failingStore) Append(context.Context, featurelog.Entry) error {
	return errors.New("disk full")
}

func (failingStore) Close() error { return nil }

func TestHandler_Execute_LogsAndAcknowledges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feature_requests.log")
	store, err := featurelog.NewFileStore(path)
	require.NoError(t, err)
	defer store.Close()

	handler := NewHandler(store, logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{
		Query: "please add dark mode to the dashboard",
	})
	require.NoError(t, err)

	assert.Contains(t, output.Response, "Thank you for your feature request!")
	assert.False(t, output.NeedsEscalation)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), ": please add dark mode to the dashboard\n")
}

func TestHandler_Execute_AppendFailureFailsRequest(t *testing.T) {
	handler := NewHandler(failingStore{}, logger.NewNoOpLogger())

	output, err := handler.Execute(context.Background(), &Input{Query: "add exports"})
	require.Error(t, err)
	assert.Nil(t, output, "acknowledgment must not be produced when logging failed")

	var stdErr *stderrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, stderrors.ErrCodeFeatureLogAppendFailed, stdErr.Code)
	assert.True(t, stdErr.Retryable)
}
