package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/snapfeed-cli/internal/ports/mocks"
)

func TestChainPrefersPrimary(t *testing.T) {
	primary := mocks.NewMockSecretStore(t)
	fallback := mocks.NewMockSecretStore(t)
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	primary.EXPECT().Get(context.Background(), "snapfeed/session").Return("value", nil)

	value, err := store.Get(context.Background(), "snapfeed/session")
	require.NoError(t, err)
	assert.Equal(t, "value", value)
}

func TestChainFallsBackWhenPrimaryFails(t *testing.T) {
	primary := mocks.NewMockSecretStore(t)
	fallback := mocks.NewMockSecretStore(t)
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	primaryErr := errors.New("pass unavailable")
	primary.EXPECT().Get(context.Background(), "snapfeed/session").Return("", primaryErr)
	fallback.EXPECT().Get(context.Background(), "snapfeed/session").Return("value", nil)

	value, err := store.Get(context.Background(), "snapfeed/session")
	require.NoError(t, err)
	assert.Equal(t, "value", value)
}

func TestChainReportsBothFailures(t *testing.T) {
	primary := mocks.NewMockSecretStore(t)
	fallback := mocks.NewMockSecretStore(t)
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	primaryErr := errors.New("pass unavailable")
	fallbackErr := errors.New("disk full")
	primary.EXPECT().Put(context.Background(), "snapfeed/session", "value").Return(primaryErr)
	fallback.EXPECT().Put(context.Background(), "snapfeed/session", "value").Return(fallbackErr)

	err = store.Put(context.Background(), "snapfeed/session", "value")
	require.Error(t, err)
	assert.ErrorIs(t, err, primaryErr)
	assert.ErrorIs(t, err, fallbackErr)
}

func TestChainDoesNotCascadeCancellation(t *testing.T) {
	primary := mocks.NewMockSecretStore(t)
	fallback := mocks.NewMockSecretStore(t)
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	primary.EXPECT().Delete(ctx, "snapfeed/session").Return(ctx.Err())

	err = store.Delete(ctx, "snapfeed/session")
	require.ErrorIs(t, err, context.Canceled)
}

func TestChainRejectsNilStores(t *testing.T) {
	fallback := mocks.NewMockSecretStore(t)

	_, err := NewStore(nil, fallback)
	require.Error(t, err)

	primary := mocks.NewMockSecretStore(t)
	_, err = NewStore(primary, nil)
	require.Error(t, err)
}
