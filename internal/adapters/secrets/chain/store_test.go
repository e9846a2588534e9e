package chain

import (
	"context"
	"errors"
	"testing"

	passstore "github.com/bnema/pixeloracle/internal/adapters/secrets/pass"
	"github.com/bnema/pixeloracle/internal/domain"
	portmocks "github.com/bnema/pixeloracle/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const privateKeyKey = "pixeloracle/private_key"

func newTestStore(t *testing.T) (*Store, *portmocks.MockSecretStore, *portmocks.MockSecretStore) {
	t.Helper()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	return store, primary, fallback
}

func TestNewStoreRejectsNilBackends(t *testing.T) {
	t.Parallel()

	_, err := NewStore(nil, portmocks.NewMockSecretStore(t))
	require.ErrorIs(t, err, errNilPrimaryStore)

	_, err = NewStore(portmocks.NewMockSecretStore(t), nil)
	require.ErrorIs(t, err, errNilFallbackStore)
}

func TestStoreGetUsesPrimaryWhenItSucceeds(t *testing.T) {
	t.Parallel()

	store, primary, _ := newTestStore(t)
	primary.EXPECT().Get(mock.Anything, privateKeyKey).Return("from-pass", nil).Once()

	value, err := store.Get(context.Background(), privateKeyKey)
	require.NoError(t, err)
	assert.Equal(t, "from-pass", value)
}

func TestStoreGetFallsBackWhenPassIsUnavailable(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().Get(mock.Anything, privateKeyKey).Return("", passstore.ErrUnavailable).Once()
	fallback.EXPECT().Get(mock.Anything, privateKeyKey).Return("from-file", nil).Once()

	value, err := store.Get(context.Background(), privateKeyKey)
	require.NoError(t, err)
	assert.Equal(t, "from-file", value)
}

func TestStoreGetReportsNotFoundWhenNeitherBackendHasTheKey(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().Get(mock.Anything, privateKeyKey).Return("", passstore.ErrUnavailable).Once()
	fallback.EXPECT().Get(mock.Anything, privateKeyKey).Return("", domain.ErrSecretNotFound).Once()

	_, err := store.Get(context.Background(), privateKeyKey)
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
	assert.NotContains(t, err.Error(), "primary backend")
}

func TestStoreGetReturnsCombinedErrorWhenBothBackendsFail(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().Get(mock.Anything, privateKeyKey).Return("", errors.New("gpg failed")).Once()
	fallback.EXPECT().Get(mock.Anything, privateKeyKey).Return("", errors.New("permission denied")).Once()

	_, err := store.Get(context.Background(), privateKeyKey)
	require.Error(t, err)
	assert.ErrorContains(t, err, "primary backend")
	assert.ErrorContains(t, err, "gpg failed")
	assert.ErrorContains(t, err, "permission denied")
}

func TestStoreGetDoesNotFallbackOnCanceledContext(t *testing.T) {
	t.Parallel()

	store, primary, _ := newTestStore(t)
	primary.EXPECT().Get(mock.Anything, privateKeyKey).Return("", context.Canceled).Once()

	_, err := store.Get(context.Background(), privateKeyKey)
	require.ErrorIs(t, err, context.Canceled)
}

func TestStorePutFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().Put(mock.Anything, privateKeyKey, "0xabc").Return(passstore.ErrUnavailable).Once()
	fallback.EXPECT().Put(mock.Anything, privateKeyKey, "0xabc").Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), privateKeyKey, "0xabc"))
}

func TestStorePutDoesNotCallFallbackWhenPrimarySucceeds(t *testing.T) {
	t.Parallel()

	store, primary, _ := newTestStore(t)
	primary.EXPECT().Put(mock.Anything, privateKeyKey, "0xabc").Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), privateKeyKey, "0xabc"))
}

func TestStoreDeleteClearsBothBackends(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().Delete(mock.Anything, privateKeyKey).Return(nil).Once()
	fallback.EXPECT().Delete(mock.Anything, privateKeyKey).Return(nil).Once()

	require.NoError(t, store.Delete(context.Background(), privateKeyKey))
}

func TestStoreDeleteIgnoresUnavailablePass(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().Delete(mock.Anything, privateKeyKey).Return(passstore.ErrUnavailable).Once()
	fallback.EXPECT().Delete(mock.Anything, privateKeyKey).Return(nil).Once()

	require.NoError(t, store.Delete(context.Background(), privateKeyKey))
}
