package evm

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"testing"

	"authhub/config"
	"authhub/internal/domain/service"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCaller struct {
	code    []byte
	result  []byte
	callErr error
	calls   int
}

func (f *fakeCaller) CodeAt(context.Context, common.Address, *big.Int) ([]byte, error) {
	return f.code, nil
}

func (f *fakeCaller) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	f.calls++

	return f.result, f.callErr
}

func sign(t *testing.T, message string) (common.Address, string) {
	t.Helper()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	sig, err := crypto.Sign(accounts.TextHash([]byte(message)), key)
	require.NoError(t, err)
	sig[crypto.RecoveryIDOffset] += 27

	return crypto.PubkeyToAddress(key.PublicKey), hexutil.Encode(sig)
}

func newTestVerifier(caller contractCaller) *chainVerifier {
	return &chainVerifier{
		chainID: 137,
		caller: func(context.Context) (contractCaller, error) {
			return caller, nil
		},
	}
}

func TestVerifyMessage_EOA(t *testing.T) {
	address, sig := sign(t, "hello")
	caller := &fakeCaller{}
	v := newTestVerifier(caller)

	ok, err := v.VerifyMessage(context.Background(), address.Hex(), "hello", sig)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Zero(t, caller.calls)
}

func TestVerifyMessage_EOA_WrongMessage(t *testing.T) {
	address, sig := sign(t, "hello")
	v := newTestVerifier(&fakeCaller{})

	ok, err := v.VerifyMessage(context.Background(), address.Hex(), "goodbye", sig)

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyMessage_Malformed(t *testing.T) {
	v := newTestVerifier(&fakeCaller{})

	ok, err := v.VerifyMessage(context.Background(), "not-an-address", "hello", "0x00")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = v.VerifyMessage(context.Background(), "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2", "hello", "zz")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyMessage_ContractWallet(t *testing.T) {
	wallet := "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"
	magic := common.RightPadBytes(erc1271MagicValue, 32)

	t.Run("accepted", func(t *testing.T) {
		caller := &fakeCaller{code: []byte{0x60, 0x80}, result: magic}
		ok, err := newTestVerifier(caller).VerifyMessage(context.Background(), wallet, "hello", "0x1234")

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 1, caller.calls)
	})

	t.Run("wrong magic", func(t *testing.T) {
		caller := &fakeCaller{code: []byte{0x60}, result: common.RightPadBytes([]byte{0xff, 0xff, 0xff, 0xff}, 32)}
		ok, err := newTestVerifier(caller).VerifyMessage(context.Background(), wallet, "hello", "0x1234")

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("reverted", func(t *testing.T) {
		caller := &fakeCaller{code: []byte{0x60}, callErr: errors.New("execution reverted")}
		ok, err := newTestVerifier(caller).VerifyMessage(context.Background(), wallet, "hello", "0x1234")

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("rpc failure", func(t *testing.T) {
		caller := &fakeCaller{code: []byte{0x60}, callErr: errors.New("dial tcp: connection refused")}
		_, err := newTestVerifier(caller).VerifyMessage(context.Background(), wallet, "hello", "0x1234")

		assert.Error(t, err)
	})

	t.Run("no code", func(t *testing.T) {
		caller := &fakeCaller{}
		ok, err := newTestVerifier(caller).VerifyMessage(context.Background(), wallet, "hello", "0x1234")

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Zero(t, caller.calls)
	})
}

func TestRegistry_Client(t *testing.T) {
	registry := newRegistry([]config.ChainConfig{{ID: 137, Name: "polygon"}, {ID: 11155111, Name: "sepolia"}}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	client, err := registry.Client(137)
	require.NoError(t, err)
	assert.NotNil(t, client)

	_, err = registry.Client(1)
	assert.ErrorIs(t, err, service.ErrUnsupportedChain)
}
