// Package evm verifies wallet signatures against configured chains.
package evm

import (
	"bytes"
	"context"
	"math/big"
	"strings"

	"authhub/internal/domain/service"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

const erc1271ABI = `[{"inputs":[{"name":"hash","type":"bytes32"},{"name":"signature","type":"bytes"}],"name":"isValidSignature","outputs":[{"name":"magicValue","type":"bytes4"}],"stateMutability":"view","type":"function"}]`

// erc1271MagicValue is bytes4(keccak256("isValidSignature(bytes32,bytes)")).
var erc1271MagicValue = []byte{0x16, 0x26, 0xba, 0x7e}

var erc1271 = mustParseABI(erc1271ABI)

func mustParseABI(definition string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		panic(err)
	}

	return parsed
}

// contractCaller is the read-only subset of ethclient.Client used for
// contract-wallet signatures.
type contractCaller interface {
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// chainVerifier checks EIP-191 personal_sign signatures. Externally owned
// accounts are checked by recovery without touching the network; contract
// wallets are asked through ERC-1271.
type chainVerifier struct {
	chainID uint64
	caller  func(ctx context.Context) (contractCaller, error)
}

var _ service.ChainClient = (*chainVerifier)(nil)

func (v *chainVerifier) VerifyMessage(ctx context.Context, address, message, signature string) (bool, error) {
	if !common.IsHexAddress(address) {
		return false, nil
	}
	signer := common.HexToAddress(address)

	sig, err := hexutil.Decode(signature)
	if err != nil {
		return false, nil
	}

	hash := accounts.TextHash([]byte(message))

	if recovered, ok := recoverAddress(hash, sig); ok && recovered == signer {
		return true, nil
	}

	caller, err := v.caller(ctx)
	if err != nil {
		return false, err
	}

	code, err := caller.CodeAt(ctx, signer, nil)
	if err != nil {
		return false, errors.Wrapf(err, "failed to read code on chain %d", v.chainID)
	}
	if len(code) == 0 {
		return false, nil
	}

	return isValidContractSignature(ctx, caller, signer, hash, sig)
}

func recoverAddress(hash, sig []byte) (common.Address, bool) {
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, false
	}

	normalized := make([]byte, len(sig))
	copy(normalized, sig)
	if normalized[crypto.RecoveryIDOffset] >= 27 {
		normalized[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(hash, normalized)
	if err != nil {
		return common.Address{}, false
	}

	return crypto.PubkeyToAddress(*pub), true
}

func isValidContractSignature(ctx context.Context, caller contractCaller, wallet common.Address, hash, sig []byte) (bool, error) {
	var digest [32]byte
	copy(digest[:], hash)

	data, err := erc1271.Pack("isValidSignature", digest, sig)
	if err != nil {
		return false, errors.Wrap(err, "failed to pack isValidSignature call")
	}

	out, err := caller.CallContract(ctx, ethereum.CallMsg{To: &wallet, Data: data}, nil)
	if err != nil {
		// A reverting wallet rejects the signature.
		if strings.Contains(err.Error(), "execution reverted") {
			return false, nil
		}

		return false, errors.Wrap(err, "isValidSignature call failed")
	}

	return len(out) >= 4 && bytes.Equal(out[:4], erc1271MagicValue), nil
}
