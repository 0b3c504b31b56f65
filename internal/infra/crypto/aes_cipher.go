// Package crypto protects provider tokens at rest.
package crypto

import (
	"bytes"
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"authhub/internal/domain/service"
	"authhub/internal/errors"
)

// ErrMalformedCiphertext is returned when a stored value is not "ivhex:cipherhex".
var ErrMalformedCiphertext = errors.New("malformed ciphertext")

// aesCBCCipher encrypts with AES-256-CBC under SHA-256(secret). Values are
// stored as "ivhex:cipherhex" so existing records stay readable.
type aesCBCCipher struct {
	block cipher.Block
}

// NewAESCipher derives the key from secret.
func NewAESCipher(secret string) (service.TokenCipher, error) {
	if secret == "" {
		return nil, errors.New("encryption secret must be provided")
	}

	key := sha256.Sum256([]byte(secret))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, errors.Wrap(err, "failed to create AES cipher")
	}

	return &aesCBCCipher{block: block}, nil
}

func (c *aesCBCCipher) Encrypt(_ context.Context, plaintext string) (string, error) {
	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return "", errors.Wrap(err, "failed to generate iv")
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(c.block, iv).CryptBlocks(out, padded)

	return hex.EncodeToString(iv) + ":" + hex.EncodeToString(out), nil
}

func (c *aesCBCCipher) Decrypt(_ context.Context, ciphertext string) (string, error) {
	ivHex, dataHex, ok := strings.Cut(ciphertext, ":")
	if !ok {
		return "", ErrMalformedCiphertext
	}

	iv, err := hex.DecodeString(ivHex)
	if err != nil || len(iv) != aes.BlockSize {
		return "", ErrMalformedCiphertext
	}
	data, err := hex.DecodeString(dataHex)
	if err != nil || len(data) == 0 || len(data)%aes.BlockSize != 0 {
		return "", ErrMalformedCiphertext
	}

	out := make([]byte, len(data))
	cipher.NewCBCDecrypter(c.block, iv).CryptBlocks(out, data)

	plain, err := pkcs7Unpad(out, aes.BlockSize)
	if err != nil {
		return "", err
	}

	return string(plain), nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize

	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, ErrMalformedCiphertext
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrMalformedCiphertext
		}
	}

	return data[:len(data)-n], nil
}
