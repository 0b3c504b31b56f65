// Package siwe parses Sign-In with Ethereum (EIP-4361) messages.
package siwe

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"time"

	"authhub/internal/errors"
)

const preambleSuffix = " wants you to sign in with your Ethereum account:"

var (
	// ErrMalformedMessage is returned for text that is not an EIP-4361 message.
	ErrMalformedMessage = errors.New("malformed SIWE message")
	// ErrExpired is returned when the message is outside its validity window.
	ErrExpired = errors.New("SIWE message expired")
	// ErrNotYetValid is returned before the message's Not Before time.
	ErrNotYetValid = errors.New("SIWE message not yet valid")

	addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	noncePattern   = regexp.MustCompile(`^[A-Za-z0-9]{8,}$`)
)

// Message is a parsed SIWE message. Raw is the exact signed text.
type Message struct {
	Domain         string
	Address        string
	Statement      string
	URI            string
	Version        string
	ChainID        uint64
	Nonce          string
	IssuedAt       time.Time
	ExpirationTime *time.Time
	NotBefore      *time.Time
	RequestID      string
	Resources      []string

	Raw string
}

// Parse reads an EIP-4361 message.
func Parse(raw string) (*Message, error) {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return nil, errors.Wrap(ErrMalformedMessage, "missing header")
	}

	domain, ok := strings.CutSuffix(lines[0], preambleSuffix)
	if !ok || domain == "" {
		return nil, errors.Wrap(ErrMalformedMessage, "invalid preamble")
	}

	address := strings.TrimSpace(lines[1])
	if !addressPattern.MatchString(address) {
		return nil, errors.Wrap(ErrMalformedMessage, "invalid address")
	}

	msg := &Message{Domain: domain, Address: address, Raw: raw}

	idx := 2
	var statement []string
	for idx < len(lines) && !strings.HasPrefix(lines[idx], "URI: ") {
		if line := lines[idx]; line != "" {
			statement = append(statement, line)
		}
		idx++
	}
	msg.Statement = strings.Join(statement, "\n")

	inResources := false
	for ; idx < len(lines); idx++ {
		line := lines[idx]
		if line == "" {
			continue
		}
		if inResources {
			resource, ok := strings.CutPrefix(line, "- ")
			if !ok {
				return nil, errors.Wrapf(ErrMalformedMessage, "invalid resource line %q", line)
			}
			msg.Resources = append(msg.Resources, resource)

			continue
		}
		if line == "Resources:" {
			inResources = true

			continue
		}

		key, value, ok := strings.Cut(line, ": ")
		if !ok {
			return nil, errors.Wrapf(ErrMalformedMessage, "invalid field line %q", line)
		}
		if err := msg.setField(key, value); err != nil {
			return nil, err
		}
	}

	if err := msg.checkRequired(); err != nil {
		return nil, err
	}

	return msg, nil
}

func (m *Message) setField(key, value string) error {
	switch key {
	case "URI":
		m.URI = value
	case "Version":
		m.Version = value
	case "Chain ID":
		id, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return errors.Wrap(ErrMalformedMessage, "invalid chain id")
		}
		m.ChainID = id
	case "Nonce":
		if !noncePattern.MatchString(value) {
			return errors.Wrap(ErrMalformedMessage, "invalid nonce")
		}
		m.Nonce = value
	case "Issued At":
		t, err := parseTimestamp(value)
		if err != nil {
			return err
		}
		m.IssuedAt = t
	case "Expiration Time":
		t, err := parseTimestamp(value)
		if err != nil {
			return err
		}
		m.ExpirationTime = &t
	case "Not Before":
		t, err := parseTimestamp(value)
		if err != nil {
			return err
		}
		m.NotBefore = &t
	case "Request ID":
		m.RequestID = value
	default:
		return errors.Wrapf(ErrMalformedMessage, "unknown field %q", key)
	}

	return nil
}

func (m *Message) checkRequired() error {
	switch {
	case m.URI == "":
		return errors.Wrap(ErrMalformedMessage, "missing URI")
	case m.Version != "1":
		return errors.Wrap(ErrMalformedMessage, "unsupported version")
	case m.ChainID == 0:
		return errors.Wrap(ErrMalformedMessage, "missing chain id")
	case m.Nonce == "":
		return errors.Wrap(ErrMalformedMessage, "missing nonce")
	case m.IssuedAt.IsZero():
		return errors.Wrap(ErrMalformedMessage, "missing issued at")
	}

	return nil
}

// ValidAt checks the Expiration Time and Not Before bounds.
func (m *Message) ValidAt(now time.Time) error {
	if m.ExpirationTime != nil && !now.Before(*m.ExpirationTime) {
		return ErrExpired
	}
	if m.NotBefore != nil && now.Before(*m.NotBefore) {
		return ErrNotYetValid
	}

	return nil
}

func parseTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, errors.Wrapf(ErrMalformedMessage, "invalid timestamp %q", value)
	}

	return t, nil
}

const (
	nonceAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	nonceLength   = 17
)

// GenerateNonce returns a random alphanumeric nonce.
func GenerateNonce() (string, error) {
	limit := big.NewInt(int64(len(nonceAlphabet)))
	out := make([]byte, nonceLength)
	for i := range out {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", errors.Wrap(err, "failed to generate nonce")
		}
		out[i] = nonceAlphabet[n.Int64()]
	}

	return string(out), nil
}
