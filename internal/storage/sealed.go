package storage

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

// Sealed wraps a KV and encrypts every value it stores. The gateway
// uses it for the persisted auth token so a remembered login is not
// plaintext on disk.
type Sealed struct {
	kv  KV
	key [32]byte
}

func NewSealed(kv KV, secret string) (*Sealed, error) {
	if len(secret) != 32 {
		return nil, errors.New("store secret must be 32 bytes")
	}
	s := &Sealed{kv: kv}
	copy(s.key[:], secret)
	return s, nil
}

func (s *Sealed) Set(key, value string) error {
	var nonce [24]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return err
	}
	box := secretbox.Seal(nonce[:], []byte(value), &nonce, &s.key)
	return s.kv.Set(key, base64.StdEncoding.EncodeToString(box))
}

func (s *Sealed) Get(key string) (string, bool, error) {
	enc, ok, err := s.kv.Get(key)
	if err != nil || !ok {
		return "", ok, err
	}
	raw, err := base64.StdEncoding.DecodeString(enc)
	if err != nil || len(raw) < 24 {
		return "", false, errors.New("sealed value corrupt")
	}
	var nonce [24]byte
	copy(nonce[:], raw[:24])
	plain, ok := secretbox.Open(nil, raw[24:], &nonce, &s.key)
	if !ok {
		return "", false, errors.New("sealed value corrupt")
	}
	return string(plain), true, nil
}

func (s *Sealed) Delete(key string) error { return s.kv.Delete(key) }
func (s *Sealed) Clear() error            { return s.kv.Clear() }
