package storage

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/jrsteele09/go-contest-portal/internal/errors"
	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

// SealedRepo encrypts values with NaCl secretbox before handing them to the
// wrapped repo. Keys are stored in the clear.
type SealedRepo struct {
	Repo
	key [32]byte
}

// NewSealedRepo derives the box key from secret with SHA-256.
func NewSealedRepo(inner Repo, secret string) *SealedRepo {
	return &SealedRepo{Repo: inner, key: sha256.Sum256([]byte(secret))}
}

func (r *SealedRepo) Get(ctx context.Context, key string) ([]byte, error) {
	sealed, err := r.Repo.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(sealed) < nonceSize {
		return nil, fmt.Errorf("[SealedRepo] %s: short value: %w", key, errors.ErrSealBroken)
	}
	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])
	plain, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, &r.key)
	if !ok {
		return nil, fmt.Errorf("[SealedRepo] %s: %w", key, errors.ErrSealBroken)
	}
	return plain, nil
}

func (r *SealedRepo) Set(ctx context.Context, key string, value []byte) error {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return fmt.Errorf("[SealedRepo] nonce: %w", err)
	}
	sealed := secretbox.Seal(nonce[:], value, &nonce, &r.key)
	return r.Repo.Set(ctx, key, sealed)
}
