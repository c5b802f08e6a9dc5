// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// CredentialStore verifies the single demo operator credential. The
// configured password is bcrypt-hashed once at startup so login attempts
// never touch the plaintext.
type CredentialStore struct {
	username     string
	passwordHash []byte
}

// NewCredentialStore hashes the configured password and keeps only the
// hash.
func NewCredentialStore(username, password string) (*CredentialStore, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if password == "" {
		return nil, fmt.Errorf("password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return &CredentialStore{username: username, passwordHash: hash}, nil
}

// Verify reports whether the supplied credentials match. Both comparisons
// always run so timing does not leak which field was wrong.
func (s *CredentialStore) Verify(username, password string) bool {
	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passwordMatch := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) == nil
	return usernameMatch && passwordMatch
}
