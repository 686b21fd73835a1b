// Copyright (c) 2025 Julian Mercado.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidSession = errors.New("invalid session token")

// sessionPayload is the fixed signed value; there is only one admin role
// and no per-admin identity.
const sessionPayload = "is_admin=1"

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// NewVoterID returns a fresh opaque voter identifier for the long-lived
// browser cookie. It is a best-effort de-duplication key, not a
// security boundary: a client that clears the cookie votes again.
func NewVoterID() string {
	return uuid.NewString()
}

// SignSession creates the admin session cookie value: the payload and
// its HMAC-SHA256 tag, both URL-safe base64 without padding.
func SignSession(secret string) string {
	payload := strings.TrimRight(base64.URLEncoding.EncodeToString([]byte(sessionPayload)), "=")
	return payload + "." + sign(payload, secret)
}

// VerifySession checks a session cookie value produced by SignSession.
func VerifySession(token, secret string) error {
	payload, tag, ok := strings.Cut(token, ".")
	if !ok {
		return ErrInvalidSession
	}
	if !hmac.Equal([]byte(tag), []byte(sign(payload, secret))) {
		return ErrInvalidSession
	}
	return nil
}

func sign(payload, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(payload))
	return strings.TrimRight(base64.URLEncoding.EncodeToString(h.Sum(nil)), "=")
}

// CheckPassword compares the submitted admin password against the
// configured one. Plain-text shared-password comparison is a known weak
// point of this tool; it lives here so call sites never touch the
// secret directly and the comparison can be swapped out in one place.
func CheckPassword(submitted, configured string) bool {
	return subtle.ConstantTimeCompare([]byte(submitted), []byte(configured)) == 1
}
