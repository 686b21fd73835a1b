// Copyright (c) 2025 Julian Mercado.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides voter identity and admin session primitives.

# Voter IDs

Each browser gets a random UUID in a long-lived cookie on its first
visit to the voting page:

	id := auth.NewVoterID()

The ID deduplicates votes per (entrant, voter); it is unauthenticated
and trivially resettable by the client.

# Admin Sessions

The admin session is a single signed flag, the server-side analogue of a
signed client session. SignSession produces "payload.tag" where tag is
HMAC-SHA256 over the payload keyed by the session secret:

	cookieValue := auth.SignSession(cfg.SessionSecret)
	err := auth.VerifySession(cookieValue, cfg.SessionSecret)

There is no expiry and no per-admin identity; the cookie lives as long
as the browser keeps it.

# Password Check

CheckPassword is the one place the shared admin password is compared.
*/
package auth
