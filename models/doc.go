// Copyright (c) 2025 Julian Mercado.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types shared by the
handlers and the store.

The voting API uses the APIResponse envelope:

	{"ok": true}
	{"ok": false, "error": "Invalid entrant"}

Rating is the one domain record: a single voter's scores for a single
entrant. The voter identifier and row bookkeeping fields are never
serialized to clients.

RateRequest uses pointer fields for the required integers so that a
missing field can be told apart from an explicit zero.
*/
package models
