// Copyright (c) 2025 Julian Mercado.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the data-access layer over the rating table.

# Upsert Semantics

At most one rating exists per (entrant, voter). Upsert runs a single
transaction: look up the existing row, then UPDATE its scores, judge,
and one_word, or INSERT a fresh row. The row id and created_at are
never touched by an update, so resubmission overwrites values while
preserving the original row identity and timestamp. The UNIQUE
(entrant_index, voter_id) constraint backstops the transaction under
concurrent submissions.

# Aggregation

Leaderboard groups all rows by entrant ordinal and computes the vote
count, the arithmetic mean per axis (1 decimal), and the mean of the
three-axis sum (2 decimals), ordered descending by mean total with
ascending ordinal as the tie-break. Entrants with no votes do not
appear. WordTally groups case-folded one_word values per entrant,
count descending then word ascending.

Both read paths drop rows whose ordinal is at or beyond the current
roster length; a shrunken roster silently hides its orphaned votes
rather than deleting them.

# Input Normalization

NormalizeJudge and NormalizeOneWord implement the write-time trim
policy: judge trimmed and capped at 50 runes; one_word reduced to its
first whitespace token, stripped of surrounding punctuation, capped at
20 runes, case preserved. "Delicious!!" stores as "Delicious" and
tallies as "delicious".
*/
package store
