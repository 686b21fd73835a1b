// Copyright (c) 2025 Julian Mercado.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package roster manages the ordered list of contest entrants.

The roster is an explicit state object passed into handlers rather than
a process global. It is loaded once at startup from a small YAML side
document and replaced (and re-persisted) only by the admin edit
operation; every other operation reads it to validate entrant ordinals
and render display names.

	r := roster.Load(cfg.RosterPath)
	r.Names()            // copy of the current list
	err := r.Replace(ns) // admin edit: strip blanks, save, swap

Ratings are keyed by ordinal position, so shrinking the roster can
leave rows pointing past the end of the list. Those rows are kept but
ignored on reads; they become visible again if the roster grows back.
*/
package roster
