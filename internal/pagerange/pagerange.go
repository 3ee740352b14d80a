// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pagerange turns user-supplied range expressions like "1-3,7,9-12"
// into canonical page selections.
package pagerange

import (
	"sort"
	"strconv"
	"strings"
)

// Parse converts a range expression and a page count into an ascending,
// duplicate-free list of zero-based page indices.
//
// An empty or whitespace-only expression selects every page. Otherwise the
// expression is split on commas; each token is either a 1-based page number
// or a 1-based inclusive range "start-end". Range bounds are clamped to the
// document: a start below 1 is treated as 1 and an end beyond pageCount as
// pageCount. Malformed tokens and out-of-range single pages contribute no
// indices. An expression whose tokens all drop out yields an empty selection;
// treating that as an error is the caller's job.
func Parse(expr string, pageCount int) []int {
	if strings.TrimSpace(expr) == "" {
		all := make([]int, 0, pageCount)
		for i := 0; i < pageCount; i++ {
			all = append(all, i)
		}
		return all
	}

	var pages []int
	for _, token := range strings.Split(expr, ",") {
		token = strings.TrimSpace(token)
		if strings.Contains(token, "-") {
			pages = append(pages, parseRange(token, pageCount)...)
			continue
		}
		if p, err := strconv.Atoi(token); err == nil && p >= 1 && p <= pageCount {
			pages = append(pages, p-1)
		}
	}

	sort.Ints(pages)
	return dedup(pages)
}

// parseRange expands a "start-end" token into zero-based indices, clamped to
// [0, pageCount). Tokens that are not exactly two numeric parts are dropped.
func parseRange(token string, pageCount int) []int {
	bounds := strings.Split(token, "-")
	if len(bounds) != 2 {
		return nil
	}
	start, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
	if err != nil {
		return nil
	}
	end, err := strconv.Atoi(strings.TrimSpace(bounds[1]))
	if err != nil {
		return nil
	}

	s := start - 1
	if s < 0 {
		s = 0
	}
	e := end
	if e > pageCount {
		e = pageCount
	}

	var out []int
	for i := s; i < e; i++ {
		out = append(out, i)
	}
	return out
}

// dedup removes consecutive duplicates from a sorted slice, in place.
func dedup(sorted []int) []int {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, p := range sorted[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}
