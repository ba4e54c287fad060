// Package reconcile implements the merge engine shared by the currency and
// ad-spend pipelines: combine a freshly fetched batch with the historical
// batch already persisted, deduplicate by a pipeline-defined key and keep the
// winning row according to a named policy.
package reconcile

import (
	"fmt"
	"sort"
)

// Policy decides which row survives when the historical and incoming batches
// carry the same dedup key.
type Policy string

const (
	// NewestWins keeps the last occurrence in concatenation order
	// (historical first, incoming second), so a re-fetch overrides the
	// stored row for the same key.
	NewestWins Policy = "newest-wins"

	// PrimarySource keeps the incoming (primary source) row over the
	// historical one regardless of concatenation order.
	PrimarySource Policy = "primary-source"
)

// Options parameterizes a merge for one pipeline.
type Options[T any] struct {
	// Key canonicalizes the dedup key of a record. An error here aborts the
	// whole merge: a record whose key cannot be derived must never be
	// silently dropped.
	Key func(T) (string, error)

	// SortKey orders the final batch ascending. It must sort consistently
	// with the pipeline's natural ordering column.
	SortKey func(T) string

	Policy Policy
}

// Merge concatenates historical then incoming, deduplicates by key under the
// configured policy and returns the result sorted ascending by SortKey.
//
// The output never contains two rows with the same key and its length is at
// most len(historical)+len(incoming). Merging a batch against itself returns
// that same batch.
func Merge[T any](historical, incoming []T, opts Options[T]) ([]T, error) {
	if opts.Key == nil || opts.SortKey == nil {
		return nil, fmt.Errorf("merge options missing key functions")
	}

	switch opts.Policy {
	case NewestWins, PrimarySource:
	default:
		return nil, fmt.Errorf("unknown merge policy %q", opts.Policy)
	}

	type tagged struct {
		record  T
		key     string
		primary bool
	}

	combined := make([]tagged, 0, len(historical)+len(incoming))
	for _, r := range historical {
		key, err := opts.Key(r)
		if err != nil {
			return nil, fmt.Errorf("canonicalizing historical record key: %w", err)
		}
		combined = append(combined, tagged{record: r, key: key})
	}
	for _, r := range incoming {
		key, err := opts.Key(r)
		if err != nil {
			return nil, fmt.Errorf("canonicalizing incoming record key: %w", err)
		}
		combined = append(combined, tagged{record: r, key: key, primary: true})
	}

	index := make(map[string]int, len(combined))
	fromPrimary := make(map[string]bool, len(combined))
	merged := make([]T, 0, len(combined))
	for _, t := range combined {
		at, seen := index[t.key]
		if !seen {
			index[t.key] = len(merged)
			fromPrimary[t.key] = t.primary
			merged = append(merged, t.record)
			continue
		}

		switch opts.Policy {
		case NewestWins:
			merged[at] = t.record
		case PrimarySource:
			// First primary row for a key wins; historical rows never
			// displace a primary one.
			if t.primary && !fromPrimary[t.key] {
				merged[at] = t.record
				fromPrimary[t.key] = true
			}
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return opts.SortKey(merged[i]) < opts.SortKey(merged[j])
	})

	return merged, nil
}
