// Package batch holds helpers for bounding database calls by the platform parameter limit.
package batch

import (
	"fmt"

	errs "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/error"
)

// Partition splits items into contiguous sub-slices of at most size elements,
// keeping the original order. An empty input yields no chunks.
//
// The chunks share the backing array of items; callers must not append to them.
func Partition[T any](items []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", errs.ErrInvalidChunkSize, size)
	}
	if len(items) == 0 {
		return nil, nil
	}

	chunks := make([][]T, 0, ChunkCount(len(items), size))
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, items[start:end:end])
	}
	return chunks, nil
}

// ChunkCount returns how many chunks Partition produces for n items, i.e. ceil(n/size).
// It returns 0 for a non-positive size.
func ChunkCount(n, size int) int {
	if size <= 0 || n <= 0 {
		return 0
	}
	return (n + size - 1) / size
}
