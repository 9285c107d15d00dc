package internal

import (
	"math/rand"

	"github.com/pkg/errors"
)

// SampleUniqueUint32s samples n unique integers from the range [min, max).
// It is used by tests and callers that want share identifiers scattered
// across a wider range than the default 1..n assignment.
func SampleUniqueUint32s(n, min, max int) ([]uint32, error) {
	if n > max-min {
		return nil, errors.Errorf("cannot sample %d unique integers from range [%d, %d)", n, min, max)
	}

	result := make(map[int]bool, n)
	for len(result) < n {
		num := rand.Intn(max-min) + min
		result[num] = true
	}

	uniqueInts := make([]uint32, 0, n)
	for num := range result {
		uniqueInts = append(uniqueInts, uint32(num))
	}
	return uniqueInts, nil
}
