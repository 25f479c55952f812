// Copyright 2025 Scaleworks, Inc. All Rights Reserved.

package capacity

import (
	"math"
)

const (
	OneGiB = uint64(1073741824)
)

// BytesToGiB converts a byte count to fractional GiB.
func BytesToGiB(bytes int64) float64 {
	return float64(bytes) / float64(OneGiB)
}

// BytesToGiBCeil converts a byte count to whole GiB, rounding up.
func BytesToGiBCeil(bytes int64) int64 {
	return int64(math.Ceil(BytesToGiB(bytes)))
}

// GiBToBytes converts a whole-GiB count to bytes.
func GiBToBytes(gib int64) int64 {
	return gib * int64(OneGiB)
}

// CeilGiB rounds a fractional GiB value up to whole GiB.
func CeilGiB(gib float64) int64 {
	return int64(math.Ceil(gib))
}
