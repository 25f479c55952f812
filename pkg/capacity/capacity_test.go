// Copyright 2025 Scaleworks, Inc. All Rights Reserved.

package capacity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytesToGiB(t *testing.T) {
	assert.Equal(t, 1.0, BytesToGiB(int64(OneGiB)))
	assert.Equal(t, 0.5, BytesToGiB(int64(OneGiB/2)))
	assert.Equal(t, 0.0, BytesToGiB(0))
}

func TestBytesToGiBCeil(t *testing.T) {
	assert.Equal(t, int64(1), BytesToGiBCeil(1))
	assert.Equal(t, int64(1), BytesToGiBCeil(int64(OneGiB)))
	assert.Equal(t, int64(2), BytesToGiBCeil(int64(OneGiB)+1))
	assert.Equal(t, int64(100), BytesToGiBCeil(GiBToBytes(100)))
}

func TestCeilGiB(t *testing.T) {
	assert.Equal(t, int64(100), CeilGiB(100.0))
	assert.Equal(t, int64(101), CeilGiB(100.1))
	assert.Equal(t, int64(0), CeilGiB(0))
	assert.Equal(t, int64(-10), CeilGiB(-10.0))
}
