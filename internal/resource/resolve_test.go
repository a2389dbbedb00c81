package resource

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_List(t *testing.T) {
	tests := []struct {
		raw  string
		want []int
	}{
		{"0,1,3", []int{0, 1, 3}},
		{"6, 8 ,10", []int{6, 8, 10}},
		{"3,1,3", []int{3, 1, 3}},
		{"0,,2,", []int{0, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			spec, err := Resolve(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, len(tt.want), spec.Count)
			assert.Equal(t, tt.want, spec.ProcessorIDs)
		})
	}
}

func TestResolve_Count(t *testing.T) {
	for _, k := range []int{1, 2, 6, 32} {
		spec, err := Resolve(strconv.Itoa(k))
		require.NoError(t, err)
		require.Equal(t, k, spec.Count)
		for i, id := range spec.ProcessorIDs {
			assert.Equal(t, i, id)
		}
		assert.Len(t, spec.ProcessorIDs, k)
	}
}

func TestResolve_Default(t *testing.T) {
	spec, err := Resolve("")
	require.NoError(t, err)
	assert.Positive(t, spec.Count)
	assert.Len(t, spec.ProcessorIDs, spec.Count)
	assert.Equal(t, 0, spec.ProcessorIDs[0])
}

func TestResolve_Invalid(t *testing.T) {
	for _, raw := range []string{"abc", "4.5", "0", "-2", "0,x", ",", "1,-1"} {
		t.Run(raw, func(t *testing.T) {
			_, err := Resolve(raw)
			assert.ErrorIs(t, err, ErrInvalidResourceSpec)
		})
	}
}

func TestResourceSpec_Mask(t *testing.T) {
	spec, err := Resolve("0,1,3,6")
	require.NoError(t, err)
	assert.Equal(t, "0,1,3,6", spec.Mask())

	spec = FromIDs([]int{0, 1, 3}[:2])
	assert.Equal(t, "0,1", spec.Mask())
	assert.Equal(t, 2, spec.Count)
}
