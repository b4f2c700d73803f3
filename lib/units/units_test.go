package units

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xorcare/pointer"
)

func TestParseNumber(t *testing.T) {
	var numbertests = []struct {
		in  *string
		out *float64
	}{
		{pointer.String("0.12s"), pointer.Float64(0.12)},
		{pointer.String("262144 KB"), pointer.Float64(262144)},
		{pointer.String("1.5"), pointer.Float64(1.5)},
		{pointer.String("KB"), nil},
		{pointer.String(""), nil},
		{nil, nil},
	}
	for _, tt := range numbertests {
		name := "nil"
		if tt.in != nil {
			name = *tt.in
		}
		t.Run(name, func(t *testing.T) {
			got := ParseNumber(tt.in)
			if tt.out == nil {
				require.Nil(t, got)
			} else {
				require.NotNil(t, got)
				require.InDelta(t, *tt.out, *got, 1e-9)
			}
		})
	}
}

func TestAverage(t *testing.T) {
	t.Run("skips unparsable", func(t *testing.T) {
		avg := Average([]*string{pointer.String("0.12s"), pointer.String("0.08s"), nil})
		require.NotNil(t, avg)
		require.Equal(t, "0.100", *avg)
	})

	t.Run("memory", func(t *testing.T) {
		avg := Average([]*string{pointer.String("100 KB"), pointer.String("200 KB")})
		require.NotNil(t, avg)
		require.Equal(t, "150.000", *avg)
	})

	t.Run("nothing parsable", func(t *testing.T) {
		require.Nil(t, Average([]*string{nil, pointer.String("n/a")}))
		require.Nil(t, Average(nil))
	})
}

func TestFormat(t *testing.T) {
	require.Equal(t, "0.12s", TimeSeconds("0.12"))
	require.Equal(t, "262144 KB", MemoryKB(262144))
}
