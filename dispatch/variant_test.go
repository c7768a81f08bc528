package dispatch

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// referenceSelect is the straightforward left-to-right scan the selection
// algorithm must agree with: the greatest level <= detected wins, and the
// lowest entry wins when nothing qualifies.
func referenceSelect(variants []Variant[int], detected Level) Variant[int] {
	best := variants[0]
	for _, v := range variants {
		if v.Level <= detected {
			best = v
		}
	}
	return best
}

func TestSelectVariant(t *testing.T) {
	table := []Variant[int]{
		{Level: 0, Fn: 100},
		{Level: 5, Fn: 101},
		{Level: 8, Fn: 102},
	}

	tests := []struct {
		name     string
		detected Level
		want     int
	}{
		{"between entries", 6, 101},
		{"exact lowest", 0, 100},
		{"exact middle", 5, 101},
		{"exact highest", 8, 102},
		{"above all", 12, 102},
		{"below all", -1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := selectVariant(table, tt.detected)
			require.Equal(t, tt.want, got.Fn)
		})
	}
}

func TestSelectVariantSingleEntry(t *testing.T) {
	table := []Variant[int]{{Level: 5, Fn: 7}}

	// A one-entry table selects its entry for every detected level,
	// including levels below it (fallback rule applies trivially).
	for _, d := range []Level{-1, 0, 4, 5, 6, 100} {
		got := selectVariant(table, d)
		require.Equal(t, 7, got.Fn, "detected=%d", d)
	}
}

func TestSelectVariantMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 2000; i++ {
		n := 1 + rng.Intn(12)
		table := make([]Variant[int], 0, n)
		level := Level(rng.Intn(3))
		for j := 0; j < n; j++ {
			table = append(table, Variant[int]{Level: level, Fn: j})
			level += Level(1 + rng.Intn(4))
		}
		detected := Level(rng.Intn(28)) - 2

		want := referenceSelect(table, detected)
		got := selectVariant(table, detected)
		require.Equal(t, want, got, "table=%v detected=%d", table, detected)
	}
}

func TestSelectVariantMonotonic(t *testing.T) {
	table := []Variant[int]{
		{Level: 2, Fn: 0},
		{Level: 5, Fn: 1},
		{Level: 8, Fn: 2},
		{Level: 10, Fn: 3},
	}

	// A richer processor never selects a variant requiring less
	// capability than a poorer one does.
	for d1 := Level(-1); d1 <= 12; d1++ {
		for d2 := d1; d2 <= 12; d2++ {
			l1 := selectVariant(table, d1).Level
			l2 := selectVariant(table, d2).Level
			require.LessOrEqual(t, l1, l2, "d1=%d d2=%d", d1, d2)
		}
	}
}

func TestValidateTable(t *testing.T) {
	tests := []struct {
		name    string
		levels  []Level
		wantErr bool
	}{
		{"single entry", []Level{0}, false},
		{"ascending", []Level{0, 5, 8, 10}, false},
		{"empty", nil, true},
		{"duplicate level", []Level{0, 5, 5}, true},
		{"descending", []Level{8, 5, 0}, true},
		{"dip in the middle", []Level{0, 8, 5, 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := make([]Variant[int], len(tt.levels))
			for i, l := range tt.levels {
				table[i] = Variant[int]{Level: l, Fn: i}
			}
			err := validateTable(table)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNewPanicsOnBadTable(t *testing.T) {
	require.Panics(t, func() {
		New[func()]()
	})
	require.Panics(t, func() {
		New(
			At(Level(8), func() {}),
			At(Generic, func() {}),
		)
	})
}
