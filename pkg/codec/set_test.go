package codec

import (
	"errors"
	"math/big"
	"slices"
	"testing"
)

func TestSetRoundTrip(t *testing.T) {
	tests := []struct {
		set  []int
		want int64
	}{
		{[]int{}, 0},
		{[]int{1}, 1},
		{[]int{2}, 2},
		{[]int{1, 2}, 3},
		{[]int{1, 3, 10}, 517},
	}
	for _, tt := range tests {
		i, err := EncodeSet(tt.set)
		if err != nil {
			t.Fatalf("EncodeSet(%v): %v", tt.set, err)
		}
		if i.Cmp(big.NewInt(tt.want)) != 0 {
			t.Errorf("EncodeSet(%v) = %v, want %d", tt.set, i, tt.want)
		}
		back, err := DecodeSet(i)
		if err != nil {
			t.Fatalf("DecodeSet(%v): %v", i, err)
		}
		if !slices.Equal(back, tt.set) {
			t.Errorf("round trip %v -> %v -> %v", tt.set, i, back)
		}
	}
}

func TestEncodeSetIgnoresDuplicates(t *testing.T) {
	a, err := EncodeSet([]int{3, 1, 3, 1})
	if err != nil {
		t.Fatal(err)
	}
	b, err := EncodeSet([]int{1, 3})
	if err != nil {
		t.Fatal(err)
	}
	if a.Cmp(b) != 0 {
		t.Errorf("duplicate elements changed the encoding: %v vs %v", a, b)
	}
}

func TestSetRejectsBadInput(t *testing.T) {
	for _, s := range [][]int{{0}, {-2}, {1, 2, 0}} {
		if _, err := EncodeSet(s); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("EncodeSet(%v): err = %v, want ErrInvalidInput", s, err)
		}
	}
	if _, err := DecodeSet(big.NewInt(-1)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("DecodeSet(-1): err = %v, want ErrInvalidInput", err)
	}
}
