package util_test

import (
	"testing"

	"github.com/gatewaytools/perfsync/internal/util"
)

func TestRandomLetters_Length(t *testing.T) {
	for _, n := range []int{0, 1, 3, 16} {
		if got := util.RandomLetters(n); len(got) != n {
			t.Errorf("RandomLetters(%d) has length %d", n, len(got))
		}
	}
}

func TestRandomLetters_Lowercase(t *testing.T) {
	s := util.RandomLetters(256)
	for _, r := range s {
		if r < 'a' || r > 'z' {
			t.Fatalf("RandomLetters produced %q", r)
		}
	}
}
