// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.
package slicest

import (
	"errors"
	"slices"
	"strconv"
	"testing"
)

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, strconv.Itoa)
	if !slices.Equal(got, []string{"1", "2", "3"}) {
		t.Fatalf("unexpected %v", got)
	}

	got = MapI([]string{"a", "b"}, func(i int, s string) string { return strconv.Itoa(i) + s })
	if !slices.Equal(got, []string{"0a", "1b"}) {
		t.Fatalf("unexpected %v", got)
	}
}

func TestMapXIStopsOnError(t *testing.T) {
	calls := 0
	_, err := MapXI([]int{1, 2, 3}, func(_ int, v int) (int, error) {
		calls++
		if v == 2 {
			return 0, errors.New("two")
		}
		return v, nil
	})
	if err == nil || calls != 2 {
		t.Fatalf("expected stop at second element, calls=%d err=%v", calls, err)
	}
}

func TestReduceD(t *testing.T) {
	if got := ReduceD([]int{1, 2, 3}, 10, func(v, acc int) int { return acc + v }); got != 16 {
		t.Fatalf("unexpected %d", got)
	}
}
