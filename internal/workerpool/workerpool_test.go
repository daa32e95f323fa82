package workerpool

import (
	"context"
	"errors"
	"testing"
)

func TestDegree(t *testing.T) {
	if d := Degree(0); d < 1 {
		t.Fatalf("Degree(0) = %d, want >= 1", d)
	}
	if d := Degree(-5); d < 1 {
		t.Fatalf("Degree(-5) = %d, want >= 1", d)
	}
	if d := Degree(1_000_000); d != 1 {
		t.Fatalf("Degree(huge divisor) = %d, want 1", d)
	}
}

func TestMapPreservesOrder(t *testing.T) {
	inputs := []int{5, 1, 4, 2, 3}
	got, err := Map(context.Background(), inputs, 4, func(i int) (int, error) {
		return i * i, nil
	})
	if err != nil {
		t.Fatalf("Map failed: %v", err)
	}
	want := []int{25, 1, 16, 4, 9}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("result[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestMapAbortsOnFirstError(t *testing.T) {
	sentinel := errors.New("boom")
	inputs := []int{1, 2, 3, 4, 5}
	_, err := Map(context.Background(), inputs, 2, func(i int) (int, error) {
		if i == 3 {
			return 0, sentinel
		}
		return i, nil
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}
}

func TestMapEmptyInput(t *testing.T) {
	got, err := Map[int, int](context.Background(), nil, 4, func(i int) (int, error) {
		t.Fatal("fn should not be called for empty input")
		return 0, nil
	})
	if err != nil {
		t.Fatalf("Map failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d results, want 0", len(got))
	}
}
