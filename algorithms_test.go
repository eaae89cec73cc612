package nxcube

import (
	"errors"
	"strings"
	"testing"
)

func TestAlgorithmCatalogue(t *testing.T) {
	names := Algorithms()
	if len(names) == 0 {
		t.Fatal("catalogue should not be empty")
	}
	for _, name := range names {
		seq, ok := Algorithm(name)
		if !ok || seq == "" {
			t.Errorf("catalogue entry %q has no sequence", name)
		}
		// All entries use outer moves only, so they parse for every size.
		for _, size := range []int{2, 3, 6} {
			if _, err := ParseSequence(seq, size); err != nil {
				t.Errorf("algorithm %q invalid for size %d: %v", name, size, err)
			}
		}
	}
}

func TestAlgorithmsRestoreViaInverse(t *testing.T) {
	for _, name := range Algorithms() {
		c := mustCube(t, 3)
		solved := c.Clone()
		if err := c.ApplyAlgorithm(name); err != nil {
			t.Fatalf("ApplyAlgorithm(%q) failed: %v", name, err)
		}
		if c.Equal(solved) {
			t.Errorf("algorithm %q left the cube unchanged", name)
		}
		seq, _ := Algorithm(name)
		mustRotate(t, c, invert(strings.Fields(seq))...)
		if !c.Equal(solved) {
			t.Errorf("inverting algorithm %q should restore the cube", name)
		}
	}
}

func TestSexyMoveSixTimes(t *testing.T) {
	c := mustCube(t, 3)
	for i := 0; i < 6; i++ {
		if err := c.ApplyAlgorithm("sexy"); err != nil {
			t.Fatal(err)
		}
	}
	if !c.IsSolved() {
		t.Errorf("sexy move x6 should be the identity\n%s", c)
	}
}

func TestTPermTwice(t *testing.T) {
	c := mustCube(t, 3)
	if err := c.ApplyAlgorithm("tperm"); err != nil {
		t.Fatal(err)
	}
	if err := c.ApplyAlgorithm("tperm"); err != nil {
		t.Fatal(err)
	}
	if !c.IsSolved() {
		t.Errorf("the T-perm is its own inverse\n%s", c)
	}
}

func TestApplyAlgorithmUnknown(t *testing.T) {
	c := mustCube(t, 3)
	before := c.Clone()
	if err := c.ApplyAlgorithm("no_such_alg"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	if !c.Equal(before) {
		t.Error("failed algorithm lookup must not modify the cube")
	}
}
