package dial

import (
	"errors"
	"math"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/kr/pretty"
)

func TestParseRotation(t *testing.T) {
	for _, tt := range []struct {
		s    string
		want Rotation
		ok   bool
	}{
		{"L68", Rotation{Left, 68}, true},
		{"R14", Rotation{Right, 14}, true},
		{"R0", Rotation{Right, 0}, true},
		{"L5\r", Rotation{Left, 5}, true},
		{"  R7 ", Rotation{Right, 7}, true},
		{"R+3", Rotation{Right, 3}, true},
		{"R9223372036854775807", Rotation{Right, math.MaxInt64}, true},
		{"R9223372036854775808", Rotation{}, false},
		{"", Rotation{}, false},
		{"L", Rotation{}, false},
		{"X10", Rotation{}, false},
		{"l10", Rotation{}, false},
		{"L-5", Rotation{}, false},
		{"R1x", Rotation{}, false},
		{"RR1", Rotation{}, false},
	} {
		got, ok := ParseRotation(tt.s)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseRotation(%q): got (%v, %t); want (%v, %t)",
				tt.s, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseRotationsSkipsBadLines(t *testing.T) {
	input := "L68\n\nbogus\nR48\nL\nR-1\nL5\n"
	got, err := ParseRotations(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	want := []Rotation{{Left, 68}, {Right, 48}, {Left, 5}}
	if diff := pretty.Diff(got, want); len(diff) > 0 {
		t.Errorf("ParseRotations(%q) differs:\n%s", input, strings.Join(diff, "\n"))
	}
}

func TestParseRotationsIdempotent(t *testing.T) {
	first, err := ParseRotations(strings.NewReader(example))
	if err != nil {
		t.Fatal(err)
	}
	second, err := ParseRotations(strings.NewReader(example))
	if err != nil {
		t.Fatal(err)
	}
	if diff := pretty.Diff(first, second); len(diff) > 0 {
		t.Errorf("parsing twice differs:\n%s", strings.Join(diff, "\n"))
	}
	if len(first) != 10 {
		t.Errorf("got %d rotations; want 10", len(first))
	}
}

func TestParseRotationsReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := ParseRotations(iotest.ErrReader(boom))
	if !errors.Is(err, boom) {
		t.Errorf("got err %v; want %v", err, boom)
	}
}
