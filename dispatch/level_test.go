package dispatch

import "testing"

func TestLevelStringParseRoundTrip(t *testing.T) {
	for _, l := range Levels() {
		name := l.String()
		if name == "unknown" {
			t.Errorf("level %d in ladder has no name", l)
			continue
		}
		got, ok := ParseLevel(name)
		if !ok {
			t.Errorf("ParseLevel(%q) not recognized", name)
		}
		if got != l {
			t.Errorf("ParseLevel(%q) = %d, want %d", name, got, l)
		}
	}
}

func TestLevelStringUnknown(t *testing.T) {
	if got := Level(99).String(); got != "unknown" {
		t.Errorf("Level(99).String() = %q, want %q", got, "unknown")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   Level
		wantOK bool
	}{
		{"generic", Generic, true},
		{"GENERIC", Generic, true},
		{"  generic  ", Generic, true},
		{"no-such-level", Generic, false},
		{"", Generic, false},
	}

	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseLevel(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestLevelsAscending(t *testing.T) {
	ladder := Levels()
	if len(ladder) == 0 || ladder[0] != Generic {
		t.Fatalf("ladder must start at Generic, got %v", ladder)
	}
	for i := 1; i < len(ladder); i++ {
		if ladder[i] <= ladder[i-1] {
			t.Errorf("ladder not strictly ascending at index %d: %v", i, ladder)
		}
	}
}
