package naming

import (
	"fmt"
	"path/filepath"
	"testing"
)

func TestParseScore(t *testing.T) {
	cases := []struct {
		basename  string
		wantOK    bool
		wantScore Score
	}{
		{"3.5-MCID-5.svg", true, 3.5},
		{"0.0-MCID-5.svg", true, 0},
		{"0.5-MCID-5.svg", true, 0.5},
		{"5.0-MCID-5.svg", true, 5},
		{"ta_rating-4.0-MCID-5.svg", true, 4},
		{"3.5-MCID-5.png", false, 0},
		{"3.5-MCID-5.svg.bak", false, 0},
		{"3.2-MCID-5.svg", false, 0},
		{"6.0-MCID-5.svg", false, 0},
		{"3-MCID-5.svg", false, 0},
		{"3.5-MCID-4.svg", false, 0},
		{"3.5-mcid-5.svg", false, 0},
		{"3.5-MCID-5xsvg", false, 0},
		{"README.md", false, 0},
		{"", false, 0},
	}
	for _, c := range cases {
		t.Run(c.basename, func(t *testing.T) {
			got, ok := ParseScore(c.basename)
			if ok != c.wantOK {
				t.Fatalf("ParseScore(%q) ok = %v, want %v", c.basename, ok, c.wantOK)
			}
			if ok && got != c.wantScore {
				t.Errorf("ParseScore(%q) = %v, want %v", c.basename, got, c.wantScore)
			}
		})
	}
}

func TestParseScore_AllHalfSteps(t *testing.T) {
	for whole := 0; whole <= 5; whole++ {
		for _, frac := range []int{0, 5} {
			name := fmt.Sprintf("%d.%d-MCID-5.svg", whole, frac)
			s, ok := ParseScore(name)
			if !ok {
				t.Fatalf("%s did not match", name)
			}
			want := Score(float64(whole) + float64(frac)/10)
			if s != want {
				t.Errorf("%s: got %v, want %v", name, s, want)
			}
			if s.Whole() != whole {
				t.Errorf("%s: Whole() = %d, want %d", name, s.Whole(), whole)
			}
			if s.IsHalf() != (frac == 5) {
				t.Errorf("%s: IsHalf() = %v", name, s.IsHalf())
			}
		}
	}
}

func TestScoreString(t *testing.T) {
	if got := Score(4).String(); got != "4.0" {
		t.Errorf("Score(4).String() = %q", got)
	}
	if got := Score(2.5).String(); got != "2.5" {
		t.Errorf("Score(2.5).String() = %q", got)
	}
}

func TestOutputName(t *testing.T) {
	cases := []struct {
		score Score
		scale int
		want  string
	}{
		{3.0, 1, "score_ta_3.png"},
		{0.5, 1, "score_ta_0_half.png"},
		{2.5, 3, "score_ta_2_half@3x.png"},
		{3.5, 2, "score_ta_3_half@2x.png"},
		{0, 1, "score_ta_0.png"},
		{5, 2, "score_ta_5@2x.png"},
	}
	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			if got := OutputName(c.score, c.scale); got != c.want {
				t.Errorf("OutputName(%v, %d) = %q, want %q", c.score, c.scale, got, c.want)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	got := OutputPath("out", 1.5, 2)
	want := filepath.Join("out", "score_ta_1_half@2x.png")
	if got != want {
		t.Errorf("OutputPath = %q, want %q", got, want)
	}
}

func TestScaleFromName(t *testing.T) {
	cases := []struct {
		path string
		want int
	}{
		{"out/score_ta_3.png", 1},
		{"out/score_ta_3_half@2x.png", 2},
		{"out/score_ta_0@3x.png", 3},
		{"score_ta_4@2x.png", 2},
		{"build@2x/score_ta_4.png", 1},
		{"out/score_ta_1@x.png", 1},
	}
	for _, c := range cases {
		if got := ScaleFromName(c.path); got != c.want {
			t.Errorf("ScaleFromName(%q) = %d, want %d", c.path, got, c.want)
		}
	}
}

func TestScaleFromName_RoundTrip(t *testing.T) {
	for _, s := range []Score{0, 0.5, 3, 4.5} {
		for scale := 1; scale <= 3; scale++ {
			name := OutputPath("out", s, scale)
			if got := ScaleFromName(name); got != scale {
				t.Errorf("ScaleFromName(%q) = %d, want %d", name, got, scale)
			}
		}
	}
}
