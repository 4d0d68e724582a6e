package training

import (
	"math"
	"testing"
)

func TestParseRepRange(t *testing.T) {
	tests := []struct {
		reps   string
		wantLo int
		wantHi int
		wantOK bool
	}{
		{reps: "8-12", wantLo: 8, wantHi: 12, wantOK: true},
		{reps: "15-20", wantLo: 15, wantHi: 20, wantOK: true},
		{reps: " 6 - 10 ", wantLo: 6, wantHi: 10, wantOK: true},
		{reps: "12", wantOK: false},
		{reps: "a-b", wantOK: false},
		{reps: "", wantOK: false},
	}

	for _, tt := range tests {
		lo, hi, ok := parseRepRange(tt.reps)
		if ok != tt.wantOK || lo != tt.wantLo || hi != tt.wantHi {
			t.Errorf("parseRepRange(%q) = (%d, %d, %v), want (%d, %d, %v)",
				tt.reps, lo, hi, ok, tt.wantLo, tt.wantHi, tt.wantOK)
		}
	}
}

func TestAverageReps(t *testing.T) {
	tests := []struct {
		reps string
		want float64
	}{
		{reps: "8-12", want: 10},
		{reps: "15-20", want: 17.5},
		{reps: "malformed", want: 0},
	}

	for _, tt := range tests {
		if got := averageReps(tt.reps); got != tt.want {
			t.Errorf("averageReps(%q) = %g, want %g", tt.reps, got, tt.want)
		}
	}
}

func TestFatigueIndex(t *testing.T) {
	day := WorkoutDay{
		Exercises: []Exercise{
			{ID: "bench", Sets: 4, Reps: "8-12", Compound: true},
			{ID: "fly", Sets: 3, Reps: "8-12", Compound: false},
		},
	}

	// Compound: 4*10*1.5 = 60, isolation: 3*10*1 = 30.
	want := 90.0
	if got := fatigueIndex(day); math.Abs(got-want) > 1e-9 {
		t.Errorf("fatigueIndex() = %g, want %g", got, want)
	}
}

func TestTargetFatigue(t *testing.T) {
	tests := []struct {
		level ExperienceLevel
		want  float64
	}{
		{level: ExperienceNone, want: 96},
		{level: ExperienceBeginner, want: 120},
		{level: ExperienceIntermediate, want: 144},
		{level: ExperienceAdvanced, want: 160},
	}

	for _, tt := range tests {
		if got := targetFatigue(tt.level); got != tt.want {
			t.Errorf("targetFatigue(%v) = %g, want %g", tt.level, got, tt.want)
		}
	}
}

func TestAdjustDayForFatigue(t *testing.T) {
	t.Run("above the ceiling gets a deload reduction", func(t *testing.T) {
		day := WorkoutDay{
			Exercises: []Exercise{
				{ID: "a", Sets: 6, Reps: "15-20", Compound: true},
				{ID: "b", Sets: 6, Reps: "15-20", Compound: true},
			},
		}
		// Fatigue is 2*6*17.5*1.5 = 315, over the beginner ceiling of 150.
		got := adjustDayForFatigue(day, targetFatigue(ExperienceBeginner), ExperienceBeginner)
		for _, ex := range got.Exercises {
			if ex.Sets != 3 {
				t.Errorf("%s sets = %d, want 3", ex.ID, ex.Sets)
			}
		}
	})

	t.Run("below the target scales volume up", func(t *testing.T) {
		day := WorkoutDay{
			Exercises: []Exercise{
				{ID: "a", Sets: 2, Reps: "8-12", Compound: false},
				{ID: "b", Sets: 2, Reps: "8-12", Compound: false},
			},
		}
		// Fatigue is 40 against a target of 120, so sets triple.
		got := adjustDayForFatigue(day, targetFatigue(ExperienceBeginner), ExperienceBeginner)
		for _, ex := range got.Exercises {
			if ex.Sets != 6 {
				t.Errorf("%s sets = %d, want 6", ex.ID, ex.Sets)
			}
		}
	})

	t.Run("never drops below minimum sets", func(t *testing.T) {
		day := WorkoutDay{
			Exercises: []Exercise{
				{ID: "a", Sets: 6, Reps: "15-20", Compound: true},
				{ID: "b", Sets: 6, Reps: "15-20", Compound: true},
				{ID: "c", Sets: 6, Reps: "15-20", Compound: true},
			},
		}
		got := adjustDayForFatigue(day, targetFatigue(ExperienceNone), ExperienceNone)
		for _, ex := range got.Exercises {
			if ex.Sets < minSets {
				t.Errorf("%s sets = %d below minimum", ex.ID, ex.Sets)
			}
		}
	})
}
