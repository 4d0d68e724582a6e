package training

import (
	"testing"
)

func TestSinglePassRedistribute(t *testing.T) {
	days := []WorkoutDay{
		{
			Name: "day one",
			Exercises: []Exercise{
				{ID: "squat", TargetMuscle: MuscleLegs, Sets: 4, Reps: "8-12"},
				{ID: "bench", TargetMuscle: MuscleChest, Sets: 4, Reps: "8-12"},
			},
		},
		{
			Name: "day two",
			Exercises: []Exercise{
				{ID: "lunge", TargetMuscle: MuscleLegs, Sets: 4, Reps: "8-12"},
			},
		},
	}
	issues := []ValidationIssue{
		{Type: "recovery", Muscle: MuscleLegs, Days: []int{0, 1}},
	}

	got := SinglePassRedistribute(days, issues)

	if got[0].Exercises[0].Sets != 3 {
		t.Errorf("flagged muscle on day one sets = %d, want 3", got[0].Exercises[0].Sets)
	}
	if got[0].Exercises[1].Sets != 4 {
		t.Errorf("unflagged muscle sets = %d, want 4 (untouched)", got[0].Exercises[1].Sets)
	}
	if got[1].Exercises[0].Sets != 3 {
		t.Errorf("flagged muscle on day two sets = %d, want 3", got[1].Exercises[0].Sets)
	}

	// Input days must not be mutated.
	if days[0].Exercises[0].Sets != 4 {
		t.Errorf("input day was mutated, sets = %d", days[0].Exercises[0].Sets)
	}
}

func TestSinglePassRedistribute_RespectsMinimumSets(t *testing.T) {
	days := []WorkoutDay{
		{
			Name: "light day",
			Exercises: []Exercise{
				{ID: "squat", TargetMuscle: MuscleLegs, Sets: minSets, Reps: "8-12"},
			},
		},
	}
	issues := []ValidationIssue{
		{Type: "volume", Muscle: MuscleLegs, Days: []int{0}},
	}

	got := SinglePassRedistribute(days, issues)
	if got[0].Exercises[0].Sets != minSets {
		t.Errorf("sets = %d, want floor of %d", got[0].Exercises[0].Sets, minSets)
	}
}

func TestSinglePassRedistribute_NoIssuesIsIdentity(t *testing.T) {
	days := []WorkoutDay{
		{
			Name: "day",
			Exercises: []Exercise{
				{ID: "bench", TargetMuscle: MuscleChest, Sets: 4, Reps: "8-12"},
			},
		},
	}

	got := SinglePassRedistribute(days, nil)
	if got[0].Exercises[0].Sets != 4 {
		t.Errorf("sets = %d, want 4", got[0].Exercises[0].Sets)
	}
}

func TestNewIterativeRedistribute_Converges(t *testing.T) {
	legDay := func(sets int) WorkoutDay {
		return WorkoutDay{
			Name:      "legs",
			FocusArea: "legs",
			Exercises: []Exercise{
				{ID: "a", TargetMuscle: MuscleLegs, Sets: sets, Reps: "15-20"},
				{ID: "b", TargetMuscle: MuscleLegs, Sets: sets, Reps: "15-20"},
				{ID: "c", TargetMuscle: MuscleLegs, Sets: sets, Reps: "15-20"},
				{ID: "d", TargetMuscle: MuscleLegs, Sets: sets, Reps: "15-20"},
				{ID: "e", TargetMuscle: MuscleLegs, Sets: sets, Reps: "15-20"},
			},
		}
	}

	selectedDays := []int{0}
	days := []WorkoutDay{legDay(6)}
	result := checkMuscleOverlap(days, selectedDays)
	if result.valid {
		t.Fatal("test setup should start with volume issues")
	}

	redistribute := NewIterativeRedistribute(selectedDays, 10)
	got := redistribute(days, result.issues)

	for _, ex := range got[0].Exercises {
		if ex.Sets >= 6 {
			t.Errorf("exercise %s sets = %d, expected a reduction", ex.ID, ex.Sets)
		}
		if ex.Sets < minSets {
			t.Errorf("exercise %s sets = %d below minimum", ex.ID, ex.Sets)
		}
	}

	first := SinglePassRedistribute(days, result.issues)
	if got[0].Exercises[0].Sets >= first[0].Exercises[0].Sets {
		t.Errorf("iterative strategy should reduce beyond a single pass: got %d, single pass %d",
			got[0].Exercises[0].Sets, first[0].Exercises[0].Sets)
	}
}
