package training

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		day1 int
		day2 int
		want int
	}{
		{name: "same day", day1: 3, day2: 3, want: 0},
		{name: "forward", day1: 1, day2: 3, want: 2},
		{name: "adjacent", day1: 4, day2: 5, want: 1},
		{name: "wraps around the week", day1: 5, day2: 1, want: 3},
		{name: "saturday to sunday", day1: 6, day2: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := daysBetween(tt.day1, tt.day2); got != tt.want {
				t.Errorf("daysBetween(%d, %d) = %d, want %d", tt.day1, tt.day2, got, tt.want)
			}
		})
	}
}

func TestValidateDayParams(t *testing.T) {
	valid := dayParams{
		config:         experienceConfigs[ExperienceBeginner],
		goal:           goalConfigs[GoalGeneralFitness],
		timeAdjustment: 1.0,
		level:          ExperienceBeginner,
	}

	tests := []struct {
		name      string
		mutate    func(p dayParams) dayParams
		wantCodes []string
	}{
		{
			name:      "valid parameters",
			mutate:    func(p dayParams) dayParams { return p },
			wantCodes: nil,
		},
		{
			name: "missing level",
			mutate: func(p dayParams) dayParams {
				p.level = ""
				return p
			},
			wantCodes: []string{issueTimeInvalid},
		},
		{
			name: "missing goal config",
			mutate: func(p dayParams) dayParams {
				p.goal = goalConfig{}
				return p
			},
			wantCodes: []string{issueTimeInvalid},
		},
		{
			name: "non-positive time adjustment",
			mutate: func(p dayParams) dayParams {
				p.timeAdjustment = 0
				return p
			},
			wantCodes: []string{issueTimeInvalid},
		},
		{
			name: "sets below minimum",
			mutate: func(p dayParams) dayParams {
				p.config.SetsPerExercise = 1
				return p
			},
			wantCodes: []string{issueVolumeHigh},
		},
		{
			name: "sets above maximum",
			mutate: func(p dayParams) dayParams {
				p.config.SetsPerExercise = 7
				return p
			},
			wantCodes: []string{issueVolumeHigh},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := validateDayParams(tt.mutate(valid))
			var codes []string
			for _, issue := range issues {
				codes = append(codes, issue.code)
			}
			if diff := cmp.Diff(tt.wantCodes, codes); diff != "" {
				t.Errorf("issue codes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCheckMuscleOverlap_Valid(t *testing.T) {
	days := []WorkoutDay{
		{
			Name:      "chest day",
			FocusArea: "Push",
			Exercises: []Exercise{
				{ID: "bench", TargetMuscle: MuscleChest, Sets: 3, Reps: "8-12"},
			},
		},
		{
			Name:      "biceps day",
			FocusArea: "Pull",
			Exercises: []Exercise{
				{ID: "curl", TargetMuscle: MuscleBiceps, Sets: 3, Reps: "8-12"},
			},
		},
	}

	result := checkMuscleOverlap(days, []int{1, 3})
	if !result.valid {
		t.Errorf("expected valid week, got issues %+v", result.issues)
	}
}

func TestCheckMuscleOverlap_VolumeTooHigh(t *testing.T) {
	days := []WorkoutDay{
		{
			Name:      "monster session",
			FocusArea: "legs",
			Exercises: []Exercise{
				// 6 sets of ~17.5 reps each, times four exercises, is well over the ceiling.
				{ID: "a", TargetMuscle: MuscleLegs, Sets: 6, Reps: "15-20"},
				{ID: "b", TargetMuscle: MuscleLegs, Sets: 6, Reps: "15-20"},
				{ID: "c", TargetMuscle: MuscleLegs, Sets: 6, Reps: "15-20"},
				{ID: "d", TargetMuscle: MuscleLegs, Sets: 6, Reps: "15-20"},
			},
		},
	}

	result := checkMuscleOverlap(days, []int{2})
	if result.valid {
		t.Fatal("expected volume issue")
	}

	var volumeIssues []ValidationIssue
	for _, issue := range result.issues {
		if issue.Type == "volume" {
			volumeIssues = append(volumeIssues, issue)
		}
	}
	if len(volumeIssues) != 1 {
		t.Fatalf("volume issues = %d, want 1", len(volumeIssues))
	}
	if diff := cmp.Diff([]int{2}, volumeIssues[0].Days); diff != "" {
		t.Errorf("issue days mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckMuscleOverlap_InsufficientRecovery(t *testing.T) {
	legDay := func(name string) WorkoutDay {
		return WorkoutDay{
			Name:      name,
			FocusArea: "Legs",
			Exercises: []Exercise{
				{ID: "squat", TargetMuscle: MuscleLegs, Sets: 3, Reps: "8-12"},
			},
		}
	}

	// Legs need 72 hours; two days apart is not enough.
	result := checkMuscleOverlap([]WorkoutDay{legDay("legs 1"), legDay("legs 2")}, []int{1, 3})
	if result.valid {
		t.Fatal("expected recovery issue")
	}
	issue := result.issues[0]
	if issue.Type != "recovery" {
		t.Errorf("issue type = %q, want recovery", issue.Type)
	}
	if issue.Muscle != MuscleLegs {
		t.Errorf("issue muscle = %v, want %v", issue.Muscle, MuscleLegs)
	}
	if diff := cmp.Diff([]int{1, 3}, issue.Days); diff != "" {
		t.Errorf("issue days mismatch (-want +got):\n%s", diff)
	}

	// Three days apart clears the 72 hour requirement.
	result = checkMuscleOverlap([]WorkoutDay{legDay("legs 1"), legDay("legs 2")}, []int{1, 4})
	if !result.valid {
		t.Errorf("expected valid week, got issues %+v", result.issues)
	}
}

func TestCheckMuscleOverlap_SameSessionCountsAsBackToBack(t *testing.T) {
	day := WorkoutDay{
		Name:      "double chest",
		FocusArea: "Push",
		Exercises: []Exercise{
			{ID: "bench", TargetMuscle: MuscleChest, Sets: 3, Reps: "8-12"},
			{ID: "fly", TargetMuscle: MuscleChest, Sets: 3, Reps: "8-12"},
		},
	}

	result := checkMuscleOverlap([]WorkoutDay{day}, []int{1})
	if result.valid {
		t.Fatal("hitting a muscle twice in one session should flag recovery")
	}
	if result.issues[0].Type != "recovery" {
		t.Errorf("issue type = %q, want recovery", result.issues[0].Type)
	}
}
