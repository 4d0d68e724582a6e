package training

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidParams marks day parameters that cannot produce a usable session,
// such as a non-positive time adjustment.
var ErrInvalidParams = errors.New("invalid workout parameters")

// Issue codes found when validating day parameters.
const (
	issueVolumeHigh           = "VOLUME_HIGH"
	issueTimeInvalid          = "TIME_INVALID"
	issueExerciseDistribution = "EXERCISE_DISTRIBUTION"
)

// paramIssue is a problem with the inputs of a single day build.
type paramIssue struct {
	code    string
	message string
}

// validateDayParams checks the inputs for building one day. Missing required
// parameters short-circuit as a time issue; out-of-range set counts are
// reported as volume issues.
func validateDayParams(params dayParams) []paramIssue {
	var issues []paramIssue

	if params.level == "" || params.config == (experienceConfig{}) || params.goal == (goalConfig{}) {
		return []paramIssue{{code: issueTimeInvalid, message: "missing required parameters"}}
	}

	if params.timeAdjustment <= 0 {
		issues = append(issues, paramIssue{
			code:    issueTimeInvalid,
			message: fmt.Sprintf("invalid time adjustment %g", params.timeAdjustment),
		})
	}

	if params.config.SetsPerExercise < minSets {
		issues = append(issues, paramIssue{
			code:    issueVolumeHigh,
			message: fmt.Sprintf("sets per exercise %d below minimum", params.config.SetsPerExercise),
		})
	}

	if params.config.SetsPerExercise > maxSets {
		issues = append(issues, paramIssue{
			code:    issueVolumeHigh,
			message: fmt.Sprintf("sets per exercise %d above maximum", params.config.SetsPerExercise),
		})
	}

	return issues
}

func hasIssue(issues []paramIssue, code string) bool {
	for _, issue := range issues {
		if issue.code == code {
			return true
		}
	}
	return false
}

// validationResult is the outcome of checking a generated week.
type validationResult struct {
	valid  bool
	issues []ValidationIssue
}

// checkMuscleOverlap validates a generated week: sessions must stay under the
// volume ceiling and every muscle needs its recovery time between uses.
// selectedDays are the weekday numbers the sessions fall on.
func checkMuscleOverlap(days []WorkoutDay, selectedDays []int) validationResult {
	var issues []ValidationIssue

	for i, day := range days {
		if dayVolume(day) > maxVolumePerWorkout {
			issues = append(issues, ValidationIssue{
				Type:    "volume",
				Message: fmt.Sprintf("volume too high in session %s", day.Name),
				Muscle:  MuscleGroup(day.FocusArea),
				Days:    []int{selectedDays[i]},
			})
		}
	}

	// One usage entry per exercise, so a session hitting a muscle twice also
	// counts as back-to-back use.
	muscleUsage := make(map[MuscleGroup][]int)
	for i, day := range days {
		for _, ex := range day.Exercises {
			muscleUsage[ex.TargetMuscle] = append(muscleUsage[ex.TargetMuscle], selectedDays[i])
		}
	}

	muscles := make([]MuscleGroup, 0, len(muscleUsage))
	for muscle := range muscleUsage {
		muscles = append(muscles, muscle)
	}
	sort.Slice(muscles, func(i, j int) bool { return muscles[i] < muscles[j] })

	for _, muscle := range muscles {
		usageDays := append([]int(nil), muscleUsage[muscle]...)
		sort.Ints(usageDays)

		minRecoveryDays := float64(muscleRecoveryHours[muscle]) / 24
		for i := 1; i < len(usageDays); i++ {
			between := daysBetween(usageDays[i-1], usageDays[i])
			if float64(between) < minRecoveryDays {
				issues = append(issues, ValidationIssue{
					Type: "recovery",
					Message: fmt.Sprintf("%s has insufficient recovery between days %d and %d",
						muscle, usageDays[i-1], usageDays[i]),
					Muscle: muscle,
					Days:   []int{usageDays[i-1], usageDays[i]},
				})
			}
		}
	}

	return validationResult{valid: len(issues) == 0, issues: issues}
}

// daysBetween returns the distance in days between two weekday numbers,
// wrapping around the week.
func daysBetween(day1, day2 int) int {
	if day2 < day1 {
		return 7 - day1 + day2
	}
	return day2 - day1
}
