package training

// RedistributeFunc resolves validation issues in a generated week by
// reshaping the sessions. The returned slice replaces the generated days.
type RedistributeFunc func(days []WorkoutDay, issues []ValidationIssue) []WorkoutDay

// SinglePassRedistribute reduces volume for flagged muscles in a single pass
// without re-validating the result. A session is affected when its position
// in the week appears in an issue's day list.
func SinglePassRedistribute(days []WorkoutDay, issues []ValidationIssue) []WorkoutDay {
	adjusted := make([]WorkoutDay, len(days))
	for i, day := range days {
		problematic := make(map[MuscleGroup]bool)
		for _, issue := range issues {
			if containsInt(issue.Days, i) {
				problematic[issue.Muscle] = true
			}
		}

		if len(problematic) == 0 {
			adjusted[i] = day
			continue
		}

		exercises := make([]Exercise, len(day.Exercises))
		for j, ex := range day.Exercises {
			if problematic[ex.TargetMuscle] {
				ex.Sets = max(minSets, ex.Sets-1)
			}
			exercises[j] = ex
		}
		day.Exercises = exercises
		adjusted[i] = day
	}
	return adjusted
}

// NewIterativeRedistribute returns a redistribution strategy that re-checks
// the week after each pass and keeps reducing until it validates or maxRounds
// is reached. selectedDays must match the weekdays the sessions fall on.
func NewIterativeRedistribute(selectedDays []int, maxRounds int) RedistributeFunc {
	return func(days []WorkoutDay, issues []ValidationIssue) []WorkoutDay {
		current := days
		for range maxRounds {
			if len(issues) == 0 {
				break
			}
			current = SinglePassRedistribute(current, issues)
			result := checkMuscleOverlap(current, selectedDays)
			if result.valid {
				break
			}
			issues = result.issues
		}
		return current
	}
}
