package training

import (
	"fmt"
	"math"
)

// adjustForGoal reshapes a built day for the training goal.
func adjustForGoal(day WorkoutDay, goal Goal, level ExperienceLevel) WorkoutDay {
	switch goal {
	case GoalStrength:
		return emphasizeCompounds(day, level)
	case GoalHypertrophy:
		return balanceVolume(day)
	case GoalEndurance:
		return increaseDensity(day)
	case GoalWeightLoss:
		return optimizeForCalorieBurn(day)
	default:
		return day
	}
}

// emphasizeCompounds gives compound exercises an extra set, capped by the
// level's volume ceiling, and longer rest.
func emphasizeCompounds(day WorkoutDay, level ExperienceLevel) WorkoutDay {
	strategy := progressionStrategies[level]
	setsCap := strategy.MaxVolumePerSession / 10

	exercises := make([]Exercise, len(day.Exercises))
	for i, ex := range day.Exercises {
		if ex.Compound {
			ex.Sets = min(ex.Sets+1, setsCap)
			ex.RestTime = int(math.Round(float64(ex.RestTime) * 1.2))
		}
		exercises[i] = ex
	}
	day.Exercises = exercises
	return day
}

// balanceVolume moderates sets and fixes rest for hypertrophy work.
func balanceVolume(day WorkoutDay) WorkoutDay {
	exercises := make([]Exercise, len(day.Exercises))
	for i, ex := range day.Exercises {
		ex.Sets = min(4, ex.Sets)
		ex.RestTime = 60
		exercises[i] = ex
	}
	day.Exercises = exercises
	return day
}

// increaseDensity trades sets for reps and shortens rest for endurance work.
func increaseDensity(day WorkoutDay) WorkoutDay {
	exercises := make([]Exercise, len(day.Exercises))
	for i, ex := range day.Exercises {
		ex.Sets = max(minSets, ex.Sets-1)
		ex.Reps = shiftRepRange(ex.Reps, 4)
		ex.RestTime = max(minRestSeconds, int(math.Round(float64(ex.RestTime)*0.7)))
		exercises[i] = ex
	}
	day.Exercises = exercises
	return day
}

// optimizeForCalorieBurn standardizes moderate volume with short rest.
func optimizeForCalorieBurn(day WorkoutDay) WorkoutDay {
	exercises := make([]Exercise, len(day.Exercises))
	for i, ex := range day.Exercises {
		ex.Sets = 3
		ex.Reps = "12-15"
		ex.RestTime = max(minRestSeconds, int(math.Round(float64(ex.RestTime)*0.8)))
		exercises[i] = ex
	}
	day.Exercises = exercises
	return day
}

// shiftRepRange moves both bounds of a rep range up by delta. The range is
// returned unchanged when it cannot be parsed.
func shiftRepRange(reps string, delta int) string {
	lo, hi, ok := parseRepRange(reps)
	if !ok {
		return reps
	}
	return fmt.Sprintf("%d-%d", lo+delta, hi+delta)
}

// adjustDayForIssues degrades a built day according to the parameter issues
// found during validation.
func adjustDayForIssues(day WorkoutDay, issues []paramIssue) WorkoutDay {
	const (
		deloadVolumeReduction = 0.4
		restReduction         = 0.8
	)

	for _, issue := range issues {
		switch issue.code {
		case issueVolumeHigh:
			exercises := make([]Exercise, len(day.Exercises))
			for i, ex := range day.Exercises {
				ex.Sets = max(minSets, int(float64(ex.Sets)*deloadVolumeReduction))
				exercises[i] = ex
			}
			day.Exercises = exercises
		case issueTimeInvalid:
			exercises := make([]Exercise, len(day.Exercises))
			for i, ex := range day.Exercises {
				ex.RestTime = max(minRestSeconds, int(float64(ex.RestTime)*restReduction))
				exercises[i] = ex
			}
			day.Exercises = exercises
		case issueExerciseDistribution:
			day = rebalanceExercises(day)
		}
	}
	return day
}

// rebalanceExercises shifts a set from each isolation exercise to each
// compound, putting compounds first.
func rebalanceExercises(day WorkoutDay) WorkoutDay {
	var compounds, isolations []Exercise
	for _, ex := range day.Exercises {
		if ex.Compound {
			ex.Sets++
			compounds = append(compounds, ex)
		} else {
			ex.Sets = max(minSets, ex.Sets-1)
			isolations = append(isolations, ex)
		}
	}
	day.Exercises = append(compounds, isolations...)
	return day
}

// AdjustForFeedback reshapes the next occurrence of a session from how the
// previous one felt. Sets land in [2,5] and rest in [30,120] seconds.
func AdjustForFeedback(day WorkoutDay, feedback Feedback) WorkoutDay {
	factor := adjustmentFactor(feedback)

	exercises := make([]Exercise, len(day.Exercises))
	for i, ex := range day.Exercises {
		ex.Sets = clampInt(int(math.Round(float64(ex.Sets)*factor)), 2, 5)
		ex.RestTime = adjustRestForEnergy(ex.RestTime, feedback.EnergyLevel)
		exercises[i] = ex
	}
	day.Exercises = exercises
	return day
}

// adjustmentFactor combines the feedback ratings into a volume factor
// clamped to [0.8, 1.2]. Lower energy and more pain reduce it.
func adjustmentFactor(feedback Feedback) float64 {
	if feedback.CompletedSets <= 0 {
		return 0.8
	}

	difficultyFactor := float64(feedback.Difficulty-3) * 0.1
	failureFactor := float64(feedback.FailedSets) / float64(feedback.CompletedSets) * -0.2
	energyFactor := float64(feedback.EnergyLevel-3) * 0.05
	painFactor := float64(feedback.MuscularPain-3) * -0.05

	total := 1 + difficultyFactor + failureFactor + energyFactor + painFactor
	return math.Min(math.Max(total, 0.8), 1.2)
}

// adjustRestForEnergy lengthens rest when energy was low and shortens it when
// energy was high.
func adjustRestForEnergy(currentRest, energyLevel int) int {
	adjustment := 1 + float64(energyLevel-3)*-0.1
	newRest := int(math.Round(float64(currentRest) * adjustment))
	return clampInt(newRest, 30, 120)
}
