package training

import (
	"math"
	"strconv"
	"strings"
)

// progressionStrategy limits weekly volume growth per experience level.
type progressionStrategy struct {
	WeeklyIncrease      float64
	DeloadFrequency     int
	VolumeReduction     float64
	MaxVolumePerSession int
}

var progressionStrategies = map[ExperienceLevel]progressionStrategy{
	ExperienceNone: {
		WeeklyIncrease:      0.05,
		DeloadFrequency:     6,
		VolumeReduction:     0.4,
		MaxVolumePerSession: 120,
	},
	ExperienceBeginner: {
		WeeklyIncrease:      0.1,
		DeloadFrequency:     8,
		VolumeReduction:     0.5,
		MaxVolumePerSession: 150,
	},
	ExperienceIntermediate: {
		WeeklyIncrease:      0.07,
		DeloadFrequency:     10,
		VolumeReduction:     0.6,
		MaxVolumePerSession: 180,
	},
	ExperienceAdvanced: {
		WeeklyIncrease:      0.05,
		DeloadFrequency:     12,
		VolumeReduction:     0.7,
		MaxVolumePerSession: 200,
	},
}

// Compound movements fatigue more than isolation work.
const (
	compoundFatigueWeight  = 1.5
	isolationFatigueWeight = 1.0
	targetFatigueRatio     = 0.8
)

// muscleRecoveryHours is the minimum recovery time per muscle group.
var muscleRecoveryHours = map[MuscleGroup]int{
	MuscleLegs:      72,
	MuscleBack:      48,
	MuscleChest:     48,
	MuscleShoulders: 48,
	MuscleBiceps:    24,
	MuscleTriceps:   24,
	MuscleCore:      24,
}

// fatigueIndex scores a session by volume load, weighting compound exercises
// heavier.
func fatigueIndex(day WorkoutDay) float64 {
	var total float64
	for _, ex := range day.Exercises {
		volumeLoad := float64(ex.Sets) * averageReps(ex.Reps)
		weight := isolationFatigueWeight
		if ex.Compound {
			weight = compoundFatigueWeight
		}
		total += volumeLoad * weight
	}
	return total
}

// targetFatigue is the fatigue a session should aim for at a given level.
func targetFatigue(level ExperienceLevel) float64 {
	strategy := progressionStrategies[level]
	return float64(strategy.MaxVolumePerSession) * targetFatigueRatio
}

// adjustDayForFatigue scales set counts toward the target fatigue. Sessions
// above the level's volume ceiling get a deload-style reduction instead.
func adjustDayForFatigue(day WorkoutDay, target float64, level ExperienceLevel) WorkoutDay {
	currentFatigue := fatigueIndex(day)
	strategy := progressionStrategies[level]

	if currentFatigue > float64(strategy.MaxVolumePerSession) {
		return reduceDayVolume(day, strategy.VolumeReduction)
	}

	adjustment := target / currentFatigue
	exercises := make([]Exercise, len(day.Exercises))
	for i, ex := range day.Exercises {
		ex.Sets = max(minSets, int(math.Round(float64(ex.Sets)*adjustment)))
		exercises[i] = ex
	}
	day.Exercises = exercises
	return day
}

// reduceDayVolume cuts every set count by the reduction factor, floored at
// the minimum sets.
func reduceDayVolume(day WorkoutDay, reductionFactor float64) WorkoutDay {
	exercises := make([]Exercise, len(day.Exercises))
	for i, ex := range day.Exercises {
		ex.Sets = max(minSets, int(float64(ex.Sets)*reductionFactor))
		exercises[i] = ex
	}
	day.Exercises = exercises
	return day
}

// averageReps returns the midpoint of a "min-max" rep range. Malformed
// ranges count as zero.
func averageReps(reps string) float64 {
	lo, hi, ok := parseRepRange(reps)
	if !ok {
		return 0
	}
	return float64(lo+hi) / 2
}

// parseRepRange splits a rep range such as "8-12" into its bounds.
func parseRepRange(reps string) (int, int, bool) {
	parts := strings.SplitN(reps, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	lo, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	hi, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	return lo, hi, true
}
