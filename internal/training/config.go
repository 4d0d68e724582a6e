package training

// experienceConfig holds the base prescription for an experience level.
type experienceConfig struct {
	SetsPerExercise    int
	ExercisesPerMuscle int
	RestTime           int
	Reps               string
	ComplexityLimit    int
	WeeklyProgression  float64
}

var experienceConfigs = map[ExperienceLevel]experienceConfig{
	ExperienceNone: {
		SetsPerExercise:    3,
		ExercisesPerMuscle: 1,
		RestTime:           90,
		Reps:               "12-15",
		ComplexityLimit:    2,
		WeeklyProgression:  5,
	},
	ExperienceBeginner: {
		SetsPerExercise:    3,
		ExercisesPerMuscle: 2,
		RestTime:           75,
		Reps:               "10-12",
		ComplexityLimit:    3,
		WeeklyProgression:  10,
	},
	ExperienceIntermediate: {
		SetsPerExercise:    4,
		ExercisesPerMuscle: 3,
		RestTime:           60,
		Reps:               "8-12",
		ComplexityLimit:    4,
		WeeklyProgression:  7.5,
	},
	ExperienceAdvanced: {
		SetsPerExercise:    4,
		ExercisesPerMuscle: 4,
		RestTime:           45,
		Reps:               "6-12",
		ComplexityLimit:    5,
		WeeklyProgression:  5,
	},
}

// goalConfig holds the multipliers applied for a training goal.
type goalConfig struct {
	SetsMultiplier     float64
	RestTimeMultiplier float64
	RepsAdjustment     string
	CompoundFocus      float64
	VolumeDistribution string
}

var goalConfigs = map[Goal]goalConfig{
	GoalStrength: {
		SetsMultiplier:     1.2,
		RestTimeMultiplier: 1.5,
		RepsAdjustment:     "4-6",
		CompoundFocus:      0.8,
		VolumeDistribution: "ascending",
	},
	GoalHypertrophy: {
		SetsMultiplier:     1.1,
		RestTimeMultiplier: 1,
		RepsAdjustment:     "8-12",
		CompoundFocus:      0.6,
		VolumeDistribution: "balanced",
	},
	GoalEndurance: {
		SetsMultiplier:     0.8,
		RestTimeMultiplier: 0.7,
		RepsAdjustment:     "15-20",
		CompoundFocus:      0.5,
		VolumeDistribution: "descending",
	},
	GoalWeightLoss: {
		SetsMultiplier:     1,
		RestTimeMultiplier: 0.8,
		RepsAdjustment:     "12-15",
		CompoundFocus:      0.7,
		VolumeDistribution: "balanced",
	},
	GoalGeneralFitness: {
		SetsMultiplier:     1,
		RestTimeMultiplier: 1,
		RepsAdjustment:     "10-15",
		CompoundFocus:      0.6,
		VolumeDistribution: "balanced",
	},
}

// activityAdjustment scales the base prescription by how much the user
// currently trains.
type activityAdjustment struct {
	VolumeMultiplier    float64
	IntensityMultiplier float64
	RestMultiplier      float64
	AdaptationWeeks     int
}

var activityAdjustments = map[ActivityLevel]activityAdjustment{
	ActivitySedentary: {
		VolumeMultiplier:    0.7,
		IntensityMultiplier: 0.6,
		RestMultiplier:      1.3,
		AdaptationWeeks:     4,
	},
	ActivityLight: {
		VolumeMultiplier:    0.8,
		IntensityMultiplier: 0.8,
		RestMultiplier:      1.2,
		AdaptationWeeks:     3,
	},
	ActivityModerate: {
		VolumeMultiplier:    1,
		IntensityMultiplier: 1,
		RestMultiplier:      1,
		AdaptationWeeks:     2,
	},
	ActivityHeavy: {
		VolumeMultiplier:    1.1,
		IntensityMultiplier: 1.1,
		RestMultiplier:      0.9,
		AdaptationWeeks:     1,
	},
	ActivityAthlete: {
		VolumeMultiplier:    1.2,
		IntensityMultiplier: 1.2,
		RestMultiplier:      0.8,
		AdaptationWeeks:     0,
	},
}

// muscleSize ranks muscle groups by relative size on a 1-10 scale. Larger
// groups are trained earlier in a session.
var muscleSize = map[MuscleGroup]int{
	MuscleLegs:      10,
	MuscleBack:      9,
	MuscleChest:     8,
	MuscleShoulders: 6,
	MuscleCore:      5,
	MuscleBiceps:    4,
	MuscleTriceps:   4,
}

// weeklyFrequency maps activity level to sessions per week.
func weeklyFrequency(activity ActivityLevel) int {
	switch activity {
	case ActivitySedentary:
		return 2
	case ActivityLight:
		return 3
	case ActivityModerate:
		return 4
	case ActivityHeavy:
		return 5
	case ActivityAthlete:
		return 6
	default:
		return 3
	}
}

// timeAdjustment maps the session length to a volume and rest scaling factor.
func timeAdjustment(length SessionLength) float64 {
	switch length {
	case Session30Min:
		return 0.6
	case Session45Min:
		return 0.8
	case Session60Min:
		return 1.0
	case Session90Min:
		return 1.2
	case Session120Min:
		return 1.4
	default:
		return 1.0
	}
}
