package training

import (
	"time"
)

// ExperienceLevel represents how long and how consistently a user has trained.
type ExperienceLevel string

const (
	ExperienceNone         ExperienceLevel = "none"
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// Goal represents the primary training goal.
type Goal string

const (
	GoalStrength       Goal = "strength"
	GoalHypertrophy    Goal = "hypertrophy"
	GoalEndurance      Goal = "endurance"
	GoalWeightLoss     Goal = "weight_loss"
	GoalGeneralFitness Goal = "general_fitness"
)

// ActivityLevel represents the user's current training frequency.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityHeavy     ActivityLevel = "heavy"
	ActivityAthlete   ActivityLevel = "athlete"
)

// Style represents the weekly split of a training program.
type Style string

const (
	StyleFullBody     Style = "full_body"
	StyleUpperLower   Style = "upper_lower"
	StylePushPullLegs Style = "push_pull_legs"
)

// SessionLength represents how much time the user has per session.
type SessionLength string

const (
	Session30Min  SessionLength = "30_min"
	Session45Min  SessionLength = "45_min"
	Session60Min  SessionLength = "60_min"
	Session90Min  SessionLength = "90_min"
	Session120Min SessionLength = "120_min"
)

// MuscleGroup identifies a trainable muscle group.
type MuscleGroup string

const (
	MuscleChest     MuscleGroup = "chest"
	MuscleBack      MuscleGroup = "back"
	MuscleShoulders MuscleGroup = "shoulders"
	MuscleBiceps    MuscleGroup = "biceps"
	MuscleTriceps   MuscleGroup = "triceps"
	MuscleLegs      MuscleGroup = "legs"
	MuscleCore      MuscleGroup = "core"
)

// Profile holds the answers collected during onboarding. TrainingDays are
// weekday numbers 0 (Sunday) through 6 (Saturday).
type Profile struct {
	UserID        string          `json:"userId"`
	Experience    ExperienceLevel `json:"experience"`
	Goal          Goal            `json:"goal"`
	Activity      ActivityLevel   `json:"activityLevel"`
	Style         Style           `json:"preferredStyle,omitempty"`
	TrainingDays  []int           `json:"trainingDays"`
	SessionLength SessionLength   `json:"sessionLength"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// Exercise is a single prescribed exercise inside a workout day.
// Reps is a range such as "8-12".
type Exercise struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	TargetMuscle MuscleGroup `json:"targetMuscle"`
	Sets         int         `json:"sets"`
	Reps         string      `json:"reps"`
	RestTime     int         `json:"restTime"`
	Compound     bool        `json:"compound"`
}

// WorkoutDay is one session of a training program.
// EstimatedTime is in minutes.
type WorkoutDay struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Exercises     []Exercise `json:"exercises"`
	EstimatedTime float64    `json:"estimatedTime"`
	FocusArea     string     `json:"focusArea"`
}

// Program is a generated weekly training program. Frequency is sessions per
// week and RestDays lists the weekday numbers without a session.
type Program struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Level       ExperienceLevel `json:"level"`
	Style       Style           `json:"style"`
	WorkoutDays []WorkoutDay    `json:"workoutDays"`
	Frequency   int             `json:"frequency"`
	RestDays    []int           `json:"restDays"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// Progression tracks week-over-week volume adjustments on a stored program.
type Progression struct {
	CurrentWeek    int       `json:"currentWeek"`
	LastUpdated    time.Time `json:"lastUpdated"`
	VolumeIncrease float64   `json:"volumeIncrease"`
	DeloadWeek     int       `json:"deloadWeek"`
}

// ProgramDocument is the persisted form of a program. Only one document per
// user is active at a time.
type ProgramDocument struct {
	Program
	UserID      string      `json:"userId"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	Active      bool        `json:"active"`
	Progression Progression `json:"progression"`
}

// Feedback captures how a completed session felt. All ratings are on a 1-5
// scale.
type Feedback struct {
	Difficulty    int `json:"difficulty"`
	CompletedSets int `json:"completedSets"`
	FailedSets    int `json:"failedSets"`
	EnergyLevel   int `json:"energyLevel"`
	MuscularPain  int `json:"muscularPain"`
}

// ValidationIssue describes a problem found when checking a generated week,
// either a session exceeding the volume ceiling or a muscle trained again
// before it has recovered.
type ValidationIssue struct {
	Type    string      `json:"type"`
	Message string      `json:"message"`
	Muscle  MuscleGroup `json:"muscle"`
	Days    []int       `json:"days"`
}
