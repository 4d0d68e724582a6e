// Package training builds personalized weekly training programs from an
// onboarding profile and an exercise catalog.
package training

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Hard limits applied when assembling a workout day.
const (
	minSets             = 2
	maxSets             = 6
	minRestSeconds      = 30
	maxRestSeconds      = 180
	setDurationSeconds  = 45
	maxVolumePerWorkout = 300
)

// Muscle group rotations per split. Successive sessions cycle through the
// variations so the same week does not repeat one ordering.
var (
	fullBodyVariations = [][]MuscleGroup{
		{MuscleChest, MuscleBack, MuscleLegs, MuscleShoulders, MuscleBiceps, MuscleTriceps, MuscleCore},
		{MuscleBack, MuscleLegs, MuscleShoulders, MuscleChest, MuscleTriceps, MuscleBiceps, MuscleCore},
		{MuscleLegs, MuscleChest, MuscleBack, MuscleShoulders, MuscleBiceps, MuscleTriceps, MuscleCore},
	}
	upperVariations = [][]MuscleGroup{
		{MuscleChest, MuscleBack, MuscleShoulders, MuscleTriceps, MuscleBiceps},
		{MuscleBack, MuscleChest, MuscleShoulders, MuscleBiceps, MuscleTriceps},
		{MuscleShoulders, MuscleChest, MuscleBack, MuscleTriceps, MuscleBiceps},
	}
	lowerVariations = [][]MuscleGroup{
		{MuscleLegs, MuscleCore},
		{MuscleCore, MuscleLegs},
	}
	pushMuscles = []MuscleGroup{MuscleChest, MuscleShoulders, MuscleTriceps}
	pullMuscles = []MuscleGroup{MuscleBack, MuscleBiceps}
	legsMuscles = []MuscleGroup{MuscleLegs, MuscleCore}
)

// generator builds training programs.
type generator struct {
	profile      Profile
	cache        *selectionCache
	redistribute RedistributeFunc
	newID        func() string
	now          func() time.Time
}

// newGenerator constructs a program generator. The cache is shared across
// generations so repeated selections hit it.
func newGenerator(
	profile Profile,
	cache *selectionCache,
	redistribute RedistributeFunc,
	newID func() string,
	now func() time.Time,
) *generator {
	if cache == nil {
		cache = newSelectionCache(nil)
	}
	if redistribute == nil {
		redistribute = SinglePassRedistribute
	}
	if newID == nil {
		newID = uuid.NewString
	}
	if now == nil {
		now = time.Now
	}
	return &generator{
		profile:      profile,
		cache:        cache,
		redistribute: redistribute,
		newID:        newID,
		now:          now,
	}
}

// Generate builds a complete program for the generator's profile.
func (g *generator) Generate() (Program, error) {
	level := g.profile.Experience
	if level == "" {
		level = ExperienceNone
	}

	style := determineStyle(g.profile)
	workoutDays, err := g.generateWorkoutDays(style, level)
	if err != nil {
		return Program{}, fmt.Errorf("generate workout days: %w", err)
	}

	return Program{
		ID:          g.newID(),
		Name:        fmt.Sprintf("Programa %s - %s", level, style),
		Level:       level,
		Style:       style,
		WorkoutDays: workoutDays,
		Frequency:   weeklyFrequency(g.profile.Activity),
		RestDays:    restDays(g.profile.TrainingDays),
		CreatedAt:   g.now(),
	}, nil
}

// determineStyle decides the weekly split from experience, activity level,
// and how many days the user can train. The preferred style is only honored
// when no recommendation applies.
func determineStyle(profile Profile) Style {
	frequency := len(profile.TrainingDays)

	if profile.Experience == ExperienceNone || profile.Activity == ActivitySedentary {
		return StyleFullBody
	}

	if frequency <= 3 {
		return StyleFullBody
	}

	if frequency == 4 {
		return StyleUpperLower
	}

	if frequency >= 5 && profile.Experience != ExperienceBeginner {
		return StylePushPullLegs
	}

	if profile.Style != "" {
		return profile.Style
	}
	return StyleFullBody
}

// restDays returns the weekdays not selected for training.
func restDays(selectedDays []int) []int {
	rest := make([]int, 0, 7)
	for day := range 7 {
		if !containsInt(selectedDays, day) {
			rest = append(rest, day)
		}
	}
	return rest
}

// dayParams bundles the inputs for building one workout day.
type dayParams struct {
	config         experienceConfig
	goal           goalConfig
	timeAdjustment float64
	variation      int
	level          ExperienceLevel
}

// generateWorkoutDays builds one day per selected weekday, applies the goal
// and fatigue adjustments, and redistributes volume when the week fails
// validation.
func (g *generator) generateWorkoutDays(style Style, level ExperienceLevel) ([]WorkoutDay, error) {
	goal := g.profile.Goal
	if goal == "" {
		goal = GoalGeneralFitness
	}
	activity := g.profile.Activity
	if activity == "" {
		activity = ActivityModerate
	}

	base := baseConfig(level, activity)
	goalCfg := goalConfigs[goal]
	timeAdj := timeAdjustment(g.profile.SessionLength)
	selectedDays := g.profile.TrainingDays

	workoutDays := make([]WorkoutDay, 0, len(selectedDays))
	for index := range selectedDays {
		params := dayParams{
			config:         base,
			goal:           goalCfg,
			timeAdjustment: timeAdj,
			variation:      0,
			level:          level,
		}

		var (
			day WorkoutDay
			err error
		)
		switch style {
		case StyleUpperLower:
			params.variation = index % 2
			if index%2 == 0 {
				day = g.upperDay(params)
			} else {
				day = g.lowerDay(params)
			}
		case StylePushPullLegs:
			params.variation = index % 3
			switch index % 3 {
			case 0:
				day = g.pushDay(params)
			case 1:
				day = g.pullDay(params)
			default:
				day = g.legsDay(params)
			}
		default:
			params.variation = index % 3
			day, err = g.fullBodyDay(params)
		}
		if err != nil {
			return nil, err
		}

		workoutDays = append(workoutDays, day)
	}

	for i, day := range workoutDays {
		adjusted := adjustForGoal(day, goal, level)
		workoutDays[i] = adjustDayForFatigue(adjusted, targetFatigue(level), level)
	}

	result := checkMuscleOverlap(workoutDays, selectedDays)
	if !result.valid {
		return g.redistribute(workoutDays, result.issues), nil
	}

	return workoutDays, nil
}

// baseConfig scales the experience prescription by the activity adjustments.
func baseConfig(level ExperienceLevel, activity ActivityLevel) experienceConfig {
	base := experienceConfigs[level]
	adjustment := activityAdjustments[activity]
	base.SetsPerExercise = int(math.Round(float64(base.SetsPerExercise) * adjustment.VolumeMultiplier))
	base.RestTime = int(math.Round(float64(base.RestTime) * adjustment.RestMultiplier))
	return base
}

// fullBodyDay builds a full-body session. It is the only builder that
// validates its parameters: a time issue aborts the whole program while other
// issues degrade the day instead.
func (g *generator) fullBodyDay(params dayParams) (WorkoutDay, error) {
	issues := validateDayParams(params)
	if len(issues) > 0 {
		if hasIssue(issues, issueTimeInvalid) {
			return WorkoutDay{}, fmt.Errorf("%w: %s", ErrInvalidParams, issues[0].message)
		}

		muscles := fullBodyVariations[params.variation%len(fullBodyVariations)]
		day := g.buildDay(muscles, params, 1, 1,
			fmt.Sprintf("Treino Full Body %d", params.variation+1), "Full Body")
		return adjustDayForIssues(day, issues), nil
	}

	muscles := fullBodyVariations[params.variation%len(fullBodyVariations)]
	return g.buildDay(muscles, params, 1, 1,
		fmt.Sprintf("Treino Full Body %d", params.variation+1), "Full Body"), nil
}

func (g *generator) upperDay(params dayParams) WorkoutDay {
	muscles := upperVariations[params.variation%len(upperVariations)]
	return g.buildDay(muscles, params, 1.2, 1,
		fmt.Sprintf("Treino Superior %d", params.variation+1), "Upper Body")
}

func (g *generator) lowerDay(params dayParams) WorkoutDay {
	muscles := lowerVariations[params.variation%len(lowerVariations)]
	return g.buildDay(muscles, params, 1.5, 2,
		fmt.Sprintf("Treino Inferior %d", params.variation+1), "Lower Body")
}

func (g *generator) pushDay(params dayParams) WorkoutDay {
	return g.buildDay(pushMuscles, params, 1.3, 2,
		fmt.Sprintf("Treino Push %d", params.variation+1), "Push")
}

func (g *generator) pullDay(params dayParams) WorkoutDay {
	return g.buildDay(pullMuscles, params, 1.3, 2,
		fmt.Sprintf("Treino Pull %d", params.variation+1), "Pull")
}

func (g *generator) legsDay(params dayParams) WorkoutDay {
	return g.buildDay(legsMuscles, params, 1.5, 2,
		fmt.Sprintf("Treino Legs %d", params.variation+1), "Legs")
}

// buildDay assembles a session for the given muscles. exerciseFactor and
// exerciseFloor control how many exercises each muscle gets on top of the
// time-adjusted base count.
func (g *generator) buildDay(
	muscles []MuscleGroup,
	params dayParams,
	exerciseFactor float64,
	exerciseFloor int,
	name string,
	focusArea string,
) WorkoutDay {
	exercisesPerMuscle := max(exerciseFloor,
		int(float64(params.config.ExercisesPerMuscle)*params.timeAdjustment*exerciseFactor))
	setsPerExercise := max(minSets,
		int(float64(params.config.SetsPerExercise)*params.goal.SetsMultiplier))
	restTime := max(minRestSeconds,
		int(float64(params.config.RestTime)*params.goal.RestTimeMultiplier*params.timeAdjustment))

	var exercises []Exercise
	for _, muscle := range muscles {
		for _, selected := range g.selectExercises(muscle, params.level, exercisesPerMuscle, params.variation) {
			exercises = append(exercises, Exercise{
				ID:           selected.ID,
				Name:         selected.Name,
				TargetMuscle: selected.TargetMuscle,
				Sets:         setsPerExercise,
				Reps:         params.goal.RepsAdjustment,
				RestTime:     restTime,
				Compound:     selected.Compound,
			})
		}
	}

	return g.assembleDay(exercises, name, focusArea)
}

// selectExercises picks exercises for a muscle: the highest-priority compound
// plus the top isolation exercises up to count. Selections are memoized in
// the cache; cache hits get a variation suffix on top of the stored id.
func (g *generator) selectExercises(
	muscle MuscleGroup,
	level ExperienceLevel,
	count int,
	variation int,
) []cachedExercise {
	key := g.cache.key(muscle, level, count)
	if cached, ok := g.cache.get(key); ok {
		for i := range cached {
			cached[i].ID = fmt.Sprintf("%s_%d", cached[i].ID, variation)
		}
		return cached
	}

	exerciseLevel := catalogLevel(level)

	compounds := compoundExercises(muscle, exerciseLevel)
	sortByPriority(compounds)
	if len(compounds) > 1 {
		compounds = compounds[:1]
	}

	isolations := isolationExercises(muscle, exerciseLevel)
	sortByPriority(isolations)
	if count-1 < 0 {
		isolations = nil
	} else if len(isolations) > count-1 {
		isolations = isolations[:count-1]
	}

	var selected []cachedExercise
	for i, ex := range append(compounds, isolations...) {
		selected = append(selected, cachedExercise{
			ID:           fmt.Sprintf("%s_%d_%d", ex.ID, variation, i),
			Name:         ex.Name,
			TargetMuscle: ex.TargetMuscle,
			Compound:     ex.Compound,
			Priority:     ex.Priority,
		})
	}

	g.cache.set(key, selected)
	return selected
}

// sortByPriority orders catalog entries by descending priority.
func sortByPriority(exercises []CatalogExercise) {
	sort.SliceStable(exercises, func(i, j int) bool {
		return exercises[i].Priority > exercises[j].Priority
	})
}

// assembleDay clamps sets and rest to the allowed ranges, orders the
// exercises, and computes the estimated session time.
func (g *generator) assembleDay(exercises []Exercise, name, focusArea string) WorkoutDay {
	if len(exercises) == 0 {
		return WorkoutDay{
			ID:            g.newID(),
			Name:          name,
			Exercises:     []Exercise{},
			EstimatedTime: 0,
			FocusArea:     focusArea,
		}
	}

	clamped := make([]Exercise, len(exercises))
	for i, ex := range exercises {
		ex.Sets = clampInt(ex.Sets, minSets, maxSets)
		ex.RestTime = clampInt(ex.RestTime, minRestSeconds, maxRestSeconds)
		clamped[i] = ex
	}

	ordered := orderExercises(clamped)
	return WorkoutDay{
		ID:            g.newID(),
		Name:          name,
		Exercises:     ordered,
		EstimatedTime: estimateWorkoutTime(ordered),
		FocusArea:     focusArea,
	}
}

// orderExercises puts compound movements first, then larger muscle groups
// before smaller ones.
func orderExercises(exercises []Exercise) []Exercise {
	ordered := make([]Exercise, len(exercises))
	copy(ordered, exercises)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Compound != b.Compound {
			return a.Compound
		}
		return muscleSize[a.TargetMuscle] > muscleSize[b.TargetMuscle]
	})
	return ordered
}

// estimateWorkoutTime returns the expected session duration in minutes,
// assuming setDurationSeconds per set plus the configured rest between sets.
func estimateWorkoutTime(exercises []Exercise) float64 {
	var total float64
	for _, ex := range exercises {
		if ex.Sets == 0 || ex.RestTime == 0 {
			continue
		}
		setSeconds := float64(ex.Sets * setDurationSeconds)
		restSeconds := float64((ex.Sets - 1) * ex.RestTime)
		total += (setSeconds + restSeconds) / 60
	}
	return total
}

// dayVolume is the total prescribed volume of a session, sets times the
// midpoint of each rep range.
func dayVolume(day WorkoutDay) float64 {
	var total float64
	for _, ex := range day.Exercises {
		total += float64(ex.Sets) * averageReps(ex.Reps)
	}
	return total
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func containsInt(values []int, target int) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
