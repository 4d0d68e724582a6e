package training

// CatalogExercise describes an exercise available for selection, including
// which experience levels may perform it and what equipment it needs.
type CatalogExercise struct {
	ID           string
	Name         string
	TargetMuscle MuscleGroup
	MuscleGroups []MuscleGroup
	Levels       []ExperienceLevel
	Equipment    []string
	Compound     bool
	Unilateral   bool
	Priority     int
	Tips         []string
}

var catalog = map[MuscleGroup][]CatalogExercise{
	MuscleChest: {
		{
			ID:           "bench_press",
			Name:         "Supino Reto",
			TargetMuscle: MuscleChest,
			MuscleGroups: []MuscleGroup{MuscleChest, MuscleShoulders, MuscleTriceps},
			Levels:       []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced},
			Equipment:    []string{"barbell", "dumbbell"},
			Compound:     true,
			Priority:     5,
			Tips: []string{
				"Mantenha os cotovelos em 45 graus",
				"Controle a descida",
				"Respire durante o movimento",
			},
		},
		{
			ID:           "incline_press",
			Name:         "Supino Inclinado",
			TargetMuscle: MuscleChest,
			MuscleGroups: []MuscleGroup{MuscleChest, MuscleShoulders, MuscleTriceps},
			Levels:       []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced},
			Equipment:    []string{"barbell", "dumbbell"},
			Compound:     true,
			Priority:     4,
			Tips:         []string{"Mantenha o banco entre 30-45 graus"},
		},
		{
			ID:           "decline_press",
			Name:         "Supino Declinado",
			TargetMuscle: MuscleChest,
			MuscleGroups: []MuscleGroup{MuscleChest, MuscleShoulders, MuscleTriceps},
			Levels:       []ExperienceLevel{ExperienceIntermediate, ExperienceAdvanced},
			Equipment:    []string{"barbell", "dumbbell"},
			Compound:     true,
			Priority:     3,
		},
		{
			ID:           "dumbbell_fly",
			Name:         "Crucifixo com Halteres",
			TargetMuscle: MuscleChest,
			MuscleGroups: []MuscleGroup{MuscleChest, MuscleShoulders, MuscleTriceps},
			Levels:       []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate},
			Equipment:    []string{"dumbbell"},
			Priority:     3,
		},
		{
			ID:           "cable_crossover",
			Name:         "Cross-over na Polia",
			TargetMuscle: MuscleChest,
			MuscleGroups: []MuscleGroup{MuscleChest, MuscleShoulders, MuscleTriceps},
			Levels:       []ExperienceLevel{ExperienceIntermediate, ExperienceAdvanced},
			Equipment:    []string{"cable"},
			Unilateral:   true,
			Priority:     2,
		},
		{
			ID:           "push_up",
			Name:         "Flexão de Braço",
			TargetMuscle: MuscleChest,
			MuscleGroups: []MuscleGroup{MuscleChest, MuscleShoulders, MuscleTriceps},
			Levels:       []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced},
			Equipment:    []string{"bodyweight"},
			Compound:     true,
			Priority:     5,
		},
	},
	MuscleBack: {
		{
			ID:           "lat_pulldown",
			Name:         "Puxada na Polia Alta",
			TargetMuscle: MuscleBack,
			MuscleGroups: []MuscleGroup{MuscleBack, MuscleShoulders, MuscleTriceps},
			Levels:       []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced},
			Equipment:    []string{"cable"},
			Compound:     true,
			Priority:     5,
		},
		{
			ID:           "bent_over_row",
			Name:         "Remada Curvada com Barra",
			TargetMuscle: MuscleBack,
			MuscleGroups: []MuscleGroup{MuscleBack, MuscleShoulders, MuscleTriceps},
			Levels:       []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced},
			Equipment:    []string{"barbell"},
			Compound:     true,
			Priority:     5,
		},
		{
			ID:           "one_arm_dumbbell_row",
			Name:         "Remada Unilateral com Halteres",
			TargetMuscle: MuscleBack,
			MuscleGroups: []MuscleGroup{MuscleBack, MuscleShoulders, MuscleTriceps},
			Levels:       []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced},
			Equipment:    []string{"dumbbell"},
			Compound:     true,
			Unilateral:   true,
			Priority:     4,
		},
		{
			ID:           "seated_cable_row",
			Name:         "Remada Sentado na Máquina",
			TargetMuscle: MuscleBack,
			MuscleGroups: []MuscleGroup{MuscleBack, MuscleShoulders, MuscleTriceps},
			Levels:       []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced},
			Equipment:    []string{"cable"},
			Compound:     true,
			Priority:     4,
		},
		{
			ID:           "deadlift",
			Name:         "Levantamento Terra",
			TargetMuscle: MuscleBack,
			MuscleGroups: []MuscleGroup{MuscleBack, MuscleLegs},
			Levels:       []ExperienceLevel{ExperienceIntermediate, ExperienceAdvanced},
			Equipment:    []string{"barbell"},
			Compound:     true,
			Priority:     5,
		},
		{
			ID:           "back_extension",
			Name:         "Hiperextensão Lombar",
			TargetMuscle: MuscleBack,
			MuscleGroups: []MuscleGroup{MuscleBack, MuscleCore},
			Levels:       []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate},
			Equipment:    []string{"machine", "bodyweight"},
			Priority:     3,
		},
	},
	MuscleShoulders: {
		{
			ID:           "military_press",
			Name:         "Desenvolvimento Militar",
			TargetMuscle: MuscleShoulders,
			MuscleGroups: []MuscleGroup{MuscleShoulders, MuscleTriceps},
			Levels:       []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced},
			Equipment:    []string{"barbell", "dumbbell"},
			Compound:     true,
			Priority:     5,
		},
		{
			ID:           "lateral_raise",
			Name:         "Elevação Lateral com Halteres",
			TargetMuscle: MuscleShoulders,
			MuscleGroups: []MuscleGroup{MuscleShoulders, MuscleTriceps},
			Levels:       []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced},
			Equipment:    []string{"dumbbell"},
			Unilateral:   true,
			Priority:     4,
		},
		{
			ID:           "front_raise",
			Name:         "Elevação Frontal com Halteres",
			TargetMuscle: MuscleShoulders,
			MuscleGroups: []MuscleGroup{MuscleShoulders, MuscleTriceps},
			Levels:       []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate},
			Equipment:    []string{"dumbbell"},
			Unilateral:   true,
			Priority:     3,
		},
		{
			ID:           "reverse_fly",
			Name:         "Elevação Posterior",
			TargetMuscle: MuscleShoulders,
			MuscleGroups: []MuscleGroup{MuscleShoulders, MuscleTriceps},
			Levels:       []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate},
			Equipment:    []string{"dumbbell", "machine"},
			Priority:     3,
		},
		{
			ID:           "arnold_press",
			Name:         "Arnold Press",
			TargetMuscle: MuscleShoulders,
			MuscleGroups: []MuscleGroup{MuscleShoulders, MuscleTriceps},
			Levels:       []ExperienceLevel{ExperienceIntermediate, ExperienceAdvanced},
			Equipment:    []string{"dumbbell"},
			Compound:     true,
			Priority:     4,
		},
		{
			ID:           "upright_row",
			Name:         "Remada Vertical",
			TargetMuscle: MuscleShoulders,
			MuscleGroups: []MuscleGroup{MuscleShoulders, MuscleTriceps},
			Levels:       []ExperienceLevel{ExperienceIntermediate, ExperienceAdvanced},
			Equipment:    []string{"barbell", "cable"},
			Compound:     true,
			Priority:     3,
		},
	},
	MuscleBiceps: {
		{
			ID:           "barbell_curl",
			Name:         "Rosca Direta com Barra",
			TargetMuscle: MuscleBiceps,
			MuscleGroups: []MuscleGroup{MuscleBiceps},
			Levels:       []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced},
			Equipment:    []string{"barbell"},
			Priority:     5,
			Tips: []string{
				"Mantenha os cotovelos junto ao corpo",
				"Evite usar impulso do corpo",
			},
		},
		{
			ID:           "alternate_dumbbell_curl",
			Name:         "Rosca Alternada com Halteres",
			TargetMuscle: MuscleBiceps,
			MuscleGroups: []MuscleGroup{MuscleBiceps},
			Levels:       []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced},
			Equipment:    []string{"dumbbell"},
			Unilateral:   true,
			Priority:     4,
		},
		{
			ID:           "hammer_curl",
			Name:         "Rosca Martelo",
			TargetMuscle: MuscleBiceps,
			MuscleGroups: []MuscleGroup{MuscleBiceps},
			Levels:       []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced},
			Equipment:    []string{"dumbbell"},
			Unilateral:   true,
			Priority:     4,
		},
		{
			ID:           "concentration_curl",
			Name:         "Rosca Concentrada",
			TargetMuscle: MuscleBiceps,
			MuscleGroups: []MuscleGroup{MuscleBiceps},
			Levels:       []ExperienceLevel{ExperienceIntermediate, ExperienceAdvanced},
			Equipment:    []string{"dumbbell"},
			Unilateral:   true,
			Priority:     3,
		},
		{
			ID:           "preacher_curl",
			Name:         "Rosca Scott",
			TargetMuscle: MuscleBiceps,
			MuscleGroups: []MuscleGroup{MuscleBiceps},
			Levels:       []ExperienceLevel{ExperienceIntermediate, ExperienceAdvanced},
			Equipment:    []string{"barbell", "dumbbell"},
			Priority:     4,
		},
		{
			ID:           "twenty_one_curl",
			Name:         "Rosca 21",
			TargetMuscle: MuscleBiceps,
			MuscleGroups: []MuscleGroup{MuscleBiceps},
			Levels:       []ExperienceLevel{ExperienceIntermediate, ExperienceAdvanced},
			Equipment:    []string{"barbell", "dumbbell"},
			Priority:     2,
			Tips:         []string{"7 repetições parciais baixas, 7 altas e 7 completas"},
		},
	},
	MuscleTriceps: {
		{
			ID:           "triceps_pushdown",
			Name:         "Tríceps na Polia Alta",
			TargetMuscle: MuscleTriceps,
			MuscleGroups: []MuscleGroup{MuscleTriceps},
			Levels:       []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced},
			Equipment:    []string{"cable"},
			Priority:     5,
		},
		{
			ID:           "skull_crusher",
			Name:         "Tríceps Testa",
			TargetMuscle: MuscleTriceps,
			MuscleGroups: []MuscleGroup{MuscleTriceps},
			Levels:       []ExperienceLevel{ExperienceIntermediate, ExperienceAdvanced},
			Equipment:    []string{"barbell", "dumbbell"},
			Priority:     4,
			Tips:         []string{"Mantenha os cotovelos apontados para cima"},
		},
		{
			ID:           "dips",
			Name:         "Mergulho",
			TargetMuscle: MuscleTriceps,
			MuscleGroups: []MuscleGroup{MuscleTriceps},
			Levels:       []ExperienceLevel{ExperienceIntermediate, ExperienceAdvanced},
			Equipment:    []string{"bodyweight"},
			Compound:     true,
			Priority:     5,
		},
		{
			ID:           "overhead_extension",
			Name:         "Extensão Unilateral com Halter",
			TargetMuscle: MuscleTriceps,
			MuscleGroups: []MuscleGroup{MuscleTriceps},
			Levels:       []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate},
			Equipment:    []string{"dumbbell"},
			Unilateral:   true,
			Priority:     3,
		},
		{
			ID:           "triceps_kickback",
			Name:         "Tríceps Coice",
			TargetMuscle: MuscleTriceps,
			MuscleGroups: []MuscleGroup{MuscleTriceps},
			Levels:       []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate},
			Equipment:    []string{"dumbbell"},
			Unilateral:   true,
			Priority:     3,
		},
		{
			ID:           "rope_pushdown",
			Name:         "Extensão de Tríceps na Corda",
			TargetMuscle: MuscleTriceps,
			MuscleGroups: []MuscleGroup{MuscleTriceps},
			Levels:       []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced},
			Equipment:    []string{"cable"},
			Priority:     4,
		},
	},
	MuscleLegs: {
		{
			ID:           "squat",
			Name:         "Agachamento Livre",
			TargetMuscle: MuscleLegs,
			MuscleGroups: []MuscleGroup{MuscleLegs},
			Levels:       []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced},
			Equipment:    []string{"barbell"},
			Compound:     true,
			Priority:     5,
			Tips: []string{
				"Mantenha o peito erguido",
				"Joelhos alinhados com os pés",
				"Desça até a paralela ou abaixo",
			},
		},
		{
			ID:           "leg_press",
			Name:         "Leg Press",
			TargetMuscle: MuscleLegs,
			MuscleGroups: []MuscleGroup{MuscleLegs},
			Levels:       []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced},
			Equipment:    []string{"machine"},
			Compound:     true,
			Priority:     5,
		},
		{
			ID:           "lunges",
			Name:         "Afundo com Halteres",
			TargetMuscle: MuscleLegs,
			MuscleGroups: []MuscleGroup{MuscleLegs},
			Levels:       []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced},
			Equipment:    []string{"dumbbell", "bodyweight"},
			Compound:     true,
			Unilateral:   true,
			Priority:     4,
		},
		{
			ID:           "romanian_deadlift",
			Name:         "Stiff",
			TargetMuscle: MuscleLegs,
			MuscleGroups: []MuscleGroup{MuscleLegs},
			Levels:       []ExperienceLevel{ExperienceIntermediate, ExperienceAdvanced},
			Equipment:    []string{"barbell", "dumbbell"},
			Compound:     true,
			Priority:     5,
			Tips:         []string{"Mantenha as pernas levemente flexionadas"},
		},
		{
			ID:           "leg_extension",
			Name:         "Extensão de Pernas",
			TargetMuscle: MuscleLegs,
			MuscleGroups: []MuscleGroup{MuscleLegs},
			Levels:       []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced},
			Equipment:    []string{"machine"},
			Priority:     3,
		},
		{
			ID:           "leg_curl",
			Name:         "Flexão de Pernas",
			TargetMuscle: MuscleLegs,
			MuscleGroups: []MuscleGroup{MuscleLegs},
			Levels:       []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced},
			Equipment:    []string{"machine"},
			Priority:     3,
		},
	},
	MuscleCore: {
		{
			ID:           "plank",
			Name:         "Prancha",
			TargetMuscle: MuscleCore,
			MuscleGroups: []MuscleGroup{MuscleCore},
			Levels:       []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced},
			Equipment:    []string{"bodyweight"},
			Compound:     true,
			Priority:     5,
			Tips:         []string{"Mantenha o corpo alinhado", "Contraia o abdômen"},
		},
		{
			ID:           "crunch",
			Name:         "Abdominal Crunch",
			TargetMuscle: MuscleCore,
			MuscleGroups: []MuscleGroup{MuscleCore},
			Levels:       []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate},
			Equipment:    []string{"bodyweight"},
			Priority:     4,
		},
		{
			ID:           "leg_raise",
			Name:         "Elevação de Pernas",
			TargetMuscle: MuscleCore,
			MuscleGroups: []MuscleGroup{MuscleCore},
			Levels:       []ExperienceLevel{ExperienceIntermediate, ExperienceAdvanced},
			Equipment:    []string{"bodyweight"},
			Priority:     4,
		},
		{
			ID:           "russian_twist",
			Name:         "Abdominal Oblíquo",
			TargetMuscle: MuscleCore,
			MuscleGroups: []MuscleGroup{MuscleCore},
			Levels:       []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate},
			Equipment:    []string{"bodyweight", "dumbbell"},
			Priority:     3,
		},
		{
			ID:           "swiss_ball_crunch",
			Name:         "Crunch na Bola Suíça",
			TargetMuscle: MuscleCore,
			MuscleGroups: []MuscleGroup{MuscleCore},
			Levels:       []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate},
			Equipment:    []string{"bodyweight"},
			Priority:     3,
		},
		{
			ID:           "reverse_crunch",
			Name:         "Abdominal Reverso",
			TargetMuscle: MuscleCore,
			MuscleGroups: []MuscleGroup{MuscleCore},
			Levels:       []ExperienceLevel{ExperienceIntermediate, ExperienceAdvanced},
			Equipment:    []string{"bodyweight"},
			Priority:     4,
		},
	},
}

// catalogLevel maps the profile experience level to a catalog level. Users who
// have never trained follow the beginner catalog.
func catalogLevel(level ExperienceLevel) ExperienceLevel {
	if level == ExperienceNone {
		return ExperienceBeginner
	}
	return level
}

// exercisesForLevel returns the catalog entries for a muscle that the given
// level may perform.
func exercisesForLevel(muscle MuscleGroup, level ExperienceLevel) []CatalogExercise {
	var available []CatalogExercise
	for _, ex := range catalog[muscle] {
		if hasLevel(ex, level) {
			available = append(available, ex)
		}
	}
	return available
}

func hasLevel(ex CatalogExercise, level ExperienceLevel) bool {
	for _, l := range ex.Levels {
		if l == level {
			return true
		}
	}
	return false
}

// compoundExercises returns the compound entries for a muscle and level.
func compoundExercises(muscle MuscleGroup, level ExperienceLevel) []CatalogExercise {
	var compounds []CatalogExercise
	for _, ex := range exercisesForLevel(muscle, level) {
		if ex.Compound {
			compounds = append(compounds, ex)
		}
	}
	return compounds
}

// isolationExercises returns the non-compound entries for a muscle and level.
func isolationExercises(muscle MuscleGroup, level ExperienceLevel) []CatalogExercise {
	var isolations []CatalogExercise
	for _, ex := range exercisesForLevel(muscle, level) {
		if !ex.Compound {
			isolations = append(isolations, ex)
		}
	}
	return isolations
}

// LookupExercise finds a catalog entry by its base identifier.
func LookupExercise(id string) (CatalogExercise, bool) {
	for _, exercises := range catalog {
		for _, ex := range exercises {
			if ex.ID == id {
				return ex, true
			}
		}
	}
	return CatalogExercise{}, false
}

// ListExercises returns the whole catalog ordered by muscle group name.
func ListExercises() []CatalogExercise {
	muscles := []MuscleGroup{
		MuscleBack, MuscleBiceps, MuscleChest, MuscleCore,
		MuscleLegs, MuscleShoulders, MuscleTriceps,
	}
	var all []CatalogExercise
	for _, muscle := range muscles {
		all = append(all, catalog[muscle]...)
	}
	return all
}
