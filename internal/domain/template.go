package domain

// TemplateExercise is one exercise slot inside a DayTemplate: the target
// sets/reps the user plans to hit, without any logged state.
type TemplateExercise struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Sets int    `json:"sets"`
	Reps string `json:"reps"` // free-text range, e.g. "8-10"
}

// DayTemplate is a named, user-editable group of exercises for one workout
// day (e.g. "Push"). The ID never changes after creation so historical
// sessions can keep referencing the day they were logged against.
type DayTemplate struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Color     ColorKey           `json:"color"`
	Exercises []TemplateExercise `json:"exercises"`
}

// DefaultTemplates returns the Push/Pull/Legs plan a fresh install is
// seeded with.
func DefaultTemplates() []DayTemplate {
	return []DayTemplate{
		{
			ID:    "day-push",
			Name:  "Push",
			Color: ColorRed,
			Exercises: []TemplateExercise{
				{ID: "ex-bench", Name: "Bench Press", Sets: 4, Reps: "8-10"},
				{ID: "ex-ohp", Name: "Overhead Press", Sets: 3, Reps: "8-10"},
				{ID: "ex-incline-db", Name: "Incline Dumbbell Press", Sets: 3, Reps: "10-12"},
				{ID: "ex-dips", Name: "Dips", Sets: 3, Reps: "10-15"},
				{ID: "ex-tri-ext", Name: "Tricep Extensions", Sets: 3, Reps: "12-15"},
				{ID: "ex-lateral", Name: "Lateral Raises", Sets: 3, Reps: "12-15"},
			},
		},
		{
			ID:    "day-pull",
			Name:  "Pull",
			Color: ColorTeal,
			Exercises: []TemplateExercise{
				{ID: "ex-pullups", Name: "Pull-ups/Chin-ups", Sets: 4, Reps: "6-10"},
				{ID: "ex-rows", Name: "Barbell Rows", Sets: 4, Reps: "8-10"},
				{ID: "ex-lat", Name: "Lat Pulldowns", Sets: 3, Reps: "10-12"},
				{ID: "ex-cable-rows", Name: "Cable Rows", Sets: 3, Reps: "10-12"},
				{ID: "ex-bicep", Name: "Bicep Curls", Sets: 3, Reps: "12-15"},
				{ID: "ex-facepulls", Name: "Face Pulls", Sets: 3, Reps: "15-20"},
			},
		},
		{
			ID:    "day-legs",
			Name:  "Legs",
			Color: ColorGreen,
			Exercises: []TemplateExercise{
				{ID: "ex-squat", Name: "Squats", Sets: 4, Reps: "8-10"},
				{ID: "ex-rdl", Name: "Romanian Deadlifts", Sets: 4, Reps: "8-10"},
				{ID: "ex-legpress", Name: "Leg Press", Sets: 3, Reps: "12-15"},
				{ID: "ex-legcurls", Name: "Leg Curls", Sets: 3, Reps: "12-15"},
				{ID: "ex-legext", Name: "Leg Extensions", Sets: 3, Reps: "12-15"},
				{ID: "ex-calf", Name: "Calf Raises", Sets: 4, Reps: "15-20"},
			},
		},
	}
}
