package domain

// Exercise is a session-scoped exercise: the template's target sets/reps
// copied at session-creation time, plus the mutable logged state (weight,
// completion, notes). Weight is always stored in kilograms.
type Exercise struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Sets      int     `json:"sets"`
	Reps      string  `json:"reps"`
	Weight    float64 `json:"weight"`
	Completed bool    `json:"completed"`
	Notes     string  `json:"notes,omitempty"`
}

// WorkoutSession is one logged workout. DayName and DayColor are snapshots
// of the template taken at creation time, NOT references: later template
// edits or deletes must never rewrite history, so the display fields are
// deliberately denormalized onto every record.
type WorkoutSession struct {
	ID        string     `json:"id"`
	Date      string     `json:"date"` // canonical local-date key, YYYY-MM-DD
	DayID     string     `json:"dayId"`
	DayName   string     `json:"dayName"`
	DayColor  ColorKey   `json:"dayColor,omitempty"`
	Exercises []Exercise `json:"exercises"`
	Duration  *int       `json:"duration,omitempty"` // minutes
	Completed bool       `json:"completed"`
}
