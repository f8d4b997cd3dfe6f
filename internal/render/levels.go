package render

// levelPercent maps a language level to the fill of its level bar.
var levelPercent = map[string]int{
	"Basic":        20,
	"Beginner":     20,
	"Elementary":   40,
	"Intermediate": 60,
	"Advanced":     80,
	"Expert":       100,
	"Fluent":       100,
	"Native":       100,
}

// LevelPercent returns the bar fill for a language level. Unset and unknown
// levels render as an empty bar.
func LevelPercent(level string) int {
	return levelPercent[level]
}
