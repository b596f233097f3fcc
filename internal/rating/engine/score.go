package engine

import "parentsguide-srv/internal/model"

type ageThreshold struct {
	minScore int
	age      int
}

// Highest cutoff first.
var ageThresholds = []ageThreshold{
	{15, 18},
	{10, 16},
	{7, 13},
	{4, 10},
	{2, 8},
}

// Score sums the severity weights of the scored categories. Spoilers and
// unknown keys contribute nothing.
func Score(categories model.CategorySeverityMap) int {
	score := 0
	for _, c := range model.ScoredCategories {
		score += categories[c].Weight()
	}
	return score
}

// AgeForScore buckets a score into an age threshold.
func AgeForScore(score int) int {
	for _, t := range ageThresholds {
		if score >= t.minScore {
			return t.age
		}
	}
	return model.MinAge
}
