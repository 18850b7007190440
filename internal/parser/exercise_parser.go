package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/fittrackdev/fittrack/internal/models"
)

// exercisePattern matches the shorthand "NAME SETSxREPS[@WEIGHT[kg|lbs]]",
// e.g. "Bench Press 3x10@60kg", "Pull-ups 4x8", "Squat 5x5@225lbs"
var exercisePattern = regexp.MustCompile(`^(.+?)\s+(\d+)\s*[xX]\s*(\d+)(?:\s*@\s*(\d+(?:\.\d+)?)\s*(kg|lbs)?)?$`)

// ParseExercise parses one exercise shorthand line. Weight is optional;
// bodyweight movements parse with weight 0. The unit defaults to kg.
func ParseExercise(input string) (models.Exercise, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return models.Exercise{}, fmt.Errorf("empty exercise")
	}

	m := exercisePattern.FindStringSubmatch(input)
	if m == nil {
		return models.Exercise{}, fmt.Errorf("cannot parse %q, expected format like 'Bench Press 3x10@60kg'", input)
	}

	sets, err := strconv.Atoi(m[2])
	if err != nil || sets < 1 {
		return models.Exercise{}, fmt.Errorf("invalid sets in %q", input)
	}
	reps, err := strconv.Atoi(m[3])
	if err != nil || reps < 1 {
		return models.Exercise{}, fmt.Errorf("invalid reps in %q", input)
	}

	weight := 0.0
	unit := models.UnitKg
	if m[4] != "" {
		weight, err = strconv.ParseFloat(m[4], 64)
		if err != nil {
			return models.Exercise{}, fmt.Errorf("invalid weight in %q", input)
		}
		if m[5] != "" {
			unit = m[5]
		}
	}

	return models.Exercise{
		ID:         models.NewID(),
		Name:       strings.TrimSpace(m[1]),
		Sets:       sets,
		Reps:       reps,
		Weight:     weight,
		WeightUnit: unit,
	}, nil
}

// ParseExercises parses multiple shorthand lines, accumulating every parse
// error into a single message so the user can fix them all at once.
func ParseExercises(inputs []string) ([]models.Exercise, error) {
	var exercises []models.Exercise
	var errs []string

	for _, input := range inputs {
		ex, err := ParseExercise(input)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		exercises = append(exercises, ex)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return exercises, nil
}
