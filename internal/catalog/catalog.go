// Package catalog holds the built-in neck-care routine and loads custom
// routines from YAML files.
package catalog

import (
	"github.com/xvierd/neck-cli/internal/domain"
)

const (
	categoryReset     = "Reset posture & breath"
	categoryMobility  = "Mobility & stretch"
	categoryStabilize = "Activate what stabilizes"
	categoryRelease   = "Gentle self‑release"
)

var postureBreath = domain.Exercise{
	ID:       "posture-breath",
	Category: categoryReset,
	Title:    "Reset posture & breath",
	Note:     "Sit tall, ribs down; slow diaphragmatic breaths—helps offload the SCM/upper traps that overwork when we’re tense. (General posture guidance; see muscle overview.)",
	Instructions: []string{
		"Sit tall with a neutral spine. Gently draw ribs down (avoid flaring).",
		"Place one hand on the belly and one on the lower ribs. Inhale through the nose letting the belly and lower ribs expand.",
		"Exhale slowly. Relax the neck and jaw. Shoulders stay heavy.",
	},
	Mode:    domain.ModeTimer,
	Targets: domain.Targets{DurationSec: 120},
}

var chinTucks = domain.Exercise{
	ID:       "chin-tucks",
	Category: categoryMobility,
	Title:    "Chin tucks (cervical retraction)",
	Note:     "Glide your head straight back (double‑chin). Hold 5 sec × 10.",
	Instructions: []string{
		"Keep the eyes level. Glide the head straight back without tilting up or down.",
		"Hold the end position briefly; then return to neutral and repeat.",
	},
	Caution: "Move gently; no sharp pain or dizziness.",
	Mode:    domain.ModeHoldReps,
	Targets: domain.Targets{Reps: 10, HoldSec: 5},
}

var levatorStretchLeft = domain.Exercise{
	ID:       "levator-stretch-left",
	Category: categoryMobility,
	Title:    "Levator scapulae stretch (left side)",
	Note:     "Look down toward your right armpit; gently pull the back of your head forward/down with the right hand. Hold 30 sec × 3.",
	Instructions: []string{
		"Sit tall. Turn nose toward the right armpit (diagonal down).",
		"Place right hand on the back of the head and gently guide forward/down.",
		"Keep the left shoulder relaxed and down. Avoid shrugging.",
	},
	Caution: "Gentle stretch only; avoid nerve‑like pain or tingling.",
	Mode:    domain.ModeHoldSets,
	Targets: domain.Targets{Sets: 3, HoldSec: 30},
}

var upperTrapStretchRight = domain.Exercise{
	ID:       "upper-trap-stretch-right",
	Category: categoryMobility,
	Title:    "Upper trapezius stretch",
	Note:     "Ear toward right shoulder; gentle overpressure with right hand. Hold 30 sec × 3.",
	Instructions: []string{
		"Sit tall. Gently side‑bend head to the right (ear toward shoulder).",
		"Use right hand for very light overpressure. Left shoulder stays heavy.",
	},
	Caution: "No forcing; avoid compressing the side of the neck.",
	Mode:    domain.ModeHoldSets,
	Targets: domain.Targets{Sets: 3, HoldSec: 30},
}

var scmStretchLeft = domain.Exercise{
	ID:       "scm-stretch-left",
	Category: categoryMobility,
	Title:    "SCM stretch (left SCM)",
	Note:     "Side‑bend head to the right, rotate left, slight lift of chin; VERY gentle—no front‑of‑neck pressure. Hold 20–30 sec × 3.",
	Instructions: []string{
		"Side‑bend head to the right (ear toward right shoulder).",
		"Rotate the head to the left and slightly lift the chin to feel a gentle stretch.",
		"Keep pressure minimal; avoid pressing into the front of the neck.",
	},
	Caution: "Very gentle. No front‑of‑neck pressure. Stop if any lightheadedness.",
	Mode:    domain.ModeHoldSets,
	Targets: domain.Targets{Sets: 3, HoldSec: 25},
}

var scapRetraction = domain.Exercise{
	ID:       "scap-retraction",
	Category: categoryStabilize,
	Title:    "Scapular retraction",
	Note:     "Squeeze shoulder blades “down and back” (don’t shrug). 2 sets × 10.",
	Instructions: []string{
		"Stand or sit tall. Draw shoulder blades down and back as if tucking into back pockets.",
		"Avoid shrugging. Hold briefly, then release and repeat.",
	},
	Mode:    domain.ModeRepsSets,
	Targets: domain.Targets{Sets: 2, Reps: 10},
}

var wallSlidesOrRows = domain.Exercise{
	ID:       "wall-slides-or-rows",
	Category: categoryStabilize,
	Title:    "Wall slides or gentle band rows",
	Note:     "Choose either. Helps unload the neck long‑term. Aim for 2 sets × 10 if time allows (~3 min total for this block).",
	Instructions: []string{
		"Wall slides: forearms on wall, slide arms up keeping ribs down and neck relaxed.",
		"OR Band rows: light band, elbows glide back keeping shoulder blades down and back.",
	},
	Caution: "Keep the neck relaxed. If symptoms increase, reduce range or stop.",
	Mode:    domain.ModeRepsSets,
	Targets: domain.Targets{Sets: 2, Reps: 10},
}

var ballOnWall = domain.Exercise{
	ID:       "ball-on-wall",
	Category: categoryRelease,
	Title:    "Ball on wall (upper trapezius/levator – left)",
	Note:     "Lean your left upper‑back/neck corner onto a tennis/lacrosse ball; slow small rolls. 60 sec.",
	Instructions: []string{
		"Place ball at the upper trapezius/levator area on the left.",
		"Lean into a wall and make slow, small rolls or sustained pressure on tender spots.",
	},
	Caution: "Avoid pressing hard on the side/front of the neck (carotid area).",
	Mode:    domain.ModeTimer,
	Targets: domain.Targets{DurationSec: 60},
}

var suboccipitalRelease = domain.Exercise{
	ID:       "suboccipital-release",
	Category: categoryRelease,
	Title:    "Suboccipital release",
	Note:     "Lie on two taped tennis balls (“peanut”) under the skull base for ~2 mins.",
	Instructions: []string{
		"Lie on your back with the peanut under the skull base (not on the neck).",
		"Let the head rest and breathe slowly. You can make tiny nodding motions.",
	},
	Caution: "No direct pressure on the throat or carotid area.",
	Mode:    domain.ModeTimer,
	Targets: domain.Targets{DurationSec: 120},
}

// Exercises is the built-in routine, in order.
var Exercises = []domain.Exercise{
	postureBreath,
	chinTucks,
	levatorStretchLeft,
	upperTrapStretchRight,
	scmStretchLeft,
	scapRetraction,
	wallSlidesOrRows,
	ballOnWall,
	suboccipitalRelease,
}

// Default returns the built-in routine.
func Default() *domain.Routine {
	r, err := domain.NewRoutine(Exercises)
	if err != nil {
		// The built-in data is covered by tests.
		panic(err)
	}
	return r
}
