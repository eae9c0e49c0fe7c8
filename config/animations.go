package config

// AnimationDef describes one pose clip.
type AnimationDef struct {
	Frames   int
	Duration float64 // seconds
	Loop     bool
}

// CharacterAnimations maps a character key (e.g. "player") to its pose clips.
// Pose keys match the controller pose names.
var CharacterAnimations = map[string]map[string]AnimationDef{
	"player": {
		"idle":        {Frames: 6, Duration: 0.6, Loop: true},
		"run":         {Frames: 8, Duration: 0.5, Loop: true},
		"jump":        {Frames: 3, Duration: 0.25},
		"fall":        {Frames: 3, Duration: 0.25, Loop: true},
		"crouch":      {Frames: 4, Duration: 0.2},
		"dash":        {Frames: 4, Duration: 0.1},
		"attack":      {Frames: 6, Duration: 0.4},
		"wall_slide":  {Frames: 4, Duration: 0.4, Loop: true},
		"wall_climb":  {Frames: 6, Duration: 0.5, Loop: true},
		"ledge_climb": {Frames: 8, Duration: 0.5}, // drives the ledge anchor
		"hurt":        {Frames: 3, Duration: 0.3},
		"die":         {Frames: 9, Duration: 0.75},
	},
	"enemy": {
		"idle": {Frames: 4, Duration: 0.6, Loop: true},
		"run":  {Frames: 6, Duration: 0.6, Loop: true},
		"hurt": {Frames: 2, Duration: 0.2},
		"die":  {Frames: 4, Duration: 0.15},
	},
}
