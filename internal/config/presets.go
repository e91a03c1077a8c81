package config

import "sort"

// Preset names an initial arena population. Counts are spawned once at
// startup before the loop begins ticking.
type Preset struct {
	Boxes     int  `yaml:"boxes"`
	Spheres   int  `yaml:"spheres"`
	Capsules  int  `yaml:"capsules"`
	Stacked   bool `yaml:"stacked"` // place boxes in a column instead of scattering
	AutoSpawn bool `yaml:"auto_spawn"`
	Floor     bool `yaml:"floor"`
}

var Presets = map[string]Preset{
	"empty": {
		Floor: true,
	},
	"stack": {
		Boxes: 10, Stacked: true, Floor: true,
	},
	"rain": {
		AutoSpawn: true, Floor: true,
	},
	"mixed": {
		Boxes: 4, Spheres: 4, Capsules: 4, Floor: true,
	},
}

func GetPreset(name string) (Preset, bool) {
	p, ok := Presets[name]
	return p, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
