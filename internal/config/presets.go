package config

import (
	"sort"
	"time"
)

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"slow": {
		Algorithm: DefaultAlgorithm, Mode: "buffered", AutoPlay: true, Theme: DefaultTheme,
		TickInterval: 600 * time.Millisecond, FrameInterval: DefaultFrameInterval,
	},
	"fast": {
		Algorithm: "quick sort", Mode: "buffered", AutoPlay: true, Theme: "neon",
		TickInterval: 40 * time.Millisecond, FrameInterval: 20 * time.Millisecond,
	},
	"step": {
		Algorithm: "insertion sort", Mode: "lockstep", AutoPlay: false, Theme: DefaultTheme,
		TickInterval: DefaultTickInterval, FrameInterval: DefaultFrameInterval,
	},
	"large": {
		Algorithm: "merge sort", Mode: "buffered", AutoPlay: true, Theme: "ocean",
		TickInterval: 20 * time.Millisecond, FrameInterval: 20 * time.Millisecond, Size: 128,
	},
}

// GetPreset returns a copy of the named preset, or nil if there is none.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
