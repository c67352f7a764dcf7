package config

import "sort"

var Presets = map[string]*Config{
	"tiny": {
		Size: 10, Order: "random",
		Display: DisplayConfig{FPS: 4, Speed: 1, Theme: DefaultTheme, Columns: 3, Height: 8},
	},
	"small": {
		Size: 30, Order: "random",
		Display: DisplayConfig{FPS: 15, Speed: 1, Theme: DefaultTheme, Columns: 3, Height: 10},
	},
	"classic": {
		Size: 100, Order: "random",
		Display: DisplayConfig{FPS: 10, Speed: 1, Theme: DefaultTheme, Columns: 3, Height: 12},
	},
	"reversed": {
		Size: 50, Order: "reversed",
		Display: DisplayConfig{FPS: 20, Speed: 2, Theme: "ocean", Columns: 3, Height: 12},
	},
	"sorted": {
		Size: 50, Order: "sorted",
		Display: DisplayConfig{FPS: 20, Speed: 2, Theme: "minimal", Columns: 3, Height: 12},
	},
	"nearly-sorted": {
		Size: 60, Order: "nearly-sorted", SameInput: true,
		Display: DisplayConfig{FPS: 20, Speed: 2, Theme: "retro", Columns: 3, Height: 12},
	},
}

// GetPreset returns a copy of the named preset filled with defaults, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Size = p.Size
	cfg.Order = p.Order
	cfg.SameInput = p.SameInput
	cfg.Display = p.Display
	if len(p.Algorithms) > 0 {
		cfg.Algorithms = append([]string(nil), p.Algorithms...)
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
