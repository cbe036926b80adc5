package config

import "sort"

var Presets = map[string]*Config{
	"classic": preset(func(c *Config) {}),
	"small": preset(func(c *Config) {
		c.Bars, c.Speed = 20, 60
	}),
	"large": preset(func(c *Config) {
		c.Bars, c.Speed = 250, 1
		c.Window.Width, c.Window.Height = 1250, 700
	}),
	"slowmo": preset(func(c *Config) {
		c.Bars, c.Speed = 30, 100
	}),
	"turbo": preset(func(c *Config) {
		c.Algorithm, c.Speed = "quick", 1
	}),
}

func preset(apply func(c *Config)) *Config {
	c := DefaultConfig()
	apply(c)
	return c
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *cfg
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
