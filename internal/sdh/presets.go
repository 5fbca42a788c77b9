package sdh

// DefaultPreset is the template used when no preset is requested.
const DefaultPreset = "aggressive"

// presets are immutable cleaning templates. Preset hands out copies, so
// caller overrides never contaminate the table.
var presets = map[string]Config{
	"aggressive": {
		RemoveBetweenSquare:      true,
		RemoveBetweenParen:       true,
		RemoveTextBeforeColon:    true,
		ColonOnlyIfUppercase:     true,
		RemoveIfOnlyMusicSymbols: true,
	},
	// Streaming-delivery profile; currently identical to aggressive.
	"netflix": {
		RemoveBetweenSquare:      true,
		RemoveBetweenParen:       true,
		RemoveTextBeforeColon:    true,
		ColonOnlyIfUppercase:     true,
		RemoveIfOnlyMusicSymbols: true,
	},
	"conservative": {
		RemoveBetweenSquare:       true,
		RemoveBetweenParen:        true,
		BetweenOnlyIfSeparateLine: true,
		RemoveTextBeforeColon:     true,
		ColonOnlyIfUppercase:      true,
		RemoveIfOnlyMusicSymbols:  true,
	},
}

// Preset returns the named cleaning template.
func Preset(name string) (Config, bool) {
	cfg, ok := presets[name]
	return cfg, ok
}

// PresetNames returns the known preset names in stable order.
func PresetNames() []string {
	return []string{"aggressive", "conservative", "netflix"}
}
