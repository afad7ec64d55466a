package domain

// DefaultPrompt is printed before every line read by the session driver.
const DefaultPrompt = "Enter what you want to convert (or exit):"

// Config represents the unitconv configuration loaded from unitconv.yaml.
type Config struct {
	Temperature TemperatureConfig
	History     HistoryConfig
	Prompt      string
}

type TemperatureConfig struct {
	Enabled bool
}

type HistoryConfig struct {
	Enabled bool
	File    string
}

// DefaultConfig provides sane defaults if unitconv.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Temperature: TemperatureConfig{Enabled: true},
		History: HistoryConfig{
			Enabled: true,
			File:    ".unitconv/history.jsonl",
		},
		Prompt: DefaultPrompt,
	}
}

// InitReport describes what `unitconv init` changed under Root.
type InitReport struct {
	Root             string
	ConfigPath       string
	ConfigWritten    bool // false when an existing file was kept
	GitignoreUpdated bool
}
