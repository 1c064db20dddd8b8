package shots

// Spec is one marketing screenshot: a raw capture, the two text lines drawn
// above it and the name of the rendered file.
type Spec struct {
	Source   string `yaml:"source" json:"source"`
	Headline string `yaml:"headline" json:"headline"`
	Subtitle string `yaml:"subtitle" json:"subtitle"`
	Output   string `yaml:"output" json:"output"`
}

// Default returns the HydroMind App Store set, in listing order.
func Default() []Spec {
	return []Spec{
		{"dashboard.png", "Track Every Sip", "Stay on top of your daily hydration goals", "1_6.5_inch.png"},
		{"paywall.png", "Unlock Your Potential", "Premium insights to transform your habits", "2_6.5_inch.png"},
		{"history.png", "See Your Progress", "Weekly trends and detailed analytics", "3_6.5_inch.png"},
		{"onboarding1.png", "Stay Hydrated, Stay Sharp", "Smart hydration tracking made simple", "4_6.5_inch.png"},
		{"settings.png", "Fully Customizable", "Set goals, units, and reminders your way", "5_6.5_inch.png"},
	}
}
