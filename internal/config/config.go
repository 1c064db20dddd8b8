package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/youruser/storeshots/internal/shots"
)

// Config holds everything needed to render a screenshot set.
type Config struct {
	Canvas   CanvasConfig   `yaml:"canvas"`
	Colors   ColorsConfig   `yaml:"colors"`
	Paths    PathsConfig    `yaml:"paths"`
	Gradient GradientConfig `yaml:"gradient"`
	Glow     GlowConfig     `yaml:"glow"`
	Layout   LayoutConfig   `yaml:"layout"`
	Shadow   ShadowConfig   `yaml:"shadow"`
	Text     TextConfig     `yaml:"text"`
	Badge    BadgeConfig    `yaml:"badge"`

	// Screenshots is the ordered render table. Paths.Table, when set,
	// replaces it.
	Screenshots []shots.Spec `yaml:"screenshots"`
}

// CanvasConfig is the output size in pixels.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ColorsConfig holds the brand gradient endpoints as #RRGGBB.
type ColorsConfig struct {
	Top    string `yaml:"top"`
	Bottom string `yaml:"bottom"`
}

// PathsConfig locates inputs and outputs.
type PathsConfig struct {
	RawDir string `yaml:"raw_dir"`
	OutDir string `yaml:"out_dir"`
	Table  string `yaml:"table"` // optional CSV shot table
}

type GradientConfig struct {
	Exponent float64 `yaml:"exponent"`
}

type GlowConfig struct {
	CenterY   int `yaml:"center_y"`
	MaxRadius int `yaml:"max_radius"`
	Step      int `yaml:"step"`
	MaxAlpha  int `yaml:"max_alpha"`
}

// LayoutConfig splits the canvas into a text band and the screenshot area.
type LayoutConfig struct {
	TextAreaRatio float64 `yaml:"text_area_ratio"`
	PaddingX      int     `yaml:"padding_x"`
	BottomMargin  int     `yaml:"bottom_margin"`
	DropOffset    int     `yaml:"drop_offset"`
	CornerRadius  int     `yaml:"corner_radius"`
}

type ShadowConfig struct {
	OffsetX int    `yaml:"offset_x"`
	OffsetY int    `yaml:"offset_y"`
	Blur    int    `yaml:"blur"`
	Color   string `yaml:"color"`
	Alpha   int    `yaml:"alpha"`
}

type TextConfig struct {
	HeadlineTopRatio float64   `yaml:"headline_top_ratio"`
	SubtitleGap      int       `yaml:"subtitle_gap"`
	Headline         LineStyle `yaml:"headline"`
	Subtitle         LineStyle `yaml:"subtitle"`
}

// LineStyle configures one line of text. Fonts are tried in order.
type LineStyle struct {
	Size         float64  `yaml:"size"`
	Fonts        []string `yaml:"fonts"`
	Color        string   `yaml:"color"`
	Alpha        int      `yaml:"alpha"`
	ShadowColor  string   `yaml:"shadow_color"`
	ShadowAlpha  int      `yaml:"shadow_alpha"`
	ShadowOffset int      `yaml:"shadow_offset"`
}

// BadgeConfig controls the optional store-link QR code.
type BadgeConfig struct {
	Enabled bool   `yaml:"enabled"`
	Content string `yaml:"content"`
	Size    int    `yaml:"size"`
	Margin  int    `yaml:"margin"`
}

// DefaultConfig returns the 6.5" App Store configuration.
func DefaultConfig() *Config {
	return &Config{
		Canvas: CanvasConfig{Width: 1290, Height: 2796},
		Colors: ColorsConfig{Top: "#0066CC", Bottom: "#00CCCC"},
		Paths: PathsConfig{
			RawDir: "raw_screenshots",
			OutDir: filepath.Join("fastlane", "screenshots", "en-AU"),
		},
		Gradient: GradientConfig{Exponent: 0.85},
		Glow:     GlowConfig{CenterY: 100, MaxRadius: 600, Step: 2, MaxAlpha: 15},
		Layout: LayoutConfig{
			TextAreaRatio: 0.28,
			PaddingX:      100,
			BottomMargin:  60,
			DropOffset:    20,
			CornerRadius:  50,
		},
		Shadow: ShadowConfig{OffsetY: 20, Blur: 45, Color: "#000000", Alpha: 120},
		Text: TextConfig{
			HeadlineTopRatio: 0.08,
			SubtitleGap:      140,
			Headline: LineStyle{
				Size: 105,
				Fonts: []string{
					"/System/Library/Fonts/SFNSRounded.ttf",
					"/System/Library/Fonts/SFCompactRounded.ttf",
					"/System/Library/Fonts/SFNS.ttf",
					"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
					"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
				},
				Color:        "#FFFFFF",
				Alpha:        255,
				ShadowColor:  "#000000",
				ShadowAlpha:  50,
				ShadowOffset: 4,
			},
			Subtitle: LineStyle{
				Size: 58,
				Fonts: []string{
					"/System/Library/Fonts/SFCompactRounded.ttf",
					"/System/Library/Fonts/SFNS.ttf",
					"/System/Library/Fonts/SFCompact.ttf",
					"/System/Library/Fonts/Helvetica.ttc",
					"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
					"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
				},
				Color:        "#FFFFFF",
				Alpha:        210,
				ShadowColor:  "#000000",
				ShadowAlpha:  40,
				ShadowOffset: 3,
			},
		},
		Badge:       BadgeConfig{Size: 180, Margin: 48},
		Screenshots: shots.Default(),
	}
}

// Load loads configuration from a YAML file on top of the defaults.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// ResolveScreenshots returns the render table: the CSV at Paths.Table when
// set, the inline list otherwise.
func (c *Config) ResolveScreenshots() ([]shots.Spec, error) {
	if c.Paths.Table != "" {
		return shots.LoadTable(c.Paths.Table)
	}
	if err := shots.Validate(c.Screenshots); err != nil {
		return nil, err
	}
	return c.Screenshots, nil
}
