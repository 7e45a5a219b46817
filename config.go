package trimview

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/hmomeni/trimview/utils"
)

// ConfigFile is the name of the configuration file inside ConfigDir.
const ConfigFile = "config.toml"

// Config is the persisted configuration of the sample host applications.
type Config struct {
	Range    RangeConfig    `toml:"range"`
	Style    StyleConfig    `toml:"style"`
	Window   WindowConfig   `toml:"window"`
	Playback PlaybackConfig `toml:"playback"`
}

// RangeConfig holds the logical state a host starts with.
type RangeConfig struct {
	Max       int `toml:"max"`
	TrimStart int `toml:"trim_start"`
	Trim      int `toml:"trim"`
	MinTrim   int `toml:"min_trim"`
	MaxTrim   int `toml:"max_trim"`
	Progress  int `toml:"progress"`
}

// Range converts the configuration into a Range accepted by Controller.Configure.
func (r RangeConfig) Range() Range {
	return Range{
		Max:       r.Max,
		TrimStart: r.TrimStart,
		Trim:      r.Trim,
		MinTrim:   r.MinTrim,
		MaxTrim:   r.MaxTrim,
		Progress:  r.Progress,
	}
}

// StyleConfig is the textual form of Style. Colors are hex strings.
type StyleConfig struct {
	Background  string  `toml:"background"`
	Track       string  `toml:"track"`
	Active      string  `toml:"active"`
	Progress    string  `toml:"progress"`
	Handle      string  `toml:"handle"`
	Bracket     string  `toml:"bracket"`
	HandleWidth float32 `toml:"handle_width"`
	LineHeight  float32 `toml:"line_height"`
	Radius      float32 `toml:"radius"`
	HitSlop     float32 `toml:"hit_slop"`
	BracketSize float32 `toml:"bracket_size"`
}

// Parse decodes the colors and checks the sizes.
func (s StyleConfig) Parse() (Style, error) {
	var (
		st  Style
		err error
	)
	colors := []struct {
		name string
		hex  string
		dst  *color.NRGBA
	}{
		{"background", s.Background, &st.Background},
		{"track", s.Track, &st.Track},
		{"active", s.Active, &st.Active},
		{"progress", s.Progress, &st.Progress},
		{"handle", s.Handle, &st.Handle},
		{"bracket", s.Bracket, &st.Bracket},
	}
	for _, c := range colors {
		if *c.dst, err = utils.HexToRGBA(c.hex); err != nil {
			return Style{}, fmt.Errorf("style.%s: %w", c.name, err)
		}
	}
	if s.HandleWidth <= 0 {
		return Style{}, fmt.Errorf("style.handle_width must be positive, got %v", s.HandleWidth)
	}
	if s.LineHeight <= 0 {
		return Style{}, fmt.Errorf("style.line_height must be positive, got %v", s.LineHeight)
	}
	if s.Radius < 0 || s.HitSlop < 0 || s.BracketSize < 0 {
		return Style{}, errors.New("style sizes cannot be negative")
	}
	st.HandleWidth = s.HandleWidth
	st.LineHeight = s.LineHeight
	st.Radius = s.Radius
	st.HitSlop = s.HitSlop
	st.BracketSize = s.BracketSize
	return st, nil
}

// WindowConfig holds the initial window title and size in dp.
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// PlaybackConfig controls the simulated playback of the sample hosts.
type PlaybackConfig struct {
	// Advance is the progress auto-advance period. Zero disables it.
	Advance Duration `toml:"advance"`
	// ResetOnChange rewinds the progress to 0 whenever the trim window changes.
	ResetOnChange bool `toml:"reset_on_change"`
}

// Duration is a time.Duration written as a string such as "500ms" in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a time.ParseDuration string. Negative durations are rejected.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("negative duration %q", text)
	}
	d.Duration = v
	return nil
}

// MarshalText formats d the way time.Duration.String does.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DefaultConfig returns the sample configuration: a range of 100 with a 50 long window
// which may shrink to 20 and grow to 80.
func DefaultConfig() *Config {
	return &Config{
		Range: RangeConfig{
			Max:     100,
			Trim:    50,
			MinTrim: 20,
			MaxTrim: 80,
		},
		Style: styleConfig(DefaultStyle()),
		Window: WindowConfig{
			Title:  "TrimView",
			Width:  480,
			Height: 160,
		},
		Playback: PlaybackConfig{
			Advance:       Duration{500 * time.Millisecond},
			ResetOnChange: true,
		},
	}
}

func styleConfig(s Style) StyleConfig {
	return StyleConfig{
		Background:  utils.RGBAToHex(s.Background),
		Track:       utils.RGBAToHex(s.Track),
		Active:      utils.RGBAToHex(s.Active),
		Progress:    utils.RGBAToHex(s.Progress),
		Handle:      utils.RGBAToHex(s.Handle),
		Bracket:     utils.RGBAToHex(s.Bracket),
		HandleWidth: s.HandleWidth,
		LineHeight:  s.LineHeight,
		Radius:      s.Radius,
		HitSlop:     s.HitSlop,
		BracketSize: s.BracketSize,
	}
}

// Validate checks that the configuration can be applied to a controller.
func (c *Config) Validate() error {
	if err := c.Range.Range().Validate(); err != nil {
		return fmt.Errorf("range: %w", err)
	}
	if _, err := c.Style.Parse(); err != nil {
		return err
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("window size cannot be negative: %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}

// Apply configures the range of ctrl. The controller is left untouched on error.
func (c *Config) Apply(ctrl *Controller) error {
	return ctrl.Configure(c.Range.Range())
}

// LoadConfig reads the file at path. Keys missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	conf := DefaultConfig()
	md, err := toml.DecodeFile(path, conf)
	if err != nil {
		return nil, fmt.Errorf("couldn't read config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q in %s", undecoded[0].String(), path)
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return conf, nil
}

// WriteConfig encodes conf to path, creating the parent directory when needed.
func WriteConfig(path string, conf *Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(conf); err != nil {
		return fmt.Errorf("couldn't encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("couldn't create config directory: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// ConfigDir returns $XDG_CONFIG_HOME/trimview, falling back to ~/.config/trimview.
func ConfigDir() string {
	return filepath.Join(xdgOrFallback("XDG_CONFIG_HOME", filepath.Join(os.Getenv("HOME"), ".config")), "trimview")
}

// DefaultConfigPath is the path of the configuration file inside ConfigDir.
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), ConfigFile)
}

func xdgOrFallback(xdg, fallback string) string {
	if dir := os.Getenv(xdg); dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return fallback
}
