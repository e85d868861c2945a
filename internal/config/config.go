package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/gubarz/actguide/internal/parser"
)

// Init initializes configuration with viper. An explicit file (from --config)
// takes precedence over the search paths.
func Init(file string) error {
	SetDefaults()

	if file != "" {
		viper.SetConfigFile(file)
	} else {
		viper.SetConfigName("actguide")
		viper.SetConfigType("yaml")

		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "actguide"))
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("ACTGUIDE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config in the search paths is fine, a named one is not
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || file != "" {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

// SetDefaults registers the default value of every key
func SetDefaults() {
	viper.SetDefault("path", ".")
	viper.SetDefault("image_base", parser.DefaultImageBase)
	viper.SetDefault("output", "print")
	viper.SetDefault("format", "text")
	viper.SetDefault("zone_names", "")
	viper.SetDefault("guide_style", "auto")
	viper.SetDefault("word_wrap", 100)
	viper.SetDefault("log_file", "")
	viper.SetDefault("log_level", "debug")
	viper.SetDefault("color_header", "36")    // Cyan
	viper.SetDefault("color_dim", "241")      // Gray
	viper.SetDefault("color_cursor", "212")   // Pink
	viper.SetDefault("color_selected", "236") // Dark gray
}

// GetPath returns the guide path with tilde expansion
func GetPath() string {
	return expandTilde(viper.GetString("path"))
}

// expandTilde expands ~ to the user's home directory
func expandTilde(path string) string {
	if len(path) == 0 {
		return path
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetImageBase returns the URL prefix for zone layout images
func GetImageBase() string {
	return viper.GetString("image_base")
}

// GetOutput returns the output mode
func GetOutput() string {
	return viper.GetString("output")
}

// GetFormat returns the output format
func GetFormat() string {
	return viper.GetString("format")
}

// GetZoneNames returns the zone name override file, if any
func GetZoneNames() string {
	return expandTilde(viper.GetString("zone_names"))
}

// GetGuideStyle returns the glamour style for terminal guides
func GetGuideStyle() string {
	return viper.GetString("guide_style")
}

// GetWordWrap returns the terminal guide wrap width
func GetWordWrap() int {
	return viper.GetInt("word_wrap")
}

// GetLogFile returns the debug log path, empty when file logging is off
func GetLogFile() string {
	return expandTilde(viper.GetString("log_file"))
}

// GetLogLevel returns the file log level
func GetLogLevel() string {
	return viper.GetString("log_level")
}

// GetColorHeader returns the color for headers
func GetColorHeader() string {
	return viper.GetString("color_header")
}

// GetColorDim returns the color for secondary text
func GetColorDim() string {
	return viper.GetString("color_dim")
}

// GetColorCursor returns the color for the cursor
func GetColorCursor() string {
	return viper.GetString("color_cursor")
}

// GetColorSelected returns the background color for the selected row
func GetColorSelected() string {
	return viper.GetString("color_selected")
}

// SetOutput sets output mode at runtime
func SetOutput(mode string) {
	viper.Set("output", mode)
}

// SetFormat sets output format at runtime
func SetFormat(format string) {
	viper.Set("format", format)
}

// SetPath sets path at runtime
func SetPath(path string) {
	viper.Set("path", path)
}
