package cmd

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/versioninfo/internal/config"
	"github.com/renato0307/versioninfo/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Render    RenderCmd    `cmd:"" help:"Set version info on the service environment and print it" default:"1"`
	Stats     StatsCmd     `cmd:"stats" help:"Collect and print the repository statistics"`
	Lifecycle LifecycleCmd `cmd:"lifecycle" help:"Run a host command's lifecycle events, firing the plugin hooks"`
	Settings  SettingsCmd  `cmd:"settings" help:"Show settings file location and effective values"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// CLI flags > VERSIONINFO_* env vars > settings.yaml > defaults.
	// Env vars are already merged into the settings.
	if c.settings != nil {
		if c.MaxLogFiles == config.DefaultMaxLogFiles && c.settings.IsSet(config.KeyMaxLogFiles) {
			c.MaxLogFiles = c.settings.MaxLogFiles
		}
		if !c.Debug && c.settings.Debug {
			c.Debug = true
		}
		if c.DebugFile == "" && c.settings.DebugFile != "" {
			c.DebugFile = c.settings.DebugFile
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}
	if logFilePath != "" {
		logging.Logger.Info("Logging initialized", "file", logFilePath, "args", os.Args[1:])
	}

	settings := c.settings
	if settings == nil {
		settings = config.DefaultSettings()
	}

	// Create container AFTER logging is initialized
	c.Container = NewContainer(settings, os.Stderr)

	return nil
}
