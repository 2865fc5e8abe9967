package config

// Default locations used when no configuration file overrides them.
const (
	DefaultPackageManager = "/usr/lib/LegendaryOS/pacman"
	DefaultAURHelper      = "yay"
	DefaultSnapshotTool   = "snapper"
	DefaultUIHelper       = "legendary-ui"
	DefaultAboutFile      = "/usr/share/ascii"

	// DefaultConfigFile is read when --config is not given. Its absence is not an error.
	DefaultConfigFile = "/etc/legendary/config.yaml"
)

// Config holds the programs the dispatcher spawns and the file the about
// command prints.
// - PackageManager: pacman binary used for every package operation.
// - AURHelper: consulted by install and search only when the package manager fails.
// - Flatpak: optional third provider for install and search; empty disables it.
// - SnapshotTool: snapper binary used by rollback and status.
// - UIHelper: graphical front-end launched by the ui command.
// - AboutFile: text file printed by the about command.
type Config struct {
	PackageManager string `yaml:"package_manager"`
	AURHelper      string `yaml:"aur_helper"`
	Flatpak        string `yaml:"flatpak"`
	SnapshotTool   string `yaml:"snapshot_tool"`
	UIHelper       string `yaml:"ui_helper"`
	AboutFile      string `yaml:"about_file"`
}

// Default returns the configuration used on a stock LegendaryOS install.
func Default() Config {
	return Config{
		PackageManager: DefaultPackageManager,
		AURHelper:      DefaultAURHelper,
		SnapshotTool:   DefaultSnapshotTool,
		UIHelper:       DefaultUIHelper,
		AboutFile:      DefaultAboutFile,
	}
}
