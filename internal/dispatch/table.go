package dispatch

import "legendary/internal/config"

// Kind selects how a command is carried out.
type Kind int

const (
	// Process commands run their Steps in order.
	Process Kind = iota
	// About prints the about file and static metadata.
	About
	// Help prints the command listing.
	Help
)

// Command is one entry of the dispatch table.
type Command struct {
	Name    string
	ArgName string // positional argument, empty when the command takes none
	Summary string // help listing text
	Short   string // one-line description for --help
	Kind    Kind
	Title   string // printed before the steps, if set
	Rule    string // underline printed after Title
	Steps   []Step
}

// Usage renders the command as it appears in the help listing.
func (c Command) Usage() string {
	if c.ArgName == "" {
		return c.Name
	}
	return c.Name + " <" + c.ArgName + ">"
}

// NArgs is the exact number of positional arguments the command accepts.
func (c Command) NArgs() int {
	if c.ArgName == "" {
		return 0
	}
	return 1
}

// Table builds the command table for cfg, in help-listing order.
func Table(cfg config.Config) []Command {
	pm := func(args ...string) Provider { return Provider{Program: cfg.PackageManager, Args: args} }
	aur := func(args ...string) Provider { return Provider{Program: cfg.AURHelper, Args: args} }
	snap := func(args ...string) Provider { return Provider{Program: cfg.SnapshotTool, Args: args} }

	install := []Provider{pm("-S", ArgPlaceholder, "--noconfirm"), aur("-S", ArgPlaceholder, "--noconfirm")}
	search := []Provider{pm("-Ss", ArgPlaceholder), aur("-Ss", ArgPlaceholder)}
	if cfg.Flatpak != "" {
		install = append(install, Provider{Program: cfg.Flatpak, Args: []string{"install", ArgPlaceholder, "-y"}})
		search = append(search, Provider{Program: cfg.Flatpak, Args: []string{"search", ArgPlaceholder}})
	}

	return []Command{
		{
			Name:    "help",
			Summary: "Show this help message",
			Short:   "Shows available commands (same as running without arguments)",
			Kind:    Help,
		},
		{
			Name:    "install",
			ArgName: "pkg",
			Summary: "Install a package (falls back to yay)",
			Short:   "Installs a package using pacman, falls back to yay if not found",
			Steps: []Step{{
				Intro:     "Installing package: {arg}",
				Providers: install,
				Fallback:  "Package {arg} not found in {provider} repos, trying {next}...",
				Success:   "Package {arg} installed successfully with {provider}!",
				Failure:   "Failed to install package {arg} with {provider}.",
			}},
		},
		{
			Name:    "update",
			Summary: "Update package lists (pacman -Sy)",
			Short:   "Updates package lists (pacman -Sy)",
			Steps: []Step{{
				Intro:     "Updating package lists...",
				Providers: []Provider{pm("-Sy", "--noconfirm")},
				Success:   "Package lists updated successfully!",
				Failure:   "Failed to update package lists.",
			}},
		},
		{
			Name:    "upgrade",
			Summary: "Upgrade all packages (pacman -Syu)",
			Short:   "Upgrades all packages (pacman -Syu)",
			Steps: []Step{{
				Intro:     "Upgrading system packages...",
				Providers: []Provider{pm("-Syu", "--noconfirm")},
				Success:   "System upgraded successfully!",
				Failure:   "Failed to upgrade system.",
			}},
		},
		{
			Name:    "remove",
			ArgName: "pkg",
			Summary: "Remove a package (pacman -R)",
			Short:   "Removes a package (pacman -R)",
			Steps: []Step{{
				Intro:     "Removing package: {arg}",
				Providers: []Provider{pm("-R", ArgPlaceholder, "--noconfirm")},
				Success:   "Package {arg} removed successfully!",
				Failure:   "Failed to remove package {arg}.",
			}},
		},
		{
			Name:    "rollback",
			Summary: "Rollback to a previous Btrfs snapshot",
			Short:   "Rolls back to a Btrfs snapshot using snapper",
			Steps: []Step{{
				Intro:     "Initiating rollback to previous snapshot...",
				Providers: []Provider{snap("undochange", "0..1")},
				Success:   "Snapshot rollback completed successfully!",
				Failure:   "Failed to rollback snapshot.",
			}},
		},
		{
			Name:    "about",
			Summary: "Display system info and ASCII art",
			Short:   "Displays system info and ASCII art from " + cfg.AboutFile,
			Kind:    About,
			Title:   "LegendaryOS System Information",
			Rule:    "-----------------------------",
		},
		{
			Name:    "ui",
			Summary: "Launch graphical UI for package management",
			Short:   "Launches the graphical UI for package and snapshot management",
			Steps: []Step{{
				Intro:     "Launching LegendaryOS graphical interface...",
				Providers: []Provider{{Program: cfg.UIHelper}},
				Success:   "Graphical UI launched successfully!",
				Failure:   "Failed to launch graphical UI. Is legendary-ui installed?",
			}},
		},
		{
			Name:    "search",
			ArgName: "query",
			Summary: "Search for packages in repositories",
			Short:   "Searches for a package in pacman and yay repositories",
			Steps: []Step{{
				Intro:     "Searching for package: {arg}",
				Providers: search,
				Fallback:  "No results in {provider} repos, trying {next}...",
				Success:   "Search completed in {provider} repositories!",
				Failure:   "Failed to search for packages.",
			}},
		},
		{
			Name:    "list",
			Summary: "List all installed packages",
			Short:   "Lists all installed packages",
			Steps: []Step{{
				Intro:     "Listing all installed packages...",
				Providers: []Provider{pm("-Q")},
				Success:   "Installed packages listed successfully!",
				Failure:   "Failed to list installed packages.",
			}},
		},
		{
			Name:    "clean",
			Summary: "Clean package cache (pacman -Sc)",
			Short:   "Cleans the package cache (pacman -Sc)",
			Steps: []Step{{
				Intro:     "Cleaning package cache...",
				Providers: []Provider{pm("-Sc", "--noconfirm")},
				Success:   "Package cache cleaned successfully!",
				Failure:   "Failed to clean package cache.",
			}},
		},
		{
			Name:    "status",
			Summary: "Show system and snapshot status",
			Short:   "Displays system status and snapshot information",
			Title:   "LegendaryOS System Status",
			Rule:    "------------------------",
			Steps: []Step{
				{
					Intro:     "Checking system status...",
					Providers: []Provider{pm("-Qdtq")},
					Success:   "No orphaned packages found.",
					Failure:   "Orphaned packages detected.",
					Soft:      true,
				},
				{
					Intro:     "Checking snapshot status...",
					Providers: []Provider{snap("list")},
					Success:   "Snapshots listed successfully!",
					Failure:   "Failed to list snapshots.",
				},
			},
		},
	}
}
