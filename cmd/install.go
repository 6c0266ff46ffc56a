package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"timesheeter-install/internal/config"
	"timesheeter-install/internal/installer"
	"timesheeter-install/internal/launcher"
	"timesheeter-install/internal/logger"
	"timesheeter-install/internal/prompt"
	"timesheeter-install/internal/state"
)

// configPath holds the path to the optional install config file.
// It's passed via the `--config` or `-c` flag.
var configPath string

// launcherPath is where the launcher script is written.
// It's passed via the `--output` or `-o` flag.
var launcherPath string

// venvPath holds the virtual environment path when supplied on the command
// line instead of interactively.
var venvPath string

// noInput disables the interactive prompt for unattended runs.
var noInput bool

// installCmd generates the Timesheeter launcher script. Without --venv or a
// config file it asks the user where (and whether) a Python virtual
// environment lives, then writes an executable timesheeter.sh that
// activates it and starts the application.
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Generate the executable Timesheeter launcher script",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := installer.Options{
			Fs:           afero.NewOsFs(),
			ConfigPath:   configPath,
			StatePath:    state.DefaultPath,
			LauncherPath: launcherPath,
			VenvPath:     venvPath,
			VenvSet:      cmd.Flags().Changed("venv"),
			NoInput:      noInput,
			Ask:          prompt.AskVenvPath,
		}

		if err := installer.Run(opts); err != nil {
			logger.Error("[ERROR] Install failed: %v\n", err)
			return err
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true, // already logged above, in color
}

// uninstallCmd removes the launcher recorded by the last install run.
var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the generated launcher script",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := installer.Options{
			Fs:           afero.NewOsFs(),
			StatePath:    state.DefaultPath,
			LauncherPath: launcherPath,
		}

		if err := installer.Uninstall(opts); err != nil {
			logger.Error("[ERROR] Uninstall failed: %v\n", err)
			return err
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// init sets up CLI flags and adds the commands to the root command.
func init() {
	installCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to the install config file")
	installCmd.Flags().StringVarP(&launcherPath, "output", "o", "", "Where to write the launcher (default "+launcher.DefaultPath+")")
	installCmd.Flags().StringVar(&venvPath, "venv", "", "Virtual environment path (skips the prompt)")
	installCmd.Flags().BoolVar(&noInput, "no-input", false, "Never prompt; use flags and config only")

	uninstallCmd.Flags().StringVarP(&launcherPath, "output", "o", "", "Launcher to remove (default: the recorded one)")

	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
}
