package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"shipscout/cmd/ui/detection"
	"shipscout/cmd/ui/spinner"
	"shipscout/pkg/config"
)

const Version = "0.3.0"

var (
	jsonOutput      bool
	skipInteractive bool
	verbose         bool

	logoStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#5AD4E6")).Bold(true)
	tipMsgStyle    = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("190")).Italic(true)
	endingMsgStyle = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("170")).Bold(true)
)

const Logo = `
███████╗██╗  ██╗██╗██████╗ ███████╗ ██████╗ ██████╗ ██╗   ██╗████████╗
██╔════╝██║  ██║██║██╔══██╗██╔════╝██╔════╝██╔═══██╗██║   ██║╚══██╔══╝
███████╗███████║██║██████╔╝███████╗██║     ██║   ██║██║   ██║   ██║
╚════██║██╔══██║██║██╔═══╝ ╚════██║██║     ██║   ██║██║   ██║   ██║
███████║██║  ██║██║██║     ███████║╚██████╗╚██████╔╝╚██████╔╝   ██║
╚══════╝╚═╝  ╚═╝╚═╝╚═╝     ╚══════╝ ╚═════╝ ╚═════╝  ╚═════╝    ╚═╝
`

var rootCmd = &cobra.Command{
	Use:   "shipscout [PROJECT_PATH]",
	Short: "Classify a source tree by runtime and framework chain",
	Long: Logo + `
Shipscout inspects a project's files and declared dependencies to determine
the runtime it targets and the framework chain layered on top of it, then
resolves the install, build and dev commands a deploy pipeline should run.`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runRootCommand,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runRootCommand(cmd *cobra.Command, args []string) error {
	projectPath := "."
	if len(args) > 0 {
		projectPath = args[0]
	}
	projectPath = filepath.Clean(projectPath)

	info, err := os.Stat(projectPath)
	if err != nil {
		return fmt.Errorf("cannot access path %q: %w", projectPath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path %q is not a directory", projectPath)
	}

	ctx := log.WithContext(cmd.Context(), newLogger())

	if jsonOutput || skipInteractive || !isTerminal() {
		result, err := runDetection(ctx, projectPath)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Printf("%s\n", logoStyle.Render(Logo))

	spinnerProgram := tea.NewProgram(spinner.InitialModel("Classifying project..."))
	go func() {
		if _, err := spinnerProgram.Run(); err != nil {
			if err.Error() != "program was killed" {
				fmt.Fprintf(os.Stderr, "Error running spinner: %v\n", err)
			}
		}
	}()

	result, detectErr := runDetection(ctx, projectPath)
	spinnerProgram.Quit()
	spinnerProgram.Wait()
	if detectErr != nil {
		return detectErr
	}

	wantsSave, err := detection.ShowDetectionResults(result)
	if err != nil {
		return fmt.Errorf("showing detection results: %w", err)
	}
	if !wantsSave {
		fmt.Println("Detection not saved.")
		return nil
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	cfg.SetTarget(projectPath, config.TargetConfig{
		ProjectPath: projectPath,
		Detection:   &result,
	})
	if err := cfg.SaveConfig(); err != nil {
		return err
	}

	fmt.Printf("\n%s\n", endingMsgStyle.Render("Detection saved to "+config.GetConfigPath()))
	fmt.Printf("%s\n", tipMsgStyle.Render("Tip: use --json for CI/automation mode"))
	return nil
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func isTerminal() bool {
	if os.Getenv("CI") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return os.Getenv("TERM") != ""
}

func init() {
	rootCmd.SetVersionTemplate("shipscout version {{.Version}}\n")

	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(frameworksCmd)

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON (disables interactive mode)")
	rootCmd.PersistentFlags().BoolVar(&skipInteractive, "no-interactive", false, "Skip interactive prompts (for CI/automation)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
