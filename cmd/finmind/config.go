package finmind

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/finmindlabs/finmind/pkg/config"
)

func handleConfigCommand(args []string) error {
	if len(args) < 1 || args[0] == "-h" || args[0] == "--help" {
		printConfigUsage()
		return nil
	}

	switch args[0] {
	case "edit":
		return handleConfigEdit()
	case "show":
		return handleConfigShow()
	case "directory":
		return handleConfigDirectory()
	default:
		return fmt.Errorf("unknown config subcommand: %s", args[0])
	}
}

func printConfigUsage() {
	fmt.Println("usage: finmind config [-h] {edit,show,directory} ...")
	fmt.Println("")
	fmt.Println("positional arguments:")
	fmt.Println("  {edit,show,directory}")
	fmt.Println("                        Configuration management commands")
	fmt.Println("    edit                Open config.yaml in default editor")
	fmt.Println("    show                Print the effective configuration")
	fmt.Println("    directory           Print the configuration directory path")
	fmt.Println("")
	fmt.Println("options:")
	fmt.Println("  -h, --help            show this help message and exit")
}

func handleConfigEdit() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Seed the file with current defaults so there is something to edit.
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg, err := config.LoadAppConfig()
		if err != nil {
			return err
		}
		if err := config.SaveAppConfig(cfg); err != nil {
			return err
		}
	}

	return openInEditor(path)
}

func handleConfigShow() error {
	cfg, err := config.LoadAppConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Printf("api_url:   %s\n", cfg.APIURL)
	fmt.Printf("log_level: %s\n", cfg.LogLevel)
	fmt.Printf("voice.record_command: %s\n", cfg.Voice.RecordCommand)
	fmt.Printf("voice.play_command:   %s\n", cfg.Voice.PlayCommand)
	if cfg.Report.Dir != "" {
		fmt.Printf("report.dir: %s\n", cfg.Report.Dir)
	}
	return nil
}

func handleConfigDirectory() error {
	dir, err := config.GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	fmt.Println(dir)
	return nil
}
