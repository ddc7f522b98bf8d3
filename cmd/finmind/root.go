package finmind

import (
	"fmt"
	"os"
)

// Execute is the main entry point for the CLI
func Execute() error {
	if len(os.Args) < 2 || os.Args[1] == "-h" || os.Args[1] == "--help" {
		printUsage()
		if len(os.Args) < 2 {
			return fmt.Errorf("no command provided")
		}
		return nil
	}

	command := os.Args[1]
	switch command {
	case "chat":
		return handleChatCommand()
	case "games":
		return handleGamesCommand(os.Args[2:])
	case "history":
		return handleHistoryCommand()
	case "report":
		return handleReportCommand(os.Args[2:])
	case "config":
		return handleConfigCommand(os.Args[2:])
	case "version":
		printVersion()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printUsage() {
	fmt.Println("usage: finmind [-h] {chat,games,history,report,config,version} ...")
	fmt.Println("")
	fmt.Println("positional arguments:")
	fmt.Println("  {chat,games,history,report,config,version}")
	fmt.Println("                        FinMind CLI commands")
	fmt.Println("    chat                Talk to the financial advisor")
	fmt.Println("    games               Play the decision-bias mini-games")
	fmt.Println("    history             Browse past conversations")
	fmt.Println("    report              Generate the HTML wellbeing report")
	fmt.Println("    config              Manage configuration")
	fmt.Println("    version             Show version information")
	fmt.Println("")
	fmt.Println("options:")
	fmt.Println("  -h, --help            show this help message and exit")
}
