package finmind

import (
	"context"
	"fmt"

	"github.com/finmindlabs/finmind/pkg/config"
	"github.com/finmindlabs/finmind/pkg/report"
)

const reportPort = 8465

func handleReportCommand(args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	serve := false
	for _, arg := range args {
		switch arg {
		case "--serve":
			serve = true
		case "-h", "--help":
			fmt.Println("usage: finmind report [--serve]")
			fmt.Println("")
			fmt.Println("Builds the HTML wellbeing report from stored game results and your")
			fmt.Println("chat history, and writes it next to your config (report.dir overrides).")
			fmt.Println("  --serve    also host the report on a local preview server")
			return nil
		default:
			return fmt.Errorf("unknown flag: %s", arg)
		}
	}

	doc, err := a.buildReport()
	if err != nil {
		return err
	}

	path, err := report.Write(a.reportDir(), doc)
	if err != nil {
		return err
	}
	fmt.Printf("Report written to %s\n", path)

	if serve {
		return report.Serve(doc, reportPort)
	}
	return nil
}

func (a *app) buildReport() (string, error) {
	results, err := a.store.LoadResults()
	if err != nil {
		return "", err
	}

	// History is best-effort: the report still renders when the backend
	// is unreachable.
	messages, err := a.history.Fetch(context.Background(), a.user.UserID)
	if err != nil {
		a.log.Warn().Err(err).Msg("history unavailable for report")
		messages = nil
	}

	return report.Build(results, messages)
}

func (a *app) writeReport() (string, error) {
	doc, err := a.buildReport()
	if err != nil {
		return "", err
	}

	path, err := report.Write(a.reportDir(), doc)
	if err != nil {
		return "", err
	}
	fmt.Printf("Report written to %s\n", path)
	return path, nil
}

func (a *app) reportDir() string {
	if a.cfg.Report.Dir != "" {
		return a.cfg.Report.Dir
	}
	if dir, err := config.GetConfigDir(); err == nil {
		return dir
	}
	return "."
}
