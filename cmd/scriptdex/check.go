package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scriptdex/internal/check"
	"scriptdex/internal/config"
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run consistency checks against the documentation files",
		RunE:  runCheck,
	}
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		return err
	}

	report, err := check.Run(cfg)
	if err != nil {
		return err
	}

	var errorIssues []check.Issue
	var warnIssues []check.Issue
	for _, issue := range report.Issues {
		switch issue.Severity {
		case check.SeverityError:
			errorIssues = append(errorIssues, issue)
		case check.SeverityWarn:
			warnIssues = append(warnIssues, issue)
		}
	}

	fmt.Fprintf(os.Stdout, "Checked %d sources, %d records.\n", report.Sources, report.Records)

	if len(errorIssues) == 0 && len(warnIssues) == 0 {
		fmt.Fprintln(os.Stdout, "No issues found.")
		return nil
	}

	if len(errorIssues) > 0 {
		fmt.Fprintf(os.Stdout, "Errors (%d):\n", len(errorIssues))
		printIssues(os.Stdout, errorIssues)
	}
	if len(warnIssues) > 0 {
		if len(errorIssues) > 0 {
			fmt.Fprintln(os.Stdout, "")
		}
		fmt.Fprintf(os.Stdout, "Warnings (%d):\n", len(warnIssues))
		printIssues(os.Stdout, warnIssues)
	}

	if len(errorIssues) > 0 {
		return fmt.Errorf("check found errors")
	}
	return nil
}

func printIssues(out *os.File, issues []check.Issue) {
	for _, issue := range issues {
		location := issue.Source
		if issue.Name != "" {
			location = fmt.Sprintf("%s: %s", issue.Source, issue.Name)
		}
		fmt.Fprintf(out, "  - %s: %s (%s)\n", location, issue.Message, issue.Code)
	}
}
