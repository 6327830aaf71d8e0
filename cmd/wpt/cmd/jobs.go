package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func jobsCmd() *cobra.Command {
	jobsRoot := &cobra.Command{
		Use:   "jobs",
		Short: "View and trigger scheduled jobs",
		Long: "View the execution history of scheduled jobs (cleanup). Each job\n" +
			"records status, duration, rows affected and any errors.",
	}

	jobsRoot.AddCommand(
		jobsListCmd(),
		jobsHistoryCmd(),
		jobsCleanupCmd(),
	)

	return jobsRoot
}

func jobsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List latest run per job",
		Example: `  wpt jobs list
  wpt jobs list --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			runs, err := c.ListJobs(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(runs)
			}
			if len(runs) == 0 {
				fmt.Println("No job runs found.")
				return nil
			}
			return printJobRunsTable(runs)
		},
	}
}

func jobsHistoryCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history <job_name>",
		Short: "Show run history for a job",
		Args:  cobra.ExactArgs(1),
		Example: `  wpt jobs history cleanup
  wpt jobs history cleanup --limit 5`,
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			runs, err := c.GetJobHistory(context.Background(), args[0], limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(runs)
			}
			if len(runs) == 0 {
				fmt.Printf("No runs found for job %q.\n", args[0])
				return nil
			}
			return printJobRunsTable(runs)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum runs to show (server default 20)")
	return cmd
}

func jobsCleanupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Run the retention cleanup now",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			status, err := c.RunCleanup(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(status)
			return nil
		},
	}
}
