package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"gavel/internal/merge"
	"gavel/internal/preflight"
)

const summaryElapsedPrecision = 10 * time.Millisecond

func newMergeCommand(ctx *commandContext) *cobra.Command {
	var clusterID int64

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge imported corpus documents into case records",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			results := preflight.RunAll(cfg)
			if !preflight.AllPassed(results) {
				printPreflight(out, results)
				return errors.New("preflight checks failed")
			}

			lock := flock.New(cfg.LockPath())
			ok, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire merge lock: %w", err)
			}
			if !ok {
				return errors.New("another gavel merge is already running")
			}
			defer func() { _ = lock.Unlock() }()

			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}
			st, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			driver := merge.NewDriver(st, logger)
			var summary *merge.Summary
			if clusterID > 0 {
				summary, err = driver.RunOne(cmd.Context(), clusterID)
			} else {
				summary, err = driver.Run(cmd.Context())
			}
			if err != nil {
				return err
			}

			printSummary(out, summary)
			if summary.Failed > 0 {
				return fmt.Errorf("%d of %d cluster merges failed", summary.Failed, summary.Total)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&clusterID, "cluster-id", 0, "Merge a single cluster by id")
	return cmd
}

func printPreflight(out io.Writer, results []preflight.Result) {
	rows := make([][]string, 0, len(results))
	for _, result := range results {
		status := "FAIL"
		if result.Passed {
			status = "ok"
		}
		rows = append(rows, []string{result.Name, status, result.Detail})
	}
	fmt.Fprintln(out, renderTable([]string{"Check", "Status", "Detail"}, rows))
}

func printSummary(out io.Writer, summary *merge.Summary) {
	rows := [][]string{
		{"Clusters", strconv.Itoa(summary.Total)},
		{"Committed", strconv.Itoa(summary.Committed)},
		{"Skipped", strconv.Itoa(summary.Skipped)},
		{"Aborted", strconv.Itoa(summary.Aborted)},
		{"Failed", strconv.Itoa(summary.Failed)},
		{"Elapsed", summary.Elapsed.Round(summaryElapsedPrecision).String()},
	}

	if isTerminal(out) {
		fmt.Fprintln(out, renderTable([]string{"Run " + summary.RunID, ""}, rows, 1))
	} else {
		for _, row := range rows {
			fmt.Fprintf(out, "%s\t%s\n", row[0], row[1])
		}
	}

	if len(summary.Failures) == 0 {
		return
	}
	failureRows := make([][]string, 0, len(summary.Failures))
	for _, failure := range summary.Failures {
		detail := ""
		if failure.Err != nil {
			detail = failure.Err.Error()
		}
		failureRows = append(failureRows, []string{
			strconv.FormatInt(failure.ClusterID, 10),
			failure.Outcome.String(),
			detail,
		})
	}
	fmt.Fprintln(out, renderTable([]string{"Cluster", "Outcome", "Detail"}, failureRows, 0))
}
