package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"gavel/internal/store"
)

func newEligibleCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "eligible",
		Short: "List clusters awaiting a corpus merge",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			ids, err := st.ListEligibleClusterIDs(cmd.Context(), store.SourceCorpus)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(ids) == 0 {
				fmt.Fprintln(out, "No clusters awaiting merge.")
				return nil
			}

			rows := make([][]string, 0, len(ids))
			for _, id := range ids {
				cluster, err := st.GetCluster(cmd.Context(), id)
				if err != nil {
					return err
				}
				docket, err := st.GetDocket(cmd.Context(), cluster.DocketID)
				if err != nil {
					return err
				}
				rows = append(rows, []string{
					strconv.FormatInt(id, 10),
					cluster.CaseName,
					docket.DocketNumber,
					cluster.DateFiled,
					cluster.ImportPath,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Case", "Docket", "Filed", "Document"}, rows, 0))
			return nil
		},
	}
}
