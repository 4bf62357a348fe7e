package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <cluster-id>",
		Short: "Show a cluster, its docket, and its opinions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid cluster id %q", args[0])
			}

			st, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			cluster, err := st.GetCluster(cmd.Context(), id)
			if err != nil {
				return err
			}
			if cluster == nil {
				return fmt.Errorf("cluster %d not found", id)
			}
			docket, err := st.GetDocket(cmd.Context(), cluster.DocketID)
			if err != nil {
				return err
			}
			if docket == nil {
				return fmt.Errorf("docket %d not found for cluster %d", cluster.DocketID, id)
			}
			opinions, err := st.OpinionsForCluster(cmd.Context(), id)
			if err != nil {
				return err
			}

			date := cluster.DateFiled
			if cluster.DateFiledIsApproximate && date != "" {
				date += " (approximate)"
			}
			rows := [][]string{
				{"Case", cluster.CaseName},
				{"Full case name", cluster.CaseNameFull},
				{"Docket", docket.DocketNumber},
				{"Source", fmt.Sprintf("%d", docket.Source)},
				{"Judges", cluster.Judges},
				{"Filed", date},
				{"Attorneys", cluster.Attorneys},
				{"Disposition", cluster.Disposition},
				{"Document", cluster.ImportPath},
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, rows))

			if len(opinions) == 0 {
				fmt.Fprintln(out, "No opinions recorded.")
				return nil
			}
			opinionRows := make([][]string, 0, len(opinions))
			for _, opinion := range opinions {
				merged := "no"
				if opinion.ImportedXML != "" {
					merged = "yes"
				}
				opinionRows = append(opinionRows, []string{
					strconv.Itoa(opinion.Position),
					opinion.Type,
					opinion.AuthorStr,
					merged,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Pos", "Type", "Author", "Merged"}, opinionRows, 0))
			return nil
		},
	}
}
