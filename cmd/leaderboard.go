package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vyyka/fptpray/internal/output"
)

// leaderboardCmd shows the externally aggregated counts by major.
var leaderboardCmd = &cobra.Command{
	Use:     "leaderboard",
	Aliases: []string{"bxh", "top"},
	Short:   "Xem bảng xếp hạng theo ngành",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := ctx.Leaderboard.Fetch(cmd.Context())

		if ctx.IsJSON() {
			return ctx.Formatter.JSON(map[string]any{"entries": entries})
		}

		f := ctx.Formatter
		if len(entries) == 0 {
			f.Println(f.Styled(output.StyleMuted, "Bảng xếp hạng chưa có dữ liệu."))
			return nil
		}

		f.Println(f.Styled(output.StyleTitle, "Bảng xếp hạng"))
		for i, entry := range entries {
			f.Printf("%2d. %-8s %s\n", i+1, entry.Major,
				f.Styled(output.StyleCount, itoa(entry.Count)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(leaderboardCmd)
}
