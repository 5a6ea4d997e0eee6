package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vyyka/fptpray/internal/output"
)

// meritCmd shows the merit ledger.
var meritCmd = &cobra.Command{
	Use:     "merit",
	Aliases: []string{"congduc"},
	Short:   "Xem công đức đã tích",
	RunE: func(cmd *cobra.Command, args []string) error {
		total, err := ctx.LedgerRepo.Read()
		if err != nil {
			return err
		}
		last, err := ctx.LedgerRepo.LastActivity()
		if err != nil {
			return err
		}

		if ctx.IsJSON() {
			resp := map[string]any{"merit": total}
			if !last.IsZero() {
				resp["last_activity"] = last
			}
			return ctx.Formatter.JSON(resp)
		}

		f := ctx.Formatter
		f.Printf("Công đức: %s\n", f.Styled(output.StyleCount, itoa(total)))
		if last.IsZero() {
			f.Println(f.Styled(output.StyleMuted, "Chưa có lời nguyện nào được gửi."))
		} else {
			f.Printf("Lần nguyện gần nhất: %s\n",
				f.Styled(output.StyleMuted, last.Format("02/01/2006 15:04")))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(meritCmd)
}
