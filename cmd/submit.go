package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vyyka/fptpray/internal/errors"
	"github.com/vyyka/fptpray/internal/output"
)

// Submit command flags.
var (
	submitFlagEmail string
	submitFlagWish  string
)

// submitCmd sends a wish through the offering pipeline.
var submitCmd = &cobra.Command{
	Use:     "submit [WISH...]",
	Aliases: []string{"pray", "nguyen"},
	Short:   "Gửi một lời nguyện",
	Long: `Send a wish to the altar. The wish is validated locally, dispatched to
the configured sink, and one merit point is credited once the submission is
confirmed.

Examples:
  fptpray submit -e student@fpt.edu.vn "Mong thi qua mon"
  fptpray submit --email student@fpt.edu.vn --wish "Mong thi qua mon"`,
	RunE: runSubmit,
}

func runSubmit(cmd *cobra.Command, args []string) error {
	wish := submitFlagWish
	if wish == "" && len(args) > 0 {
		wish = strings.Join(args, " ")
	}

	profile, err := ctx.ProfileRepo.Get()
	if err != nil {
		return err
	}

	m := ctx.Machine
	m.SetInput(submitFlagEmail, wish)
	m.SetNganh(profile.Nganh)

	var newTotal int
	m.OnSuccess(func(total int) { newTotal = total })

	submitErr := m.Submit(cmd.Context())

	if ctx.IsJSON() {
		resp := map[string]any{
			"status":   string(m.Status()),
			"feedback": m.Feedback(),
		}
		if submitErr == nil {
			resp["merit"] = newTotal
		}
		if rej, ok := errors.AsRejection(submitErr); ok {
			resp["rejection"] = string(rej.Kind)
		}
		if err := ctx.Formatter.JSON(resp); err != nil {
			return err
		}
		return submitErr
	}

	f := ctx.Formatter
	if submitErr != nil {
		f.Println(f.Styled(output.StyleError, m.Feedback()))
		return submitErr
	}

	// The one-shot celebratory presentation: incense, petals, merit.
	f.Println(f.Styled(output.StyleSuccess, "🪷 "+m.Feedback()))
	f.Printf("Nén nhang đã được thắp. Công đức: %s\n",
		f.Styled(output.StyleCount, itoa(newTotal)))
	return nil
}

func init() {
	submitCmd.Flags().StringVarP(&submitFlagEmail, "email", "e", "",
		"Email của bạn (bắt buộc)")
	submitCmd.Flags().StringVarP(&submitFlagWish, "wish", "w", "",
		"Lời nguyện (hoặc truyền trực tiếp làm tham số)")

	rootCmd.AddCommand(submitCmd)
}
