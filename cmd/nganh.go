package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vyyka/fptpray/internal/output"
)

// nganhCmd manages the chosen field of study.
var nganhCmd = &cobra.Command{
	Use:     "nganh [command]",
	Aliases: []string{"major"},
	Short:   "Chọn ngành cho bảng xếp hạng",
	Long: `Set or show your field of study. The relay sink forwards it with every
wish and the leaderboard groups counts by it.

Examples:
  fptpray nganh
  fptpray nganh set SE`,
	RunE: runNganhGet,
}

var nganhGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Xem ngành hiện tại",
	RunE:  runNganhGet,
}

var nganhSetCmd = &cobra.Command{
	Use:   "set NGANH",
	Short: "Đặt ngành, ví dụ SE, AI, IB",
	Args:  cobra.ExactArgs(1),
	RunE:  runNganhSet,
}

func runNganhGet(cmd *cobra.Command, args []string) error {
	profile, err := ctx.ProfileRepo.Get()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{"nganh": profile.Nganh})
	}

	f := ctx.Formatter
	if profile.Nganh == "" {
		f.Println(f.Styled(output.StyleMuted, "Chưa chọn ngành. Dùng: fptpray nganh set SE"))
		return nil
	}
	f.Printf("Ngành: %s\n", f.Styled(output.StyleCount, profile.Nganh))
	return nil
}

func runNganhSet(cmd *cobra.Command, args []string) error {
	profile, err := ctx.ProfileRepo.Get()
	if err != nil {
		return err
	}
	profile.Nganh = args[0]
	if err := ctx.ProfileRepo.Update(profile); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{"nganh": profile.Nganh})
	}
	ctx.Formatter.Printf("Đã chọn ngành %s\n", profile.Nganh)
	return nil
}

func init() {
	nganhCmd.AddCommand(nganhGetCmd)
	nganhCmd.AddCommand(nganhSetCmd)
	rootCmd.AddCommand(nganhCmd)
}
