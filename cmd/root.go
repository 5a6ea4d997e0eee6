// Package cmd provides the CLI commands for FPT Pray.
package cmd

import (
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vyyka/fptpray/internal/logging"
	"github.com/vyyka/fptpray/internal/output"
	"github.com/vyyka/fptpray/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "fptpray",
	Short: "Gửi lời nguyện trước mỗi kì thi",
	Long: `FPT Pray lets you send a wish to the altar before an exam, earn merit
for every offering, unlock altar items, and check the leaderboard by major.

Examples:
  fptpray submit -e student@fpt.edu.vn -w "Mong thi qua mon"
  fptpray merit
  fptpray items
  fptpray items equip nhang-tram
  fptpray nganh set SE
  fptpray leaderboard
  fptpray serve`,
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// serve runs without the client-side store; completion and help
		// need nothing at all.
		switch cmd.Name() {
		case "completion", "help", "version", "serve":
			return nil
		}

		var format output.Format
		switch flagFormat {
		case "json":
			format = output.FormatJSON
		case "plain":
			format = output.FormatPlain
		default:
			format = output.FormatCLI
		}

		var colorMode output.ColorMode
		switch flagColor {
		case "always":
			colorMode = output.ColorAlways
		case "never":
			colorMode = output.ColorNever
		default:
			colorMode = output.ColorAuto
		}

		if flagDebug {
			logging.Init(logging.DebugConfig())
		} else {
			logging.Init(logging.Config{Level: slog.LevelWarn})
		}

		var err error
		ctx, err = runtime.New(runtime.Options{
			Format:    format,
			ColorMode: colorMode,
			Debug:     flagDebug,
		})
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			return ctx.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show the altar status.
		return runStatus(cmd, args)
	},
}

// runStatus shows the merit total and the equipped set.
func runStatus(cmd *cobra.Command, args []string) error {
	total, err := ctx.LedgerRepo.Read()
	if err != nil {
		return err
	}
	last, err := ctx.LedgerRepo.LastActivity()
	if err != nil {
		return err
	}
	set, err := ctx.Inventory.Equipped()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		resp := map[string]any{
			"merit":    total,
			"equipped": set.Items,
		}
		if !last.IsZero() {
			resp["last_activity"] = last
		}
		return ctx.Formatter.JSON(resp)
	}

	f := ctx.Formatter
	f.Println(f.Styled(output.StyleTitle, "🙏 FPT Pray"))
	f.Printf("Công đức: %s\n", f.Styled(output.StyleCount, strconv.Itoa(total)))
	if !last.IsZero() {
		f.Printf("Lần nguyện gần nhất: %s\n", f.Styled(output.StyleMuted, last.Format("02/01/2006 15:04")))
	}
	for _, category := range categoriesForDisplay() {
		if id := set.Get(category.key); id != "" {
			if item, ok := ctx.Inventory.Catalog().Find(id); ok {
				f.Printf("%s: %s\n", category.label, f.Styled(output.StyleEquipped, item.DisplayName))
			}
		}
	}
	return nil
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("fptpray %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}
