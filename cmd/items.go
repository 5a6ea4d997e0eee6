package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vyyka/fptpray/internal/errors"
	"github.com/vyyka/fptpray/internal/inventory"
	"github.com/vyyka/fptpray/internal/output"
)

// itemsCmd lists the altar item catalog.
var itemsCmd = &cobra.Command{
	Use:     "items [command]",
	Aliases: []string{"item", "altar"},
	Short:   "Xem và trang bị vật phẩm bàn thờ",
	Long: `List the altar items, their unlock thresholds, and what is currently
equipped. Items unlock as merit accumulates; one item per category may be
equipped at a time.

Examples:
  fptpray items
  fptpray items equip nhang-tram`,
	RunE: runItemsList,
}

// itemsListCmd lists all items.
var itemsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Liệt kê vật phẩm",
	RunE:  runItemsList,
}

// itemsEquipCmd equips an unlocked item.
var itemsEquipCmd = &cobra.Command{
	Use:   "equip ITEM",
	Short: "Trang bị một vật phẩm đã mở khóa",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemsEquip,
}

func runItemsList(cmd *cobra.Command, args []string) error {
	total, err := ctx.LedgerRepo.Read()
	if err != nil {
		return err
	}
	set, err := ctx.Inventory.Equipped()
	if err != nil {
		return err
	}
	catalog := ctx.Inventory.Catalog()

	if ctx.IsJSON() {
		type itemView struct {
			ID              string `json:"id"`
			DisplayName     string `json:"display_name"`
			Category        string `json:"category"`
			UnlockThreshold int    `json:"unlock_threshold"`
			Unlocked        bool   `json:"unlocked"`
			Equipped        bool   `json:"equipped"`
		}
		var views []itemView
		for _, item := range catalog.Items() {
			views = append(views, itemView{
				ID:              item.ID,
				DisplayName:     item.DisplayName,
				Category:        item.Category,
				UnlockThreshold: item.UnlockThreshold,
				Unlocked:        inventory.IsUnlocked(item, total),
				Equipped:        set.Get(item.Category) == item.ID,
			})
		}
		return ctx.Formatter.JSON(map[string]any{"merit": total, "items": views})
	}

	f := ctx.Formatter
	for _, category := range categoriesForDisplay() {
		f.Println(f.Styled(output.StyleTitle, category.label))
		for _, item := range catalog.ListItems(category.key) {
			name := item.DisplayName
			switch {
			case set.Get(item.Category) == item.ID:
				name = f.Styled(output.StyleEquipped, name+" ✓")
			case !inventory.IsUnlocked(item, total):
				name = f.Styled(output.StyleLocked, name) +
					f.Styled(output.StyleMuted, fmt.Sprintf(" (cần %d công đức)", item.UnlockThreshold))
			}
			f.Printf("  %-18s %s\n", item.ID, name)
		}
	}
	return nil
}

func runItemsEquip(cmd *cobra.Command, args []string) error {
	item, err := ctx.Inventory.Equip(args[0])

	if ctx.IsJSON() {
		resp := map[string]any{"equipped": err == nil}
		if err != nil {
			resp["error"] = err.Error()
		} else {
			resp["item"] = item.ID
		}
		if jsonErr := ctx.Formatter.JSON(resp); jsonErr != nil {
			return jsonErr
		}
		return err
	}

	f := ctx.Formatter
	switch {
	case errors.Is(err, errors.ErrItemNotFound):
		f.Println(f.Styled(output.StyleError, "Không tìm thấy vật phẩm: "+args[0]))
		return err
	case errors.Is(err, errors.ErrItemLocked):
		f.Println(f.Styled(output.StyleError,
			fmt.Sprintf("Chưa đủ công đức để trang bị %s (cần %d).", item.DisplayName, item.UnlockThreshold)))
		return err
	case err != nil:
		return err
	}

	f.Printf("Đã trang bị %s\n", f.Styled(output.StyleEquipped, item.DisplayName))
	return nil
}

func init() {
	itemsCmd.AddCommand(itemsListCmd)
	itemsCmd.AddCommand(itemsEquipCmd)
	rootCmd.AddCommand(itemsCmd)
}
