// Package runtime provides the application runtime context for FPT Pray.
package runtime

import (
	"github.com/vyyka/fptpray/internal/config"
	"github.com/vyyka/fptpray/internal/dispatch"
	"github.com/vyyka/fptpray/internal/inventory"
	"github.com/vyyka/fptpray/internal/leaderboard"
	"github.com/vyyka/fptpray/internal/output"
	"github.com/vyyka/fptpray/internal/storage"
	"github.com/vyyka/fptpray/internal/submit"
)

// Context holds the application runtime context.
type Context struct {
	Cfg       *config.Config
	DB        *storage.DB
	Formatter *output.Formatter

	// Repositories
	LedgerRepo  *storage.LedgerRepo
	EquipRepo   *storage.EquipRepo
	ProfileRepo *storage.ProfileRepo

	// Services
	Inventory   *inventory.Inventory
	Machine     *submit.Machine
	Leaderboard *leaderboard.Client

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool
}

// New creates a new runtime context: it loads configuration, opens the
// store, and wires the repos and services. The dispatch strategy is chosen
// here, once.
func New(opts Options) (*Context, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	dbOpts := storage.Options{Path: storage.DefaultPath()}
	if cfg.Database == ":memory:" {
		dbOpts = storage.Options{InMemory: true}
	} else if cfg.Database != "" {
		dbOpts = storage.Options{Path: cfg.Database}
	}

	db, err := storage.Open(dbOpts)
	if err != nil {
		return nil, err
	}

	catalog := inventory.NewCatalog()
	ledgerRepo := storage.NewLedgerRepo(db)
	equipRepo := storage.NewEquipRepo(db, catalog.DefaultEquippedSet)
	profileRepo := storage.NewProfileRepo(db)

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	return &Context{
		Cfg:         cfg,
		DB:          db,
		Formatter:   formatter,
		LedgerRepo:  ledgerRepo,
		EquipRepo:   equipRepo,
		ProfileRepo: profileRepo,
		Inventory:   inventory.New(catalog, equipRepo, ledgerRepo),
		Machine:     submit.NewMachine(dispatch.New(cfg), ledgerRepo),
		Leaderboard: leaderboard.NewClient(cfg.LeaderboardURL, cfg.HTTPTimeout),
		Debug:       opts.Debug,
	}, nil
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}
