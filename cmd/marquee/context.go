package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"marquee/internal/config"
	"marquee/internal/librarydb"
	"marquee/internal/links"
	"marquee/internal/logging"
	"marquee/internal/snapshot"
	"marquee/internal/view"
)

const (
	outputAuto  = "auto"
	outputJSON  = "json"
	outputTable = "table"
)

type commandContext struct {
	configFlag   *string
	snapshotFlag *string
	outputFlag   *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, snapshotFlag, outputFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		snapshotFlag: snapshotFlag,
		outputFlag:   outputFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) snapshotPath() (string, error) {
	if c.snapshotFlag != nil && strings.TrimSpace(*c.snapshotFlag) != "" {
		return config.ExpandPath(strings.TrimSpace(*c.snapshotFlag))
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	if cfg.Paths.Snapshot == "" {
		return "", errors.New("no snapshot configured; pass --snapshot or set paths.snapshot")
	}
	return cfg.Paths.Snapshot, nil
}

// loadSnapshot reads the snapshot document and overlays locally stored
// library rows when a library database exists.
func (c *commandContext) loadSnapshot(cmd *cobra.Command) (*snapshot.Snapshot, error) {
	path, err := c.snapshotPath()
	if err != nil {
		return nil, err
	}
	snap, err := snapshot.Load(path)
	if err != nil {
		return nil, err
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Paths.LibraryDB == "" {
		return snap, nil
	}
	if _, err := os.Stat(cfg.Paths.LibraryDB); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return snap, nil
		}
		return nil, fmt.Errorf("stat library database: %w", err)
	}
	store, err := librarydb.Open(cfg.Paths.LibraryDB)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	items, err := store.Items(cmd.Context())
	if err != nil {
		return nil, err
	}
	notifications, err := store.Notifications(cmd.Context())
	if err != nil {
		return nil, err
	}
	snap.MergeLibrary(items, notifications)
	return snap, nil
}

func (c *commandContext) openStore() (*librarydb.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Paths.LibraryDB == "" {
		return nil, errors.New("no library database configured; set paths.library_db")
	}
	return librarydb.Open(cfg.Paths.LibraryDB)
}

// viewContext builds the projection context for a loaded snapshot.
func (c *commandContext) viewContext(snap *snapshot.Snapshot) view.Context {
	return view.Context{
		Profile: snap.Profile,
		Library: snap.Index(),
		Links:   links.Passthrough{},
		Now:     func() time.Time { return time.Now().UTC() },
	}
}

// renderLogger builds the configured logger with a fresh render id attached.
func (c *commandContext) renderLogger(surface string) *slog.Logger {
	cfg, err := c.ensureConfig()
	if err != nil {
		return logging.NewNop()
	}
	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return logging.NewNop()
	}
	return logger.With(
		logging.FieldComponent, "cli",
		logging.FieldSurface, surface,
		logging.FieldRenderID, uuid.NewString(),
	)
}

// outputFormat resolves the effective output format. Auto selects a table
// when stdout is a terminal and JSON otherwise.
func (c *commandContext) outputFormat(cmd *cobra.Command) (string, error) {
	format := ""
	if c.outputFlag != nil {
		format = strings.ToLower(strings.TrimSpace(*c.outputFlag))
	}
	if format == "" {
		if cfg, err := c.ensureConfig(); err == nil {
			format = cfg.Render.Format
		} else {
			format = outputAuto
		}
	}
	switch format {
	case outputJSON, outputTable:
		return format, nil
	case outputAuto:
		if stdoutIsTerminal(cmd) {
			return outputTable, nil
		}
		return outputJSON, nil
	default:
		return "", fmt.Errorf("unsupported output format %q", format)
	}
}

func stdoutIsTerminal(cmd *cobra.Command) bool {
	file, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
