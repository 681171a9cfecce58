package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"marquee/internal/view"
)

func newRenderCommand(ctx *commandContext) *cobra.Command {
	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Project snapshot slices into display-ready view models",
	}

	renderCmd.AddCommand(newRenderSessionCommand(ctx))
	renderCmd.AddCommand(newRenderBoardCommand(ctx))
	renderCmd.AddCommand(newRenderContinueWatchingCommand(ctx))
	renderCmd.AddCommand(newRenderDiscoverCommand(ctx))
	renderCmd.AddCommand(newRenderLibraryCommand(ctx))
	renderCmd.AddCommand(newRenderAddonsCommand(ctx))
	renderCmd.AddCommand(newRenderInstalledAddonsCommand(ctx))
	renderCmd.AddCommand(newRenderDetailsCommand(ctx))
	renderCmd.AddCommand(newRenderServerCommand(ctx))

	return renderCmd
}

func newRenderSessionCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Render the session slice",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := ctx.loadSnapshot(cmd)
			if err != nil {
				return err
			}
			logger := ctx.renderLogger("session")
			model := view.FromCtx(snap.Ctx())
			logger.Debug("projected session",
				"addons", len(model.Profile.Addons),
				"notifications", len(model.Notifications.Items))
			return writeModel(ctx, cmd, model, func() string {
				return renderSessionTable(model, len(snap.LibraryItems))
			})
		},
	}
}

func newRenderBoardCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Render the grouped catalogs surface",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := ctx.loadSnapshot(cmd)
			if err != nil {
				return err
			}
			if snap.Board == nil {
				return errors.New("snapshot carries no board slice")
			}
			logger := ctx.renderLogger("board")
			model := view.FromCatalogsWithExtra(*snap.Board, ctx.viewContext(snap))
			logger.Debug("projected board", "catalogs", len(model.Catalogs))
			return writeModel(ctx, cmd, model, func() string {
				return renderBoardTable(model)
			})
		},
	}
}

func newRenderContinueWatchingCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "continue-watching",
		Short: "Render the continue-watching preview",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := ctx.loadSnapshot(cmd)
			if err != nil {
				return err
			}
			if snap.ContinueWatching == nil {
				return errors.New("snapshot carries no continue-watching slice")
			}
			logger := ctx.renderLogger("continue-watching")
			model := view.FromContinueWatching(*snap.ContinueWatching, ctx.viewContext(snap))
			logger.Debug("projected continue-watching", "items", len(model.LibraryItems))
			return writeModel(ctx, cmd, model, func() string {
				return renderContinueWatchingTable(model)
			})
		},
	}
}

func newRenderDiscoverCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "discover",
		Short: "Render the discovery surface",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := ctx.loadSnapshot(cmd)
			if err != nil {
				return err
			}
			if snap.Discover == nil {
				return errors.New("snapshot carries no discover slice")
			}
			logger := ctx.renderLogger("discover")
			model := view.FromDiscover(*snap.Discover, ctx.viewContext(snap))
			logger.Debug("projected discover", "page", model.Page)
			return writeModel(ctx, cmd, model, func() string {
				return renderDiscoverTable(model)
			})
		},
	}
}

func newRenderLibraryCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "library",
		Short: "Render the filtered library surface",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := ctx.loadSnapshot(cmd)
			if err != nil {
				return err
			}
			if snap.Library == nil {
				return errors.New("snapshot carries no library slice")
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.renderLogger("library")
			model := view.FromLibrary(*snap.Library, cfg.Render.Root, ctx.viewContext(snap))
			logger.Debug("projected library", "items", len(model.Catalog))
			return writeModel(ctx, cmd, model, func() string {
				return renderLibraryTable(model)
			})
		},
	}
}

func newRenderAddonsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "addons",
		Short: "Render the remote addon catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := ctx.loadSnapshot(cmd)
			if err != nil {
				return err
			}
			if snap.RemoteAddons == nil {
				return errors.New("snapshot carries no remote-addons slice")
			}
			logger := ctx.renderLogger("addons")
			model := view.FromRemoteAddons(*snap.RemoteAddons, ctx.viewContext(snap))
			logger.Debug("projected remote addons", "catalogs", len(model.Selectable.Catalogs))
			return writeModel(ctx, cmd, model, func() string {
				return renderRemoteAddonsTable(model)
			})
		},
	}
}

func newRenderInstalledAddonsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "installed-addons",
		Short: "Render the installed-addons listing",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := ctx.loadSnapshot(cmd)
			if err != nil {
				return err
			}
			if snap.InstalledAddons == nil {
				return errors.New("snapshot carries no installed-addons slice")
			}
			logger := ctx.renderLogger("installed-addons")
			model := view.FromInstalledAddons(*snap.InstalledAddons, ctx.viewContext(snap))
			logger.Debug("projected installed addons", "addons", len(model.Catalog))
			return writeModel(ctx, cmd, model, func() string {
				return renderAddonRowsTable(model.Catalog)
			})
		},
	}
}

func newRenderDetailsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "details",
		Short: "Render the item-details surface",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := ctx.loadSnapshot(cmd)
			if err != nil {
				return err
			}
			if snap.MetaDetails == nil {
				return errors.New("snapshot carries no details slice")
			}
			logger := ctx.renderLogger("details")
			model := view.FromMetaDetails(*snap.MetaDetails, ctx.viewContext(snap))
			logger.Debug("projected details",
				"streamSources", len(model.StreamsCatalogs),
				"extensions", len(model.MetaExtensions))
			return writeModel(ctx, cmd, model, func() string {
				return renderDetailsTable(model)
			})
		},
	}
}

func newRenderServerCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Render the streaming-server surface",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := ctx.loadSnapshot(cmd)
			if err != nil {
				return err
			}
			if snap.StreamingServer == nil {
				return errors.New("snapshot carries no streaming-server slice")
			}
			logger := ctx.renderLogger("server")
			model := view.FromStreamingServer(*snap.StreamingServer, ctx.viewContext(snap))
			logger.Debug("projected streaming server", "settings", stateLabel(model.Settings.State()))
			return writeModel(ctx, cmd, model, func() string {
				return renderServerTable(model)
			})
		},
	}
}

// writeModel emits the projected model in the resolved output format. The
// table form is built lazily so JSON output never pays for it.
func writeModel(ctx *commandContext, cmd *cobra.Command, model any, tableFn func() string) error {
	format, err := ctx.outputFormat(cmd)
	if err != nil {
		return err
	}
	if format == outputJSON {
		return writeJSON(cmd, model)
	}
	fmt.Fprintln(cmd.OutOrStdout(), tableFn())
	return nil
}
