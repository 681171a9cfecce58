package main

import (
	"fmt"
	"strings"

	"marquee/internal/view"
)

func renderSessionTable(model view.Session, libraryItems int) string {
	user := "anonymous"
	if model.Profile.User != nil {
		user = derefOr(&model.Profile.User.Email, model.Profile.User.ID)
	}
	notifications := 0
	for _, list := range model.Notifications.Items {
		notifications += len(list)
	}
	rows := [][]string{
		{"User", user},
		{"Installed addons", formatCount(len(model.Profile.Addons))},
		{"Library items", formatCount(libraryItems)},
		{"Notifications", formatCount(notifications)},
		{"Notifications created", formatTime(model.Notifications.Created)},
		{"Notifications updated", formatTimeRef(model.Notifications.LastUpdated)},
	}
	return renderTable([]string{"Field", "Value"}, rows)
}

func renderBoardTable(model view.CatalogsWithExtra) string {
	rows := make([][]string, 0, len(model.Catalogs))
	for _, row := range model.Catalogs {
		items := "-"
		if previews, ok := row.Content.Value(); ok {
			items = formatCount(len(previews))
		}
		rows = append(rows, []string{
			derefOr(row.AddonName, row.Request.Base),
			displayType(row.Request.Path.Type),
			row.Request.Path.ID,
			stateLabel(row.Content.State()),
			items,
		})
	}
	return renderTable([]string{"Addon", "Type", "Catalog", "State", "Items"}, rows, 4)
}

func renderContinueWatchingTable(model view.ContinueWatchingPreview) string {
	rows := make([][]string, 0, len(model.LibraryItems))
	for _, item := range model.LibraryItems {
		rows = append(rows, []string{
			item.ID,
			item.Name,
			displayType(item.Type),
			formatTimeRef(item.State.LastWatched),
		})
	}
	return renderTable([]string{"ID", "Name", "Type", "Last Watched"}, rows)
}

func renderDiscoverTable(model view.Discover) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "Page %d\n", model.Page)
	if model.Catalog == nil {
		builder.WriteString("No catalog selected")
		return builder.String()
	}
	fmt.Fprintf(&builder, "Addon: %s\n", derefOr(model.Catalog.AddonName, "-"))
	previews, ok := model.Catalog.Content.Value()
	if !ok {
		fmt.Fprintf(&builder, "Catalog state: %s", stateLabel(model.Catalog.Content.State()))
		return builder.String()
	}
	rows := make([][]string, 0, len(previews))
	for _, preview := range previews {
		rows = append(rows, []string{
			preview.ID,
			preview.Name,
			displayType(preview.Type),
			yesNo(preview.InLibrary),
		})
	}
	builder.WriteString(renderTable([]string{"ID", "Name", "Type", "In Library"}, rows))
	return builder.String()
}

func renderLibraryTable(model view.Library) string {
	rows := make([][]string, 0, len(model.Catalog))
	for _, item := range model.Catalog {
		rows = append(rows, []string{
			item.ID,
			item.Name,
			displayType(item.Type),
			formatCount(int(item.State.TimesWatched)),
			formatTimeRef(item.State.LastWatched),
		})
	}
	return renderTable([]string{"ID", "Name", "Type", "Watched", "Last Watched"}, rows, 3)
}

func renderRemoteAddonsTable(model view.RemoteAddons) string {
	if model.Catalog == nil {
		return "No addon catalog selected"
	}
	rows, ok := model.Catalog.Content.Value()
	if !ok {
		return fmt.Sprintf("Catalog state: %s", stateLabel(model.Catalog.Content.State()))
	}
	return renderAddonRowsTable(rows)
}

func renderAddonRowsTable(rows []view.AddonRow) string {
	table := make([][]string, 0, len(rows))
	for _, row := range rows {
		types := make([]string, 0, len(row.Manifest.Types))
		for _, value := range row.Manifest.Types {
			types = append(types, displayType(value))
		}
		table = append(table, []string{
			row.Manifest.Name,
			row.Manifest.Version,
			strings.Join(types, ", "),
			row.TransportURL,
			yesNo(row.Installed),
		})
	}
	return renderTable([]string{"Name", "Version", "Types", "Transport URL", "Installed"}, table)
}

func renderDetailsTable(model view.MetaDetails) string {
	var builder strings.Builder

	if model.MetaCatalog == nil {
		builder.WriteString("No meta source available\n")
	} else if meta, ok := model.MetaCatalog.Content.Value(); ok {
		upcoming := 0
		for _, video := range meta.Videos {
			if video.Upcoming {
				upcoming++
			}
		}
		rows := [][]string{
			{"Name", meta.Name},
			{"Type", displayType(meta.Type)},
			{"Addon", derefOr(model.MetaCatalog.AddonName, "-")},
			{"In library", yesNo(meta.InLibrary)},
			{"Videos", formatCount(len(meta.Videos))},
			{"Upcoming videos", formatCount(upcoming)},
			{"Extensions", formatCount(len(model.MetaExtensions))},
		}
		builder.WriteString(renderTable([]string{"Field", "Value"}, rows))
		builder.WriteByte('\n')
	} else {
		fmt.Fprintf(&builder, "Meta state: %s (%s)\n",
			stateLabel(model.MetaCatalog.Content.State()),
			derefOr(model.MetaCatalog.AddonName, "-"))
	}

	streamRows := make([][]string, 0, len(model.StreamsCatalogs))
	for _, source := range model.StreamsCatalogs {
		count := "-"
		if streams, ok := source.Content.Value(); ok {
			count = formatCount(len(streams))
		}
		streamRows = append(streamRows, []string{
			derefOr(source.AddonName, "-"),
			stateLabel(source.Content.State()),
			count,
		})
	}
	builder.WriteString(renderTable([]string{"Stream Source", "State", "Streams"}, streamRows, 2))
	return builder.String()
}

func renderServerTable(model view.StreamingServer) string {
	baseURL := stateLabel(model.BaseURL.State())
	if url, ok := model.BaseURL.Value(); ok {
		baseURL = url
	}
	devices := "-"
	if list, ok := model.PlaybackDevices.Value(); ok {
		devices = formatCount(len(list))
	}
	rows := [][]string{
		{"Transport URL", model.Selected.TransportURL},
		{"Settings", stateLabel(model.Settings.State())},
		{"Base URL", baseURL},
		{"Playback devices", devices},
	}
	if model.Torrent != nil {
		rows = append(rows, []string{"Torrent", fmt.Sprintf("%s (%s)",
			model.Torrent.InfoHash, stateLabel(model.Torrent.Content.State()))})
	}
	if model.Statistics != nil {
		rows = append(rows, []string{"Statistics", stateLabel(model.Statistics.State())})
	}
	return renderTable([]string{"Field", "Value"}, rows)
}
