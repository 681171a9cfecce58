package view

import "marquee/internal/state"

// ExtensionAddonManifest names the addon owning a meta extension.
type ExtensionAddonManifest struct {
	Name string  `json:"name"`
	Logo *string `json:"logo"`
}

// ExtensionAddon identifies the installed addon a meta extension belongs to.
type ExtensionAddon struct {
	Manifest     ExtensionAddonManifest `json:"manifest"`
	TransportURL string                 `json:"transportUrl"`
}

// MetaExtension is an addon-provided meta link resolved to its owning addon.
type MetaExtension struct {
	URL   string         `json:"url"`
	Name  string         `json:"name"`
	Addon ExtensionAddon `json:"addon"`
}

// metaExtensions collects meta-category links from every Ready source in
// list order, keeps the first occurrence of each link URL, and resolves each
// survivor to its owning installed addon. A link whose origin addon is not
// installed is dropped entirely; it would not be actionable.
func metaExtensions(sources []state.ResourceLoadable[state.MetaItem], profile state.Profile) []MetaExtension {
	type candidate struct {
		request state.ResourceRequest
		link    state.MetaLink
	}
	var candidates []candidate
	seen := make(map[string]bool)
	for i := range sources {
		meta, ok := sources[i].Content.Value()
		if !ok {
			continue
		}
		for _, link := range meta.Links {
			if link.Category != state.MetaResourceName || seen[link.URL] {
				continue
			}
			seen[link.URL] = true
			candidates = append(candidates, candidate{request: sources[i].Request, link: link})
		}
	}
	extensions := make([]MetaExtension, 0, len(candidates))
	for _, c := range candidates {
		addon := findAddon(c.request.Base, profile)
		if addon == nil {
			continue
		}
		extensions = append(extensions, MetaExtension{
			URL:  c.link.URL,
			Name: c.link.Name,
			Addon: ExtensionAddon{
				Manifest:     ExtensionAddonManifest{Name: addon.Manifest.Name, Logo: addon.Manifest.Logo},
				TransportURL: addon.TransportURL,
			},
		})
	}
	return extensions
}
