package view

import "marquee/internal/state"

// AddonName resolves the display name of the installed addon served from the
// given origin address. The second result is false when no installed addon
// matches; an unknown origin is never an error.
func AddonName(origin string, profile state.Profile) (string, bool) {
	if addon := findAddon(origin, profile); addon != nil {
		return addon.Manifest.Name, true
	}
	return "", false
}

// IsInstalled reports whether some installed addon is served from the given
// origin address. Matching is by origin address equality, not identity, so
// distinct listings of the same origin all count as installed.
func IsInstalled(origin string, profile state.Profile) bool {
	return findAddon(origin, profile) != nil
}

func findAddon(origin string, profile state.Profile) *state.Descriptor {
	for i := range profile.Addons {
		if profile.Addons[i].TransportURL == origin {
			return &profile.Addons[i]
		}
	}
	return nil
}

func addonNameRef(origin string, profile state.Profile) *string {
	if name, ok := AddonName(origin, profile); ok {
		return &name
	}
	return nil
}
