package view

import (
	"testing"

	"marquee/internal/state"
)

func testProfile() state.Profile {
	logo := "https://cinemeta.example/logo.png"
	return state.Profile{
		Addons: []state.Descriptor{
			{
				TransportURL: "https://cinemeta.example/manifest.json",
				Manifest:     state.Manifest{ID: "org.cinemeta", Name: "Cinemeta", Logo: &logo},
			},
			{
				TransportURL: "https://torrents.example/manifest.json",
				Manifest:     state.Manifest{ID: "org.torrents", Name: "Torrents"},
			},
		},
	}
}

func TestAddonNameResolvesByOrigin(t *testing.T) {
	profile := testProfile()
	name, ok := AddonName("https://torrents.example/manifest.json", profile)
	if !ok || name != "Torrents" {
		t.Fatalf("AddonName = %q, %v, want Torrents, true", name, ok)
	}
}

func TestAddonNameUnknownOriginIsAbsent(t *testing.T) {
	name, ok := AddonName("https://unknown.example/manifest.json", testProfile())
	if ok || name != "" {
		t.Fatalf("AddonName for unknown origin = %q, %v, want absent", name, ok)
	}
	if _, ok := AddonName("", state.Profile{}); ok {
		t.Fatalf("AddonName on empty profile reported a match")
	}
}

func TestIsInstalled(t *testing.T) {
	profile := testProfile()
	if !IsInstalled("https://cinemeta.example/manifest.json", profile) {
		t.Fatalf("IsInstalled = false for installed origin")
	}
	if IsInstalled("https://unknown.example/manifest.json", profile) {
		t.Fatalf("IsInstalled = true for unknown origin")
	}
}
