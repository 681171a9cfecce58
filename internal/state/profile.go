package state

// ManifestPreview is the subset of an addon manifest carried on catalog
// listings.
type ManifestPreview struct {
	ID          string   `json:"id"`
	Version     string   `json:"version"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Logo        *string  `json:"logo"`
	Background  *string  `json:"background,omitempty"`
	Types       []string `json:"types,omitempty"`
}

// Manifest describes an installed addon's full manifest metadata.
type Manifest struct {
	ID          string   `json:"id"`
	Version     string   `json:"version"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Logo        *string  `json:"logo"`
	Background  *string  `json:"background,omitempty"`
	Types       []string `json:"types,omitempty"`
	Resources   []string `json:"resources,omitempty"`
	IDPrefixes  []string `json:"idPrefixes,omitempty"`
}

// DescriptorFlags carries install-time flags on an addon descriptor.
type DescriptorFlags struct {
	Official  bool `json:"official"`
	Protected bool `json:"protected"`
}

// Descriptor is one installed addon: its manifest plus the transport URL the
// addon is reached at. The transport URL is the addon's identity for all
// directory lookups.
type Descriptor struct {
	Manifest     Manifest        `json:"manifest"`
	TransportURL string          `json:"transportUrl"`
	Flags        DescriptorFlags `json:"flags"`
}

// DescriptorPreview is the listing form of an addon descriptor used by the
// addon catalog surfaces.
type DescriptorPreview struct {
	Manifest     ManifestPreview `json:"manifest"`
	TransportURL string          `json:"transportUrl"`
}

// User identifies the authenticated account, when any.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Profile is the authoritative user context: the installed addon list plus
// the session user. Owned externally; read-only here.
type Profile struct {
	User   *User        `json:"user"`
	Addons []Descriptor `json:"addons"`
}
