package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldSurface is the standardized structured logging key for UI surface names.
	FieldSurface = "surface"
	// FieldRenderID is the standardized structured logging key for render invocation identifiers.
	FieldRenderID = "render_id"
	// FieldSnapshot is the standardized structured logging key for snapshot paths.
	FieldSnapshot = "snapshot"
)
