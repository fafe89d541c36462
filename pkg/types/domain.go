package types

// AssetRecord describes a model weight file discovered under a catalog root.
type AssetRecord struct {
	// File name including extension.
	// example: realistic_v5.safetensors
	Name string `json:"name" example:"realistic_v5.safetensors"`
	// Location relative to the catalog root, always slash-separated.
	// example: sd15/realistic/realistic_v5.safetensors
	Path string `json:"path" example:"sd15/realistic/realistic_v5.safetensors"`
	// Parent directory relative to the catalog root; empty at root level.
	// example: sd15/realistic
	Subfolder string `json:"subfolder" example:"sd15/realistic"`
	// Sibling preview image relative to the catalog root, or null when none exists.
	// example: sd15/realistic/realistic_v5.png
	PreviewImage *string `json:"preview_image" example:"sd15/realistic/realistic_v5.png"`
}

// PresetRecord is a named reusable prompt fragment.
type PresetRecord struct {
	// Display name derived from the preset file name.
	// example: Epic Style
	Name string `json:"name" example:"Epic Style"`
	// Prompt text appended by the studio.
	// example: , epic, cinematic, dramatic lighting, high detail
	Prompt string `json:"prompt" example:", epic, cinematic, dramatic lighting, high detail"`
}
