// Package registry discovers studio files on disk.
//
// Three listings are provided:
//
//   - ListAssets walks a catalog root recursively and pairs every model file
//     with a sibling preview image.
//   - ListPresets reads the prompt presets stored as JSON documents directly
//     inside a directory. Bad documents are reported, never fatal.
//   - ListNames returns bare file names with a single extension.
//
// A missing directory lists as empty. Nothing is cached: every call reflects
// the filesystem at the time it runs.
package registry
