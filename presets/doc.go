// Package presets ships ready-made Descriptors for well-known platforms.
// Each preset is plain data: field groups and, where the platform exposes
// variables to the client, the matching prefix. Values is left nil so callers
// pick the source (osenv.Environ(), a build-injected map, ...) and may combine
// a preset with their own fields via Descriptor.Extends or by copying groups.
package presets
