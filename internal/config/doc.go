// Package config loads and merges card configuration files.
//
// A card config is an INI file with a Card section naming the pieces of the
// card and further sections configuring each piece. Files may chain through
// Card.template references; the chain is loaded depth-first and each file
// overlays the one beneath it, so the leaf wins. Relative file references are
// rewritten against the directory of the file that declared them, falling
// back to the search paths from the user settings, and are validated when
// the referenced file is opened rather than at load time.
//
// The merged result is exposed through Section views that fall back to the
// DEFAULT section and parse typed values into config errors naming the
// offending key.
package config
