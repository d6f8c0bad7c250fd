// Package main hosts the cardpress CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into card renders
// and configuration utilities. The root command renders a single card from an
// INI card description; the config subcommands print merged configurations,
// list declared card fields, and scaffold the per-user settings file.
//
// Keep this package lean: command wiring and flag handling live here, the
// rendering pipeline lives in the internal packages.
package main
