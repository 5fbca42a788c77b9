// Package main hosts the sdhtool CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces the subtitle transformation
// pipeline: converting SDH tracks into full or forced variants, listing
// cleaning presets, and configuration scaffolding. It centralizes
// configuration resolution and structured logging setup so subcommands can
// focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
