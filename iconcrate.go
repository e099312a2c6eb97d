// Package iconcrate generates a Rust crate of brand icons from the
// simple-icons npm package.
//
// Every icon title is turned into three identifiers: a slug ("dot-net"), a
// module name ("dot_net") and a type name ("DotNET"). The crate declares one
// module per icon, re-exports each icon constant under its type name and
// provides a slug lookup function.
//
// # Generation
//
//	config := iconcrate.Config{
//		PackageDir: "node_modules/simple-icons",
//		OutputDir:  "simpleicons",
//		CrateName:  "simpleicons",
//	}
//	result, err := iconcrate.Generate(config)
//
// # Drift check
//
// Check renders the crate in memory and compares it with what is on disk:
//
//	result, err := iconcrate.Check(config)
//	if result.Stale {
//		// regenerate
//	}
//
// # Version sync
//
// Sync compares the upstream npm version with the newest published crate
// and regenerates only when upstream moved ahead:
//
//	client := &registry.Client{MaxRetries: 3}
//	result, err := iconcrate.Sync(ctx, client, config, iconcrate.SyncOptions{})
//
// # CLI Tool
//
//	go install github.com/yacobolo/iconcrate/cmd/iconcrate@latest
package iconcrate
