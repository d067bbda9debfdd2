// Package figmacodegen converts Figma design files into front-end source
// artifacts via the Figma API: component markup (React, Vue, or plain HTML),
// stylesheets in several dialects (utility classes, scoped CSS, CSS-in-JS,
// plain CSS), TypeScript prop interfaces, and heuristic quality metadata
// (accessibility score, responsiveness flag, estimated visual accuracy).
//
// The CLI lives in cmd/figma-codegen; this root package exposes the same
// pipeline as a Go API so that callers can embed generation in their own
// tools without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named figmacodegen:
//
//	import "github.com/hellenic-development/figma-codegen" // package figmacodegen
//
// # Quick start
//
//	result, err := figmacodegen.Run(figmacodegen.Options{
//	    AccessToken: os.Getenv("FIGMA_TOKEN"),
//	    FileURL:     "https://www.figma.com/design/ABC123/My-Design",
//	    Framework:   "react",
//	    Styling:     "utility-class",
//	    TypeScript:  true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, comp := range result.Components {
//	    os.WriteFile(comp.Name+".tsx", []byte(comp.Markup), 0644)
//	}
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
// # Node-scoped generation
//
// To generate from specific frames or components rather than the entire
// file, populate [Options.NodeIDs] or include node-id query parameters in
// the Figma URL.
//
// # Asset export
//
// When [Options.ExportAssets] is true the pipeline downloads the IMAGE-fill
// nodes referenced by generated components, so the placeholder src bindings
// in the markup have concrete files to point at.
package figmacodegen
