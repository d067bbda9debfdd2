package figmacodegen

import (
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
	"github.com/hellenic-development/figma-codegen/pkg/formatter"
	"github.com/hellenic-development/figma-codegen/pkg/generator"
	"github.com/hellenic-development/figma-codegen/pkg/imager"
)

// Options configures one generation run.
type Options struct {
	AccessToken string
	FileURL     string   // Figma file URL
	NodeIDs     []string // empty = derive from URL, else entire file

	Framework  string // "react", "vue", "html"
	Styling    string // "utility-class", "scoped-css", "css-in-js", "plain-css"
	TypeScript bool

	Accessibility  bool
	Responsive     bool
	OptimizeImages bool

	// Caller-supplied raw code fragments merged into the output.
	CustomMarkup string
	CustomCSS    string
	AdvancedCSS  string
	OverrideCSS  string

	// AltTexts maps node IDs to alt text for image nodes.
	AltTexts map[string]string

	ExportAssets bool
	AssetFormat  string // "png", "svg", "jpg", "pdf"
	AssetScales  []float64
	AssetDir     string

	Logger Logger // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the generation output.
type Result struct {
	RunID      string // unique identifier for this generation run
	FileName   string // Figma file name
	Components []generator.GeneratedComponent
	Failures   []generator.Failure
	Assets     []imager.ExportedAsset
	Markdown   string // formatted report
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

// Run executes the full generation pipeline: fetch the document, select
// generation roots, synthesize components, and format the report. Network
// access ends before synthesis begins; the engine itself performs no I/O.
func Run(opts Options) (*Result, error) {
	// Apply defaults.
	if opts.Framework == "" {
		opts.Framework = generator.FrameworkReact
	}
	if opts.Styling == "" {
		opts.Styling = generator.DialectUtility
	}
	if opts.AssetFormat == "" {
		opts.AssetFormat = "png"
	}
	if opts.AssetDir == "" {
		opts.AssetDir = "figma-assets"
	}
	if len(opts.AssetScales) == 0 {
		opts.AssetScales = []float64{1}
	}

	opts.logInfo("Extracting file key from URL...")
	fileKey, err := figma.ExtractFileKey(opts.FileURL)
	if err != nil {
		return nil, errors.Wrap(err, "extract file key")
	}
	opts.logInfo("File key: %s", fileKey)

	targetNodeIDs := opts.NodeIDs
	if len(targetNodeIDs) == 0 {
		urlNodeIDs, err := figma.ExtractNodeIDs(opts.FileURL)
		if err != nil {
			return nil, errors.Wrap(err, "extract node IDs from URL")
		}
		targetNodeIDs = urlNodeIDs
	}

	client := figma.NewClient(opts.AccessToken)

	cfg := generator.Config{
		Framework:      opts.Framework,
		Styling:        opts.Styling,
		TypeScript:     opts.TypeScript,
		Accessibility:  opts.Accessibility,
		Responsive:     opts.Responsive,
		OptimizeImages: opts.OptimizeImages,
		AltTexts:       opts.AltTexts,
		Custom: generator.CustomCode{
			Markup:      opts.CustomMarkup,
			CSS:         opts.CustomCSS,
			AdvancedCSS: opts.AdvancedCSS,
			OverrideCSS: opts.OverrideCSS,
		},
	}

	result := &Result{RunID: uuid.NewString()}
	var genResult *generator.Result
	var roots []*figma.Node

	if len(targetNodeIDs) > 0 {
		opts.logInfo("Fetching %d node(s) from Figma...", len(targetNodeIDs))
		nodesResp, err := client.GetFileNodes(fileKey, targetNodeIDs)
		if err != nil {
			return nil, errors.Wrap(err, "fetch nodes")
		}
		result.FileName = nodesResp.Name

		genResult = &generator.Result{}
		for _, id := range sortedKeys(nodesResp.Nodes) {
			data := nodesResp.Nodes[id]
			doc := data.Document // copy
			roots = append(roots, &doc)

			opts.logInfo("Generating components under node %s (%s)...", id, doc.Name)
			sub := generator.New(cfg).Generate(&doc, data.Components)
			genResult.Components = append(genResult.Components, sub.Components...)
			genResult.Failures = append(genResult.Failures, sub.Failures...)
		}
	} else {
		opts.logInfo("Fetching file data from Figma...")
		fileResp, err := client.GetFile(fileKey)
		if err != nil {
			return nil, errors.Wrap(err, "fetch file")
		}
		opts.logInfo("File: %s", fileResp.Name)
		result.FileName = fileResp.Name

		opts.logInfo("Generating components...")
		genResult = generator.Generate(fileResp, cfg)
		roots = append(roots, &fileResp.Document)
	}

	result.Components = genResult.Components
	result.Failures = genResult.Failures
	opts.logInfo("Generated %d component(s), %d failure(s)",
		len(result.Components), len(result.Failures))
	for _, f := range result.Failures {
		opts.logWarn("node %s: %s", f.NodeID, f.Reason)
	}

	// Asset export (opt-in).
	if opts.ExportAssets || opts.OptimizeImages {
		assets, err := exportAssets(&opts, client, fileKey, roots)
		if err != nil {
			opts.logWarn("Asset export failed: %v", err)
		} else {
			result.Assets = assets
		}
	}

	opts.logInfo("Formatting report...")
	result.Markdown = formatter.ToMarkdown(genResult, result.FileName, opts.Framework)

	return result, nil
}

// exportAssets downloads the IMAGE-fill nodes found under the fetched roots.
func exportAssets(opts *Options, client *figma.Client, fileKey string, roots []*figma.Node) ([]imager.ExportedAsset, error) {
	imageNodes := make(map[string]string)
	for _, root := range roots {
		for id, name := range imager.CollectImageNodes(root) {
			imageNodes[id] = name
		}
	}
	if len(imageNodes) == 0 {
		opts.logInfo("No image nodes to export")
		return nil, nil
	}

	opts.logInfo("Exporting %d image asset(s) to %s...", len(imageNodes), opts.AssetDir)
	exportResult, err := imager.ExportAssets(client, fileKey, imageNodes, imager.ExportConfig{
		Format:    opts.AssetFormat,
		Scales:    opts.AssetScales,
		OutputDir: opts.AssetDir,
	})
	if err != nil {
		return nil, err
	}
	for _, dlErr := range exportResult.Errors {
		opts.logWarn("%v", dlErr)
	}
	return exportResult.Assets, nil
}

// sortedKeys returns map keys in sorted order so output is deterministic.
func sortedKeys(m map[string]figma.NodeData) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
