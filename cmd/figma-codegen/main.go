package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	figmacodegen "github.com/hellenic-development/figma-codegen"
	"github.com/hellenic-development/figma-codegen/pkg/figma"
	"github.com/hellenic-development/figma-codegen/pkg/generator"
)

const version = figma.Version

func main() {
	rootCmd := newRootCommand()

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("figma-codegen version %s\n", version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "figma-codegen",
		Short: "Generate front-end components from Figma files",
		Long: "A tool to generate component markup, stylesheets, TypeScript prop\n" +
			"interfaces, and quality metadata from Figma files via the Figma API",
		RunE: run,
	}

	flags := cmd.Flags()
	flags.StringP("url", "u", "", "Figma file URL (required)")
	flags.StringP("token", "t", "", "Figma Personal Access Token (or FIGMA_CODEGEN_TOKEN)")
	flags.StringP("out", "o", "generated", "Output directory for generated files")
	flags.StringP("node-ids", "n", "", "Comma-separated node IDs to generate from (optional)")
	flags.StringP("framework", "f", "react", "Target framework: react, vue, html")
	flags.StringP("styling", "s", "utility-class", "Styling dialect: utility-class, scoped-css, css-in-js, plain-css")
	flags.Bool("typescript", true, "Generate TypeScript prop interfaces")
	flags.Bool("accessibility", true, "Run the accessibility heuristics")
	flags.Bool("responsive", true, "Detect responsive layout hints")
	flags.Bool("optimize-images", false, "Export and optimize referenced image assets")
	flags.String("custom-css", "", "Path to a CSS fragment appended to every stylesheet")
	flags.String("advanced-css", "", "Path to an advanced CSS fragment appended after the custom one")
	flags.Bool("export-assets", false, "Download IMAGE-fill assets referenced by components")
	flags.String("asset-format", "png", "Asset format: png, svg, jpg, pdf")
	flags.String("asset-dir", "figma-assets", "Output directory for exported assets")
	flags.BoolP("verbose", "v", false, "Verbose progress logging")

	cmd.MarkFlagRequired("url")

	// Flags can come from FIGMA_CODEGEN_* env vars or .figma-codegen.yaml.
	viper.SetEnvPrefix("FIGMA_CODEGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	viper.SetConfigName(".figma-codegen")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // optional; absence is fine
	viper.BindPFlags(flags)

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	cyan.Println("\n🧩 Figma Component Generator")
	cyan.Println("============================")

	token := viper.GetString("token")
	if token == "" {
		return fmt.Errorf("missing access token: pass --token or set FIGMA_CODEGEN_TOKEN")
	}

	var nodeIDs []string
	if raw := viper.GetString("node-ids"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if id := strings.TrimSpace(part); id != "" {
				nodeIDs = append(nodeIDs, id)
			}
		}
	}

	customCSS, err := readOptionalFile(viper.GetString("custom-css"))
	if err != nil {
		return err
	}
	advancedCSS, err := readOptionalFile(viper.GetString("advanced-css"))
	if err != nil {
		return err
	}

	opts := figmacodegen.Options{
		AccessToken:    token,
		FileURL:        viper.GetString("url"),
		NodeIDs:        nodeIDs,
		Framework:      viper.GetString("framework"),
		Styling:        viper.GetString("styling"),
		TypeScript:     viper.GetBool("typescript"),
		Accessibility:  viper.GetBool("accessibility"),
		Responsive:     viper.GetBool("responsive"),
		OptimizeImages: viper.GetBool("optimize-images"),
		CustomCSS:      customCSS,
		AdvancedCSS:    advancedCSS,
		ExportAssets:   viper.GetBool("export-assets"),
		AssetFormat:    viper.GetString("asset-format"),
		AssetDir:       viper.GetString("asset-dir"),
		Logger:         newZapLogger(viper.GetBool("verbose")),
	}

	result, err := figmacodegen.Run(opts)
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	outDir := viper.GetString("out")
	if err := writeOutput(outDir, result, opts); err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	cyan.Println("\n📊 Generation Summary:")
	fmt.Printf("  • Run: %s\n", result.RunID)
	fmt.Printf("  • File: %s\n", result.FileName)
	fmt.Printf("  • Components: %d\n", len(result.Components))
	if len(result.Failures) > 0 {
		red.Printf("  • Failed roots: %d\n", len(result.Failures))
	}
	if len(result.Assets) > 0 {
		fmt.Printf("  • Exported assets: %d\n", len(result.Assets))
	}

	green.Printf("\n✨ Wrote %d component(s) to %s\n\n", len(result.Components), outDir)
	return nil
}

// writeOutput writes each generated component plus the run report to outDir.
func writeOutput(outDir string, result *figmacodegen.Result, opts figmacodegen.Options) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	ext := markupExtension(opts.Framework, opts.TypeScript)
	for _, comp := range result.Components {
		if err := os.WriteFile(filepath.Join(outDir, comp.Name+ext), []byte(comp.Markup), 0644); err != nil {
			return err
		}
		if comp.StyleText != "" && opts.Styling != generator.DialectUtility {
			if err := os.WriteFile(filepath.Join(outDir, comp.Name+".css"), []byte(comp.StyleText), 0644); err != nil {
				return err
			}
		}
		if comp.TypeDeclaration != "" {
			if err := os.WriteFile(filepath.Join(outDir, comp.Name+".types.ts"), []byte(comp.TypeDeclaration), 0644); err != nil {
				return err
			}
		}
	}

	return os.WriteFile(filepath.Join(outDir, "REPORT.md"), []byte(result.Markdown), 0644)
}

func markupExtension(framework string, typescript bool) string {
	switch framework {
	case generator.FrameworkVue:
		return ".vue"
	case generator.FrameworkHTML:
		return ".html"
	default:
		if typescript {
			return ".tsx"
		}
		return ".jsx"
	}
}

func readOptionalFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// zapLogger adapts a zap sugared logger to the figmacodegen.Logger interface.
type zapLogger struct {
	s *zap.SugaredLogger
}

func newZapLogger(verbose bool) *zapLogger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.InfoLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = true
	logger, err := cfg.Build()
	if err != nil {
		return &zapLogger{s: zap.NewNop().Sugar()}
	}
	return &zapLogger{s: logger.Sugar()}
}

func (l *zapLogger) Infof(format string, args ...any)  { l.s.Infof(format, args...) }
func (l *zapLogger) Warnf(format string, args ...any)  { l.s.Warnf(format, args...) }
func (l *zapLogger) Errorf(format string, args ...any) { l.s.Errorf(format, args...) }
