package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/splitter/internal/infrastructure/config"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate documentation from CLI commands",
	Long: `Generate documentation (man pages or markdown) from CLI command definitions.

The documentation is auto-generated from the command structure, including:
- Command names and aliases
- Short and long descriptions
- Flags and their descriptions
- Usage examples

Supported formats:
  man       Unix manual pages (groff format)
  markdown  Markdown files (for websites/wikis)

By default, man pages are installed to ~/.local/share/man/man1/ so they
are immediately available via 'man splitter'. You may need to run 'mandb'
to update the man page index.

Examples:
  splitter gen-docs                         # Install man pages to ~/.local/share/man/man1/
  splitter gen-docs --format markdown       # Generate markdown docs
  splitter gen-docs --output ./man          # Generate to local directory`,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "Output directory for generated docs")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "Output format: man, markdown")
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	outputDir, err := docsOutputDir(genDocsOutputDir, genDocsFormat)
	if err != nil {
		return err
	}

	// Create output directory if it doesn't exist
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	w := cmd.OutOrStdout()
	switch genDocsFormat {
	case "man":
		return generateManPages(w, outputDir)
	case "markdown":
		return generateMarkdown(w, outputDir)
	default:
		return fmt.Errorf("unsupported format %q (use: man, markdown)", genDocsFormat)
	}
}

// docsOutputDir resolves where docs go when --output is not set.
func docsOutputDir(outputDir, format string) (string, error) {
	if outputDir != "" {
		return outputDir, nil
	}
	switch format {
	case "man":
		manDir, err := config.GetManDir()
		if err != nil {
			return "", fmt.Errorf("resolve man directory: %w", err)
		}
		return manDir, nil
	case "markdown":
		return "./docs", nil
	default:
		return "", fmt.Errorf("unsupported format %q (use: man, markdown)", format)
	}
}

func generateManPages(w io.Writer, outputDir string) error {
	header := &doc.GenManHeader{
		Title:   "SPLITTER",
		Section: "1",
		Source:  "splitter " + buildInfo.Version,
		Manual:  "Splitter Manual",
		Date:    func() *time.Time { t := time.Now(); return &t }(),
	}

	// Disable auto-generation timestamp in the footer for reproducible builds
	rootCmd.DisableAutoGenTag = true

	if err := doc.GenManTree(rootCmd, header, outputDir); err != nil {
		return fmt.Errorf("generate man pages: %w", err)
	}

	fmt.Fprintf(w, "Installed man pages to %s\n", outputDir)
	fmt.Fprintln(w, "Run 'mandb' if 'man splitter' doesn't work immediately.")
	listGenerated(w, outputDir, ".1")
	return nil
}

func generateMarkdown(w io.Writer, outputDir string) error {
	// Disable auto-generation timestamp for reproducible builds
	rootCmd.DisableAutoGenTag = true

	if err := doc.GenMarkdownTree(rootCmd, outputDir); err != nil {
		return fmt.Errorf("generate markdown docs: %w", err)
	}

	fmt.Fprintf(w, "Generated markdown docs in %s\n", outputDir)
	listGenerated(w, outputDir, ".md")
	return nil
}

func listGenerated(w io.Writer, dir, ext string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return // Non-fatal
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			fmt.Fprintf(w, "  - %s\n", e.Name())
		}
	}
}
