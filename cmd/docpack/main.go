package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	flag "github.com/spf13/pflag"

	"github.com/benjaminschreck/go-docpack/pkg/docpack"
)

var (
	verbose    = flag.BoolP("verbose", "v", false, "enable debug logging")
	noColor    = flag.Bool("no-color", false, "disable colored output")
	configPath = flag.StringP("config", "c", "", "path to a YAML configuration file")
)

func usage() {
	fmt.Fprintf(os.Stderr, "docpack - inspect OOXML document packages\n\n")
	fmt.Fprintf(os.Stderr, "Usage: docpack [flags] <command> [arguments]\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  inspect <file.docx>    Show the package's parts, relationships, and styles\n")
	fmt.Fprintf(os.Stderr, "  version                Show version information\n\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *noColor {
		color.NoColor = true
	}
	if *configPath != "" {
		cfg, err := docpack.LoadConfigFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "docpack: %v\n", err)
			os.Exit(1)
		}
		docpack.SetGlobalConfig(cfg)
	}
	if *verbose {
		cfg := docpack.GetGlobalConfig()
		cfg.LogLevel = "debug"
		docpack.SetGlobalConfig(cfg)
	}

	args := flag.Args()
	if len(args) < 1 {
		usage()
		os.Exit(1)
	}

	switch args[0] {
	case "version":
		fmt.Printf("docpack version %s\n", docpack.Version())
	case "inspect":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "docpack: inspect requires a package path")
			os.Exit(1)
		}
		if err := inspect(args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "docpack: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "docpack: unknown command %q\n", args[0])
		os.Exit(1)
	}
}

func inspect(path string) error {
	pkg, err := docpack.OpenPackageFile(path)
	if err != nil {
		return err
	}

	heading := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.Faint)

	heading.Println("Parts")
	for _, name := range pkg.PartNames() {
		fmt.Printf("  %s\n", name)
	}

	heading.Println("Relationships")
	for _, source := range pkg.RelationshipSources() {
		label := source
		if label == "" {
			label = "(package)"
		}
		dim.Printf("  %s\n", label)
		for _, rel := range pkg.RelationshipsOf(source).Relationship {
			fmt.Printf("    %-6s %s -> %s\n", rel.ID, shortRelType(rel.Type), rel.Target)
		}
	}

	docPart, err := pkg.MainDocumentPart()
	if err != nil {
		return err
	}

	heading.Println("Styles")
	for _, style := range docPart.Styles().Styles {
		marker := " "
		if style.IsDefault() {
			marker = "*"
		}
		fmt.Printf("  %s %-10s %-24s %s\n", marker, style.Type, style.StyleID, style.Name())
	}

	heading.Println("Identifiers")
	fmt.Printf("  document next id: %d\n", docPart.NextID())
	footers, err := pkg.FooterParts()
	if err != nil {
		return err
	}
	for _, footer := range footers {
		fmt.Printf("  %s next id: %d\n", footer.PartName(), footer.NextID())
	}

	props := pkg.CoreProperties()
	if props.Title != "" || props.Creator != "" {
		heading.Println("Core properties")
		if props.Title != "" {
			fmt.Printf("  title:   %s\n", props.Title)
		}
		if props.Creator != "" {
			fmt.Printf("  creator: %s\n", props.Creator)
		}
		if !props.Modified.IsZero() {
			fmt.Printf("  modified: %s\n", props.Modified.Format("2006-01-02 15:04"))
		}
	}

	return nil
}

// shortRelType trims a relationship type URI to its last path segment
func shortRelType(relType string) string {
	for i := len(relType) - 1; i >= 0; i-- {
		if relType[i] == '/' {
			return relType[i+1:]
		}
	}
	return relType
}
