package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/sfdxkit/source-nuts/pkg/config"
	"github.com/sfdxkit/source-nuts/pkg/fixtures"
	"github.com/sfdxkit/source-nuts/pkg/results"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

var version = "dev" // Set by -ldflags during build

func main() {
	// Define global flags
	var (
		showVersion bool
		showHelp    bool
		debug       bool
		dbPath      string
	)

	pflag.BoolVarP(&showVersion, "version", "V", false, "Show version and exit")
	pflag.BoolVarP(&showHelp, "help", "h", false, "Show this help message")
	pflag.BoolVarP(&debug, "debug", "d", false, "Enable debug output")
	pflag.StringVar(&dbPath, "db", "", "Path to results database (default from config)")

	// Stop parsing at first non-flag argument (the subcommand)
	pflag.CommandLine.SetInterspersed(false)
	pflag.Parse()

	if showVersion {
		fmt.Printf("nuts version %s\n", version)
		os.Exit(0)
	}

	args := pflag.Args()
	if len(args) == 0 || showHelp {
		printHelp()
		os.Exit(0)
	}

	catalog, err := fixtures.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading fixture catalog: %v\n", err)
		os.Exit(1)
	}

	subcommand := args[0]
	switch subcommand {
	case "list":
		handleList(catalog)
	case "show":
		handleShow(catalog, args[1:])
	case "dump":
		handleDump(catalog)
	case "executables":
		handleExecutables()
	case "runs":
		handleRuns(dbPath, debug)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown subcommand '%s'\n\n", subcommand)
		printHelp()
		os.Exit(1)
	}
}

func handleList(catalog *fixtures.Catalog) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "GIT URL\tSKIP\tDEPLOY\tRETRIEVE\tCONVERT")
	for _, r := range catalog.Repos() {
		fmt.Fprintf(w, "%s\t%v\t%d\t%d\t%d\n",
			r.GitURL, r.Skip, countCases(r.Deploy), countCases(r.Retrieve), countCases(r.Convert))
	}
	w.Flush()
}

func handleShow(catalog *fixtures.Catalog, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: show requires a git URL")
		os.Exit(1)
	}

	repo, ok := catalog.Get(args[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no catalog entry for %s\n", args[0])
		os.Exit(1)
	}

	data, err := yaml.Marshal(repo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling entry: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}

func handleDump(catalog *fixtures.Catalog) {
	data, err := yaml.Marshal(catalog.Repos())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling catalog: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}

func handleExecutables() {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "PATH\tSKIP")
	for _, e := range fixtures.Executables() {
		path := e.Path
		if path == "" {
			path = "(not installed)"
		}
		fmt.Fprintf(w, "%s\t%v\n", path, e.Skip)
	}
	w.Flush()
}

func handleRuns(dbPath string, debug bool) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if dbPath == "" {
		dbPath = cfg.GetDatabasePath()
	}
	if debug {
		fmt.Printf("Using results database: %s\n", dbPath)
	}

	db, err := results.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	runs, err := db.ListRuns()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing runs: %v\n", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEXECUTABLE\tSTARTED\tSTATUS")
	for _, run := range runs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			run.ID, run.Executable, run.StartedAt.Format(time.RFC3339), run.Status)
	}
	w.Flush()
}

func countCases(group map[string][]fixtures.TestCase) int {
	total := 0
	for _, cases := range group {
		total += len(cases)
	}
	return total
}

func printHelp() {
	fmt.Println(`nuts - sample-project catalog for source-command nut tests

Usage: nuts [flags] <subcommand> [args]

Subcommands:
  list               List catalog entries with case counts
  show <git-url>     Print one catalog entry as YAML
  dump               Print the full normalized catalog as YAML
  executables        Show executables the harness can drive
  runs               List recorded catalog runs

Flags:
  -V, --version      Show version and exit
  -h, --help         Show this help message
  -d, --debug        Enable debug output
      --db PATH      Path to results database (default from config)`)
}
