package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"timeago/internal/config"
	"timeago/internal/debug"
	"timeago/internal/feed"
	"timeago/internal/locale"
	"timeago/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	dbPathDefault := config.GetString(config.KeyDatabasePath)
	outputFormatDefault := config.GetString(config.KeyOutputFormat)
	localeFileDefault := config.GetString(config.KeyLocaleFile)
	debugDefault := config.GetBool(config.KeyDebug)

	versionFlag := flag.Bool("version", false, "Print version information and exit")
	dbPathFlag := flag.String("db-path", dbPathDefault, "Path to the entries database file (empty uses the built-in sample feed)")
	outputFormatFlag := flag.String("output-format", outputFormatDefault, "Note and help markdown style (rich, light, plain)")
	localeFileFlag := flag.String("locale-file", localeFileDefault, "Path to a locale catalog file (YAML or JSON)")
	debugFlag := flag.Bool("debug", debugDefault, "Write diagnostic logs (or set TIMEAGO_DEBUG=true)")
	flag.Parse()

	if *versionFlag {
		printVersion()
		os.Exit(0)
	}

	visited := map[string]struct{}{}
	flag.CommandLine.Visit(func(f *flag.Flag) {
		visited[f.Name] = struct{}{}
	})

	runtime := computeRuntimeOptions(runtimeFlags{
		dbPath:       dbPathFlag,
		outputFormat: outputFormatFlag,
		localeFile:   localeFileFlag,
		debugEnabled: debugFlag,
	}, visited)

	if err := debug.Init(runtime.debugEnabled); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug logging unavailable: %v\n", err)
	}
	defer debug.Close()

	if runtime.localeFile != "" {
		catalog, err := locale.Load(runtime.localeFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := locale.Configure(catalog); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	store, err := selectStore(runtime.dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	appCfg := ui.Config{
		Store:        store,
		OutputFormat: runtime.outputFormat,
		Version:      Version,
	}

	if err := runProgram(appCfg, ui.NewApp, func(app *ui.App) programRunner {
		return tea.NewProgram(app, tea.WithAltScreen())
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// selectStore picks the SQLite feed when a database path is configured and
// falls back to the built-in sample timeline otherwise.
func selectStore(dbPath string) (feed.Store, error) {
	if dbPath == "" {
		return feed.SampleStore{}, nil
	}
	return feed.NewSQLiteStore(dbPath)
}

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(*ui.App) programRunner

func runProgram(cfg ui.Config, builder func(ui.Config) (*ui.App, error), factory programFactory) error {
	app, err := builder(cfg)
	if err != nil {
		return fmt.Errorf("initialize UI: %w", err)
	}
	if factory == nil {
		return fmt.Errorf("program factory is nil")
	}
	prog := factory(app)
	if prog == nil {
		return fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}
	return nil
}

type runtimeFlags struct {
	dbPath       *string
	outputFormat *string
	localeFile   *string
	debugEnabled *bool
}

type runtimeOptions struct {
	dbPath       string
	outputFormat string
	localeFile   string
	debugEnabled bool
}

func computeRuntimeOptions(flags runtimeFlags, visited map[string]struct{}) runtimeOptions {
	dbPath := strings.TrimSpace(config.GetString(config.KeyDatabasePath))
	if flagWasExplicitlySet("db-path", visited) {
		dbPath = strings.TrimSpace(*flags.dbPath)
	}

	outputFormat := strings.TrimSpace(config.GetString(config.KeyOutputFormat))
	if flagWasExplicitlySet("output-format", visited) {
		outputFormat = strings.TrimSpace(*flags.outputFormat)
	}

	localeFile := strings.TrimSpace(config.GetString(config.KeyLocaleFile))
	if flagWasExplicitlySet("locale-file", visited) {
		localeFile = strings.TrimSpace(*flags.localeFile)
	}

	debugEnabled := config.GetBool(config.KeyDebug)
	if flagWasExplicitlySet("debug", visited) {
		debugEnabled = *flags.debugEnabled
	}

	return runtimeOptions{
		dbPath:       dbPath,
		outputFormat: outputFormat,
		localeFile:   localeFile,
		debugEnabled: debugEnabled,
	}
}

func flagWasExplicitlySet(name string, visited map[string]struct{}) bool {
	if _, ok := visited[name]; ok {
		return true
	}
	f := flag.CommandLine.Lookup(name)
	if f == nil {
		return false
	}
	return f.Value.String() != f.DefValue
}
