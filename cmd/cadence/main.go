package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"cadence/internal/config"
	"cadence/internal/debug"
	"cadence/internal/habits"
	"cadence/internal/ui"
	"cadence/internal/ui/theme"
)

const storeOpenTimeout = 5 * time.Second

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	autoRefreshSecondsDefault := config.GetInt(config.KeyAutoRefreshSeconds)
	if autoRefreshSecondsDefault < 0 {
		autoRefreshSecondsDefault = 0
	}
	dbPathDefault := config.GetString(config.KeyDatabasePath)
	markdownStyleDefault := config.GetString(config.KeyMarkdownStyle)
	userDefault := config.GetString(config.KeyUserID)
	themeDefault := config.GetString(config.KeyTheme)
	debugDefault := config.GetBool(config.KeyDebug)

	versionFlag := flag.Bool("version", false, "Print version information and exit")
	autoRefreshSecondsFlag := flag.Int("auto-refresh-seconds", autoRefreshSecondsDefault, "Auto-refresh interval in seconds (0 disables auto refresh)")
	dbPathFlag := flag.String("db-path", dbPathDefault, "Path to the habit database file")
	markdownStyleFlag := flag.String("markdown-style", markdownStyleDefault, "Notes markdown style (rich, light, plain)")
	userFlag := flag.String("user", userDefault, "User ID recorded on created habits")
	themeFlag := flag.String("theme", themeDefault, "Color theme")
	debugFlag := flag.Bool("debug", debugDefault, "Write a debug log to ~/.cadence/debug.log")
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
		autoRefreshSeconds: autoRefreshSecondsFlag,
		dbPath:             dbPathFlag,
		markdownStyle:      markdownStyleFlag,
		user:               userFlag,
		theme:              themeFlag,
		debug:              debugFlag,
	}, visited)

	if err := debug.Init(runtime.debug); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug log disabled: %v\n", err)
	}
	defer debug.Close()

	if runtime.theme != "" && !theme.SetTheme(runtime.theme) {
		fmt.Fprintf(os.Stderr, "Unknown theme %q; available: %s\n", runtime.theme, strings.Join(theme.Available(), ", "))
		os.Exit(1)
	}

	dbPath := runtime.dbPath
	if dbPath == "" {
		var err error
		dbPath, err = config.DefaultDatabasePath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: resolve database path: %v\n", err)
			os.Exit(1)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeOpenTimeout)
	client, err := habits.NewSQLiteClient(ctx, dbPath)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: open habit store: %v\n", err)
		os.Exit(1)
	}

	appCfg := ui.Config{
		Client:          client,
		UserID:          runtime.user,
		DBPath:          dbPath,
		MarkdownStyle:   runtime.markdownStyle,
		AutoRefresh:     runtime.autoRefresh,
		RefreshInterval: runtime.refreshInterval,
		Version:         Version,
	}

	if err := runProgram(appCfg, func(app *ui.App) programRunner {
		return tea.NewProgram(app, tea.WithAltScreen())
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(*ui.App) programRunner

func runProgram(cfg ui.Config, factory programFactory) error {
	app := ui.NewApp(cfg)
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
	autoRefreshSeconds *int
	dbPath             *string
	markdownStyle      *string
	user               *string
	theme              *string
	debug              *bool
}

type runtimeOptions struct {
	refreshInterval time.Duration
	autoRefresh     bool
	dbPath          string
	markdownStyle   string
	user            string
	theme           string
	debug           bool
}

func computeRuntimeOptions(flags runtimeFlags, visited map[string]struct{}) runtimeOptions {
	seconds := sanitizeAutoRefreshSeconds(config.GetInt(config.KeyAutoRefreshSeconds))
	if flagWasExplicitlySet("auto-refresh-seconds", visited) {
		seconds = sanitizeAutoRefreshSeconds(*flags.autoRefreshSeconds)
	}
	refreshInterval := time.Duration(seconds) * time.Second
	autoRefresh := seconds > 0

	dbPath := strings.TrimSpace(config.GetString(config.KeyDatabasePath))
	if flagWasExplicitlySet("db-path", visited) {
		dbPath = strings.TrimSpace(*flags.dbPath)
	}

	markdownStyle := strings.TrimSpace(config.GetString(config.KeyMarkdownStyle))
	if flagWasExplicitlySet("markdown-style", visited) {
		markdownStyle = strings.TrimSpace(*flags.markdownStyle)
	}

	user := strings.TrimSpace(config.GetString(config.KeyUserID))
	if flagWasExplicitlySet("user", visited) {
		user = strings.TrimSpace(*flags.user)
	}
	if user == "" {
		user = "local"
	}

	themeName := strings.TrimSpace(config.GetString(config.KeyTheme))
	if flagWasExplicitlySet("theme", visited) {
		themeName = strings.TrimSpace(*flags.theme)
	}

	debugEnabled := config.GetBool(config.KeyDebug)
	if flagWasExplicitlySet("debug", visited) {
		debugEnabled = *flags.debug
	}

	return runtimeOptions{
		refreshInterval: refreshInterval,
		autoRefresh:     autoRefresh,
		dbPath:          dbPath,
		markdownStyle:   markdownStyle,
		user:            user,
		theme:           themeName,
		debug:           debugEnabled,
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

func sanitizeAutoRefreshSeconds(seconds int) int {
	if seconds < 0 {
		return 0
	}
	return seconds
}
