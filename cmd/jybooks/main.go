// Command jybooks is a terminal client for the book catalog server: browse,
// search, filter, and manage books, or run one-shot exports from scripts.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/Wangshengwei666/JY-Book-Manager/pkg/api"
	"github.com/Wangshengwei666/JY-Book-Manager/pkg/config"
	"github.com/Wangshengwei666/JY-Book-Manager/pkg/export"
	"github.com/Wangshengwei666/JY-Book-Manager/pkg/ui"
	"github.com/Wangshengwei666/JY-Book-Manager/pkg/updater"
	"github.com/Wangshengwei666/JY-Book-Manager/pkg/version"
)

func main() {
	var (
		serverURL    = flag.String("server", "", "catalog server URL (overrides config)")
		configPath   = flag.String("config", "", "path to config file")
		exportCSV    = flag.String("export-csv", "", "export the catalog as CSV to the given file and exit")
		exportSQLite = flag.String("export-sqlite", "", "export the catalog as a SQLite database and exit")
		exportReport = flag.String("export-report", "", "write a markdown report with charts into the given directory and exit")
		importPath   = flag.String("import", "", "import books from a CSV file and exit")
		showVersion  = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)

	if *showVersion {
		fmt.Printf("jybooks %s (commit %s, built %s)\n", version.Version, version.Commit, version.Date)
		return
	}

	cfgPath := *configPath
	if cfgPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			logger.Printf("WARNING: cannot determine config dir: %v", err)
		} else {
			cfgPath = p
		}
	}

	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			logger.Fatalf("load config %s: %v", cfgPath, err)
		}
		cfg = loaded
	}
	if *serverURL != "" {
		cfg.ServerURL = *serverURL
	}

	client := api.New(cfg.ServerURL)

	// One-shot modes run without the UI.
	switch {
	case *exportCSV != "":
		if err := runExportCSV(client, *exportCSV); err != nil {
			logger.Fatalf("export CSV: %v", err)
		}
		return
	case *exportSQLite != "":
		if err := runExportSQLite(client, logger, *exportSQLite); err != nil {
			logger.Fatalf("export SQLite: %v", err)
		}
		return
	case *exportReport != "":
		if err := runExportReport(client, logger, *exportReport); err != nil {
			logger.Fatalf("export report: %v", err)
		}
		return
	case *importPath != "":
		if err := runImport(client, *importPath); err != nil {
			logger.Fatalf("import: %v", err)
		}
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		logger.Fatal("stdout is not a terminal; use the --export-* or --import flags for scripted use")
	}

	p := tea.NewProgram(ui.NewModel(client, cfg, cfgPath, logger), tea.WithAltScreen())

	stop := make(chan struct{})
	defer close(stop)

	if cfgPath != "" {
		changes, err := config.Watch(cfgPath, logger, stop)
		if err != nil {
			logger.Printf("WARNING: config watcher disabled: %v", err)
		} else {
			go func() {
				for cfg := range changes {
					p.Send(ui.ConfigUpdatedMsg{Cfg: cfg})
				}
			}()
		}
	}

	go func() {
		rel, err := updater.Check()
		if err != nil || rel == nil {
			return
		}
		p.Send(ui.UpdateAvailableMsg{Tag: rel.TagName, URL: rel.HTMLURL})
	}()

	if _, err := p.Run(); err != nil {
		logger.Fatalf("run: %v", err)
	}
}

func runExportCSV(client *api.Client, path string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := client.ExportCSV(ctx, f)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %d bytes to %s\n", n, path)
	return nil
}

func runExportSQLite(client *api.Client, logger *log.Logger, path string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	snap, err := export.Fetch(ctx, client, logger)
	if err != nil {
		return err
	}
	if err := export.NewSQLiteExporter(snap).Export(path); err != nil {
		return err
	}
	fmt.Printf("wrote %d books to %s\n", len(snap.Books), path)
	return nil
}

func runExportReport(client *api.Client, logger *log.Logger, dir string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	snap, err := export.Fetch(ctx, client, logger)
	if err != nil {
		return err
	}
	if err := export.WriteReport(snap, dir); err != nil {
		return err
	}
	fmt.Printf("wrote report for %d books to %s\n", len(snap.Books), dir)
	return nil
}

func runImport(client *api.Client, path string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	report, msg, err := client.ImportCSV(ctx, filepath.Base(path), f)
	if err != nil {
		return err
	}
	if msg != "" {
		fmt.Println(msg)
	}
	fmt.Printf("imported %d books, %d rows failed\n", report.SuccessCount, report.ErrorCount)
	for i, e := range report.Errors {
		if i >= 10 {
			fmt.Printf("… %d more errors\n", len(report.Errors)-10)
			break
		}
		fmt.Println("  " + e)
	}
	return nil
}
