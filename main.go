package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"shelf_backend/blurb"
	"shelf_backend/bookname"
	"shelf_backend/core"
	"shelf_backend/db"
	"shelf_backend/importer"
	"shelf_backend/logging"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: could not load .env file: %v\n", err)
	}

	// Service management commands (install/uninstall/...) are Windows-only
	// and short-circuit before anything else is initialized.
	if HandleServiceCommand(args) {
		return core.ExitCodeSuccess
	}

	cfg, err := core.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return core.ExitCodeConfigError
	}

	logger := logging.New(cfg.DevMode, cfg.LogFile, logging.ParseLevel(cfg.LogLevel, zapcore.InfoLevel))
	defer func() {
		_ = logger.Sync()
	}()

	// When launched by the Windows service manager, run the watcher under
	// the service lifecycle instead of the CLI.
	if ranAsService, err := RunAsService(cfg, logger); ranAsService {
		if err != nil {
			logger.Error("service run failed", zap.Error(err))
			return core.ExitCodeError
		}
		return core.ExitCodeSuccess
	}

	if len(args) < 2 {
		printUsage()
		return core.ExitCodeUsageError
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	switch args[1] {
	case "import":
		return cmdImport(ctx, cfg, logger, args[2:])
	case "list":
		return cmdList(ctx, cfg, logger)
	case "blurb":
		return cmdBlurb(ctx, cfg, logger, args[2:])
	case "watch":
		return cmdWatch(ctx, cfg, logger)
	case "settings":
		return cmdSettings(cfg)
	case "help", "-h", "--help":
		printUsage()
		return core.ExitCodeSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q\n\n", args[1])
		printUsage()
		return core.ExitCodeUsageError
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "LocalShelf backend")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage: shelf <command> [arguments]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  import <path>...  Import book files (or directories of them) onto the shelf")
	fmt.Fprintln(os.Stderr, "  list              List all books on the shelf")
	fmt.Fprintln(os.Stderr, "  blurb <book-id>   Generate a short description for a book (needs OPENAI_API_KEY)")
	fmt.Fprintln(os.Stderr, "  watch             Watch the library directory and import new files")
	fmt.Fprintln(os.Stderr, "  settings          Show reader settings, writing the defaults file if missing")
	fmt.Fprintln(os.Stderr, "  help              Show this help message")
}

// openShelf opens the shelf database, running pending migrations.
func openShelf(cfg *core.Config) (*db.Database, *db.BookRepository, error) {
	database, err := db.NewDatabase(db.DatabaseConfig{Path: cfg.DatabasePath()})
	if err != nil {
		return nil, nil, err
	}
	return database, db.NewBookRepository(database.DB()), nil
}

func cmdImport(ctx context.Context, cfg *core.Config, logger *logging.Logger, paths []string) int {
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "import: at least one file or directory is required")
		return core.ExitCodeUsageError
	}

	database, repo, err := openShelf(cfg)
	if err != nil {
		logger.Error("failed to open shelf database", zap.Error(err))
		return core.ExitCodeError
	}
	defer database.Close()

	im := importer.New(repo, cfg.CoversDir(), logger)
	var imported, skipped, failed int

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "import: %v\n", err)
			failed++
			continue
		}

		if info.IsDir() {
			i, s, f, err := im.ScanDirectory(ctx, path)
			imported, skipped, failed = imported+i, skipped+s, failed+f
			if err != nil {
				logger.Error("directory scan aborted", zap.String("dir", path), zap.Error(err))
				break
			}
			continue
		}

		res, err := im.ImportFile(ctx, path)
		switch {
		case err != nil:
			fmt.Fprintf(os.Stderr, "import: %s: %v\n", filepath.Base(path), err)
			failed++
		case res.Skipped:
			fmt.Printf("%s %s (%s)\n", color.YellowString("skipped"), filepath.Base(path), res.Reason)
			skipped++
		default:
			fmt.Printf("%s %s", color.GreenString("imported"), color.New(color.Bold).Sprint(res.Book.Title))
			if res.Book.Author != "" {
				fmt.Printf(" by %s", res.Book.Author)
			}
			fmt.Println()
			imported++
		}
	}

	fmt.Printf("\n%d imported, %d skipped, %d failed\n", imported, skipped, failed)
	if failed > 0 {
		return core.ExitCodeError
	}
	return core.ExitCodeSuccess
}

func cmdList(ctx context.Context, cfg *core.Config, logger *logging.Logger) int {
	database, repo, err := openShelf(cfg)
	if err != nil {
		logger.Error("failed to open shelf database", zap.Error(err))
		return core.ExitCodeError
	}
	defer database.Close()

	books, err := repo.List(ctx)
	if err != nil {
		logger.Error("failed to list books", zap.Error(err))
		return core.ExitCodeError
	}
	if len(books) == 0 {
		fmt.Println("The shelf is empty. Import books with: shelf import <path>")
		return core.ExitCodeSuccess
	}

	titleStyle := color.New(color.Bold)
	faint := color.New(color.Faint)
	for _, b := range books {
		fmt.Printf("%s  %s", faint.Sprint(b.ID[:8]), titleStyle.Sprint(b.Title))
		if b.Author != "" {
			fmt.Printf("  %s", b.Author)
		}
		fmt.Printf("  %s\n", faint.Sprintf("[%s, %s]", b.Format, formatSize(b.SizeBytes)))
	}
	fmt.Printf("\n%d book(s)\n", len(books))
	return core.ExitCodeSuccess
}

func cmdBlurb(ctx context.Context, cfg *core.Config, logger *logging.Logger, args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "blurb: exactly one book id is required")
		return core.ExitCodeUsageError
	}

	gen, err := blurb.NewGenerator(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "blurb: %v\n", err)
		return core.ExitCodeConfigError
	}

	database, repo, err := openShelf(cfg)
	if err != nil {
		logger.Error("failed to open shelf database", zap.Error(err))
		return core.ExitCodeError
	}
	defer database.Close()

	book, err := findBook(ctx, repo, args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "blurb: %v\n", err)
		return core.ExitCodeError
	}

	// Text books contribute an opening excerpt to ground the blurb.
	var excerpt string
	if book.Format == "txt" {
		if text, err := importer.ReadBookText(book.Path); err == nil {
			excerpt = excerptFrom(text, book.Title, book.Author)
		} else {
			logger.Warn("could not read book text for excerpt", zap.String("book_id", book.ID), zap.Error(err))
		}
	}

	text, err := gen.Generate(ctx, book.Title, book.Author, excerpt)
	if err != nil {
		logger.Error("blurb generation failed", zap.String("book_id", book.ID), zap.Error(err))
		return core.ExitCodeError
	}
	fmt.Println(text)
	return core.ExitCodeSuccess
}

// excerptLines caps how many opening lines feed the blurb prompt.
const excerptLines = 40

// excerptFrom takes the opening lines of a book, dropping promotional
// boilerplate and chapter headings so the prompt sees prose.
func excerptFrom(text, title, author string) string {
	filter := bookname.NewAdFilter()
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = filter.Clean(title, author, line)
		if line == "" || bookname.IsChapterTitle(line) {
			continue
		}
		lines = append(lines, line)
		if len(lines) >= excerptLines {
			break
		}
	}
	return strings.Join(lines, "\n")
}

// findBook resolves a full UUID or a unique prefix of one.
func findBook(ctx context.Context, repo *db.BookRepository, id string) (*db.Book, error) {
	book, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if book != nil {
		return book, nil
	}

	books, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var match *db.Book
	for i := range books {
		if strings.HasPrefix(books[i].ID, id) {
			if match != nil {
				return nil, fmt.Errorf("book id %q is ambiguous", id)
			}
			match = &books[i]
		}
	}
	if match == nil {
		return nil, fmt.Errorf("no book with id %q", id)
	}
	return match, nil
}

func cmdWatch(ctx context.Context, cfg *core.Config, logger *logging.Logger) int {
	database, repo, err := openShelf(cfg)
	if err != nil {
		logger.Error("failed to open shelf database", zap.Error(err))
		return core.ExitCodeError
	}
	defer database.Close()

	if err := os.MkdirAll(cfg.LibraryDir, 0755); err != nil {
		logger.Error("failed to create library directory", zap.Error(err))
		return core.ExitCodeError
	}

	im := importer.New(repo, cfg.CoversDir(), logger)
	watcher := NewWatcher(im, cfg.LibraryDir, cfg.WatchInterval, logger)
	go watcher.Start(ctx)

	logger.Info("watching library directory",
		zap.String("dir", cfg.LibraryDir),
		zap.Duration("interval", cfg.WatchInterval),
	)
	<-watcher.Done()
	logger.Info("watcher stopped")
	return core.ExitCodeSuccess
}

func cmdSettings(cfg *core.Config) int {
	path := cfg.SettingsPath()
	settings, err := core.LoadReaderSettings(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "settings: %v\n", err)
		return core.ExitCodeError
	}

	// First run: materialize the defaults so users have a file to edit.
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		if err := core.SaveReaderSettings(path, settings); err != nil {
			fmt.Fprintf(os.Stderr, "settings: %v\n", err)
			return core.ExitCodeError
		}
	}

	fmt.Printf("settings file: %s\n\n", path)
	fmt.Printf("font_size:    %d\n", settings.FontSize)
	fmt.Printf("line_spacing: %.1f\n", settings.LineSpacing)
	fmt.Printf("page_width:   %d\n", settings.PageWidth)
	fmt.Printf("theme:        %s\n", settings.Theme)
	return core.ExitCodeSuccess
}

func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
