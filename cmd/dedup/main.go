// Command dedup finds authorities sharing a canonical key and merges each
// group into its oldest record.
//
// Usage:
//
//	dedup [-config=config.yaml] [-kind=PERSON] [-dry-run] [-yes]
//
// Without -yes the duplicate groups are listed and the merge asks for
// confirmation. Exit codes: 0 = success or nothing to do, 1 = error, 2 = declined.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/heartmarshall/authority-backend/internal/adapter/postgres"
	"github.com/heartmarshall/authority-backend/internal/app"
	"github.com/heartmarshall/authority-backend/internal/config"
	"github.com/heartmarshall/authority-backend/internal/domain"
	"github.com/heartmarshall/authority-backend/internal/service/authority"
)

const (
	exitOK       = 0
	exitError    = 1
	exitDeclined = 2
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup runs before exit.
func run() int {
	configPath := flag.String("config", "", "path to YAML config (default: $CONFIG_PATH or ./config.yaml)")
	kindFlag := flag.String("kind", "", "restrict to one kind: PERSON, PLACE or SUBJECT")
	dryRun := flag.Bool("dry-run", false, "report what would be merged without writing")
	yes := flag.Bool("yes", false, "merge without asking for confirmation")
	flag.Parse()

	var kind *domain.AuthorityKind
	if *kindFlag != "" {
		k := domain.AuthorityKind(strings.ToUpper(*kindFlag))
		if !k.IsValid() {
			fmt.Fprintf(os.Stderr, "invalid -kind %q: must be PERSON, PLACE or SUBJECT\n", *kindFlag)
			return exitError
		}
		kind = &k
	}

	if *configPath == "" {
		*configPath = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return exitError
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		return exitError
	}
	defer pool.Close()

	svc := app.NewServices(logger, cfg, pool).Authority

	groups, err := svc.ListDuplicates(ctx, kind)
	if err != nil {
		logger.Error("list duplicates", slog.String("error", err.Error()))
		return exitError
	}
	if len(groups) == 0 {
		fmt.Println("No duplicates found.")
		return exitOK
	}
	printGroups(os.Stdout, groups)

	if !*dryRun && !*yes {
		ok, err := app.Confirm(os.Stdin, os.Stdout, fmt.Sprintf("Merge %d group(s)?", len(groups)))
		if err != nil {
			logger.Error("read confirmation", slog.String("error", err.Error()))
			return exitError
		}
		if !ok {
			fmt.Println("Aborted.")
			return exitDeclined
		}
	}

	report, err := svc.Merge(ctx, authority.MergeInput{Kind: kind, DryRun: *dryRun})
	if report != nil {
		printReport(os.Stdout, report)
	}
	if err != nil {
		logger.Error("merge", slog.String("error", err.Error()))
		return exitError
	}
	return exitOK
}

func printGroups(w io.Writer, groups []domain.DuplicateGroup) {
	for _, g := range groups {
		fmt.Fprintf(w, "%s %q\n", g.Kind, g.CanonicalKey)
		fmt.Fprintf(w, "  keep   %s  %s\n", g.Survivor.ID, g.Survivor.Label)
		for _, d := range g.Duplicates {
			fmt.Fprintf(w, "  merge  %s  %s\n", d.ID, d.Label)
		}
	}
}

func printReport(w io.Writer, r *authority.MergeReport) {
	verb := "Merged"
	if r.DryRun {
		verb = "Would merge"
	}
	fmt.Fprintf(w, "%s %d authorities in %d group(s), %d reference(s) moved.\n",
		verb, r.Merged, len(r.Groups), r.RefsMoved)
	if r.Skipped > 0 {
		fmt.Fprintf(w, "%d group(s) changed since listing and were skipped.\n", r.Skipped)
	}
	if r.Truncated {
		fmt.Fprintln(w, "More groups remain; run again to continue.")
	}
}
