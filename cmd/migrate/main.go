package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"fervo/internal/handler/middleware"
	"fervo/internal/pkg/config"
	"fervo/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
	"ariga.io/atlas/sql/migrate"
)

func main() {
	dir := flag.String("dir", "migrations", "directory holding the versioned SQL files")
	atlasBin := flag.String("atlas", "atlas", "path to the atlas binary")
	dryRun := flag.Bool("dry-run", false, "print pending files without applying them")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	if err := run(context.Background(), logger, cfg.DB.BuildDSN(), *dir, *atlasBin, *dryRun); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, dsn, dir, atlasBin string, dryRun bool) error {
	if err := writeSum(dir); err != nil {
		return err
	}

	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return errs.Wrap(err, "prepare atlas working dir")
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), atlasBin)
	if err != nil {
		return errs.Wrap(err, "create atlas client")
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dsn,
		DryRun: dryRun,
	})
	if err != nil {
		return errs.Wrap(err, "apply migrations")
	}

	for _, f := range res.Applied {
		logger.Info("applied", "version", f.Version, "name", f.Name)
	}
	logger.Info("migrations done", "current", res.Current, "target", res.Target, "applied", len(res.Applied), "dry_run", dryRun)
	return nil
}

// writeSum refreshes atlas.sum so hand-edited files pass the integrity check.
func writeSum(dir string) error {
	local, err := migrate.NewLocalDir(dir)
	if err != nil {
		return errs.Wrap(err, "open migration dir")
	}
	sum, err := local.Checksum()
	if err != nil {
		return errs.Wrap(err, "hash migration dir")
	}
	if err := migrate.WriteSumFile(local, sum); err != nil {
		return errs.Wrap(err, "write atlas.sum")
	}
	return nil
}
