package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/news-radar/internal/cli"
	"github.com/MKhiriev/news-radar/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := cli.NewApp(os.Args[1:],
		cli.WithBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)),
	)
	code := app.Run(ctx)

	stop()
	os.Exit(code)
}
