// Command-line interface entrypoint for the users API harness
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"userbench/userbench/cli"
	"userbench/userbench/config"
	"userbench/userbench/controllers"
	"userbench/userbench/services/usersapi"
	"userbench/userbench/utils/logging"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(cli.ExitFail)
	}
	if err := logging.InitLogger(cfg.LogDir); err != nil {
		fmt.Fprintln(os.Stderr, "logging:", err)
		os.Exit(cli.ExitFail)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	api := usersapi.New(cfg.APIBaseURL, usersapi.WithTimeout(cfg.RequestTimeout))
	app := cli.NewApp(controllers.NewHarnessController(api), os.Stdin, os.Stdout)
	code := app.Run(ctx, os.Args[1:])

	stop()
	logging.Sync()
	os.Exit(code)
}
