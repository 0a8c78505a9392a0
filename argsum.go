package main

import (
	"log"
	"os"

	"github.com/nvnieuwk/argsum/argsum_api"
	cli "github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:            "argsum",
		Usage:           "A tool to summarise gene assembly reports from multiple sequenced samples",
		HideHelpCommand: true,
		Version:         "0.1.0dev",
		ArgsUsage:       "[report files...]",
		Flags:           argsum_api.SummaryFlags(),
		Commands: []*cli.Command{
			argsum_api.ExpandFlagCommand(),
		},
		Action: func(Cctx *cli.Context) error {
			config, err := argsum_api.ReadConfig(Cctx)
			if err != nil {
				return err
			}
			return argsum_api.NewSummary(config).Run() // Parse the reports and write all output files
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.New(os.Stderr, "", 0).Fatal(err)
	}
}
