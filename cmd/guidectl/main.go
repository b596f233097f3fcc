package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "guidectl",
		Usage: "rate titles and probe the rating engine without running the addon",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "only log errors",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "rate",
				Usage:     "fetch a title's parental guide and print its rating",
				ArgsUsage: "<imdb id>...",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "allowed-age",
						Usage:   "age gate to evaluate against",
						Value:   18,
						EnvVars: []string{"ALLOWED_AGE"},
					},
					&cli.StringFlag{
						Name:  "base-url",
						Usage: "advisory site base URL",
						Value: "https://www.imdb.com",
					},
					&cli.DurationFlag{
						Name:  "timeout",
						Usage: "per-request timeout",
						Value: defaultTimeout,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "print the full rating result as JSON",
					},
				},
				Action: rateAction,
			},
			{
				Name:      "classify",
				Usage:     "classify advisory text into a severity",
				ArgsUsage: "<text>",
				Action:    classifyAction,
			},
			{
				Name:      "certificate",
				Usage:     "normalize certificate ratings to ages",
				ArgsUsage: "<rating>...",
				Action:    certificateAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
