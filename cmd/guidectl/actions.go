package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"parentsguide-srv/internal/advisory/imdb"
	"parentsguide-srv/internal/model"
	"parentsguide-srv/internal/rating/engine"
	ratingUsecase "parentsguide-srv/internal/rating/usecase"
	pkgHTTP "parentsguide-srv/pkg/http"
	"parentsguide-srv/pkg/log"
)

const defaultTimeout = 10 * time.Second

func newLogger(c *cli.Context) log.Logger {
	level := "info"
	if c.Bool("quiet") {
		level = "error"
	}
	return log.Init(log.ZapConfig{Level: level, Mode: "debug", Encoding: "console", ColorEnabled: true})
}

func rateAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("no title ids given")
	}

	l := newLogger(c)
	client := pkgHTTP.NewClient(pkgHTTP.ClientConfig{
		Timeout:   c.Duration("timeout"),
		Retries:   pkgHTTP.DefaultRetries,
		RetryWait: pkgHTTP.DefaultRetryWait,
	})
	fetcher := imdb.New(client, l, imdb.Config{BaseURL: c.String("base-url")})
	uc := ratingUsecase.New(fetcher, nil, l, ratingUsecase.DefaultConfig())

	allowed := c.Int("allowed-age")
	for _, id := range c.Args().Slice() {
		r, err := uc.GetRating(c.Context, id)
		if err != nil {
			return fmt.Errorf("rate %s: %w", id, err)
		}
		if c.Bool("json") {
			if err := printJSON(r); err != nil {
				return err
			}
			continue
		}
		printRating(r, allowed)
	}
	return nil
}

func printRating(r model.RatingResult, allowed int) {
	verdict := "allowed"
	if r.AgeRating > allowed {
		verdict = "blocked"
	}
	fmt.Printf("%s  %s\n", r.ContentID, r.Title)
	fmt.Printf("  age rating: %d (%s at %d+)\n", r.AgeRating, verdict, allowed)
	fmt.Printf("  content age: %d, score: %d", r.ContentAge, r.Score)
	if r.CertificateAge != nil {
		fmt.Printf(", certificate age: %d", *r.CertificateAge)
	}
	fmt.Println()
	fmt.Printf("  reasons: %s\n", r.ReasonText())
	if r.Degraded {
		fmt.Println("  no parental guide available")
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func classifyAction(c *cli.Context) error {
	text := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("no text given")
	}
	fmt.Println(engine.Classify(text))
	return nil
}

func certificateAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("no ratings given")
	}

	certs := make(model.CertificateMap, 0, c.NArg())
	for i, raw := range c.Args().Slice() {
		age, ok := engine.NormalizeCertificate(raw)
		if !ok {
			fmt.Printf("%-12s unmapped\n", raw)
		} else {
			fmt.Printf("%-12s %d\n", raw, age)
		}
		certs = append(certs, model.Certificate{Country: fmt.Sprintf("#%d", i+1), Rating: raw})
	}

	if age, ok, _ := engine.CertificateAge(certs); ok {
		fmt.Printf("mean age: %d\n", age)
	}
	return nil
}
