package imdb

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"parentsguide-srv/internal/advisory"
	"parentsguide-srv/internal/model"
)

const titleSuffix = " Parental Guide | IMDb"

var (
	spaceRun      = regexp.MustCompile(`\s+`)
	trailingEdit  = regexp.MustCompile(`\s*Edit$`)
	parenthesized = regexp.MustCompile(`\(.*?\)`)
)

// ParseParentalGuide reads a /title/{id}/parentalguide page. Categories without
// any item or vote are left out. When the page has neither advisory sections nor
// certificates the returned Advisory carries only the title, with ErrNoAdvisory.
func ParseParentalGuide(r io.Reader) (advisory.Advisory, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return advisory.Advisory{}, fmt.Errorf("parse parental guide: %w", err)
	}

	adv := advisory.Advisory{
		Title:        parseTitle(doc),
		Categories:   map[model.Category]advisory.CategoryAdvisory{},
		Certificates: parseCertificates(doc),
	}

	sections := doc.Find(`section[data-testid="advisory-categories"]`).First()
	for _, c := range model.AllCategories {
		sec := sections.Find(fmt.Sprintf(`section[data-testid="advisory-%s"]`, c)).First()
		if sec.Length() == 0 {
			continue
		}
		ca := parseCategory(sec)
		if len(ca.Items) == 0 && ca.Vote == "" {
			continue
		}
		adv.Categories[c] = ca
	}

	if sections.Length() == 0 && len(adv.Certificates) == 0 {
		return adv, advisory.ErrNoAdvisory
	}
	return adv, nil
}

func parseTitle(doc *goquery.Document) string {
	if content, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok {
		if t := strings.TrimSpace(strings.Replace(content, titleSuffix, "", 1)); t != "" {
			return t
		}
	}
	if t := cleanText(doc.Find("h1").First().Text()); t != "" {
		return t
	}
	return advisory.UnknownTitle
}

func parseCategory(sec *goquery.Selection) advisory.CategoryAdvisory {
	var ca advisory.CategoryAdvisory
	sec.Find("li.advisory-list__item").Each(func(_ int, li *goquery.Selection) {
		if item := cleanItem(li.Text()); item != "" {
			ca.Items = append(ca.Items, item)
		}
	})
	ca.Vote = cleanText(sec.Find(".ipc-signpost__text").First().Text())
	return ca
}

// parseCertificates reads one entry per (country, rating) pair in page order.
// Notes such as "(with parental guidance)" are dropped from the rating.
func parseCertificates(doc *goquery.Document) model.CertificateMap {
	certs := model.CertificateMap{}
	doc.Find(`section[data-testid="certificates"] li.ipc-metadata-list__item`).Each(func(_ int, item *goquery.Selection) {
		country := cleanText(item.Find(".ipc-metadata-list-item__label").First().Text())
		ratings := item.Find(".ipc-metadata-list-item__list-content-item")

		if country == "" || ratings.Length() == 0 {
			// Plain "Country: Rating" text.
			parts := strings.SplitN(cleanText(item.Text()), ":", 2)
			if len(parts) == 2 {
				if rating := cleanRating(parts[1]); rating != "" {
					certs = append(certs, model.Certificate{Country: strings.TrimSpace(parts[0]), Rating: rating})
				}
			}
			return
		}

		ratings.Each(func(_ int, r *goquery.Selection) {
			if rating := cleanRating(r.Text()); rating != "" {
				certs = append(certs, model.Certificate{Country: country, Rating: rating})
			}
		})
	})
	return certs
}

func cleanText(s string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}

func cleanItem(s string) string {
	return cleanText(trailingEdit.ReplaceAllString(strings.TrimSpace(s), ""))
}

func cleanRating(s string) string {
	return cleanText(parenthesized.ReplaceAllString(s, ""))
}
