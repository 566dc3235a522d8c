package scrape

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"recipechat/internal/logging"
	"recipechat/internal/recipe"
	"recipechat/internal/services"
)

const defaultUserAgent = "recipechat/1.0 (+https://github.com/recipechat/recipechat)"

// Annotator fills Step.Ingredients and Step.Methods. Implementations return
// a new slice and leave the input untouched.
type Annotator interface {
	AnnotateSteps(ctx context.Context, ingredients []recipe.Ingredient, steps []recipe.Step) ([]recipe.Step, error)
}

// Options configures a Parser.
type Options struct {
	UserAgent      string
	Timeout        time.Duration
	MaxBodySize    int
	AllowedDomains []string
	// Annotator is consulted before the keyword annotator. Nil disables it.
	Annotator Annotator
	Logger    *slog.Logger
}

// Parser fetches and extracts recipes.
type Parser struct {
	opts     Options
	keywords KeywordAnnotator
	logger   *slog.Logger
}

// New constructs a Parser.
func New(opts Options) *Parser {
	if strings.TrimSpace(opts.UserAgent) == "" {
		opts.UserAgent = defaultUserAgent
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Parser{
		opts:   opts,
		logger: logging.NewComponentLogger(logger, "scrape"),
	}
}

// Parse fetches rawURL and returns the recipe found on the page.
func (p *Parser) Parse(ctx context.Context, rawURL string) (*recipe.Recipe, error) {
	target, err := validateURL(rawURL)
	if err != nil {
		return nil, err
	}
	logger := logging.WithContext(ctx, p.logger)

	page, err := p.fetch(ctx, target)
	if err != nil {
		return nil, err
	}
	found, ok := page.best()
	if !ok {
		return nil, services.Wrap(services.ErrParse, "scrape", "extract", "no recipe found on page", nil)
	}

	ingredients := make([]recipe.Ingredient, 0, len(found.Ingredients))
	for _, line := range found.Ingredients {
		if ing, ok := ParseIngredientLine(line); ok {
			ingredients = append(ingredients, ing)
		}
	}
	steps := make([]recipe.Step, 0, len(found.Instructions))
	for _, text := range found.Instructions {
		steps = append(steps, recipe.Step{Number: len(steps) + 1, Description: text})
	}
	if len(ingredients) == 0 && len(steps) == 0 {
		return nil, services.Wrap(services.ErrParse, "scrape", "extract", "recipe has no ingredients or steps", nil)
	}

	steps = p.annotate(ctx, logger, ingredients, steps)

	title := found.Name
	if title == "" {
		title = page.title
	}
	parsed, err := recipe.Load(ingredients, steps, recipe.WithTitle(title), recipe.WithSourceURL(target))
	if err != nil {
		return nil, services.Wrap(services.ErrParse, "scrape", "load", "", err)
	}
	logger.Info("recipe parsed",
		logging.String("url", target),
		logging.String("source", found.source),
		logging.Int("ingredients", parsed.IngredientCount()),
		logging.Int("steps", parsed.StepCount()),
	)
	return parsed, nil
}

type page struct {
	title     string
	ldJSON    []schemaRecipe
	microdata []schemaRecipe
}

// best prefers ld+json over microdata and, within a source, the first recipe
// that has any content.
func (pg *page) best() (schemaRecipe, bool) {
	for _, group := range [][]schemaRecipe{pg.ldJSON, pg.microdata} {
		for _, r := range group {
			if len(r.Ingredients) > 0 || len(r.Instructions) > 0 {
				return r, true
			}
		}
	}
	return schemaRecipe{}, false
}

func (p *Parser) fetch(ctx context.Context, target string) (*page, error) {
	options := []colly.CollectorOption{
		colly.UserAgent(p.opts.UserAgent),
		colly.StdlibContext(ctx),
	}
	if p.opts.MaxBodySize > 0 {
		options = append(options, colly.MaxBodySize(p.opts.MaxBodySize))
	}
	if len(p.opts.AllowedDomains) > 0 {
		options = append(options, colly.AllowedDomains(p.opts.AllowedDomains...))
	}
	c := colly.NewCollector(options...)
	if p.opts.Timeout > 0 {
		c.SetRequestTimeout(p.opts.Timeout)
	}

	pg := &page{}
	c.OnHTML("title", func(e *colly.HTMLElement) {
		if pg.title == "" {
			pg.title = cleanText(e.Text)
		}
	})
	c.OnHTML(`script[type="application/ld+json"]`, func(e *colly.HTMLElement) {
		pg.ldJSON = append(pg.ldJSON, extractLDJSON(e.Text)...)
	})
	c.OnHTML(`[itemtype*="schema.org/Recipe"]`, func(e *colly.HTMLElement) {
		pg.microdata = append(pg.microdata, extractMicrodata(e.DOM))
	})

	var status int
	c.OnError(func(r *colly.Response, _ error) {
		if r != nil {
			status = r.StatusCode
		}
	})

	if err := c.Visit(target); err != nil {
		var netErr net.Error
		switch {
		case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
			return nil, services.Wrap(services.ErrTimeout, "scrape", "fetch", "timed out fetching page", err)
		case errors.Is(err, colly.ErrForbiddenDomain):
			return nil, services.Wrap(services.ErrValidation, "scrape", "fetch", "domain not allowed", err)
		case status != 0:
			return nil, services.Wrap(services.ErrParse, "scrape", "fetch", fmt.Sprintf("page returned HTTP %d", status), err)
		default:
			return nil, services.Wrap(services.ErrParse, "scrape", "fetch", "", err)
		}
	}
	return pg, nil
}

func (p *Parser) annotate(ctx context.Context, logger *slog.Logger, ingredients []recipe.Ingredient, steps []recipe.Step) []recipe.Step {
	if p.opts.Annotator != nil && len(steps) > 0 {
		annotated, err := p.opts.Annotator.AnnotateSteps(ctx, ingredients, steps)
		if err == nil {
			return annotated
		}
		logging.WarnWithContext(logger, "model annotation failed; using keyword annotation", "annotate_fallback",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check [llm] settings and provider status"),
			logging.String(logging.FieldImpact, "step ingredients and methods come from keyword matching"),
		)
	}
	annotated, _ := p.keywords.AnnotateSteps(ctx, ingredients, steps)
	return annotated
}

func validateURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", services.Wrap(services.ErrValidation, "scrape", "parse", "url is required", nil)
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", services.Wrap(services.ErrValidation, "scrape", "parse", "invalid url", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", services.Wrap(services.ErrValidation, "scrape", "parse", fmt.Sprintf("unsupported url scheme %q", parsed.Scheme), nil)
	}
	if parsed.Host == "" {
		return "", services.Wrap(services.ErrValidation, "scrape", "parse", "url has no host", nil)
	}
	return parsed.String(), nil
}

// extractMicrodata reads itemprop attributes below a schema.org/Recipe node.
func extractMicrodata(sel *goquery.Selection) schemaRecipe {
	out := schemaRecipe{source: "microdata"}
	out.Name = cleanText(sel.Find(`[itemprop="name"]`).First().Text())
	sel.Find(`[itemprop="recipeIngredient"], [itemprop="ingredients"]`).Each(func(_ int, s *goquery.Selection) {
		if text := cleanText(s.Text()); text != "" {
			out.Ingredients = append(out.Ingredients, text)
		}
	})
	sel.Find(`[itemprop="recipeInstructions"]`).Each(func(_ int, s *goquery.Selection) {
		if items := s.Find("li"); items.Length() > 0 {
			items.Each(func(_ int, li *goquery.Selection) {
				if text := cleanText(li.Text()); text != "" {
					out.Instructions = append(out.Instructions, text)
				}
			})
			return
		}
		out.Instructions = append(out.Instructions, splitLines(s.Text())...)
	})
	return out
}
