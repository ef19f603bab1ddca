package scraper

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"byrates/internal/domain"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
)

const (
	selRow        = "tr"
	selBankName   = ".fake-link.js_link_blank, .pos-r"
	selRateCell   = ".currencies-courses__currency-cell"
	selBranchName = ".currencies-courses__branch-name"
	selCoordsCell = ".currencies-courses__icon-cell"
	attrCoords    = "data-fillial-coords"

	rateCells = 4
)

var (
	ErrNoRows  = errors.New("page contains no table rows")
	ErrNoRates = errors.New("page contains no bank rates")

	coordsPattern = regexp.MustCompile(`(-?\d+(?:\.\d+)?)\s*,\s*(-?\d+(?:\.\d+)?)`)
)

// Result of parsing a rates page. RowErrors describes banks or branches that
// were skipped; it does not make the result unusable.
type Result struct {
	Quotes    []domain.BankQuote
	RowErrors error
}

type bankGroup struct {
	name     string
	rates    []string
	branches []domain.Branch
	seen     map[string]struct{}
}

func (g *bankGroup) addBranch(address string, coords *domain.Coords) {
	if _, dup := g.seen[address]; dup {
		return
	}
	g.seen[address] = struct{}{}
	g.branches = append(g.branches, domain.Branch{Address: address, Coords: coords})
}

// Parse reads the city rates table. A row with a bank name starts a bank;
// the following rows add its branches. Bank rates come from the first row of
// the bank that carries all four rate cells.
func Parse(r io.Reader) (Result, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Result{}, fmt.Errorf("failed to parse page: %w", err)
	}

	rows := doc.Find(selRow)
	if rows.Length() == 0 {
		return Result{}, ErrNoRows
	}

	var (
		groups  []*bankGroup
		current *bankGroup
		rowErrs error
	)
	rows.Each(func(_ int, row *goquery.Selection) {
		if name := strings.TrimSpace(row.Find(selBankName).First().Text()); name != "" {
			current = &bankGroup{name: name, seen: map[string]struct{}{}}
			groups = append(groups, current)
		}
		if current == nil {
			return
		}

		if current.rates == nil {
			if cells := row.Find(selRateCell); cells.Length() >= rateCells {
				current.rates = cells.Map(func(_ int, c *goquery.Selection) string {
					return strings.TrimSpace(c.Text())
				})
			}
		}

		address := strings.TrimRight(strings.TrimSpace(row.Find(selBranchName).First().Text()), ",")
		coordsCell := row.Find(selCoordsCell).First()
		if address == "" || coordsCell.Length() == 0 {
			return
		}
		coords, err := parseCoords(coordsCell.AttrOr(attrCoords, ""))
		if err != nil {
			rowErrs = multierr.Append(rowErrs, fmt.Errorf("bank %s, branch %s: %w", current.name, address, err))
		}
		current.addBranch(address, coords)
	})

	quotes := make([]domain.BankQuote, 0, len(groups))
	seen := make(map[string]struct{}, len(groups))
	for _, g := range groups {
		q, err := g.quote()
		if err != nil {
			rowErrs = multierr.Append(rowErrs, err)
			continue
		}
		key := fmt.Sprintf("%s-%s-%s-%s-%s", q.Bank, q.USD.Buy, q.USD.Sell, q.EUR.Buy, q.EUR.Sell)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		quotes = append(quotes, q)
	}

	if len(quotes) == 0 {
		return Result{RowErrors: rowErrs}, ErrNoRates
	}
	return Result{Quotes: quotes, RowErrors: rowErrs}, nil
}

func (g *bankGroup) quote() (domain.BankQuote, error) {
	if g.rates == nil {
		return domain.BankQuote{}, fmt.Errorf("bank %s: fewer than %d rate cells", g.name, rateCells)
	}
	values := make([]decimal.Decimal, rateCells)
	for i := range values {
		v, err := parseRate(g.rates[i])
		if err != nil {
			return domain.BankQuote{}, fmt.Errorf("bank %s: %w", g.name, err)
		}
		values[i] = v
	}
	branches := g.branches
	if branches == nil {
		branches = []domain.Branch{}
	}
	return domain.BankQuote{
		Bank:     g.name,
		USD:      domain.Quote{Buy: values[0], Sell: values[1]},
		EUR:      domain.Quote{Buy: values[2], Sell: values[3]},
		Branches: branches,
	}, nil
}

// parseRate treats a dash as "no rate" (zero).
func parseRate(raw string) (decimal.Decimal, error) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	switch raw {
	case "", "—", "-", "–":
		return decimal.Zero, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid rate %q", raw)
	}
	return v, nil
}

// parseCoords takes the first "lat,lon" pair of the attribute. An empty
// attribute means unknown coordinates and is not an error.
func parseCoords(raw string) (*domain.Coords, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	m := coordsPattern.FindStringSubmatch(raw)
	if m == nil {
		return nil, fmt.Errorf("invalid coordinates %q", raw)
	}
	lat, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude %q: %w", m[1], err)
	}
	lon, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude %q: %w", m[2], err)
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, fmt.Errorf("coordinates out of range %q", raw)
	}
	return &domain.Coords{Lat: lat, Lon: lon}, nil
}
