// Package format renders values for people: amounts with two fractional
// digits and locale digit grouping.
package format

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DefaultLocale = "en"

type Formatter struct {
	printer *message.Printer
	group   string
	point   string
}

func New(locale string) (*Formatter, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	p := message.NewPrinter(tag)
	group, point := separators(p)
	return &Formatter{printer: p, group: group, point: point}, nil
}

// MustNew is like New but panics on an invalid locale.
func MustNew(locale string) *Formatter {
	f, err := New(locale)
	if err != nil {
		panic(err)
	}
	return f
}

// separators asks the printer how it renders sample numbers. Locales with
// non-latin digits fall back to "," and ".".
func separators(p *message.Printer) (group, point string) {
	group, point = ",", "."

	grouped := p.Sprintf("%d", 1000000)
	if rest, ok := strings.CutPrefix(grouped, "1"); ok {
		if i := strings.Index(rest, "000"); i >= 0 {
			group = rest[:i]
		}
	}
	fraction := p.Sprintf("%.1f", 1.5)
	if rest, ok := strings.CutPrefix(fraction, "1"); ok {
		if sep, ok := strings.CutSuffix(rest, "5"); ok && sep != "" {
			point = sep
		}
	}
	return group, point
}

// Amount rounds half away from zero to 2 digits. The decimal is rendered
// exactly, never through float64.
func (f *Formatter) Amount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		sign, s = "-", rest
	}
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.Grow(len(sign) + len(intPart) + len(intPart)/3*len(f.group) + len(f.point) + len(frac))
	b.WriteString(sign)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(f.group)
		}
		b.WriteRune(r)
	}
	b.WriteString(f.point)
	b.WriteString(frac)
	return b.String()
}

func (f *Formatter) Distance(km float64) string {
	return f.printer.Sprintf("%.2f km", km)
}
