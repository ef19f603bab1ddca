package geo

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	DefaultRouteURL  = "https://yandex.com/maps/?rtext="
	DefaultSearchURL = "https://yandex.com/maps/?text="
)

// CityCenter is the route origin when the user location is unknown.
var CityCenter = Point{Lat: 53.9025, Lon: 27.5616}

type TravelMode string

const (
	Walking TravelMode = "walking"
	Transit TravelMode = "transit"
	Driving TravelMode = "driving"
)

var travelModes = []TravelMode{Walking, Transit, Driving}

type RouteLink struct {
	Mode TravelMode `json:"mode"`
	URL  string     `json:"url"`
}

// Links builds map URLs for branches.
type Links struct {
	routeURL  string
	searchURL string
}

func NewLinks(routeURL, searchURL string) *Links {
	if routeURL == "" {
		routeURL = DefaultRouteURL
	}
	if searchURL == "" {
		searchURL = DefaultSearchURL
	}
	return &Links{routeURL: routeURL, searchURL: searchURL}
}

// Routes returns one link per travel mode between the branch and origin.
func (l *Links) Routes(branch, origin Point) []RouteLink {
	base := fmt.Sprintf("%s%s~%s", l.routeURL, formatPoint(branch), formatPoint(origin))
	links := make([]RouteLink, 0, len(travelModes))
	for _, m := range travelModes {
		links = append(links, RouteLink{Mode: m, URL: base + "&mode=" + string(m)})
	}
	return links
}

// StreetSearch returns a map search link for the street of an address.
func (l *Links) StreetSearch(address string) string {
	return l.searchURL + url.QueryEscape(ExtractStreet(address))
}

// ExtractStreet drops the city part before the first ", " and trailing
// house numbers: "г. Минск, ул. Немига 5" becomes "ул. Немига".
func ExtractStreet(address string) string {
	street := address
	if _, rest, ok := strings.Cut(address, ", "); ok {
		street = rest
	}
	fields := strings.Fields(street)
	for len(fields) > 1 && strings.ContainsAny(fields[len(fields)-1], "0123456789") {
		fields = fields[:len(fields)-1]
	}
	return strings.TrimRight(strings.Join(fields, " "), ",")
}

func formatPoint(p Point) string {
	return fmt.Sprintf("%g,%g", p.Lat, p.Lon)
}
