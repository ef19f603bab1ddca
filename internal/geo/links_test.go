package geo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinks_Routes(t *testing.T) {
	links := NewLinks("", "")

	routes := links.Routes(Point{Lat: 53.91, Lon: 27.55}, CityCenter)

	require.Len(t, routes, 3)
	require.Equal(t, Walking, routes[0].Mode)
	require.Equal(t, "https://yandex.com/maps/?rtext=53.91,27.55~53.9025,27.5616&mode=walking", routes[0].URL)
	require.True(t, strings.HasSuffix(routes[1].URL, "&mode=transit"))
	require.True(t, strings.HasSuffix(routes[2].URL, "&mode=driving"))
}

func TestLinks_StreetSearch(t *testing.T) {
	links := NewLinks("https://maps.example/?rtext=", "https://maps.example/?text=")

	require.Equal(t, "https://maps.example/?text=%D1%83%D0%BB.+%D0%9D%D0%B5%D0%BC%D0%B8%D0%B3%D0%B0",
		links.StreetSearch("г. Минск, ул. Немига 5"))
}

func TestExtractStreet(t *testing.T) {
	cases := map[string]string{
		"г. Минск, ул. Немига 5":          "ул. Немига",
		"ул. Ленина 2":                    "ул. Ленина",
		"Немига":                          "Немига",
		"г. Минск, ул. Кальварийская, 24": "ул. Кальварийская",
	}
	for in, want := range cases {
		require.Equal(t, want, ExtractStreet(in), in)
	}
}
