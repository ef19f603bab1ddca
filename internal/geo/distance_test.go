package geo

import (
	"testing"

	"byrates/internal/domain"

	"github.com/stretchr/testify/require"
)

var minsk = Point{Lat: 53.9, Lon: 27.5667}

func TestDistanceKm_SamePoint(t *testing.T) {
	require.Equal(t, 0.0, DistanceKm(minsk, minsk))
}

func TestDistanceKm_Known(t *testing.T) {
	// one degree of latitude along a meridian
	d := DistanceKm(Point{Lat: 0, Lon: 0}, Point{Lat: 1, Lon: 0})
	require.InDelta(t, 111.195, d, 0.01)

	// Minsk to Brest, roughly 326 km
	d = DistanceKm(minsk, Point{Lat: 52.0976, Lon: 23.7341})
	require.InDelta(t, 326, d, 5)

	require.InDelta(t, DistanceKm(minsk, CityCenter), DistanceKm(CityCenter, minsk), 1e-9)
}

func branch(addr string, lat, lon float64) domain.Branch {
	return domain.Branch{Address: addr, Coords: &domain.Coords{Lat: lat, Lon: lon}}
}

func TestNearby(t *testing.T) {
	// 0.025 degrees of latitude is about 2.8 km
	banks := []domain.BankQuote{
		{Bank: "Alfa", Branches: []domain.Branch{
			branch("near", minsk.Lat+0.025, minsk.Lon),
			branch("far", minsk.Lat+0.1, minsk.Lon),
			{Address: "г. Минск, ул. Немига 5"},
		}},
		{Bank: "Belarusbank", Branches: []domain.Branch{
			branch("here", minsk.Lat, minsk.Lon),
		}},
	}

	res := Nearby(minsk, banks, 3)

	require.Len(t, res.Nearby, 2)
	require.Equal(t, "Alfa", res.Nearby[0].Bank)
	require.Equal(t, "near", res.Nearby[0].Branch.Address)
	require.LessOrEqual(t, res.Nearby[0].DistanceKm, 3.0)
	require.Greater(t, res.Nearby[0].DistanceKm, 2.5)
	require.Equal(t, "here", res.Nearby[1].Branch.Address)
	require.Equal(t, 0.0, res.Nearby[1].DistanceKm)

	require.Len(t, res.Unlocated, 1)
	require.Equal(t, "Alfa", res.Unlocated[0].Bank)
}

func TestNearby_DefaultRadiusAndEmpty(t *testing.T) {
	res := Nearby(minsk, nil, 0)
	require.NotNil(t, res.Nearby)
	require.Empty(t, res.Nearby)
	require.Empty(t, res.Unlocated)

	banks := []domain.BankQuote{{Bank: "A", Branches: []domain.Branch{branch("x", minsk.Lat+0.025, minsk.Lon)}}}
	require.Len(t, Nearby(minsk, banks, 0).Nearby, 1)
}
