package geo

import (
	"math"

	"byrates/internal/domain"
)

const EarthRadiusKm = 6371.0

// DefaultRadiusKm is the search radius for nearby branches.
const DefaultRadiusKm = 3.0

type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func FromCoords(c domain.Coords) Point { return Point{Lat: c.Lat, Lon: c.Lon} }

// DistanceKm returns the great-circle distance between a and b (haversine).
func DistanceKm(a, b Point) float64 {
	lat1, lat2 := radians(a.Lat), radians(b.Lat)
	dLat := lat2 - lat1
	dLon := radians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

type NearbyBranch struct {
	Bank       string        `json:"bank"`
	Branch     domain.Branch `json:"branch"`
	DistanceKm float64       `json:"distance_km"`
}

type UnlocatedBranch struct {
	Bank   string        `json:"bank"`
	Branch domain.Branch `json:"branch"`
}

// Result splits branches into those within the radius and those whose
// location is unknown. Unlocated branches never take part in distance checks.
type Result struct {
	Nearby    []NearbyBranch    `json:"nearby"`
	Unlocated []UnlocatedBranch `json:"unlocated"`
}

// Nearby filters the branches of the given banks to those within radiusKm of
// user, keeping bank and branch order.
func Nearby(user Point, banks []domain.BankQuote, radiusKm float64) Result {
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}
	res := Result{Nearby: []NearbyBranch{}, Unlocated: []UnlocatedBranch{}}
	for _, bank := range banks {
		for _, br := range bank.Branches {
			if !br.HasCoords() {
				res.Unlocated = append(res.Unlocated, UnlocatedBranch{Bank: bank.Bank, Branch: br})
				continue
			}
			d := DistanceKm(user, FromCoords(*br.Coords))
			if d <= radiusKm {
				res.Nearby = append(res.Nearby, NearbyBranch{Bank: bank.Bank, Branch: br, DistanceKm: d})
			}
		}
	}
	return res
}
