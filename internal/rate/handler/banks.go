package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"byrates/internal/bank"
	"byrates/internal/domain"
	"byrates/internal/geo"

	"github.com/sirupsen/logrus"
)

const (
	maxTopN       = 20
	maxRadiusKm   = 50.0
	msgNoBankData = "bank rates are unavailable, " + msgTryLater
)

var (
	errInvalidTopN   = fmt.Errorf("n must be an integer between 1 and %d", maxTopN)
	errInvalidLat    = errors.New("lat must be a number between -90 and 90")
	errInvalidLon    = errors.New("lon must be a number between -180 and 180")
	errInvalidRadius = fmt.Errorf("radius_km must be a positive number up to %g", maxRadiusKm)
)

type BranchItem struct {
	Address string          `json:"address" example:"г. Минск, ул. Немига 5"`
	Coords  *domain.Coords  `json:"coords,omitempty" swaggertype:"array,number"`
	Routes  []geo.RouteLink `json:"routes,omitempty"`
	Search  string          `json:"search,omitempty" example:"https://yandex.com/maps/?text=..."`
}

type BankItem struct {
	Bank     string       `json:"bank" example:"Belarusbank"`
	USD      domain.Quote `json:"USD"`
	EUR      domain.Quote `json:"EUR"`
	Branches []BranchItem `json:"branches,omitempty"`
}

type GetBanksResponse struct {
	Sort  string     `json:"sort" example:"usd_buy"`
	Banks []BankItem `json:"banks"`
}

// GetBanks godoc
// @Summary Bank rates
// @Description Cash rates of all banks from the latest snapshot with NBRB rates, best first
// @Tags Banks
// @Produce json
// @Param sort query string false "Sort key" Enums(usd_buy, usd_sell, eur_buy, eur_sell)
// @Success 200 {object} GetBanksResponse
// @Failure 400 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /banks [get]
func (h *Handler) GetBanks(w http.ResponseWriter, r *http.Request) {
	key, err := bank.ParseSortKey(r.URL.Query().Get("sort"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	quotes, ok := h.loadBanks(w, r, "GetBanks")
	if !ok {
		return
	}

	sorted := bank.Sort(quotes, key)
	res := GetBanksResponse{Sort: string(key), Banks: make([]BankItem, 0, len(sorted))}
	for _, q := range sorted {
		res.Banks = append(res.Banks, BankItem{Bank: q.Bank, USD: q.USD, EUR: q.EUR})
	}
	writeJSON(w, http.StatusOK, res)
}

// GetTopBanks godoc
// @Summary Best banks
// @Description Top N banks with their branches and route links from the city center
// @Tags Banks
// @Produce json
// @Param n query int false "Number of banks" default(3)
// @Param sort query string false "Sort key" Enums(usd_buy, usd_sell, eur_buy, eur_sell)
// @Success 200 {object} GetBanksResponse
// @Failure 400 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /banks/top [get]
func (h *Handler) GetTopBanks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	key, err := bank.ParseSortKey(q.Get("sort"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	n := bank.DefaultTopN
	if raw := q.Get("n"); raw != "" {
		n, err = strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxTopN {
			writeError(w, http.StatusBadRequest, errInvalidTopN.Error())
			return
		}
	}

	quotes, ok := h.loadBanks(w, r, "GetTopBanks")
	if !ok {
		return
	}

	top := bank.Top(quotes, key, n)
	res := GetBanksResponse{Sort: string(key), Banks: make([]BankItem, 0, len(top))}
	for _, q := range top {
		item := BankItem{Bank: q.Bank, USD: q.USD, EUR: q.EUR, Branches: make([]BranchItem, 0, len(q.Branches))}
		for _, br := range q.Branches {
			item.Branches = append(item.Branches, h.branchItem(br, geo.CityCenter))
		}
		res.Banks = append(res.Banks, item)
	}
	writeJSON(w, http.StatusOK, res)
}

type NearbyItem struct {
	Bank       string  `json:"bank" example:"Belarusbank"`
	DistanceKm float64 `json:"distance_km" example:"1.27"`
	Distance   string  `json:"distance" example:"1.27 km"`
	BranchItem
}

type UnlocatedItem struct {
	Bank string `json:"bank" example:"Belarusbank"`
	BranchItem
}

type GetNearbyResponse struct {
	RadiusKm  float64         `json:"radius_km" example:"3"`
	Nearby    []NearbyItem    `json:"nearby"`
	Unlocated []UnlocatedItem `json:"unlocated"`
}

// GetNearbyBranches godoc
// @Summary Nearby branches
// @Description Branches of the top 3 banks within a radius of the given point. Branches without coordinates are listed separately with a street search link.
// @Tags Banks
// @Produce json
// @Param lat query number true "Latitude" example(53.9)
// @Param lon query number true "Longitude" example(27.5667)
// @Param radius_km query number false "Search radius in km" default(3)
// @Param sort query string false "Sort key used to pick the top banks" Enums(usd_buy, usd_sell, eur_buy, eur_sell)
// @Success 200 {object} GetNearbyResponse
// @Failure 400 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /banks/nearby [get]
func (h *Handler) GetNearbyBranches(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		writeError(w, http.StatusBadRequest, errInvalidLat.Error())
		return
	}
	lon, err := strconv.ParseFloat(q.Get("lon"), 64)
	if err != nil || lon < -180 || lon > 180 {
		writeError(w, http.StatusBadRequest, errInvalidLon.Error())
		return
	}
	radius := geo.DefaultRadiusKm
	if raw := q.Get("radius_km"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil || radius <= 0 || radius > maxRadiusKm {
			writeError(w, http.StatusBadRequest, errInvalidRadius.Error())
			return
		}
	}
	key, err := bank.ParseSortKey(q.Get("sort"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	quotes, ok := h.loadBanks(w, r, "GetNearbyBranches")
	if !ok {
		return
	}

	user := geo.Point{Lat: lat, Lon: lon}
	found := geo.Nearby(user, bank.Top(quotes, key, bank.DefaultTopN), radius)

	res := GetNearbyResponse{
		RadiusKm:  radius,
		Nearby:    make([]NearbyItem, 0, len(found.Nearby)),
		Unlocated: make([]UnlocatedItem, 0, len(found.Unlocated)),
	}
	for _, nb := range found.Nearby {
		res.Nearby = append(res.Nearby, NearbyItem{
			Bank:       nb.Bank,
			DistanceKm: nb.DistanceKm,
			Distance:   h.format.Distance(nb.DistanceKm),
			BranchItem: h.branchItem(nb.Branch, user),
		})
	}
	for _, u := range found.Unlocated {
		res.Unlocated = append(res.Unlocated, UnlocatedItem{Bank: u.Bank, BranchItem: h.branchItem(u.Branch, user)})
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) loadBanks(w http.ResponseWriter, r *http.Request, name string) ([]domain.BankQuote, bool) {
	quotes, err := h.banks.LoadEnriched(r.Context())
	if err != nil {
		logrus.WithError(err).WithField("handler", name).Error("bank snapshot unavailable")
		writeError(w, http.StatusServiceUnavailable, msgNoBankData)
		return nil, false
	}
	return quotes, true
}

func (h *Handler) branchItem(br domain.Branch, origin geo.Point) BranchItem {
	item := BranchItem{Address: br.Address, Coords: br.Coords}
	if br.HasCoords() {
		item.Routes = h.links.Routes(geo.FromCoords(*br.Coords), origin)
	} else {
		item.Search = h.links.StreetSearch(br.Address)
	}
	return item
}
