// Package impl contains the concrete use case services.
package impl

import (
	"context"
	"math"
	"sort"
	"strings"

	"nearbuy/config"
	"nearbuy/internal/domain/entity"
	"nearbuy/internal/domain/repository"
	"nearbuy/internal/geo"
	"nearbuy/internal/infra/metrics"
	"nearbuy/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type searchService struct {
	catalogRepo  repository.CatalogRepository
	favoriteRepo repository.FavoriteRepository
	search       *config.SearchConfig
}

// SearchServiceParams holds dependencies for SearchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	CatalogRepo  repository.CatalogRepository
	FavoriteRepo repository.FavoriteRepository
	Config       *config.Config
}

// NewSearchService creates a new search service instance
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	search := params.Config.Search
	if search == nil {
		search = &config.SearchConfig{}
	}
	search.Normalize()

	return &searchService{
		catalogRepo:  params.CatalogRepo,
		favoriteRepo: params.FavoriteRepo,
		search:       search,
	}
}

// Search evaluates one catalog search: normalize, filter, rank, truncate,
// select the best price and optionally flag the caller's favorites.
func (s *searchService) Search(ctx context.Context, input *usecase.SearchInput) (*usecase.SearchResult, error) {
	filter := normalizeFilter(input, s.search.MaxRadiusKm)

	candidates, err := s.catalogRepo.FindJoinedProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch catalog")
	}

	entries := evaluateFilter(candidates, filter)
	rankEntries(entries, filter.RadiusActive())
	entries = truncateEntries(entries, s.search.MaxResults)
	metrics.RecordSearch(filter.RadiusActive(), len(entries))

	if input.UserID != nil {
		if err := s.flagFavorites(ctx, *input.UserID, entries); err != nil {
			return nil, err
		}
	}

	return &usecase.SearchResult{
		Entries:   entries,
		BestPrice: selectBestPrice(entries),
	}, nil
}

// flagFavorites marks the caller's favorited entries using a single batched
// membership lookup instead of one check per entry.
func (s *searchService) flagFavorites(ctx context.Context, userID int64, entries []*entity.SearchEntry) error {
	ids, err := s.favoriteRepo.ListFavoriteProductIDs(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to list favorites for flagging")
	}

	favorited := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		favorited[id] = struct{}{}
	}

	for _, entry := range entries {
		_, ok := favorited[entry.ID]
		flag := ok
		entry.IsFavorite = &flag
	}

	return nil
}

// normalizeFilter produces the canonical filter specification from raw
// caller input. Malformed optional values disable the corresponding
// feature; nothing here can fail.
func normalizeFilter(input *usecase.SearchInput, maxRadiusKm float64) entity.SearchFilter {
	filter := entity.SearchFilter{
		Query:    strings.ToLower(strings.TrimSpace(input.Query)),
		Category: input.Filter,
	}
	if strings.TrimSpace(filter.Category) == "" {
		filter.Category = entity.CategoryAll
	}

	origin, radius := normalizeRadius(input.UserLat, input.UserLng, input.Radius, maxRadiusKm)
	filter.Origin = origin
	filter.RadiusKm = radius

	return filter
}

// normalizeRadius validates the optional (lat, lng, radius) triple.
// Radius filtering activates only when all three are present, the
// coordinate is finite and in range, and the radius is a positive number.
func normalizeRadius(lat, lng, radius *float64, maxRadiusKm float64) (*orb.Point, float64) {
	if lat == nil || lng == nil || radius == nil {
		return nil, 0
	}
	if !geo.ValidCoordinate(*lat, *lng) {
		return nil, 0
	}
	if math.IsNaN(*radius) || math.IsInf(*radius, 0) || *radius <= 0 {
		return nil, 0
	}

	r := *radius
	if maxRadiusKm > 0 && r > maxRadiusKm {
		r = maxRadiusKm
	}

	origin := orb.Point{*lng, *lat}

	return &origin, r
}

// evaluateFilter applies the text, category and radius predicates in order,
// preserving the join order of the surviving entries. When radius filtering
// is active the computed distance is attached to each surviving entry.
func evaluateFilter(candidates []*entity.SearchEntry, filter entity.SearchFilter) []*entity.SearchEntry {
	entries := make([]*entity.SearchEntry, 0, len(candidates))

	for _, candidate := range candidates {
		if !matchesText(candidate, filter.Query) {
			continue
		}
		if filter.CategoryActive() && candidate.Category != filter.Category {
			continue
		}

		if filter.RadiusActive() {
			point, eligible := candidate.Coordinate()
			if !eligible {
				continue
			}

			d := geo.Distance(*filter.Origin, point)
			if d > filter.RadiusKm {
				continue
			}

			distance := d
			candidate.Distance = &distance
		}

		entries = append(entries, candidate)
	}

	return entries
}

// matchesText reports whether the normalized query is a substring of the
// entry's name, SKU or category, case-insensitively. An empty query
// matches every entry.
func matchesText(entry *entity.SearchEntry, query string) bool {
	if query == "" {
		return true
	}

	return strings.Contains(strings.ToLower(entry.Name), query) ||
		strings.Contains(strings.ToLower(entry.SKU), query) ||
		strings.Contains(strings.ToLower(entry.Category), query)
}

// rankEntries orders entries by ascending distance then case-insensitive
// name when radius filtering is active, and by name alone otherwise. The
// sort is stable so equal keys preserve join order and repeated calls over
// identical data are reproducible.
func rankEntries(entries []*entity.SearchEntry, radiusActive bool) {
	sort.SliceStable(entries, func(i, j int) bool {
		if radiusActive && entries[i].Distance != nil && entries[j].Distance != nil &&
			*entries[i].Distance != *entries[j].Distance {
			return *entries[i].Distance < *entries[j].Distance
		}

		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
}

// truncateEntries caps the ranked result set. Truncation happens only
// after full ordering so a nearer match is never evicted by arrival order.
func truncateEntries(entries []*entity.SearchEntry, limit int) []*entity.SearchEntry {
	if limit > 0 && len(entries) > limit {
		return entries[:limit]
	}

	return entries
}

// selectBestPrice picks the lowest positively-priced entry; ties keep the
// first entry in ranked order. Entries priced at zero or below are treated
// as "price unset" and never selected. A nil result is the expected empty
// state when nothing carries a positive price.
func selectBestPrice(entries []*entity.SearchEntry) *entity.SearchEntry {
	var best *entity.SearchEntry

	for _, entry := range entries {
		if entry.Price <= 0 {
			continue
		}
		if best == nil || entry.Price < best.Price {
			best = entry
		}
	}

	return best
}
