package tokens

import (
	"encoding/json"
	"net/http"
	"time"

	"lingora/internal/api"
	"lingora/internal/cache"
	"lingora/internal/database"

	"github.com/labstack/echo/v4"
)

const (
	tokenPackCacheKey = "token_packs"
	tokenPackCacheTTL = 5 * time.Minute
)

// ListTokenPacksHandler returns the purchasable token pack catalog.
// The catalog changes rarely, so responses are served from redis when possible.
// @Summary     List token packs
// @Description Returns all purchasable token packs with pricing
// @Tags        tokens
// @Produce     json
// @Success     200 {object} api.TokenPackListResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /tokenpacks [get]
func ListTokenPacksHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if cached, err := rdb.Get(ctx, tokenPackCacheKey).Result(); err == nil && cached != "" {
			return c.JSONBlob(http.StatusOK, []byte(cached))
		}

		packs, err := listTokenPacks(ctx, db)
		if err != nil {
			c.Logger().Errorf("list token packs: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load token packs"})
		}

		resp := api.TokenPackListResponse{TokenPacks: make([]api.TokenPackResponse, 0, len(packs))}
		for _, p := range packs {
			resp.TokenPacks = append(resp.TokenPacks, api.TokenPackResponse{
				ID:              p.ID,
				Name:            p.Name,
				Tokens:          p.Tokens,
				Price:           p.Price,
				DiscountedPrice: p.DiscountedPrice,
				Description:     p.Description,
			})
		}

		if body, err := json.Marshal(resp); err == nil {
			if err := rdb.Set(ctx, tokenPackCacheKey, string(body), tokenPackCacheTTL).Err(); err != nil {
				c.Logger().Warnf("cache token packs: %v", err)
			}
		}
		return c.JSON(http.StatusOK, resp)
	}
}
