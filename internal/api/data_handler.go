package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/auctionpulse/internal/domain/dto"
	"github.com/guttosm/auctionpulse/internal/domain/models"
	"github.com/guttosm/auctionpulse/internal/service"
)

const (
	defaultAuctionsPage  = 1
	defaultAuctionsCount = 10
	maxAuctionsCount     = 1000
)

// now is replaced in tests.
var now = time.Now

// GetRegions godoc
// @Summary      List regions
// @Tags         data
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/regions [get]
func (h *Handler) GetRegions(c *gin.Context) {
	out, err := h.data.Regions(c.Request.Context())
	if err != nil {
		respondBusError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", out)
}

// GetRealms godoc
// @Summary      List realms of a region
// @Tags         data
// @Produce      json
// @Param        region  path      string  true  "Region"  example(us)
// @Success      200     {object}  map[string]interface{}
// @Failure      404     {object}  dto.ErrorResponse
// @Failure      500     {object}  dto.ErrorResponse
// @Router       /api/v1/region/{region}/realms [get]
func (h *Handler) GetRealms(c *gin.Context) {
	out, err := h.data.Realms(c.Request.Context(), c.Param("region"))
	if err != nil {
		respondBusError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", out)
}

// GetAuctions godoc
// @Summary      Page through a realm's auctions
// @Tags         data
// @Produce      json
// @Param        region         path      string  true   "Region"  example(us)
// @Param        realm          path      string  true   "Realm"   example(earthen-ring)
// @Param        page           query     int     false  "Page, starting at 1"        default(1)
// @Param        count          query     int     false  "Page size, 1 to 1000"       default(10)
// @Param        sortKind       query     string  false  "Sort column"                example(item)
// @Param        sortDirection  query     string  false  "asc or desc"                example(asc)
// @Param        ownerFilters   query     string  false  "Comma separated owners"
// @Param        itemFilters    query     string  false  "Comma separated item ids"   example(2447,765)
// @Success      200            {object}  map[string]interface{}
// @Failure      400            {object}  dto.ErrorResponse
// @Failure      404            {object}  dto.ErrorResponse
// @Failure      500            {object}  dto.ErrorResponse
// @Router       /api/v1/region/{region}/realm/{realm}/auctions [get]
func (h *Handler) GetAuctions(c *gin.Context) {
	q, err := parseAuctionsQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid query", err))
		return
	}

	out, err := h.data.Auctions(c.Request.Context(), q)
	if err != nil {
		respondBusError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", out)
}

func parseAuctionsQuery(c *gin.Context) (service.AuctionsQuery, error) {
	q := service.AuctionsQuery{
		Region:        c.Param("region"),
		Realm:         c.Param("realm"),
		Page:          defaultAuctionsPage,
		Count:         defaultAuctionsCount,
		SortKind:      c.Query("sortKind"),
		SortDirection: c.Query("sortDirection"),
		OwnerFilters:  splitComma(c.Query("ownerFilters")),
	}

	if s := c.Query("page"); s != "" {
		page, err := strconv.Atoi(s)
		if err != nil || page < 1 {
			return q, errors.New("page must be a positive integer")
		}
		q.Page = page
	}
	if s := c.Query("count"); s != "" {
		count, err := strconv.Atoi(s)
		if err != nil || count < 1 || count > maxAuctionsCount {
			return q, fmt.Errorf("count must be between 1 and %d", maxAuctionsCount)
		}
		q.Count = count
	}
	if dir := strings.ToLower(q.SortDirection); dir != "" && dir != "asc" && dir != "desc" {
		return q, errors.New("sortDirection must be asc or desc")
	}
	for _, s := range splitComma(c.Query("itemFilters")) {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil || id <= 0 {
			return q, errors.New("itemFilters must be positive item ids")
		}
		q.ItemFilters = append(q.ItemFilters, models.ItemID(id))
	}
	return q, nil
}

func splitComma(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// GetOwners godoc
// @Summary      Search auction owners
// @Tags         data
// @Produce      json
// @Param        region  path      string  true   "Region"  example(us)
// @Param        realm   path      string  true   "Realm"   example(earthen-ring)
// @Param        query   query     string  false  "Owner name prefix"
// @Success      200     {object}  map[string]interface{}
// @Failure      404     {object}  dto.ErrorResponse
// @Failure      500     {object}  dto.ErrorResponse
// @Router       /api/v1/region/{region}/realm/{realm}/owners [get]
func (h *Handler) GetOwners(c *gin.Context) {
	out, err := h.data.Owners(c.Request.Context(), c.Param("region"), c.Param("realm"), c.Query("query"))
	if err != nil {
		respondBusError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", out)
}

// QueryItems godoc
// @Summary      Search items
// @Tags         data
// @Produce      json
// @Param        query  query     string  false  "Item name"  example(peacebloom)
// @Success      200    {object}  map[string]interface{}
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /api/v1/items [get]
func (h *Handler) QueryItems(c *gin.Context) {
	out, err := h.data.QueryItems(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondBusError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", out)
}

// GetPriceList godoc
// @Summary      Current prices
// @Description  Current price statistics of the given items
// @Tags         data
// @Accept       json
// @Produce      json
// @Param        region  path      string              true  "Region"  example(us)
// @Param        realm   path      string              true  "Realm"   example(earthen-ring)
// @Param        body    body      dto.ItemIDsRequest  true  "Items"
// @Success      200     {object}  map[string]interface{}
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Failure      500     {object}  dto.ErrorResponse
// @Router       /api/v1/region/{region}/realm/{realm}/price-list [post]
func (h *Handler) GetPriceList(c *gin.Context) {
	var req dto.ItemIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	out, err := h.data.PriceList(c.Request.Context(), c.Param("region"), c.Param("realm"), req.ToItemIDs())
	if err != nil {
		respondBusError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", out)
}

// GetPriceListHistory godoc
// @Summary      Price history with price bands
// @Description  Returns 14 days of price history for the given items together with a smoothed
// @Description  price band per item and one across all of them. A band of {0, 0} means no data.
// @Tags         data
// @Accept       json
// @Produce      json
// @Param        region  path      string              true  "Region"  example(us)
// @Param        realm   path      string              true  "Realm"   example(earthen-ring)
// @Param        body    body      dto.ItemIDsRequest  true  "Items, at least one"
// @Success      200     {object}  dto.PriceListHistoryResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      500     {object}  dto.ErrorResponse
// @Router       /api/v1/region/{region}/realm/{realm}/price-list-history [post]
func (h *Handler) GetPriceListHistory(c *gin.Context) {
	var req dto.ItemIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}
	if len(req.ItemIDs) == 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("item_ids must not be empty", nil))
		return
	}

	out, err := h.data.PriceListHistory(c.Request.Context(), c.Param("region"), c.Param("realm"), req.ToItemIDs(), now())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch price list history", err))
		return
	}

	c.JSON(http.StatusOK, dto.PriceListHistoryResponse{
		History:            out.History,
		Items:              out.Items,
		ItemPriceLimits:    out.ItemBands,
		OverallPriceLimits: out.OverallBand,
		ItemMarketPrices:   []json.RawMessage{},
	})
}
