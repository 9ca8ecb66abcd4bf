package rest

import (
	"fmt"
	"sort"

	"github.com/labstack/echo/v4"

	"github.com/gitjits/geodata/internal/domain"
	"github.com/gitjits/geodata/internal/present/rest/presenter"
	"github.com/gitjits/geodata/internal/usecase"
)

type Handler struct {
	countries *usecase.CountryUsecase
	states    *usecase.StateUsecase
	cities    *usecase.CityUsecase
	parks     *usecase.ParkUsecase
	stats     *usecase.StatsUsecase
}

func NewHandler(
	countries *usecase.CountryUsecase,
	states *usecase.StateUsecase,
	cities *usecase.CityUsecase,
	parks *usecase.ParkUsecase,
	stats *usecase.StatsUsecase,
) *Handler {
	return &Handler{
		countries: countries,
		states:    states,
		cities:    cities,
		parks:     parks,
		stats:     stats,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/hello", h.handleHello)
	e.GET("/endpoints", h.handleEndpoints)
	e.GET("/statistics", h.handleStatistics)
	e.DELETE("/delete-all-data", h.handleDeleteAllData)

	e.GET("/countries", h.handleListCountries)
	e.POST("/countries", h.handleCreateCountry)
	e.GET("/countries/:code", h.handleGetCountry)
	e.PUT("/countries/:code", h.handleUpdateCountry)
	e.DELETE("/countries/:code", h.handleDeleteCountry)

	// Composite-keyed states are addressed by two path segments.
	e.GET("/countries/:country_code/states", h.handleStatesByCountry)
	e.GET("/countries/:country_code/states/:state_code", h.handleGetState)
	e.PUT("/countries/:country_code/states/:state_code", h.handleUpdateState)
	e.DELETE("/countries/:country_code/states/:state_code", h.handleDeleteState)

	e.GET("/states", h.handleListStates)
	e.POST("/states", h.handleCreateState)

	e.GET("/cities", h.handleListCities)
	e.POST("/cities", h.handleCreateCity)
	e.GET("/cities/by-state/:state_code", h.handleCitiesByState)
	e.GET("/cities/:id", h.handleGetCity)
	e.PUT("/cities/:id", h.handleUpdateCity)
	e.DELETE("/cities/:id", h.handleDeleteCity)

	e.GET("/parks", h.handleListParks)
	e.POST("/parks", h.handleCreatePark)
	e.GET("/parks/state/:state_code", h.handleParksByState)
	e.GET("/parks/by-name/:name", h.handleParksByName)
	e.GET("/parks/:code", h.handleGetPark)
	e.PUT("/parks/:code", h.handleUpdatePark)
	e.DELETE("/parks/:code", h.handleDeletePark)
}

func bindFields(c echo.Context) (domain.Document, error) {
	var fields domain.Document
	if err := c.Bind(&fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// queryFilter turns query parameters into an equality filter for the
// search operations; an empty map means an unfiltered listing.
func queryFilter(c echo.Context) domain.Document {
	params := c.QueryParams()
	if len(params) == 0 {
		return nil
	}
	filter := domain.Document{}
	for key, values := range params {
		if len(values) > 0 {
			filter[key] = values[0]
		}
	}
	return filter
}

// --- countries ---

func (h *Handler) handleListCountries(c echo.Context) error {
	ctx := c.Request().Context()
	if filter := queryFilter(c); filter != nil {
		docs, err := h.countries.Search(ctx, filter)
		if err != nil {
			return presenter.Error(c, err)
		}
		return presenter.OK(c, echo.Map{"Countries": docs})
	}
	docs, err := h.countries.All(ctx)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"Countries": docs})
}

func (h *Handler) handleCreateCountry(c echo.Context) error {
	fields, err := bindFields(c)
	if err != nil {
		return presenter.BadRequestMessage(c, "request body must contain JSON data")
	}
	code, err := h.countries.Create(c.Request().Context(), fields)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, echo.Map{"Countries": echo.Map{"code": code}})
}

func (h *Handler) handleGetCountry(c echo.Context) error {
	doc, err := h.countries.Get(c.Request().Context(), c.Param("code"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"Country": doc})
}

func (h *Handler) handleUpdateCountry(c echo.Context) error {
	ctx := c.Request().Context()
	fields, err := bindFields(c)
	if err != nil {
		return presenter.BadRequestMessage(c, "request body must contain JSON data")
	}
	code, err := h.countries.Update(ctx, c.Param("code"), fields)
	if err != nil {
		return presenter.Error(c, err)
	}
	updated, err := h.countries.Get(ctx, code)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"Country": updated})
}

func (h *Handler) handleDeleteCountry(c echo.Context) error {
	code := c.Param("code")
	if _, err := h.countries.Delete(c.Request().Context(), code); err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"Message": fmt.Sprintf("Country %s deleted", code)})
}

// --- states ---

func (h *Handler) handleListStates(c echo.Context) error {
	ctx := c.Request().Context()
	if filter := queryFilter(c); filter != nil {
		docs, err := h.states.Search(ctx, filter)
		if err != nil {
			return presenter.Error(c, err)
		}
		return presenter.OK(c, echo.Map{"States": docs})
	}
	docs, err := h.states.All(ctx)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"States": docs})
}

func (h *Handler) handleCreateState(c echo.Context) error {
	fields, err := bindFields(c)
	if err != nil {
		return presenter.BadRequestMessage(c, "request body must contain JSON data")
	}
	key, err := h.states.Create(c.Request().Context(), fields)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, echo.Map{"States": key})
}

func (h *Handler) handleStatesByCountry(c echo.Context) error {
	docs, err := h.states.ByCountry(c.Request().Context(), c.Param("country_code"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"States": docs})
}

func (h *Handler) handleGetState(c echo.Context) error {
	doc, err := h.states.Get(c.Request().Context(), c.Param("state_code"), c.Param("country_code"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"State": doc})
}

func (h *Handler) handleUpdateState(c echo.Context) error {
	ctx := c.Request().Context()
	fields, err := bindFields(c)
	if err != nil {
		return presenter.BadRequestMessage(c, "request body must contain JSON data")
	}
	key, err := h.states.Update(ctx, c.Param("state_code"), c.Param("country_code"), fields)
	if err != nil {
		return presenter.Error(c, err)
	}
	updated, err := h.states.Get(ctx, key.StateCode, key.CountryCode)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"State": updated})
}

func (h *Handler) handleDeleteState(c echo.Context) error {
	stateCode := c.Param("state_code")
	countryCode := c.Param("country_code")
	if _, err := h.states.Delete(c.Request().Context(), stateCode, countryCode); err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{
		"Message": fmt.Sprintf("State %s in %s deleted", stateCode, countryCode),
	})
}

// --- cities ---

func (h *Handler) handleListCities(c echo.Context) error {
	ctx := c.Request().Context()
	if filter := queryFilter(c); filter != nil {
		docs, err := h.cities.Search(ctx, filter)
		if err != nil {
			return presenter.Error(c, err)
		}
		return presenter.OK(c, echo.Map{"Cities": docs})
	}
	docs, err := h.cities.All(ctx)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"Cities": docs})
}

func (h *Handler) handleCreateCity(c echo.Context) error {
	fields, err := bindFields(c)
	if err != nil {
		return presenter.BadRequestMessage(c, "request body must contain JSON data")
	}
	id, err := h.cities.Create(c.Request().Context(), fields)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, echo.Map{"Cities": echo.Map{"_id": id}})
}

func (h *Handler) handleGetCity(c echo.Context) error {
	doc, err := h.cities.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"City": doc})
}

func (h *Handler) handleUpdateCity(c echo.Context) error {
	ctx := c.Request().Context()
	fields, err := bindFields(c)
	if err != nil {
		return presenter.BadRequestMessage(c, "request body must contain JSON data")
	}
	id, err := h.cities.Update(ctx, c.Param("id"), fields)
	if err != nil {
		return presenter.Error(c, err)
	}
	updated, err := h.cities.Get(ctx, id)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"City": updated})
}

func (h *Handler) handleDeleteCity(c echo.Context) error {
	id := c.Param("id")
	if _, err := h.cities.Delete(c.Request().Context(), id); err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"Message": fmt.Sprintf("City %s deleted", id)})
}

func (h *Handler) handleCitiesByState(c echo.Context) error {
	docs, err := h.cities.ByState(c.Request().Context(), c.Param("state_code"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"Cities": docs})
}

// --- parks ---

func (h *Handler) handleListParks(c echo.Context) error {
	ctx := c.Request().Context()
	if filter := queryFilter(c); filter != nil {
		docs, err := h.parks.Search(ctx, filter)
		if err != nil {
			return presenter.Error(c, err)
		}
		return presenter.OK(c, echo.Map{"Parks": docs})
	}
	docs, err := h.parks.All(ctx)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"Parks": docs})
}

func (h *Handler) handleCreatePark(c echo.Context) error {
	fields, err := bindFields(c)
	if err != nil {
		return presenter.BadRequestMessage(c, "request body must contain JSON data")
	}
	code, err := h.parks.Create(c.Request().Context(), fields)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, echo.Map{"Parks": echo.Map{"park_code": code}})
}

func (h *Handler) handleGetPark(c echo.Context) error {
	doc, err := h.parks.Get(c.Request().Context(), c.Param("code"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"Park": doc})
}

func (h *Handler) handleUpdatePark(c echo.Context) error {
	ctx := c.Request().Context()
	fields, err := bindFields(c)
	if err != nil {
		return presenter.BadRequestMessage(c, "request body must contain JSON data")
	}
	code, err := h.parks.Update(ctx, c.Param("code"), fields)
	if err != nil {
		return presenter.Error(c, err)
	}
	updated, err := h.parks.Get(ctx, code)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"Park": updated})
}

func (h *Handler) handleDeletePark(c echo.Context) error {
	code := c.Param("code")
	if _, err := h.parks.Delete(c.Request().Context(), code); err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"Message": fmt.Sprintf("Park %s deleted", code)})
}

func (h *Handler) handleParksByState(c echo.Context) error {
	docs, err := h.parks.ByState(c.Request().Context(), c.Param("state_code"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"Parks": docs})
}

func (h *Handler) handleParksByName(c echo.Context) error {
	docs, err := h.parks.ByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"Parks": docs})
}

// --- utility ---

func (h *Handler) handleHello(c echo.Context) error {
	return presenter.OK(c, echo.Map{"hello": "world"})
}

func (h *Handler) handleEndpoints(c echo.Context) error {
	seen := map[string]bool{}
	var paths []string
	for _, route := range c.Echo().Routes() {
		if !seen[route.Path] {
			seen[route.Path] = true
			paths = append(paths, route.Path)
		}
	}
	sort.Strings(paths)
	return presenter.OK(c, echo.Map{"Available endpoints": paths})
}

func (h *Handler) handleStatistics(c echo.Context) error {
	stats, err := h.stats.Collect(c.Request().Context())
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"Statistics": stats})
}

func (h *Handler) handleDeleteAllData(c echo.Context) error {
	result, err := h.stats.PurgeAll(c.Request().Context())
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{
		"Deleted": result,
		"Message": fmt.Sprintf("Deleted %d total items", result.Total()),
	})
}
