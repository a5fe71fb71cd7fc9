package city

import (
	"net/http"

	"expansion/internal/domain"
	"expansion/pkg/envelope"
	"expansion/validation"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewCityHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// ListCitiesHandler godoc
// @Summary Lista as cidades.
// @Description Retorna todas as cidades ordenadas por população.
// @Tags Cities
// @Produce json
// @Success 200 {object} envelope.Response "Lista de cidades"
// @Failure 500 {object} envelope.Response "Erro interno"
// @Router /api/cities [get]
func (p *Handler) ListCitiesHandler(c echo.Context) error {
	result, err := p.InterfaceService.ListCitiesService(c.Request().Context())
	if err != nil {
		return envelope.Error(c, err)
	}
	return envelope.OK(c, result)
}

// GetCityHandler godoc
// @Summary Busca uma cidade.
// @Tags Cities
// @Produce json
// @Param id path int true "Código IBGE"
// @Success 200 {object} envelope.Response "Cidade"
// @Failure 404 {object} envelope.Response "Cidade não encontrada"
// @Router /api/cities/{id} [get]
func (p *Handler) GetCityHandler(c echo.Context) error {
	id, err := cityID(c)
	if err != nil {
		return envelope.Fail(c, http.StatusBadRequest, err)
	}
	result, err := p.InterfaceService.GetCityService(c.Request().Context(), id)
	if err != nil {
		return envelope.Error(c, err)
	}
	return envelope.OK(c, result)
}

// BulkUpsertHandler godoc
// @Summary Grava várias cidades.
// @Description Cria ou atualiza as cidades enviadas em uma única transação.
// @Tags Cities
// @Accept json
// @Produce json
// @Param request body BulkCityRequest true "Cidades"
// @Success 200 {object} envelope.Response "Cidades gravadas"
// @Failure 400 {object} envelope.Response "Requisição inválida"
// @Router /api/cities/bulk [post]
// @Security ApiKeyAuth
func (p *Handler) BulkUpsertHandler(c echo.Context) error {
	var request BulkCityRequest
	if err := c.Bind(&request); err != nil {
		return envelope.Fail(c, http.StatusBadRequest, err)
	}
	if err := validation.Validate(request); err != nil {
		return envelope.Fail(c, http.StatusBadRequest, err)
	}

	result, err := p.InterfaceService.UpsertCitiesService(c.Request().Context(), request.Cities)
	if err != nil {
		return envelope.Error(c, err)
	}
	return envelope.OK(c, result)
}

// UpdateCityHandler godoc
// @Summary Atualiza uma cidade.
// @Tags Cities
// @Accept json
// @Produce json
// @Param id path int true "Código IBGE"
// @Param request body CityRequest true "Cidade"
// @Success 200 {object} envelope.Response "Cidade atualizada"
// @Failure 400 {object} envelope.Response "Requisição inválida"
// @Router /api/cities/{id} [put]
// @Security ApiKeyAuth
func (p *Handler) UpdateCityHandler(c echo.Context) error {
	id, err := cityID(c)
	if err != nil {
		return envelope.Fail(c, http.StatusBadRequest, err)
	}
	var request CityRequest
	if err := c.Bind(&request); err != nil {
		return envelope.Fail(c, http.StatusBadRequest, err)
	}
	request.ID = id
	if err := validation.Validate(request); err != nil {
		return envelope.Fail(c, http.StatusBadRequest, err)
	}

	result, err := p.InterfaceService.UpsertCitiesService(c.Request().Context(), []CityRequest{request})
	if err != nil {
		return envelope.Error(c, err)
	}
	return envelope.OK(c, result[0])
}

// UpdateStatusHandler godoc
// @Summary Altera o status de uma cidade.
// @Description Aceita NotServed, Planning, Expansion ou Consolidated.
// @Tags Cities
// @Accept json
// @Produce json
// @Param id path int true "Código IBGE"
// @Param request body UpdateStatusRequest true "Status"
// @Success 200 {object} envelope.Response "Cidade atualizada"
// @Failure 400 {object} envelope.Response "Status inválido"
// @Failure 404 {object} envelope.Response "Cidade não encontrada"
// @Router /api/cities/{id}/status [patch]
// @Security ApiKeyAuth
func (p *Handler) UpdateStatusHandler(c echo.Context) error {
	id, err := cityID(c)
	if err != nil {
		return envelope.Fail(c, http.StatusBadRequest, err)
	}
	var request UpdateStatusRequest
	if err := c.Bind(&request); err != nil {
		return envelope.Fail(c, http.StatusBadRequest, err)
	}
	if err := validation.Validate(request); err != nil {
		return envelope.Fail(c, http.StatusBadRequest, domain.ErrInvalidStatus)
	}

	result, err := p.InterfaceService.UpdateStatusService(c.Request().Context(), id, domain.Status(request.Status))
	if err != nil {
		return envelope.Error(c, err)
	}
	return envelope.OK(c, result)
}

// ProjectionsHandler godoc
// @Summary Projeções de mercado de uma cidade.
// @Description Potencial por cenário, receita, projeções financeiras, roadmap e metas graduais.
// @Tags Cities
// @Produce json
// @Param id path int true "Código IBGE"
// @Param penetration query number false "Penetração alvo do roadmap (padrão 0.10)"
// @Success 200 {object} envelope.Response "Projeções"
// @Failure 404 {object} envelope.Response "Cidade não encontrada"
// @Router /api/cities/{id}/projections [get]
func (p *Handler) ProjectionsHandler(c echo.Context) error {
	id, err := cityID(c)
	if err != nil {
		return envelope.Fail(c, http.StatusBadRequest, err)
	}
	var penetration float64
	if raw := c.QueryParam("penetration"); raw != "" {
		penetration, err = validation.ParseStringToFloat(raw)
		if err != nil {
			return envelope.Fail(c, http.StatusBadRequest, err)
		}
	}

	result, err := p.InterfaceService.ProjectionsService(c.Request().Context(), id, penetration)
	if err != nil {
		return envelope.Error(c, err)
	}
	return envelope.OK(c, result)
}

// AveragesHandler godoc
// @Summary Médias estaduais.
// @Tags Cities
// @Produce json
// @Success 200 {object} envelope.Response "Médias"
// @Router /api/cities/averages [get]
func (p *Handler) AveragesHandler(c echo.Context) error {
	result, err := p.InterfaceService.AveragesService(c.Request().Context())
	if err != nil {
		return envelope.Error(c, err)
	}
	return envelope.OK(c, result)
}

func cityID(c echo.Context) (int64, error) {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, domain.ErrCityNotFound
	}
	return id, nil
}
