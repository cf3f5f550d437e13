package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/carbon-engine/internal/api/rest/dto"
	"github.com/feral-file/carbon-engine/internal/domain"
	"github.com/feral-file/carbon-engine/internal/emissions"
	"github.com/feral-file/carbon-engine/internal/factor"
	"github.com/feral-file/carbon-engine/internal/importer"
	"github.com/feral-file/carbon-engine/internal/ledger"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// ResolveFactors returns the factors matching a query, retried with the fallback when none match
	// POST /api/v1/factors/resolve
	ResolveFactors(c *gin.Context)

	// ListDivisionFactors returns the grid factors of a division
	// GET /api/v1/factors/divisions/:type/:id?year=<year>
	ListDivisionFactors(c *gin.Context)

	// ListLevels returns the distinct values of one hierarchy level under the given parents
	// GET /api/v1/factors/levels?level=<1-4>&scope=<scope>&level_1=<level_1>&level_2=<level_2>&level_3=<level_3>&year=<year>
	ListLevels(c *gin.Context)

	// GetFactor returns one factor by uuid
	// GET /api/v1/factors/id/:uuid
	GetFactor(c *gin.Context)

	// ListElectricityCountries lists the countries with grid factors
	// GET /api/v1/factors/electricity/countries?scope=<scope>&from_year=<year>&thru_year=<year>
	ListElectricityCountries(c *gin.Context)

	// ListElectricityStates lists the US states with utility data
	// GET /api/v1/factors/electricity/states
	ListElectricityStates(c *gin.Context)

	// ListElectricityUtilities lists the utilities of a US state
	// GET /api/v1/factors/electricity/states/:state/utilities?from_year=<year>&thru_year=<year>
	ListElectricityUtilities(c *gin.Context)

	// ComputeEmissions computes the emissions of an activity or of a utility usage
	// POST /api/v1/emissions/compute
	ComputeEmissions(c *gin.Context)

	// GetLastImport returns the bookkeeping of the latest import of a kind
	// GET /api/v1/imports/:kind
	GetLastImport(c *gin.Context)

	// GetBalance returns one holder's balance of an asset
	// GET /api/v1/balances/:kind/:holder/:asset
	GetBalance(c *gin.Context)

	// ListBalances returns a page of balances of a kind
	// GET /api/v1/balances/:kind?holder=<holder>&filters=<json>&limit=<limit>&offset=<offset>
	ListBalances(c *gin.Context)

	// Issue credits a holder with newly issued quantity
	// POST /api/v1/ledger/:kind/issue
	Issue(c *gin.Context)

	// Transfer moves quantity away from a holder
	// POST /api/v1/ledger/:kind/transfer
	Transfer(c *gin.Context)

	// Retire retires a holder's quantity
	// POST /api/v1/ledger/:kind/retire
	Retire(c *gin.Context)

	// SetTrackerStatus sets the status of a holder's tracker
	// PUT /api/v1/trackers/:tracker/holders/:holder/status
	SetTrackerStatus(c *gin.Context)

	// AuditAsset checks the quantity conservation of an asset
	// GET /api/v1/assets/:kind/:id/audit
	AuditAsset(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	debug     bool
	resolver  factor.Resolver
	emissions emissions.Service
	ledger    ledger.Service
	importer  importer.Importer
}

// NewHandler creates a new REST API handler
func NewHandler(debug bool, resolver factor.Resolver, emissionsService emissions.Service, ledgerService ledger.Service, imp importer.Importer) Handler {
	return &handler{
		debug:     debug,
		resolver:  resolver,
		emissions: emissionsService,
		ledger:    ledgerService,
		importer:  imp,
	}
}

// ResolveFactors returns the factors matching a query
func (h *handler) ResolveFactors(c *gin.Context) {
	var req dto.ResolveFactorsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	factors, err := h.resolver.Resolve(c.Request.Context(), req.Query, req.Fallback)
	if err != nil {
		respondError(c, err, "Failed to resolve factors")
		return
	}

	c.JSON(http.StatusOK, dto.MapFactorsToDTO(factors))
}

// ListDivisionFactors returns the grid factors of a division
func (h *handler) ListDivisionFactors(c *gin.Context) {
	division := domain.Division{Type: c.Param("type"), ID: c.Param("id")}

	var year *int
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			respondValidationError(c, "Invalid year")
			return
		}
		year = &y
	}

	factors, err := h.resolver.ResolveByDivision(c.Request.Context(), division, year)
	if err != nil {
		respondError(c, err, "Failed to resolve division factors")
		return
	}

	c.JSON(http.StatusOK, dto.MapFactorsToDTO(factors))
}

// ListLevels returns the distinct values of one hierarchy level
func (h *handler) ListLevels(c *gin.Context) {
	params, err := ParseLevelsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	values, err := h.resolver.Levels(c.Request.Context(), params.Level, params.Query())
	if err != nil {
		respondError(c, err, "Failed to list levels")
		return
	}
	if values == nil {
		values = []string{}
	}

	c.JSON(http.StatusOK, dto.LevelsResponse{Level: params.Level, Values: values})
}

// GetFactor returns one factor by uuid
func (h *handler) GetFactor(c *gin.Context) {
	f, err := h.resolver.Factor(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		respondError(c, err, "Failed to get factor")
		return
	}

	c.JSON(http.StatusOK, dto.MapFactorToDTO(f))
}

// ListElectricityCountries lists the countries with grid factors
func (h *handler) ListElectricityCountries(c *gin.Context) {
	params, err := ParseYearRangeQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	countries, err := h.resolver.ElectricityCountries(c.Request.Context(), params.Scope, params.FromYear, params.ThruYear)
	if err != nil {
		respondError(c, err, "Failed to list electricity countries")
		return
	}
	respondValues(c, countries)
}

// ListElectricityStates lists the US states with utility data
func (h *handler) ListElectricityStates(c *gin.Context) {
	states, err := h.resolver.ElectricityStates(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list electricity states")
		return
	}
	respondValues(c, states)
}

// ListElectricityUtilities lists the utilities of a US state
func (h *handler) ListElectricityUtilities(c *gin.Context) {
	params, err := ParseYearRangeQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	items, err := h.resolver.ElectricityUtilities(c.Request.Context(), c.Param("state"), params.FromYear, params.ThruYear)
	if err != nil {
		respondError(c, err, "Failed to list electricity utilities")
		return
	}

	c.JSON(http.StatusOK, dto.MapUtilitiesToDTO(items))
}

func respondValues(c *gin.Context, values []string) {
	if values == nil {
		values = []string{}
	}
	c.JSON(http.StatusOK, dto.ValuesResponse{Values: values})
}

// ComputeEmissions computes the emissions of an activity or of a utility usage
func (h *handler) ComputeEmissions(c *gin.Context) {
	var req dto.ComputeEmissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	var result *domain.EmissionsResult
	var err error
	if req.Activity != nil {
		result, err = h.emissions.ActivityEmissions(c.Request.Context(), *req.Activity)
	} else {
		result, err = h.emissions.UsageEmissions(c.Request.Context(), *req.Usage)
	}
	if err != nil {
		respondError(c, err, "Failed to compute emissions")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetLastImport returns the bookkeeping of the latest import of a kind
func (h *handler) GetLastImport(c *gin.Context) {
	kind := importer.Kind(c.Param("kind"))
	if kind != importer.KindFactors && kind != importer.KindUtilities {
		respondBadRequest(c, "Unknown import kind", string(kind))
		return
	}

	result, err := h.importer.LastImport(c.Request.Context(), kind)
	if err != nil {
		respondInternalError(c, err, "Failed to get last import")
		return
	}
	if result == nil {
		respondNotFound(c, "No import recorded", string(kind))
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBalance returns one holder's balance of an asset
func (h *handler) GetBalance(c *gin.Context) {
	kind := domain.AssetKind(c.Param("kind"))
	assetID, err := strconv.ParseInt(c.Param("asset"), 10, 64)
	if err != nil {
		respondValidationError(c, "Invalid asset ID")
		return
	}

	balance, err := h.ledger.Balance(c.Request.Context(), kind, c.Param("holder"), assetID)
	if err != nil {
		respondError(c, err, "Failed to get balance")
		return
	}
	if balance == nil {
		respondNotFound(c, "Balance not found")
		return
	}

	c.JSON(http.StatusOK, balance)
}

// ListBalances returns a page of balances of a kind
func (h *handler) ListBalances(c *gin.Context) {
	params, err := ParseListBalancesQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	filter, err := params.Predicate()
	if err != nil {
		respondError(c, err, "Invalid filters")
		return
	}

	page, err := h.ledger.List(c.Request.Context(), domain.AssetKind(c.Param("kind")), params.Offset, params.Limit, filter)
	if err != nil {
		respondError(c, err, "Failed to list balances")
		return
	}

	c.JSON(http.StatusOK, page)
}

type ledgerOperation func(c *gin.Context, kind domain.AssetKind, req ledger.Request) (*ledger.Receipt, error)

// Issue credits a holder with newly issued quantity
func (h *handler) Issue(c *gin.Context) {
	h.mutate(c, "Failed to issue", func(c *gin.Context, kind domain.AssetKind, req ledger.Request) (*ledger.Receipt, error) {
		return h.ledger.Issue(c.Request.Context(), kind, req)
	})
}

// Transfer moves quantity away from a holder
func (h *handler) Transfer(c *gin.Context) {
	h.mutate(c, "Failed to transfer", func(c *gin.Context, kind domain.AssetKind, req ledger.Request) (*ledger.Receipt, error) {
		return h.ledger.Transfer(c.Request.Context(), kind, req)
	})
}

// Retire retires a holder's quantity
func (h *handler) Retire(c *gin.Context) {
	h.mutate(c, "Failed to retire", func(c *gin.Context, kind domain.AssetKind, req ledger.Request) (*ledger.Receipt, error) {
		return h.ledger.Retire(c.Request.Context(), kind, req)
	})
}

// mutate binds a ledger request and runs op. A replayed reference answers 200 instead of 201.
func (h *handler) mutate(c *gin.Context, message string, op ledgerOperation) {
	var req ledger.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	receipt, err := op(c, domain.AssetKind(c.Param("kind")), req)
	if err != nil {
		respondError(c, err, message)
		return
	}

	respondReceipt(c, receipt)
}

// SetTrackerStatus sets the status of a holder's tracker
func (h *handler) SetTrackerStatus(c *gin.Context) {
	trackerID, err := strconv.ParseInt(c.Param("tracker"), 10, 64)
	if err != nil {
		respondValidationError(c, "Invalid tracker ID")
		return
	}

	var req dto.TrackerStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	receipt, err := h.ledger.SetTrackerStatus(c.Request.Context(), c.Param("holder"), trackerID, req.Status, req.Reference)
	if err != nil {
		respondError(c, err, "Failed to set tracker status")
		return
	}

	respondReceipt(c, receipt)
}

// AuditAsset checks the quantity conservation of an asset
func (h *handler) AuditAsset(c *gin.Context) {
	assetID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondValidationError(c, "Invalid asset ID")
		return
	}

	report, err := h.ledger.Audit(c.Request.Context(), domain.AssetKind(c.Param("kind")), assetID)
	if err != nil {
		respondError(c, err, "Failed to audit asset")
		return
	}

	c.JSON(http.StatusOK, report)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Service: "carbon-engine-api",
	})
}

func respondReceipt(c *gin.Context, receipt *ledger.Receipt) {
	status := http.StatusCreated
	if !receipt.Applied {
		status = http.StatusOK
	}
	c.JSON(status, receipt)
}
