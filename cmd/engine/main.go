package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"service-validation/internal/analysis"
	"service-validation/internal/domain"
	"service-validation/internal/infrastructure"
	"service-validation/internal/infrastructure/diff"
	"service-validation/internal/infrastructure/jsonlogic"
	infrayaml "service-validation/internal/infrastructure/yaml"
	"service-validation/internal/interfaces"
	"service-validation/internal/usecase"
	"service-validation/internal/validation"
)

type validateRequest struct {
	Design          map[string]any `json:"design"`
	BuildingType    string         `json:"building_type"`
	Region          string         `json:"region"`
	ValidationTypes []string       `json:"validation_types"`
}

type patchRequest struct {
	Design       map[string]any   `json:"design"`
	Patch        []map[string]any `json:"patch"`
	BuildingType string           `json:"building_type"`
	Region       string           `json:"region"`
}

type analyzeRequest struct {
	AnalysisType string `json:"analysis_type"`
	BuildingType string `json:"building_type"`
	Region       string `json:"region"`
}

func main() {
	e := echo.New()

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodPost, http.MethodPatch, http.MethodOptions, http.MethodGet},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAccept},
	}))

	// RULESET_FILE points at a single YAML table; RULESET_DIR at a
	// directory of versioned <version>_rulesets.json files. Unset means
	// the compiled-in defaults.
	var loader interfaces.RuleTableLoader
	switch {
	case os.Getenv("RULESET_FILE") != "":
		loader = &infrayaml.Loader{Path: os.Getenv("RULESET_FILE")}
	case os.Getenv("RULESET_DIR") != "":
		loader = infrastructure.NewFileRuleTableLoader(os.Getenv("RULESET_DIR"))
	}

	svc, err := usecase.NewValidationService(context.Background(), loader, "v1", jsonlogic.NewExecutor())
	if err != nil {
		e.Logger.Fatal(err)
	}

	store := newMemoryStore()
	aggregator := analysis.NewAggregator(
		store,
		validation.NewGeometryEvaluator(domain.DefaultGeometryLimits()),
		validation.NewCodeEvaluator(svc.RuleTable(), jsonlogic.NewExecutor()),
	)

	e.POST("/designs/validate", handleValidate(svc))
	e.POST("/designs/validate/quick", handleQuickValidate(svc))
	e.PATCH("/designs", handlePatch(svc))
	e.POST("/projects", handleCreateProject(store))
	e.POST("/projects/:id/analyze", handleAnalyze(aggregator))

	e.Logger.Fatal(e.Start(":8080"))
}

func handleValidate(svc *usecase.ValidationService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req validateRequest
		if err := c.Bind(&req); err != nil {
			return fail(c, http.StatusBadRequest, "invalid request body")
		}
		res := svc.ValidateComprehensive(req.Design, defaulted(req.BuildingType, "residential"), defaulted(req.Region, "TR"), req.ValidationTypes)
		return ok(c, res)
	}
}

func handleQuickValidate(svc *usecase.ValidationService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req validateRequest
		if err := c.Bind(&req); err != nil {
			return fail(c, http.StatusBadRequest, "invalid request body")
		}
		return ok(c, svc.ValidateQuick(req.Design, defaulted(req.BuildingType, "residential")))
	}
}

// handlePatch applies an RFC 6902 patch to a design, revalidates it and
// reports which top-level sections the patch touched.
func handlePatch(svc *usecase.ValidationService) echo.HandlerFunc {
	differ := &diff.Differ{}
	return func(c echo.Context) error {
		var req patchRequest
		if err := c.Bind(&req); err != nil {
			return fail(c, http.StatusBadRequest, "invalid patch request")
		}

		patchBytes, err := json.Marshal(req.Patch)
		if err != nil {
			return fail(c, http.StatusBadRequest, "invalid patch document")
		}
		updated, err := infrastructure.ApplyDesignPatch(req.Design, patchBytes)
		if err != nil {
			return fail(c, http.StatusUnprocessableEntity, err.Error())
		}

		res := svc.ValidateComprehensive(updated, defaulted(req.BuildingType, "residential"), defaulted(req.Region, "TR"), nil)
		return ok(c, map[string]any{
			"design":     updated,
			"delta":      differ.Diff(req.Design, updated),
			"validation": res,
		})
	}
}

func handleCreateProject(store *memoryStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req validateRequest
		if err := c.Bind(&req); err != nil {
			return fail(c, http.StatusBadRequest, "invalid request body")
		}
		id := fmt.Sprintf("PRJ-%s", time.Now().Format("20060102150405.000"))
		store.put(id, req.Design)
		return c.JSON(http.StatusCreated, map[string]any{"success": true, "data": map[string]any{"project_id": id}})
	}
}

func handleAnalyze(aggregator *analysis.Aggregator) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req analyzeRequest
		if err := c.Bind(&req); err != nil {
			return fail(c, http.StatusBadRequest, "invalid request body")
		}

		res, err := aggregator.AnalyzeProject(c.Request().Context(), c.Param("id"), req.AnalysisType, analysis.Options{
			BuildingType: req.BuildingType,
			Region:       req.Region,
		})
		if err != nil {
			if errors.Is(err, analysis.ErrInvalidAnalysisType) {
				return fail(c, http.StatusBadRequest, err.Error())
			}
			return fail(c, http.StatusNotFound, err.Error())
		}
		return ok(c, res)
	}
}

func ok(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": data})
}

func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]any{"success": false, "error": msg})
}

func defaulted(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// memoryStore is a throwaway in-process project store for the demo server;
// real deployments plug a persistence adapter into the same port.
type memoryStore struct {
	mu       sync.RWMutex
	projects map[string]map[string]any
}

func newMemoryStore() *memoryStore {
	return &memoryStore{projects: make(map[string]map[string]any)}
}

func (m *memoryStore) put(id string, payload map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.projects[id] = payload
}

func (m *memoryStore) Get(ctx context.Context, projectID string) (map[string]any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.projects[projectID]
	if !ok {
		return nil, fmt.Errorf("project %s not found", projectID)
	}
	return p, nil
}
