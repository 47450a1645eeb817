package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-morph/services"
)

// API holds dependencies for API handlers, primarily the analysis engine.
type API struct {
	engine        services.MorphologicalAnalyzer
	maxInputRunes int
}

// NewAPI creates a new API handler structure.
func NewAPI(engine services.MorphologicalAnalyzer, maxInputRunes int) *API {
	return &API{
		engine:        engine,
		maxInputRunes: maxInputRunes,
	}
}

// SetupRoutes defines all the API routes for the analyzer.
func SetupRoutes(router *gin.Engine, engine services.MorphologicalAnalyzer, maxInputRunes int) {
	apiHandler := NewAPI(engine, maxInputRunes)

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Analysis route
	router.POST("/analyze", apiHandler.AnalyzeHandler)

	// Dictionary introspection routes
	router.GET("/pos", apiHandler.GetPartOfSpeechHandler)
	router.GET("/dictionaries", apiHandler.ListDictionariesHandler)
}

// AnalyzeHandler handles the request to analyze a text.
// Request Body: AnalyzeRequest
func (api *API) AnalyzeHandler(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	if result := ValidateAnalyzeRequest(&req, api.maxInputRunes); !result.Valid {
		SendStructuredValidationError(c, result)
		return
	}

	result, err := api.engine.Analyze(services.AnalysisQuery{
		Text:       req.Text,
		Mode:       req.Mode,
		Projection: req.Projection,
	})
	if err != nil {
		SendAnalysisError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPartOfSpeechHandler returns the merged part-of-speech tag table.
func (api *API) GetPartOfSpeechHandler(c *gin.Context) {
	tags := api.engine.PartOfSpeechTags()
	c.JSON(http.StatusOK, gin.H{
		"tags":  tags,
		"total": len(tags),
	})
}

// ListDictionariesHandler returns the loaded dictionaries in load order.
func (api *API) ListDictionariesHandler(c *gin.Context) {
	dicts := api.engine.Dictionaries()
	c.JSON(http.StatusOK, gin.H{
		"dictionaries": dicts,
		"total":        len(dicts),
	})
}

// HealthCheckHandler provides a simple health check endpoint.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
