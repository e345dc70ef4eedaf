// Package server exposes a trained model over HTTP.
package server

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	tweets "github.com/willmanchac/tweetsClassifier"
)

// maxTextLength bounds the text accepted by the classify endpoint.
const maxTextLength = 64 * 1024

// API serves classifications from a single read-only model.
type API struct {
	model      *tweets.Model
	classifier *tweets.Classifier
	logger     *slog.Logger
}

// NewAPI wraps model. The model must be fully trained; it is only read.
func NewAPI(model *tweets.Model, logger *slog.Logger) *API {
	if logger == nil {
		logger = slog.Default()
	}
	return &API{
		model:      model,
		classifier: model.Classifier(tweets.WithClassifierLogger(logger)),
		logger:     logger,
	}
}

// SetupRoutes registers the API's handlers on router.
func SetupRoutes(router *gin.Engine, api *API) {
	router.GET("/healthz", api.HealthHandler)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/corpus", api.CorpusHandler)      // Corpus size and vocabulary
		v1.POST("/classify", api.ClassifyHandler) // Classify one text
	}
}

// NewRouter returns a gin engine with recovery and the API routes.
func NewRouter(api *API) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(api.logger))
	SetupRoutes(router, api)
	return router
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		logger.Debug("http request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
		)
	}
}

// HealthHandler reports liveness.
func (api *API) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "model": api.model.Name})
}

// CorpusResponse describes the loaded corpus.
type CorpusResponse struct {
	Model              string `json:"model"`
	PositiveSequences  int    `json:"positive_sequences"`
	NegativeSequences  int    `json:"negative_sequences"`
	PositiveVocabulary int    `json:"positive_vocabulary"`
	NegativeVocabulary int    `json:"negative_vocabulary"`
	Stopwords          int    `json:"stopwords"`
}

// CorpusHandler returns corpus statistics.
func (api *API) CorpusHandler(c *gin.Context) {
	pos, neg := api.model.Corpus.Size()
	posVocab, negVocab := api.model.Corpus.Vocabulary()
	c.JSON(http.StatusOK, CorpusResponse{
		Model:              api.model.Name,
		PositiveSequences:  pos,
		NegativeSequences:  neg,
		PositiveVocabulary: posVocab,
		NegativeVocabulary: negVocab,
		Stopwords:          len(api.model.Stopwords),
	})
}

// ClassifyRequest is the body of POST /api/v1/classify.
type ClassifyRequest struct {
	Text string `json:"text"`
}

// SentenceResult is the classification of one sentence.
type SentenceResult struct {
	Text         string   `json:"text"`
	Label        string   `json:"label"`
	PositiveHits int      `json:"positive_hits"`
	NegativeHits int      `json:"negative_hits"`
	Tokens       []string `json:"tokens"`
}

// ClassifyResponse is the result of POST /api/v1/classify.
type ClassifyResponse struct {
	Label        string           `json:"label"`
	Sentiment    string           `json:"sentiment"`
	PositiveHits int              `json:"positive_hits"`
	NegativeHits int              `json:"negative_hits"`
	Tokens       []string         `json:"tokens"`
	Sentences    []SentenceResult `json:"sentences"`
}

// ClassifyHandler classifies the text in the request body.
func (api *API) ClassifyHandler(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON, "Invalid JSON in request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "text must not be empty")
		return
	}
	if len(req.Text) > maxTextLength {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "text exceeds maximum length")
		return
	}

	doc, err := tweets.NewDocument(req.Text, tweets.UsingTokenizer(api.model.Tokenizer()))
	if err != nil {
		api.logger.Error("failed to build document", slog.Any("error", err))
		SendError(c, http.StatusInternalServerError, ErrorCodeInternalError, "Internal error during classification: "+err.Error())
		return
	}

	exp := api.classifier.Explain(doc)
	resp := ClassifyResponse{
		Label:        exp.Label.String(),
		Sentiment:    exp.Label.Name(),
		PositiveHits: exp.Score.PositiveHits,
		NegativeHits: exp.Score.NegativeHits,
		Tokens:       exp.Tokens.Strings(),
		Sentences:    make([]SentenceResult, 0, len(exp.Sentences)),
	}
	for _, s := range exp.Sentences {
		resp.Sentences = append(resp.Sentences, SentenceResult{
			Text:         s.Sentence.Text,
			Label:        s.Label.String(),
			PositiveHits: s.Score.PositiveHits,
			NegativeHits: s.Score.NegativeHits,
			Tokens:       s.Tokens.Strings(),
		})
	}
	c.JSON(http.StatusOK, resp)
}
