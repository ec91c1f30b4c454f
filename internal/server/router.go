// Package server wires the GraphQL schema to its HTTP surface: the
// /graphql endpoint (POST and GET, with the exploration UI), health
// check and Prometheus metrics.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	graphql "github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"

	"ocureg/internal/metrics"
)

// Router holds the parsed schema and exposes the HTTP handler
type Router struct {
	schema *graphql.Schema
	log    *zap.Logger
}

// NewRouter creates a router serving the given schema
func NewRouter(schema *graphql.Schema, log *zap.Logger) *Router {
	return &Router{schema: schema, log: log}
}

// graphqlRequest is the standard GraphQL HTTP request body
type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler builds the gin engine with all routes and middleware
func (r *Router) Handler() http.Handler {
	engine := gin.New()
	engine.Use(requestID())
	engine.Use(r.requestLogger())
	engine.Use(gin.Recovery())
	engine.Use(cors())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	engine.POST("/graphql", r.handlePost)
	engine.GET("/graphql", r.handleGet)

	return engine
}

// handlePost executes a JSON-body GraphQL request. Executed operations
// always answer 200 with a {data, errors} envelope; only a malformed
// request body is an HTTP-level error.
func (r *Router) handlePost(c *gin.Context) {
	var req graphqlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"errors": []gin.H{{"message": "malformed request body: " + err.Error()}},
		})
		return
	}
	r.exec(c, req)
}

// handleGet executes a query passed via URL parameters, or serves the
// exploration UI when no query is present.
func (r *Router) handleGet(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(graphiqlPage))
		return
	}

	req := graphqlRequest{
		Query:         query,
		OperationName: c.Query("operationName"),
	}
	if raw := c.Query("variables"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"errors": []gin.H{{"message": "malformed variables parameter: " + err.Error()}},
			})
			return
		}
	}
	r.exec(c, req)
}

func (r *Router) exec(c *gin.Context, req graphqlRequest) {
	resp := r.schema.Exec(c.Request.Context(), req.Query, req.OperationName, req.Variables)
	c.JSON(http.StatusOK, resp)
}

// requestID tags every request with a v4 uuid, echoed in X-Request-ID
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// requestLogger is a custom logger middleware for Gin
func (r *Router) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		r.log.Info("HTTP Request",
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
			zap.String("request_id", c.GetString("request_id")),
		)
	}
}

// cors allows browser clients; the exploration UI runs in a browser
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
