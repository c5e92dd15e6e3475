package controller

import (
	"net/http"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"github.com/villagef/splot-ani-server/internal/dto"
	"github.com/villagef/splot-ani-server/pkg/errs"
	"github.com/villagef/splot-ani-server/pkg/response"
)

var graphqlOperations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "graphql_operations_total",
	Help: "GraphQL operations executed, by outcome.",
}, []string{"outcome"})

type HealthChecker interface {
	Healthy() bool
}

type Controller struct {
	schema *graphql.Schema
	health HealthChecker
}

func CreateGraphQLController(e *echo.Echo, g *echo.Group, schema *graphql.Schema, health HealthChecker) {
	c := Controller{
		schema: schema,
		health: health,
	}
	e.POST("/graphql", c.Query)
	g.GET("/ping", c.Ping)
	g.GET("/healthz", c.Health)
}

func (c *Controller) Query(e echo.Context) error {
	payload := dto.GraphQLRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "Query").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, err.Error())
	}

	if payload.Query == "" {
		return response.WriteErrorResponse(e, errs.ErrClient, "query must not be empty")
	}

	result := c.schema.Exec(e.Request().Context(), payload.Query, payload.OperationName, payload.Variables)

	outcome := "success"
	if len(result.Errors) > 0 {
		outcome = "error"
	}
	graphqlOperations.WithLabelValues(outcome).Inc()

	return e.JSON(http.StatusOK, result)
}

func (c *Controller) Ping(e echo.Context) error {
	return response.WriteSuccessResponse(e, "pong", nil)
}

func (c *Controller) Health(e echo.Context) error {
	if c.health != nil && !c.health.Healthy() {
		return response.WriteErrorResponse(e, errs.ErrStoreUnavailable, nil)
	}

	return response.WriteSuccessResponse(e, "healthy", nil)
}
