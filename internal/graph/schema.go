// Package graph binds the product GraphQL schema to its resolvers.
package graph

import (
	"context"
	_ "embed"
	"fmt"
	"runtime/debug"

	graphql "github.com/graph-gophers/graphql-go"
	gqlotel "github.com/graph-gophers/graphql-go/trace/otel"
	"github.com/rs/zerolog/log"
)

//go:embed schema.graphql
var schemaString string

// NewSchema parses the schema against resolver. Every field declared on
// Query, Mutation and Product must have a matching resolver method, otherwise
// an error is returned and nothing is served.
func NewSchema(resolver interface{}, maxDepth int) (*graphql.Schema, error) {
	schema, err := graphql.ParseSchema(schemaString, resolver,
		graphql.MaxDepth(maxDepth),
		graphql.Tracer(gqlotel.DefaultTracer()),
		graphql.Logger(panicLogger{}),
	)
	if err != nil {
		return nil, fmt.Errorf("parsing graphql schema: %w", err)
	}

	return schema, nil
}

type panicLogger struct{}

func (panicLogger) LogPanic(ctx context.Context, value interface{}) {
	log.Ctx(ctx).Error().Str("component", "graphql").
		Interface("panic", value).
		Bytes("stack", debug.Stack()).
		Msg("resolver panicked")
}
