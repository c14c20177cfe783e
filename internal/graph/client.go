package graph

import (
	"context"
	"time"

	"github.com/manoharask/msme/internal/types"
)

// GraphClient provides an interface for graph database operations.
// Implementations must be thread-safe for concurrent access.
type GraphClient interface {
	// Connect establishes a connection to the graph database.
	// Returns an error if connection fails.
	Connect(ctx context.Context) error

	// Close releases all resources and closes the database connection.
	// Should be called when the client is no longer needed.
	Close(ctx context.Context) error

	// Health returns the current health status of the graph database connection.
	Health(ctx context.Context) types.HealthStatus

	// Query executes a read-only Cypher query with the given parameters.
	// Returns QueryResult containing the result set or an error.
	Query(ctx context.Context, cypher string, params map[string]any) (QueryResult, error)

	// Write executes a Cypher query in a write transaction.
	// Used for node and relationship upserts and deletes.
	Write(ctx context.Context, cypher string, params map[string]any) (QueryResult, error)
}

// QueryResult represents the result of a Cypher query execution.
// It provides access to records, columns, and summary information.
type QueryResult struct {
	// Records contains the result rows as maps of column name to value.
	Records []map[string]any

	// Columns contains the names of the columns in the result set.
	Columns []string

	// Summary contains metadata about the query execution.
	Summary QuerySummary
}

// Single returns the first record of the result, or nil if the result is empty.
func (r QueryResult) Single() map[string]any {
	if len(r.Records) == 0 {
		return nil
	}
	return r.Records[0]
}

// QuerySummary provides metadata about query execution.
type QuerySummary struct {
	// ExecutionTime is the duration of query execution.
	ExecutionTime time.Duration

	// NodesCreated is the number of nodes created by the query.
	NodesCreated int

	// NodesDeleted is the number of nodes deleted by the query.
	NodesDeleted int

	// RelationshipsCreated is the number of relationships created.
	RelationshipsCreated int

	// RelationshipsDeleted is the number of relationships deleted.
	RelationshipsDeleted int

	// PropertiesSet is the number of properties set.
	PropertiesSet int
}

// GraphClientConfig contains configuration options for graph database clients.
type GraphClientConfig struct {
	// URI is the connection URI for the graph database.
	// For Neo4j, use:
	//   - "bolt://host:port" for unencrypted connections
	//   - "bolt+s://host:port" for TLS encrypted connections
	//   - "neo4j://" or "neo4j+s://" for routing
	URI string

	// Username for authentication.
	Username string

	// Password for authentication.
	Password string

	// Database name to connect to.
	// Empty string uses the default database.
	Database string

	// MaxConnectionPoolSize limits the number of connections in the pool.
	// Zero or negative values use the driver default.
	MaxConnectionPoolSize int

	// ConnectionTimeout is the maximum time to wait for a connection.
	ConnectionTimeout time.Duration

	// MaxTransactionRetryTime is the maximum time to retry failed transactions.
	MaxTransactionRetryTime time.Duration
}

// DefaultConfig returns a GraphClientConfig with sensible defaults.
func DefaultConfig() GraphClientConfig {
	return GraphClientConfig{
		URI:                     "bolt://localhost:7687",
		Username:                "neo4j",
		Password:                "password",
		Database:                "",
		MaxConnectionPoolSize:   50,
		ConnectionTimeout:       30 * time.Second,
		MaxTransactionRetryTime: 30 * time.Second,
	}
}

// Validate checks if the configuration is valid.
func (c GraphClientConfig) Validate() error {
	if c.URI == "" {
		return types.NewError(ErrCodeGraphInvalidConfig, "URI cannot be empty")
	}
	if c.Username == "" {
		return types.NewError(ErrCodeGraphInvalidConfig, "Username cannot be empty")
	}
	if c.Password == "" {
		return types.NewError(ErrCodeGraphInvalidConfig, "Password cannot be empty")
	}
	if c.ConnectionTimeout <= 0 {
		return types.NewError(ErrCodeGraphInvalidConfig, "ConnectionTimeout must be positive")
	}
	if c.MaxTransactionRetryTime <= 0 {
		return types.NewError(ErrCodeGraphInvalidConfig, "MaxTransactionRetryTime must be positive")
	}
	return nil
}
