// Package graph provides the graph database client abstraction for the
// MSME platform.
//
// This package defines a generic GraphClient interface that can be implemented
// for different graph database backends. The primary implementation is for Neo4j,
// but the interface design allows for other graph databases to be integrated.
//
// # Architecture
//
// The package follows a clean interface-based design:
//
//   - GraphClient: Core interface defining graph database operations
//   - Neo4jClient: Production implementation using the Neo4j Go driver
//   - MockGraphClient: Test implementation for unit testing
//
// # Usage
//
// Basic usage with Neo4j:
//
//	config := graph.DefaultConfig()
//	config.URI = "bolt://localhost:7687"
//	config.Username = "neo4j"
//	config.Password = "password"
//
//	client, err := graph.NewNeo4jClient(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	if err := client.Connect(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close(ctx)
//
//	result, err := client.Query(ctx,
//	    "MATCH (c:Category) RETURN c.code AS code ORDER BY c.code",
//	    nil,
//	)
package graph
