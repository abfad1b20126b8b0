// Package api runs the coffee maker HTTP service.
//
// It is a thin layer over pkg/server: it configures structured logging,
// builds the machine (optionally from the file named by COFFEEMAKER_CONFIG)
// and registers the machine's routes.
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - GET    /v1/recipes         - recipe slots and capacity
//   - POST   /v1/recipes         - add a recipe (JSON or YAML body)
//   - PUT    /v1/recipes/{name}  - replace a recipe in place
//   - DELETE /v1/recipes/{name}  - empty a recipe slot
//   - GET    /v1/inventory       - current stock
//   - POST   /v1/inventory       - replenish stock
//   - POST   /v1/purchase        - buy a beverage
//   - GET    /v1/sales           - recent receipts
//
// System endpoints:
//   - GET /health, GET /ready, GET /metrics
//
// # Configuration
//
//   - COFFEEMAKER_CONFIG: machine configuration file (JSON or YAML)
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: logging level (debug, info, warn, error)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/vendstack/coffeemaker/pkg/api.version=1.0.0'"
package api
