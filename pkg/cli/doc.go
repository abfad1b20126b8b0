// Package cli implements the coffeemaker command-line interface.
//
// # Commands
//
// serve - Run the HTTP service:
//
//	coffeemaker serve [--config machine.yaml]
//
// menu - List recipe slots:
//
//	coffeemaker menu [--output FILE] [--format yaml|json|table]
//
// inventory - Show stock, optionally replenishing it first:
//
//	coffeemaker inventory [--add-coffee N] [--add-milk N] [--add-sugar N] [--add-chocolate N]
//
// buy - Purchase one beverage:
//
//	coffeemaker buy --recipe Coffee --payment 75
//
// Each invocation builds the machine from --config (or COFFEEMAKER_CONFIG);
// menu, inventory and buy act on that fresh machine and do not write state
// back to the file.
//
// # Global Flags
//
//	--config, -c   Machine configuration file (JSON or YAML)
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/vendstack/coffeemaker/pkg/cli.version=1.0.0'"
package cli
