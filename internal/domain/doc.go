// Package domain contains the core model of unitconv: unit families, unit
// definitions, conversion requests and results, configuration and the error
// taxonomy.
//
// The domain does not depend on YAML parsing, the terminal or the filesystem.
// Infra/adapters map into/from these types.
package domain
