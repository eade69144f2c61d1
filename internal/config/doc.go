// Package config loads the datasource properties of a Spring Boot
// application together with the settings of the checker.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. application.yml, with ${NAME} and ${NAME:default} placeholders
//     resolved and profile documents applied
//  3. Environment variables (optionally seeded from .env files)
//  4. Command-line flags
//
// The main entry point is [GetStructuredConfig]. [Lint] reports advisory
// findings such as secrets committed as literals.
package config
