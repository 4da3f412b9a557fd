// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Defaults live in `envDefault` tags so every config struct documents its own
// fallbacks; the API base URL, for example, falls back to the local
// development origin when HELPDESK_API_BASE_URL is unset.
package config
