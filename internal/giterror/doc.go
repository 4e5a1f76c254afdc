// Package giterror classifies failures returned by the GitHub GraphQL and REST
// APIs so callers can map them to sentinel errors and exit codes.
package giterror
