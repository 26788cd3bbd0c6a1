// Package api holds the wire types of the notebook contents API. They are
// shared between the server handlers and the client.
package api

import (
	"encoding/json"
	"time"
)

// Model is the wire representation of a notebook entry.
type Model struct {
	Name         string          `json:"name"`
	Path         string          `json:"path"`
	Created      time.Time       `json:"created"`
	LastModified time.Time       `json:"last_modified"`
	Content      json.RawMessage `json:"content,omitempty"`
}

// Listing is the response for a directory request.
type Listing struct {
	Path    string  `json:"path"`
	Content []Model `json:"content"`
}

// SaveRequest is the body of a PUT request. Name and Path, when set,
// override the target taken from the URL, which renames the notebook on
// save.
type SaveRequest struct {
	Name    *string         `json:"name,omitempty"`
	Path    *string         `json:"path,omitempty"`
	Content json.RawMessage `json:"content,omitempty"`
}

// RenameRequest is the body of a PATCH request. Fields left out keep their
// current value.
type RenameRequest struct {
	Name *string `json:"name,omitempty"`
	Path *string `json:"path,omitempty"`
}

// CreateRequest is the body of a POST request.
type CreateRequest struct {
	Basename string `json:"basename,omitempty"`
}

// VersionResponse is the response of the version endpoint.
type VersionResponse struct {
	Service string `json:"service"`
	Version string `json:"version"`
}

// Error is the body of every non-2xx response.
type Error struct {
	Message string `json:"message"`
}
