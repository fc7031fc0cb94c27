package domain

import "time"

// Operation identifies a batch file operation
type Operation string

const (
	OperationRename Operation = "rename"
	OperationCopy   Operation = "copy"
	OperationDelete Operation = "delete"
)

// CatalogEntry is one file tracked by the catalog index
type CatalogEntry struct {
	Path      string    `json:"path"`
	Previous  string    `json:"previous,omitempty"`
	Deleted   bool      `json:"deleted"`
	UpdatedAt time.Time `json:"updated_at"`
}
