// Package search provides full-text search over the idea catalog using Bleve.
// The index lives in memory and is rebuilt from the catalog snapshot whenever
// the underlying data files change.
package search

import (
	"github.com/web3privacy/ideas-server/internal/domain"
)

// IdeaDocument is the document structure for the Bleve index.
//
// Design note: the classified variant is denormalized into each document so
// a single term filter can narrow results without consulting the catalog.
type IdeaDocument struct {
	ID           string   `json:"id"`
	Variant      string   `json:"variant"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Categories   []string `json:"categories,omitempty"`
	Organization string   `json:"organization,omitempty"`
	Featured     bool     `json:"featured"`
}

// ToMap converts the document to a map with lowercase field names.
// Bleve by default uses Go struct field names (capitalized), but our
// mapping uses lowercase names, so we convert explicitly.
func (d *IdeaDocument) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"id":      d.ID,
		"variant": d.Variant,
		"name":    d.Name,
	}

	if d.Description != "" {
		m["description"] = d.Description
	}
	if len(d.Categories) > 0 {
		m["categories"] = d.Categories
	}
	if d.Organization != "" {
		m["organization"] = d.Organization
	}
	if d.Featured {
		m["featured"] = true
	}

	return m
}

// FromIdea converts a catalog idea to an IdeaDocument.
func FromIdea(idea domain.Idea) *IdeaDocument {
	doc := &IdeaDocument{
		ID:          idea.ID,
		Variant:     string(idea.Classify()),
		Name:        idea.Name,
		Description: idea.Description,
		Categories:  idea.Categories,
		Featured:    idea.Featured,
	}

	if idea.OrganizationName != "" {
		doc.Organization = idea.OrganizationName
	} else if idea.Organization != "" {
		doc.Organization = idea.Organization
	}

	return doc
}
