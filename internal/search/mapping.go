package search

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/mapping"
)

// buildIndexMapping creates the Bleve index mapping for idea documents.
//
// The mapping is designed with these priorities:
//  1. Fast full-text search on names with English stemming
//  2. Exact keyword matching for variant and category filters
//  3. Term vectors on name for highlighting
func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultAnalyzer = en.AnalyzerName

	docMapping := bleve.NewDocumentMapping()

	// --- Text fields (full-text searchable) ---

	// Name field - primary search target
	nameFieldMapping := bleve.NewTextFieldMapping()
	nameFieldMapping.Analyzer = en.AnalyzerName
	nameFieldMapping.Store = true
	nameFieldMapping.IncludeTermVectors = true // For highlighting
	docMapping.AddFieldMappingsAt("name", nameFieldMapping)

	// Description - searchable and stored; idea descriptions are short
	descFieldMapping := bleve.NewTextFieldMapping()
	descFieldMapping.Analyzer = en.AnalyzerName
	descFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("description", descFieldMapping)

	// Organization name - searchable
	orgFieldMapping := bleve.NewTextFieldMapping()
	orgFieldMapping.Analyzer = en.AnalyzerName
	orgFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("organization", orgFieldMapping)

	// --- Keyword fields (exact match, facetable) ---

	// Variant - for filtering by idea variant
	variantFieldMapping := bleve.NewTextFieldMapping()
	variantFieldMapping.Analyzer = keyword.Name
	variantFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("variant", variantFieldMapping)

	// ID - stored but not analyzed
	idFieldMapping := bleve.NewTextFieldMapping()
	idFieldMapping.Analyzer = keyword.Name
	docMapping.AddFieldMappingsAt("id", idFieldMapping)

	// Categories - keyword analyzer keeps compound tags intact (e.g., "zero-knowledge")
	categoriesFieldMapping := bleve.NewTextFieldMapping()
	categoriesFieldMapping.Analyzer = keyword.Name
	categoriesFieldMapping.Store = true
	categoriesFieldMapping.IncludeTermVectors = true // For faceting
	docMapping.AddFieldMappingsAt("categories", categoriesFieldMapping)

	// Featured flag
	featuredFieldMapping := bleve.NewBooleanFieldMapping()
	featuredFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("featured", featuredFieldMapping)

	indexMapping.AddDocumentMapping("_default", docMapping)

	return indexMapping
}
