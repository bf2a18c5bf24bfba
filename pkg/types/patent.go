// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the patent-scout pipeline.
package types

// Patent is one prior-art candidate returned by the patent-search API.
// The field set mirrors what the PatentsView patent endpoint returns for
// the requested fields; anything the API omits stays an empty string.
type Patent struct {
	// ID is the patent identifier as reported by the source (e.g. "10123456").
	ID string `json:"patent_id" yaml:"patent_id"`

	// Title is the patent title.
	Title string `json:"title" yaml:"title"`

	// Abstract is the patent abstract, used as the evidence snippet.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Date is the grant date in YYYY-MM-DD form, as returned by the API.
	Date string `json:"date" yaml:"date"`
}
