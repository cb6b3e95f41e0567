package openapi

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var ErrNoInfo = errors.New("openapi: document has no info title")

// Document is the head of an OpenAPI (3.x) or Swagger (2.0) document.
// Only the fields the viewer shows are decoded, everything else is left to the browser.
type Document struct {
	// The version number of the OpenAPI Specification that the document uses.
	OpenAPI string `yaml:"openapi"`

	// The version number of the Swagger Specification, set by 2.0 documents.
	Swagger string `yaml:"swagger"`

	// REQUIRED. Provides metadata about the API.
	Info *Info `yaml:"info"`
}

type Info struct {
	// REQUIRED. The title of the API.
	Title string `yaml:"title"`

	// A short summary of the API.
	Summary string `yaml:"summary"`

	// A description of the API. CommonMark syntax MAY be used for rich text representation.
	Description string `yaml:"description"`

	// A URL to the Terms of Service for the API. This MUST be in the form of a URL.
	TermsOfService string `yaml:"termsOfService"`

	// The contact information for the exposed API.
	Contact *Contact `yaml:"contact"`

	// The license information for the exposed API.
	License *License `yaml:"license"`

	// REQUIRED. The version of the OpenAPI document (which is distinct from the OpenAPI Specification
	// version or the API implementation version).
	Version string `yaml:"version"`
}

// DisplayTitle is the title with the document version appended when present
func (i *Info) DisplayTitle() string {
	if i.Version == "" {
		return i.Title
	}
	return i.Title + " " + i.Version
}

type Contact struct {
	// The identifying name of the contact person/organization.
	Name string `yaml:"name"`

	// The URL pointing to the contact information. This MUST be in the form of a URL.
	URL string `yaml:"url"`

	// The email address of the contact person/organization. This MUST be in the form of an email address.
	Email string `yaml:"email"`
}

type License struct {
	// REQUIRED. The license name used for the API.
	Name string `yaml:"name"`

	// An SPDX license expression for the API.
	Identifier string `yaml:"identifier"`

	// A URL to the license used for the API.
	URL string `yaml:"url"`
}

// ReadDocument decodes the head of a YAML or JSON document
func ReadDocument(data []byte) (*Document, error) {
	doc := &Document{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("openapi: decode document: %w", err)
	}
	return doc, nil
}

// ReadInfo returns the info object of a document, ErrNoInfo when it has no title
func ReadInfo(data []byte) (*Info, error) {
	doc, err := ReadDocument(data)
	if err != nil {
		return nil, err
	}
	if doc.Info == nil || doc.Info.Title == "" {
		return nil, ErrNoInfo
	}
	return doc.Info, nil
}
