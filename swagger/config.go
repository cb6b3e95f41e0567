package swagger

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
)

var ErrInvalidConfig = errors.New("swagger: invalid config")

// HandleName is the window property the browser engine instance is stored under
const HandleName = "ui"

// DocExpansion controls the default expansion setting for the operations and tags
type DocExpansion string

const (
	DocExpansionNone DocExpansion = "none" // everything collapsed
	DocExpansionList DocExpansion = "list" // only tags expanded
	DocExpansionFull DocExpansion = "full" // tags and operations expanded
)

func (d DocExpansion) Valid() bool {
	return slices.Contains([]DocExpansion{DocExpansionNone, DocExpansionList, DocExpansionFull}, d)
}

// OperationsSorter is the sort order of operations inside each tag
type OperationsSorter string

const (
	OperationsSorterAlpha  OperationsSorter = "alpha"  // by path
	OperationsSorterMethod OperationsSorter = "method" // by HTTP method
	OperationsSorterNone   OperationsSorter = "none"   // order of the document
)

func (o OperationsSorter) Valid() bool {
	return slices.Contains([]OperationsSorter{OperationsSorterAlpha, OperationsSorterMethod, OperationsSorterNone}, o)
}

// Preset is a reference to a preset exported by the browser bundle, it is written as is
type Preset string

const (
	PresetAPIs       Preset = "SwaggerUIBundle.presets.apis"
	PresetStandalone Preset = "SwaggerUIStandalonePreset"
)

var domIDRegexp = regexp.MustCompile(`^#[A-Za-z][\w-]*$`)

var presetRegexp = regexp.MustCompile(`^[A-Za-z_$][\w$]*(\.[A-Za-z_$][\w$]*)*$`)

const (
	LayoutBase       = "BaseLayout"
	LayoutStandalone = "StandaloneLayout"
)

// Config is what the viewer page hands to SwaggerUIBundle
type Config struct {
	// document location, relative to the viewer page or absolute
	URL string

	// selector of the element the viewer mounts into
	DomID string

	Presets []Preset

	Layout string

	// label expansion mode, value in list, full, none
	DocExpansion DocExpansion

	// value in alpha, method, none
	OperationsSorter OperationsSorter

	// whether to enable deep linking
	DeepLinking bool
}

// DefaultConfig returns the configuration the viewer is bootstrapped with
func DefaultConfig() Config {
	return Config{
		URL:              "swagger.yaml",
		DomID:            "#swagger-ui",
		Presets:          []Preset{PresetAPIs, PresetStandalone},
		Layout:           LayoutBase,
		DocExpansion:     DocExpansionNone,
		OperationsSorter: OperationsSorterAlpha,
		DeepLinking:      true,
	}
}

// Clone returns a copy that shares no memory with c
func (c Config) Clone() Config {
	c.Presets = slices.Clone(c.Presets)
	return c
}

func (c Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("%w: url must be a non empty string", ErrInvalidConfig)
	}
	if !domIDRegexp.MatchString(c.DomID) {
		return fmt.Errorf("%w: dom_id %q must be an id selector such as #swagger-ui", ErrInvalidConfig, c.DomID)
	}
	if c.Layout == "" {
		return fmt.Errorf("%w: layout must be a non empty string", ErrInvalidConfig)
	}
	for _, p := range c.Presets {
		if !presetRegexp.MatchString(string(p)) {
			return fmt.Errorf("%w: preset %q is not a script reference", ErrInvalidConfig, p)
		}
	}
	if !c.DocExpansion.Valid() {
		return fmt.Errorf("%w: docExpansion %q must be one of none, list, full", ErrInvalidConfig, c.DocExpansion)
	}
	if !c.OperationsSorter.Valid() {
		return fmt.Errorf("%w: operationsSorter %q must be one of alpha, method, none", ErrInvalidConfig, c.OperationsSorter)
	}
	return nil
}
