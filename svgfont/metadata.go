package svgfont

import (
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/strokefont/fonterr"
)

// Metadata holds the fixed header information of a font document.
type Metadata struct {
	ID             string // id of the <font> element
	Family         string // font-family of the <font-face>
	DefaultAdvance int    // horiz-adv-x of the <font> element
	UnitsPerEm     int
	Ascent         int
	Descent        int
	CapHeight      int
	XHeight        int
	MissingAdvance int // advance of the missing-glyph
	SpaceAdvance   int // advance of the space glyph
	// free-form entries of the <metadata> block; empty entries are omitted
	Name       string
	License    string
	Derivative string
	Version    string
}

// DefaultMetadata returns the metadata of the Norm Stroke font.
func DefaultMetadata() Metadata {
	return Metadata{
		ID:             "NormStroke",
		Family:         "Norm Stroke",
		DefaultAdvance: 350,
		UnitsPerEm:     1000,
		Ascent:         800,
		Descent:        200,
		CapHeight:      800,
		XHeight:        560,
		MissingAdvance: 480,
		SpaceAdvance:   480,
		Name:           "Norm Stroke",
		License: "This work is marked with CC0 1.0. To view a copy of this license, " +
			"visit https://creativecommons.org/publicdomain/zero/1.0/",
		Derivative: "https://commons.wikimedia.org/wiki/File:ISO3098.svg",
		Version:    "1.0",
	}
}

// Configuration keys understood by MetadataFromConfig.
const (
	KeyID             = "font.id"
	KeyFamily         = "font.family"
	KeyAdvance        = "font.advance"
	KeyUnitsPerEm     = "font.unitsperem"
	KeyAscent         = "font.ascent"
	KeyDescent        = "font.descent"
	KeyCapHeight      = "font.capheight"
	KeyXHeight        = "font.xheight"
	KeyMissingAdvance = "font.missingadvance"
	KeySpaceAdvance   = "font.spaceadvance"
	KeyName           = "font.name"
	KeyLicense        = "font.license"
	KeyDerivative     = "font.derivative"
	KeyVersion        = "font.version"
)

// MetadataFromConfig starts with DefaultMetadata and overrides every value
// for which a key is set in conf. conf may be nil.
func MetadataFromConfig(conf schuko.Configuration) Metadata {
	m := DefaultMetadata()
	if conf == nil {
		return m
	}
	strs := map[string]*string{
		KeyID:         &m.ID,
		KeyFamily:     &m.Family,
		KeyName:       &m.Name,
		KeyLicense:    &m.License,
		KeyDerivative: &m.Derivative,
		KeyVersion:    &m.Version,
	}
	for key, p := range strs {
		if conf.IsSet(key) {
			*p = conf.GetString(key)
		}
	}
	ints := map[string]*int{
		KeyAdvance:        &m.DefaultAdvance,
		KeyUnitsPerEm:     &m.UnitsPerEm,
		KeyAscent:         &m.Ascent,
		KeyDescent:        &m.Descent,
		KeyCapHeight:      &m.CapHeight,
		KeyXHeight:        &m.XHeight,
		KeyMissingAdvance: &m.MissingAdvance,
		KeySpaceAdvance:   &m.SpaceAdvance,
	}
	for key, p := range ints {
		if conf.IsSet(key) {
			*p = conf.GetInt(key)
		}
	}
	return m
}

// Validate checks metadata for values which would result in an unusable
// font document.
func (m Metadata) Validate() error {
	switch {
	case m.ID == "":
		return fonterr.Configurationf(KeyID, "font id must not be empty")
	case m.Family == "":
		return fonterr.Configurationf(KeyFamily, "font family must not be empty")
	case m.UnitsPerEm <= 0:
		return fonterr.Configurationf(KeyUnitsPerEm, "units-per-em must be positive, is %d", m.UnitsPerEm)
	case m.DefaultAdvance < 0 || m.MissingAdvance < 0 || m.SpaceAdvance < 0:
		return fonterr.Configurationf(KeyAdvance, "advance widths must not be negative")
	}
	return nil
}
