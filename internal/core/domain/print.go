package domain

import "fmt"

// PaperSize is one of the four fixed paper sizes the print surface accepts.
type PaperSize string

const (
	PaperA4     PaperSize = "A4"
	PaperA5     PaperSize = "A5"
	PaperLetter PaperSize = "LETTER"
	PaperLegal  PaperSize = "LEGAL"
)

// Dimensions returns the paper width and height in millimeters, portrait.
func (p PaperSize) Dimensions() (width, height float64) {
	switch p {
	case PaperA5:
		return 148, 210
	case PaperLetter:
		return 215.9, 279.4
	case PaperLegal:
		return 215.9, 355.6
	default: // A4
		return 210, 297
	}
}

// Orientation of the printed page.
type Orientation string

const (
	Portrait  Orientation = "PORTRAIT"
	Landscape Orientation = "LANDSCAPE"
)

// PrintQuality tiers map to a numeric print resolution.
type PrintQuality string

const (
	QualityDraft  PrintQuality = "DRAFT"
	QualityNormal PrintQuality = "NORMAL"
	QualityHigh   PrintQuality = "HIGH"
)

// DPI returns the resolution for the quality tier.
func (q PrintQuality) DPI() int {
	switch q {
	case QualityDraft:
		return 150
	case QualityHigh:
		return 600
	default:
		return 300
	}
}

const pointsPerMillimeter = 72.0 / 25.4

// Margins are page margins in millimeters.
type Margins struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Points converts the margins from millimeters to point units.
func (m Margins) Points() Margins {
	return Margins{
		Top:    m.Top * pointsPerMillimeter,
		Right:  m.Right * pointsPerMillimeter,
		Bottom: m.Bottom * pointsPerMillimeter,
		Left:   m.Left * pointsPerMillimeter,
	}
}

// PrintSettings is the print configuration surface consumed when rendering a
// document. The engine only reads it; the host print dialog produces it.
type PrintSettings struct {
	Paper           PaperSize    `json:"paper"`
	Orientation     Orientation  `json:"orientation"`
	Quality         PrintQuality `json:"quality"`
	Margins         Margins      `json:"margins"`
	ShowHeader      bool         `json:"showHeader"`
	ShowFooter      bool         `json:"showFooter"`
	ShowPageNumbers bool         `json:"showPageNumbers"`
}

// DefaultPrintSettings returns the settings used when a caller supplies none.
func DefaultPrintSettings() PrintSettings {
	return PrintSettings{
		Paper:           PaperA4,
		Orientation:     Portrait,
		Quality:         QualityNormal,
		Margins:         Margins{Top: 15, Right: 15, Bottom: 15, Left: 15},
		ShowHeader:      true,
		ShowFooter:      true,
		ShowPageNumbers: true,
	}
}

// PageCSSSize returns the CSS @page size value for the settings, swapping
// dimensions for landscape.
func (s PrintSettings) PageCSSSize() string {
	w, h := s.Paper.Dimensions()
	if s.Orientation == Landscape {
		w, h = h, w
	}
	return fmt.Sprintf("%gmm %gmm", w, h)
}
