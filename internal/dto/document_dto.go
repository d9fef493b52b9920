package dto

import "github.com/schoolledger/school_ledger_app/internal/core/domain"

// RenderDocumentRequest is the payload a screen submits to produce a
// printable document.
type RenderDocumentRequest struct {
	Payload map[string]any        `json:"payload" binding:"required"`
	Print   *PrintSettingsRequest `json:"print,omitempty"`
}

// PrintSettingsRequest carries the optional print configuration. Omitted
// fields fall back to the engine defaults.
type PrintSettingsRequest struct {
	Paper           string          `json:"paper" binding:"omitempty,oneof=A4 A5 LETTER LEGAL"`
	Orientation     string          `json:"orientation" binding:"omitempty,oneof=PORTRAIT LANDSCAPE"`
	Quality         string          `json:"quality" binding:"omitempty,oneof=DRAFT NORMAL HIGH"`
	Margins         *MarginsRequest `json:"margins,omitempty"`
	ShowHeader      *bool           `json:"showHeader,omitempty"`
	ShowFooter      *bool           `json:"showFooter,omitempty"`
	ShowPageNumbers *bool           `json:"showPageNumbers,omitempty"`
}

// MarginsRequest carries page margins in millimeters.
type MarginsRequest struct {
	Top    float64 `json:"top" binding:"gte=0"`
	Right  float64 `json:"right" binding:"gte=0"`
	Bottom float64 `json:"bottom" binding:"gte=0"`
	Left   float64 `json:"left" binding:"gte=0"`
}

// ToDomainPrintSettings merges the request over the default settings.
func (r *PrintSettingsRequest) ToDomainPrintSettings() domain.PrintSettings {
	settings := domain.DefaultPrintSettings()
	if r == nil {
		return settings
	}
	if r.Paper != "" {
		settings.Paper = domain.PaperSize(r.Paper)
	}
	if r.Orientation != "" {
		settings.Orientation = domain.Orientation(r.Orientation)
	}
	if r.Quality != "" {
		settings.Quality = domain.PrintQuality(r.Quality)
	}
	if r.Margins != nil {
		settings.Margins = domain.Margins{
			Top:    r.Margins.Top,
			Right:  r.Margins.Right,
			Bottom: r.Margins.Bottom,
			Left:   r.Margins.Left,
		}
	}
	if r.ShowHeader != nil {
		settings.ShowHeader = *r.ShowHeader
	}
	if r.ShowFooter != nil {
		settings.ShowFooter = *r.ShowFooter
	}
	if r.ShowPageNumbers != nil {
		settings.ShowPageNumbers = *r.ShowPageNumbers
	}
	return settings
}

// DocumentTypeResponse describes one canonical document type.
type DocumentTypeResponse struct {
	Type  string `json:"type"`
	Title string `json:"title"`
}
