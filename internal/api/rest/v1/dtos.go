package v1

import (
	"time"

	"mill_inventory_service/internal/domain/constructions"
	"mill_inventory_service/internal/domain/geo"
	"mill_inventory_service/internal/domain/images"
	"mill_inventory_service/internal/domain/mills"
	"mill_inventory_service/internal/domain/pocas"
	"mill_inventory_service/internal/domain/waterlines"
)

// ErrorResponse is the error payload of every endpoint.
type ErrorResponse struct {
	Message *string `json:"message,omitempty"`
}

// InfoResponse reports the outcome of operations without a body.
type InfoResponse struct {
	Message *string `json:"message,omitempty"`
}

// TranslationRequest carries one locale's text of a construction.
type TranslationRequest struct {
	Locale      string `json:"locale" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	History     string `json:"history"`
}

// MillDataRequest carries the mill specialization fields.
type MillDataRequest struct {
	Typology              string   `json:"typology" binding:"required"`
	ConstructionTechnique string   `json:"constructionTechnique" binding:"required"`
	RoofMaterial          string   `json:"roofMaterial" binding:"required"`
	Mechanism             string   `json:"mechanism" binding:"required"`
	Conservation          string   `json:"conservation" binding:"required"`
	GrindingPairs         int      `json:"grindingPairs"`
	Epigraphy             string   `json:"epigraphy"`
	Annexes               []string `json:"annexes"`
	WaterLineID           *string  `json:"waterLineId"`
}

// WaterLineRequest carries the water line specialization fields.
type WaterLineRequest struct {
	SourceKind   string      `json:"sourceKind" binding:"required"`
	LengthMeters float64     `json:"lengthMeters"`
	Path         []geo.Point `json:"path"`
}

// PocaRequest carries the poça specialization fields.
type PocaRequest struct {
	CapacityLiters float64 `json:"capacityLiters"`
	DepthMeters    float64 `json:"depthMeters"`
	WaterLineID    *string `json:"waterLineId"`
}

// ConstructionRequest is the create/update payload of the dashboard.
type ConstructionRequest struct {
	Slug         string     `json:"slug"`
	Kind         string     `json:"kind" binding:"required,oneof=mill water_line poca"`
	District     string     `json:"district"`
	Municipality string     `json:"municipality"`
	Parish       string     `json:"parish"`
	Point        *geo.Point `json:"point"`

	Translations []TranslationRequest `json:"translations"`

	Mill      *MillDataRequest  `json:"mill"`
	WaterLine *WaterLineRequest `json:"waterLine"`
	Poca      *PocaRequest      `json:"poca"`
}

// ToRecord converts the request into the domain aggregate. IDs and workflow
// fields are filled by the service.
func (r *ConstructionRequest) ToRecord() *constructions.Record {
	record := &constructions.Record{
		Construction: &constructions.Construction{
			Slug:         r.Slug,
			Kind:         r.Kind,
			District:     r.District,
			Municipality: r.Municipality,
			Parish:       r.Parish,
			Point:        r.Point,
		},
	}

	for _, tr := range r.Translations {
		record.Translations = append(record.Translations, &constructions.Translation{
			Locale:      tr.Locale,
			Name:        tr.Name,
			Summary:     tr.Summary,
			Description: tr.Description,
			History:     tr.History,
		})
	}

	if r.Mill != nil {
		record.Mill = &mills.MillData{
			Typology:              r.Mill.Typology,
			ConstructionTechnique: r.Mill.ConstructionTechnique,
			RoofMaterial:          r.Mill.RoofMaterial,
			Mechanism:             r.Mill.Mechanism,
			Conservation:          r.Mill.Conservation,
			GrindingPairs:         r.Mill.GrindingPairs,
			Epigraphy:             r.Mill.Epigraphy,
			Annexes:               r.Mill.Annexes,
			WaterLineID:           r.Mill.WaterLineID,
		}
	}
	if r.WaterLine != nil {
		record.WaterLine = &waterlines.WaterLine{
			SourceKind:   r.WaterLine.SourceKind,
			LengthMeters: r.WaterLine.LengthMeters,
			Path:         r.WaterLine.Path,
		}
	}
	if r.Poca != nil {
		record.Poca = &pocas.Poca{
			CapacityLiters: r.Poca.CapacityLiters,
			DepthMeters:    r.Poca.DepthMeters,
			WaterLineID:    r.Poca.WaterLineID,
		}
	}

	return record
}

// TransitionRequest moves a construction through the review workflow.
type TransitionRequest struct {
	Status string `json:"status" binding:"required,oneof=draft review published"`
}

// ReorderRequest rewrites the gallery order of a construction.
type ReorderRequest struct {
	ImageIDs []string `json:"imageIds" binding:"required,min=1"`
}

// TranslationResponse mirrors TranslationRequest on the way out.
type TranslationResponse struct {
	Locale      string `json:"locale"`
	Name        string `json:"name"`
	Summary     string `json:"summary,omitempty"`
	Description string `json:"description,omitempty"`
	History     string `json:"history,omitempty"`
}

// RecordResponse is the dashboard view of one construction.
type RecordResponse struct {
	ID           string     `json:"id"`
	Slug         string     `json:"slug"`
	Kind         string     `json:"kind"`
	Status       string     `json:"status"`
	District     string     `json:"district,omitempty"`
	Municipality string     `json:"municipality,omitempty"`
	Parish       string     `json:"parish,omitempty"`
	Point        *geo.Point `json:"point,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`

	Translations []TranslationResponse `json:"translations"`

	Mill      *MillDataRequest  `json:"mill,omitempty"`
	WaterLine *WaterLineRequest `json:"waterLine,omitempty"`
	Poca      *PocaRequest      `json:"poca,omitempty"`
}

// NewRecordResponse converts a domain aggregate into the dashboard view.
func NewRecordResponse(record *constructions.Record) RecordResponse {
	response := RecordResponse{
		ID:           record.Construction.ID,
		Slug:         record.Construction.Slug,
		Kind:         record.Construction.Kind,
		Status:       string(record.Construction.Status),
		District:     record.Construction.District,
		Municipality: record.Construction.Municipality,
		Parish:       record.Construction.Parish,
		Point:        record.Construction.Point,
		CreatedAt:    record.Construction.CreatedAt,
		UpdatedAt:    record.Construction.UpdatedAt,
		Translations: make([]TranslationResponse, 0, len(record.Translations)),
	}

	for _, tr := range record.Translations {
		response.Translations = append(response.Translations, TranslationResponse{
			Locale:      tr.Locale,
			Name:        tr.Name,
			Summary:     tr.Summary,
			Description: tr.Description,
			History:     tr.History,
		})
	}

	if record.Mill != nil {
		response.Mill = &MillDataRequest{
			Typology:              record.Mill.Typology,
			ConstructionTechnique: record.Mill.ConstructionTechnique,
			RoofMaterial:          record.Mill.RoofMaterial,
			Mechanism:             record.Mill.Mechanism,
			Conservation:          record.Mill.Conservation,
			GrindingPairs:         record.Mill.GrindingPairs,
			Epigraphy:             record.Mill.Epigraphy,
			Annexes:               record.Mill.Annexes,
			WaterLineID:           record.Mill.WaterLineID,
		}
	}
	if record.WaterLine != nil {
		response.WaterLine = &WaterLineRequest{
			SourceKind:   record.WaterLine.SourceKind,
			LengthMeters: record.WaterLine.LengthMeters,
			Path:         record.WaterLine.Path,
		}
	}
	if record.Poca != nil {
		response.Poca = &PocaRequest{
			CapacityLiters: record.Poca.CapacityLiters,
			DepthMeters:    record.Poca.DepthMeters,
			WaterLineID:    record.Poca.WaterLineID,
		}
	}

	return response
}

// ImageResponse is the gallery view of one image.
type ImageResponse struct {
	ID              string    `json:"id"`
	ConstructionID  string    `json:"constructionId"`
	FileName        string    `json:"fileName"`
	ContentType     string    `json:"contentType"`
	SizeBytes       int64     `json:"sizeBytes"`
	Position        int       `json:"position"`
	URL             string    `json:"url"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
}

// NewImageResponse converts image metadata into the gallery view.
func NewImageResponse(meta *images.ImageMeta) ImageResponse {
	return ImageResponse{
		ID:              meta.ID,
		ConstructionID:  meta.ConstructionID,
		FileName:        meta.FileName,
		ContentType:     meta.ContentType,
		SizeBytes:       meta.SizeBytes,
		Position:        meta.Position,
		URL:             meta.URL,
		DateTimeCreated: meta.DateTimeCreated,
	}
}
