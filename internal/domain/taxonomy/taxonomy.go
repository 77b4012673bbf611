// Package taxonomy defines the controlled vocabularies used by the
// inventory: typology, construction technique, roof material, mechanism,
// conservation rating, annex kinds and water source kinds. Records store the
// stable keys; labels are resolved per locale for display and search.
package taxonomy

// Typology keys for mills.
const (
	TypologyWatermillHorizontal = "watermill_horizontal"
	TypologyWatermillVertical   = "watermill_vertical"
	TypologyWindmillTower       = "windmill_tower"
	TypologyWindmillPost        = "windmill_post"
	TypologyTidemill            = "tidemill"
)

// Construction technique keys.
const (
	TechniqueDryStone      = "dry_stone"
	TechniqueMortaredStone = "mortared_stone"
	TechniqueMasonry       = "masonry"
	TechniqueMixed         = "mixed"
)

// Roof material keys.
const (
	RoofTile     = "tile"
	RoofThatch   = "thatch"
	RoofSlate    = "slate"
	RoofConcrete = "concrete"
	RoofNone     = "none"
)

// Mechanism keys.
const (
	MechanismHorizontalWheel = "horizontal_wheel"
	MechanismVerticalWheel   = "vertical_wheel"
	MechanismWindSails       = "wind_sails"
)

// Conservation rating keys, best to worst.
const (
	ConservationGood       = "good"
	ConservationReasonable = "reasonable"
	ConservationPoor       = "poor"
	ConservationRuin       = "ruin"
	ConservationVanished   = "vanished"
)

// Annex keys.
const (
	AnnexMillerHouse = "miller_house"
	AnnexStable      = "stable"
	AnnexOven        = "oven"
	AnnexThreshing   = "threshing_floor"
)

// Water source keys for water lines.
const (
	SourceLevada = "levada"
	SourceStream = "stream"
	SourceSpring = "spring"
)

// Field names a vocabulary is registered under.
const (
	FieldTypology     = "typology"
	FieldTechnique    = "construction_technique"
	FieldRoofMaterial = "roof_material"
	FieldMechanism    = "mechanism"
	FieldConservation = "conservation"
	FieldAnnex        = "annex"
	FieldSourceKind   = "source_kind"
)

// Term is one vocabulary entry with its localized labels.
type Term struct {
	Key    string            `json:"key"`
	Labels map[string]string `json:"labels"`
}

var vocabularies = map[string][]Term{
	FieldTypology: {
		{TypologyWatermillHorizontal, map[string]string{"pt": "Moinho de água de rodízio", "en": "Horizontal-wheel watermill"}},
		{TypologyWatermillVertical, map[string]string{"pt": "Azenha", "en": "Vertical-wheel watermill"}},
		{TypologyWindmillTower, map[string]string{"pt": "Moinho de vento de torre", "en": "Tower windmill"}},
		{TypologyWindmillPost, map[string]string{"pt": "Moinho de vento de armação", "en": "Post windmill"}},
		{TypologyTidemill, map[string]string{"pt": "Moinho de maré", "en": "Tide mill"}},
	},
	FieldTechnique: {
		{TechniqueDryStone, map[string]string{"pt": "Pedra seca", "en": "Dry stone"}},
		{TechniqueMortaredStone, map[string]string{"pt": "Pedra argamassada", "en": "Mortared stone"}},
		{TechniqueMasonry, map[string]string{"pt": "Alvenaria", "en": "Masonry"}},
		{TechniqueMixed, map[string]string{"pt": "Mista", "en": "Mixed"}},
	},
	FieldRoofMaterial: {
		{RoofTile, map[string]string{"pt": "Telha", "en": "Tile"}},
		{RoofThatch, map[string]string{"pt": "Colmo", "en": "Thatch"}},
		{RoofSlate, map[string]string{"pt": "Lousa", "en": "Slate"}},
		{RoofConcrete, map[string]string{"pt": "Betão", "en": "Concrete"}},
		{RoofNone, map[string]string{"pt": "Sem cobertura", "en": "None"}},
	},
	FieldMechanism: {
		{MechanismHorizontalWheel, map[string]string{"pt": "Rodízio", "en": "Horizontal wheel"}},
		{MechanismVerticalWheel, map[string]string{"pt": "Roda vertical", "en": "Vertical wheel"}},
		{MechanismWindSails, map[string]string{"pt": "Velas", "en": "Wind sails"}},
	},
	FieldConservation: {
		{ConservationGood, map[string]string{"pt": "Bom", "en": "Good"}},
		{ConservationReasonable, map[string]string{"pt": "Razoável", "en": "Reasonable"}},
		{ConservationPoor, map[string]string{"pt": "Mau", "en": "Poor"}},
		{ConservationRuin, map[string]string{"pt": "Ruína", "en": "Ruin"}},
		{ConservationVanished, map[string]string{"pt": "Desaparecido", "en": "Vanished"}},
	},
	FieldAnnex: {
		{AnnexMillerHouse, map[string]string{"pt": "Casa do moleiro", "en": "Miller's house"}},
		{AnnexStable, map[string]string{"pt": "Estábulo", "en": "Stable"}},
		{AnnexOven, map[string]string{"pt": "Forno", "en": "Oven"}},
		{AnnexThreshing, map[string]string{"pt": "Eira", "en": "Threshing floor"}},
	},
	FieldSourceKind: {
		{SourceLevada, map[string]string{"pt": "Levada", "en": "Levada"}},
		{SourceStream, map[string]string{"pt": "Ribeira", "en": "Stream"}},
		{SourceSpring, map[string]string{"pt": "Nascente", "en": "Spring"}},
	},
}

// Terms returns the vocabulary registered under a field name, or nil.
func Terms(field string) []Term {
	return vocabularies[field]
}

// Fields returns all registered field names.
func Fields() []string {
	return []string{
		FieldTypology,
		FieldTechnique,
		FieldRoofMaterial,
		FieldMechanism,
		FieldConservation,
		FieldAnnex,
		FieldSourceKind,
	}
}

// IsValid reports whether key belongs to the vocabulary of a field.
func IsValid(field, key string) bool {
	for _, term := range vocabularies[field] {
		if term.Key == key {
			return true
		}
	}
	return false
}

// Label resolves the localized label for a key, falling back to the pt label
// and finally to the key itself so that display never produces an empty
// string.
func Label(field, key, locale string) string {
	for _, term := range vocabularies[field] {
		if term.Key != key {
			continue
		}
		if label, ok := term.Labels[locale]; ok {
			return label
		}
		if label, ok := term.Labels["pt"]; ok {
			return label
		}
	}
	return key
}
