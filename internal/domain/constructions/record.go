package constructions

import "fmt"

// validateSpecialization enforces that the record carries exactly the
// specialization its kind calls for.
func (r *Record) validateSpecialization() error {
	set := 0
	if r.Mill != nil {
		set++
	}
	if r.WaterLine != nil {
		set++
	}
	if r.Poca != nil {
		set++
	}
	if set > 1 {
		return fmt.Errorf("record carries %d specializations, expected at most 1", set)
	}

	switch r.Construction.Kind {
	case KindMill:
		if r.Mill == nil {
			return fmt.Errorf("kind %s requires mill data", KindMill)
		}
		return r.Mill.Validate()
	case KindWaterLine:
		if r.WaterLine == nil {
			return fmt.Errorf("kind %s requires water line data", KindWaterLine)
		}
		return r.WaterLine.Validate()
	case KindPoca:
		if r.Poca == nil {
			return fmt.Errorf("kind %s requires poça data", KindPoca)
		}
		return r.Poca.Validate()
	default:
		return fmt.Errorf("unknown kind: %s", r.Construction.Kind)
	}
}

// Translation returns the translation for a locale, or nil.
func (r *Record) Translation(locale string) *Translation {
	for _, tr := range r.Translations {
		if tr.Locale == locale {
			return tr
		}
	}
	return nil
}

// ReadyToPublish checks the publish preconditions: a pt translation with a
// name and valid coordinates (a path with vertices counts for water lines).
func (r *Record) ReadyToPublish() error {
	tr := r.Translation(DefaultLocale)
	if tr == nil || tr.Name == "" {
		return fmt.Errorf("publishing requires a %s translation with a name", DefaultLocale)
	}

	if r.Construction.Kind == KindWaterLine {
		if r.WaterLine == nil || len(r.WaterLine.Path) < 2 {
			return fmt.Errorf("publishing a water line requires a surveyed path")
		}
		return nil
	}

	if r.Construction.Point == nil {
		return fmt.Errorf("publishing requires surveyed coordinates")
	}
	if !r.Construction.Point.Valid() {
		return fmt.Errorf("publishing requires coordinates inside WGS84 bounds")
	}

	return nil
}
