package models

import (
	"github.com/goccy/go-json"
)

const Unknown = "Unknown"

// AnimalRecord is one element of the /v1/animals response. Every field is
// optional; a missing, null or wrongly typed value is left nil and falls back
// to Unknown in Display. Raw keeps the element exactly as the API sent it.
type AnimalRecord struct {
	Name            *string          `json:"name"`
	Taxonomy        *Taxonomy        `json:"taxonomy"`
	Locations       []string         `json:"locations"`
	Characteristics *Characteristics `json:"characteristics"`
	Raw             json.RawMessage  `json:"-"`
}

type Taxonomy struct {
	Class *string `json:"class"`
}

// Characteristics keeps track of whether skin_type was sent at all, since a
// present key renders a "Skin Type" line even when its value is unusable.
type Characteristics struct {
	Diet        *string
	SkinType    *string
	HasSkinType bool
}

// ParseAnimalRecord never fails: anything that is not the expected shape is
// treated as absent.
func ParseAnimalRecord(data []byte) AnimalRecord {
	record := AnimalRecord{Raw: append(json.RawMessage(nil), data...)}

	fields, ok := object(data)
	if !ok {
		return record
	}

	record.Name = optionalString(fields, "name")
	record.Locations = stringList(fields["locations"])
	if taxonomy, ok := object(fields["taxonomy"]); ok {
		record.Taxonomy = &Taxonomy{Class: optionalString(taxonomy, "class")}
	}
	if characteristics, ok := object(fields["characteristics"]); ok {
		record.Characteristics = parseCharacteristics(characteristics)
	}
	return record
}

func (r *AnimalRecord) UnmarshalJSON(data []byte) error {
	*r = ParseAnimalRecord(data)
	return nil
}

// MarshalJSON writes Raw when the record came from the API, so fields this
// package does not model survive a round trip.
func (r AnimalRecord) MarshalJSON() ([]byte, error) {
	if len(r.Raw) > 0 {
		return r.Raw, nil
	}
	type plain AnimalRecord
	return json.Marshal(plain(r))
}

func parseCharacteristics(fields map[string]json.RawMessage) *Characteristics {
	c := &Characteristics{Diet: optionalString(fields, "diet")}
	if _, ok := fields["skin_type"]; ok {
		c.HasSkinType = true
		c.SkinType = optionalString(fields, "skin_type")
	}
	return c
}

func (c Characteristics) MarshalJSON() ([]byte, error) {
	out := map[string]*string{}
	if c.Diet != nil {
		out["diet"] = c.Diet
	}
	if c.HasSkinType {
		out["skin_type"] = c.SkinType
	}
	return json.Marshal(out)
}

func object(data []byte) (map[string]json.RawMessage, bool) {
	if len(data) == 0 {
		return nil, false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return nil, false
	}
	return fields, true
}

func optionalString(fields map[string]json.RawMessage, key string) *string {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return s
}

// stringList keeps the string elements of a JSON array and drops the rest.
func stringList(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
		}
	}
	return out
}

// DisplayAnimal is the flattened card model.
type DisplayAnimal struct {
	Name        string
	Diet        string
	Locations   []string
	Type        string
	SkinType    string
	HasSkinType bool
}

func (r AnimalRecord) Display() DisplayAnimal {
	d := DisplayAnimal{
		Name:      orUnknown(r.Name),
		Diet:      Unknown,
		Locations: r.Locations,
		Type:      Unknown,
	}
	if d.Locations == nil {
		d.Locations = []string{}
	}
	if r.Taxonomy != nil {
		d.Type = orUnknown(r.Taxonomy.Class)
	}
	if c := r.Characteristics; c != nil {
		d.Diet = orUnknown(c.Diet)
		if c.HasSkinType {
			d.HasSkinType = true
			d.SkinType = orUnknown(c.SkinType)
		}
	}
	return d
}

func orUnknown(s *string) string {
	if s == nil {
		return Unknown
	}
	return *s
}
