package services

import (
	"github.com/pocketbase/pocketbase/core"
)

// Billboard is the canonical in-memory shape of a billboard record.
// Handlers and calculators work on this struct, never on raw records, so
// field-name normalization happens exactly once.
type Billboard struct {
	ID           string
	Name         string
	Size         string
	Faces        int
	Level        string
	Municipality string
	District     string
	Landmark     string
	Latitude     float64
	Longitude    float64
	Status       string
	ContractID   string
	RentStart    string
	RentEnd      string
}

const defaultFaceCount = 2

// BillboardFromRecord builds a Billboard from a record, applying the
// default face count when the field is missing or zero.
func BillboardFromRecord(rec *core.Record) Billboard {
	faces := rec.GetInt("faces")
	if faces <= 0 {
		faces = defaultFaceCount
	}
	return Billboard{
		ID:           rec.Id,
		Name:         rec.GetString("name"),
		Size:         rec.GetString("size"),
		Faces:        faces,
		Level:        rec.GetString("level"),
		Municipality: rec.GetString("municipality"),
		District:     rec.GetString("district"),
		Landmark:     rec.GetString("landmark"),
		Latitude:     rec.GetFloat("latitude"),
		Longitude:    rec.GetFloat("longitude"),
		Status:       rec.GetString("status"),
		ContractID:   rec.GetString("contract"),
		RentStart:    rec.GetString("rent_start"),
		RentEnd:      rec.GetString("rent_end"),
	}
}
