package record

// Disease represents one entry of the closed eye-disease enumeration
type Disease string

const (
	DiseaseBulgingEyes Disease = "Bulging_Eyes"
	DiseaseCataracts   Disease = "Cataracts"
	DiseaseCrossedEyes Disease = "Crossed_Eyes"
	DiseaseGlaucoma    Disease = "Glaucoma"
	DiseaseUveitis     Disease = "Uveitis"
)

// Diseases returns the enumeration in declaration order
func Diseases() []Disease {
	return []Disease{
		DiseaseBulgingEyes,
		DiseaseCataracts,
		DiseaseCrossedEyes,
		DiseaseGlaucoma,
		DiseaseUveitis,
	}
}

// IsValid reports whether d is a member of the enumeration
func (d Disease) IsValid() bool {
	switch d {
	case DiseaseBulgingEyes, DiseaseCataracts, DiseaseCrossedEyes, DiseaseGlaucoma, DiseaseUveitis:
		return true
	}
	return false
}

// Record represents one eye-disease entry in the collection
type Record struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Disease   Disease `json:"disease"`
	DateAdded string  `json:"dateAdded"`
}
