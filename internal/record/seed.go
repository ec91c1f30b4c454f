package record

// Seed returns a fresh copy of the fixed startup dataset. Every call
// allocates a new slice so callers can mutate it without sharing state.
func Seed() []Record {
	return []Record{
		{ID: "1", Name: "Margaret Holloway", Disease: DiseaseGlaucoma, DateAdded: "2025-01-06T09:15:00.000Z"},
		{ID: "2", Name: "Desmond Okafor", Disease: DiseaseCataracts, DateAdded: "2025-01-09T11:42:00.000Z"},
		{ID: "3", Name: "Priya Raman", Disease: DiseaseUveitis, DateAdded: "2025-01-14T08:05:00.000Z"},
		{ID: "4", Name: "Tomas Lindqvist", Disease: DiseaseCrossedEyes, DateAdded: "2025-01-21T16:30:00.000Z"},
		{ID: "5", Name: "Aiko Tanaka", Disease: DiseaseBulgingEyes, DateAdded: "2025-01-27T13:10:00.000Z"},
		{ID: "6", Name: "Samuel Mwangi", Disease: DiseaseGlaucoma, DateAdded: "2025-02-03T10:55:00.000Z"},
		{ID: "7", Name: "Elena Petrova", Disease: DiseaseCataracts, DateAdded: "2025-02-08T09:20:00.000Z"},
		{ID: "8", Name: "Harold Jenkins", Disease: DiseaseUveitis, DateAdded: "2025-02-12T15:45:00.000Z"},
		{ID: "9", Name: "Fatima al-Rashid", Disease: DiseaseCrossedEyes, DateAdded: "2025-02-19T12:00:00.000Z"},
		{ID: "10", Name: "Bruno Carvalho", Disease: DiseaseBulgingEyes, DateAdded: "2025-02-24T14:25:00.000Z"},
		{ID: "11", Name: "Ingrid Sørensen", Disease: DiseaseGlaucoma, DateAdded: "2025-03-02T08:40:00.000Z"},
		{ID: "12", Name: "Wei Zhang", Disease: DiseaseCataracts, DateAdded: "2025-03-07T17:05:00.000Z"},
		{ID: "13", Name: "Patrick O'Donnell", Disease: DiseaseUveitis, DateAdded: "2025-03-13T10:15:00.000Z"},
		{ID: "14", Name: "Lucia Fernandez", Disease: DiseaseCrossedEyes, DateAdded: "2025-03-18T09:50:00.000Z"},
		{ID: "15", Name: "Kwame Boateng", Disease: DiseaseBulgingEyes, DateAdded: "2025-03-25T13:35:00.000Z"},
		{ID: "16", Name: "Anneliese Weber", Disease: DiseaseGlaucoma, DateAdded: "2025-04-01T11:10:00.000Z"},
		{ID: "17", Name: "Rajesh Gupta", Disease: DiseaseCataracts, DateAdded: "2025-04-06T16:20:00.000Z"},
		{ID: "18", Name: "Sophie Tremblay", Disease: DiseaseUveitis, DateAdded: "2025-04-11T08:30:00.000Z"},
		{ID: "19", Name: "Mateo Rojas", Disease: DiseaseCrossedEyes, DateAdded: "2025-04-17T14:55:00.000Z"},
		{ID: "20", Name: "Nadia Kowalski", Disease: DiseaseBulgingEyes, DateAdded: "2025-04-22T10:05:00.000Z"},
	}
}
