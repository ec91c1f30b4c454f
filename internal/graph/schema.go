package graph

// Schema is the SDL parsed at startup. Mutation disease arguments are
// plain strings rather than the enum so membership failures surface as
// validation errors with a message listing the valid values, instead of
// being rejected during query parsing.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	"One entry of the closed eye-disease enumeration."
	enum Disease {
		Bulging_Eyes
		Cataracts
		Crossed_Eyes
		Glaucoma
		Uveitis
	}

	"A person/disease/date entry in the collection."
	type Record {
		id: ID!
		name: String!
		disease: Disease!
		dateAdded: String!
	}

	"Outcome of a delete. Not-found is reported here, never as an error."
	type DeleteResult {
		success: Boolean!
		message: String!
		removed: Record
	}

	type Query {
		"All current records in insertion order."
		records: [Record!]!
		"A single record, or null when the id is unknown."
		record(id: ID!): Record
	}

	type Mutation {
		addRecord(name: String!, disease: String!, dateAdded: String): Record!
		updateRecord(id: ID!, name: String, disease: String, dateAdded: String): Record!
		deleteRecord(id: ID!): DeleteResult!
	}
`
