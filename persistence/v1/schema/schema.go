package schema

// createStatements is the portable part of the schema; both the mysql
// deployment and the in-memory test driver parse it.
var createStatements = []string{
	`CREATE TABLE users (
		id VARCHAR(36) PRIMARY KEY,
		name VARCHAR(255),
		email VARCHAR(255),
		passwordHash VARCHAR(255),
		createdAt TIMESTAMP
	)`,
	`CREATE TABLE notes (
		id VARCHAR(36) PRIMARY KEY,
		userId VARCHAR(36),
		title VARCHAR(255),
		content TEXT,
		createdAt TIMESTAMP
	)`,
}

// constraintStatements carries the constraints the in-memory test driver
// cannot parse; Constraints applies them against mysql only. Email
// uniqueness must hold at the store: the application pre-check alone would
// race under concurrent registrations.
var constraintStatements = []string{
	`ALTER TABLE users ADD CONSTRAINT users_email_unique UNIQUE (email)`,
}

var dropStatements = []string{
	`DROP TABLE notes`,
	`DROP TABLE users`,
}
