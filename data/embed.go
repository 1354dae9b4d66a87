package data

import (
	_ "embed"
)

// UsersJSON is the seed list of dashboard users, with plain text passwords
//
//go:embed users.json
var UsersJSON []byte
