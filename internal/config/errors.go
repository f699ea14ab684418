package config

import (
	"errors"
)

var (
	// ErrDBUserEmpty error if config mysql.user is empty.
	ErrDBUserEmpty = errors.New("config mysql.user can not be empty")

	// ErrDBHostEmpty error if config mysql.host is empty.
	ErrDBHostEmpty = errors.New("config mysql.host can not be empty")

	// ErrDBNameEmpty error if config mysql.database is empty.
	ErrDBNameEmpty = errors.New("config mysql.database can not be empty")

	// ErrDBPathEmpty error if the sqlite engine is selected without mysql.path.
	ErrDBPathEmpty = errors.New("config mysql.path can not be empty for the sqlite engine")
)
