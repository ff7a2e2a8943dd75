package database

import (
	"net"
	"net/url"
)

type PostgresSettings struct {
	User       string
	Password   string
	Host       string
	Port       string
	DBName     string
	SSlEnabled bool
}

// GetURL builds a connection URL, escaping credentials.
func (s PostgresSettings) GetURL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(s.User, s.Password),
		Host:   net.JoinHostPort(s.Host, s.Port),
		Path:   "/" + s.DBName,
	}
	if !s.SSlEnabled {
		u.RawQuery = "sslmode=disable"
	}

	return u.String()
}
