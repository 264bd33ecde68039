package loader

import (
	"encoding/xml"
	"fmt"
	"os"

	"pad/internal/models"
	"pad/internal/structures"
)

type UsersLoaderInterface interface {
	Load() (models.UserDirectory, error)
}

// UsersLoader reads the user metadata XML export. The server block supplies
// the avatar URL prefix (protocol://host:port); each user's avatar becomes
// the prefix concatenated with its path.
type UsersLoader struct {
	path string
}

func NewUsersLoader(conf *structures.Config) UsersLoaderInterface {
	return &UsersLoader{path: conf.Sources.UsersXML}
}

type usersExport struct {
	Server struct {
		Protocol string `xml:"protocol"`
		Host     string `xml:"host"`
		Port     string `xml:"port"`
	} `xml:"server"`
	Users []struct {
		ID     int    `xml:"id,attr"`
		Name   string `xml:"name"`
		Avatar string `xml:"avatar"`
	} `xml:"users>user"`
}

func (l *UsersLoader) Load() (models.UserDirectory, error) {
	raw, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("open users source: %w", err)
	}

	var export usersExport
	if err := xml.Unmarshal(raw, &export); err != nil {
		return nil, fmt.Errorf("parse users source: %w", err)
	}

	prefix := export.Server.Protocol + "://" + export.Server.Host + ":" + export.Server.Port
	dir := make(models.UserDirectory, len(export.Users))
	for _, u := range export.Users {
		dir[u.ID] = models.UserProfile{
			ID:     u.ID,
			Name:   u.Name,
			Avatar: prefix + u.Avatar,
		}
	}
	return dir, nil
}
