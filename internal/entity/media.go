package entity

import (
	"encoding/json"
	"fmt"
	"strings"
)

type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// LocalMedia is a device-side file handle as produced by a media picker:
// a temp URI plus an explicit kind tag.
type LocalMedia struct {
	URI  string    `json:"uri"`
	Type MediaKind `json:"type"`
}

// Media is the tagged dual representation of a post attachment. Before upload
// it is a LocalMedia handle; once uploaded it is the persisted remote path.
// Exactly one of the two is set.
type Media struct {
	Local  *LocalMedia
	Remote string
}

func NewLocalMedia(uri string, kind MediaKind) *Media {
	return &Media{Local: &LocalMedia{URI: uri, Type: kind}}
}

func NewRemoteMedia(path string) *Media {
	return &Media{Remote: path}
}

func (m *Media) IsLocal() bool {
	return m != nil && m.Local != nil
}

// Kind classifies the attachment. Local handles carry an explicit tag;
// persisted paths are classified by the upload folder naming convention,
// so both representations of the same file agree.
func (m *Media) Kind() MediaKind {
	if m == nil {
		return ""
	}
	if m.Local != nil {
		return m.Local.Type
	}
	if strings.Contains(m.Remote, "postImages") {
		return MediaImage
	}
	return MediaVideo
}

// MarshalJSON encodes a local handle as {"uri","type"} and a remote
// attachment as a bare path string, matching the wire shape posts carry.
func (m *Media) MarshalJSON() ([]byte, error) {
	if m.Local != nil {
		return json.Marshal(m.Local)
	}
	return json.Marshal(m.Remote)
}

func (m *Media) UnmarshalJSON(data []byte) error {
	var path string
	if err := json.Unmarshal(data, &path); err == nil {
		m.Local = nil
		m.Remote = path
		return nil
	}

	var local LocalMedia
	if err := json.Unmarshal(data, &local); err != nil {
		return fmt.Errorf("media must be a path string or a {uri, type} object: %w", err)
	}
	if local.URI == "" {
		return fmt.Errorf("local media requires a uri")
	}
	m.Local = &local
	m.Remote = ""
	return nil
}
