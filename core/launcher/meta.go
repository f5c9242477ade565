package launcher

import (
	"encoding/json"
	"fmt"
)

// Meta is a parsed launcher metadata document.
type Meta struct {
	raw       json.RawMessage
	libraries map[string][]json.RawMessage
	mainClass json.RawMessage
}

type document struct {
	Libraries map[string][]json.RawMessage `json:"libraries"`
	MainClass json.RawMessage              `json:"mainClass"`
}

// Parse decodes a launcher metadata document.
func Parse(data []byte) (*Meta, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing launcher meta: %w", err)
	}
	if len(doc.MainClass) == 0 {
		return nil, fmt.Errorf("parsing launcher meta: missing mainClass")
	}
	raw := make(json.RawMessage, len(data))
	copy(raw, data)
	return &Meta{raw: raw, libraries: doc.Libraries, mainClass: doc.MainClass}, nil
}

// MarshalJSON writes the document as it was published.
func (m *Meta) MarshalJSON() ([]byte, error) {
	return m.raw, nil
}

// CommonLibraries returns the libraries every side needs.
func (m *Meta) CommonLibraries() []json.RawMessage {
	return append([]json.RawMessage{}, m.libraries["common"]...)
}

// SideLibraries returns the libraries only side needs.
func (m *Meta) SideLibraries(side string) []json.RawMessage {
	return append([]json.RawMessage{}, m.libraries[side]...)
}

// MainClass returns the main class for side and, for servers whose document
// names one, the server launcher class.
func (m *Meta) MainClass(side string) (mainClass, launcherClass string, err error) {
	var s string
	if err := json.Unmarshal(m.mainClass, &s); err == nil {
		return s, "", nil
	}

	var perSide map[string]string
	if err := json.Unmarshal(m.mainClass, &perSide); err != nil {
		return "", "", fmt.Errorf("unsupported mainClass: %w", err)
	}
	mainClass, ok := perSide[side]
	if !ok {
		return "", "", fmt.Errorf("no %s main class", side)
	}
	if side == "server" {
		launcherClass = perSide["serverLauncher"]
	}
	return mainClass, launcherClass, nil
}
