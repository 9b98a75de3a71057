package domain

import (
	"fmt"
	"strings"
)

// Shower identifies a meteor shower from the IMO working list, or one of the
// background sources (antihelion, sporadic).
type Shower int

const (
	Quadrantids Shower = iota + 1
	Lyrids
	EtaAquariids
	JuneBootids
	SouthernDeltaAquariids
	AlphaCapricornids
	Perseids
	KappaCygnids
	AlphaAurigids
	SeptemberEpsilonPerseids
	OctoberCamelopardalids
	Draconids
	EpsilonGeminids
	Orionids
	SouthernTaurids
	NorthernTaurids
	Leonids
	DecemberAlphaDraconids
	Monocerotids
	SigmaHydrids
	Geminids
	DecemberLeonisMinorids
	ComaBerenicids
	Ursids
	Antihelion
	Sporadic
)

var showerCodes = map[Shower]string{
	Quadrantids:              "QUA",
	Lyrids:                   "LYR",
	EtaAquariids:             "ETA",
	JuneBootids:              "JBO",
	SouthernDeltaAquariids:   "SDA",
	AlphaCapricornids:        "CAP",
	Perseids:                 "PER",
	KappaCygnids:             "KCG",
	AlphaAurigids:            "AUR",
	SeptemberEpsilonPerseids: "SPE",
	OctoberCamelopardalids:   "OCT",
	Draconids:                "DRA",
	EpsilonGeminids:          "EGE",
	Orionids:                 "ORI",
	SouthernTaurids:          "STA",
	NorthernTaurids:          "NTA",
	Leonids:                  "LEO",
	DecemberAlphaDraconids:   "DAD",
	Monocerotids:             "MON",
	SigmaHydrids:             "HYD",
	Geminids:                 "GEM",
	DecemberLeonisMinorids:   "DLM",
	ComaBerenicids:           "COM",
	Ursids:                   "URS",
	Antihelion:               "ANT",
	Sporadic:                 "SPO",
}

var showersByCode = func() map[string]Shower {
	m := make(map[string]Shower, len(showerCodes))
	for s, code := range showerCodes {
		m[code] = s
	}
	return m
}()

// ShowerFromCode resolves a three-letter IMO code (case-insensitive).
func ShowerFromCode(code string) (Shower, bool) {
	s, ok := showersByCode[strings.ToUpper(strings.TrimSpace(code))]
	return s, ok
}

// Code returns the three-letter IMO code, or "" for an unknown shower.
func (s Shower) Code() string {
	return showerCodes[s]
}

func (s Shower) String() string {
	if code := s.Code(); code != "" {
		return code
	}
	return "UNKNOWN"
}

// AllShowers returns every known shower in catalogue order.
func AllShowers() []Shower {
	all := make([]Shower, 0, len(showerCodes))
	for s := Quadrantids; s <= Sporadic; s++ {
		all = append(all, s)
	}
	return all
}

// MarshalText encodes the shower as its IMO code.
func (s Shower) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes an IMO code.
func (s *Shower) UnmarshalText(text []byte) error {
	parsed, ok := ShowerFromCode(string(text))
	if !ok {
		return fmt.Errorf("unknown shower code %q", text)
	}
	*s = parsed
	return nil
}
