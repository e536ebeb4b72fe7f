package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

type IncidentType string

const (
	TypeCollision        IncidentType = "collision"
	TypePenalty          IncidentType = "penalty"
	TypeMechanical       IncidentType = "mechanical"
	TypeTrackObstruction IncidentType = "track_obstruction"
	TypeRuleViolation    IncidentType = "rule_violation"
	TypeDNF              IncidentType = "dnf"
	TypeUnsafePit        IncidentType = "unsafe_pit"
)

func (t IncidentType) Valid() bool {
	switch t {
	case TypeCollision, TypePenalty, TypeMechanical, TypeTrackObstruction,
		TypeRuleViolation, TypeDNF, TypeUnsafePit:
		return true
	}
	return false
}

type RaceCategory string

const (
	CategoryF1      RaceCategory = "F1"
	CategoryMotoGP  RaceCategory = "MotoGP"
	CategoryRally   RaceCategory = "Rally"
	CategoryIndyCar RaceCategory = "IndyCar"
	CategoryNASCAR  RaceCategory = "NASCAR"
)

func (c RaceCategory) Valid() bool {
	switch c {
	case CategoryF1, CategoryMotoGP, CategoryRally, CategoryIndyCar, CategoryNASCAR:
		return true
	}
	return false
}

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

type IncidentStatus string

const (
	StatusPending       IncidentStatus = "pending"
	StatusInvestigating IncidentStatus = "investigating"
	StatusResolved      IncidentStatus = "resolved"
)

func (s IncidentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInvestigating, StatusResolved:
		return true
	}
	return false
}

type Incident struct {
	ID           string         `json:"id"`
	Type         IncidentType   `json:"type"`
	RaceCategory RaceCategory   `json:"raceCategory"`
	Location     string         `json:"location"`
	Circuit      string         `json:"circuit"`
	Severity     Severity       `json:"severity"`
	Drivers      []string       `json:"drivers"`
	Teams        []string       `json:"teams"`
	LapNumber    int            `json:"lapNumber"`
	RaceTime     string         `json:"raceTime"`
	Description  string         `json:"description"`
	Timestamp    string         `json:"timestamp"`
	Status       IncidentStatus `json:"status"`
	StewardNotes string         `json:"stewardNotes,omitempty"`
}

// StringList accepts either a JSON array of strings or a single
// comma-delimited string; entries are trimmed and empties dropped.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = normalizeList(items)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = normalizeList(strings.Split(s, ","))
		return nil
	}
	*l = StringList{}
	return nil
}

func normalizeList(items []string) StringList {
	out := make(StringList, 0, len(items))
	for _, item := range items {
		if v := strings.TrimSpace(item); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// LapNumber accepts a JSON number or a numeric string; anything
// unparseable becomes 0.
type LapNumber int

func (n *LapNumber) UnmarshalJSON(data []byte) error {
	var i int
	if err := json.Unmarshal(data, &i); err == nil {
		*n = LapNumber(i)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			*n = LapNumber(v)
			return nil
		}
	}
	*n = 0
	return nil
}

// IncidentForm is the inbound create/update body. Enum fields stay raw
// strings here; membership is checked by the mutation service.
type IncidentForm struct {
	Type         string     `json:"type" validate:"required"`
	RaceCategory string     `json:"raceCategory" validate:"required"`
	Location     string     `json:"location" validate:"required"`
	Circuit      string     `json:"circuit"`
	Severity     string     `json:"severity" validate:"required"`
	Drivers      StringList `json:"drivers"`
	Teams        StringList `json:"teams"`
	LapNumber    LapNumber  `json:"lapNumber"`
	RaceTime     string     `json:"raceTime" validate:"racetime"`
	Description  string     `json:"description" validate:"required"`
	Status       string     `json:"status" validate:"required"`
	StewardNotes string     `json:"stewardNotes"`
}

type IncidentQuery struct {
	Search   string
	Category string
	Severity string
	Status   string
	Type     string
	Location string
	Circuit  string
	Page     int
	Limit    int
}

type PaginationInfo struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	Filtered   int  `json:"filtered"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

type IncidentCounts struct {
	Total    int `json:"total"`
	Filtered int `json:"filtered"`
	Showing  int `json:"showing"`
}

type IncidentList struct {
	Incidents  []Incident     `json:"incidents"`
	Pagination PaginationInfo `json:"pagination"`
	Counts     IncidentCounts `json:"counts"`
}
