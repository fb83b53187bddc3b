package model

// FamilyMember is a person the parser can recognise in text.
type FamilyMember struct {
	Name             string   `json:"name" yaml:"name"`
	NameLocalized    string   `json:"nameLocalized,omitempty" yaml:"name_localized"`
	Aliases          []string `json:"aliases,omitempty" yaml:"aliases"`
	IsChild          bool     `json:"isChild" yaml:"is_child"`
	NeedsSupervision bool     `json:"needsSupervision" yaml:"needs_supervision"`
}

// Spellings returns every way the member may be written, canonical name first.
func (m FamilyMember) Spellings() []string {
	out := []string{m.Name}
	if m.NameLocalized != "" {
		out = append(out, m.NameLocalized)
	}
	return append(out, m.Aliases...)
}

// KnownPlace is a configured destination.
type KnownPlace struct {
	Key                 string   `json:"key" yaml:"key"`
	Name                string   `json:"name" yaml:"name"`
	NameLocalized       string   `json:"nameLocalized,omitempty" yaml:"name_localized"`
	Keywords            []string `json:"keywords,omitempty" yaml:"keywords"`
	DrivingTimeFromHome int      `json:"drivingTimeFromHome" yaml:"driving_time_from_home"`
	RequiresDriving     bool     `json:"requiresDriving" yaml:"requires_driving"`
}

// Spellings returns every keyword that refers to the place.
func (p KnownPlace) Spellings() []string {
	out := []string{}
	if p.Name != "" {
		out = append(out, p.Name)
	}
	if p.NameLocalized != "" {
		out = append(out, p.NameLocalized)
	}
	return append(out, p.Keywords...)
}

// Roster is the read-only reference data consumed by the parser.
type Roster struct {
	Members []FamilyMember `json:"members" yaml:"members"`
	Places  []KnownPlace   `json:"places" yaml:"places"`
}

// Member looks a member up by canonical name.
func (r Roster) Member(name string) (FamilyMember, bool) {
	for _, m := range r.Members {
		if m.Name == name {
			return m, true
		}
	}
	return FamilyMember{}, false
}

// Place looks a place up by key.
func (r Roster) Place(key string) (KnownPlace, bool) {
	for _, p := range r.Places {
		if p.Key == key {
			return p, true
		}
	}
	return KnownPlace{}, false
}
