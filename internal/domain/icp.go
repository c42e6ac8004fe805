package domain

import "time"

// ICP is an Ideal Customer Profile.
type ICP struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Industry     string    `json:"industry"`
	TechStack    []string  `json:"techStack"`
	Location     string    `json:"location"`
	Persona      []string  `json:"persona"`
	BusinessSize string    `json:"businessSize"`
	Tone         string    `json:"tone"`
	Designations []string  `json:"designations"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (i ICP) EntityID() string { return i.ID }
func (i ICP) CreatedTime() time.Time { return i.CreatedAt }

func (i ICP) WithID(id string, createdAt time.Time) ICP {
	i.ID = id
	i.CreatedAt = createdAt
	i.TechStack = orEmpty(i.TechStack)
	i.Persona = orEmpty(i.Persona)
	i.Designations = orEmpty(i.Designations)
	return i
}
