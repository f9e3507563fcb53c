package valueobjects

import "fmt"

type Specialization string

const (
	SpecializationElectrical Specialization = "electrical"
	SpecializationPlumbing   Specialization = "plumbing"
	SpecializationHVAC       Specialization = "hvac"
	SpecializationIT         Specialization = "it"
	SpecializationMechanical Specialization = "mechanical"
	SpecializationCivil      Specialization = "civil"
	SpecializationGeneral    Specialization = "general"
	SpecializationLaboratory Specialization = "laboratory"
	SpecializationOther      Specialization = "other"
)

var validSpecializations = map[Specialization]bool{
	SpecializationElectrical: true,
	SpecializationPlumbing:   true,
	SpecializationHVAC:       true,
	SpecializationIT:         true,
	SpecializationMechanical: true,
	SpecializationCivil:      true,
	SpecializationGeneral:    true,
	SpecializationLaboratory: true,
	SpecializationOther:      true,
}

func (s Specialization) String() string {
	return string(s)
}

func (s Specialization) IsValid() bool {
	return validSpecializations[s]
}

func NewSpecialization(s string) (Specialization, error) {
	v := Specialization(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid specialization: %s", s)
	}
	return v, nil
}
