package valueobjects

import "fmt"

type ProgramLevel string

const (
	LevelDiploma   ProgramLevel = "diploma"
	LevelBachelors ProgramLevel = "bachelors"
	LevelMasters   ProgramLevel = "masters"
	LevelPhD       ProgramLevel = "phd"
)

var validLevels = map[ProgramLevel]bool{
	LevelDiploma:   true,
	LevelBachelors: true,
	LevelMasters:   true,
	LevelPhD:       true,
}

func (l ProgramLevel) String() string {
	return string(l)
}

func (l ProgramLevel) IsValid() bool {
	return validLevels[l]
}

func NewProgramLevel(s string) (ProgramLevel, error) {
	l := ProgramLevel(s)
	if !l.IsValid() {
		return "", fmt.Errorf("invalid program level: %s", s)
	}
	return l, nil
}
