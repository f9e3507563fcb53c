package valueobjects

import "fmt"

type MovementType string

const (
	MovementIncoming   MovementType = "incoming"
	MovementOutgoing   MovementType = "outgoing"
	MovementTransfer   MovementType = "transfer"
	MovementReturn     MovementType = "return"
	MovementAssignment MovementType = "assignment"
)

var validMovementTypes = map[MovementType]bool{
	MovementIncoming:   true,
	MovementOutgoing:   true,
	MovementTransfer:   true,
	MovementReturn:     true,
	MovementAssignment: true,
}

func (m MovementType) String() string {
	return string(m)
}

func (m MovementType) IsValid() bool {
	return validMovementTypes[m]
}

func NewMovementType(s string) (MovementType, error) {
	v := MovementType(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid movement type: %s", s)
	}
	return v, nil
}
