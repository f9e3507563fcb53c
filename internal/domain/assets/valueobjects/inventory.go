package valueobjects

import "fmt"

type InventoryUnit string

const (
	UnitPieces InventoryUnit = "pieces"
	UnitBoxes  InventoryUnit = "boxes"
	UnitReams  InventoryUnit = "reams"
	UnitLiters InventoryUnit = "liters"
	UnitKg     InventoryUnit = "kg"
	UnitMeters InventoryUnit = "meters"
	UnitSets   InventoryUnit = "sets"
	UnitRolls  InventoryUnit = "rolls"
	UnitOther  InventoryUnit = "other"
)

var validInventoryUnits = map[InventoryUnit]bool{
	UnitPieces: true,
	UnitBoxes:  true,
	UnitReams:  true,
	UnitLiters: true,
	UnitKg:     true,
	UnitMeters: true,
	UnitSets:   true,
	UnitRolls:  true,
	UnitOther:  true,
}

func (i InventoryUnit) String() string {
	return string(i)
}

func (i InventoryUnit) IsValid() bool {
	return validInventoryUnits[i]
}

func NewInventoryUnit(s string) (InventoryUnit, error) {
	v := InventoryUnit(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid unit: %s", s)
	}
	return v, nil
}

type TransactionType string

const (
	TransactionInbound    TransactionType = "inbound"
	TransactionOutbound   TransactionType = "outbound"
	TransactionAdjustment TransactionType = "adjustment"
	TransactionDamage     TransactionType = "damage"
	TransactionReturn     TransactionType = "return"
)

var validTransactionTypes = map[TransactionType]bool{
	TransactionInbound:    true,
	TransactionOutbound:   true,
	TransactionAdjustment: true,
	TransactionDamage:     true,
	TransactionReturn:     true,
}

func (t TransactionType) String() string {
	return string(t)
}

func (t TransactionType) IsValid() bool {
	return validTransactionTypes[t]
}

func NewTransactionType(s string) (TransactionType, error) {
	v := TransactionType(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid transaction type: %s", s)
	}
	return v, nil
}
