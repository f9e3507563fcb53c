package valueobjects

import "fmt"

type AssetStatus string

const (
	AssetStatusActive      AssetStatus = "active"
	AssetStatusInactive    AssetStatus = "inactive"
	AssetStatusDamaged     AssetStatus = "damaged"
	AssetStatusDisposed    AssetStatus = "disposed"
	AssetStatusLost        AssetStatus = "lost"
	AssetStatusMaintenance AssetStatus = "maintenance"
)

var validAssetStatuses = map[AssetStatus]bool{
	AssetStatusActive:      true,
	AssetStatusInactive:    true,
	AssetStatusDamaged:     true,
	AssetStatusDisposed:    true,
	AssetStatusLost:        true,
	AssetStatusMaintenance: true,
}

func (a AssetStatus) String() string {
	return string(a)
}

func (a AssetStatus) IsValid() bool {
	return validAssetStatuses[a]
}

func NewAssetStatus(s string) (AssetStatus, error) {
	v := AssetStatus(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid asset status: %s", s)
	}
	return v, nil
}

// IsValidAssetStatus is the predicate used by the status lifecycle.
func IsValidAssetStatus(s string) bool {
	return AssetStatus(s).IsValid()
}

type AssetCondition string

const (
	ConditionExcellent AssetCondition = "excellent"
	ConditionGood      AssetCondition = "good"
	ConditionFair      AssetCondition = "fair"
	ConditionPoor      AssetCondition = "poor"
	ConditionCondemned AssetCondition = "condemned"
)

var validAssetConditions = map[AssetCondition]bool{
	ConditionExcellent: true,
	ConditionGood:      true,
	ConditionFair:      true,
	ConditionPoor:      true,
	ConditionCondemned: true,
}

func (a AssetCondition) String() string {
	return string(a)
}

func (a AssetCondition) IsValid() bool {
	return validAssetConditions[a]
}

func NewAssetCondition(s string) (AssetCondition, error) {
	v := AssetCondition(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid asset condition: %s", s)
	}
	return v, nil
}
