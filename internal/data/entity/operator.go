package entity

// Operator is the person whose calendar is being scheduled. Timezone is
// an IANA zone name and anchors all wall-clock arithmetic for their rules.
type Operator struct {
	Base
	DisplayName string `db:"display_name"`
	Timezone    string `db:"timezone"`
}
