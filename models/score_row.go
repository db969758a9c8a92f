// kahootboard/models/score_row.go
package models

// ScoreRow is one line of the shared grade sheet: three nullable quiz
// percentages and a derived final score. The whole table is replaced
// as a unit on each import; rows carry no reference to student
// accounts beyond the name text.
type ScoreRow struct {
	ID    uint     `gorm:"primaryKey" json:"id"`
	Name  string   `gorm:"not null" json:"name"`
	K1    *float64 `json:"k1"`
	K2    *float64 `json:"k2"`
	K3    *float64 `json:"k3"`
	Final *float64 `json:"final"`
}
