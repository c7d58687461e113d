package entity

// The three association tables are plain pair sets keyed by both columns.
// Their foreign keys are declared on Pilgrim and on each resource.

type PilgrimTransport struct {
	PilgrimID  int64 `gorm:"column:PilgrimID;primaryKey;autoIncrement:false"`
	ScheduleID int64 `gorm:"column:ScheduleID;primaryKey;autoIncrement:false;index"`
}

func (PilgrimTransport) TableName() string {
	return "PilgrimTransport"
}

type PilgrimAccommodation struct {
	PilgrimID       int64 `gorm:"column:PilgrimID;primaryKey;autoIncrement:false"`
	AccommodationID int64 `gorm:"column:AccommodationID;primaryKey;autoIncrement:false;index"`
}

func (PilgrimAccommodation) TableName() string {
	return "PilgrimAccommodation"
}

type PilgrimPermit struct {
	PilgrimID int64 `gorm:"column:PilgrimID;primaryKey;autoIncrement:false"`
	PermitID  int64 `gorm:"column:PermitID;primaryKey;autoIncrement:false;index"`
}

func (PilgrimPermit) TableName() string {
	return "PilgrimPermit"
}
