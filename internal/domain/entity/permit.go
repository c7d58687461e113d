package entity

// Permit is a named access right to a location or service.
type Permit struct {
	ID          int64  `gorm:"column:PermitID;primaryKey;autoIncrement:false" json:"permit_id" validate:"gte=0"`
	Name        string `gorm:"column:Name;type:varchar(100);not null" json:"name" validate:"required,max=100"`
	Location    string `gorm:"column:location;type:varchar(150);not null" json:"location" validate:"required,max=150"`
	ServiceType string `gorm:"column:serviceType;type:varchar(100);not null" json:"service_type" validate:"required,max=100"`

	Holders []PilgrimPermit `gorm:"foreignKey:PermitID;references:ID;constraint:OnDelete:RESTRICT" json:"-" validate:"-"`
}

func (Permit) TableName() string {
	return "Permit"
}
