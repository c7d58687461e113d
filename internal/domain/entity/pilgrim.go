package entity

// Pilgrim is a registered participant of the season.
type Pilgrim struct {
	ID          int64  `gorm:"column:PilgrimID;primaryKey;autoIncrement:false" json:"pilgrim_id" validate:"gte=0"`
	Name        string `gorm:"column:PilgrimName;type:varchar(100);not null" json:"name" validate:"required,max=100"`
	Phone       string `gorm:"column:Phone;type:varchar(20);not null" json:"phone" validate:"required,max=20"`
	Nationality string `gorm:"column:Nationality;type:varchar(60);not null" json:"nationality" validate:"required,max=60"`
	SpecialNeed string `gorm:"column:specialNeed;type:varchar(255)" json:"special_need,omitempty" validate:"max=255"`
	Allergies   string `gorm:"column:allergies;type:varchar(255)" json:"allergies,omitempty" validate:"max=255"`
	Age         int    `gorm:"column:pilgrimAge;not null" json:"age" validate:"gte=0,lte=150"`

	// Relationships
	MedicalProfile *MedicalProfile        `gorm:"foreignKey:PilgrimID;references:ID;constraint:OnDelete:RESTRICT" json:"-" validate:"-"`
	Transports     []PilgrimTransport     `gorm:"foreignKey:PilgrimID;references:ID;constraint:OnDelete:RESTRICT" json:"-" validate:"-"`
	Accommodations []PilgrimAccommodation `gorm:"foreignKey:PilgrimID;references:ID;constraint:OnDelete:RESTRICT" json:"-" validate:"-"`
	Permits        []PilgrimPermit        `gorm:"foreignKey:PilgrimID;references:ID;constraint:OnDelete:RESTRICT" json:"-" validate:"-"`
}

func (Pilgrim) TableName() string {
	return "Pilgrim"
}
