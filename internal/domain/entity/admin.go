package entity

// Admin is a privileged user. Password holds either a bcrypt hash or, for
// rows created outside this module, the legacy plaintext value.
type Admin struct {
	ID       int64  `gorm:"column:AdminID;primaryKey;autoIncrement:false" json:"admin_id" validate:"gte=0"`
	Name     string `gorm:"column:AdminName;type:varchar(100);not null" json:"name" validate:"required,max=100"`
	Phone    string `gorm:"column:phone;type:varchar(20)" json:"phone,omitempty" validate:"max=20"`
	Email    string `gorm:"column:Email;type:varchar(255)" json:"email,omitempty" validate:"max=255"`
	Password string `gorm:"column:Password;type:varchar(255);not null" json:"-" validate:"required"`

	// Relationships. Declared on the owning side so the foreign keys land on
	// the child tables.
	Accommodations     []Accommodation     `gorm:"foreignKey:AdminID;references:ID;constraint:OnDelete:RESTRICT" json:"-" validate:"-"`
	TransportSchedules []TransportSchedule `gorm:"foreignKey:AdminID;references:ID;constraint:OnDelete:RESTRICT" json:"-" validate:"-"`
	MedicalProfiles    []MedicalProfile    `gorm:"foreignKey:AdminID;references:ID;constraint:OnDelete:RESTRICT" json:"-" validate:"-"`
}

func (Admin) TableName() string {
	return "Admin"
}
