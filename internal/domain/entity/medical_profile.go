package entity

// MedicalProfile holds the clinical attributes of one pilgrim. AdminID is the
// admin who last wrote the profile.
type MedicalProfile struct {
	ID             int64  `gorm:"column:ProfileID;primaryKey;autoIncrement:false" json:"profile_id" validate:"gte=0"`
	BloodType      string `gorm:"column:bloodType;type:varchar(3);not null" json:"blood_type" validate:"required,bloodtype"`
	Medications    string `gorm:"column:medications;type:text" json:"medications,omitempty"`
	MedicalHistory string `gorm:"column:Medical_History;type:text" json:"medical_history,omitempty"`
	PilgrimID      int64  `gorm:"column:PilgrimID;not null;uniqueIndex:uq_medical_profile_pilgrim" json:"pilgrim_id" validate:"gt=0"`
	AdminID        int64  `gorm:"column:AdminID;not null;index" json:"admin_id" validate:"gt=0"`
}

func (MedicalProfile) TableName() string {
	return "MedicalProfile"
}

// Blood types accepted by the bloodtype validation tag.
var BloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}
