package entity

// Accommodation is a lodging resource. No more than Capacity pilgrims may be
// assigned to it.
type Accommodation struct {
	ID        int64  `gorm:"column:AccommodationID;primaryKey;autoIncrement:false" json:"accommodation_id" validate:"gte=0"`
	HotelName string `gorm:"column:HotelName;type:varchar(150);not null" json:"hotel_name" validate:"required,max=150"`
	RoomType  string `gorm:"column:roomType;type:varchar(50);not null" json:"room_type" validate:"required,max=50"`
	Capacity  int    `gorm:"column:capacity;not null" json:"capacity" validate:"gte=1"`
	Address   string `gorm:"column:address;type:varchar(255);not null" json:"address" validate:"required,max=255"`
	AdminID   int64  `gorm:"column:AdminID;not null;index" json:"admin_id" validate:"gt=0"`

	Occupants []PilgrimAccommodation `gorm:"foreignKey:AccommodationID;references:ID;constraint:OnDelete:RESTRICT" json:"-" validate:"-"`
}

func (Accommodation) TableName() string {
	return "Accommodation"
}
