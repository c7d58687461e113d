package entity

// TransportSchedule is one departure/arrival along a route. Times are kept as
// text, either HH:MM or a full timestamp.
type TransportSchedule struct {
	ID            int64  `gorm:"column:ScheduleID;primaryKey;autoIncrement:false" json:"schedule_id" validate:"gte=0"`
	DepartureTime string `gorm:"column:departureTime;type:varchar(32);not null" json:"departure_time" validate:"required,clocktime"`
	ArrivalTime   string `gorm:"column:arrivalTime;type:varchar(32);not null" json:"arrival_time" validate:"required,clocktime"`
	Route         string `gorm:"column:route;type:varchar(255);not null" json:"route" validate:"required,max=255"`
	TransportType string `gorm:"column:TransportType;type:varchar(20);not null" json:"transport_type" validate:"required,transporttype"`
	AdminID       int64  `gorm:"column:AdminID;not null;index" json:"admin_id" validate:"gt=0"`

	Passengers []PilgrimTransport `gorm:"foreignKey:ScheduleID;references:ID;constraint:OnDelete:RESTRICT" json:"-" validate:"-"`
}

func (TransportSchedule) TableName() string {
	return "TransportSchedule"
}

// Transport modes accepted by the transporttype validation tag.
var TransportTypes = []string{"Bus", "Train", "Car", "Van", "Shuttle", "Flight"}
