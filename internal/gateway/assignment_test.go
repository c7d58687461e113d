package gateway_test

import (
	"hajj-guide/internal/domain/entity"
	"hajj-guide/internal/domain/errs"
)

func (s *GatewaySuite) TestTransportSchedule() {
	s.mustCreatePilgrim(1001)

	s.Run("round trip", func() {
		created := s.mustCreateSchedule(3)
		got, found, err := s.transport.GetByID(s.ctx, 3)
		s.Require().NoError(err)
		s.Require().True(found)
		s.Equal(created, got)

		all, err := s.transport.GetAll(s.ctx)
		s.Require().NoError(err)
		s.Len(all, 1)
	})

	s.Run("rejects unknown transport type and bad times", func() {
		bad := entity.TransportSchedule{
			ID:            4,
			DepartureTime: "25:00",
			ArrivalTime:   "soon",
			Route:         "Mina - Arafat",
			TransportType: "Camel",
			AdminID:       seedAdminID,
		}
		ok, err := s.transport.Create(s.ctx, &bad)
		s.Require().ErrorIs(err, errs.ErrInvalidInput)
		s.False(ok)
	})

	s.Run("accepts full timestamps", func() {
		t := entity.TransportSchedule{
			ID:            4,
			DepartureTime: "2026-05-25 06:30:00",
			ArrivalTime:   "2026-05-25T08:00:00Z",
			Route:         "Mina - Arafat",
			TransportType: "Train",
			AdminID:       seedAdminID,
		}
		ok, err := s.transport.Create(s.ctx, &t)
		s.Require().NoError(err)
		s.True(ok)
	})

	s.Run("unknown admin", func() {
		t := entity.TransportSchedule{
			ID:            5,
			DepartureTime: "06:30",
			ArrivalTime:   "08:00",
			Route:         "Arafat - Muzdalifah",
			TransportType: "Bus",
			AdminID:       7777,
		}
		ok, err := s.transport.Create(s.ctx, &t)
		s.Require().ErrorIs(err, errs.ErrForeignKeyMissing)
		s.False(ok)
	})

	s.Run("assignment is a set", func() {
		ok, err := s.transport.AssignPilgrim(s.ctx, 1001, 3)
		s.Require().NoError(err)
		s.True(ok)

		ok, err = s.transport.AssignPilgrim(s.ctx, 1001, 3)
		s.Require().NoError(err)
		s.False(ok)

		schedules, err := s.transport.ListForPilgrim(s.ctx, 1001)
		s.Require().NoError(err)
		s.Require().Len(schedules, 1)
		s.Equal(int64(3), schedules[0].ID)
	})

	s.Run("assignment needs both ends", func() {
		_, err := s.transport.AssignPilgrim(s.ctx, 7777, 3)
		s.Require().ErrorIs(err, errs.ErrForeignKeyMissing)
		_, err = s.transport.AssignPilgrim(s.ctx, 1001, 7777)
		s.Require().ErrorIs(err, errs.ErrForeignKeyMissing)
	})

	s.Run("missing schedule", func() {
		_, found, err := s.transport.GetByID(s.ctx, 7777)
		s.Require().NoError(err)
		s.False(found)
	})
}

func (s *GatewaySuite) TestAccommodationCapacity() {
	for _, id := range []int64{1001, 1002, 1003} {
		s.mustCreatePilgrim(id)
	}
	s.mustCreateAccommodation(7, 2)

	ok, err := s.accommodations.AssignPilgrim(s.ctx, 1001, 7)
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.accommodations.AssignPilgrim(s.ctx, 1002, 7)
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.accommodations.AssignPilgrim(s.ctx, 1003, 7)
	s.Require().ErrorIs(err, errs.ErrCapacityExceeded)
	s.False(ok)

	occupied, err := s.accommodations.Occupancy(s.ctx, 7)
	s.Require().NoError(err)
	s.Equal(int64(2), occupied)

	s.Run("repeat on a full accommodation is still a no-op", func() {
		ok, err := s.accommodations.AssignPilgrim(s.ctx, 1001, 7)
		s.Require().NoError(err)
		s.False(ok)
	})

	s.Run("rejected pilgrim has no accommodation", func() {
		list, err := s.accommodations.ListForPilgrim(s.ctx, 1003)
		s.Require().NoError(err)
		s.Empty(list)
	})
}

func (s *GatewaySuite) TestAccommodation() {
	s.mustCreatePilgrim(1001)

	s.Run("round trip", func() {
		created := s.mustCreateAccommodation(7, 4)
		got, found, err := s.accommodations.GetByID(s.ctx, 7)
		s.Require().NoError(err)
		s.Require().True(found)
		s.Equal(created, got)
	})

	s.Run("duplicate id", func() {
		a := entity.Accommodation{ID: 7, HotelName: "Other", RoomType: "Double", Capacity: 2, Address: "Aziziyah", AdminID: seedAdminID}
		ok, err := s.accommodations.Create(s.ctx, &a)
		s.Require().ErrorIs(err, errs.ErrDuplicateKey)
		s.False(ok)
	})

	s.Run("capacity must be positive", func() {
		a := entity.Accommodation{ID: 8, HotelName: "Tent 12", RoomType: "Tent", Capacity: 0, Address: "Mina", AdminID: seedAdminID}
		ok, err := s.accommodations.Create(s.ctx, &a)
		s.Require().ErrorIs(err, errs.ErrInvalidInput)
		s.False(ok)
	})

	s.Run("lists in id order", func() {
		s.mustCreateAccommodation(0, 3)
		s.mustCreateAccommodation(2, 3)
		for _, id := range []int64{8, 2, 7} {
			_, err := s.accommodations.AssignPilgrim(s.ctx, 1001, id)
			s.Require().NoError(err)
		}

		list, err := s.accommodations.ListForPilgrim(s.ctx, 1001)
		s.Require().NoError(err)
		s.Require().Len(list, 3)
		s.Equal([]int64{2, 7, 8}, []int64{list[0].ID, list[1].ID, list[2].ID})

		all, err := s.accommodations.GetAll(s.ctx)
		s.Require().NoError(err)
		s.Len(all, 3)
	})
}

func (s *GatewaySuite) TestPermitAssignment() {
	s.mustCreatePilgrim(1001)
	created := s.mustCreatePermit(5)

	got, found, err := s.permits.GetByID(s.ctx, 5)
	s.Require().NoError(err)
	s.Require().True(found)
	s.Equal(created, got)

	ok, err := s.permits.AssignPermit(s.ctx, 1001, 5)
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.permits.AssignPermit(s.ctx, 1001, 5)
	s.Require().NoError(err)
	s.False(ok)

	held, err := s.permits.ListForPilgrim(s.ctx, 1001)
	s.Require().NoError(err)
	s.Require().Len(held, 1)
	s.Equal(int64(5), held[0].ID)

	s.Run("unknown permit", func() {
		ok, err := s.permits.AssignPermit(s.ctx, 1001, 6)
		s.Require().ErrorIs(err, errs.ErrForeignKeyMissing)
		s.False(ok)
	})

	s.Run("permits list", func() {
		s.mustCreatePermit(0)
		all, err := s.permits.GetAll(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(all, 2)
		s.Equal(int64(6), all[1].ID)
	})

	s.Run("duplicate permit id", func() {
		p := entity.Permit{ID: 5, Name: "Again", Location: "Makkah", ServiceType: "Tawaf"}
		ok, err := s.permits.Create(s.ctx, &p)
		s.Require().ErrorIs(err, errs.ErrDuplicateKey)
		s.False(ok)
	})
}
