package gateway_test

import (
	"hajj-guide/internal/domain/entity"
	"hajj-guide/internal/domain/errs"
)

func (s *GatewaySuite) TestPilgrimCreate() {
	s.Run("register then fetch", func() {
		p := entity.Pilgrim{ID: 1001, Name: "Ahmed", Phone: "0501234567", Nationality: "Saudi", Age: 30}
		ok, err := s.pilgrims.Create(s.ctx, &p)
		s.Require().NoError(err)
		s.True(ok)

		got, found, err := s.pilgrims.GetByID(s.ctx, 1001)
		s.Require().NoError(err)
		s.Require().True(found)
		s.Equal(entity.Pilgrim{
			ID:          1001,
			Name:        "Ahmed",
			Phone:       "0501234567",
			Nationality: "Saudi",
			SpecialNeed: "",
			Allergies:   "",
			Age:         30,
		}, got)
	})

	s.Run("duplicate id keeps the first row", func() {
		again := entity.Pilgrim{ID: 1001, Name: "Other", Phone: "0509999999", Nationality: "Egyptian", Age: 50}
		ok, err := s.pilgrims.Create(s.ctx, &again)
		s.Require().ErrorIs(err, errs.ErrDuplicateKey)
		s.False(ok)

		all, err := s.pilgrims.GetAll(s.ctx)
		s.Require().NoError(err)
		matches := 0
		for _, p := range all {
			if p.ID == 1001 {
				matches++
				s.Equal("Ahmed", p.Name)
			}
		}
		s.Equal(1, matches)
	})

	s.Run("zero id allocates the next id", func() {
		p := newPilgrim(0, "Fatima")
		ok, err := s.pilgrims.Create(s.ctx, &p)
		s.Require().NoError(err)
		s.True(ok)
		s.Equal(int64(1002), p.ID)

		got, found, err := s.pilgrims.GetByID(s.ctx, 1002)
		s.Require().NoError(err)
		s.True(found)
		s.Equal("Fatima", got.Name)
	})

	s.Run("invalid input is rejected before the store", func() {
		p := entity.Pilgrim{ID: 2000, Name: "", Phone: "0501234567", Nationality: "Saudi", Age: 200}
		ok, err := s.pilgrims.Create(s.ctx, &p)
		s.Require().ErrorIs(err, errs.ErrInvalidInput)
		s.False(ok)

		var verr *errs.ValidationError
		s.Require().ErrorAs(err, &verr)
		s.Contains(verr.Fields, "name")
		s.Contains(verr.Fields, "age")

		_, found, err := s.pilgrims.GetByID(s.ctx, 2000)
		s.Require().NoError(err)
		s.False(found)
	})

	s.Run("nil pilgrim", func() {
		ok, err := s.pilgrims.Create(s.ctx, nil)
		s.Require().ErrorIs(err, errs.ErrInvalidInput)
		s.False(ok)
	})
}

func (s *GatewaySuite) TestPilgrimGetByIDAbsent() {
	got, found, err := s.pilgrims.GetByID(s.ctx, 999)
	s.Require().NoError(err)
	s.False(found)
	s.Equal(entity.Pilgrim{}, got)
}

func (s *GatewaySuite) TestPilgrimGetAll() {
	s.Run("empty store", func() {
		all, err := s.pilgrims.GetAll(s.ctx)
		s.Require().NoError(err)
		s.Empty(all)
	})

	s.Run("returns every pilgrim", func() {
		for _, id := range []int64{3, 1, 2} {
			s.mustCreatePilgrim(id)
		}
		all, err := s.pilgrims.GetAll(s.ctx)
		s.Require().NoError(err)

		ids := make([]int64, 0, len(all))
		for _, p := range all {
			ids = append(ids, p.ID)
		}
		s.ElementsMatch([]int64{1, 2, 3}, ids)
	})
}

func (s *GatewaySuite) TestPilgrimUpdate() {
	s.mustCreatePilgrim(1001)

	s.Run("reflects new values and keeps the id", func() {
		changed := entity.Pilgrim{
			ID:          1001,
			Name:        "Ahmed Ali",
			Phone:       "0507654321",
			Nationality: "Jordanian",
			SpecialNeed: "Wheelchair",
			Allergies:   "Penicillin",
			Age:         64,
		}
		ok, err := s.pilgrims.Update(s.ctx, changed)
		s.Require().NoError(err)
		s.True(ok)

		got, found, err := s.pilgrims.GetByID(s.ctx, 1001)
		s.Require().NoError(err)
		s.Require().True(found)
		s.Equal(changed, got)
	})

	s.Run("same values still count as one row", func() {
		got, _, err := s.pilgrims.GetByID(s.ctx, 1001)
		s.Require().NoError(err)
		ok, err := s.pilgrims.Update(s.ctx, got)
		s.Require().NoError(err)
		s.True(ok)
	})

	s.Run("absent id", func() {
		ok, err := s.pilgrims.Update(s.ctx, newPilgrim(4040, "Nobody"))
		s.Require().ErrorIs(err, errs.ErrNotFound)
		s.False(ok)
	})

	s.Run("invalid input leaves the row unchanged", func() {
		bad := newPilgrim(1001, "Ahmed")
		bad.Phone = ""
		ok, err := s.pilgrims.Update(s.ctx, bad)
		s.Require().ErrorIs(err, errs.ErrInvalidInput)
		s.False(ok)

		got, _, err := s.pilgrims.GetByID(s.ctx, 1001)
		s.Require().NoError(err)
		s.Equal("0507654321", got.Phone)
	})
}

func (s *GatewaySuite) TestPilgrimDelete() {
	s.Run("removes the pilgrim", func() {
		s.mustCreatePilgrim(1)
		ok, err := s.pilgrims.Delete(s.ctx, 1)
		s.Require().NoError(err)
		s.True(ok)

		_, found, err := s.pilgrims.GetByID(s.ctx, 1)
		s.Require().NoError(err)
		s.False(found)
	})

	s.Run("absent id", func() {
		ok, err := s.pilgrims.Delete(s.ctx, 1)
		s.Require().ErrorIs(err, errs.ErrNotFound)
		s.False(ok)
	})

	s.Run("refuses while dependents exist", func() {
		s.mustCreatePilgrim(2)
		s.mustCreatePermit(5)
		s.mustCreateProfile(9, 2)
		_, err := s.permits.AssignPermit(s.ctx, 2, 5)
		s.Require().NoError(err)

		ok, err := s.pilgrims.Delete(s.ctx, 2)
		s.Require().ErrorIs(err, errs.ErrIntegrityViolation)
		s.False(ok)

		_, found, err := s.pilgrims.GetByID(s.ctx, 2)
		s.Require().NoError(err)
		s.True(found)
		_, found, err = s.profiles.GetByPilgrimID(s.ctx, 2)
		s.Require().NoError(err)
		s.True(found)
	})

	s.Run("cascade removes dependents", func() {
		s.mustCreateSchedule(3)
		s.mustCreateAccommodation(4, 10)
		_, err := s.transport.AssignPilgrim(s.ctx, 2, 3)
		s.Require().NoError(err)
		_, err = s.accommodations.AssignPilgrim(s.ctx, 2, 4)
		s.Require().NoError(err)

		cascading := s.newPilgrimGateway(true)
		ok, err := cascading.Delete(s.ctx, 2)
		s.Require().NoError(err)
		s.True(ok)

		_, found, err := s.pilgrims.GetByID(s.ctx, 2)
		s.Require().NoError(err)
		s.False(found)
		_, found, err = s.profiles.GetByPilgrimID(s.ctx, 2)
		s.Require().NoError(err)
		s.False(found)

		permits, err := s.permits.ListForPilgrim(s.ctx, 2)
		s.Require().NoError(err)
		s.Empty(permits)
		occupied, err := s.accommodations.Occupancy(s.ctx, 4)
		s.Require().NoError(err)
		s.Zero(occupied)
	})
}
