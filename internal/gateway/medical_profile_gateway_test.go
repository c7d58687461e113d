package gateway_test

import (
	"hajj-guide/internal/domain/entity"
	"hajj-guide/internal/domain/errs"
	"hajj-guide/internal/gateway"
)

func (s *GatewaySuite) TestMedicalProfileCreate() {
	s.mustCreatePilgrim(1001)
	s.mustCreatePilgrim(1002)

	profile := func(id, pilgrimID, adminID int64) *entity.MedicalProfile {
		return &entity.MedicalProfile{
			ID:        id,
			BloodType: "A+",
			PilgrimID: pilgrimID,
			AdminID:   adminID,
		}
	}

	s.Run("one profile per pilgrim", func() {
		ok, err := s.profiles.Create(s.ctx, profile(9, 1001, seedAdminID))
		s.Require().NoError(err)
		s.True(ok)

		ok, err = s.profiles.Create(s.ctx, profile(10, 1001, seedAdminID))
		s.Require().ErrorIs(err, errs.ErrUniquenessViolation)
		s.False(ok)

		got, found, err := s.profiles.GetByPilgrimID(s.ctx, 1001)
		s.Require().NoError(err)
		s.Require().True(found)
		s.Equal(int64(9), got.ID)
	})

	s.Run("duplicate profile id", func() {
		ok, err := s.profiles.Create(s.ctx, profile(9, 1002, seedAdminID))
		s.Require().ErrorIs(err, errs.ErrDuplicateKey)
		s.False(ok)
	})

	s.Run("missing pilgrim", func() {
		ok, err := s.profiles.Create(s.ctx, profile(11, 7777, seedAdminID))
		s.Require().ErrorIs(err, errs.ErrForeignKeyMissing)
		s.False(ok)
	})

	s.Run("missing admin", func() {
		ok, err := s.profiles.Create(s.ctx, profile(11, 1002, 7777))
		s.Require().ErrorIs(err, errs.ErrForeignKeyMissing)
		s.False(ok)

		_, found, err := s.profiles.GetByPilgrimID(s.ctx, 1002)
		s.Require().NoError(err)
		s.False(found)
	})

	s.Run("unknown blood type", func() {
		p := profile(11, 1002, seedAdminID)
		p.BloodType = "C+"
		ok, err := s.profiles.Create(s.ctx, p)
		s.Require().ErrorIs(err, errs.ErrInvalidInput)
		s.False(ok)
	})

	s.Run("zero id allocates", func() {
		p := profile(0, 1002, seedAdminID)
		ok, err := s.profiles.Create(s.ctx, p)
		s.Require().NoError(err)
		s.True(ok)
		s.Equal(int64(10), p.ID)
	})
}

func (s *GatewaySuite) TestMedicalProfileRoundTrip() {
	s.mustCreatePilgrim(1001)
	created := s.mustCreateProfile(9, 1001)

	got, found, err := s.profiles.GetByPilgrimID(s.ctx, 1001)
	s.Require().NoError(err)
	s.Require().True(found)
	s.Equal(created, got)

	_, found, err = s.profiles.GetByPilgrimID(s.ctx, 1002)
	s.Require().NoError(err)
	s.False(found)
}

func (s *GatewaySuite) TestMedicalProfileUpdate() {
	s.mustCreatePilgrim(1001)
	s.mustCreateProfile(9, 1001)
	_, err := s.admins.Create(s.ctx, &entity.Admin{ID: 43, Name: "Omar", Password: "secret"})
	s.Require().NoError(err)

	s.Run("records the new author", func() {
		ok, err := s.profiles.Update(s.ctx, gateway.MedicalProfileUpdate{
			ProfileID:      9,
			BloodType:      "B-",
			Medications:    "Insulin",
			MedicalHistory: "Type 1 diabetes",
			AdminID:        43,
		})
		s.Require().NoError(err)
		s.True(ok)

		got, _, err := s.profiles.GetByPilgrimID(s.ctx, 1001)
		s.Require().NoError(err)
		s.Equal("B-", got.BloodType)
		s.Equal("Insulin", got.Medications)
		s.Equal("Type 1 diabetes", got.MedicalHistory)
		s.Equal(int64(43), got.AdminID)
		s.Equal(int64(1001), got.PilgrimID)
	})

	s.Run("absent profile", func() {
		ok, err := s.profiles.Update(s.ctx, gateway.MedicalProfileUpdate{ProfileID: 99, BloodType: "O+", AdminID: 43})
		s.Require().ErrorIs(err, errs.ErrNotFound)
		s.False(ok)
	})

	s.Run("unknown author rolls back", func() {
		ok, err := s.profiles.Update(s.ctx, gateway.MedicalProfileUpdate{ProfileID: 9, BloodType: "O+", AdminID: 7777})
		s.Require().ErrorIs(err, errs.ErrForeignKeyMissing)
		s.False(ok)

		got, _, err := s.profiles.GetByPilgrimID(s.ctx, 1001)
		s.Require().NoError(err)
		s.Equal("B-", got.BloodType)
	})
}
