package gateway_test

import (
	"hajj-guide/internal/domain/entity"
	"hajj-guide/internal/domain/errs"
	"hajj-guide/pkg/password"

	"gorm.io/gorm"
)

func (s *GatewaySuite) TestValidateAdmin() {
	cases := []struct {
		name     string
		adminID  int64
		password string
		want     bool
	}{
		{name: "matching password", adminID: seedAdminID, password: seedAdminPassword, want: true},
		{name: "wrong password", adminID: seedAdminID, password: "wrong", want: false},
		{name: "unknown admin", adminID: 43, password: seedAdminPassword, want: false},
		{name: "empty password", adminID: seedAdminID, password: "", want: false},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			ok, err := s.admins.ValidateAdmin(s.ctx, tc.adminID, tc.password)
			s.Require().NoError(err)
			s.Equal(tc.want, ok)
		})
	}
}

func (s *GatewaySuite) TestValidateAdminLegacyPlaintext() {
	// Rows written by older deployments hold the password as entered.
	s.Require().NoError(s.repos.Admin.Create(s.ctx, s.mustAcquire(), &entity.Admin{ID: 7, Name: "Legacy", Password: "plain"}))

	ok, err := s.admins.ValidateAdmin(s.ctx, 7, "plain")
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.admins.ValidateAdmin(s.ctx, 7, "plain ")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *GatewaySuite) TestValidatePilgrim() {
	s.mustCreatePilgrim(1001)

	ok, err := s.admins.ValidatePilgrim(s.ctx, 1001)
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.admins.ValidatePilgrim(s.ctx, 1002)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *GatewaySuite) TestGetAdminByID() {
	s.Run("hides the password", func() {
		admin, found, err := s.admins.GetAdminByID(s.ctx, seedAdminID)
		s.Require().NoError(err)
		s.Require().True(found)
		s.Equal("Sara", admin.Name)
		s.Equal("s@x", admin.Email)
		s.Empty(admin.Password)
	})

	s.Run("absent admin", func() {
		_, found, err := s.admins.GetAdminByID(s.ctx, 43)
		s.Require().NoError(err)
		s.False(found)
	})
}

func (s *GatewaySuite) TestAdminCreate() {
	s.Run("stores a bcrypt hash", func() {
		admin := entity.Admin{Name: "Omar", Password: "secret"}
		ok, err := s.admins.Create(s.ctx, &admin)
		s.Require().NoError(err)
		s.True(ok)
		s.Equal(seedAdminID+1, admin.ID)

		stored, err := s.repos.Admin.FindByID(s.ctx, s.mustAcquire(), admin.ID)
		s.Require().NoError(err)
		s.Require().NotNil(stored)
		s.True(password.IsHashed(stored.Password))
		s.NotEqual("secret", stored.Password)
	})

	s.Run("duplicate id", func() {
		ok, err := s.admins.Create(s.ctx, &entity.Admin{ID: seedAdminID, Name: "Again", Password: "x"})
		s.Require().ErrorIs(err, errs.ErrDuplicateKey)
		s.False(ok)
	})

	s.Run("password is required", func() {
		ok, err := s.admins.Create(s.ctx, &entity.Admin{ID: 50, Name: "NoPass"})
		s.Require().ErrorIs(err, errs.ErrInvalidInput)
		s.False(ok)
	})
}

func (s *GatewaySuite) mustAcquire() *gorm.DB {
	db, err := s.store.Acquire(s.ctx)
	s.Require().NoError(err)
	return db
}
