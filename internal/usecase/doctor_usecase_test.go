package usecase

import (
	"context"
	"testing"
	"time"

	"clinic-scheduling/internal/delivery/dto"
	"clinic-scheduling/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDoctorUsecase() *doctorUsecase {
	u := NewDoctorUsecase(testLogger(), repository.NewDoctorRegistry()).(*doctorUsecase)
	u.now = func() time.Time { return testNow }
	return u
}

func registerDoctorRequest() *dto.RegisterDoctorRequest {
	return &dto.RegisterDoctorRequest{
		Name:       "Gregory House",
		NationalID: "11122233344",
		BirthDate:  "11-06-1959",
		License:    "CRM-1000",
		Specialty:  "Diagnostics",
	}
}

func TestRegisterDoctor(t *testing.T) {
	u := newTestDoctorUsecase()

	doctor, err := u.Register(context.Background(), registerDoctorRequest())
	require.NoError(t, err)

	assert.Equal(t, "Gregory House", doctor.Identity.Name)
	assert.Equal(t, "111.222.333-44", doctor.Identity.IDKey)
	assert.Equal(t, "CRM-1000", doctor.License)
	assert.Equal(t, "Diagnostics", doctor.Specialty)
}

func TestRegisterDoctorValidation(t *testing.T) {
	u := newTestDoctorUsecase()
	ctx := context.Background()

	bad := registerDoctorRequest()
	bad.License = "  "
	_, err := u.Register(ctx, bad)
	assert.True(t, IsValidation(err))

	bad = registerDoctorRequest()
	bad.Specialty = ""
	_, err = u.Register(ctx, bad)
	assert.True(t, IsValidation(err))

	bad = registerDoctorRequest()
	bad.NationalID = "123"
	_, err = u.Register(ctx, bad)
	assert.True(t, IsValidation(err))

	assert.Empty(t, u.List(ctx))
}

func TestRegisterDoctorDuplicateLicense(t *testing.T) {
	u := newTestDoctorUsecase()
	ctx := context.Background()

	_, err := u.Register(ctx, registerDoctorRequest())
	require.NoError(t, err)

	dup := registerDoctorRequest()
	dup.NationalID = "55566677788"
	_, err = u.Register(ctx, dup)
	assert.True(t, IsConflict(err))
	assert.Len(t, u.List(ctx), 1)
}

func TestUpdateDoctor(t *testing.T) {
	u := newTestDoctorUsecase()
	ctx := context.Background()

	_, err := u.Register(ctx, registerDoctorRequest())
	require.NoError(t, err)

	updated, err := u.Update(ctx, "CRM-1000", &dto.UpdateDoctorRequest{Specialty: "Nephrology"})
	require.NoError(t, err)
	assert.Equal(t, "Nephrology", updated.Specialty)
	assert.Equal(t, "CRM-1000", updated.License)

	// Re-keying by license moves the lookup key.
	_, err = u.Update(ctx, "CRM-1000", &dto.UpdateDoctorRequest{License: "CRM-1001"})
	require.NoError(t, err)
	_, err = u.GetByLicense(ctx, "CRM-1001")
	assert.NoError(t, err)
	_, err = u.GetByLicense(ctx, "CRM-1000")
	assert.True(t, IsNotFound(err))
}

func TestUpdateDoctorDuplicateLicense(t *testing.T) {
	u := newTestDoctorUsecase()
	ctx := context.Background()

	_, err := u.Register(ctx, registerDoctorRequest())
	require.NoError(t, err)

	second := registerDoctorRequest()
	second.NationalID = "55566677788"
	second.License = "CRM-2000"
	_, err = u.Register(ctx, second)
	require.NoError(t, err)

	_, err = u.Update(ctx, "CRM-2000", &dto.UpdateDoctorRequest{License: "CRM-1000"})
	assert.True(t, IsConflict(err))

	// A doctor may re-submit its own license.
	_, err = u.Update(ctx, "CRM-2000", &dto.UpdateDoctorRequest{License: "CRM-2000"})
	assert.NoError(t, err)
}

func TestRemoveDoctor(t *testing.T) {
	u := newTestDoctorUsecase()
	ctx := context.Background()

	_, err := u.Register(ctx, registerDoctorRequest())
	require.NoError(t, err)

	require.NoError(t, u.Remove(ctx, "CRM-1000"))
	assert.True(t, IsNotFound(u.Remove(ctx, "CRM-1000")))
}
