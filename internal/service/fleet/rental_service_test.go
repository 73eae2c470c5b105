package fleet

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fleet-rental-service/internal/domain"
	"fleet-rental-service/internal/domain/customer"
	"fleet-rental-service/internal/domain/rental"
	"fleet-rental-service/internal/domain/vehicle"
	"fleet-rental-service/internal/repository/memory"
)

type fixture struct {
	service      *RentalService
	vehicleRepo  *memory.VehicleRepository
	customerRepo *memory.CustomerRepository
	rentalRepo   *memory.RentalRepository
}

func newFixture() *fixture {
	vehicleRepo := memory.NewVehicleRepository()
	customerRepo := memory.NewCustomerRepository()
	rentalRepo := memory.NewRentalRepository()
	return &fixture{
		service:      NewRentalService(vehicleRepo, customerRepo, rentalRepo, zap.NewNop()),
		vehicleRepo:  vehicleRepo,
		customerRepo: customerRepo,
		rentalRepo:   rentalRepo,
	}
}

func (f *fixture) addCustomer(t *testing.T) customer.ID {
	t.Helper()
	name, err := customer.NewName("Jane Doe")
	require.NoError(t, err)
	email, err := customer.NewEmail("jane@example.com")
	require.NoError(t, err)
	c := customer.New(customer.NextID(), name, email)
	require.NoError(t, f.customerRepo.Add(context.Background(), c))
	return c.ID()
}

func (f *fixture) addVehicle(t *testing.T) vehicle.ID {
	t.Helper()
	v, err := vehicle.New(vehicle.NextID(), "Toyota Corolla")
	require.NoError(t, err)
	require.NoError(t, f.vehicleRepo.Add(context.Background(), v))
	return v.ID()
}

func today() time.Time {
	return time.Now().UTC()
}

func TestRentVehicle(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	customerID := f.addCustomer(t)
	vehicleID := f.addVehicle(t)

	r, err := f.service.RentVehicle(ctx, customerID, vehicleID, today())
	require.NoError(t, err)

	assert.Equal(t, rental.StatusActive, r.Status())
	assert.Equal(t, customerID, r.CustomerID())
	assert.Equal(t, vehicleID, r.VehicleID())

	v, err := f.vehicleRepo.GetByID(ctx, vehicleID)
	require.NoError(t, err)
	assert.Equal(t, vehicle.StatusRented, v.Status())

	stored, err := f.rentalRepo.GetByID(ctx, r.ID())
	require.NoError(t, err)
	assert.True(t, stored.IsActive())
}

func TestRentVehicleUnknownCustomer(t *testing.T) {
	f := newFixture()
	vehicleID := f.addVehicle(t)

	_, err := f.service.RentVehicle(context.Background(), customer.NextID(), vehicleID, today())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestRentVehicleUnknownVehicle(t *testing.T) {
	f := newFixture()
	customerID := f.addCustomer(t)

	_, err := f.service.RentVehicle(context.Background(), customerID, vehicle.NextID(), today())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVehicleNotFound)
}

func TestRentVehicleNotAvailable(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	customerID := f.addCustomer(t)
	vehicleID := f.addVehicle(t)

	v, err := f.vehicleRepo.GetByID(ctx, vehicleID)
	require.NoError(t, err)
	require.NoError(t, v.MarkAsUnderMaintenance())
	require.NoError(t, f.vehicleRepo.Update(ctx, v))

	_, err = f.service.RentVehicle(ctx, customerID, vehicleID, today())
	require.Error(t, err)
	assert.True(t, domain.IsRuleViolation(err))
	assert.EqualError(t, err, "Vehicle "+vehicleID.String()+" is not available for rental. Current status: Maintenance")
}

func TestRentVehicleCustomerAlreadyRenting(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	customerID := f.addCustomer(t)
	first := f.addVehicle(t)
	second := f.addVehicle(t)

	_, err := f.service.RentVehicle(ctx, customerID, first, today())
	require.NoError(t, err)

	_, err = f.service.RentVehicle(ctx, customerID, second, today())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCustomerHasActiveRental)
	assert.EqualError(t, err, "Customer "+customerID.String()+" already has an active rental.")

	// The rejected rent must not touch the second vehicle.
	v, err := f.vehicleRepo.GetByID(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, vehicle.StatusAvailable, v.Status())
}

func TestRentVehicleStartDateInThePast(t *testing.T) {
	f := newFixture()
	customerID := f.addCustomer(t)
	vehicleID := f.addVehicle(t)

	_, err := f.service.RentVehicle(context.Background(), customerID, vehicleID, today().AddDate(0, 0, -2))
	require.Error(t, err)
	assert.True(t, domain.IsRuleViolation(err))
	assert.EqualError(t, err, "Rental start date cannot be in the past.")
}

func TestReturnVehicle(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	customerID := f.addCustomer(t)
	vehicleID := f.addVehicle(t)

	start := today()
	r, err := f.service.RentVehicle(ctx, customerID, vehicleID, start)
	require.NoError(t, err)

	returned, err := f.service.ReturnVehicle(ctx, r.ID(), start.AddDate(0, 0, 5))
	require.NoError(t, err)

	assert.Equal(t, rental.StatusCompleted, returned.Status())
	d := returned.DurationInDays()
	require.NotNil(t, d)
	assert.Equal(t, 5, *d)

	v, err := f.vehicleRepo.GetByID(ctx, vehicleID)
	require.NoError(t, err)
	assert.Equal(t, vehicle.StatusAvailable, v.Status())

	// The customer can rent again once the rental completed.
	has, err := f.rentalRepo.CustomerHasActiveRental(ctx, customerID)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestReturnVehicleUnknownRental(t *testing.T) {
	f := newFixture()

	_, err := f.service.ReturnVehicle(context.Background(), rental.NextID(), today())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRentalNotFound)
}

func TestReturnVehicleAlreadyCompleted(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	customerID := f.addCustomer(t)
	vehicleID := f.addVehicle(t)

	start := today()
	r, err := f.service.RentVehicle(ctx, customerID, vehicleID, start)
	require.NoError(t, err)
	_, err = f.service.ReturnVehicle(ctx, r.ID(), start.AddDate(0, 0, 1))
	require.NoError(t, err)

	_, err = f.service.ReturnVehicle(ctx, r.ID(), start.AddDate(0, 0, 2))
	require.Error(t, err)
	assert.True(t, domain.IsRuleViolation(err))
	assert.EqualError(t, err, "Rental "+r.ID().String()+" is not active. Current status: Completed")
}

func TestCreateVehicle(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	id := vehicle.NextID()
	v, err := f.service.CreateVehicle(ctx, id, "Toyota Corolla")
	require.NoError(t, err)
	assert.Equal(t, vehicle.StatusAvailable, v.Status())

	stored, err := f.vehicleRepo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Toyota Corolla", stored.Model())
}

func TestCreateVehicleDuplicateID(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	id := vehicle.NextID()
	_, err := f.service.CreateVehicle(ctx, id, "Toyota Corolla")
	require.NoError(t, err)

	_, err = f.service.CreateVehicle(ctx, id, "Ford Focus")
	require.Error(t, err)
	assert.True(t, domain.IsRuleViolation(err))
	assert.EqualError(t, err, "A vehicle with ID "+id.String()+" already exists in the fleet.")
}

func TestCreateVehicleMultibyteModel(t *testing.T) {
	f := newFixture()

	model := strings.Repeat("é", 60)
	v, err := f.service.CreateVehicle(context.Background(), vehicle.NextID(), model)
	require.NoError(t, err)
	assert.Equal(t, model, v.Model())
}

func TestCreateVehicleInvalidModel(t *testing.T) {
	f := newFixture()

	_, err := f.service.CreateVehicle(context.Background(), vehicle.NextID(), "   ")
	require.Error(t, err)
	assert.EqualError(t, err, "Vehicle model cannot be empty.")
}
