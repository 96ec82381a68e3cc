package application

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Beausejour-Hotels/service-reservation/internal/domain"
	"github.com/Beausejour-Hotels/service-reservation/internal/domain/reservation"
)

func newClientServiceFixture(t *testing.T) (*ClientService, *fakeClientRepo, *fakeReservationRepo) {
	t.Helper()
	clients := newFakeClientRepo()
	reservations := newFakeReservationRepo()
	return NewClientService(clients, reservations, zap.NewNop()), clients, reservations
}

func TestCreateClient(t *testing.T) {
	svc, _, _ := newClientServiceFixture(t)

	dto, err := svc.CreateClient(context.Background(), CreateClientRequest{
		FirstName: "Jean",
		LastName:  "Moreau",
		Email:     "jean.moreau@example.com",
		Phone:     "+33698765432",
	})
	require.NoError(t, err)
	assert.Equal(t, "jean.moreau@example.com", dto.Email)
	assert.Equal(t, int64(1), dto.Version)
}

func TestCreateClient_DuplicateEmail(t *testing.T) {
	svc, _, _ := newClientServiceFixture(t)
	ctx := context.Background()

	req := CreateClientRequest{
		FirstName: "Jean",
		LastName:  "Moreau",
		Email:     "jean.moreau@example.com",
		Phone:     "+33698765432",
	}
	_, err := svc.CreateClient(ctx, req)
	require.NoError(t, err)

	_, err = svc.CreateClient(ctx, req)
	var duplicate *domain.DuplicateError
	assert.ErrorAs(t, err, &duplicate)
}

func TestUpdateClient_EmailUniqueness(t *testing.T) {
	svc, _, _ := newClientServiceFixture(t)
	ctx := context.Background()

	first, err := svc.CreateClient(ctx, CreateClientRequest{
		FirstName: "Jean", LastName: "Moreau",
		Email: "jean.moreau@example.com", Phone: "+33698765432",
	})
	require.NoError(t, err)

	_, err = svc.CreateClient(ctx, CreateClientRequest{
		FirstName: "Claire", LastName: "Petit",
		Email: "claire.petit@example.com", Phone: "+33611112222",
	})
	require.NoError(t, err)

	// Taking the other client's email must fail.
	_, err = svc.UpdateClient(ctx, first.ID, UpdateClientRequest{Email: "claire.petit@example.com"})
	var duplicate *domain.DuplicateError
	assert.ErrorAs(t, err, &duplicate)

	// A fresh email is fine; untouched fields survive.
	updated, err := svc.UpdateClient(ctx, first.ID, UpdateClientRequest{Email: "j.moreau@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "j.moreau@example.com", updated.Email)
	assert.Equal(t, "Jean", updated.FirstName)
}

func TestDeleteClient_CascadesReservations(t *testing.T) {
	svc, clients, reservations := newClientServiceFixture(t)
	ctx := context.Background()

	dto, err := svc.CreateClient(ctx, CreateClientRequest{
		FirstName: "Jean", LastName: "Moreau",
		Email: "jean.moreau@example.com", Phone: "+33698765432",
	})
	require.NoError(t, err)

	// Seed a reservation for the client directly in the store.
	period, err := reservation.ParseStayPeriod("2030-06-10", "2030-06-13")
	require.NoError(t, err)
	res, err := reservation.NewReservation(dto.ID, uuid.New(), period, 2, "", "", 10000, 30000)
	require.NoError(t, err)
	require.NoError(t, reservations.Save(ctx, res))

	require.NoError(t, svc.DeleteClient(ctx, dto.ID))

	_, err = clients.FindByID(ctx, dto.ID)
	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)

	list, err := reservations.FindByClientID(ctx, dto.ID)
	require.NoError(t, err)
	assert.Empty(t, list, "client deletion must remove their reservations")
}
