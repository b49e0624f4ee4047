package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hardware-store/models"
	"hardware-store/repositories"
)

func sellerRequest() models.SellerApplicationRequest {
	return models.SellerApplicationRequest{
		FirstName:    "Juan",
		LastName:     "Pérez",
		Email:        "juan@example.com",
		Phone:        "1155550000",
		DNI:          "30123456",
		BusinessName: "Herrajes Pérez",
		BusinessType: "individual",
		CUIT:         "20-30123456-7",
		Motivation:   "Quiero vender herramientas",
	}
}

func TestSubmitApplication(t *testing.T) {
	ctx := context.Background()
	mailer := &recordingMailer{}
	svc := NewSellerService(repositories.NewMemorySellerApplicationRepository(), mailer, NewConfigService(nil, nil), "admin@test.com")

	app, err := svc.Submit(ctx, sellerRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, app.ID)
	assert.Equal(t, models.ApplicationPending, app.Status)
	assert.Equal(t, "Herrajes Pérez", app.BusinessInfo.BusinessName)
	assert.Equal(t, []string{}, app.Experience.Specialties)

	require.Len(t, mailer.sent, 2)
	assert.Equal(t, "juan@example.com", mailer.sent[0].To)
	assert.Equal(t, "admin@test.com", mailer.sent[1].To)
	assert.Contains(t, mailer.sent[1].Subject, "Herrajes Pérez")

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
}

func TestSubmitWithoutAdminEmail(t *testing.T) {
	mailer := &recordingMailer{}
	svc := NewSellerService(repositories.NewMemorySellerApplicationRepository(), mailer, nil, "")

	_, err := svc.Submit(context.Background(), sellerRequest())
	require.NoError(t, err)
	assert.Len(t, mailer.sent, 1)
}

func TestSubmitRejectsBusinessType(t *testing.T) {
	req := sellerRequest()
	req.BusinessType = "cooperative"
	svc := NewSellerService(repositories.NewMemorySellerApplicationRepository(), nil, nil, "")

	_, err := svc.Submit(context.Background(), req)
	assert.Error(t, err)
}

func TestUpdateApplicationStatus(t *testing.T) {
	ctx := context.Background()
	svc := NewSellerService(repositories.NewMemorySellerApplicationRepository(), nil, nil, "")

	app, err := svc.Submit(ctx, sellerRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, app.ID, models.ApplicationApproved)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationApproved, updated.Status)

	_, err = svc.UpdateStatus(ctx, app.ID, "maybe")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(ctx, "missing", models.ApplicationRejected)
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}
