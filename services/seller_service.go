package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"hardware-store/libs"
	"hardware-store/models"
	"hardware-store/repositories"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrInvalidStatus       = errors.New("invalid application status")
)

type SellerService struct {
	repo       repositories.SellerApplicationRepository
	mailer     libs.Mailer
	config     *ConfigService
	adminEmail string
}

func NewSellerService(repo repositories.SellerApplicationRepository, mailer libs.Mailer, config *ConfigService, adminEmail string) *SellerService {
	return &SellerService{repo: repo, mailer: mailer, config: config, adminEmail: adminEmail}
}

// Submit turns the flat signup form into a pending application.
func (s *SellerService) Submit(ctx context.Context, req models.SellerApplicationRequest) (*models.SellerApplication, error) {
	specialties := req.Specialties
	if specialties == nil {
		specialties = []string{}
	}

	now := time.Now()
	app := &models.SellerApplication{
		ID: uuid.NewString(),
		PersonalInfo: models.PersonalInfo{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
			DNI:       req.DNI,
			BirthDate: req.BirthDate,
		},
		BusinessInfo: models.BusinessInfo{
			BusinessName: req.BusinessName,
			BusinessType: models.BusinessType(req.BusinessType),
			CUIT:         req.CUIT,
			Address:      req.Address,
			City:         req.City,
			Province:     req.Province,
			PostalCode:   req.PostalCode,
		},
		Experience: models.Experience{
			HasExperience:   req.HasExperience,
			YearsExperience: req.YearsExperience,
			PreviousWork:    req.PreviousWork,
			Specialties:     specialties,
		},
		Motivation: req.Motivation,
		Status:     models.ApplicationPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if !app.BusinessInfo.BusinessType.Valid() {
		return nil, fmt.Errorf("invalid business type %q", req.BusinessType)
	}

	if err := s.repo.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("save application: %w", err)
	}
	log.Printf("New seller application received: %s (%s)", app.ID, app.BusinessInfo.BusinessName)

	s.notify(app)
	return app, nil
}

func (s *SellerService) notify(app *models.SellerApplication) {
	if s.mailer == nil {
		return
	}

	storeName := models.DefaultStoreConfig().StoreName
	if s.config != nil {
		storeName = s.config.Config().StoreName
	}

	subject, body := libs.ApplicationReceivedEmail(storeName, app)
	if err := s.mailer.Send(app.PersonalInfo.Email, subject, body); err != nil {
		log.Printf("[Mail] confirmation for application %s failed: %v", app.ID, err)
	}

	if s.adminEmail == "" {
		return
	}
	subject, body = libs.NewApplicationEmail(storeName, app)
	if err := s.mailer.Send(s.adminEmail, subject, body); err != nil {
		log.Printf("[Mail] admin notice for application %s failed: %v", app.ID, err)
	}
}

func (s *SellerService) List(ctx context.Context) (*models.SellerApplicationList, error) {
	apps, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if apps == nil {
		apps = []models.SellerApplication{}
	}
	return &models.SellerApplicationList{Applications: apps, Total: len(apps)}, nil
}

func (s *SellerService) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.SellerApplication, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	app, err := s.repo.UpdateStatus(ctx, id, status)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrApplicationNotFound
	}
	return app, err
}
