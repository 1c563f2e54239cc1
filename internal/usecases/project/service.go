package project

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adcreative-api/infrastructure/repository"
	"github.com/vfg2006/adcreative-api/infrastructure/storage"
	"github.com/vfg2006/adcreative-api/internal/domain"
	"github.com/vfg2006/adcreative-api/internal/usecases/billing"
	"github.com/vfg2006/adcreative-api/internal/usecases/generating"
	"github.com/vfg2006/adcreative-api/internal/usecases/publishing"
	"github.com/vfg2006/adcreative-api/pkg/apiErrors"
)

type Interface interface {
	FetchProjects(ctx context.Context, userID string) ([]*domain.Project, error)
	CreateProject(ctx context.Context, userID string, input *domain.ProjectInput) (*domain.Project, error)
	GetProject(ctx context.Context, userID, projectID string) (*domain.Project, error)
	UpdateProject(ctx context.Context, userID, projectID string, updates *domain.UpdateProjectRequest) (*domain.Project, error)
	DeleteProject(ctx context.Context, userID, projectID string) error
	GenerateAdVariations(ctx context.Context, userID, projectID string, request *domain.GenerateVariationsRequest) ([]*domain.AdVariation, error)
	PostAdVariation(ctx context.Context, userID, variationID string, request *domain.PostAdVariationRequest) (*domain.AdVariation, error)
	UpdateAdVariationMetrics(ctx context.Context, userID, variationID string, metrics domain.PerformanceMetrics) (*domain.AdVariation, error)
	GetProjectAnalytics(ctx context.Context, userID, projectID string) (*domain.ProjectAnalytics, error)
	GetProjectVariations(ctx context.Context, userID, projectID string) ([]*domain.AdVariation, error)
	SetCurrentProject(ctx context.Context, userID, projectID string) (*domain.Workspace, error)
	GetWorkspace(userID string) *domain.Workspace
	ClearError(userID string) *domain.Workspace
	Reset(userID string)
}

type Service struct {
	projectRepository       repository.ProjectRepository
	adVariationRepository   repository.AdVariationRepository
	socialAccountRepository repository.SocialAccountRepository
	imageStorage            storage.ImageStorage
	generatingService       generating.Interface
	publishingService       publishing.Interface
	billingService          billing.Interface
	workspaces              *workspaces
	now                     func() time.Time
}

func NewService(
	projectRepository repository.ProjectRepository,
	adVariationRepository repository.AdVariationRepository,
	socialAccountRepository repository.SocialAccountRepository,
	imageStorage storage.ImageStorage,
	generatingService generating.Interface,
	publishingService publishing.Interface,
	billingService billing.Interface,
) Interface {
	return &Service{
		projectRepository:       projectRepository,
		adVariationRepository:   adVariationRepository,
		socialAccountRepository: socialAccountRepository,
		imageStorage:            imageStorage,
		generatingService:       generatingService,
		publishingService:       publishingService,
		billingService:          billingService,
		workspaces:              newWorkspaces(),
		now:                     time.Now,
	}
}

func (s *Service) FetchProjects(ctx context.Context, userID string) ([]*domain.Project, error) {
	s.workspaces.begin(userID, false)

	projects, err := s.projectRepository.ListProjectsByUser(ctx, userID)
	if err != nil {
		s.workspaces.fail(userID, ErrFetchProjects)
		return nil, NewProjectError(ErrFetchProjects, apiErrors.ErrDatabaseOperation, err.Error())
	}

	s.workspaces.done(userID, func(ws *domain.Workspace) {
		ws.Projects = append([]*domain.Project{}, projects...)
	})

	return projects, nil
}

// CreateProject envia a imagem ao storage uma única vez antes de criar o projeto
func (s *Service) CreateProject(ctx context.Context, userID string, input *domain.ProjectInput) (*domain.Project, error) {
	s.workspaces.begin(userID, false)

	imageURL := input.ProductImageURL
	if input.Image != nil {
		uploaded, err := s.imageStorage.UploadImage(ctx, input.Image.FileName, input.Image.ContentType, input.Image.Body)
		if err != nil {
			s.workspaces.fail(userID, ErrUploadImage)
			return nil, NewProjectError(ErrUploadImage, apiErrors.ErrExternalService, err.Error())
		}
		imageURL = uploaded.PublicURL
	}

	now := s.now()
	project, err := s.projectRepository.CreateProject(ctx, &domain.Project{
		UserID:          userID,
		Name:            input.Name,
		Description:     input.Description,
		ProductImageURL: imageURL,
		TargetPlatforms: input.TargetPlatforms,
		CreatedAt:       now,
		UpdatedAt:       now,
		AdVariations:    []*domain.AdVariation{},
	})
	if err != nil {
		s.workspaces.fail(userID, ErrCreateProject)
		return nil, NewProjectError(ErrCreateProject, apiErrors.ErrDatabaseOperation, err.Error())
	}

	s.workspaces.done(userID, func(ws *domain.Workspace) {
		ws.Projects = append([]*domain.Project{project}, ws.Projects...)
		ws.CurrentProject = project
	})

	logrus.WithFields(logrus.Fields{
		"user_id":    userID,
		"project_id": project.ProjectID,
	}).Info("project: projeto criado")

	return project, nil
}

func (s *Service) GetProject(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	project, err := s.projectRepository.GetProject(ctx, userID, projectID)
	if err != nil {
		return nil, NewProjectErrorWithID(err, apiErrors.ErrDatabaseOperation, projectID, "")
	}

	if project == nil {
		return nil, NewProjectErrorWithID(ErrProjectNotFound, apiErrors.ErrProjectNotFound, projectID, "")
	}

	return project, nil
}

func (s *Service) UpdateProject(ctx context.Context, userID, projectID string, updates *domain.UpdateProjectRequest) (*domain.Project, error) {
	s.workspaces.begin(userID, false)

	current, err := s.GetProject(ctx, userID, projectID)
	if err != nil {
		s.workspaces.fail(userID, err)
		return nil, err
	}

	changed := *current
	if updates.Name != nil {
		changed.Name = *updates.Name
	}
	if updates.Description != nil {
		changed.Description = *updates.Description
	}
	if updates.ProductImageURL != nil {
		changed.ProductImageURL = *updates.ProductImageURL
	}
	if updates.TargetPlatforms != nil {
		changed.TargetPlatforms = updates.TargetPlatforms
	}
	changed.UpdatedAt = s.now()

	project, err := s.projectRepository.UpdateProject(ctx, &changed)
	if errors.Is(err, repository.ErrNotFound) {
		s.workspaces.fail(userID, ErrProjectNotFound)
		return nil, NewProjectErrorWithID(ErrProjectNotFound, apiErrors.ErrProjectNotFound, projectID, "")
	}
	if err != nil {
		s.workspaces.fail(userID, ErrUpdateProject)
		return nil, NewProjectErrorWithID(ErrUpdateProject, apiErrors.ErrDatabaseOperation, projectID, err.Error())
	}

	s.workspaces.done(userID, func(ws *domain.Workspace) {
		replaceProject(ws, project)
	})

	return project, nil
}

func (s *Service) DeleteProject(ctx context.Context, userID, projectID string) error {
	s.workspaces.begin(userID, false)

	err := s.projectRepository.DeleteProject(ctx, userID, projectID)
	if errors.Is(err, repository.ErrNotFound) {
		s.workspaces.fail(userID, ErrProjectNotFound)
		return NewProjectErrorWithID(ErrProjectNotFound, apiErrors.ErrProjectNotFound, projectID, "")
	}
	if err != nil {
		s.workspaces.fail(userID, ErrDeleteProject)
		return NewProjectErrorWithID(ErrDeleteProject, apiErrors.ErrDatabaseOperation, projectID, err.Error())
	}

	s.workspaces.done(userID, func(ws *domain.Workspace) {
		remaining := make([]*domain.Project, 0, len(ws.Projects))
		for _, p := range ws.Projects {
			if p.ProjectID != projectID {
				remaining = append(remaining, p)
			}
		}
		ws.Projects = remaining

		if ws.CurrentProject != nil && ws.CurrentProject.ProjectID == projectID {
			ws.CurrentProject = nil
		}
	})

	return nil
}

// GenerateAdVariations gera, salva em sequência e contabiliza o uso do plano
func (s *Service) GenerateAdVariations(ctx context.Context, userID, projectID string, request *domain.GenerateVariationsRequest) ([]*domain.AdVariation, error) {
	s.workspaces.begin(userID, true)

	project, err := s.GetProject(ctx, userID, projectID)
	if err != nil {
		s.workspaces.fail(userID, err)
		return nil, err
	}

	if err := s.billingService.EnsureWithinLimit(ctx, userID, domain.LimitActionAdGeneration); err != nil {
		s.workspaces.fail(userID, err)
		return nil, err
	}

	productImage := firstNonEmpty(request.ProductImage, project.ProductImageURL)
	description := firstNonEmpty(request.Description, project.Description)
	platforms := request.Platforms
	if len(platforms) == 0 {
		platforms = project.TargetPlatforms
	}

	count := request.Count
	if count <= 0 {
		count = domain.DefaultVariations
	}

	generated, err := s.generatingService.GenerateAdVariations(ctx, productImage, description, platforms, count)
	if err != nil {
		s.workspaces.fail(userID, err)
		return nil, err
	}

	logger := logrus.WithFields(logrus.Fields{
		"user_id":    userID,
		"project_id": projectID,
	})

	saved := make([]*domain.AdVariation, 0, len(generated))
	for _, variation := range generated {
		now := s.now()
		created, err := s.adVariationRepository.CreateAdVariation(ctx, &domain.AdVariation{
			ProjectID:          projectID,
			Prompt:             variation.Prompt,
			GeneratedText:      variation.GeneratedText,
			GeneratedImageURL:  variation.GeneratedImageURL,
			Platform:           variation.Platform,
			Style:              variation.Style,
			Status:             variation.Status,
			PerformanceMetrics: variation.PerformanceMetrics,
			CreatedAt:          now,
			UpdatedAt:          now,
		})
		if err != nil {
			logger.WithError(err).Warn("project: falha ao salvar variação, ignorando")
			continue
		}
		saved = append(saved, created)
	}

	s.workspaces.done(userID, func(ws *domain.Workspace) {
		updated := *project
		if cached := findProject(ws, projectID); cached != nil {
			updated = *cached
		}
		updated.AdVariations = saved
		replaceProject(ws, &updated)
	})

	if err := s.billingService.RecordAdGenerations(ctx, userID, len(saved)); err != nil {
		logger.WithError(err).Warn("project: falha ao registrar uso do plano")
	}

	logger.WithField("variations", len(saved)).Info("project: variações geradas")

	return saved, nil
}

// PostAdVariation publica nas contas escolhidas. Contas inexistentes viram resultados com falha.
func (s *Service) PostAdVariation(ctx context.Context, userID, variationID string, request *domain.PostAdVariationRequest) (*domain.AdVariation, error) {
	s.workspaces.begin(userID, false)

	variation, err := s.getAdVariation(ctx, userID, variationID)
	if err != nil {
		s.workspaces.fail(userID, err)
		return nil, err
	}

	accounts, err := s.socialAccountRepository.ListSocialAccountsByIDs(ctx, userID, request.SocialAccountIDs)
	if err != nil {
		s.workspaces.fail(userID, ErrPostAdVariation)
		return nil, NewProjectError(ErrPostAdVariation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	results := s.publishingService.PostToMultiplePlatforms(ctx, variation, accounts, request.ScheduledTime)
	results = append(results, missingAccounts(request.SocialAccountIDs, accounts)...)

	posted, err := s.adVariationRepository.MarkPosted(ctx, variationID, s.now(), results)
	if err != nil {
		s.workspaces.fail(userID, ErrPostAdVariation)
		return nil, NewProjectError(ErrPostAdVariation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	s.workspaces.done(userID, func(ws *domain.Workspace) {
		mergeVariation(ws, posted)
	})

	return posted, nil
}

func missingAccounts(requested []string, found []*domain.SocialAccount) domain.PostingResults {
	known := make(map[string]struct{}, len(found))
	for _, account := range found {
		known[account.ID] = struct{}{}
	}

	var results domain.PostingResults
	for _, id := range requested {
		if _, ok := known[id]; ok {
			continue
		}
		results = append(results, domain.PostingResult{
			SocialAccountID: id,
			Success:         false,
			Error:           ErrSocialAccountNotFound.Error(),
		})
	}

	return results
}

func (s *Service) UpdateAdVariationMetrics(ctx context.Context, userID, variationID string, metrics domain.PerformanceMetrics) (*domain.AdVariation, error) {
	s.workspaces.begin(userID, false)

	if _, err := s.getAdVariation(ctx, userID, variationID); err != nil {
		s.workspaces.fail(userID, err)
		return nil, err
	}

	variation, err := s.adVariationRepository.UpdateMetrics(ctx, variationID, metrics)
	if errors.Is(err, repository.ErrNotFound) {
		s.workspaces.fail(userID, ErrAdVariationNotFound)
		return nil, NewProjectError(ErrAdVariationNotFound, apiErrors.ErrAdVariationNotFound, variationID)
	}
	if err != nil {
		s.workspaces.fail(userID, ErrUpdateMetrics)
		return nil, NewProjectError(ErrUpdateMetrics, apiErrors.ErrDatabaseOperation, err.Error())
	}

	s.workspaces.done(userID, func(ws *domain.Workspace) {
		mergeVariation(ws, variation)
	})

	return variation, nil
}

func (s *Service) getAdVariation(ctx context.Context, userID, variationID string) (*domain.AdVariation, error) {
	variation, err := s.adVariationRepository.GetAdVariation(ctx, userID, variationID)
	if err != nil {
		return nil, NewProjectError(err, apiErrors.ErrDatabaseOperation, "")
	}

	if variation == nil {
		return nil, NewProjectError(ErrAdVariationNotFound, apiErrors.ErrAdVariationNotFound, variationID)
	}

	return variation, nil
}

// GetProjectAnalytics usa o projeto do workspace e, se ausente, o do banco
func (s *Service) GetProjectAnalytics(ctx context.Context, userID, projectID string) (*domain.ProjectAnalytics, error) {
	variations, err := s.GetProjectVariations(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}

	return CalculateAnalytics(variations), nil
}

func (s *Service) GetProjectVariations(ctx context.Context, userID, projectID string) ([]*domain.AdVariation, error) {
	project := s.workspaces.project(userID, projectID)

	if project == nil {
		loaded, err := s.projectRepository.GetProject(ctx, userID, projectID)
		if err != nil {
			return nil, NewProjectErrorWithID(err, apiErrors.ErrDatabaseOperation, projectID, "")
		}
		project = loaded
	}

	if project == nil || project.AdVariations == nil {
		return nil, NewProjectErrorWithID(ErrNoAdVariations, apiErrors.ErrNoAdVariations, projectID, "")
	}

	return project.AdVariations, nil
}

// SetCurrentProject com projectID vazio limpa o projeto atual
func (s *Service) SetCurrentProject(ctx context.Context, userID, projectID string) (*domain.Workspace, error) {
	if projectID == "" {
		s.workspaces.update(userID, func(ws *domain.Workspace) {
			ws.CurrentProject = nil
		})
		return s.workspaces.snapshot(userID), nil
	}

	project := s.workspaces.project(userID, projectID)

	if project == nil {
		loaded, err := s.GetProject(ctx, userID, projectID)
		if err != nil {
			return nil, err
		}
		project = loaded
	}

	s.workspaces.update(userID, func(ws *domain.Workspace) {
		ws.CurrentProject = project
	})

	return s.workspaces.snapshot(userID), nil
}

func (s *Service) GetWorkspace(userID string) *domain.Workspace {
	return s.workspaces.snapshot(userID)
}

func (s *Service) ClearError(userID string) *domain.Workspace {
	s.workspaces.update(userID, func(ws *domain.Workspace) {
		ws.Error = nil
	})
	return s.workspaces.snapshot(userID)
}

func (s *Service) Reset(userID string) {
	s.workspaces.reset(userID)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
