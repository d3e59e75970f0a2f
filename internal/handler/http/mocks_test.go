package http

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/models"
)

// ─────────────────────────────────────────────
// Function-field service mocks. Each method delegates to its field, so a
// test only sets the ones the route under test reaches.
// ─────────────────────────────────────────────

type mockAuthService struct {
	loginFn        func(ctx context.Context, credentials models.Credentials) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
	getPrincipalFn func(ctx context.Context, userID string) (models.Principal, error)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) GetPrincipal(ctx context.Context, userID string) (models.Principal, error) {
	return m.getPrincipalFn(ctx, userID)
}

type mockProjectService struct {
	listProjectsFn   func(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error)
	listCategoriesFn func(ctx context.Context) ([]string, error)
	getProjectFn     func(ctx context.Context, id string) (models.Project, error)
	createProjectFn  func(ctx context.Context, project models.Project) (models.Project, error)
	updateProjectFn  func(ctx context.Context, id string, update models.ProjectUpdate) (models.Project, error)
	deleteProjectFn  func(ctx context.Context, id string) error
}

func (m *mockProjectService) ListProjects(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	return m.listProjectsFn(ctx, filter)
}

func (m *mockProjectService) ListCategories(ctx context.Context) ([]string, error) {
	return m.listCategoriesFn(ctx)
}

func (m *mockProjectService) GetProject(ctx context.Context, id string) (models.Project, error) {
	return m.getProjectFn(ctx, id)
}

func (m *mockProjectService) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	return m.createProjectFn(ctx, project)
}

func (m *mockProjectService) UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) (models.Project, error) {
	return m.updateProjectFn(ctx, id, update)
}

func (m *mockProjectService) DeleteProject(ctx context.Context, id string) error {
	return m.deleteProjectFn(ctx, id)
}

type mockSkillService struct {
	listSkillsFn  func(ctx context.Context) ([]models.Skill, error)
	getSkillFn    func(ctx context.Context, id string) (models.Skill, error)
	createSkillFn func(ctx context.Context, skill models.Skill) (models.Skill, error)
	updateSkillFn func(ctx context.Context, id string, update models.SkillUpdate) (models.Skill, error)
	deleteSkillFn func(ctx context.Context, id string) error
}

func (m *mockSkillService) ListSkills(ctx context.Context) ([]models.Skill, error) {
	return m.listSkillsFn(ctx)
}

func (m *mockSkillService) GetSkill(ctx context.Context, id string) (models.Skill, error) {
	return m.getSkillFn(ctx, id)
}

func (m *mockSkillService) CreateSkill(ctx context.Context, skill models.Skill) (models.Skill, error) {
	return m.createSkillFn(ctx, skill)
}

func (m *mockSkillService) UpdateSkill(ctx context.Context, id string, update models.SkillUpdate) (models.Skill, error) {
	return m.updateSkillFn(ctx, id, update)
}

func (m *mockSkillService) DeleteSkill(ctx context.Context, id string) error {
	return m.deleteSkillFn(ctx, id)
}

type mockTimelineService struct {
	listEventsFn  func(ctx context.Context) ([]models.TimelineEvent, error)
	createEventFn func(ctx context.Context, event models.TimelineEvent) (models.TimelineEvent, error)
	updateEventFn func(ctx context.Context, id string, update models.TimelineUpdate) (models.TimelineEvent, error)
	deleteEventFn func(ctx context.Context, id string) error
}

func (m *mockTimelineService) ListEvents(ctx context.Context) ([]models.TimelineEvent, error) {
	return m.listEventsFn(ctx)
}

func (m *mockTimelineService) CreateEvent(ctx context.Context, event models.TimelineEvent) (models.TimelineEvent, error) {
	return m.createEventFn(ctx, event)
}

func (m *mockTimelineService) UpdateEvent(ctx context.Context, id string, update models.TimelineUpdate) (models.TimelineEvent, error) {
	return m.updateEventFn(ctx, id, update)
}

func (m *mockTimelineService) DeleteEvent(ctx context.Context, id string) error {
	return m.deleteEventFn(ctx, id)
}

type mockContactService struct {
	submitContactFn func(ctx context.Context, contact models.Contact) (models.Contact, error)
	listContactsFn  func(ctx context.Context, filter models.ContactFilter) (models.ContactPage, error)
	openContactFn   func(ctx context.Context, id string) (models.Contact, error)
	setReadFn       func(ctx context.Context, id string, read bool) (models.Contact, error)
	deleteContactFn func(ctx context.Context, id string) error
}

func (m *mockContactService) SubmitContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	return m.submitContactFn(ctx, contact)
}

func (m *mockContactService) ListContacts(ctx context.Context, filter models.ContactFilter) (models.ContactPage, error) {
	return m.listContactsFn(ctx, filter)
}

func (m *mockContactService) OpenContact(ctx context.Context, id string) (models.Contact, error) {
	return m.openContactFn(ctx, id)
}

func (m *mockContactService) SetRead(ctx context.Context, id string, read bool) (models.Contact, error) {
	return m.setReadFn(ctx, id, read)
}

func (m *mockContactService) DeleteContact(ctx context.Context, id string) error {
	return m.deleteContactFn(ctx, id)
}

type mockPortfolioService struct {
	getPortfolioDataFn func(ctx context.Context) (models.PortfolioData, error)
	updateOwnerFn      func(ctx context.Context, update models.OwnerUpdate) (models.Owner, error)
}

func (m *mockPortfolioService) GetPortfolioData(ctx context.Context) (models.PortfolioData, error) {
	return m.getPortfolioDataFn(ctx)
}

func (m *mockPortfolioService) UpdateOwner(ctx context.Context, update models.OwnerUpdate) (models.Owner, error) {
	return m.updateOwnerFn(ctx, update)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(ctx context.Context) string {
	return m.version
}

func (m *mockAppInfoService) Health(ctx context.Context) models.HealthStatus {
	return models.HealthStatus{Timestamp: "2026-01-01T00:00:00Z", Environment: "test", Version: m.version}
}

// ─────────────────────────────────────────────
// Token fixtures understood by newTokenAuthService.
// ─────────────────────────────────────────────

const (
	adminToken   = "admin-token"
	visitorToken = "visitor-token"
	expiredToken = "expired-token"
	orphanToken  = "orphan-token"
)

var (
	testAdmin   = models.Principal{ID: "0194f9a2-7c1e-7d4b-9a8e-1f2a3b4c5d6e", Name: "Jane", Email: "jane@example.com", Role: models.RoleAdmin}
	testVisitor = models.Principal{ID: "0194f9a2-7c1e-7d4b-9a8e-1f2a3b4c5d6f", Name: "Joe", Email: "joe@example.com", Role: models.RoleVisitor}
)

// newTokenAuthService resolves the fixture tokens: adminToken and
// visitorToken to their principals, expiredToken to an expiry error,
// orphanToken to a user that no longer exists, anything else to an invalid
// token.
func newTokenAuthService() *mockAuthService {
	principals := map[string]models.Principal{
		testAdmin.ID:   testAdmin,
		testVisitor.ID: testVisitor,
	}

	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			switch tokenString {
			case adminToken:
				return models.Token{UserID: testAdmin.ID}, nil
			case visitorToken:
				return models.Token{UserID: testVisitor.ID}, nil
			case orphanToken:
				return models.Token{UserID: "0194f9a2-0000-7000-8000-000000000000"}, nil
			case expiredToken:
				return models.Token{}, service.ErrTokenIsExpired
			default:
				return models.Token{}, fmt.Errorf("%w: signature is invalid", service.ErrTokenIsInvalid)
			}
		},
		getPrincipalFn: func(_ context.Context, userID string) (models.Principal, error) {
			p, ok := principals[userID]
			if !ok {
				return models.Principal{}, service.ErrPrincipalNotFound
			}
			return p, nil
		},
	}
}
