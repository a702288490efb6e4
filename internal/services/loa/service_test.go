package loa

import (
	"context"
	"testing"
	"time"

	clockMocks "github.com/boardslol/staffbot/internal/common/clock/mocks"
	uuidMocks "github.com/boardslol/staffbot/internal/common/uuid/mocks"
	"github.com/boardslol/staffbot/internal/models"
	guildRepo "github.com/boardslol/staffbot/internal/repositories/guild"
	guildMocks "github.com/boardslol/staffbot/internal/repositories/guild/mocks"
	loaRepo "github.com/boardslol/staffbot/internal/repositories/loa"
	loaMocks "github.com/boardslol/staffbot/internal/repositories/loa/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LOAServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockRequestRepo *loaMocks.MockRepository
	mockGuildRepo   *guildMocks.MockRepository
	mockClock       *clockMocks.MockClock
	mockUUID        *uuidMocks.MockUUID
	loaService      Service
	ctx             context.Context

	testTime      time.Time
	testGuildID   string
	testRequestID string
	testDoc       *models.GuildConfig
}

func (s *LOAServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRequestRepo = loaMocks.NewMockRepository(s.mockCtrl)
	s.mockGuildRepo = guildMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	svc, err := New(&Config{
		RequestRepo:   s.mockRequestRepo,
		GuildRepo:     s.mockGuildRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.loaService = svc

	s.ctx = context.Background()
	s.testTime = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	s.testGuildID = "test-guild-id"
	s.testRequestID = "test-request-id"

	s.testDoc = models.NewGuildConfig(s.testGuildID)
	s.testDoc.StaffRole = "role-staff"
	s.testDoc.ManagerRole = "role-manager"
	s.testDoc.LOARole = "role-loa"
	s.testDoc.LogChannel = "chan-log"
	s.testDoc.ShiftLogChannel = "chan-shift"
}

func (s *LOAServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLOAServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LOAServiceTestSuite))
}

func (s *LOAServiceTestSuite) expectGuildConfig() {
	s.mockGuildRepo.EXPECT().
		GetConfig(s.ctx, &guildRepo.GetConfigInput{GuildID: s.testGuildID}).
		Return(s.testDoc, nil)
}

func (s *LOAServiceTestSuite) TestSubmitCreatesPendingRequest() {
	s.expectGuildConfig()
	s.mockUUID.EXPECT().NewUUID().Return(s.testRequestID)
	s.mockClock.EXPECT().Now().Return(s.testTime)

	var created *models.LOARequest
	s.mockRequestRepo.EXPECT().
		CreateRequest(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *loaRepo.CreateRequestInput) error {
			created = input.Request
			return nil
		})

	output, err := s.loaService.Submit(s.ctx, &SubmitInput{
		GuildID:      s.testGuildID,
		RequesterID:  "user-1",
		RequesterTag: "user#0001",
		Duration:     "1 week",
		StartDate:    "2024-01-01",
		Reason:       "travel",
	})
	s.Require().NoError(err)

	s.Equal("chan-log", output.LogChannelID)
	s.Require().NotNil(created)
	s.Equal(output.Request, created)
	s.Equal(s.testRequestID, created.ID)
	s.Equal(models.LOAStatusPending, created.Status)
	s.Equal("user-1", created.RequesterID)
	s.Equal(s.testTime, created.CreatedAt)
}

func (s *LOAServiceTestSuite) TestSubmitRequiresLogChannel() {
	s.testDoc.LogChannel = ""
	s.expectGuildConfig()

	_, err := s.loaService.Submit(s.ctx, &SubmitInput{
		GuildID:     s.testGuildID,
		RequesterID: "user-1",
	})
	s.Require().ErrorIs(err, ErrLogChannelNotConfigured)
}

func (s *LOAServiceTestSuite) TestResolveRejectsNonManager() {
	s.expectGuildConfig()

	_, err := s.loaService.Resolve(s.ctx, &ResolveInput{
		GuildID:       s.testGuildID,
		RequestID:     s.testRequestID,
		ResolverID:    "user-2",
		ResolverRoles: []string{"role-staff"},
		Accept:        true,
	})
	s.Require().ErrorIs(err, ErrNotManager)
}

func (s *LOAServiceTestSuite) TestResolveRequiresManagerRoleConfigured() {
	s.testDoc.ManagerRole = ""
	s.expectGuildConfig()

	_, err := s.loaService.Resolve(s.ctx, &ResolveInput{
		GuildID:       s.testGuildID,
		RequestID:     s.testRequestID,
		ResolverID:    "user-2",
		ResolverRoles: []string{"role-manager"},
		Accept:        true,
	})
	s.Require().ErrorIs(err, ErrManagerRoleNotConfigured)
}

func (s *LOAServiceTestSuite) TestResolveAcceptGrantsLOARole() {
	s.expectGuildConfig()
	s.mockClock.EXPECT().Now().Return(s.testTime)

	resolved := &models.LOARequest{
		ID:          s.testRequestID,
		GuildID:     s.testGuildID,
		RequesterID: "user-1",
		Status:      models.LOAStatusAccepted,
		ResolvedBy:  "manager-1",
		ResolvedAt:  s.testTime,
	}
	s.mockRequestRepo.EXPECT().
		ResolveRequest(s.ctx, &loaRepo.ResolveRequestInput{
			RequestID:  s.testRequestID,
			Status:     models.LOAStatusAccepted,
			ResolvedBy: "manager-1",
			ResolvedAt: s.testTime,
		}).
		Return(resolved, nil)

	output, err := s.loaService.Resolve(s.ctx, &ResolveInput{
		GuildID:       s.testGuildID,
		RequestID:     s.testRequestID,
		ResolverID:    "manager-1",
		ResolverRoles: []string{"role-staff", "role-manager"},
		Accept:        true,
	})
	s.Require().NoError(err)

	s.Equal("role-loa", output.LOARoleID)
	s.Equal(models.LOAStatusAccepted, output.Request.Status)
}

func (s *LOAServiceTestSuite) TestResolveDeclineGrantsNoRole() {
	s.expectGuildConfig()
	s.mockClock.EXPECT().Now().Return(s.testTime)

	resolved := &models.LOARequest{
		ID:          s.testRequestID,
		GuildID:     s.testGuildID,
		RequesterID: "user-1",
		Status:      models.LOAStatusDeclined,
		ResolvedBy:  "manager-1",
		ResolvedAt:  s.testTime,
	}
	s.mockRequestRepo.EXPECT().
		ResolveRequest(s.ctx, &loaRepo.ResolveRequestInput{
			RequestID:  s.testRequestID,
			Status:     models.LOAStatusDeclined,
			ResolvedBy: "manager-1",
			ResolvedAt: s.testTime,
		}).
		Return(resolved, nil)

	output, err := s.loaService.Resolve(s.ctx, &ResolveInput{
		GuildID:       s.testGuildID,
		RequestID:     s.testRequestID,
		ResolverID:    "manager-1",
		ResolverRoles: []string{"role-manager"},
		Accept:        false,
	})
	s.Require().NoError(err)

	s.Empty(output.LOARoleID)
	s.Equal(models.LOAStatusDeclined, output.Request.Status)
}

func (s *LOAServiceTestSuite) TestResolveSecondAttemptLoses() {
	s.expectGuildConfig()
	s.mockClock.EXPECT().Now().Return(s.testTime)

	s.mockRequestRepo.EXPECT().
		ResolveRequest(s.ctx, gomock.Any()).
		Return(nil, loaRepo.ErrAlreadyResolved)

	_, err := s.loaService.Resolve(s.ctx, &ResolveInput{
		GuildID:       s.testGuildID,
		RequestID:     s.testRequestID,
		ResolverID:    "manager-2",
		ResolverRoles: []string{"role-manager"},
		Accept:        false,
	})
	s.Require().ErrorIs(err, loaRepo.ErrAlreadyResolved)
}

func (s *LOAServiceTestSuite) TestResolveAcceptRequiresLOARole() {
	s.testDoc.LOARole = ""
	s.expectGuildConfig()

	_, err := s.loaService.Resolve(s.ctx, &ResolveInput{
		GuildID:       s.testGuildID,
		RequestID:     s.testRequestID,
		ResolverID:    "manager-1",
		ResolverRoles: []string{"role-manager"},
		Accept:        true,
	})
	s.Require().ErrorIs(err, ErrLOARoleNotConfigured)
}
