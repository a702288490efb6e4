package staff

import (
	"context"
	"testing"

	"github.com/boardslol/staffbot/internal/models"
	guildRepo "github.com/boardslol/staffbot/internal/repositories/guild"
	guildMocks "github.com/boardslol/staffbot/internal/repositories/guild/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StaffServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockGuildRepo *guildMocks.MockRepository
	staffService  Service
	ctx           context.Context

	testGuildID string
	testUserID  string
	testDoc     *models.GuildConfig
}

func (s *StaffServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGuildRepo = guildMocks.NewMockRepository(s.mockCtrl)

	svc, err := New(&Config{
		GuildRepo: s.mockGuildRepo,
	})
	s.Require().NoError(err)
	s.staffService = svc

	s.ctx = context.Background()
	s.testGuildID = "test-guild-id"
	s.testUserID = "test-user-id"
	s.testDoc = models.NewGuildConfig(s.testGuildID)
}

func (s *StaffServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStaffServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StaffServiceTestSuite))
}

// expectUpdate wires the mock so Apply runs against the suite's test document,
// the way the file repository would under its per-guild lock.
func (s *StaffServiceTestSuite) expectUpdate() {
	s.mockGuildRepo.EXPECT().
		UpdateConfig(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *guildRepo.UpdateConfigInput) (*models.GuildConfig, error) {
			s.Equal(s.testGuildID, input.GuildID)
			if err := input.Apply(s.testDoc); err != nil {
				return nil, err
			}
			return s.testDoc, nil
		})
}

func (s *StaffServiceTestSuite) TestNewRequiresGuildRepo() {
	_, err := New(nil)
	s.Require().ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.Require().ErrorIs(err, ErrNilGuildRepo)
}

func (s *StaffServiceTestSuite) TestSetupStoresAllIDs() {
	s.expectUpdate()

	output, err := s.staffService.Setup(s.ctx, &SetupInput{
		GuildID:         s.testGuildID,
		StaffRole:       "role-staff",
		ManagerRole:     "role-manager",
		LOARole:         "role-loa",
		LogChannel:      "chan-log",
		ShiftLogChannel: "chan-shift",
	})
	s.Require().NoError(err)

	s.Equal("role-staff", output.Config.StaffRole)
	s.Equal("role-manager", output.Config.ManagerRole)
	s.Equal("role-loa", output.Config.LOARole)
	s.Equal("chan-log", output.Config.LogChannel)
	s.Equal("chan-shift", output.Config.ShiftLogChannel)
}

func (s *StaffServiceTestSuite) TestAddWarningReturnsRunningCount() {
	s.expectUpdate()
	first, err := s.staffService.AddWarning(s.ctx, &AddWarningInput{
		GuildID: s.testGuildID,
		UserID:  s.testUserID,
		Reason:  "spam",
	})
	s.Require().NoError(err)
	s.Equal(1, first.Count)

	s.expectUpdate()
	second, err := s.staffService.AddWarning(s.ctx, &AddWarningInput{
		GuildID: s.testGuildID,
		UserID:  s.testUserID,
		Reason:  "rude",
	})
	s.Require().NoError(err)
	s.Equal(2, second.Count)

	s.Equal([]string{"spam", "rude"}, s.testDoc.Warnings[s.testUserID])
}

func (s *StaffServiceTestSuite) TestListWarningsInIssueOrder() {
	s.testDoc.Warnings[s.testUserID] = []string{"spam", "rude", "spam again"}

	s.mockGuildRepo.EXPECT().
		GetConfig(s.ctx, &guildRepo.GetConfigInput{GuildID: s.testGuildID}).
		Return(s.testDoc, nil)

	output, err := s.staffService.ListWarnings(s.ctx, &ListWarningsInput{
		GuildID: s.testGuildID,
		UserID:  s.testUserID,
	})
	s.Require().NoError(err)
	s.Equal([]string{"spam", "rude", "spam again"}, output.Reasons)
}

func (s *StaffServiceTestSuite) TestListWarningsNoneIsExplicit() {
	s.mockGuildRepo.EXPECT().
		GetConfig(s.ctx, &guildRepo.GetConfigInput{GuildID: s.testGuildID}).
		Return(s.testDoc, nil)

	_, err := s.staffService.ListWarnings(s.ctx, &ListWarningsInput{
		GuildID: s.testGuildID,
		UserID:  s.testUserID,
	})
	s.Require().ErrorIs(err, ErrNoWarnings)
}

func (s *StaffServiceTestSuite) TestStartShiftRequiresConfiguredChannel() {
	s.expectUpdate()

	_, err := s.staffService.StartShift(s.ctx, &StartShiftInput{
		GuildID:     s.testGuildID,
		Description: "evening moderation",
		StartedBy:   "mod#0001",
	})
	s.Require().ErrorIs(err, ErrShiftLogChannelNotConfigured)
	s.Empty(s.testDoc.Shifts)
}

func (s *StaffServiceTestSuite) TestStartShiftAppendsRecord() {
	s.testDoc.ShiftLogChannel = "chan-shift"
	s.expectUpdate()

	output, err := s.staffService.StartShift(s.ctx, &StartShiftInput{
		GuildID:     s.testGuildID,
		Description: "evening moderation",
		StartedBy:   "mod#0001",
	})
	s.Require().NoError(err)

	s.Equal("chan-shift", output.ChannelID)
	s.Equal(models.Shift{Description: "evening moderation", StartedBy: "mod#0001"}, output.Shift)
	s.Require().Len(s.testDoc.Shifts, 1)
	s.Equal("evening moderation", s.testDoc.Shifts[0].Description)
}
