package roles

import (
	"context"
	"testing"

	"github.com/boardslol/staffbot/internal/repositories/marker"
	markerMocks "github.com/boardslol/staffbot/internal/repositories/marker/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RolesServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockMarkerRepo *markerMocks.MockRepository
	rolesService   Service
	ctx            context.Context
}

func (s *RolesServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockMarkerRepo = markerMocks.NewMockRepository(s.mockCtrl)

	svc, err := New(&Config{
		MarkerRepo: s.mockMarkerRepo,
		Bindings: []Binding{
			{Emoji: "🛠️", RoleID: "role-dev", Label: "Development Ping"},
			{Emoji: "🎵", RoleID: "role-sotd", Label: "SOTD Ping"},
		},
	})
	s.Require().NoError(err)
	s.rolesService = svc

	s.ctx = context.Background()
}

func (s *RolesServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRolesServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RolesServiceTestSuite))
}

func (s *RolesServiceTestSuite) TestNeedsBootstrapWhenSentinelAbsent() {
	s.mockMarkerRepo.EXPECT().HasRoleMessage(s.ctx).Return(false, nil)

	needs, err := s.rolesService.NeedsBootstrap(s.ctx)
	s.Require().NoError(err)
	s.True(needs)
}

func (s *RolesServiceTestSuite) TestNoBootstrapOnceSentinelExists() {
	s.mockMarkerRepo.EXPECT().HasRoleMessage(s.ctx).Return(true, nil)

	needs, err := s.rolesService.NeedsBootstrap(s.ctx)
	s.Require().NoError(err)
	s.False(needs)
}

func (s *RolesServiceTestSuite) TestMarkBootstrappedSavesSentinel() {
	s.mockMarkerRepo.EXPECT().
		SaveRoleMessage(s.ctx, &marker.SaveRoleMessageInput{MessageID: "msg-1"}).
		Return(nil)

	err := s.rolesService.MarkBootstrapped(s.ctx, &MarkBootstrappedInput{
		MessageID: "msg-1",
	})
	s.Require().NoError(err)
}

func (s *RolesServiceTestSuite) TestRoleForEmoji() {
	roleID, ok := s.rolesService.RoleForEmoji("🎵")
	s.True(ok)
	s.Equal("role-sotd", roleID)

	_, ok = s.rolesService.RoleForEmoji("❓")
	s.False(ok)
}

func (s *RolesServiceTestSuite) TestBindingsKeepDeclarationOrder() {
	bindings := s.rolesService.Bindings()
	s.Require().Len(bindings, 2)
	s.Equal("🛠️", bindings[0].Emoji)
	s.Equal("🎵", bindings[1].Emoji)
}

func (s *RolesServiceTestSuite) TestNewRequiresBindings() {
	_, err := New(&Config{MarkerRepo: s.mockMarkerRepo})
	s.Require().ErrorIs(err, ErrNoBindings)
}
