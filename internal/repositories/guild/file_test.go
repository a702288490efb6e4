package guild

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/boardslol/staffbot/internal/models"
	"github.com/stretchr/testify/suite"
)

type FileRepositoryTestSuite struct {
	suite.Suite
	dataDir string
	repo    Repository
}

func (s *FileRepositoryTestSuite) SetupTest() {
	s.dataDir = s.T().TempDir()

	repo, err := NewFile(&Config{
		DataDir: s.dataDir,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func TestFileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FileRepositoryTestSuite))
}

func (s *FileRepositoryTestSuite) TestGetConfigCreatesDefaults() {
	cfg, err := s.repo.GetConfig(context.Background(), &GetConfigInput{
		GuildID: "guild-1",
	})
	s.Require().NoError(err)
	s.Require().NotNil(cfg)

	s.Equal("guild-1", cfg.GuildID)
	s.Empty(cfg.StaffRole)
	s.Empty(cfg.LogChannel)
	s.Empty(cfg.Warnings)
	s.Empty(cfg.Shifts)

	// The document must exist on disk after first access
	_, err = os.Stat(filepath.Join(s.dataDir, "guilds", "guild-1.json"))
	s.Require().NoError(err)
}

func (s *FileRepositoryTestSuite) TestLoadAfterSaveIsIdentity() {
	first, err := s.repo.GetConfig(context.Background(), &GetConfigInput{
		GuildID: "guild-1",
	})
	s.Require().NoError(err)

	// An update that mutates nothing must not change the persisted document
	_, err = s.repo.UpdateConfig(context.Background(), &UpdateConfigInput{
		GuildID: "guild-1",
		Apply:   func(cfg *models.GuildConfig) error { return nil },
	})
	s.Require().NoError(err)

	second, err := s.repo.GetConfig(context.Background(), &GetConfigInput{
		GuildID: "guild-1",
	})
	s.Require().NoError(err)
	s.Equal(first, second)
}

func (s *FileRepositoryTestSuite) TestUpdateConfigPersistsMutation() {
	_, err := s.repo.UpdateConfig(context.Background(), &UpdateConfigInput{
		GuildID: "guild-1",
		Apply: func(cfg *models.GuildConfig) error {
			cfg.StaffRole = "role-staff"
			cfg.ManagerRole = "role-manager"
			cfg.LogChannel = "chan-log"
			return nil
		},
	})
	s.Require().NoError(err)

	cfg, err := s.repo.GetConfig(context.Background(), &GetConfigInput{
		GuildID: "guild-1",
	})
	s.Require().NoError(err)
	s.Equal("role-staff", cfg.StaffRole)
	s.Equal("role-manager", cfg.ManagerRole)
	s.Equal("chan-log", cfg.LogChannel)
}

func (s *FileRepositoryTestSuite) TestUpdateConfigApplyErrorAborts() {
	_, err := s.repo.UpdateConfig(context.Background(), &UpdateConfigInput{
		GuildID: "guild-1",
		Apply: func(cfg *models.GuildConfig) error {
			cfg.StaffRole = "must-not-persist"
			return fmt.Errorf("boom")
		},
	})
	s.Require().Error(err)

	cfg, err := s.repo.GetConfig(context.Background(), &GetConfigInput{
		GuildID: "guild-1",
	})
	s.Require().NoError(err)
	s.Empty(cfg.StaffRole)
}

func (s *FileRepositoryTestSuite) TestWarningsAppendInOrder() {
	reasons := []string{"spam", "rude", "spam again"}

	for _, reason := range reasons {
		r := reason
		_, err := s.repo.UpdateConfig(context.Background(), &UpdateConfigInput{
			GuildID: "guild-1",
			Apply: func(cfg *models.GuildConfig) error {
				cfg.Warnings["user-1"] = append(cfg.Warnings["user-1"], r)
				return nil
			},
		})
		s.Require().NoError(err)
	}

	cfg, err := s.repo.GetConfig(context.Background(), &GetConfigInput{
		GuildID: "guild-1",
	})
	s.Require().NoError(err)
	s.Equal(reasons, cfg.Warnings["user-1"])
}

func (s *FileRepositoryTestSuite) TestCorruptDocumentFailsLoad() {
	_, err := s.repo.GetConfig(context.Background(), &GetConfigInput{
		GuildID: "guild-1",
	})
	s.Require().NoError(err)

	// Truncate the document to simulate a hand-edited, broken file
	path := filepath.Join(s.dataDir, "guilds", "guild-1.json")
	s.Require().NoError(os.WriteFile(path, []byte("{corrupt"), 0o644))

	_, err = s.repo.GetConfig(context.Background(), &GetConfigInput{
		GuildID: "guild-1",
	})
	s.Require().Error(err)

	// No repair is attempted
	data, readErr := os.ReadFile(path)
	s.Require().NoError(readErr)
	s.Equal("{corrupt", string(data))
}

func (s *FileRepositoryTestSuite) TestConcurrentUpdatesDoNotLoseWrites() {
	const writers = 20

	var wg sync.WaitGroup
	for n := 0; n < writers; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := s.repo.UpdateConfig(context.Background(), &UpdateConfigInput{
				GuildID: "guild-1",
				Apply: func(cfg *models.GuildConfig) error {
					cfg.Warnings["user-1"] = append(cfg.Warnings["user-1"], fmt.Sprintf("reason-%d", n))
					return nil
				},
			})
			s.NoError(err)
		}(n)
	}
	wg.Wait()

	cfg, err := s.repo.GetConfig(context.Background(), &GetConfigInput{
		GuildID: "guild-1",
	})
	s.Require().NoError(err)
	s.Len(cfg.Warnings["user-1"], writers)
}
