package armies_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/army-rater/internal/errors"
	"github.com/KirkDiggler/army-rater/internal/repositories/armies"
	"github.com/KirkDiggler/army-rater/internal/testutils"
	"github.com/KirkDiggler/army-rater/internal/testutils/builders"
)

// repositoryTestSuite holds the behaviour every implementation must share
type repositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    armies.Repository
	newRepo func() armies.Repository
}

func (s *repositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = s.newRepo()
}

func (s *repositoryTestSuite) TestCreateAndGet() {
	a := builders.NewArmyBuilder().
		WithID("army-1").
		WithUnits(builders.Intercessors().WithCount(2).Build()).
		Build()

	created, err := s.repo.Create(s.ctx, armies.CreateInput{Army: a})
	s.Require().NoError(err)
	s.Equal(a, created.Army)

	got, err := s.repo.Get(s.ctx, armies.GetInput{ID: "army-1"})
	s.Require().NoError(err)
	s.Equal(a, got.Army)
}

func (s *repositoryTestSuite) TestCreateDuplicate() {
	a := builders.NewArmyBuilder().WithID("army-1").Build()
	_, err := s.repo.Create(s.ctx, armies.CreateInput{Army: a})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, armies.CreateInput{Army: a})
	s.True(errors.IsAlreadyExists(err))
}

func (s *repositoryTestSuite) TestInvalidInput() {
	_, err := s.repo.Create(s.ctx, armies.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, armies.CreateInput{Army: builders.NewArmyBuilder().WithID("").Build()})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, armies.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Delete(s.ctx, armies.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *repositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, armies.GetInput{ID: "nope"})
	s.True(errors.IsNotFound(err))
	s.Equal("nope", errors.GetMeta(err)["army_id"])
}

func (s *repositoryTestSuite) TestUpdate() {
	a := builders.NewArmyBuilder().WithID("army-1").Build()
	_, err := s.repo.Create(s.ctx, armies.CreateInput{Army: a})
	s.Require().NoError(err)

	a.GameSize = 1000
	a.Units = append(a.Units, builders.Intercessors().Build())
	_, err = s.repo.Update(s.ctx, armies.UpdateInput{Army: a})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, armies.GetInput{ID: "army-1"})
	s.Require().NoError(err)
	s.Equal(1000, got.Army.GameSize)
	s.Len(got.Army.Units, 1)

	_, err = s.repo.Update(s.ctx, armies.UpdateInput{Army: builders.NewArmyBuilder().WithID("missing").Build()})
	s.True(errors.IsNotFound(err))
}

func (s *repositoryTestSuite) TestStoredCopyIsIsolated() {
	a := builders.NewArmyBuilder().WithID("army-1").WithUnits(builders.Intercessors().Build()).Build()
	_, err := s.repo.Create(s.ctx, armies.CreateInput{Army: a})
	s.Require().NoError(err)

	a.Units[0].Name = "mutated"

	got, err := s.repo.Get(s.ctx, armies.GetInput{ID: "army-1"})
	s.Require().NoError(err)
	s.Equal("Intercessors", got.Army.Units[0].Name)
}

func (s *repositoryTestSuite) TestDelete() {
	a := builders.NewArmyBuilder().WithID("army-1").Build()
	_, err := s.repo.Create(s.ctx, armies.CreateInput{Army: a})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, armies.DeleteInput{ID: "army-1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, armies.GetInput{ID: "army-1"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, armies.DeleteInput{ID: "army-1"})
	s.True(errors.IsNotFound(err))
}

func (s *repositoryTestSuite) TestListOrdersByCreation() {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"c", "a", "b"} {
		a := builders.NewArmyBuilder().WithID(id).Build()
		a.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		_, err := s.repo.Create(s.ctx, armies.CreateInput{Army: a})
		s.Require().NoError(err)
	}
	tie := builders.NewArmyBuilder().WithID("0").Build()
	tie.CreatedAt = base
	_, err := s.repo.Create(s.ctx, armies.CreateInput{Army: tie})
	s.Require().NoError(err)

	out, err := s.repo.List(s.ctx, armies.ListInput{})
	s.Require().NoError(err)

	ids := make([]string, 0, len(out.Armies))
	for _, a := range out.Armies {
		ids = append(ids, a.ID)
	}
	s.Equal([]string{"0", "c", "a", "b"}, ids)
}

func (s *repositoryTestSuite) TestListEmpty() {
	out, err := s.repo.List(s.ctx, armies.ListInput{})
	s.Require().NoError(err)
	s.Empty(out.Armies)
}

type InMemoryRepositoryTestSuite struct {
	repositoryTestSuite
}

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, &InMemoryRepositoryTestSuite{repositoryTestSuite{
		newRepo: func() armies.Repository { return armies.NewInMemory() },
	}})
}

type RedisRepositoryTestSuite struct {
	repositoryTestSuite
	mr *miniredis.Miniredis
}

func TestRedisRepositorySuite(t *testing.T) {
	s := &RedisRepositoryTestSuite{}
	s.newRepo = func() armies.Repository {
		client, mr := testutils.CreateTestRedisClient(s.T())
		s.mr = mr
		repo, err := armies.NewRedis(&armies.RedisConfig{Client: client})
		s.Require().NoError(err)
		return repo
	}
	suite.Run(t, s)
}

func (s *RedisRepositoryTestSuite) TestKeyLayout() {
	_, err := s.repo.Create(s.ctx, armies.CreateInput{Army: builders.NewArmyBuilder().WithID("army-1").Build()})
	s.Require().NoError(err)

	s.True(s.mr.Exists("army:army-1"))
	members, err := s.mr.Members("army:index")
	s.Require().NoError(err)
	s.Equal([]string{"army-1"}, members)
}

func (s *RedisRepositoryTestSuite) TestListCleansStaleIndex() {
	_, err := s.repo.Create(s.ctx, armies.CreateInput{Army: builders.NewArmyBuilder().WithID("army-1").Build()})
	s.Require().NoError(err)
	_, err = s.mr.SAdd("army:index", "ghost")
	s.Require().NoError(err)

	out, err := s.repo.List(s.ctx, armies.ListInput{})
	s.Require().NoError(err)
	s.Len(out.Armies, 1)

	members, err := s.mr.Members("army:index")
	s.Require().NoError(err)
	s.Equal([]string{"army-1"}, members)
}

func (s *RedisRepositoryTestSuite) TestCorruptValue() {
	s.Require().NoError(s.mr.Set("army:bad", "{not json"))

	_, err := s.repo.Get(s.ctx, armies.GetInput{ID: "bad"})
	s.True(errors.IsInternal(err))
}

func (s *RedisRepositoryTestSuite) TestConfigValidation() {
	_, err := armies.NewRedis(nil)
	s.Error(err)
	_, err = armies.NewRedis(&armies.RedisConfig{})
	s.Error(err)
}
