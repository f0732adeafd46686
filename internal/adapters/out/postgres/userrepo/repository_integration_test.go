package userrepo_test

import (
	"context"
	"testing"

	"cargo/internal/adapters/out/postgres/pgtest"
	"cargo/internal/adapters/out/postgres/userrepo"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/user"
	"cargo/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *userrepo.GormUserRepository
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE " + pgtest.Tables).Error)

	suite.repository = userrepo.NewGormUserRepository(suite.db)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) TestAddCountAndLookup() {
	ctx := context.Background()
	u := suite.newUser("admin", user.Admin)

	suite.Require().NoError(suite.repository.Add(ctx, u))

	count, err := suite.repository.Count(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)

	stored, err := suite.repository.GetByUsername(ctx, "admin")
	suite.Require().NoError(err)
	suite.Equal(u.ID(), stored.ID())
	suite.Equal(user.Admin, stored.Role())
	suite.Equal(u.PasswordHash(), stored.PasswordHash())
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_DuplicateUsername_Conflict() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newUser("manager", user.Manager)))

	err := suite.repository.Add(ctx, suite.newUser("manager", user.Manager))

	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *UserRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	u := suite.newUser("manager", user.Manager)
	suite.Require().NoError(suite.repository.Add(ctx, u))

	suite.Require().NoError(suite.repository.Delete(ctx, u.ID()))
	suite.Require().ErrorIs(suite.repository.Delete(ctx, u.ID()), errs.ErrObjectNotFound)

	_, err := suite.repository.GetByUsername(ctx, "manager")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) newUser(username string, role user.Role) *user.User {
	u, err := user.NewUser(kernel.NewUUID(), username, "$2a$10$abcdefghijklmnopqrstuv", role)
	suite.Require().NoError(err)
	return u
}
