package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "cargo/internal/adapters/out/postgres"
	"cargo/internal/adapters/out/postgres/pgtest"
	"cargo/internal/core/domain/model/client"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/parcel"
	"cargo/internal/core/domain/model/shipment"
	"cargo/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work and the
// schema constraints against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres_adapter.GormUnitOfWorkFactory
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE " + pgtest.Tables).Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestMigrate_IsRepeatable() {
	suite.Require().NoError(postgres_adapter.Migrate(suite.db))
	suite.True(suite.db.Migrator().HasConstraint("parcels", "fk_parcels_shipment"))
	suite.True(suite.db.Migrator().HasConstraint("parcels", "fk_parcels_client"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryCommit() {
	ctx := context.Background()
	c := suite.newClient("A00001")
	s := suite.newShipment()
	p := suite.newParcel("TRK1", c.ID(), 2.5, 0.3)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ClientRepository().Add(ctx, c))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, s))
	suite.Require().NoError(p.AssignTo(s.ID()))
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, p))
	s.RecomputeTotals(p.Dimensions())
	suite.Require().NoError(uow.ShipmentRepository().Update(ctx, s))
	suite.Require().NoError(uow.Commit(ctx))

	fresh := suite.factory.Create()
	members, err := fresh.ParcelRepository().GetByShipment(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Require().Len(members, 1)
	suite.Equal(p.ID(), members[0].ID())

	stored, err := fresh.ShipmentRepository().Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.InDelta(2.5, stored.Totals().Weight(), 1e-9)
	suite.InDelta(0.3, stored.Totals().Volume(), 1e-9)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsWrites() {
	ctx := context.Background()
	c := suite.newClient("A00001")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ClientRepository().Add(ctx, c))

	_, err := uow.ClientRepository().Get(ctx, c.ID())
	suite.Require().NoError(err, "The write is visible inside the transaction")

	suite.Require().NoError(uow.Rollback(ctx))

	_, err = suite.factory.Create().ClientRepository().Get(ctx, c.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_Isolation() {
	ctx := context.Background()
	first := suite.factory.Create()
	second := suite.factory.Create()
	c1 := suite.newClient("A00001")
	c2 := suite.newClient("A00002")

	suite.Require().NoError(first.Begin(ctx))
	suite.Require().NoError(second.Begin(ctx))
	suite.Require().NoError(first.ClientRepository().Add(ctx, c1))
	suite.Require().NoError(second.ClientRepository().Add(ctx, c2))

	_, err := first.ClientRepository().Get(ctx, c2.ID())
	suite.Require().Error(err, "Uncommitted rows of another unit must stay invisible")

	suite.Require().NoError(first.Commit(ctx))
	suite.Require().NoError(second.Rollback(ctx))

	fresh := suite.factory.Create()
	_, err = fresh.ClientRepository().Get(ctx, c1.ID())
	suite.Require().NoError(err)
	_, err = fresh.ClientRepository().Get(ctx, c2.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestShipmentDelete_ReleasesMembers() {
	ctx := context.Background()
	uow := suite.factory.Create()
	c := suite.newClient("A00001")
	s := suite.newShipment()
	p := suite.newParcel("TRK1", c.ID(), 1, 1)
	suite.Require().NoError(p.AssignTo(s.ID()))

	suite.Require().NoError(uow.ClientRepository().Add(ctx, c))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, s))
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, p))

	suite.Require().NoError(uow.ShipmentRepository().Delete(ctx, s.ID()))

	stored, err := uow.ParcelRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Nil(stored.ShipmentID())
	suite.False(stored.IsAssigned())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestClientDelete_BlockedByParcels() {
	ctx := context.Background()
	uow := suite.factory.Create()
	c := suite.newClient("A00001")
	p := suite.newParcel("TRK1", c.ID(), 1, 1)

	suite.Require().NoError(uow.ClientRepository().Add(ctx, c))
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, p))

	err := uow.ClientRepository().Delete(ctx, c.ID())
	suite.Require().ErrorIs(err, errs.ErrConflict)

	suite.Require().NoError(uow.ParcelRepository().Delete(ctx, p.ID()))
	suite.Require().NoError(uow.ClientRepository().Delete(ctx, c.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestParcelAdd_UnknownClientIsInvalid() {
	ctx := context.Background()
	p := suite.newParcel("TRK1", kernel.NewUUID(), 1, 1)

	err := suite.factory.Create().ParcelRepository().Add(ctx, p)

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *UnitOfWorkIntegrationTestSuite) newClient(code string) *client.Client {
	c, err := client.NewClient(kernel.NewUUID(), client.HumanCode(code), "Client "+code, "555-0100", "")
	suite.Require().NoError(err)
	return c
}

func (suite *UnitOfWorkIntegrationTestSuite) newShipment() *shipment.Shipment {
	s, err := shipment.NewShipment(kernel.NewUUID(), "Container 7")
	suite.Require().NoError(err)
	return s
}

func (suite *UnitOfWorkIntegrationTestSuite) newParcel(code string, clientID kernel.UUID, weight, volume float64) *parcel.Parcel {
	dims, err := kernel.NewDimensions(weight, volume)
	suite.Require().NoError(err)
	p, err := parcel.NewParcel(kernel.NewUUID(), code, clientID, dims, decimal.NewFromInt(10))
	suite.Require().NoError(err)
	return p
}
